package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
)

// CachedCoordinates is one geocode_cache row. Resolved is false for
// addresses the geocoder has already failed on, so repeat runs do not
// re-query them.
type CachedCoordinates struct {
	Latitude  float64
	Longitude float64
	Resolved  bool
}

func cacheKey(street, city, zip string) (string, string, string) {
	return strings.ToUpper(strings.TrimSpace(street)),
		strings.ToUpper(strings.TrimSpace(city)),
		strings.TrimSpace(zip)
}

// GetCachedCoordinates looks up an address in the cache. The second return
// value reports whether the address was present at all.
func GetCachedCoordinates(street, city, zip string) (CachedCoordinates, bool, error) {
	if DB == nil {
		return CachedCoordinates{}, false, fmt.Errorf("database connection is not initialized")
	}
	street, city, zip = cacheKey(street, city, zip)

	var c CachedCoordinates
	var resolved int
	query := `SELECT latitude, longitude, resolved FROM geocode_cache WHERE street = ? AND city = ? AND zip = ?`
	err := DB.QueryRow(query, street, city, zip).Scan(&c.Latitude, &c.Longitude, &resolved)
	if err == sql.ErrNoRows {
		return CachedCoordinates{}, false, nil
	}
	if err != nil {
		return CachedCoordinates{}, false, fmt.Errorf("failed to query geocode cache: %w", err)
	}
	c.Resolved = resolved != 0
	return c, true, nil
}

// SaveCachedCoordinates upserts a cache entry. Failed lookups are stored
// with resolved = 0 and zero coordinates.
func SaveCachedCoordinates(street, city, zip string, c CachedCoordinates) error {
	if DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	street, city, zip = cacheKey(street, city, zip)

	resolved := 0
	if c.Resolved {
		resolved = 1
	}
	query := `
		INSERT INTO geocode_cache (street, city, zip, latitude, longitude, resolved)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (street, city, zip) DO UPDATE SET
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			resolved = excluded.resolved
	`
	if _, err := DB.Exec(query, street, city, zip, c.Latitude, c.Longitude, resolved); err != nil {
		log.Printf("ERROR Database: Failed to cache coordinates for '%s, %s %s': %v", street, city, zip, err)
		return fmt.Errorf("failed to cache coordinates: %w", err)
	}
	return nil
}

// CountCachedCoordinates reports how many addresses the cache holds.
func CountCachedCoordinates() (int, error) {
	if DB == nil {
		return 0, fmt.Errorf("database connection is not initialized")
	}
	var n int
	if err := DB.QueryRow(`SELECT COUNT(*) FROM geocode_cache`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count geocode cache entries: %w", err)
	}
	return n, nil
}
