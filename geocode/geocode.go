// Package geocode resolves street addresses to coordinates through the
// Nominatim search API, with an on-disk cache so interrupted runs resume
// without re-querying, and a rate limiter that keeps requests at least
// ~1.1s apart per the public API usage policy.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"facilitymap/config"
	"facilitymap/database"
)

// Coordinates is one resolved point. Unresolvable addresses come back as
// the zero value.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Client is a rate-limited Nominatim client backed by the geocode cache.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
}

// NewClient builds a client from the loaded application config.
func NewClient() *Client {
	cfg := config.AppConfig.Geocode
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Every(cfg.MinDelay), 1),
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
	}
}

// nominatimResult is the subset of the search response we read.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Lookup resolves an address, consulting the cache first. A lookup that
// fails (no result, network error, bad response) is logged, cached as
// unresolved, and returned as (0, 0) — a batch run never aborts over one
// bad address.
func (c *Client) Lookup(ctx context.Context, street, city, zip string) Coordinates {
	cached, found, err := database.GetCachedCoordinates(street, city, zip)
	if err != nil {
		log.Printf("WARN Geocode: cache lookup failed for '%s, %s %s': %v", street, city, zip, err)
	} else if found {
		return Coordinates{Latitude: cached.Latitude, Longitude: cached.Longitude}
	}

	coords, err := c.query(ctx, street, city, zip)
	resolved := err == nil
	if err != nil {
		log.Printf("WARN Geocode: could not resolve '%s, %s %s': %v", street, city, zip, err)
		coords = Coordinates{}
	}

	if err := database.SaveCachedCoordinates(street, city, zip, database.CachedCoordinates{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		Resolved:  resolved,
	}); err != nil {
		log.Printf("WARN Geocode: failed to cache result for '%s, %s %s': %v", street, city, zip, err)
	}
	return coords
}

// query performs one rate-limited Nominatim request.
func (c *Client) query(ctx context.Context, street, city, zip string) (Coordinates, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Coordinates{}, err
	}

	params := url.Values{}
	params.Set("q", buildQuery(street, city, zip))
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("failed to create geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, fmt.Errorf("geocode request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Coordinates{}, fmt.Errorf("failed to read geocode response: %w", err)
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return Coordinates{}, fmt.Errorf("failed to parse geocode response: %w", err)
	}
	if len(results) == 0 {
		return Coordinates{}, fmt.Errorf("no results")
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid latitude %q in geocode response: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid longitude %q in geocode response: %w", results[0].Lon, err)
	}
	return Coordinates{Latitude: lat, Longitude: lon}, nil
}

// buildQuery joins the non-empty address parts into a freeform query.
func buildQuery(street, city, zip string) string {
	var parts []string
	for _, p := range []string{street, city, zip} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Interval returns the minimum spacing between requests, used for progress
// estimates in the batch commands.
func (c *Client) Interval() time.Duration {
	return time.Duration(float64(time.Second) / float64(c.limiter.Limit()))
}
