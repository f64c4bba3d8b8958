package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite" // SQLite driver, no cgo
)

var DB *sql.DB

// InitDB opens the embedded SQLite database used for the geocoding cache
// and creates any missing tables.
func InitDB(path string) error {
	var err error
	DB, err = sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database at %s: %w", path, err)
	}

	// The cache is written from a single command at a time.
	DB.SetMaxOpenConns(1)

	if err = DB.Ping(); err != nil {
		DB.Close()
		return fmt.Errorf("failed to ping database at %s: %w", path, err)
	}

	if err = createTables(); err != nil {
		DB.Close()
		return err
	}

	log.Printf("Database: opened geocode cache at %s", path)
	return nil
}

func createTables() error {
	query := `
		CREATE TABLE IF NOT EXISTS geocode_cache (
			street     TEXT NOT NULL,
			city       TEXT NOT NULL,
			zip        TEXT NOT NULL,
			latitude   REAL NOT NULL,
			longitude  REAL NOT NULL,
			resolved   INTEGER NOT NULL DEFAULT 1,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (street, city, zip)
		)
	`
	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create geocode_cache table: %w", err)
	}
	return nil
}

// CloseDB closes the database connection pool.
// Typically called on application shutdown.
func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Println("Database connection closed.")
	}
}
