package scraper

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"facilitymap/config"
)

// DownloadFile downloads a URL to a local path, creating parent
// directories as needed.
func DownloadFile(url string, localSavePath string) error {
	log.Printf("Scraper: downloading %s to %s", url, localSavePath)

	client := http.Client{Timeout: 120 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("request for %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d downloading %s", resp.StatusCode, url)
	}

	dir := filepath.Dir(localSavePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	out, err := os.Create(localSavePath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", localSavePath, err)
	}
	defer out.Close()

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", localSavePath, err)
	}
	log.Printf("Scraper: saved %d bytes to %s", written, localSavePath)
	return nil
}

// DownloadSource fetches one named bulk export into the configured source
// directory and returns the local path. The names match the converter
// commands: uk, es, de, fr, dk.
func DownloadSource(name string) (string, error) {
	cfg := config.AppConfig.Sources
	sources := map[string]struct {
		URL  string
		File string
	}{
		"uk": {cfg.UKApprovedCSV, "uk_approved_establishments.csv"},
		"es": {cfg.SpainRGSEAACSV, "spain_rgseaa.csv"},
		"de": {cfg.GermanyBVLCSV, "germany_bvl.csv"},
		"fr": {cfg.FranceKML, "france_agrements.kml"},
		"dk": {cfg.DenmarkSmileyXML, "denmark_smiley.xml"},
	}
	src, ok := sources[name]
	if !ok {
		return "", fmt.Errorf("unknown source %q", name)
	}
	if src.URL == "" {
		return "", fmt.Errorf("no URL configured for source %q", name)
	}
	localPath := filepath.Join(cfg.Dir, src.File)
	if err := DownloadFile(src.URL, localPath); err != nil {
		return "", fmt.Errorf("failed to fetch source %q: %w", name, err)
	}
	return localPath, nil
}
