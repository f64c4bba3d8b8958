package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	AppConfig = Config{}
	if err := LoadConfig(""); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if AppConfig.Server.Port != "8080" {
		t.Errorf("Port = %q", AppConfig.Server.Port)
	}
	if AppConfig.Geocode.MinDelay != 1100*time.Millisecond {
		t.Errorf("Geocode.MinDelay = %v", AppConfig.Geocode.MinDelay)
	}
	if AppConfig.Geocode.BaseURL == "" || AppConfig.Aphis.SearchURL == "" {
		t.Error("default URLs not applied")
	}
	if AppConfig.StaticData.LocationsCSV != filepath.Join("static_data", "usda_locations.csv") {
		t.Errorf("LocationsCSV = %q", AppConfig.StaticData.LocationsCSV)
	}
}

func TestLoadConfigFromYaml(t *testing.T) {
	AppConfig = Config{}
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: "9000"
geocode:
  min_delay: 2s
  cache_path: ` + filepath.Join(dir, "cache", "geo.db") + `
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if err := LoadConfig(path); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if AppConfig.Server.Port != "9000" {
		t.Errorf("Port = %q", AppConfig.Server.Port)
	}
	if AppConfig.Geocode.MinDelay != 2*time.Second {
		t.Errorf("MinDelay = %v", AppConfig.Geocode.MinDelay)
	}
	if _, err := os.Stat(filepath.Join(dir, "cache")); err != nil {
		t.Errorf("cache directory not created: %v", err)
	}
}

func TestLoadConfigBadDuration(t *testing.T) {
	AppConfig = Config{}
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("geocode:\n  min_delay: soon\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if err := LoadConfig(path); err == nil {
		t.Error("expected error for unparseable duration")
	}
}
