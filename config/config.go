package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type StaticDataConfig struct {
	Dir                  string `yaml:"dir"`
	LocationsCSV         string `yaml:"locations_csv"`
	AphisReportsCSV      string `yaml:"aphis_reports_csv"`
	InspectionReportsCSV string `yaml:"inspection_reports_csv"`
}

type GeocodeConfig struct {
	BaseURL           string `yaml:"base_url"`
	UserAgent         string `yaml:"user_agent"`
	CachePath         string `yaml:"cache_path"`
	MinDelayStr       string `yaml:"min_delay"`
	RequestTimeoutStr string `yaml:"request_timeout"`

	MinDelay time.Duration
	Timeout  time.Duration
}

type AphisConfig struct {
	SearchURL    string `yaml:"search_url"`
	PageDelayStr string `yaml:"page_delay"`

	PageDelay time.Duration
}

type SECConfig struct {
	UserAgent      string `yaml:"user_agent"`
	TickersURL     string `yaml:"tickers_url"`
	SubmissionsURL string `yaml:"submissions_url"` // printf format, takes the zero-padded CIK
	DelayStr       string `yaml:"delay"`

	Delay time.Duration
}

// SourcesConfig holds the URLs for the bulk registry exports the converter
// commands read. None of these have default URLs; the registries move their
// download links around, so each deployment pins its own.
type SourcesConfig struct {
	Dir              string `yaml:"dir"`
	UKApprovedCSV    string `yaml:"uk_approved_csv"`
	SpainRGSEAACSV   string `yaml:"spain_rgseaa_csv"`
	GermanyBVLCSV    string `yaml:"germany_bvl_csv"`
	FranceKML        string `yaml:"france_kml"`
	DenmarkSmileyXML string `yaml:"denmark_smiley_xml"`
}

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	StaticData StaticDataConfig `yaml:"static_data"`
	Geocode    GeocodeConfig    `yaml:"geocode"`
	Aphis      AphisConfig      `yaml:"aphis"`
	SEC        SECConfig        `yaml:"sec"`
	Sources    SourcesConfig    `yaml:"sources"`
}

var AppConfig Config

// LoadConfig reads the yaml config file and applies defaults for anything
// left unset. A .env file in the working directory, if present, is loaded
// first so values like SEC_USER_AGENT can stay out of the yaml.
func LoadConfig(configPath string) error {
	// Not an error if absent; the toolkit runs fine on defaults.
	_ = godotenv.Load()

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, &AppConfig); err != nil {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	applyDefaults(&AppConfig)

	var err error
	if AppConfig.Geocode.MinDelay, err = parseDurationOr(AppConfig.Geocode.MinDelayStr, 1100*time.Millisecond); err != nil {
		return fmt.Errorf("failed to parse geocode.min_delay: %w", err)
	}
	if AppConfig.Geocode.Timeout, err = parseDurationOr(AppConfig.Geocode.RequestTimeoutStr, 10*time.Second); err != nil {
		return fmt.Errorf("failed to parse geocode.request_timeout: %w", err)
	}
	if AppConfig.Aphis.PageDelay, err = parseDurationOr(AppConfig.Aphis.PageDelayStr, 2*time.Second); err != nil {
		return fmt.Errorf("failed to parse aphis.page_delay: %w", err)
	}
	if AppConfig.SEC.Delay, err = parseDurationOr(AppConfig.SEC.DelayStr, time.Second); err != nil {
		return fmt.Errorf("failed to parse sec.delay: %w", err)
	}

	if AppConfig.Geocode.CachePath != "" {
		if dir := filepath.Dir(AppConfig.Geocode.CachePath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory for geocode cache: %w", err)
			}
		}
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.StaticData.Dir == "" {
		cfg.StaticData.Dir = "static_data"
	}
	if cfg.StaticData.LocationsCSV == "" {
		cfg.StaticData.LocationsCSV = filepath.Join(cfg.StaticData.Dir, "usda_locations.csv")
	}
	if cfg.StaticData.AphisReportsCSV == "" {
		cfg.StaticData.AphisReportsCSV = filepath.Join(cfg.StaticData.Dir, "aphis_data_final.csv")
	}
	if cfg.StaticData.InspectionReportsCSV == "" {
		cfg.StaticData.InspectionReportsCSV = filepath.Join(cfg.StaticData.Dir, "inspection_reports.csv")
	}
	if cfg.Geocode.BaseURL == "" {
		cfg.Geocode.BaseURL = "https://nominatim.openstreetmap.org/search"
	}
	if cfg.Geocode.UserAgent == "" {
		cfg.Geocode.UserAgent = "facilitymap-import/1.0"
	}
	if cfg.Geocode.CachePath == "" {
		cfg.Geocode.CachePath = "geodata.db"
	}
	if cfg.Aphis.SearchURL == "" {
		cfg.Aphis.SearchURL = "https://aphis.my.site.com/PublicSearchTool/s/annual-reports"
	}
	if cfg.SEC.UserAgent == "" {
		cfg.SEC.UserAgent = os.Getenv("SEC_USER_AGENT")
	}
	if cfg.SEC.TickersURL == "" {
		cfg.SEC.TickersURL = "https://www.sec.gov/files/company_tickers.json"
	}
	if cfg.SEC.SubmissionsURL == "" {
		cfg.SEC.SubmissionsURL = "https://data.sec.gov/submissions/CIK%s.json"
	}
	if cfg.Sources.Dir == "" {
		cfg.Sources.Dir = "source_data"
	}
}

func parseDurationOr(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}
