// aphis-scrape pages through the APHIS public search tool and writes every
// research facility row to a CSV.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jszwec/csvutil"

	"facilitymap/config"
	"facilitymap/scraper"
)

func main() {
	output := flag.String("output", "", "Output CSV path (default aphis_research_facilities_<year>.csv)")
	configPath := flag.String("config", "", "Optional config yaml path")
	flag.Parse()

	if err := config.LoadConfig(*configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	path := *output
	if path == "" {
		path = fmt.Sprintf("aphis_research_facilities_%d.csv", time.Now().Year())
	}

	s := scraper.NewAphisScraper()
	facilities, err := s.FetchAllFacilities(context.Background())
	if err != nil {
		// Keep whatever pages succeeded before the failure.
		log.Printf("ERROR Scraper: scrape stopped early: %v", err)
	}
	if len(facilities) == 0 {
		log.Fatalf("No facilities scraped, nothing to write")
	}

	data, err := csvutil.Marshal(facilities)
	if err != nil {
		log.Fatalf("Error marshalling facilities: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatalf("Error writing %s: %v", path, err)
	}
	log.Printf("Wrote %d facilities to %s", len(facilities), path)
}
