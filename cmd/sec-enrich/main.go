// sec-enrich attaches parent-company guesses and their latest SEC filings
// to a locations CSV.
package main

import (
	"context"
	"flag"
	"log"

	"facilitymap/config"
	"facilitymap/csvfile"
	"facilitymap/models"
	"facilitymap/scraper"
)

func main() {
	input := flag.String("input", "locations.csv", "Input CSV path")
	output := flag.String("output", "locations_sec.csv", "Output CSV path")
	nameCol := flag.String("name-column", "establishment_name", "Facility name column")
	configPath := flag.String("config", "", "Optional config yaml path")
	flag.Parse()

	if err := config.LoadConfig(*configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if config.AppConfig.SEC.UserAgent == "" {
		log.Fatalf("SEC_USER_AGENT is not set; EDGAR requires a descriptive User-Agent with contact info")
	}

	t, err := csvfile.ReadFile(*input)
	if err != nil {
		log.Fatalf("Error reading %s: %v", *input, err)
	}
	if t.ColumnIndex(*nameCol) < 0 {
		log.Fatalf("%s has no %q column", *input, *nameCol)
	}

	s := scraper.NewSECScraper()
	ctx := context.Background()

	// Same legal name means same registrant; look each name up once.
	filings := make(map[string]models.SECFiling)
	matched := 0
	for _, row := range t.Rows {
		name := t.Column(row, *nameCol)
		if _, done := filings[name]; done || name == "" {
			continue
		}
		filing, err := s.LookupFilings(ctx, name)
		if err != nil {
			log.Printf("WARN SEC: lookup failed for %q: %v", name, err)
		}
		filings[name] = filing
		if filing.ParentCompany != "" {
			matched++
		}
	}
	log.Printf("Matched %d of %d unique names to an EDGAR registrant", matched, len(filings))

	t.Header = append(t.Header, "parent_company_guess", "parent_company", "10-K", "DEF 14A")
	for i, row := range t.Rows {
		filing := filings[t.Column(row, *nameCol)]
		t.Rows[i] = append(row,
			filing.ParentCompanyGuess, filing.ParentCompany, filing.Form10K, filing.FormDEF14A)
	}

	if err := csvfile.WriteFile(*output, t); err != nil {
		log.Fatalf("Error writing %s: %v", *output, err)
	}
	log.Printf("Wrote %d enriched rows to %s", len(t.Rows), *output)
}
