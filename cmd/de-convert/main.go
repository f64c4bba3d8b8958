// de-convert maps a German BVL establishment export onto the shared
// facility schema, optionally filling coordinates through the geocoding
// cache.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"

	"github.com/jszwec/csvutil"

	"facilitymap/config"
	"facilitymap/converter"
	"facilitymap/database"
	"facilitymap/geocode"
)

func main() {
	input := flag.String("input", "germany_bvl.csv", "BVL export CSV path")
	output := flag.String("output", "germany_locations.csv", "Output CSV path")
	header := flag.Bool("header", false, "Skip the first record (for exports with a header row)")
	doGeocode := flag.Bool("geocode", false, "Resolve coordinates through Nominatim (slow)")
	configPath := flag.String("config", "", "Optional config yaml path")
	flag.Parse()

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("Error opening %s: %v", *input, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		log.Fatalf("Error reading %s: %v", *input, err)
	}
	firstLine := 1
	if *header && len(records) > 0 {
		records = records[1:]
		firstLine = 2
	}

	var client *geocode.Client
	if *doGeocode {
		if err := config.LoadConfig(*configPath); err != nil {
			log.Fatalf("Error loading configuration: %v", err)
		}
		if err := database.InitDB(config.AppConfig.Geocode.CachePath); err != nil {
			log.Fatalf("Error opening geocode cache: %v", err)
		}
		defer database.CloseDB()
		client = geocode.NewClient()
	}

	locations, skipped := converter.ConvertGermanyRecords(records, firstLine)
	if client != nil {
		for i := range locations {
			coords := client.Lookup(context.Background(), locations[i].Street, locations[i].City, locations[i].Zip)
			locations[i].Latitude = coords.Latitude
			locations[i].Longitude = coords.Longitude
		}
	}

	out, err := csvutil.Marshal(locations)
	if err != nil {
		log.Fatalf("Error marshalling locations: %v", err)
	}
	if err := os.WriteFile(*output, out, 0644); err != nil {
		log.Fatalf("Error writing %s: %v", *output, err)
	}
	log.Printf("Converted %d German establishments (%d skipped) to %s",
		len(locations), skipped, *output)
}
