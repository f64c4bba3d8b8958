// uk-convert maps a UK food-standards establishment export onto the shared
// facility schema.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/jszwec/csvutil"

	"facilitymap/converter"
	"facilitymap/models"
)

func main() {
	input := flag.String("input", "uk_establishments.csv", "UK export CSV path")
	output := flag.String("output", "uk_locations.csv", "Output CSV path")
	flag.Parse()

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("Error reading %s: %v", *input, err)
	}
	var rows []converter.UKRow
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		log.Fatalf("Error parsing %s: %v", *input, err)
	}

	locations := make([]models.Location, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, converter.ConvertUKRow(row))
	}

	out, err := csvutil.Marshal(locations)
	if err != nil {
		log.Fatalf("Error marshalling locations: %v", err)
	}
	if err := os.WriteFile(*output, out, 0644); err != nil {
		log.Fatalf("Error writing %s: %v", *output, err)
	}
	log.Printf("Converted %d UK establishments to %s", len(locations), *output)
}
