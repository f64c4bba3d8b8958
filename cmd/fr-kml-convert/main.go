// fr-kml-convert maps a French facilities KML export onto the shared
// facility schema.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/jszwec/csvutil"

	"facilitymap/converter"
)

func main() {
	input := flag.String("input", "france_facilities.kml", "KML export path")
	output := flag.String("output", "france_locations.csv", "Output CSV path")
	flag.Parse()

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("Error opening %s: %v", *input, err)
	}
	defer f.Close()

	locations, err := converter.ConvertFranceKML(f)
	if err != nil {
		log.Fatalf("Error converting %s: %v", *input, err)
	}

	out, err := csvutil.Marshal(locations)
	if err != nil {
		log.Fatalf("Error marshalling locations: %v", err)
	}
	if err := os.WriteFile(*output, out, 0644); err != nil {
		log.Fatalf("Error writing %s: %v", *output, err)
	}
	log.Printf("Converted %d French facilities to %s", len(locations), *output)
}
