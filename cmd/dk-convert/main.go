// dk-convert maps a Danish findsmiley XML export onto the shared facility
// schema, keeping only animal-product industries.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/jszwec/csvutil"

	"facilitymap/converter"
)

func main() {
	input := flag.String("input", "findsmiley.xml", "findsmiley XML export path")
	output := flag.String("output", "denmark_locations.csv", "Output CSV path")
	flag.Parse()

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("Error opening %s: %v", *input, err)
	}
	defer f.Close()

	locations, err := converter.ConvertDenmarkXML(f)
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
	log.Printf("Converted %d Danish establishments to %s", len(locations), *output)
}
