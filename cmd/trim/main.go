// trim projects the full geocoded export down to the columns the map
// front end actually serves.
package main

import (
	"flag"
	"log"
	"strings"

	"facilitymap/csvfile"
)

// mapColumns is the default keep list for the APHIS map layer.
var mapColumns = []string{
	"Account Name",
	"Certificate Number",
	"Registration Type",
	"Certificate Status",
	"Status Date",
	"Address Line 1",
	"Address Line 2",
	"City",
	"State",
	"Zip",
	"County",
	"Year",
	"Dogs",
	"Cats",
	"Guinea Pigs",
	"Hamsters",
	"Rabbits",
	"Non-Human Primates",
	"Sheep",
	"Pigs",
	"Other Farm Animals",
	"All Other Animals",
	"latitude",
	"longitude",
}

func main() {
	input := flag.String("input", "geocoded_full.csv", "Input CSV path")
	output := flag.String("output", "aphis_data_final.csv", "Output CSV path")
	columns := flag.String("columns", "", "Comma-separated keep list overriding the default")
	flag.Parse()

	keep := mapColumns
	if *columns != "" {
		keep = strings.Split(*columns, ",")
		for i := range keep {
			keep[i] = strings.TrimSpace(keep[i])
		}
	}

	t, err := csvfile.ReadFile(*input)
	if err != nil {
		log.Fatalf("Error reading %s: %v", *input, err)
	}
	trimmed, err := csvfile.TrimColumns(t, keep)
	if err != nil {
		log.Fatalf("Cannot trim %s: %v", *input, err)
	}
	if err := csvfile.WriteFile(*output, trimmed); err != nil {
		log.Fatalf("Error writing %s: %v", *output, err)
	}
	log.Printf("Trimmed %s from %d to %d columns, wrote %s",
		*input, len(t.Header), len(trimmed.Header), *output)
}
