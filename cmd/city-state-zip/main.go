// city-state-zip splits the combined "City-State-Zip" column into separate
// City, State and Zip columns.
package main

import (
	"flag"
	"log"

	"facilitymap/converter"
	"facilitymap/csvfile"
)

func main() {
	input := flag.String("input", "aphis_active.csv", "Input CSV path")
	output := flag.String("output", "aphis_addressed.csv", "Output CSV path")
	column := flag.String("column", "City-State-Zip", "Name of the combined address column")
	flag.Parse()

	t, err := csvfile.ReadFile(*input)
	if err != nil {
		log.Fatalf("Error reading %s: %v", *input, err)
	}
	src := t.ColumnIndex(*column)
	if src < 0 {
		log.Fatalf("%s has no %q column", *input, *column)
	}

	t.Header = append(t.Header, "City", "State", "Zip")
	parsed := 0
	for i, row := range t.Rows {
		var combined string
		if src < len(row) {
			combined = row[src]
		}
		city, state, zip := converter.SplitCityStateZip(combined)
		if city != "" {
			parsed++
		}
		t.Rows[i] = append(row, city, state, zip)
	}

	if err := csvfile.WriteFile(*output, t); err != nil {
		log.Fatalf("Error writing %s: %v", *output, err)
	}
	log.Printf("Parsed %d of %d addresses into city/state/zip", parsed, len(t.Rows))
}
