// aphis-clean filters a combined APHIS export down to active certificates.
package main

import (
	"flag"
	"log"
	"strings"

	"facilitymap/csvfile"
)

func main() {
	input := flag.String("input", "aphis_combined.csv", "Input CSV path")
	output := flag.String("output", "aphis_active.csv", "Output CSV path")
	flag.Parse()

	t, err := csvfile.ReadFile(*input)
	if err != nil {
		log.Fatalf("Error reading %s: %v", *input, err)
	}
	if t.ColumnIndex("Certificate Status") < 0 {
		log.Fatalf("%s has no Certificate Status column", *input)
	}

	kept := &csvfile.Table{Header: t.Header}
	for _, row := range t.Rows {
		if strings.EqualFold(strings.TrimSpace(t.Column(row, "Certificate Status")), "Active") {
			kept.Rows = append(kept.Rows, row)
		}
	}

	if err := csvfile.WriteFile(*output, kept); err != nil {
		log.Fatalf("Error writing %s: %v", *output, err)
	}
	log.Printf("Kept %d of %d rows with an active certificate", len(kept.Rows), len(t.Rows))
}
