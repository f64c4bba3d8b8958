// relabel-types rewrites the type column of a processed locations.csv with
// human-readable facility types derived from the raw source
// classifications, joined back on establishment_id.
package main

import (
	"flag"
	"log"

	"facilitymap/converter"
	"facilitymap/csvfile"
)

func main() {
	country := flag.String("country", "", "Rule set to apply: uk or es (required)")
	locations := flag.String("locations", "locations.csv", "Processed locations CSV, rewritten in place")
	source := flag.String("source", "", "Raw source CSV with id and classifications columns (required)")
	flag.Parse()

	var typeFor func(string) string
	switch *country {
	case "uk":
		typeFor = converter.UKPrimaryType
	case "es":
		typeFor = converter.SpainTypeFor
	default:
		log.Fatalf("Unknown -country %q, use uk or es", *country)
	}
	if *source == "" {
		log.Fatalf("Missing required -source flag")
	}

	raw, err := csvfile.ReadFile(*source)
	if err != nil {
		log.Fatalf("Error reading %s: %v", *source, err)
	}
	if raw.ColumnIndex("id") < 0 || raw.ColumnIndex("classifications") < 0 {
		log.Fatalf("%s must carry id and classifications columns", *source)
	}
	classifications := make(map[string]string, len(raw.Rows))
	for _, row := range raw.Rows {
		classifications[raw.Column(row, "id")] = raw.Column(row, "classifications")
	}

	relabeled, missing := 0, 0
	err = csvfile.RewriteInPlace(*locations, func(t *csvfile.Table) error {
		typeIdx := t.ColumnIndex("type")
		idIdx := t.ColumnIndex("establishment_id")
		if typeIdx < 0 || idIdx < 0 {
			log.Fatalf("%s must carry establishment_id and type columns", *locations)
		}
		for _, row := range t.Rows {
			if idIdx >= len(row) || typeIdx >= len(row) {
				continue
			}
			cls, ok := classifications[row[idIdx]]
			if !ok {
				missing++
				continue
			}
			if label := typeFor(cls); label != "" {
				row[typeIdx] = label
				relabeled++
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Error rewriting %s: %v", *locations, err)
	}
	log.Printf("Relabeled %d rows (%d had no source classification)", relabeled, missing)
}
