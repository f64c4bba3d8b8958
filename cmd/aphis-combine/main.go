// aphis-combine merges the raw APHIS ExportData CSVs into one table:
// registrant exports and annual-report exports are each deduplicated, then
// the reports are left-joined onto the registrants on Certificate Number.
// Column names shared by both sides (other than the key) get _x/_y
// suffixes, matching the layout the downstream scripts expect.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"facilitymap/csvfile"
)

const joinKey = "Certificate Number"

func main() {
	registrantsGlob := flag.String("registrants", "ExportData_registrants*.csv", "Glob for registrant export CSVs")
	reportsGlob := flag.String("reports", "ExportData_reports*.csv", "Glob for annual-report export CSVs")
	output := flag.String("output", "aphis_combined.csv", "Output CSV path")
	flag.Parse()

	registrants := mergeGlob(*registrantsGlob)
	reports := mergeGlob(*reportsGlob)
	log.Printf("Loaded %d registrants and %d report rows", len(registrants.Rows), len(reports.Rows))

	joined := leftJoin(registrants, reports)
	if err := csvfile.WriteFile(*output, joined); err != nil {
		log.Fatalf("Error writing %s: %v", *output, err)
	}
	log.Printf("Wrote %d combined rows to %s", len(joined.Rows), *output)
}

func mergeGlob(pattern string) *csvfile.Table {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		log.Fatalf("Bad glob %q: %v", pattern, err)
	}
	if len(paths) == 0 {
		log.Fatalf("No files match %q", pattern)
	}
	merged, err := csvfile.MergeFiles(paths)
	if err != nil {
		log.Fatalf("Error merging %q: %v", pattern, err)
	}
	return merged
}

// leftJoin keeps every left row, appending the first matching right row's
// columns (minus the key) or blanks when the right side has no match.
func leftJoin(left, right *csvfile.Table) *csvfile.Table {
	leftKey := left.ColumnIndex(joinKey)
	rightKey := right.ColumnIndex(joinKey)
	if leftKey < 0 || rightKey < 0 {
		log.Fatalf("Both inputs must carry a %q column", joinKey)
	}

	// Right columns that collide with a left column are suffixed, and the
	// colliding left column gets _x.
	collides := make(map[string]bool)
	for i, h := range right.Header {
		if i != rightKey && left.ColumnIndex(h) >= 0 {
			collides[h] = true
		}
	}

	out := &csvfile.Table{}
	for _, h := range left.Header {
		if collides[h] {
			h += "_x"
		}
		out.Header = append(out.Header, h)
	}
	var rightCols []int
	for i, h := range right.Header {
		if i == rightKey {
			continue
		}
		rightCols = append(rightCols, i)
		if collides[h] {
			h += "_y"
		}
		out.Header = append(out.Header, h)
	}

	byKey := make(map[string][]string, len(right.Rows))
	for _, row := range right.Rows {
		if rightKey < len(row) {
			key := row[rightKey]
			if _, seen := byKey[key]; !seen {
				byKey[key] = row
			}
		}
	}

	unmatched := 0
	for _, row := range left.Rows {
		joined := make([]string, len(left.Header), len(out.Header))
		copy(joined, row)
		match, ok := byKey[left.Column(row, joinKey)]
		if !ok {
			unmatched++
		}
		for _, i := range rightCols {
			v := ""
			if ok && i < len(match) {
				v = match[i]
			}
			joined = append(joined, v)
		}
		out.Rows = append(out.Rows, joined)
	}
	if unmatched > 0 {
		log.Printf("WARN Combine: %d registrants had no annual report", unmatched)
	}
	return out
}
