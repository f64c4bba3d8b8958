// split-csv partitions a large CSV into fixed-size chunk files for batch
// geocoding.
package main

import (
	"flag"
	"log"
	"strings"

	"facilitymap/csvfile"
)

func main() {
	input := flag.String("input", "", "Input CSV path (required)")
	dir := flag.String("dir", "chunks", "Output directory for chunk files")
	rows := flag.Int("rows", 500, "Rows per chunk")
	flag.Parse()

	if *input == "" {
		log.Fatalf("Missing required -input flag")
	}

	t, err := csvfile.ReadFile(*input)
	if err != nil {
		log.Fatalf("Error reading %s: %v", *input, err)
	}

	paths, err := csvfile.SplitToDir(t, *dir, "chunk", *rows)
	if err != nil {
		log.Fatalf("Error writing chunks: %v", err)
	}
	log.Printf("Split %d rows into %d chunks under %s:\n  %s",
		len(t.Rows), len(paths), *dir, strings.Join(paths, "\n  "))
}
