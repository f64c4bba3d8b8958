// compile-chunks merges the geocoded chunk files back into a single CSV.
package main

import (
	"flag"
	"log"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"facilitymap/csvfile"
)

func main() {
	dir := flag.String("dir", "chunks", "Directory holding chunk_*_geocoded.csv files")
	output := flag.String("output", "geocoded_full.csv", "Output CSV path")
	flag.Parse()

	paths, err := filepath.Glob(filepath.Join(*dir, "chunk_*_geocoded.csv"))
	if err != nil {
		log.Fatalf("Bad chunk glob: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("No geocoded chunks found under %s", *dir)
	}
	sortByChunkNumber(paths)

	merged, err := csvfile.MergeFiles(paths)
	if err != nil {
		log.Fatalf("Error merging chunks: %v", err)
	}
	if err := csvfile.WriteFile(*output, merged); err != nil {
		log.Fatalf("Error writing %s: %v", *output, err)
	}
	log.Printf("Compiled %d chunks (%d rows) into %s", len(paths), len(merged.Rows), *output)
}

// sortByChunkNumber orders chunk_10 after chunk_9, which a plain string
// sort gets wrong.
func sortByChunkNumber(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		return chunkNumber(paths[i]) < chunkNumber(paths[j])
	})
}

func chunkNumber(path string) int {
	base := filepath.Base(path)
	base = strings.TrimPrefix(base, "chunk_")
	base = strings.TrimSuffix(base, "_geocoded.csv")
	n, err := strconv.Atoi(base)
	if err != nil {
		return 0
	}
	return n
}
