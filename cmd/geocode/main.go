// geocode fills latitude/longitude columns on a chunk CSV by looking each
// street/city/zip up against Nominatim, with the on-disk cache so an
// interrupted run can be restarted without losing progress.
package main

import (
	"context"
	"flag"
	"log"
	"strconv"
	"strings"

	"facilitymap/config"
	"facilitymap/csvfile"
	"facilitymap/database"
	"facilitymap/geocode"
)

func main() {
	input := flag.String("input", "", "Input chunk CSV path (required)")
	output := flag.String("output", "", "Output CSV path (default <input minus .csv>_geocoded.csv)")
	streetCol := flag.String("street-column", "Address Line 2", "Street column name")
	cityCol := flag.String("city-column", "City", "City column name")
	zipCol := flag.String("zip-column", "Zip", "Zip column name")
	configPath := flag.String("config", "", "Optional config yaml path")
	flag.Parse()

	if *input == "" {
		log.Fatalf("Missing required -input flag")
	}
	if err := config.LoadConfig(*configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if err := database.InitDB(config.AppConfig.Geocode.CachePath); err != nil {
		log.Fatalf("Error opening geocode cache: %v", err)
	}
	defer database.CloseDB()

	t, err := csvfile.ReadFile(*input)
	if err != nil {
		log.Fatalf("Error reading %s: %v", *input, err)
	}
	for _, col := range []string{*streetCol, *cityCol, *zipCol} {
		if t.ColumnIndex(col) < 0 {
			log.Fatalf("%s has no %q column", *input, col)
		}
	}

	client := geocode.NewClient()
	log.Printf("Geocoding %d rows at one request per %s (cache hits are free)",
		len(t.Rows), client.Interval())

	t.Header = append(t.Header, "latitude", "longitude")
	resolved := 0
	ctx := context.Background()
	for i, row := range t.Rows {
		coords := client.Lookup(ctx,
			t.Column(row, *streetCol),
			t.Column(row, *cityCol),
			t.Column(row, *zipCol))
		if coords.Latitude != 0 || coords.Longitude != 0 {
			resolved++
		}
		t.Rows[i] = append(row,
			strconv.FormatFloat(coords.Latitude, 'f', -1, 64),
			strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
		if (i+1)%100 == 0 {
			log.Printf("Geocoded %d/%d rows", i+1, len(t.Rows))
		}
	}

	outPath := *output
	if outPath == "" {
		outPath = strings.TrimSuffix(*input, ".csv") + "_geocoded.csv"
	}
	if err := csvfile.WriteFile(outPath, t); err != nil {
		log.Fatalf("Error writing %s: %v", outPath, err)
	}
	log.Printf("Resolved %d of %d rows, wrote %s", resolved, len(t.Rows), outPath)
}
