// fetch-sources downloads the bulk registry exports the converter commands
// read: the UK FSA approved establishments CSV, the Spanish RGSEAA CSV, the
// German BVL CSV, the French agrément KML and the Danish smiley XML. Sources
// are named uk, es, de, fr, dk; an explicit -url/-output pair fetches an
// arbitrary file instead.
package main

import (
	"flag"
	"log"
	"strings"

	"facilitymap/config"
	"facilitymap/scraper"
)

func main() {
	source := flag.String("source", "", "Named source(s) to fetch, comma-separated (uk, es, de, fr, dk)")
	url := flag.String("url", "", "Explicit URL to fetch instead of a named source")
	output := flag.String("output", "", "Local save path, required with -url")
	configPath := flag.String("config", "", "Optional config yaml path")
	flag.Parse()

	if err := config.LoadConfig(*configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if *url != "" {
		if *output == "" {
			log.Fatalf("Missing required -output flag for -url")
		}
		if err := scraper.DownloadFile(*url, *output); err != nil {
			log.Fatalf("Error downloading %s: %v", *url, err)
		}
		return
	}

	if *source == "" {
		log.Fatalf("Missing required -source flag (or -url/-output)")
	}
	for _, name := range strings.Split(*source, ",") {
		name = strings.TrimSpace(name)
		path, err := scraper.DownloadSource(name)
		if err != nil {
			log.Fatalf("Error fetching source %s: %v", name, err)
		}
		log.Printf("Fetched %s to %s", name, path)
	}
}
