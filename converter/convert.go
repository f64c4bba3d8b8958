package converter

import (
	"log"
	"strconv"
)

func yes(b bool) string {
	if b {
		return "Yes"
	}
	return ""
}

// parseCoordinate parses a latitude/longitude string, logging and falling
// back to 0 when the value is missing or malformed so a bad row never stops
// a conversion run.
func parseCoordinate(s, which, name, id string) float64 {
	if s == "" {
		log.Printf("WARN Converter: missing %s for facility %s (ID: %s)", which, name, id)
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("WARN Converter: invalid %s for facility %s (ID: %s): %q", which, name, id, s)
		return 0
	}
	return v
}
