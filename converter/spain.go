package converter

import (
	"log"
	"strings"

	"facilitymap/models"
)

// SpainRow is one row of the raw spain-data.csv export.
type SpainRow struct {
	ID              string `csv:"id"`
	Name            string `csv:"name"`
	Operator        string `csv:"operator"`
	Address         string `csv:"address"`
	County          string `csv:"county"`
	Country         string `csv:"country"`
	Classifications string `csv:"classifications"`
	Latitude        string `csv:"latitude"`
	Longitude       string `csv:"longitude"`
	FirstImportedAt string `csv:"firstImportedAt"`
}

// SpainClassification covers the categories present in the Spanish export.
// The register lists farming and breeding operations only; there are no
// slaughter facilities in this source.
type SpainClassification struct {
	IntensivePigFarm         bool
	IntensivePigBreedingFarm bool
	IntensivePoultryFarm     bool
	Aquaculture              bool
}

// ParseSpainClassifications maps the raw comma-separated code string onto
// the recognised categories. Unknown codes are logged and ignored.
func ParseSpainClassifications(classifications string) SpainClassification {
	var c SpainClassification
	for _, code := range strings.Split(classifications, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		switch {
		// Order matters: the sow-breeding code contains the plain pig-farm
		// code as a prefix.
		case strings.Contains(code, "GranjaPorcinaIntensivaDeCerdas"):
			c.IntensivePigBreedingFarm = true
		case strings.Contains(code, "GranjaPorcinaIntensiva"):
			c.IntensivePigFarm = true
		case strings.Contains(code, "GranjaAvícolaIntensiva"):
			c.IntensivePoultryFarm = true
		case strings.Contains(code, "Acuicultura"):
			c.Aquaculture = true
		default:
			log.Printf("WARN Converter: unknown Spain classification code %q, ignoring", code)
		}
	}
	return c
}

// Activities derives the combined activities string for the shared schema.
func (c SpainClassification) Activities() string {
	var activities []string
	if c.IntensivePigFarm || c.IntensivePigBreedingFarm || c.IntensivePoultryFarm {
		activities = append(activities, "Animal Production")
	}
	if c.Aquaculture {
		activities = append(activities, "Aquaculture")
	}
	if len(activities) == 0 {
		return "Unknown"
	}
	return strings.Join(activities, "; ")
}

// ConvertSpainRow maps one Spanish register row onto the shared facility
// schema. All slaughter and processing flags stay empty.
func ConvertSpainRow(row SpainRow) models.Location {
	c := ParseSpainClassifications(row.Classifications)
	addr := ParseSpainAddress(row.Address)

	state := row.Country // the autonomous community
	if state == "" {
		state = row.County
	}

	loc := models.Location{
		EstablishmentID:     row.ID,
		EstablishmentNumber: row.ID,
		EstablishmentName:   row.Name,
		Street:              addr.Street,
		City:                addr.City,
		State:               state,
		Zip:                 addr.Zip,
		Activities:          c.Activities(),
		County:              row.County,
		Size:                "Unknown",
		Latitude:            parseCoordinate(row.Latitude, "latitude", row.Name, row.ID),
		Longitude:           parseCoordinate(row.Longitude, "longitude", row.Name, row.ID),

		SlaughterVolumeCategory:  "Unknown",
		ProcessingVolumeCategory: "Unknown",
	}
	if len(row.FirstImportedAt) >= 10 {
		loc.GrantDate = row.FirstImportedAt[:10]
	}
	if row.Operator != row.Name {
		loc.Dbas = row.Operator
	}
	return loc
}

// spainTypeNames maps Spanish classification codes to the human-readable
// facility types used by the relabel pass.
var spainTypeNames = map[string]string{
	"GranjaPorcinaIntensiva":         "Pig Farm",
	"GranjaPorcinaIntensivaDeCerdas": "Pig Breeding Farm",
	"GranjaAvícolaIntensiva":         "Poultry Farm",
	"Acuicultura":                    "Aquaculture",
}

// SpainTypeFor returns the descriptive type for a raw classification, or
// "" (with a log line) for one with no mapping.
func SpainTypeFor(classification string) string {
	t, ok := spainTypeNames[strings.TrimSpace(classification)]
	if !ok {
		log.Printf("WARN Converter: unknown Spain classification %q, type left unchanged", classification)
		return ""
	}
	return t
}
