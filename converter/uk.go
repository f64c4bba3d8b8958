package converter

import (
	"fmt"
	"log"
	"strings"

	"facilitymap/models"
)

// UKRow is one row of the raw uk-data.csv export from the FSA establishment
// register.
type UKRow struct {
	ID              string `csv:"id"`
	Name            string `csv:"name"`
	Operator        string `csv:"operator"`
	Address         string `csv:"address"`
	County          string `csv:"county"`
	Classifications string `csv:"classifications"`
	Latitude        string `csv:"latitude"`
	Longitude       string `csv:"longitude"`
	FirstImportedAt string `csv:"firstImportedAt"`
}

// UKClassification is the set of categories recognised in the UK
// comma-separated classification codes.
type UKClassification struct {
	CowSlaughter         bool
	PigSlaughter         bool
	SheepLambSlaughter   bool
	GoatSlaughter        bool
	PoultrySlaughter     bool
	OtherMammalSlaughter bool
	DairyFarm            bool
	IntensivePigFarm     bool
	IntensivePoultryFarm bool
}

// ParseUKClassifications maps the raw comma-separated code string onto the
// recognised categories. Codes may combine; unknown codes are logged and
// otherwise ignored.
func ParseUKClassifications(classifications string) UKClassification {
	var c UKClassification
	for _, code := range strings.Split(classifications, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		switch {
		case strings.Contains(code, "CowSlaughterhouse"):
			c.CowSlaughter = true
		case strings.Contains(code, "PigSlaughterhouse"):
			c.PigSlaughter = true
		case strings.Contains(code, "SheepAndLambSlaughterhouse"):
			c.SheepLambSlaughter = true
		case strings.Contains(code, "GoatSlaughterhouse"):
			c.GoatSlaughter = true
		case strings.Contains(code, "PoultrySlaughterhouse"):
			c.PoultrySlaughter = true
		case strings.Contains(code, "OtherMammalSlaughterhouse"):
			c.OtherMammalSlaughter = true
		case strings.Contains(code, "DairyFarm"):
			c.DairyFarm = true
		case strings.Contains(code, "IntensivePigFarm"):
			c.IntensivePigFarm = true
		case strings.Contains(code, "IntensivePoultryFarm"):
			c.IntensivePoultryFarm = true
		default:
			log.Printf("WARN Converter: unknown UK classification code %q, ignoring", code)
		}
	}
	return c
}

func (c UKClassification) hasSlaughter() bool {
	return c.CowSlaughter || c.PigSlaughter || c.SheepLambSlaughter ||
		c.GoatSlaughter || c.PoultrySlaughter || c.OtherMammalSlaughter
}

func (c UKClassification) hasFarm() bool {
	return c.DairyFarm || c.IntensivePigFarm || c.IntensivePoultryFarm
}

// Activities derives the combined activities string for the shared schema.
func (c UKClassification) Activities() string {
	var activities []string
	if c.hasSlaughter() {
		activities = append(activities, "Meat Slaughter")
	}
	if c.hasFarm() {
		activities = append(activities, "Animal Production")
	}
	if len(activities) == 0 {
		return "Unknown"
	}
	return strings.Join(activities, "; ")
}

// ConvertUKRow maps one UK register row onto the shared facility schema.
func ConvertUKRow(row UKRow) models.Location {
	c := ParseUKClassifications(row.Classifications)
	addr := ParseUKAddress(row.Address)

	loc := models.Location{
		EstablishmentID:     row.ID,
		EstablishmentNumber: row.ID,
		EstablishmentName:   row.Name,
		Street:              addr.Street,
		City:                addr.City,
		State:               row.County, // UK counties stand in for states
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

	// The UK register covers only pig, cow, sheep, goat and poultry
	// slaughter; other-mammal plants count as voluntary livestock and do
	// not set the top-level slaughter flag.
	regulated := c.CowSlaughter || c.PigSlaughter || c.SheepLambSlaughter ||
		c.GoatSlaughter || c.PoultrySlaughter
	loc.Slaughter = yes(regulated)
	loc.MeatSlaughter = yes(regulated)

	loc.BeefCowSlaughter = yes(c.CowSlaughter)
	loc.SteerSlaughter = yes(c.CowSlaughter)
	loc.HeiferSlaughter = yes(c.CowSlaughter)
	loc.BullStagSlaughter = yes(c.CowSlaughter)
	loc.DairyCowSlaughter = yes(c.CowSlaughter)

	loc.MarketSwineSlaughter = yes(c.PigSlaughter)
	loc.SowSlaughter = yes(c.PigSlaughter)

	loc.GoatSlaughter = yes(c.GoatSlaughter)
	loc.YoungGoatSlaughter = yes(c.GoatSlaughter)
	loc.AdultGoatSlaughter = yes(c.GoatSlaughter)

	loc.SheepSlaughter = yes(c.SheepLambSlaughter)
	loc.LambSlaughter = yes(c.SheepLambSlaughter)

	loc.PoultrySlaughter = yes(c.PoultrySlaughter)
	loc.YoungChickenSlaughter = yes(c.PoultrySlaughter)

	loc.OtherVoluntaryLivestockSlaughter = yes(c.OtherMammalSlaughter)

	return loc
}

// ukTypeNames maps UK classification codes to the human-readable facility
// types used by the relabel pass.
var ukTypeNames = map[string]string{
	"DairyFarm":                  "Dairy Farm",
	"IntensivePigFarm":           "Intensive Pig Farm",
	"IntensivePoultryFarm":       "Intensive Poultry Farm",
	"IntensiveSowPigFarm":        "Intensive Sow Pig Farm",
	"FinishingUnit":              "Finishing Unit",
	"CowSlaughterhouse":          "Cattle Slaughterhouse",
	"PigSlaughterhouse":          "Pig Slaughterhouse",
	"PoultrySlaughterhouse":      "Poultry Slaughterhouse",
	"SheepAndLambSlaughterhouse": "Sheep & Lamb Slaughterhouse",
	"GoatSlaughterhouse":         "Goat Slaughterhouse",
	"HorseSlaughterhouse":        "Horse Slaughterhouse",
	"LargeBirdSlaughterhouse":    "Large Bird Slaughterhouse",
	"WildBirdSlaughterhouse":     "Wild Bird Slaughterhouse",
	"WildRabbitSlaughterhouse":   "Wild Rabbit Slaughterhouse",
	"OtherMammalSlaughterhouse":  "Other Mammal Slaughterhouse",
}

// UKPrimaryType picks one descriptive type label for a facility. Farm
// classifications win over slaughterhouse ones; multiples of the same kind
// collapse into a "Mixed ..." label.
func UKPrimaryType(classifications string) string {
	if strings.TrimSpace(classifications) == "" {
		return "Unknown Facility"
	}

	var farmTypes, slaughterTypes []string
	for _, code := range strings.Split(classifications, ",") {
		code = strings.TrimSpace(code)
		name, ok := ukTypeNames[code]
		if !ok {
			continue
		}
		if strings.Contains(name, "Farm") || strings.Contains(name, "Unit") {
			farmTypes = append(farmTypes, name)
		} else {
			slaughterTypes = append(slaughterTypes, name)
		}
	}

	switch {
	case len(farmTypes) > 1:
		return fmt.Sprintf("Mixed Farm (%s)", strings.Join(farmTypes, ", "))
	case len(farmTypes) == 1:
		return farmTypes[0]
	case len(slaughterTypes) > 1:
		return fmt.Sprintf("Mixed Slaughterhouse (%s)", strings.Join(slaughterTypes, ", "))
	case len(slaughterTypes) == 1:
		return slaughterTypes[0]
	default:
		return fmt.Sprintf("Unknown (%s)", classifications)
	}
}
