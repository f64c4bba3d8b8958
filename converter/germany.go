package converter

import (
	"fmt"
	"log"
	"strings"

	"facilitymap/models"
)

// GermanyRow is one row of the merged BVL establishment export. The export
// carries no header; fields are addressed by position.
type GermanyRow struct {
	PrimaryID     string
	AlternateID   string
	Name          string
	Address       string // "Straße 1 12345 Stadt"
	ActivityCodes string // e.g. "SH, CP"
	SpeciesCodes  string // e.g. "B, C, O, P"
}

// ParseGermanyRecord builds a GermanyRow from a raw CSV record.
func ParseGermanyRecord(record []string) (GermanyRow, error) {
	if len(record) < 7 {
		return GermanyRow{}, fmt.Errorf("expected at least 7 fields, got %d", len(record))
	}
	return GermanyRow{
		PrimaryID:     strings.TrimSpace(record[0]),
		AlternateID:   strings.TrimSpace(record[1]),
		Name:          strings.TrimSpace(record[2]),
		Address:       strings.TrimSpace(record[3]),
		ActivityCodes: strings.TrimSpace(record[4]),
		SpeciesCodes:  strings.TrimSpace(record[6]),
	}, nil
}

// germanySpecies is the species coverage decoded from the BVL letter codes.
type germanySpecies struct {
	bovine        bool // B
	caprine       bool // C
	ovine         bool // O
	porcine       bool // P
	poultry       bool // A
	lagomorphs    bool // L
	ratites       bool // R
	wildUngulates bool // wU
}

func parseGermanySpecies(codes string) germanySpecies {
	var s germanySpecies
	for _, code := range strings.Split(codes, ",") {
		switch strings.TrimSpace(code) {
		case "":
		case "B":
			s.bovine = true
		case "C":
			s.caprine = true
		case "O":
			s.ovine = true
		case "P":
			s.porcine = true
		case "A":
			s.poultry = true
		case "L":
			s.lagomorphs = true
		case "R":
			s.ratites = true
		case "wU":
			s.wildUngulates = true
		case "S", "fG", "wA", "wL", "wG":
			// Solipeds, farmed game and the wild-animal codes have no
			// column in the shared schema.
		default:
			log.Printf("WARN Converter: unknown BVL species code %q, ignoring", strings.TrimSpace(code))
		}
	}
	return s
}

// ConvertGermanyRow maps one BVL export row onto the shared facility schema.
// Coordinates are left at zero; the caller fills them in from the geocoding
// cache or a live lookup.
func ConvertGermanyRow(row GermanyRow) models.Location {
	id := row.PrimaryID
	if id == "" {
		id = row.AlternateID
	}
	addr := ParseGermanAddress(row.Address)
	species := parseGermanySpecies(row.SpeciesCodes)

	var slaughter, processing bool
	var activities []string
	if strings.Contains(row.ActivityCodes, "CP") || strings.Contains(row.ActivityCodes, "GME") {
		activities = append(activities, "Meat Processing")
		processing = true
	}
	if strings.Contains(row.ActivityCodes, "SH") {
		activities = append(activities, "Meat Slaughter")
		slaughter = true
	}

	loc := models.Location{
		EstablishmentID:   id,
		EstablishmentName: row.Name,
		Street:            addr.Street,
		City:              addr.City,
		Zip:               addr.Zip,
		Activities:        strings.Join(activities, "; "),

		Slaughter:                 yes(slaughter),
		MeatSlaughter:             yes(slaughter),
		SlaughterOrProcessingOnly: yes(slaughter != processing),
	}

	loc.BeefCowSlaughter = yes(slaughter && species.bovine)
	loc.SteerSlaughter = yes(slaughter && species.bovine)
	loc.HeiferSlaughter = yes(slaughter && species.bovine)
	loc.BullStagSlaughter = yes(slaughter && species.bovine)
	loc.DairyCowSlaughter = yes(slaughter && species.bovine)
	loc.HeavyCalfSlaughter = yes(slaughter && species.bovine)
	loc.BobVealSlaughter = yes(slaughter && species.bovine)
	loc.FormulaFedVealSlaughter = yes(slaughter && species.bovine)
	loc.NonFormulaFedVealSlaughter = yes(slaughter && species.bovine)

	loc.MarketSwineSlaughter = yes(slaughter && species.porcine)
	loc.SowSlaughter = yes(slaughter && species.porcine)
	loc.RoasterSwineSlaughter = yes(slaughter && species.porcine)
	loc.BoarStagSwineSlaughter = yes(slaughter && species.wildUngulates)
	loc.StagSwineSlaughter = yes(slaughter && species.wildUngulates)
	loc.FeralSwineSlaughter = yes(slaughter && species.wildUngulates)

	loc.GoatSlaughter = yes(slaughter && species.caprine)
	loc.YoungGoatSlaughter = yes(slaughter && species.caprine)
	loc.AdultGoatSlaughter = yes(slaughter && species.caprine)

	loc.SheepSlaughter = yes(slaughter && species.ovine)
	loc.LambSlaughter = yes(slaughter && species.ovine)

	loc.RabbitSlaughter = yes(slaughter && species.lagomorphs)

	loc.PoultrySlaughter = yes(slaughter && species.poultry)
	loc.YoungChickenSlaughter = yes(slaughter && species.poultry)
	loc.LightFowlSlaughter = yes(slaughter && species.poultry)
	loc.HeavyFowlSlaughter = yes(slaughter && species.poultry)
	loc.CaponSlaughter = yes(slaughter && species.poultry)
	loc.YoungTurkeySlaughter = yes(slaughter && species.poultry)
	loc.YoungBreederTurkeySlaughter = yes(slaughter && species.poultry)
	loc.OldBreederTurkeySlaughter = yes(slaughter && species.poultry)
	loc.FryerRoasterTurkeySlaughter = yes(slaughter && species.poultry)
	loc.DuckSlaughter = yes(slaughter && species.poultry)
	loc.GooseSlaughter = yes(slaughter && species.poultry)

	loc.OstrichSlaughter = yes(slaughter && species.ratites)
	loc.EmuSlaughter = yes(slaughter && species.ratites)
	loc.RheaSlaughter = yes(slaughter && species.ratites)

	loc.BeefProcessing = yes(processing && species.bovine)
	loc.PorkProcessing = yes(processing && species.porcine)
	loc.DeerProcessing = yes(processing && species.wildUngulates)
	loc.ElkProcessing = yes(processing && species.wildUngulates)
	loc.GoatProcessing = yes(processing && species.caprine)
	loc.RabbitProcessing = yes(processing && species.lagomorphs)
	loc.SheepProcessing = yes(processing && species.ovine)
	loc.ChickenProcessing = yes(processing && species.poultry)
	loc.DuckProcessing = yes(processing && species.poultry)
	loc.GooseProcessing = yes(processing && species.poultry)
	loc.TurkeyProcessing = yes(processing && species.poultry)
	loc.RatiteProcessing = yes(processing && species.ratites)

	return loc
}

// ConvertGermanyRecords parses and converts every raw CSV record. The BVL
// export has no header row, so record 1 is already an establishment. Records
// that do not parse are logged and counted in skipped.
func ConvertGermanyRecords(records [][]string, firstLine int) (locations []models.Location, skipped int) {
	locations = make([]models.Location, 0, len(records))
	for i, record := range records {
		row, err := ParseGermanyRecord(record)
		if err != nil {
			log.Printf("WARN Converter: skipping record %d: %v", i+firstLine, err)
			skipped++
			continue
		}
		locations = append(locations, ConvertGermanyRow(row))
	}
	return locations, skipped
}
