package converter

import "testing"

func TestParseGermanyRecord(t *testing.T) {
	record := []string{"DE EZ 123", "", "Musterschlachthof GmbH", "Hauptstraße 12 80331 München", "SH, CP", "", "B, P"}
	row, err := ParseGermanyRecord(record)
	if err != nil {
		t.Fatalf("ParseGermanyRecord: %v", err)
	}
	if row.PrimaryID != "DE EZ 123" || row.Name != "Musterschlachthof GmbH" {
		t.Errorf("row = %+v", row)
	}
	if row.SpeciesCodes != "B, P" {
		t.Errorf("SpeciesCodes = %q", row.SpeciesCodes)
	}

	if _, err := ParseGermanyRecord([]string{"too", "short"}); err == nil {
		t.Error("expected error for a short record")
	}
}

func TestConvertGermanyRowSlaughterAndProcessing(t *testing.T) {
	loc := ConvertGermanyRow(GermanyRow{
		PrimaryID:     "DE EZ 123",
		Name:          "Musterschlachthof GmbH",
		Address:       "Hauptstraße 12 80331 München",
		ActivityCodes: "SH, CP",
		SpeciesCodes:  "B, P",
	})

	if loc.Activities != "Meat Processing; Meat Slaughter" {
		t.Errorf("Activities = %q", loc.Activities)
	}
	if loc.Slaughter != "Yes" || loc.MeatSlaughter != "Yes" {
		t.Errorf("slaughter flags = %q/%q", loc.Slaughter, loc.MeatSlaughter)
	}
	// Does both, so not a single-activity plant.
	if loc.SlaughterOrProcessingOnly != "" {
		t.Errorf("SlaughterOrProcessingOnly = %q", loc.SlaughterOrProcessingOnly)
	}

	if loc.BeefCowSlaughter != "Yes" || loc.MarketSwineSlaughter != "Yes" {
		t.Errorf("bovine/porcine slaughter = %q/%q", loc.BeefCowSlaughter, loc.MarketSwineSlaughter)
	}
	if loc.SheepSlaughter != "" || loc.PoultrySlaughter != "" {
		t.Errorf("unlisted species flagged: %q/%q", loc.SheepSlaughter, loc.PoultrySlaughter)
	}
	if loc.BeefProcessing != "Yes" || loc.PorkProcessing != "Yes" {
		t.Errorf("processing flags = %q/%q", loc.BeefProcessing, loc.PorkProcessing)
	}
	if loc.ChickenProcessing != "" {
		t.Errorf("ChickenProcessing = %q, want empty", loc.ChickenProcessing)
	}

	if loc.Street != "Hauptstraße 12" || loc.Zip != "80331" || loc.City != "München" {
		t.Errorf("address = %q/%q/%q", loc.Street, loc.Zip, loc.City)
	}
	if loc.Latitude != 0 || loc.Longitude != 0 {
		t.Errorf("coordinates should stay zero for the caller to fill")
	}
}

func TestConvertGermanyRowSlaughterOnly(t *testing.T) {
	loc := ConvertGermanyRow(GermanyRow{
		PrimaryID:     "DE EZ 456",
		ActivityCodes: "SH",
		SpeciesCodes:  "O",
	})
	if loc.SlaughterOrProcessingOnly != "Yes" {
		t.Errorf("SlaughterOrProcessingOnly = %q, want Yes", loc.SlaughterOrProcessingOnly)
	}
	if loc.SheepSlaughter != "Yes" || loc.LambSlaughter != "Yes" {
		t.Errorf("ovine flags = %q/%q", loc.SheepSlaughter, loc.LambSlaughter)
	}
	if loc.SheepProcessing != "" {
		t.Errorf("SheepProcessing = %q on a slaughter-only plant", loc.SheepProcessing)
	}
}

func TestConvertGermanyRowGameHandling(t *testing.T) {
	loc := ConvertGermanyRow(GermanyRow{
		PrimaryID:     "DE EZ 789",
		ActivityCodes: "GME",
		SpeciesCodes:  "wU",
	})
	if loc.Activities != "Meat Processing" {
		t.Errorf("Activities = %q", loc.Activities)
	}
	if loc.DeerProcessing != "Yes" || loc.ElkProcessing != "Yes" {
		t.Errorf("wild-ungulate processing = %q/%q", loc.DeerProcessing, loc.ElkProcessing)
	}
	if loc.Slaughter != "" {
		t.Errorf("Slaughter = %q on a game-handling plant", loc.Slaughter)
	}
}

func TestConvertGermanyRowAlternateID(t *testing.T) {
	loc := ConvertGermanyRow(GermanyRow{AlternateID: "BY 10001"})
	if loc.EstablishmentID != "BY 10001" {
		t.Errorf("EstablishmentID = %q, want the alternate ID fallback", loc.EstablishmentID)
	}
}

func TestConvertGermanyRecordsKeepsFirstRecord(t *testing.T) {
	// The export has no header row, so the very first record must come
	// through as an establishment.
	records := [][]string{
		{"DE EZ 123", "", "Musterschlachthof GmbH", "Hauptstraße 12 80331 München", "SH", "", "B"},
		{"too", "short"},
		{"DE EZ 456", "", "Wurstwaren Nord", "Hafenweg 3 20457 Hamburg", "CP", "", "P"},
	}
	locations, skipped := ConvertGermanyRecords(records, 1)
	if len(locations) != 2 {
		t.Fatalf("got %d locations, want 2", len(locations))
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if locations[0].EstablishmentID != "DE EZ 123" {
		t.Errorf("first record not converted, got %q", locations[0].EstablishmentID)
	}
}
