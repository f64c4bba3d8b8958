package converter

import "testing"

func TestParseSpainClassifications(t *testing.T) {
	c := ParseSpainClassifications("GranjaPorcinaIntensiva, Acuicultura")
	if !c.IntensivePigFarm || !c.Aquaculture {
		t.Errorf("known codes not recognised: %+v", c)
	}
	if c.IntensivePigBreedingFarm || c.IntensivePoultryFarm {
		t.Errorf("unset categories flagged: %+v", c)
	}
}

func TestParseSpainClassificationsBreedingBeforePlain(t *testing.T) {
	c := ParseSpainClassifications("GranjaPorcinaIntensivaDeCerdas")
	if !c.IntensivePigBreedingFarm {
		t.Error("breeding code not recognised")
	}
	if c.IntensivePigFarm {
		t.Error("breeding code also matched the plain pig-farm category")
	}
}

func TestSpainActivities(t *testing.T) {
	tests := []struct {
		codes string
		want  string
	}{
		{"GranjaAvícolaIntensiva", "Animal Production"},
		{"Acuicultura", "Aquaculture"},
		{"GranjaPorcinaIntensiva, Acuicultura", "Animal Production; Aquaculture"},
		{"", "Unknown"},
	}
	for _, tt := range tests {
		if got := ParseSpainClassifications(tt.codes).Activities(); got != tt.want {
			t.Errorf("Activities(%q) = %q, want %q", tt.codes, got, tt.want)
		}
	}
}

func TestConvertSpainRowNeverSetsSlaughterFlags(t *testing.T) {
	loc := ConvertSpainRow(SpainRow{
		ID:              "ES-55",
		Name:            "Granja El Prado",
		Address:         "Camino Real 8, Lorca, 30800, España",
		County:          "Murcia",
		Country:         "Región de Murcia",
		Classifications: "GranjaPorcinaIntensiva",
		Latitude:        "37.67",
		Longitude:       "-1.70",
	})

	if loc.Slaughter != "" || loc.MeatSlaughter != "" || loc.MarketSwineSlaughter != "" {
		t.Errorf("Spanish farm carries slaughter flags: %q %q %q",
			loc.Slaughter, loc.MeatSlaughter, loc.MarketSwineSlaughter)
	}
	if loc.Activities != "Animal Production" {
		t.Errorf("Activities = %q", loc.Activities)
	}
	if loc.State != "Región de Murcia" || loc.County != "Murcia" {
		t.Errorf("state/county = %q/%q", loc.State, loc.County)
	}
	if loc.City != "Lorca" || loc.Zip != "30800" {
		t.Errorf("address = %q/%q", loc.City, loc.Zip)
	}
}

func TestConvertSpainRowStateFallsBackToCounty(t *testing.T) {
	loc := ConvertSpainRow(SpainRow{ID: "ES-1", County: "Huesca"})
	if loc.State != "Huesca" {
		t.Errorf("State = %q, want county fallback", loc.State)
	}
}

func TestSpainTypeFor(t *testing.T) {
	if got := SpainTypeFor("GranjaPorcinaIntensiva"); got != "Pig Farm" {
		t.Errorf("SpainTypeFor = %q", got)
	}
	if got := SpainTypeFor("AlgoNuevo"); got != "" {
		t.Errorf("unknown classification produced %q", got)
	}
}
