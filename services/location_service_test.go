package services

import (
	"testing"

	"facilitymap/models"
)

func TestAnimalsSlaughteredSummary(t *testing.T) {
	loc := models.Location{
		BeefCowSlaughter:     "Yes",
		MarketSwineSlaughter: "Yes",
		LambSlaughter:        "Yes",
	}
	got := AnimalsSlaughteredSummary(&loc)
	want := "Cattle (Cows, Bulls), Pigs, Sheep & Lambs"
	if got != want {
		t.Errorf("AnimalsSlaughteredSummary = %q, want %q", got, want)
	}

	if got := AnimalsSlaughteredSummary(&models.Location{}); got != "" {
		t.Errorf("empty location produced %q", got)
	}
}

func TestAnimalsSlaughteredSummaryGroupsSpecies(t *testing.T) {
	// Several flags in the same group collapse to a single name.
	loc := models.Location{
		BeefCowSlaughter:      "Yes",
		DairyCowSlaughter:     "Yes",
		YoungChickenSlaughter: "Yes",
		HeavyFowlSlaughter:    "Yes",
		OstrichSlaughter:      "Yes",
	}
	got := AnimalsSlaughteredSummary(&loc)
	want := "Cattle (Cows, Bulls), Chickens, Ratites (Ostrich, Emu, etc.)"
	if got != want {
		t.Errorf("AnimalsSlaughteredSummary = %q, want %q", got, want)
	}
}

func TestAnimalsProcessedSummary(t *testing.T) {
	loc := models.Location{
		BeefProcessing:    "Yes",
		ChickenProcessing: "Yes",
		RatiteProcessing:  "Yes",
	}
	got := AnimalsProcessedSummary(&loc)
	want := "Beef, Chicken, Ratite (Ostrich/Emu)"
	if got != want {
		t.Errorf("AnimalsProcessedSummary = %q, want %q", got, want)
	}

	if got := AnimalsProcessedSummary(&models.Location{}); got != "N/A" {
		t.Errorf("empty location produced %q, want \"N/A\"", got)
	}
}

func TestAnimalsTestedSummary(t *testing.T) {
	r := models.AphisReport{
		Dogs:             "12",
		Cats:             "0",
		Rabbits:          "1,204",
		NonHumanPrimates: "",
		Pigs:             "n/a",
		Sheep:            "30.0",
	}
	got := AnimalsTestedSummary(&r)
	// "1,204" does not parse as a number and is skipped.
	want := "12 Dogs, 30 Sheep"
	if got != want {
		t.Errorf("AnimalsTestedSummary = %q, want %q", got, want)
	}

	if got := AnimalsTestedSummary(&models.AphisReport{}); got != "Unknown" {
		t.Errorf("empty report produced %q, want \"Unknown\"", got)
	}
}

func TestToLocationResponse(t *testing.T) {
	loc := models.Location{
		EstablishmentID:   "M1234",
		EstablishmentName: "Acme Meats",
		Activities:        "Meat Slaughter; Meat Processing",
		Slaughter:         "Yes",
		BeefCowSlaughter:  "Yes",
		PorkProcessing:    "Yes",
		Latitude:          41.8,
		Longitude:         -87.6,
	}
	resp := toLocationResponse(loc)
	if resp.EstablishmentID != "M1234" || resp.Activities != "Meat Slaughter; Meat Processing" {
		t.Errorf("response identity fields = %+v", resp)
	}
	if resp.AnimalsSlaughtered != "Cattle (Cows, Bulls)" {
		t.Errorf("AnimalsSlaughtered = %q", resp.AnimalsSlaughtered)
	}
	if resp.AnimalsProcessed != "Pork" {
		t.Errorf("AnimalsProcessed = %q", resp.AnimalsProcessed)
	}
}
