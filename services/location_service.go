// Package services loads the compiled static CSV exports into memory and
// shapes them for the API handlers.
package services

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jszwec/csvutil"

	"facilitymap/config"
	"facilitymap/models"
)

// LocationService serves the compiled facility data. All three data sets
// are loaded once at startup and held in memory; the exports are small
// enough (tens of thousands of rows) that reloading per request would be
// pointless.
type LocationService struct {
	locations         []models.LocationResponse
	aphisReports      []models.AphisReport
	inspectionReports []models.InspectionReport
}

// NewLocationService loads every configured static CSV. A missing optional
// data set (APHIS, inspections) is logged and served empty; the main
// locations file is required.
func NewLocationService() (*LocationService, error) {
	cfg := config.AppConfig.StaticData
	svc := &LocationService{}

	locations, err := loadCSV[models.Location](cfg.LocationsCSV)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations from %s: %w", cfg.LocationsCSV, err)
	}
	svc.locations = make([]models.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		svc.locations = append(svc.locations, toLocationResponse(loc))
	}
	log.Printf("Service: loaded %d locations from %s", len(svc.locations), cfg.LocationsCSV)

	svc.aphisReports, err = loadCSV[models.AphisReport](cfg.AphisReportsCSV)
	if err != nil {
		log.Printf("WARN Service: APHIS reports unavailable: %v", err)
		svc.aphisReports = []models.AphisReport{}
	}
	for i := range svc.aphisReports {
		svc.aphisReports[i].AnimalsTested = AnimalsTestedSummary(&svc.aphisReports[i])
	}

	svc.inspectionReports, err = loadCSV[models.InspectionReport](cfg.InspectionReportsCSV)
	if err != nil {
		log.Printf("WARN Service: inspection reports unavailable: %v", err)
		svc.inspectionReports = []models.InspectionReport{}
	}

	return svc, nil
}

// GetLocations returns every facility in response shape.
func (s *LocationService) GetLocations() []models.LocationResponse {
	return s.locations
}

// GetAphisReports returns the combined APHIS annual-report rows.
func (s *LocationService) GetAphisReports() []models.AphisReport {
	return s.aphisReports
}

// GetInspectionReports returns the cleaned inspection-report rows.
func (s *LocationService) GetInspectionReports() []models.InspectionReport {
	return s.inspectionReports
}

func loadCSV[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []T
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rows, nil
}

func toLocationResponse(loc models.Location) models.LocationResponse {
	return models.LocationResponse{
		EstablishmentID:          loc.EstablishmentID,
		EstablishmentName:        loc.EstablishmentName,
		Latitude:                 loc.Latitude,
		Longitude:                loc.Longitude,
		Activities:               loc.Activities,
		State:                    loc.State,
		City:                     loc.City,
		Street:                   loc.Street,
		Zip:                      loc.Zip,
		Slaughter:                loc.Slaughter,
		AnimalsSlaughtered:       AnimalsSlaughteredSummary(&loc),
		AnimalsProcessed:         AnimalsProcessedSummary(&loc),
		SlaughterVolumeCategory:  loc.SlaughterVolumeCategory,
		ProcessingVolumeCategory: loc.ProcessingVolumeCategory,
		Dbas:                     loc.Dbas,
		Phone:                    loc.Phone,
		GrantDate:                loc.GrantDate,
	}
}

// AnimalsSlaughteredSummary collapses the per-species slaughter flags into
// the grouped common names the map shows, e.g. "Cattle (Cows, Bulls),
// Pigs, Sheep & Lambs". No flags set yields an empty string.
func AnimalsSlaughteredSummary(loc *models.Location) string {
	groups := []struct {
		name  string
		flags []string
	}{
		{"Cattle (Cows, Bulls)", []string{loc.BeefCowSlaughter, loc.SteerSlaughter, loc.HeiferSlaughter, loc.BullStagSlaughter, loc.DairyCowSlaughter}},
		{"Calves (Veal)", []string{loc.HeavyCalfSlaughter, loc.BobVealSlaughter, loc.FormulaFedVealSlaughter, loc.NonFormulaFedVealSlaughter}},
		{"Pigs", []string{loc.MarketSwineSlaughter, loc.SowSlaughter, loc.RoasterSwineSlaughter, loc.BoarStagSwineSlaughter, loc.StagSwineSlaughter, loc.FeralSwineSlaughter}},
		{"Goats", []string{loc.GoatSlaughter, loc.YoungGoatSlaughter, loc.AdultGoatSlaughter}},
		{"Sheep & Lambs", []string{loc.SheepSlaughter, loc.LambSlaughter}},
		{"Deer & Reindeer", []string{loc.DeerReindeerSlaughter}},
		{"Antelope", []string{loc.AntelopeSlaughter}},
		{"Elk", []string{loc.ElkSlaughter}},
		{"Bison & Buffalo", []string{loc.BisonSlaughter, loc.BuffaloSlaughter, loc.WaterBuffaloSlaughter, loc.CattaloSlaughter}},
		{"Yak", []string{loc.YakSlaughter}},
		{"Other Livestock", []string{loc.OtherVoluntaryLivestockSlaughter}},
		{"Rabbits", []string{loc.RabbitSlaughter}},
		{"Chickens", []string{loc.YoungChickenSlaughter, loc.LightFowlSlaughter, loc.HeavyFowlSlaughter, loc.CaponSlaughter}},
		{"Turkeys", []string{loc.YoungTurkeySlaughter, loc.YoungBreederTurkeySlaughter, loc.OldBreederTurkeySlaughter, loc.FryerRoasterTurkeySlaughter}},
		{"Ducks", []string{loc.DuckSlaughter}},
		{"Geese", []string{loc.GooseSlaughter}},
		{"Pheasants", []string{loc.PheasantSlaughter}},
		{"Quail", []string{loc.QuailSlaughter}},
		{"Guinea Fowl", []string{loc.GuineaSlaughter}},
		{"Ratites (Ostrich, Emu, etc.)", []string{loc.OstrichSlaughter, loc.EmuSlaughter, loc.RheaSlaughter}},
		{"Pigeons (Squab)", []string{loc.SquabSlaughter}},
		{"Other Poultry", []string{loc.OtherVoluntaryPoultrySlaughter}},
	}

	var names []string
	for _, g := range groups {
		for _, flag := range g.flags {
			if flag == "Yes" {
				names = append(names, g.name)
				break
			}
		}
	}
	return strings.Join(names, ", ")
}

// AnimalsProcessedSummary collapses the per-species processing flags into a
// readable list, or "N/A" when none are set.
func AnimalsProcessedSummary(loc *models.Location) string {
	pairs := []struct {
		flag string
		name string
	}{
		{loc.BeefProcessing, "Beef"},
		{loc.PorkProcessing, "Pork"},
		{loc.AntelopeProcessing, "Antelope"},
		{loc.BisonProcessing, "Bison"},
		{loc.BuffaloProcessing, "Buffalo"},
		{loc.DeerProcessing, "Deer"},
		{loc.ElkProcessing, "Elk"},
		{loc.GoatProcessing, "Goat"},
		{loc.OtherVoluntaryLivestockProcessing, "Other Voluntary Livestock"},
		{loc.RabbitProcessing, "Rabbit"},
		{loc.ReindeerProcessing, "Reindeer"},
		{loc.SheepProcessing, "Sheep"},
		{loc.YakProcessing, "Yak"},
		{loc.ChickenProcessing, "Chicken"},
		{loc.DuckProcessing, "Duck"},
		{loc.GooseProcessing, "Goose"},
		{loc.PigeonProcessing, "Pigeon"},
		{loc.RatiteProcessing, "Ratite (Ostrich/Emu)"},
		{loc.TurkeyProcessing, "Turkey"},
		{loc.ExoticPoultryProcessing, "Exotic Poultry"},
		{loc.OtherVoluntaryPoultryProcessing, "Other Voluntary Poultry"},
	}
	var names []string
	for _, p := range pairs {
		if p.flag == "Yes" {
			names = append(names, p.name)
		}
	}
	if len(names) == 0 {
		return "N/A"
	}
	return strings.Join(names, ", ")
}

// AnimalsTestedSummary lists the species an APHIS registrant reported
// counts for, each prefixed with the count, e.g. "12 Dogs, 1204 Rabbits".
// No positive counts yields "Unknown". Counts that do not parse as a
// number are skipped.
func AnimalsTestedSummary(r *models.AphisReport) string {
	pairs := []struct {
		count string
		name  string
	}{
		{r.Dogs, "Dogs"},
		{r.Cats, "Cats"},
		{r.GuineaPigs, "Guinea Pigs"},
		{r.Hamsters, "Hamsters"},
		{r.Rabbits, "Rabbits"},
		{r.NonHumanPrimates, "Non-Human Primates"},
		{r.Sheep, "Sheep"},
		{r.Pigs, "Pigs"},
		{r.OtherFarmAnimals, "Other Farm Animals"},
		{r.AllOtherAnimals, "All Other Animals"},
	}
	var tested []string
	for _, p := range pairs {
		n, err := strconv.ParseFloat(strings.TrimSpace(p.count), 64)
		if err == nil && n > 0 {
			tested = append(tested, fmt.Sprintf("%d %s", int(n), p.name))
		}
	}
	if len(tested) == 0 {
		return "Unknown"
	}
	return strings.Join(tested, ", ")
}
