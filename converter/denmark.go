package converter

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"facilitymap/models"
)

// findsmileyDocument is the XML export of the Danish findsmiley register.
type findsmileyDocument struct {
	Rows []findsmileyRow `xml:"row"`
}

type findsmileyRow struct {
	Navnelbnr    string `xml:"navnelbnr"`
	CVR          string `xml:"cvrnr"`
	PNumber      string `xml:"pnr"`
	IndustryCode string `xml:"brancheKode"`
	Industry     string `xml:"branche"`
	CompanyType  string `xml:"virksomhedstype"`
	Name         string `xml:"navn1"`
	Address      string `xml:"adresse1"`
	Zip          string `xml:"postnr"`
	City         string `xml:"By"`
	Longitude    string `xml:"Geo_Lng"`
	Latitude     string `xml:"Geo_Lat"`
}

// denmarkActivities maps findsmiley industry labels to activities. Labels
// not listed here but passing the animal-product filter fall back to
// "Meat Processing" with a warning.
var denmarkActivities = map[string]string{
	"Fremstilling af animalske produkter - Fisk og muslinger m.v.":   "Meat Processing; Meat Slaughter",
	"Fremstilling af animalske produkter - Kød":                      "Meat Processing; Meat Slaughter",
	"Slagterier":                                                     "Meat Processing; Meat Slaughter",
	"Specialforretning - Slagter m.v.":                               "Meat Processing; Meat Slaughter",
	"Virksomhed, foreløbig AUT: Slagteri, slagteri med fremstilli":   "Meat Processing; Meat Slaughter",
	"Virksomhed, foreløbig: Slagter, slagterafdeling":                "Meat Processing; Meat Slaughter",
	"Fremstilling af animalske produkter - Andre produkter":          "Meat Processing",
	"Fremstilling af animalske produkter - Mælk og ost":              "Meat Processing",
	"Fremstilling af animalske produkter - Æg":                       "Meat Processing",
}

func denmarkRelevant(industry string) bool {
	lower := strings.ToLower(industry)
	return strings.HasPrefix(lower, "fremstilling af animalske produkter") ||
		strings.Contains(lower, "slagter")
}

// ConvertDenmarkXML reads the findsmiley XML export, keeps the
// animal-product and slaughter industries, and maps them onto the shared
// schema.
func ConvertDenmarkXML(r io.Reader) ([]models.Location, error) {
	var doc findsmileyDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse findsmiley XML: %w", err)
	}

	var locations []models.Location
	for _, row := range doc.Rows {
		if !denmarkRelevant(row.Industry) {
			continue
		}
		activities, ok := denmarkActivities[row.Industry]
		if !ok {
			log.Printf("WARN Converter: unmapped Danish industry %q, defaulting to Meat Processing", row.Industry)
			activities = "Meat Processing"
		}

		id := strconv.Itoa(len(locations))
		lat, _ := strconv.ParseFloat(row.Latitude, 64)
		lon, _ := strconv.ParseFloat(row.Longitude, 64)

		locations = append(locations, models.Location{
			EstablishmentID:   id,
			EstablishmentName: row.Name,
			Street:            row.Address,
			City:              row.City,
			Zip:               row.Zip,
			Activities:        activities,
			County:            "Denmark",
			Latitude:          lat,
			Longitude:         lon,
		})
	}
	log.Printf("Converter: kept %d of %d Danish rows", len(locations), len(doc.Rows))
	return locations, nil
}
