package converter

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"facilitymap/models"
)

// KML document structure — only the elements the converter needs. Folders
// nest, so the type is recursive.
type kmlDocument struct {
	XMLName xml.Name    `xml:"kml"`
	Folders []kmlFolder `xml:"Document>Folder"`
}

type kmlFolder struct {
	Name       string         `xml:"name"`
	Folders    []kmlFolder    `xml:"Folder"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
	Coordinates string `xml:"Point>coordinates"`
}

// franceFolderTypes maps the KML folder names of the French export to
// facility activities.
var franceFolderTypes = map[string]string{
	"Elevages divers":                                        "Animal Production",
	"Elevages et Accessoires de chasse et pêche":             "Animal Production; Hunting/Game",
	"Elevages de Chasse (AUTRES)":                            "Animal Production; Hunting/Game",
	"Abattoirs":                                              "Meat Slaughter",
	"Liste des Abattoirs ALIM' CONFIANCE":                    "Meat Slaughter",
	"Abattoirs Personnes Aquatiques ALIM' CONFIANCE":         "Aquatic Processing",
	"Vivier - Personnes aquatiques vivantes ALIM' CONFIANCE": "Aquatic Production",
	"Points reçus":                                           "Other",
}

var (
	htmlTagRegex = regexp.MustCompile(`<[^>]+>`)
	cdataRegex   = regexp.MustCompile(`\[CDATA\[|\]\]`)
)

func cleanKMLText(s string) string {
	s = cdataRegex.ReplaceAllString(s, "")
	s = htmlTagRegex.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

func franceFolderType(folderName string) string {
	if t, ok := franceFolderTypes[folderName]; ok {
		return t
	}
	return "Animal Production"
}

// FranceActivities refines the folder-level facility type with keywords
// found in the placemark description.
func FranceActivities(description, folderName string) string {
	base := franceFolderType(folderName)
	if description == "" {
		return base
	}
	desc := strings.ToLower(description)

	var activities []string
	switch {
	case containsAny(desc, "abattoir", "slaughter", "abattage", "salle d'abattage"):
		if strings.Contains(base, "Animal Production") {
			activities = append(activities, "Animal Production")
		}
		activities = append(activities, "Meat Slaughter")
	case containsAny(desc, "pédagogique", "educative", "ferme pédagogique"):
		activities = append(activities, "Exhibition")
	case containsAny(desc, "faisan", "perdrix", "sanglier", "chasse", "gibier"):
		activities = append(activities, "Animal Production", "Hunting/Game")
	default:
		activities = strings.Split(base, "; ")
	}

	seen := make(map[string]bool, len(activities))
	unique := activities[:0]
	for _, a := range activities {
		if !seen[a] {
			seen[a] = true
			unique = append(unique, a)
		}
	}
	return strings.Join(unique, "; ")
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// parseKMLCoordinates splits the "longitude,latitude,altitude" coordinate
// string. A malformed string yields zero coordinates and a log line.
func parseKMLCoordinates(s string) (lat, lon float64) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) < 2 {
		if strings.TrimSpace(s) != "" {
			log.Printf("WARN Converter: malformed KML coordinates %q", s)
		}
		return 0, 0
	}
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLon != nil || errLat != nil {
		log.Printf("WARN Converter: malformed KML coordinates %q", s)
		return 0, 0
	}
	return lat, lon
}

// ConvertFranceKML reads a KML export of French facilities and maps every
// placemark onto the shared schema. Establishment IDs are assigned
// sequentially in document order.
func ConvertFranceKML(r io.Reader) ([]models.Location, error) {
	var doc kmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse KML: %w", err)
	}

	var locations []models.Location
	nextID := 1
	for _, folder := range doc.Folders {
		convertKMLFolder(folder, &locations, &nextID)
	}
	log.Printf("Converter: mapped %d French placemarks", len(locations))
	return locations, nil
}

func convertKMLFolder(folder kmlFolder, out *[]models.Location, nextID *int) {
	folderName := cleanKMLText(folder.Name)
	for _, pm := range folder.Placemarks {
		name := cleanKMLText(pm.Name)
		if name == "" {
			name = fmt.Sprintf("Location %d", *nextID)
		}
		description := cleanKMLText(pm.Description)
		lat, lon := parseKMLCoordinates(pm.Coordinates)

		id := strconv.Itoa(*nextID)
		*out = append(*out, models.Location{
			EstablishmentID:     id,
			EstablishmentNumber: id,
			EstablishmentName:   name,
			Activities:          FranceActivities(description, folderName),
			GrantDate:           "2024-03-01",
			Size:                "Unknown",
			Latitude:            lat,
			Longitude:           lon,

			SlaughterVolumeCategory:  "Unknown",
			ProcessingVolumeCategory: "Unknown",
		})
		*nextID++
	}
	for _, sub := range folder.Folders {
		convertKMLFolder(sub, out, nextID)
	}
}
