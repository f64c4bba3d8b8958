package converter

import (
	"strings"
	"testing"
)

const franceKML = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
<Document>
  <Folder>
    <name>Abattoirs</name>
    <Placemark>
      <name>Abattoir de Lapalisse</name>
      <description><![CDATA[<b>Abattoir</b> multi-espèces]]></description>
      <Point><coordinates>3.6377,46.2488,0</coordinates></Point>
    </Placemark>
  </Folder>
  <Folder>
    <name>Elevages divers</name>
    <Placemark>
      <name>Ferme des Collines</name>
      <description>Elevage de volailles</description>
      <Point><coordinates>1.5,44.5,0</coordinates></Point>
    </Placemark>
    <Folder>
      <name>Elevages de Chasse (AUTRES)</name>
      <Placemark>
        <name></name>
        <description>Elevage de faisans</description>
        <Point><coordinates>0.2,47.1,0</coordinates></Point>
      </Placemark>
    </Folder>
  </Folder>
</Document>
</kml>`

func TestConvertFranceKML(t *testing.T) {
	locations, err := ConvertFranceKML(strings.NewReader(franceKML))
	if err != nil {
		t.Fatalf("ConvertFranceKML: %v", err)
	}
	if len(locations) != 3 {
		t.Fatalf("locations = %d, want 3", len(locations))
	}

	abattoir := locations[0]
	if abattoir.EstablishmentID != "1" || abattoir.EstablishmentName != "Abattoir de Lapalisse" {
		t.Errorf("first placemark = %+v", abattoir)
	}
	if abattoir.Activities != "Meat Slaughter" {
		t.Errorf("abattoir Activities = %q", abattoir.Activities)
	}
	// KML stores lon,lat; the schema stores lat/lon.
	if abattoir.Latitude != 46.2488 || abattoir.Longitude != 3.6377 {
		t.Errorf("coordinates = %v, %v", abattoir.Latitude, abattoir.Longitude)
	}
	if abattoir.GrantDate != "2024-03-01" {
		t.Errorf("GrantDate = %q", abattoir.GrantDate)
	}

	farm := locations[1]
	if farm.Activities != "Animal Production" {
		t.Errorf("farm Activities = %q", farm.Activities)
	}

	// Nested folder, unnamed placemark, game keywords in description.
	game := locations[2]
	if game.EstablishmentID != "3" {
		t.Errorf("nested placemark ID = %q", game.EstablishmentID)
	}
	if game.EstablishmentName != "Location 3" {
		t.Errorf("unnamed placemark name = %q", game.EstablishmentName)
	}
	if game.Activities != "Animal Production; Hunting/Game" {
		t.Errorf("game Activities = %q", game.Activities)
	}
}

func TestFranceActivitiesKeywordRefinement(t *testing.T) {
	tests := []struct {
		description string
		folder      string
		want        string
	}{
		{"Salle d'abattage sur place", "Elevages divers", "Animal Production; Meat Slaughter"},
		{"Ferme pédagogique pour enfants", "Elevages divers", "Exhibition"},
		{"Elevage de sanglier", "Elevages divers", "Animal Production; Hunting/Game"},
		{"", "Abattoirs", "Meat Slaughter"},
		{"Production laitière", "Elevages divers", "Animal Production"},
	}
	for _, tt := range tests {
		if got := FranceActivities(tt.description, tt.folder); got != tt.want {
			t.Errorf("FranceActivities(%q, %q) = %q, want %q", tt.description, tt.folder, got, tt.want)
		}
	}
}

func TestParseKMLCoordinates(t *testing.T) {
	lat, lon := parseKMLCoordinates("3.6377,46.2488,0")
	if lat != 46.2488 || lon != 3.6377 {
		t.Errorf("parseKMLCoordinates = %v, %v", lat, lon)
	}
	lat, lon = parseKMLCoordinates("not-coordinates")
	if lat != 0 || lon != 0 {
		t.Errorf("malformed input = %v, %v, want zeros", lat, lon)
	}
}
