package converter

import "testing"

func TestSplitCityStateZip(t *testing.T) {
	tests := []struct {
		in    string
		city  string
		state string
		zip   string
	}{
		{"LOS ANGELES, CA 90023", "LOS ANGELES", "CA", "90023"},
		{"ST. PAUL, MN 55101-2106", "ST. PAUL", "MN", "55101-2106"},
		{"Fort Worth, TX 76102", "Fort Worth", "TX", "76102"},
		{"SPRINGFIELD IL 62701", "", "", ""}, // no comma
		{"LONDON, ENGLAND", "", "", ""},
		{"", "", "", ""},
	}
	for _, tt := range tests {
		city, state, zip := SplitCityStateZip(tt.in)
		if city != tt.city || state != tt.state || zip != tt.zip {
			t.Errorf("SplitCityStateZip(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tt.in, city, state, zip, tt.city, tt.state, tt.zip)
		}
	}
}

func TestParseUKAddress(t *testing.T) {
	tests := []struct {
		in   string
		want AddressParts
	}{
		{
			"12 Abbey Road, Leeds, LS1 4DY, United Kingdom",
			AddressParts{Street: "12 Abbey Road", City: "Leeds", Zip: "LS1 4DY"},
		},
		{
			"Unit 3, Mill Lane, Bristol, BS1 2AB",
			AddressParts{Street: "Unit 3, Mill Lane", City: "Bristol", Zip: "BS1 2AB"},
		},
		{
			// No postcode: last part is the city.
			"High Street, York",
			AddressParts{Street: "High Street", City: "York"},
		},
		{"", AddressParts{}},
	}
	for _, tt := range tests {
		if got := ParseUKAddress(tt.in); got != tt.want {
			t.Errorf("ParseUKAddress(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseSpainAddress(t *testing.T) {
	tests := []struct {
		in   string
		want AddressParts
	}{
		{
			"Calle Mayor 5, Cuenca, 16001, España",
			AddressParts{Street: "Calle Mayor 5", City: "Cuenca", Zip: "16001"},
		},
		{
			"Camino Viejo, Teruel",
			AddressParts{Street: "Camino Viejo", City: "Teruel"},
		},
	}
	for _, tt := range tests {
		if got := ParseSpainAddress(tt.in); got != tt.want {
			t.Errorf("ParseSpainAddress(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseGermanAddress(t *testing.T) {
	tests := []struct {
		in   string
		want AddressParts
	}{
		{
			"Hauptstraße 12 80331 München",
			AddressParts{Street: "Hauptstraße 12", Zip: "80331", City: "München"},
		},
		{"Dorfweg ohne Zahl", AddressParts{}},
	}
	for _, tt := range tests {
		if got := ParseGermanAddress(tt.in); got != tt.want {
			t.Errorf("ParseGermanAddress(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
