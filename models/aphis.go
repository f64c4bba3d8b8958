package models

// AphisFacility is one row scraped from the APHIS public search tool's
// results table, after the export headers have been renamed to the
// script-friendly names used downstream.
type AphisFacility struct {
	FacilityName      string `csv:"facility_name"`
	CertificateNumber string `csv:"certificate_number"`
	City              string `csv:"city"`
	State             string `csv:"state"`
	ZipCode           string `csv:"zip_code"`
}

// AphisReport is one row of the combined registrant + annual-report export.
// The _x/_y suffixes come from the registrant/report join and are kept so
// the compiled CSV round-trips unchanged.
type AphisReport struct {
	AccountName       string  `csv:"Account Name" json:"Account Name"`
	CustomerNumberX   string  `csv:"Customer Number_x" json:"Customer Number_x"`
	CertificateNumber string  `csv:"Certificate Number" json:"Certificate Number"`
	RegistrationType  string  `csv:"Registration Type" json:"Registration Type"`
	CertificateStatus string  `csv:"Certificate Status" json:"Certificate Status"`
	StatusDate        string  `csv:"Status Date" json:"Status Date"`
	AddressLine1      string  `csv:"Address Line 1" json:"Address Line 1"`
	AddressLine2      string  `csv:"Address Line 2" json:"Address Line 2"`
	CityStateZip      string  `csv:"City-State-Zip" json:"City-State-Zip"`
	County            string  `csv:"County" json:"County"`
	CustomerNumberY   string  `csv:"Customer Number_y" json:"Customer Number_y"`
	Year              string  `csv:"Year" json:"Year"`
	Dogs              string  `csv:"Dogs" json:"Dogs"`
	Cats              string  `csv:"Cats" json:"Cats"`
	GuineaPigs        string  `csv:"Guinea Pigs" json:"Guinea Pigs"`
	Hamsters          string  `csv:"Hamsters" json:"Hamsters"`
	Rabbits           string  `csv:"Rabbits" json:"Rabbits"`
	NonHumanPrimates  string  `csv:"Non-Human Primates" json:"Non-Human Primates"`
	Sheep             string  `csv:"Sheep" json:"Sheep"`
	Pigs              string  `csv:"Pigs" json:"Pigs"`
	OtherFarmAnimals  string  `csv:"Other Farm Animals" json:"Other Farm Animals"`
	AllOtherAnimals   string  `csv:"All Other Animals" json:"All Other Animals"`
	Latitude          float64 `csv:"latitude" json:"latitude"`
	Longitude         float64 `csv:"longitude" json:"longitude"`

	// Derived, not in the CSV.
	AnimalsTested string `csv:"-" json:"Animals Tested On"`
}

// InspectionReport is one row of the cleaned USDA inspection-report export.
type InspectionReport struct {
	AccountName       string  `csv:"Account Name" json:"Account Name"`
	CustomerNumber    string  `csv:"Customer Number" json:"Customer Number"`
	CertificateNumber string  `csv:"Certificate Number" json:"Certificate Number"`
	LicenseType       string  `csv:"License Type" json:"License Type"`
	CertificateStatus string  `csv:"Certificate Status" json:"Certificate Status"`
	StatusDate        string  `csv:"Status Date" json:"Status Date"`
	AddressLine1      string  `csv:"Address Line 1" json:"Address Line 1"`
	AddressLine2      string  `csv:"Address Line 2" json:"Address Line 2"`
	CityStateZip      string  `csv:"City-State-Zip" json:"City-State-Zip"`
	County            string  `csv:"County" json:"County"`
	City              string  `csv:"City" json:"City"`
	State             string  `csv:"State" json:"State"`
	Zip               string  `csv:"Zip" json:"Zip"`
	Latitude          float64 `csv:"Geocodio Latitude" json:"Geocodio Latitude"`
	Longitude         float64 `csv:"Geocodio Longitude" json:"Geocodio Longitude"`
}
