package models

// LocationResponse is the JSON shape served to the map front end for one
// facility. The per-species flag columns are collapsed into the two
// human-readable summary strings.
type LocationResponse struct {
	EstablishmentID          string  `json:"establishment_id"`
	EstablishmentName        string  `json:"establishment_name"`
	Latitude                 float64 `json:"latitude"`
	Longitude                float64 `json:"longitude"`
	Activities               string  `json:"activities"`
	State                    string  `json:"state"`
	City                     string  `json:"city"`
	Street                   string  `json:"street"`
	Zip                      string  `json:"zip"`
	Slaughter                string  `json:"slaughter"`
	AnimalsSlaughtered       string  `json:"animals_slaughtered"`
	AnimalsProcessed         string  `json:"animals_processed"`
	SlaughterVolumeCategory  string  `json:"slaughter_volume_category"`
	ProcessingVolumeCategory string  `json:"processing_volume_category"`
	Dbas                     string  `json:"dbas"`
	Phone                    string  `json:"phone"`
	GrantDate                string  `json:"grant_date"`
}
