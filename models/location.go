package models

// Location is one row of the unified facility schema shared by every data
// source (US, UK, Spain, Germany, France, Denmark). Flag columns hold "Yes"
// or the empty string, nothing else. The activities column is published
// under the header "type".
type Location struct {
	EstablishmentID     string  `csv:"establishment_id"`
	EstablishmentNumber string  `csv:"establishment_number"`
	EstablishmentName   string  `csv:"establishment_name"`
	DunsNumber          string  `csv:"duns_number"`
	Street              string  `csv:"street"`
	City                string  `csv:"city"`
	State               string  `csv:"state"`
	Zip                 string  `csv:"zip"`
	Phone               string  `csv:"phone"`
	GrantDate           string  `csv:"grant_date"`
	Activities          string  `csv:"type"`
	Dbas                string  `csv:"dbas"`
	District            string  `csv:"district"`
	Circuit             string  `csv:"circuit"`
	Size                string  `csv:"size"`
	Latitude            float64 `csv:"latitude"`
	Longitude           float64 `csv:"longitude"`
	County              string  `csv:"county"`
	FipsCode            string  `csv:"fips_code"`

	MeatExemptionCustomSlaughter    string `csv:"meat_exemption_custom_slaughter"`
	PoultryExemptionCustomSlaughter string `csv:"poultry_exemption_custom_slaughter"`

	Slaughter                        string `csv:"slaughter"`
	MeatSlaughter                    string `csv:"meat_slaughter"`
	BeefCowSlaughter                 string `csv:"beef_cow_slaughter"`
	SteerSlaughter                   string `csv:"steer_slaughter"`
	HeiferSlaughter                  string `csv:"heifer_slaughter"`
	BullStagSlaughter                string `csv:"bull_stag_slaughter"`
	DairyCowSlaughter                string `csv:"dairy_cow_slaughter"`
	HeavyCalfSlaughter               string `csv:"heavy_calf_slaughter"`
	BobVealSlaughter                 string `csv:"bob_veal_slaughter"`
	FormulaFedVealSlaughter          string `csv:"formula_fed_veal_slaughter"`
	NonFormulaFedVealSlaughter       string `csv:"non_formula_fed_veal_slaughter"`
	MarketSwineSlaughter             string `csv:"market_swine_slaughter"`
	SowSlaughter                     string `csv:"sow_slaughter"`
	RoasterSwineSlaughter            string `csv:"roaster_swine_slaughter"`
	BoarStagSwineSlaughter           string `csv:"boar_stag_swine_slaughter"`
	StagSwineSlaughter               string `csv:"stag_swine_slaughter"`
	FeralSwineSlaughter              string `csv:"feral_swine_slaughter"`
	GoatSlaughter                    string `csv:"goat_slaughter"`
	YoungGoatSlaughter               string `csv:"young_goat_slaughter"`
	AdultGoatSlaughter               string `csv:"adult_goat_slaughter"`
	SheepSlaughter                   string `csv:"sheep_slaughter"`
	LambSlaughter                    string `csv:"lamb_slaughter"`
	DeerReindeerSlaughter            string `csv:"deer_reindeer_slaughter"`
	AntelopeSlaughter                string `csv:"antelope_slaughter"`
	ElkSlaughter                     string `csv:"elk_slaughter"`
	BisonSlaughter                   string `csv:"bison_slaughter"`
	BuffaloSlaughter                 string `csv:"buffalo_slaughter"`
	WaterBuffaloSlaughter            string `csv:"water_buffalo_slaughter"`
	CattaloSlaughter                 string `csv:"cattalo_slaughter"`
	YakSlaughter                     string `csv:"yak_slaughter"`
	OtherVoluntaryLivestockSlaughter string `csv:"other_voluntary_livestock_slaughter"`
	RabbitSlaughter                  string `csv:"rabbit_slaughter"`
	PoultrySlaughter                 string `csv:"poultry_slaughter"`
	YoungChickenSlaughter            string `csv:"young_chicken_slaughter"`
	LightFowlSlaughter               string `csv:"light_fowl_slaughter"`
	HeavyFowlSlaughter               string `csv:"heavy_fowl_slaughter"`
	CaponSlaughter                   string `csv:"capon_slaughter"`
	YoungTurkeySlaughter             string `csv:"young_turkey_slaughter"`
	YoungBreederTurkeySlaughter      string `csv:"young_breeder_turkey_slaughter"`
	OldBreederTurkeySlaughter        string `csv:"old_breeder_turkey_slaughter"`
	FryerRoasterTurkeySlaughter      string `csv:"fryer_roaster_turkey_slaughter"`
	DuckSlaughter                    string `csv:"duck_slaughter"`
	GooseSlaughter                   string `csv:"goose_slaughter"`
	PheasantSlaughter                string `csv:"pheasant_slaughter"`
	QuailSlaughter                   string `csv:"quail_slaughter"`
	GuineaSlaughter                  string `csv:"guinea_slaughter"`
	OstrichSlaughter                 string `csv:"ostrich_slaughter"`
	EmuSlaughter                     string `csv:"emu_slaughter"`
	RheaSlaughter                    string `csv:"rhea_slaughter"`
	SquabSlaughter                   string `csv:"squab_slaughter"`
	OtherVoluntaryPoultrySlaughter   string `csv:"other_voluntary_poultry_slaughter"`

	SlaughterOrProcessingOnly   string `csv:"slaughter_or_processing_only"`
	SlaughterOnlyClass          string `csv:"slaughter_only_class"`
	SlaughterOnlySpecies        string `csv:"slaughter_only_species"`
	MeatSlaughterOnlySpecies    string `csv:"meat_slaughter_only_species"`
	PoultrySlaughterOnlySpecies string `csv:"poultry_slaughter_only_species"`
	SlaughterVolumeCategory     string `csv:"slaughter_volume_category"`
	ProcessingVolumeCategory    string `csv:"processing_volume_category"`

	BeefProcessing                    string `csv:"beef_processing"`
	PorkProcessing                    string `csv:"pork_processing"`
	AntelopeProcessing                string `csv:"antelope_processing"`
	BisonProcessing                   string `csv:"bison_processing"`
	BuffaloProcessing                 string `csv:"buffalo_processing"`
	DeerProcessing                    string `csv:"deer_processing"`
	ElkProcessing                     string `csv:"elk_processing"`
	GoatProcessing                    string `csv:"goat_processing"`
	OtherVoluntaryLivestockProcessing string `csv:"other_voluntary_livestock_processing"`
	RabbitProcessing                  string `csv:"rabbit_processing"`
	ReindeerProcessing                string `csv:"reindeer_processing"`
	SheepProcessing                   string `csv:"sheep_processing"`
	YakProcessing                     string `csv:"yak_processing"`
	ChickenProcessing                 string `csv:"chicken_processing"`
	DuckProcessing                    string `csv:"duck_processing"`
	GooseProcessing                   string `csv:"goose_processing"`
	PigeonProcessing                  string `csv:"pigeon_processing"`
	RatiteProcessing                  string `csv:"ratite_processing"`
	TurkeyProcessing                  string `csv:"turkey_processing"`
	ExoticPoultryProcessing           string `csv:"exotic_poultry_processing"`
	OtherVoluntaryPoultryProcessing   string `csv:"other_voluntary_poultry_processing"`
}
