package models

// SECFiling holds the filing links scraped from EDGAR for one guessed
// parent company. Empty URL fields mean no recent filing of that form type
// was found.
type SECFiling struct {
	ParentCompanyGuess string `csv:"parent_company_guess"`
	ParentCompany      string `csv:"parent_company"`
	Form10K            string `csv:"10-K"`
	FormDEF14A         string `csv:"DEF 14A"`
}
