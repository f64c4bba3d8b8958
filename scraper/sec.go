package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"facilitymap/config"
	"facilitymap/models"
)

// SECScraper looks facility parent companies up in the EDGAR full-text
// company index and pulls links to their latest 10-K and DEF 14A filings.
type SECScraper struct {
	httpClient     *http.Client
	userAgent      string
	tickersURL     string
	submissionsURL string
	delay          time.Duration

	// cik index keyed by normalized company name, loaded once per run.
	companies map[string]int
}

// NewSECScraper builds a scraper from the loaded application config.
func NewSECScraper() *SECScraper {
	cfg := config.AppConfig.SEC
	return &SECScraper{
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		userAgent:      cfg.UserAgent,
		tickersURL:     cfg.TickersURL,
		submissionsURL: cfg.SubmissionsURL,
		delay:          cfg.Delay,
	}
}

// companyTicker is one entry of the company_tickers.json index.
type companyTicker struct {
	CIK   int    `json:"cik_str"`
	Title string `json:"title"`
}

// submissionsResponse is the subset of the EDGAR submissions feed we read.
type submissionsResponse struct {
	Filings struct {
		Recent struct {
			Form            []string `json:"form"`
			AccessionNumber []string `json:"accessionNumber"`
			PrimaryDocument []string `json:"primaryDocument"`
		} `json:"recent"`
	} `json:"filings"`
}

// corporateSuffixes are stripped when guessing the registrant name behind a
// facility's legal name, e.g. "Tyson Fresh Meats, Inc." -> "Tyson".
var corporateSuffixes = regexp.MustCompile(`(?i)[,.]?\s*(inc|llc|l\.l\.c|lp|l\.p|ltd|corp|corporation|co|company|holdings|group|foods|meats|packing|processing)\.?\s*$`)

// GuessParentCompany reduces a facility legal name to the shortest plausible
// registrant name by repeatedly stripping corporate suffixes.
func GuessParentCompany(facilityName string) string {
	name := strings.TrimSpace(facilityName)
	for {
		stripped := strings.TrimSpace(corporateSuffixes.ReplaceAllString(name, ""))
		if stripped == name || stripped == "" {
			break
		}
		name = stripped
	}
	return name
}

// LookupFilings resolves a facility name to an EDGAR registrant and returns
// its latest 10-K and DEF 14A filing URLs. A name with no registrant match
// returns a zero-valued filing, not an error.
func (s *SECScraper) LookupFilings(ctx context.Context, facilityName string) (models.SECFiling, error) {
	filing := models.SECFiling{ParentCompanyGuess: GuessParentCompany(facilityName)}
	if filing.ParentCompanyGuess == "" {
		return filing, nil
	}

	if s.companies == nil {
		if err := s.loadCompanyIndex(ctx); err != nil {
			return filing, err
		}
	}

	cik, name, found := s.matchCompany(filing.ParentCompanyGuess)
	if !found {
		log.Printf("Scraper: no EDGAR registrant matched '%s'", filing.ParentCompanyGuess)
		return filing, nil
	}
	filing.ParentCompany = name

	time.Sleep(s.delay)
	subs, err := s.fetchSubmissions(ctx, cik)
	if err != nil {
		return filing, fmt.Errorf("failed to fetch submissions for CIK %d: %w", cik, err)
	}

	recent := subs.Filings.Recent
	for i, form := range recent.Form {
		if i >= len(recent.AccessionNumber) || i >= len(recent.PrimaryDocument) {
			break
		}
		docURL := filingURL(cik, recent.AccessionNumber[i], recent.PrimaryDocument[i])
		switch form {
		case "10-K":
			if filing.Form10K == "" {
				filing.Form10K = docURL
			}
		case "DEF 14A":
			if filing.FormDEF14A == "" {
				filing.FormDEF14A = docURL
			}
		}
		if filing.Form10K != "" && filing.FormDEF14A != "" {
			break
		}
	}
	return filing, nil
}

func (s *SECScraper) loadCompanyIndex(ctx context.Context) error {
	body, err := s.get(ctx, s.tickersURL)
	if err != nil {
		return fmt.Errorf("failed to fetch company index: %w", err)
	}

	var raw map[string]companyTicker
	if err := json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("failed to parse company index: %w", err)
	}

	s.companies = make(map[string]int, len(raw))
	for _, c := range raw {
		s.companies[normalizeCompanyName(c.Title)] = c.CIK
	}
	log.Printf("Scraper: loaded %d EDGAR registrants", len(s.companies))
	return nil
}

// matchCompany tries the exact normalized name first, then a prefix match.
// Several registrants can share the prefix, so the shortest title wins,
// ties broken alphabetically, to keep the pick stable across runs.
func (s *SECScraper) matchCompany(guess string) (int, string, bool) {
	norm := normalizeCompanyName(guess)
	if cik, ok := s.companies[norm]; ok {
		return cik, guess, true
	}
	var best string
	for name := range s.companies {
		if !strings.HasPrefix(name, norm+" ") {
			continue
		}
		if best == "" || len(name) < len(best) || (len(name) == len(best) && name < best) {
			best = name
		}
	}
	if best == "" {
		return 0, "", false
	}
	return s.companies[best], best, true
}

func (s *SECScraper) fetchSubmissions(ctx context.Context, cik int) (*submissionsResponse, error) {
	// The submissions feed wants the CIK zero-padded to ten digits.
	url := fmt.Sprintf(s.submissionsURL, fmt.Sprintf("%010d", cik))
	body, err := s.get(ctx, url)
	if err != nil {
		return nil, err
	}
	var subs submissionsResponse
	if err := json.Unmarshal(body, &subs); err != nil {
		return nil, fmt.Errorf("failed to parse submissions response: %w", err)
	}
	return &subs, nil
}

func (s *SECScraper) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	// EDGAR rejects requests without a descriptive User-Agent.
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received status code %d from %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

func filingURL(cik int, accession, document string) string {
	return fmt.Sprintf("https://www.sec.gov/Archives/edgar/data/%d/%s/%s",
		cik, strings.ReplaceAll(accession, "-", ""), document)
}

func normalizeCompanyName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
