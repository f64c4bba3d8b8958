// Package scraper pulls facility records from the public web sources the
// mapping data is built from: the APHIS facility search tool and the SEC
// EDGAR filing index.
package scraper

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"facilitymap/config"
	"facilitymap/models"
)

// AphisScraper walks the paginated APHIS facility search results.
type AphisScraper struct {
	httpClient *http.Client
	searchURL  string
	pageDelay  time.Duration
}

// NewAphisScraper builds a scraper from the loaded application config.
func NewAphisScraper() *AphisScraper {
	cfg := config.AppConfig.Aphis
	return &AphisScraper{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		searchURL:  cfg.SearchURL,
		pageDelay:  cfg.PageDelay,
	}
}

// FetchAllFacilities pages through the search results until a page comes
// back empty or has no next link, waiting pageDelay between requests.
func (s *AphisScraper) FetchAllFacilities(ctx context.Context) ([]models.AphisFacility, error) {
	var all []models.AphisFacility
	for page := 1; ; page++ {
		facilities, hasNext, err := s.fetchPage(ctx, page)
		if err != nil {
			return all, fmt.Errorf("failed to fetch results page %d: %w", page, err)
		}
		log.Printf("Scraper: APHIS page %d returned %d facilities", page, len(facilities))
		all = append(all, facilities...)

		if !hasNext || len(facilities) == 0 {
			break
		}
		select {
		case <-ctx.Done():
			return all, ctx.Err()
		case <-time.After(s.pageDelay):
		}
	}
	log.Printf("Scraper: APHIS scrape finished with %d facilities total", len(all))
	return all, nil
}

func (s *AphisScraper) fetchPage(ctx context.Context, page int) ([]models.AphisFacility, bool, error) {
	pageURL, err := url.Parse(s.searchURL)
	if err != nil {
		return nil, false, fmt.Errorf("invalid search URL %q: %w", s.searchURL, err)
	}
	q := pageURL.Query()
	q.Set("page", strconv.Itoa(page))
	pageURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return nil, false, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("received status code %d", resp.StatusCode)
	}
	return ParseAphisResults(resp.Body)
}

// ParseAphisResults reads one search results page and extracts the facility
// rows. The second return value reports whether the page links a next page.
func ParseAphisResults(r io.Reader) ([]models.AphisFacility, bool, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse results page: %w", err)
	}

	var facilities []models.AphisFacility
	doc.Find("table tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 5 {
			return
		}
		f := models.AphisFacility{
			FacilityName:      cellText(cells, 0),
			CertificateNumber: cellText(cells, 1),
			City:              cellText(cells, 2),
			State:             cellText(cells, 3),
			ZipCode:           cellText(cells, 4),
		}
		if f.FacilityName == "" && f.CertificateNumber == "" {
			return
		}
		facilities = append(facilities, f)
	})

	hasNext := false
	doc.Find("a, button").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		label := strings.TrimSpace(sel.Text())
		if strings.EqualFold(label, "Next") || strings.EqualFold(label, "Next ›") {
			if _, disabled := sel.Attr("disabled"); !disabled && !sel.HasClass("disabled") {
				hasNext = true
				return false
			}
		}
		return true
	})

	return facilities, hasNext, nil
}

func cellText(cells *goquery.Selection, i int) string {
	return strings.TrimSpace(cells.Eq(i).Text())
}
