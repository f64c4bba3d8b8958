package converter

import (
	"regexp"
	"strings"
)

// AddressParts is the decomposed form of a single-line address. Fields that
// could not be identified are left empty; parsing never fails.
type AddressParts struct {
	Street string
	City   string
	State  string
	Zip    string
}

// Matches "CITY, ST ZIP" with a 5-digit or ZIP+4 code.
var usCityStateZipRegex = regexp.MustCompile(`^(.*),\s*([A-Z]{2})\s*(\d{5}(?:-\d{4})?)$`)

// SplitCityStateZip parses the combined "City-State-Zip" column of the US
// exports, e.g. "LOS ANGELES, CA 90023". A string that does not match the
// pattern yields three empty fields.
func SplitCityStateZip(s string) (city, state, zip string) {
	m := usCityStateZipRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", "", ""
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), strings.TrimSpace(m[3])
}

var ukPostcodeRegex = regexp.MustCompile(`\b[A-Z]{1,2}[0-9R][0-9A-Z]?\s*[0-9][A-Z]{2}\b`)

// ParseUKAddress splits a UK-formatted address line into street, city and
// postcode. The trailing ", United Kingdom" is dropped, then comma parts are
// scanned from the end for a postcode; the part before it is taken as the
// city. With no postcode the last part becomes the city.
func ParseUKAddress(address string) AddressParts {
	address = regexp.MustCompile(`,\s*United Kingdom\s*$`).ReplaceAllString(address, "")
	parts := splitTrimmed(address)
	if len(parts) == 0 {
		return AddressParts{}
	}

	var postcode, city string
	for i := len(parts) - 1; i >= 0; i-- {
		if ukPostcodeRegex.MatchString(parts[i]) {
			postcode = parts[i]
			if i > 0 {
				city = parts[i-1]
			}
			break
		}
	}
	if postcode == "" {
		city = parts[len(parts)-1]
	}

	return AddressParts{
		Street: streetBefore(parts, city),
		City:   city,
		Zip:    postcode,
	}
}

var spainPostcodeRegex = regexp.MustCompile(`\b\d{5}\b`)

// ParseSpainAddress splits a Spanish address line. The trailing ", España"
// is dropped and the comma parts are scanned for a 5-digit postcode; the
// city is the part before it.
func ParseSpainAddress(address string) AddressParts {
	address = regexp.MustCompile(`,\s*España\s*$`).ReplaceAllString(address, "")
	parts := splitTrimmed(address)
	if len(parts) == 0 {
		return AddressParts{}
	}

	var postcode, city string
	for i, part := range parts {
		if m := spainPostcodeRegex.FindString(part); m != "" {
			postcode = m
			if i > 0 {
				city = parts[i-1]
			}
			break
		}
	}
	if postcode == "" {
		city = parts[len(parts)-1]
	}

	return AddressParts{
		Street: streetBefore(parts, city),
		City:   city,
		Zip:    postcode,
	}
}

var germanZipRegex = regexp.MustCompile(`[0-9]{5}`)

// ParseGermanAddress splits a BVL-style "Straße 1 12345 Stadt" line around
// the first 5-digit run. Without one, everything stays empty.
func ParseGermanAddress(address string) AddressParts {
	loc := germanZipRegex.FindStringIndex(address)
	if loc == nil {
		return AddressParts{}
	}
	return AddressParts{
		Street: strings.TrimSpace(address[:loc[0]]),
		Zip:    address[loc[0]:loc[1]],
		City:   strings.TrimSpace(address[loc[1]:]),
	}
}

func splitTrimmed(address string) []string {
	raw := strings.Split(address, ",")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if t := strings.TrimSpace(p); t != "" {
			parts = append(parts, t)
		}
	}
	return parts
}

// streetBefore joins the comma parts preceding the city. With no city
// identified, everything but the last part is treated as the street (or the
// whole string when there is only one part).
func streetBefore(parts []string, city string) string {
	if city != "" {
		for i, p := range parts {
			if p == city {
				return strings.Join(parts[:i], ", ")
			}
		}
	}
	if len(parts) > 1 {
		return strings.Join(parts[:len(parts)-1], ", ")
	}
	return parts[0]
}
