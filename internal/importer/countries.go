package importer

// countryCodes maps country display names to ISO 3166-1 alpha-2 codes for
// the countries the marketplace operates in.
var countryCodes = map[string]string{
	"United States":  "US",
	"Germany":        "DE",
	"United Kingdom": "GB",
	"France":         "FR",
	"Japan":          "JP",
	"Italy":          "IT",
	"Spain":          "ES",
	"Netherlands":    "NL",
	"Canada":         "CA",
	"Australia":      "AU",
	"China":          "CN",
	"India":          "IN",
	"Brazil":         "BR",
	"Mexico":         "MX",
	"UAE":            "AE",
	"Singapore":      "SG",
	"South Korea":    "KR",
	"Switzerland":    "CH",
	"Sweden":         "SE",
	"Norway":         "NO",
}

// CountryCode resolves a country display name to its 2-letter code.
// Unmapped countries fall back to "US"; the fallback is documented behavior,
// not an error.
func CountryCode(country string) string {
	if code, ok := countryCodes[country]; ok {
		return code
	}

	return "US"
}
