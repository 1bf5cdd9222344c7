package importer

import (
	"fmt"
	"strings"
)

// TemplateFilename is the suggested download name for the sample file.
const TemplateFilename = "exhibition-builders-template.csv"

// templateHeaders lists the twelve template columns in download order.
var templateHeaders = []string{
	ColCompanyName,
	ColEmail,
	ColPhoneNumber,
	ColContactPerson,
	ColCountry,
	ColCities,
	ColServicesProvided,
	ColBusinessDescription,
	ColWebsite,
	ColType,
	ColImageURL,
	ColPortfolioImages,
}

// sampleRows holds five realistic example builders shipped with the
// template. Cells must not contain commas: the upload parser splits
// positionally and does not honor quoting, so the city and service
// list cells each carry a single entry.
var sampleRows = []RawRow{
	{
		ColCompanyName:         "Smart Expo Solutions",
		ColEmail:               "info@smartexpo.com",
		ColPhoneNumber:         "+1 555 123 4567",
		ColContactPerson:       "John Smith",
		ColCountry:             "United States",
		ColCities:              "New York",
		ColServicesProvided:    "Custom Design",
		ColBusinessDescription: "Leading exhibition stand builder specializing in technology displays and interactive experiences for Fortune 500 companies.",
		ColWebsite:             "https://smartexpo.com",
		ColType:                "custom",
		ColImageURL:            "https://images.unsplash.com/photo-1560472354-b33ff0c44a43",
		ColPortfolioImages:     "https://images.unsplash.com/photo-1560472354-b33ff0c44a43",
	},
	{
		ColCompanyName:         "Berlin Design Studios",
		ColEmail:               "contact@berlindesign.de",
		ColPhoneNumber:         "+49 30 987 6543",
		ColContactPerson:       "Maria Mueller",
		ColCountry:             "Germany",
		ColCities:              "Berlin",
		ColServicesProvided:    "Sustainable Design",
		ColBusinessDescription: "Award-winning German exhibition company known for sustainable practices and innovative design solutions.",
		ColWebsite:             "https://berlindesign.de",
		ColType:                "country-pavilion",
		ColImageURL:            "https://images.unsplash.com/photo-1576091160399-112ba8d25d1f",
		ColPortfolioImages:     "https://images.unsplash.com/photo-1576091160399-112ba8d25d1f",
	},
	{
		ColCompanyName:         "Tokyo Exhibition Co",
		ColEmail:               "info@tokyoexhibition.jp",
		ColPhoneNumber:         "+81 3 1234 5678",
		ColContactPerson:       "Hiroshi Tanaka",
		ColCountry:             "Japan",
		ColCities:              "Tokyo",
		ColServicesProvided:    "Portable Displays",
		ColBusinessDescription: "Premier portable display solutions provider with expertise in rapid deployment and high-tech integration.",
		ColWebsite:             "https://tokyoexhibition.jp",
		ColType:                "portable",
		ColImageURL:            "https://images.unsplash.com/photo-1551818255-e6e10975bc17",
		ColPortfolioImages:     "https://images.unsplash.com/photo-1551818255-e6e10975bc17",
	},
	{
		ColCompanyName:         "Premium Exhibits UK",
		ColEmail:               "hello@premiumexhibits.co.uk",
		ColPhoneNumber:         "+44 20 7123 4567",
		ColContactPerson:       "Sarah Williams",
		ColCountry:             "United Kingdom",
		ColCities:              "London",
		ColServicesProvided:    "Double Deck Construction",
		ColBusinessDescription: "Luxury exhibition stand builders specializing in double-deck constructions and high-end finishes for premium brands.",
		ColWebsite:             "https://premiumexhibits.co.uk",
		ColType:                "double-deck",
		ColImageURL:            "https://images.unsplash.com/photo-1497366216548-37526070297c",
		ColPortfolioImages:     "https://images.unsplash.com/photo-1497366216548-37526070297c",
	},
	{
		ColCompanyName:         "Modular Pro France",
		ColEmail:               "info@modularpro.fr",
		ColPhoneNumber:         "+33 1 4567 8901",
		ColContactPerson:       "Pierre Dubois",
		ColCountry:             "France",
		ColCities:              "Paris",
		ColServicesProvided:    "Modular Systems",
		ColBusinessDescription: "Environmentally conscious modular stand specialists offering reusable and sustainable exhibition solutions.",
		ColWebsite:             "https://modularpro.fr",
		ColType:                "modular",
		ColImageURL:            "https://images.unsplash.com/photo-1549317661-bd32c8ce0db2",
		ColPortfolioImages:     "https://images.unsplash.com/photo-1549317661-bd32c8ce0db2",
	},
}

// TemplateCSV renders the downloadable template: the header row followed by
// the five sample builders, every cell double-quoted.
func TemplateCSV() string {
	var sb strings.Builder

	sb.WriteString(strings.Join(templateHeaders, ","))
	sb.WriteByte('\n')

	for _, row := range sampleRows {
		cells := make([]string, 0, len(templateHeaders))
		for _, header := range templateHeaders {
			cells = append(cells, fmt.Sprintf("%q", row[header]))
		}
		sb.WriteString(strings.Join(cells, ","))
		sb.WriteByte('\n')
	}

	return sb.String()
}
