package importer

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"standmatch/internal/domain/entity"

	"github.com/google/uuid"
)

const defaultLogo = "/images/builders/default-logo.png"

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL-safe identifier from a company name: lowercase,
// every run of non-alphanumeric characters collapsed to a single hyphen,
// no leading or trailing hyphen.
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")

	return strings.Trim(slug, "-")
}

// Transformer maps a validated RawRow into a fully-populated BuilderProfile.
// Structural derivations (slug, locations, list splits) are deterministic;
// cosmetic filler fields (prices, rating, team size) are drawn from rng so
// tests can seed it.
type Transformer struct {
	rng *rand.Rand
}

// NewTransformer creates a Transformer. A nil rng falls back to a
// time-seeded source.
func NewTransformer(rng *rand.Rand) *Transformer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Transformer{rng: rng}
}

// Transform builds a BuilderProfile from a row that already passed
// validation; behavior on invalid rows is undefined.
func (t *Transformer) Transform(row RawRow) *entity.BuilderProfile {
	companyName := row[ColCompanyName]
	country := row[ColCountry]
	countryCode := CountryCode(country)

	cities := splitList(row[ColCities])
	serviceNames := splitList(row[ColServicesProvided])

	var portfolioURLs []string
	for _, url := range splitList(row[ColPortfolioImages]) {
		if url != "" {
			portfolioURLs = append(portfolioURLs, url)
		}
	}

	headquartersCity := ""
	if len(cities) > 0 {
		headquartersCity = cities[0]
	}

	now := time.Now()
	currentYear := now.Year()

	logo := row[ColImageURL]
	if logo == "" {
		logo = defaultLogo
	}

	description := row[ColBusinessDescription]
	if description == "" {
		description = "Professional exhibition stand builder dedicated to creating memorable brand experiences."
	}

	contactPerson := row[ColContactPerson]
	if contactPerson == "" {
		contactPerson = "Contact Person"
	}

	serviceLocations := make([]entity.Location, 0, len(cities))
	for _, city := range cities {
		serviceLocations = append(serviceLocations, entity.Location{
			City:        city,
			Country:     country,
			CountryCode: countryCode,
			Address:     fmt.Sprintf("%s, %s", city, country),
		})
	}

	services := make([]entity.Service, 0, len(serviceNames))
	for i, name := range serviceNames {
		services = append(services, entity.Service{
			ID:           fmt.Sprintf("service-%d", i),
			Name:         name,
			Description:  fmt.Sprintf("Professional %s services", strings.ToLower(name)),
			Category:     "Design",
			PriceFrom:    200 + t.rng.Intn(300),
			Currency:     "USD",
			Unit:         "per sqm",
			Popular:      i < 2,
			TurnoverTime: "2-4 weeks",
		})
	}

	portfolio := make([]entity.PortfolioProject, 0, len(portfolioURLs))
	for i, url := range portfolioURLs {
		portfolio = append(portfolio, entity.PortfolioProject{
			ID:           fmt.Sprintf("portfolio-%d", i),
			ProjectName:  fmt.Sprintf("Project %d", i+1),
			TradeShow:    "Various Trade Shows",
			Year:         currentYear,
			City:         headquartersCity,
			Country:      country,
			StandSize:    100 + t.rng.Intn(400),
			Industry:     "General",
			Description:  "Professional exhibition stand project",
			Images:       []string{url},
			Budget:       "Mid-range",
			Featured:     i == 0,
			ProjectType:  "Custom Build",
			Technologies: []string{"LED Displays", "Interactive Elements"},
		})
	}

	keyStrengths := serviceNames
	if len(keyStrengths) > 3 {
		keyStrengths = keyStrengths[:3]
	}

	return &entity.BuilderProfile{
		ID:              newBuilderID(),
		CompanyName:     companyName,
		Slug:            Slugify(companyName),
		Logo:            logo,
		EstablishedYear: currentYear - t.rng.Intn(20),
		Headquarters: entity.Location{
			City:           headquartersCity,
			Country:        country,
			CountryCode:    countryCode,
			Address:        fmt.Sprintf("%s, %s", headquartersCity, country),
			IsHeadquarters: true,
		},
		ServiceLocations: serviceLocations,
		ContactInfo: entity.ContactInfo{
			PrimaryEmail:  row[ColEmail],
			Phone:         row[ColPhoneNumber],
			Website:       row[ColWebsite],
			ContactPerson: contactPerson,
			Position:      "Sales Manager",
		},
		Services: services,
		Specializations: []entity.Specialization{
			{
				ID:    "general",
				Name:  "General Exhibition",
				Slug:  "general",
				Color: "#3B82F6",
				Icon:  "🏢",
			},
		},
		Portfolio:         portfolio,
		TeamSize:          5 + t.rng.Intn(50),
		ProjectsCompleted: 20 + t.rng.Intn(300),
		Rating:            4.0 + t.rng.Float64(),
		ReviewCount:       t.rng.Intn(100),
		ResponseTime:      "Within 24 hours",
		Languages:         []string{"English"},
		PriceRange: entity.PriceRange{
			BasicStand:     entity.PriceBand{Min: 150, Max: 250, Currency: "USD", Unit: "per sqm"},
			CustomStand:    entity.PriceBand{Min: 300, Max: 500, Currency: "USD", Unit: "per sqm"},
			PremiumStand:   entity.PriceBand{Min: 500, Max: 800, Currency: "USD", Unit: "per sqm"},
			AverageProject: 50000,
			Currency:       "USD",
		},
		CompanyDescription: description,
		WhyChooseUs: []string{
			"Professional design team",
			"Quality construction",
			"On-time delivery",
			"Competitive pricing",
		},
		KeyStrengths:    keyStrengths,
		BusinessLicense: fmt.Sprintf("LICENSE-%d", now.UnixMilli()),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// newBuilderID generates an identifier unique within the process lifetime:
// a millisecond timestamp plus a random suffix.
func newBuilderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]

	return fmt.Sprintf("builder-%d-%s", time.Now().UnixMilli(), suffix)
}
