// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// BuilderProfile is the core entity of the marketplace, representing one
// exhibition-stand-builder company. It is assembled once during import and
// never mutated by the pipeline afterwards.
type BuilderProfile struct {
	ID              string `json:"id"` // Opaque unique identifier, generated at transform time.
	CompanyName     string `json:"companyName"`
	Slug            string `json:"slug"` // URL-safe lowercase hyphenated identifier derived from the company name.
	Logo            string `json:"logo"`
	EstablishedYear int    `json:"establishedYear"`

	Headquarters     Location   `json:"headquarters"`     // The single location marked IsHeadquarters=true.
	ServiceLocations []Location `json:"serviceLocations"` // One entry per declared city, headquarters city included.

	ContactInfo     ContactInfo        `json:"contactInfo"`
	Services        []Service          `json:"services"`
	Specializations []Specialization   `json:"specializations"`
	Portfolio       []PortfolioProject `json:"portfolio"`

	TeamSize          int      `json:"teamSize"`
	ProjectsCompleted int      `json:"projectsCompleted"`
	Rating            float64  `json:"rating"` // Within the human-plausible 1-5 range.
	ReviewCount       int      `json:"reviewCount"`
	ResponseTime      string   `json:"responseTime"`
	Languages         []string `json:"languages"`

	Verified      bool `json:"verified"`
	PremiumMember bool `json:"premiumMember"`

	PriceRange         PriceRange `json:"priceRange"`
	CompanyDescription string     `json:"companyDescription"`
	WhyChooseUs        []string   `json:"whyChooseUs"`
	KeyStrengths       []string   `json:"keyStrengths"`
	BusinessLicense    string     `json:"businessLicense"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactInfo groups the builder's contact block. PrimaryEmail is unique
// across all profiles, compared case-insensitively.
type ContactInfo struct {
	PrimaryEmail  string `json:"primaryEmail"`
	Phone         string `json:"phone"`
	Website       string `json:"website"`
	ContactPerson string `json:"contactPerson"`
	Position      string `json:"position"`
}

// PriceBand is a min-max price quote for one stand category.
type PriceBand struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
	Unit     string `json:"unit"`
}

// PriceRange summarises the builder's pricing across stand categories.
type PriceRange struct {
	BasicStand     PriceBand `json:"basicStand"`
	CustomStand    PriceBand `json:"customStand"`
	PremiumStand   PriceBand `json:"premiumStand"`
	AverageProject int       `json:"averageProject"`
	Currency       string    `json:"currency"`
}
