package entity

// Service is one offering in a builder's catalog, derived 1:1 from the
// comma-separated service list supplied at import time.
type Service struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	PriceFrom    int    `json:"priceFrom"`
	Currency     string `json:"currency"`
	Unit         string `json:"unit"`
	Popular      bool   `json:"popular"`
	TurnoverTime string `json:"turnoverTime"`
}

// Specialization tags a builder with an exhibition segment. Imported
// profiles always start with the single default "General Exhibition" entry
// because the import format does not carry specializations.
type Specialization struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

// PortfolioProject is one showcase project, derived 1:1 from the
// comma-separated portfolio image URL list.
type PortfolioProject struct {
	ID           string   `json:"id"`
	ProjectName  string   `json:"projectName"`
	TradeShow    string   `json:"tradeShow"`
	Year         int      `json:"year"`
	City         string   `json:"city"`
	Country      string   `json:"country"`
	StandSize    int      `json:"standSize"`
	Industry     string   `json:"industry"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	Budget       string   `json:"budget"`
	Featured     bool     `json:"featured"`
	Technologies []string `json:"technologies"`
	ProjectType  string   `json:"projectType"`
}
