package entity

// Location is a city where a builder operates. A builder has exactly one
// headquarters location plus one service location per declared city; the
// headquarters flag is only ever set on the standalone headquarters field.
type Location struct {
	City           string  `json:"city"`
	Country        string  `json:"country"`
	CountryCode    string  `json:"countryCode"` // ISO 3166-1 alpha-2.
	Address        string  `json:"address"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	IsHeadquarters bool    `json:"isHeadquarters"`
}
