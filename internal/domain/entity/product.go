package entity

import (
	"time"

	"github.com/google/uuid"
)

// WeatherTags describes the conditions a product suits. All fields are
// optional hints filled in by the catalog importer.
type WeatherTags struct {
	MinTemp    *int     `json:"minTemp,omitempty"`
	MaxTemp    *int     `json:"maxTemp,omitempty"`
	Conditions []string `json:"conditions,omitempty"`
}

// Product is a single catalog item available for recommendation.
type Product struct {
	ID            uuid.UUID
	Name          string
	Brand         string // Empty when the source did not carry a brand.
	Category      string // e.g. "shirt", "pants", "jacket", "shorts".
	Subcategory   string
	Price         float64
	OriginalPrice *float64 // Pre-discount price, nil when not on sale.
	Currency      string   // ISO code, defaults to BRL.
	ImageURL      string
	ProductURL    string
	Description   string
	Sizes         []string
	Colors        []string
	IsLuxury      bool
	IsEconomic    bool
	IsAvailable   bool
	Source        string // Which store or feed the item came from.
	Gender        string // "male", "female" or "unisex".
	Season        string
	Weather       *WeatherTags
	ScrapedAt     time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
