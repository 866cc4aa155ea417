package entity

import (
	"time"

	"github.com/google/uuid"
)

// WeatherSnapshot captures the weather that drove a recommendation.
// Temperatures are whole degrees Celsius and wind speed is km/h.
type WeatherSnapshot struct {
	City        string `json:"city"`
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// OutfitItem is one recommended product within an outfit tier.
type OutfitItem struct {
	ProductID  string  `json:"productId"`
	Category   string  `json:"category"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	ImageURL   string  `json:"imageUrl,omitempty"`
	ProductURL string  `json:"productUrl"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// Outfit holds the two budget tiers of a recommendation.
type Outfit struct {
	Economic []OutfitItem `json:"economic"`
	Luxury   []OutfitItem `json:"luxury"`
}

// Recommendation is a stored outfit suggestion for a user, tied to the
// city, gender and weather it was generated against.
type Recommendation struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	City             string
	Gender           Gender // Persisted so regeneration can reuse the original request.
	Weather          WeatherSnapshot
	Outfit           Outfit
	AIRecommendation string // Overall rationale text produced by the generator.
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
