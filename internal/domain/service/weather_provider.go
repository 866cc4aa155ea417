package service

import (
	"context"

	"wardrobe/internal/domain/entity"
)

// WeatherAdvice is generic dressing advice derived from current conditions,
// independent of the catalog.
type WeatherAdvice struct {
	Clothing    []string `json:"clothing"`
	Accessories []string `json:"accessories"`
	Tips        []string `json:"tips"`
}

// WeatherProvider defines the interface for looking up weather conditions.
// Implementations never fail a current-conditions lookup: when the upstream
// is unreachable or unconfigured they fall back to static data.
type WeatherProvider interface {
	// Current returns the present conditions for a city.
	Current(ctx context.Context, city string) (*entity.WeatherSnapshot, error)

	// Forecast returns upcoming daily conditions for a city.
	Forecast(ctx context.Context, city string, days int) ([]*entity.WeatherSnapshot, error)
}
