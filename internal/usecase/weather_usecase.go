package usecase

import (
	"context"

	"wardrobe/internal/domain/entity"
	"wardrobe/internal/domain/service"
)

// CurrentWeatherOutput bundles current conditions with generic dressing advice.
type CurrentWeatherOutput struct {
	Weather *entity.WeatherSnapshot
	Advice  *service.WeatherAdvice
}

// WeatherUsecase defines the interface for weather lookup operations.
type WeatherUsecase interface {
	Current(ctx context.Context, city string) (*CurrentWeatherOutput, error)
	Forecast(ctx context.Context, city string, days int) ([]*entity.WeatherSnapshot, error)
}
