// Package weather implements the domain WeatherProvider against the
// OpenWeather API, with a static fallback table for offline operation.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"net/url"

	"wardrobe/config"
	"wardrobe/internal/domain/entity"
	"wardrobe/internal/domain/service"
	"wardrobe/internal/errors"
)

// conditionsResponse mirrors the subset of the OpenWeather current
// conditions payload the provider reads.
type conditionsResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// forecastResponse mirrors the subset of the OpenWeather 5-day forecast payload.
type forecastResponse struct {
	List []conditionsResponse `json:"list"`
}

type openWeatherProvider struct {
	cfg    *config.WeatherConfig
	client *http.Client
	logger *slog.Logger
}

// NewOpenWeatherProvider builds a WeatherProvider backed by the OpenWeather
// API. Without an API key every lookup is served from the static table.
func NewOpenWeatherProvider(cfg *config.Config, logger *slog.Logger) service.WeatherProvider {
	return &openWeatherProvider{
		cfg:    cfg.Weather,
		client: &http.Client{Timeout: cfg.Weather.Timeout},
		logger: logger,
	}
}

// Current returns the present conditions for a city. Upstream failures
// degrade to the static table instead of surfacing an error.
func (p *openWeatherProvider) Current(ctx context.Context, city string) (*entity.WeatherSnapshot, error) {
	if p.cfg.APIKey == "" {
		return mockCurrent(city), nil
	}

	var payload conditionsResponse
	if err := p.get(ctx, "/weather", city, &payload); err != nil {
		p.logger.WarnContext(ctx, "weather lookup failed, using fallback data",
			slog.String("city", city), slog.Any("error", err))

		return mockCurrent(city), nil
	}
	if len(payload.Weather) == 0 {
		p.logger.WarnContext(ctx, "weather response missing conditions, using fallback data",
			slog.String("city", city))

		return mockCurrent(city), nil
	}

	return snapshotFrom(city, &payload), nil
}

// Forecast returns upcoming daily conditions for a city, sampling one
// three-hour slot per day from the upstream list.
func (p *openWeatherProvider) Forecast(ctx context.Context, city string, days int) ([]*entity.WeatherSnapshot, error) {
	if p.cfg.APIKey == "" {
		return mockForecast(city, days), nil
	}

	var payload forecastResponse
	if err := p.get(ctx, "/forecast", city, &payload); err != nil {
		p.logger.WarnContext(ctx, "forecast lookup failed, using fallback data",
			slog.String("city", city), slog.Any("error", err))

		return mockForecast(city, days), nil
	}

	// The upstream list carries one entry per three hours, so stepping by
	// eight lands on the same time of day.
	forecast := make([]*entity.WeatherSnapshot, 0, days)
	for i := 0; i < min(days, len(payload.List)); i += 8 {
		item := payload.List[i]
		if len(item.Weather) == 0 {
			continue
		}
		forecast = append(forecast, snapshotFrom(city, &item))
	}

	return forecast, nil
}

func (p *openWeatherProvider) get(ctx context.Context, path, city string, out any) error {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", p.cfg.APIKey)
	query.Set("units", "metric")
	query.Set("lang", p.cfg.Lang)

	endpoint := fmt.Sprintf("%s%s?%s", p.cfg.BaseURL, path, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "build weather request")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "call weather api")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("weather api returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode weather response")
	}

	return nil
}

func snapshotFrom(city string, payload *conditionsResponse) *entity.WeatherSnapshot {
	return &entity.WeatherSnapshot{
		City:        city,
		Temperature: int(math.Round(payload.Main.Temp)),
		Condition:   payload.Weather[0].Main,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   int(math.Round(payload.Wind.Speed * 3.6)), // m/s to km/h
		Description: payload.Weather[0].Description,
		Icon:        payload.Weather[0].Icon,
	}
}

// mockTable holds believable conditions for cities the service is most
// commonly asked about when no API key is configured.
var mockTable = map[string]entity.WeatherSnapshot{
	"São Paulo": {
		Temperature: 22,
		Condition:   "Clouds",
		Humidity:    65,
		WindSpeed:   15,
		Description: "nublado",
		Icon:        "02d",
	},
	"Rio de Janeiro": {
		Temperature: 28,
		Condition:   "Clear",
		Humidity:    70,
		WindSpeed:   12,
		Description: "céu limpo",
		Icon:        "01d",
	},
	"Brasília": {
		Temperature: 25,
		Condition:   "Clear",
		Humidity:    45,
		WindSpeed:   8,
		Description: "céu limpo",
		Icon:        "01d",
	},
}

func mockCurrent(city string) *entity.WeatherSnapshot {
	snapshot, ok := mockTable[city]
	if !ok {
		snapshot = entity.WeatherSnapshot{
			Temperature: 24,
			Condition:   "Clear",
			Humidity:    60,
			WindSpeed:   10,
			Description: "tempo bom",
			Icon:        "01d",
		}
	}
	snapshot.City = city

	return &snapshot
}

func mockForecast(city string, days int) []*entity.WeatherSnapshot {
	base := mockCurrent(city)
	forecast := make([]*entity.WeatherSnapshot, 0, days)

	for range days {
		day := *base
		day.Temperature = base.Temperature + rand.IntN(6) - 3
		day.Humidity = max(30, min(90, base.Humidity+rand.IntN(20)-10))
		forecast = append(forecast, &day)
	}

	return forecast
}
