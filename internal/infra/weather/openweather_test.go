package weather

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe/config"
)

func newTestProvider(t *testing.T, apiKey, baseURL string) *openWeatherProvider {
	t.Helper()

	cfg := &config.Config{}
	cfg.Weather = &config.WeatherConfig{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Lang:    "pt_br",
		Timeout: 2 * time.Second,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewOpenWeatherProvider(cfg, logger).(*openWeatherProvider)
}

func TestCurrent_WithoutAPIKeyUsesMockTable(t *testing.T) {
	provider := newTestProvider(t, "", "http://unused")

	snapshot, err := provider.Current(context.Background(), "São Paulo")
	require.NoError(t, err)

	assert.Equal(t, "São Paulo", snapshot.City)
	assert.Equal(t, 22, snapshot.Temperature)
	assert.Equal(t, "Clouds", snapshot.Condition)
	assert.Equal(t, 65, snapshot.Humidity)
	assert.Equal(t, 15, snapshot.WindSpeed)
	assert.Equal(t, "nublado", snapshot.Description)
	assert.Equal(t, "02d", snapshot.Icon)
}

func TestCurrent_UnknownCityGetsDefaultMock(t *testing.T) {
	provider := newTestProvider(t, "", "http://unused")

	snapshot, err := provider.Current(context.Background(), "Curitiba")
	require.NoError(t, err)

	assert.Equal(t, "Curitiba", snapshot.City)
	assert.Equal(t, 24, snapshot.Temperature)
	assert.Equal(t, "tempo bom", snapshot.Description)
}

func TestCurrent_ConvertsWindSpeedToKmh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "pt_br", r.URL.Query().Get("lang"))
		assert.Equal(t, "Recife", r.URL.Query().Get("q"))

		fmt.Fprint(w, `{
			"main": {"temp": 27.4, "humidity": 78},
			"weather": [{"main": "Rain", "description": "chuva leve", "icon": "10d"}],
			"wind": {"speed": 5.0}
		}`)
	}))
	defer server.Close()

	provider := newTestProvider(t, "test-key", server.URL)

	snapshot, err := provider.Current(context.Background(), "Recife")
	require.NoError(t, err)

	assert.Equal(t, 27, snapshot.Temperature)
	assert.Equal(t, "Rain", snapshot.Condition)
	assert.Equal(t, 18, snapshot.WindSpeed) // 5.0 m/s rounds to 18 km/h
	assert.Equal(t, "chuva leve", snapshot.Description)
}

func TestCurrent_UpstreamErrorFallsBackToMock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := newTestProvider(t, "test-key", server.URL)

	snapshot, err := provider.Current(context.Background(), "Rio de Janeiro")
	require.NoError(t, err)

	assert.Equal(t, 28, snapshot.Temperature)
	assert.Equal(t, "céu limpo", snapshot.Description)
}

func TestForecast_SamplesOneSlotPerDay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)

		fmt.Fprint(w, `{"list": [`)
		for i := range 40 {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{
				"main": {"temp": %d, "humidity": 60},
				"weather": [{"main": "Clear", "description": "céu limpo", "icon": "01d"}],
				"wind": {"speed": 3.0}
			}`, 20+i)
		}
		fmt.Fprint(w, `]}`)
	}))
	defer server.Close()

	provider := newTestProvider(t, "test-key", server.URL)

	forecast, err := provider.Forecast(context.Background(), "São Paulo", 40)
	require.NoError(t, err)

	// Entries 0, 8, 16, 24 and 32 of the three-hourly list.
	require.Len(t, forecast, 5)
	assert.Equal(t, 20, forecast[0].Temperature)
	assert.Equal(t, 28, forecast[1].Temperature)
	assert.Equal(t, 52, forecast[4].Temperature)
}

func TestForecast_WithoutAPIKeyJittersWithinBounds(t *testing.T) {
	provider := newTestProvider(t, "", "http://unused")

	forecast, err := provider.Forecast(context.Background(), "São Paulo", 5)
	require.NoError(t, err)
	require.Len(t, forecast, 5)

	for _, day := range forecast {
		assert.InDelta(t, 22, day.Temperature, 3)
		assert.GreaterOrEqual(t, day.Humidity, 30)
		assert.LessOrEqual(t, day.Humidity, 90)
		assert.Equal(t, "Clouds", day.Condition)
	}
}
