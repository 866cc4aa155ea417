package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"wardrobe/internal/domain/entity"
	mockService "wardrobe/internal/mocks/service"
	"wardrobe/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWeatherHandler_Current_Integration(t *testing.T) {
	provider := mockService.NewMockWeatherProvider(t)
	provider.EXPECT().Current(mock.Anything, "Rio de Janeiro").Return(&entity.WeatherSnapshot{
		City:        "Rio de Janeiro",
		Temperature: 28,
		Condition:   "Clear",
		Humidity:    70,
		WindSpeed:   12,
		Description: "céu limpo",
		Icon:        "01d",
	}, nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	weatherUsecase := impl.NewWeatherService(impl.WeatherServiceParams{
		Provider: provider,
		Logger:   logger,
	})
	handler := NewWeatherHandler(weatherUsecase, logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/weather/current/Rio%20de%20Janeiro", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("city")
	c.SetParamValues("Rio de Janeiro")

	require.NoError(t, handler.Current(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"temperature":28`)
	assert.Contains(t, body, "céu limpo")
	// 28°C lands in the fresh-clothes advice bucket.
	assert.Contains(t, body, "roupas frescas")
	assert.Contains(t, body, "óculos de sol")
}

func TestWeatherHandler_Forecast_Integration(t *testing.T) {
	provider := mockService.NewMockWeatherProvider(t)
	provider.EXPECT().Forecast(mock.Anything, "Brasília", 3).Return([]*entity.WeatherSnapshot{
		{City: "Brasília", Temperature: 25},
		{City: "Brasília", Temperature: 26},
		{City: "Brasília", Temperature: 24},
	}, nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	weatherUsecase := impl.NewWeatherService(impl.WeatherServiceParams{
		Provider: provider,
		Logger:   logger,
	})
	handler := NewWeatherHandler(weatherUsecase, logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/weather/forecast/Bras%C3%ADlia?days=3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("city")
	c.SetParamValues("Brasília")

	require.NoError(t, handler.Forecast(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"temperature":26`)
}
