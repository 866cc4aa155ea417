package handler

import (
	"log/slog"
	"net/http"

	"wardrobe/internal/delivery/http/response"
	"wardrobe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WeatherHandler holds dependencies for weather lookup handlers.
type WeatherHandler struct {
	uc     usecase.WeatherUsecase
	logger *slog.Logger
}

// NewWeatherHandler is the constructor for WeatherHandler, injected by Fx.
func NewWeatherHandler(uc usecase.WeatherUsecase, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{
		uc:     uc,
		logger: logger,
	}
}

// Current returns present conditions plus generic dressing advice for a city.
func (h *WeatherHandler) Current(c echo.Context) error {
	city := c.Param("city")

	output, err := h.uc.Current(c.Request().Context(), city)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"weather": output.Weather,
		"advice":  output.Advice,
	}, "Weather retrieved successfully")
}

// Forecast returns upcoming daily conditions for a city.
func (h *WeatherHandler) Forecast(c echo.Context) error {
	city := c.Param("city")
	days := queryInt(c, "days", 0)

	forecast, err := h.uc.Forecast(c.Request().Context(), city, days)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, forecast, "Forecast retrieved successfully")
}
