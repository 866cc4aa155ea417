package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "wardrobe/internal/delivery/context"
	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	"wardrobe/internal/domain/service"
	"wardrobe/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultForecastDays = 5
	maxForecastDays     = 5
)

// weatherService implements the WeatherUsecase interface.
type weatherService struct {
	provider service.WeatherProvider
	logger   *slog.Logger
}

// WeatherServiceParams holds dependencies for weatherService, injected by Fx.
type WeatherServiceParams struct {
	fx.In

	Provider service.WeatherProvider
	Logger   *slog.Logger
}

// NewWeatherService is the constructor for weatherService.
func NewWeatherService(params WeatherServiceParams) usecase.WeatherUsecase {
	return &weatherService{
		provider: params.Provider,
		logger:   params.Logger,
	}
}

func (srv *weatherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Current returns the present conditions for a city along with dressing advice.
func (srv *weatherService) Current(ctx context.Context, city string) (*usecase.CurrentWeatherOutput, error) {
	if city == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("city is required")
	}

	weather, err := srv.provider.Current(ctx, city)
	if err != nil {
		srv.log(ctx).Error("Weather lookup failed", slog.String("city", city), slog.Any("error", err))

		return nil, domainerrors.ErrWeatherLookupFailed.WrapMessage(err.Error())
	}

	return &usecase.CurrentWeatherOutput{
		Weather: weather,
		Advice:  adviceFor(weather),
	}, nil
}

// Forecast returns upcoming daily conditions for a city.
func (srv *weatherService) Forecast(ctx context.Context, city string, days int) ([]*entity.WeatherSnapshot, error) {
	if city == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("city is required")
	}
	if days < 1 || days > maxForecastDays {
		days = defaultForecastDays
	}

	forecast, err := srv.provider.Forecast(ctx, city, days)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch forecast")
	}

	return forecast, nil
}

// adviceFor derives generic dressing advice from conditions. The temperature
// bands and condition checks mirror how the outfit fallback reasons about
// weather, but this advice is catalog-independent.
func adviceFor(weather *entity.WeatherSnapshot) *service.WeatherAdvice {
	advice := &service.WeatherAdvice{
		Clothing:    []string{},
		Accessories: []string{},
		Tips:        []string{},
	}

	switch {
	case weather.Temperature > 30:
		advice.Clothing = append(advice.Clothing, "roupas leves", "tecidos respiráveis", "cores claras")
		advice.Accessories = append(advice.Accessories, "chapéu", "óculos de sol")
		advice.Tips = append(advice.Tips, "Use protetor solar", "Mantenha-se hidratado")
	case weather.Temperature > 20:
		advice.Clothing = append(advice.Clothing, "roupas frescas", "camadas removíveis")
		advice.Accessories = append(advice.Accessories, "óculos de sol")
	case weather.Temperature > 10:
		advice.Clothing = append(advice.Clothing, "casaco leve", "calça comprida")
	default:
		advice.Clothing = append(advice.Clothing, "casaco pesado", "roupas quentes", "camadas")
		advice.Accessories = append(advice.Accessories, "gorro", "luvas", "cachecol")
	}

	if strings.Contains(strings.ToLower(weather.Condition), "rain") {
		advice.Accessories = append(advice.Accessories, "guarda-chuva", "capa de chuva")
		advice.Tips = append(advice.Tips, "Use sapatos impermeáveis")
	}

	if weather.WindSpeed > 20 {
		advice.Tips = append(advice.Tips, "Evite roupas muito soltas pelo vento")
	}

	if weather.Humidity > 80 {
		advice.Tips = append(advice.Tips, "Prefira tecidos que não retenham suor")
	}

	return advice
}
