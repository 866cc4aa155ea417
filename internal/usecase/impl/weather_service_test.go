package impl

import (
	"context"
	"testing"

	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	mockService "wardrobe/internal/mocks/service"
	"wardrobe/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestWeatherService(t *testing.T) (usecase.WeatherUsecase, *mockService.MockWeatherProvider) {
	provider := mockService.NewMockWeatherProvider(t)
	svc := NewWeatherService(WeatherServiceParams{
		Provider: provider,
		Logger:   newDiscardLogger(),
	})

	return svc, provider
}

func TestWeatherService_Current_RequiresCity(t *testing.T) {
	svc, _ := createTestWeatherService(t)

	_, err := svc.Current(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestWeatherService_Forecast_ClampsDays(t *testing.T) {
	svc, provider := createTestWeatherService(t)
	ctx := context.Background()

	provider.EXPECT().
		Forecast(ctx, "São Paulo", 5).
		Return([]*entity.WeatherSnapshot{}, nil).
		Times(2)

	_, err := svc.Forecast(ctx, "São Paulo", 0)
	require.NoError(t, err)

	_, err = svc.Forecast(ctx, "São Paulo", 30)
	require.NoError(t, err)
}

func TestAdviceFor(t *testing.T) {
	tests := []struct {
		name            string
		weather         entity.WeatherSnapshot
		wantClothing    []string
		wantAccessories []string
		wantTips        []string
	}{
		{
			name:            "very hot",
			weather:         entity.WeatherSnapshot{Temperature: 34, Condition: "Clear", Humidity: 50, WindSpeed: 10},
			wantClothing:    []string{"roupas leves", "tecidos respiráveis", "cores claras"},
			wantAccessories: []string{"chapéu", "óculos de sol"},
			wantTips:        []string{"Use protetor solar", "Mantenha-se hidratado"},
		},
		{
			name:            "mild",
			weather:         entity.WeatherSnapshot{Temperature: 24, Condition: "Clear", Humidity: 50, WindSpeed: 10},
			wantClothing:    []string{"roupas frescas", "camadas removíveis"},
			wantAccessories: []string{"óculos de sol"},
			wantTips:        []string{},
		},
		{
			name:            "cool",
			weather:         entity.WeatherSnapshot{Temperature: 14, Condition: "Clouds", Humidity: 50, WindSpeed: 10},
			wantClothing:    []string{"casaco leve", "calça comprida"},
			wantAccessories: []string{},
			wantTips:        []string{},
		},
		{
			name:            "cold",
			weather:         entity.WeatherSnapshot{Temperature: 5, Condition: "Clear", Humidity: 50, WindSpeed: 10},
			wantClothing:    []string{"casaco pesado", "roupas quentes", "camadas"},
			wantAccessories: []string{"gorro", "luvas", "cachecol"},
			wantTips:        []string{},
		},
		{
			name:            "rainy and windy",
			weather:         entity.WeatherSnapshot{Temperature: 18, Condition: "Rain", Humidity: 85, WindSpeed: 25},
			wantClothing:    []string{"casaco leve", "calça comprida"},
			wantAccessories: []string{"guarda-chuva", "capa de chuva"},
			wantTips: []string{
				"Use sapatos impermeáveis",
				"Evite roupas muito soltas pelo vento",
				"Prefira tecidos que não retenham suor",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := adviceFor(&tt.weather)

			assert.Equal(t, tt.wantClothing, advice.Clothing)
			assert.Equal(t, tt.wantAccessories, advice.Accessories)
			assert.Equal(t, tt.wantTips, advice.Tips)
		})
	}
}
