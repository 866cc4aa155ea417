package outfit

import (
	"context"
	"encoding/json"
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
	"wardrobe/internal/domain/entity"
	"wardrobe/internal/domain/service"
)

func newTestOllama(t *testing.T, baseURL string) service.OutfitGenerator {
	t.Helper()

	cfg := &config.Config{}
	cfg.AI = &config.AIConfig{
		Provider: "ollama",
		Ollama: &config.OllamaConfig{
			BaseURL: baseURL,
			Model:   "llama3.2:3b",
			Timeout: 2 * time.Second,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewOllamaGenerator(cfg, logger)
}

func TestOllamaGenerate_ParsesModelAnswer(t *testing.T) {
	shirt := testProduct("camiseta", "shirt", 40, true, false)
	coat := testProduct("casaco", "jacket", 900, false, true)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.2:3b", req.Model)
		assert.False(t, req.Stream)
		assert.InDelta(t, 0.7, req.Options.Temperature, 0.001)
		assert.Contains(t, req.Prompt, "camiseta")
		assert.Contains(t, req.Prompt, "São Paulo")

		answer := fmt.Sprintf(`Claro! {"economic":[{"productId":%q,"category":"shirt","name":"camiseta","price":40,"reasoning":"leve"}],"luxury":[{"productId":%q,"category":"jacket","name":"casaco","price":900,"reasoning":"fino"}],"general_reasoning":"dia agradável"}`,
			shirt.ID, coat.ID)
		json.NewEncoder(w).Encode(ollamaResponse{Response: answer})
	}))
	defer server.Close()

	generator := newTestOllama(t, server.URL)

	result, err := generator.Generate(context.Background(), &service.OutfitRequest{
		City:   "São Paulo",
		Gender: entity.GenderFemale,
		Weather: &entity.WeatherSnapshot{
			City:        "São Paulo",
			Temperature: 22,
			Condition:   "Clouds",
			Description: "nublado",
		},
		Candidates: []*entity.Product{shirt, coat},
	})
	require.NoError(t, err)

	assert.Equal(t, "dia agradável", result.Reasoning)
	require.Len(t, result.Outfit.Economic, 1)
	assert.Equal(t, shirt.ProductURL, result.Outfit.Economic[0].ProductURL)
	require.Len(t, result.Outfit.Luxury, 1)
}

func TestOllamaGenerate_ServerDownFallsBack(t *testing.T) {
	shirt := testProduct("camiseta", "shirt", 40, true, false)

	generator := newTestOllama(t, "http://127.0.0.1:1")

	result, err := generator.Generate(context.Background(), &service.OutfitRequest{
		City:       "Recife",
		Gender:     entity.GenderMale,
		Weather:    &entity.WeatherSnapshot{Temperature: 30, Condition: "Clear"},
		Candidates: []*entity.Product{shirt},
	})
	require.NoError(t, err)

	require.Len(t, result.Outfit.Economic, 1)
	assert.Equal(t, "camiseta", result.Outfit.Economic[0].Name)
	assert.Contains(t, result.Reasoning, "tempo quente")
}

func TestOllamaGenerate_MissingTierArraysFallsBack(t *testing.T) {
	shirt := testProduct("camiseta", "shirt", 40, true, false)
	shorts := testProduct("bermuda", "shorts", 60, true, false)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaResponse{Response: `{"general_reasoning": "dia quente"}`})
	}))
	defer server.Close()

	generator := newTestOllama(t, server.URL)

	result, err := generator.Generate(context.Background(), &service.OutfitRequest{
		City:       "Recife",
		Gender:     entity.GenderMale,
		Weather:    &entity.WeatherSnapshot{Temperature: 30, Condition: "Clear"},
		Candidates: []*entity.Product{shirt, shorts},
	})
	require.NoError(t, err)

	// Deterministic selection, not the model's empty answer.
	require.Len(t, result.Outfit.Economic, 2)
	assert.Contains(t, result.Reasoning, "tempo quente")
}

func TestOllamaGenerate_UnparseableAnswerFallsBack(t *testing.T) {
	shirt := testProduct("camiseta", "shirt", 40, true, false)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaResponse{Response: "desculpe, não entendi o pedido"})
	}))
	defer server.Close()

	generator := newTestOllama(t, server.URL)

	result, err := generator.Generate(context.Background(), &service.OutfitRequest{
		City:       "Recife",
		Gender:     entity.GenderMale,
		Weather:    &entity.WeatherSnapshot{Temperature: 10, Condition: "Rain"},
		Candidates: []*entity.Product{shirt},
	})
	require.NoError(t, err)

	assert.Contains(t, result.Reasoning, "tempo frio")
	assert.Contains(t, result.Reasoning, "proteção contra chuva")
}
