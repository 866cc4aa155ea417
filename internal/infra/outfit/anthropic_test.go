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

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe/config"
	"wardrobe/internal/domain/entity"
	"wardrobe/internal/domain/service"
)

func newTestAnthropic(t *testing.T, baseURL string) *anthropicGenerator {
	t.Helper()

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)

	return &anthropicGenerator{
		client: client,
		cfg: &config.AnthropicConfig{
			APIKey:    "test-key",
			Model:     "claude-3-sonnet-20240229",
			MaxTokens: 2000,
			Timeout:   2 * time.Second,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// messagesPayload is the wire shape of a Messages API answer.
func messagesPayload(text string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-3-sonnet-20240229",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"stop_reason": "end_turn",
		"usage":       map[string]any{"input_tokens": 10, "output_tokens": 10},
	}
}

func TestAnthropicGenerate_ParsesModelAnswer(t *testing.T) {
	shirt := testProduct("camiseta", "shirt", 40, true, false)
	coat := testProduct("casaco", "jacket", 900, false, true)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "/messages")

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "claude-3-sonnet-20240229", req["model"])
		assert.EqualValues(t, 2000, req["max_tokens"])

		answer := fmt.Sprintf(`{"economic":[{"productId":%q,"category":"shirt","name":"camiseta","price":40,"reasoning":"leve"}],"luxury":[{"productId":%q,"category":"jacket","name":"casaco","price":900,"reasoning":"fino"}],"general_reasoning":"dia agradável"}`,
			shirt.ID, coat.ID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(messagesPayload(answer))
	}))
	defer server.Close()

	generator := newTestAnthropic(t, server.URL)

	result, err := generator.Generate(context.Background(), &service.OutfitRequest{
		City:       "São Paulo",
		Gender:     entity.GenderFemale,
		Weather:    &entity.WeatherSnapshot{City: "São Paulo", Temperature: 22, Condition: "Clouds"},
		Candidates: []*entity.Product{shirt, coat},
	})
	require.NoError(t, err)

	assert.Equal(t, "dia agradável", result.Reasoning)
	require.Len(t, result.Outfit.Economic, 1)
	assert.Equal(t, shirt.ProductURL, result.Outfit.Economic[0].ProductURL)
	require.Len(t, result.Outfit.Luxury, 1)
}

func TestAnthropicGenerate_APIErrorFallsBack(t *testing.T) {
	shirt := testProduct("camiseta", "shirt", 40, true, false)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	generator := newTestAnthropic(t, server.URL)

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

func TestAnthropicGenerate_UnusableAnswerFallsBack(t *testing.T) {
	shirt := testProduct("camiseta", "shirt", 40, true, false)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(messagesPayload("desculpe, não consegui montar o look"))
	}))
	defer server.Close()

	generator := newTestAnthropic(t, server.URL)

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
