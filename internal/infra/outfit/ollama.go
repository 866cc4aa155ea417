package outfit

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"wardrobe/config"
	"wardrobe/internal/domain/service"
	"wardrobe/internal/errors"
)

// ollamaPoolLimit bounds the catalog lines in the prompt. Small local models
// lose track of longer lists.
const ollamaPoolLimit = 10

// ollamaGenerator produces outfits through a self-hosted Ollama instance.
type ollamaGenerator struct {
	cfg    *config.OllamaConfig
	client *http.Client
	logger *slog.Logger
}

// NewOllamaGenerator builds an OutfitGenerator backed by a local model.
func NewOllamaGenerator(cfg *config.Config, logger *slog.Logger) service.OutfitGenerator {
	return &ollamaGenerator{
		cfg:    cfg.AI.Ollama,
		client: &http.Client{Timeout: cfg.AI.Ollama.Timeout},
		logger: logger,
	}
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

// Generate asks the local model for an outfit, degrading to the weather-rule
// selection when the call or the response parsing fails.
func (g *ollamaGenerator) Generate(ctx context.Context, req *service.OutfitRequest) (*service.OutfitResult, error) {
	economic, luxury := splitPools(req.Candidates)
	prompt := buildPrompt(req, capPool(economic, ollamaPoolLimit), capPool(luxury, ollamaPoolLimit))

	text, err := g.complete(ctx, prompt)
	if err != nil {
		g.logger.WarnContext(ctx, "ollama call failed, using fallback selection",
			slog.Any("error", err))

		return fallbackResult(economic, luxury, req.Weather), nil
	}

	outfit, reasoning, err := parseResponse(text, economic, luxury)
	if err != nil {
		g.logger.WarnContext(ctx, "ollama response unusable, using fallback selection",
			slog.Any("error", err))

		return fallbackResult(economic, luxury, req.Weather), nil
	}

	return &service.OutfitResult{Outfit: *outfit, Reasoning: reasoning}, nil
}

func (g *ollamaGenerator) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(ollamaRequest{
		Model:  g.cfg.Model,
		Prompt: prompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: 0.7,
			TopP:        0.9,
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "encode ollama request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build ollama request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "call ollama")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("ollama returned status %d", resp.StatusCode)
	}

	var payload ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errors.Wrap(err, "decode ollama response")
	}

	return payload.Response, nil
}
