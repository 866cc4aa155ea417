package outfit

import (
	"context"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"wardrobe/config"
	"wardrobe/internal/domain/service"
	"wardrobe/internal/errors"
)

// anthropicGenerator produces outfits through the hosted Anthropic API.
type anthropicGenerator struct {
	client anthropic.Client
	cfg    *config.AnthropicConfig
	logger *slog.Logger
}

// NewAnthropicGenerator builds an OutfitGenerator backed by the hosted model.
func NewAnthropicGenerator(cfg *config.Config, logger *slog.Logger) (service.OutfitGenerator, error) {
	if cfg.AI.Anthropic.APIKey == "" {
		return nil, errors.New("anthropic api key must be provided")
	}

	client := anthropic.NewClient(
		option.WithAPIKey(cfg.AI.Anthropic.APIKey),
		option.WithRequestTimeout(cfg.AI.Anthropic.Timeout),
	)

	return &anthropicGenerator{
		client: client,
		cfg:    cfg.AI.Anthropic,
		logger: logger,
	}, nil
}

// Generate asks the hosted model for an outfit, degrading to the weather-rule
// selection when the call or the response parsing fails.
func (g *anthropicGenerator) Generate(ctx context.Context, req *service.OutfitRequest) (*service.OutfitResult, error) {
	economic, luxury := splitPools(req.Candidates)
	prompt := buildPrompt(req, economic, luxury)

	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.cfg.Model),
		MaxTokens: g.cfg.MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		g.logger.WarnContext(ctx, "anthropic call failed, using fallback selection",
			slog.Any("error", err))

		return fallbackResult(economic, luxury, req.Weather), nil
	}

	var text strings.Builder
	for _, block := range message.Content {
		if textBlock, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(textBlock.Text)
		}
	}

	outfit, reasoning, err := parseResponse(text.String(), economic, luxury)
	if err != nil {
		g.logger.WarnContext(ctx, "anthropic response unusable, using fallback selection",
			slog.Any("error", err))

		return fallbackResult(economic, luxury, req.Weather), nil
	}

	return &service.OutfitResult{Outfit: *outfit, Reasoning: reasoning}, nil
}
