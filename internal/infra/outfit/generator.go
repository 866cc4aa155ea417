package outfit

import (
	"log/slog"

	"wardrobe/config"
	"wardrobe/internal/domain/service"
	"wardrobe/internal/errors"
)

// NewGenerator builds the OutfitGenerator selected by configuration.
func NewGenerator(cfg *config.Config, logger *slog.Logger) (service.OutfitGenerator, error) {
	switch cfg.AI.Provider {
	case "anthropic":
		return NewAnthropicGenerator(cfg, logger)
	case "ollama":
		return NewOllamaGenerator(cfg, logger), nil
	default:
		return nil, errors.Errorf("unknown ai provider: %s", cfg.AI.Provider)
	}
}
