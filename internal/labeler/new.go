package labeler

import (
	"fmt"

	"github.com/telltaleatheist/ContentStudio/internal/config"
	"github.com/telltaleatheist/ContentStudio/internal/logger"
)

type implLabeler struct {
	provider Provider
	logger   logger.Logger
}

// New creates a Labeler on top of an explicit provider.
func New(provider Provider, log logger.Logger) Labeler {
	return &implLabeler{
		provider: provider,
		logger:   log,
	}
}

// NewFromConfig selects the provider named in the config.
func NewFromConfig(cfg *config.Config, log logger.Logger) (Labeler, error) {
	switch cfg.AI.Provider {
	case "gemini":
		return New(NewGeminiProvider(cfg.AI.Gemini.APIKeys, cfg.AI.Gemini.Model, log), log), nil
	case "openai":
		return New(NewOpenAIProvider(cfg.AI.OpenAI.APIKey, cfg.AI.OpenAI.Model), log), nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.AI.Provider)
	}
}
