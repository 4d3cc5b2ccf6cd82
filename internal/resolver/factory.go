package resolver

import (
	"log/slog"

	"github.com/ezbooks/ezbooks/internal/common"
)

// FromConfig builds the configured resolver, or a disabled passthrough when
// no provider or credentials are set.
func FromConfig(cfg common.ResolverConfig, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Provider == "" || cfg.APIKey == "" {
		logger.Info("resolver.disabled", "provider", cfg.Provider)
		return Disabled()
	}
	switch cfg.Provider {
	case "gemini":
		return New(NewGeminiProvider(GeminiConfig{APIKey: cfg.APIKey, Model: cfg.Model}, logger), cfg.Timeout, logger)
	case "openai":
		return New(NewOpenAIProvider(OpenAIConfig{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		}, logger), cfg.Timeout, logger)
	default:
		logger.Warn("resolver.unknown_provider", "provider", cfg.Provider)
		return Disabled()
	}
}
