package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiConfig for the Gemini text provider.
type GeminiConfig struct {
	APIKey string
	Model  string // e.g., "gemini-2.0-flash"
}

// GeminiProvider answers vendor prompts with a plain-text Gemini call.
type GeminiProvider struct {
	cfg    GeminiConfig
	logger *slog.Logger
}

func NewGeminiProvider(cfg GeminiConfig, logger *slog.Logger) *GeminiProvider {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GeminiProvider{cfg: cfg, logger: logger}
}

func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      p.cfg.APIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", fmt.Errorf("create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, p.cfg.Model, contents, nil)
	if err != nil {
		p.logger.Error("resolver.gemini.failed",
			"error", err, "elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
