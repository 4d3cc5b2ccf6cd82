package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// OpenAIConfig for the chat/completions provider.
type OpenAIConfig struct {
	APIKey      string // if empty, falls back to env RESOLVER_API_KEY
	BaseURL     string // default https://api.openai.com/v1
	Model       string // e.g., "gpt-4o-mini"
	Temperature float32
	Timeout     time.Duration
}

// OpenAIProvider calls an OpenAI-compatible chat/completions endpoint in
// JSON mode and validates the response shape before handing the vendor name
// back to the resolver.
type OpenAIProvider struct {
	cfg    OpenAIConfig
	http   *http.Client
	logger *slog.Logger
}

func NewOpenAIProvider(cfg OpenAIConfig, logger *slog.Logger) *OpenAIProvider {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("RESOLVER_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OpenAIProvider{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	body := map[string]any{
		"model":           p.cfg.Model,
		"temperature":     p.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": `Return ONLY a JSON object of the form {"vendor_name": "..."}.`},
			{"role": "user", "content": prompt},
		},
	}

	endpoint := strings.TrimRight(p.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := p.post(ctx, endpoint, body)
	if err != nil {
		p.logger.Error("resolver.openai.http_error",
			"error", err, "elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in openai response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)

	// The prompt allows a bare sentinel line; a model that follows it instead
	// of JSON mode gave a valid no-answer, not a malformed reply.
	if strings.EqualFold(strings.Trim(content, `"'`), UnknownSentinel) {
		return UnknownSentinel, nil
	}

	name, err := parseVendorAnswer([]byte(content))
	if err != nil {
		p.logger.Error("resolver.openai.bad_answer",
			"error", err, "content", content,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}
	return name, nil
}

func (p *OpenAIProvider) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			p.logger.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}
