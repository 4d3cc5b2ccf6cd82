package resolver

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Resolver wraps a Provider with the degradation contract: bounded call
// time, first-line answer parsing, and a one-way circuit breaker. Once a
// call fails the breaker trips for the remaining lifetime of the process;
// there is no re-enable. A race on the flag at worst allows one extra
// attempted call, which is itself safe.
type Resolver struct {
	provider Provider
	timeout  time.Duration
	logger   *slog.Logger
	tripped  atomic.Bool
}

func New(provider Provider, timeout time.Duration, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Resolver{provider: provider, timeout: timeout, logger: logger}
}

// Disabled returns a resolver that always passes through. Used when no
// credentials are configured.
func Disabled() *Resolver {
	return &Resolver{}
}

// ResolveVendor asks the provider for a vendor name. Any error, timeout, the
// UNKNOWN sentinel, or an already-tripped breaker yields fallback unchanged.
func (r *Resolver) ResolveVendor(ctx context.Context, rawText, fallback string) string {
	if r.provider == nil || r.tripped.Load() {
		return fallback
	}
	if strings.TrimSpace(rawText) == "" {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	answer, err := r.provider.Complete(ctx, buildVendorPrompt(rawText))
	if err != nil {
		r.tripped.Store(true)
		r.logger.Warn("resolver.vendor.tripped",
			"error", err, "elapsed_ms", time.Since(start).Milliseconds(),
		)
		return fallback
	}

	name := firstLine(answer)
	if name == "" || strings.EqualFold(name, UnknownSentinel) {
		r.logger.Debug("resolver.vendor.no_answer", "elapsed_ms", time.Since(start).Milliseconds())
		return fallback
	}
	r.logger.Info("resolver.vendor.ok",
		"vendor", name, "elapsed_ms", time.Since(start).Milliseconds(),
	)
	return name
}

// firstLine takes only the first line of the model response, trimmed and
// quote-stripped.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}
