// Package resolver is the optional generative-AI fallback for vendor names.
// It is only consulted when structured extraction, line heuristics, and the
// slogan table all fail; every failure path degrades to the previous
// best-effort value, so its presence or absence never changes whether a
// receipt upload succeeds.
package resolver

import "context"

// Sentinel the model is instructed to return when it cannot name a vendor.
const UnknownSentinel = "UNKNOWN"

// Provider is a single generative backend: prompt in, free text out.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// VendorResolver proposes a vendor name from raw receipt text. The returned
// value is the resolved name, or fallback unchanged when no answer is
// available.
type VendorResolver interface {
	ResolveVendor(ctx context.Context, rawText, fallback string) string
}
