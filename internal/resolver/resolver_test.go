package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type scriptedProvider struct {
	answer string
	err    error
	calls  int
}

func (p *scriptedProvider) Complete(context.Context, string) (string, error) {
	p.calls++
	return p.answer, p.err
}

func TestResolveVendor(t *testing.T) {
	provider := &scriptedProvider{answer: "Shop Mart"}
	r := New(provider, time.Second, nil)

	got := r.ResolveVendor(context.Background(), "SOME RECEIPT TEXT", "fallback")
	assert.Equal(t, "Shop Mart", got)
}

func TestResolveVendorStripsQuotesAndExtraLines(t *testing.T) {
	provider := &scriptedProvider{answer: "\"Shop Mart\"\nIt appears to be a grocery store."}
	r := New(provider, time.Second, nil)

	got := r.ResolveVendor(context.Background(), "SOME RECEIPT TEXT", "fallback")
	assert.Equal(t, "Shop Mart", got)
}

func TestResolveVendorUnknownSentinel(t *testing.T) {
	provider := &scriptedProvider{answer: "unknown"}
	r := New(provider, time.Second, nil)

	got := r.ResolveVendor(context.Background(), "SOME RECEIPT TEXT", "fallback")
	assert.Equal(t, "fallback", got)
	assert.False(t, r.tripped.Load(), "an UNKNOWN answer is not a failure")
}

func TestResolveVendorEmptyRawText(t *testing.T) {
	provider := &scriptedProvider{answer: "Shop Mart"}
	r := New(provider, time.Second, nil)

	assert.Equal(t, "fallback", r.ResolveVendor(context.Background(), "  \n ", "fallback"))
	assert.Zero(t, provider.calls)
}

func TestCircuitBreakerTripsOnceAndStaysTripped(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("quota exceeded")}
	r := New(provider, time.Second, nil)

	assert.Equal(t, "fallback", r.ResolveVendor(context.Background(), "TEXT", "fallback"))
	assert.Equal(t, 1, provider.calls)

	// all later calls skip the provider entirely
	provider.err = nil
	provider.answer = "Shop Mart"
	for i := 0; i < 3; i++ {
		assert.Equal(t, "fallback", r.ResolveVendor(context.Background(), "TEXT", "fallback"))
	}
	assert.Equal(t, 1, provider.calls, "breaker never re-enables within a process")
}

func TestDisabledResolverPassesThrough(t *testing.T) {
	r := Disabled()
	assert.Equal(t, "fallback", r.ResolveVendor(context.Background(), "TEXT", "fallback"))
	assert.Equal(t, "", r.ResolveVendor(context.Background(), "TEXT", ""))
}
