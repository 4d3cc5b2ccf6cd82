package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatCompletionServer(t *testing.T, contents []string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		require.Less(t, calls, len(contents), "more calls than scripted replies")
		content := contents[calls]
		calls++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"choices":[{"message":{"content":%s}}]}`, mustJSON(content))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func newTestOpenAIResolver(srv *httptest.Server) *Resolver {
	provider := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gpt-4o-mini",
		Timeout: time.Second,
	}, nil)
	return New(provider, time.Second, nil)
}

func TestOpenAIJSONAnswer(t *testing.T) {
	srv, calls := chatCompletionServer(t, []string{`{"vendor_name": "Shop Mart"}`})
	r := newTestOpenAIResolver(srv)

	got := r.ResolveVendor(context.Background(), "RECEIPT TEXT", "fallback")
	assert.Equal(t, "Shop Mart", got)
	assert.Equal(t, 1, *calls)
}

func TestOpenAIBareSentinelDoesNotTripBreaker(t *testing.T) {
	// a model may follow the plain-text prompt instead of JSON mode; the
	// bare sentinel is a valid no-answer, not a failure
	srv, calls := chatCompletionServer(t, []string{
		"UNKNOWN",
		`{"vendor_name": "Shop Mart"}`,
	})
	r := newTestOpenAIResolver(srv)

	assert.Equal(t, "fallback", r.ResolveVendor(context.Background(), "RECEIPT TEXT", "fallback"))
	assert.False(t, r.tripped.Load())

	assert.Equal(t, "Shop Mart", r.ResolveVendor(context.Background(), "RECEIPT TEXT", "fallback"))
	assert.Equal(t, 2, *calls, "the provider is still consulted after a sentinel reply")
}

func TestOpenAISentinelInsideJSON(t *testing.T) {
	srv, _ := chatCompletionServer(t, []string{`{"vendor_name": "UNKNOWN"}`})
	r := newTestOpenAIResolver(srv)

	assert.Equal(t, "fallback", r.ResolveVendor(context.Background(), "RECEIPT TEXT", "fallback"))
	assert.False(t, r.tripped.Load())
}

func TestOpenAIMalformedAnswerTripsBreaker(t *testing.T) {
	srv, calls := chatCompletionServer(t, []string{
		"It looks like a grocery store called Shop Mart.",
		`{"vendor_name": "Shop Mart"}`,
	})
	r := newTestOpenAIResolver(srv)

	assert.Equal(t, "fallback", r.ResolveVendor(context.Background(), "RECEIPT TEXT", "fallback"))
	assert.True(t, r.tripped.Load())

	assert.Equal(t, "fallback", r.ResolveVendor(context.Background(), "RECEIPT TEXT", "fallback"))
	assert.Equal(t, 1, *calls, "tripped resolver never reaches the server again")
}
