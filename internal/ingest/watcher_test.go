package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func collectPaths(t *testing.T, evCh <-chan string, want int) map[string]struct{} {
	t.Helper()
	got := map[string]struct{}{}
	timeout := time.After(5 * time.Second)
	for len(got) < want {
		select {
		case p, ok := <-evCh:
			require.True(t, ok, "event channel closed early")
			got[p] = struct{}{}
		case <-timeout:
			t.Fatalf("received %d of %d paths", len(got), want)
		}
	}
	return got
}

func TestInitialScanDeliversAllFiles(t *testing.T) {
	dir := t.TempDir()

	// More files than the event channel buffers, so a slow consumer
	// exercises the blocking path instead of losing the tail.
	const n = 300
	want := map[string]struct{}{}
	for i := 0; i < n; i++ {
		want[writeFile(t, dir, fmt.Sprintf("receipt-%03d.pdf", i))] = struct{}{}
	}
	writeFile(t, dir, "notes.txt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{dir},
		InitialScan: true,
	}, nil)
	require.NoError(t, err)

	got := collectPaths(t, evCh, n)
	assert.Equal(t, want, got)
}

func TestInitialScanSkippedWhenDisabled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "receipt.pdf")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}}, nil)
	require.NoError(t, err)

	select {
	case p := <-evCh:
		t.Fatalf("unexpected path %q", p)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{}, nil)
	require.Error(t, err)
}

func TestWatcherClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	evCh, errCh, err := StartWatcher(ctx, WatchConfig{Roots: []string{t.TempDir()}}, nil)
	require.NoError(t, err)

	cancel()
	timeout := time.After(5 * time.Second)
	for evCh != nil || errCh != nil {
		select {
		case _, ok := <-evCh:
			if !ok {
				evCh = nil
			}
		case _, ok := <-errCh:
			if !ok {
				errCh = nil
			}
		case <-timeout:
			t.Fatal("channels did not close after cancel")
		}
	}
}
