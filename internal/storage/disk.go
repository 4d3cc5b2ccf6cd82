package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
)

// DiskStore keeps receipt images under a local directory. Used when no
// bucket is configured (local development, tests).
type DiskStore struct {
	root   string
	logger *slog.Logger
}

func NewDiskStore(root string, logger *slog.Logger) *DiskStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &DiskStore{root: root, logger: logger}
}

func (s *DiskStore) Put(_ context.Context, key string, _ string, body []byte) error {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		s.logger.Error("storage.put.failed", "path", path, "error", err)
		return err
	}
	s.logger.Debug("storage.put.ok", "path", path, "bytes", len(body))
	return nil
}

func (s *DiskStore) Get(_ context.Context, key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.root, filepath.FromSlash(key)))
}
