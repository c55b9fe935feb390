// Package disk implements blob storage on the local filesystem, the
// default backend for development and single-host deployments.
package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nbarth/gatehouse/core"
)

type Store struct {
	dir string
}

var _ core.BlobStorage = (*Store)(nil)

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the stream to <dir>/<key>. Keys come from the asset
// service and contain no client-controlled path segments.
func (s *Store) Save(ctx context.Context, key, contentType string, r io.Reader) error {
	path := filepath.Join(s.dir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write %q: %w", path, err)
	}

	return f.Close()
}

func (s *Store) Delete(ctx context.Context, key string) error {
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %q: %w", path, err)
	}
	return nil
}
