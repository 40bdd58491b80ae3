package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore implements Store with one JSON file per namespace under a data
// directory. It is the zero-infrastructure fallback when no Redis instance
// is configured.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(namespace string) string {
	return filepath.Join(s.dir, namespace+".json")
}

// Load reads the namespace file
func (s *FileStore) Load(_ context.Context, namespace string) ([]byte, error) {
	blob, err := os.ReadFile(s.path(namespace))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", namespace, err)
	}
	return blob, nil
}

// Save writes the namespace file atomically via a temp file rename
func (s *FileStore) Save(_ context.Context, namespace string, blob []byte) error {
	tmp := s.path(namespace) + ".tmp"
	if err := os.WriteFile(tmp, blob, 0600); err != nil {
		return fmt.Errorf("failed to save %s: %w", namespace, err)
	}
	if err := os.Rename(tmp, s.path(namespace)); err != nil {
		return fmt.Errorf("failed to save %s: %w", namespace, err)
	}
	return nil
}

// Delete removes the namespace file
func (s *FileStore) Delete(_ context.Context, namespace string) error {
	if err := os.Remove(s.path(namespace)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", namespace, err)
	}
	return nil
}
