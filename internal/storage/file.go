package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

// FileStore keeps the whole key-value map in a single JSON file. It is the
// default backend and plays the role a browser's localStorage plays for the
// web client: small, synchronous, survives restarts.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// NewFileStore opens (or creates) the store file at path. Unreadable or
// corrupt content is discarded and the store starts empty, so a damaged state
// file degrades to "no session" instead of blocking startup.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	s := &FileStore{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file %s: %w", path, err)
	}
	if err := sonic.Unmarshal(raw, &s.data); err != nil {
		log.Warn().Str("path", path).Err(err).Msg("state file is corrupt, starting empty")
		s.data = make(map[string]string)
	}
	return s, nil
}

// Get returns the stored value for key.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set writes the value for key and flushes the file.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.flush()
}

// Delete removes key and flushes the file. Deleting an absent key is a no-op.
func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

// Close is a no-op; every mutation is flushed synchronously.
func (s *FileStore) Close() error { return nil }

// flush rewrites the backing file via a temp file and rename so a crash never
// leaves a half-written state file. Caller must hold the lock.
func (s *FileStore) flush() error {
	raw, err := sonic.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
