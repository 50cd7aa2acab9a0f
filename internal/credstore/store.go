// Package credstore persists the single bearer token the console holds.
package credstore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store is a file-backed slot for exactly one bearer token. The slot is
// shared across goroutines, so access is serialized with a mutex.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the given file path. The file is not
// created until the first Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save overwrites the stored token. No history is kept.
func (s *Store) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Read returns the stored token, or ok=false when none is present.
func (s *Store) Read() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

// Clear removes the stored token. Clearing an absent token is not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
