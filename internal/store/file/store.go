package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/snoopapp/snoop-client/internal/model"
)

const defaultTokenFile = ".snoop/token"

// Store persists the session token as a single file on disk. Absence of
// the file means logged-out.
type Store struct {
	path string
}

// New creates a Store at the given path. An empty path falls back to
// the default location under the user home directory.
func New(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, defaultTokenFile)
	}

	return &Store{path: path}, nil
}

// Get returns the stored token or model.ErrNoSession when nothing is
// persisted.
func (s *Store) Get(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", model.ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", model.ErrNoSession
	}

	return token, nil
}

// Set writes the token, creating the parent directory if needed.
func (s *Store) Set(_ context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// Clear removes the stored token. A missing file is not an error.
func (s *Store) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}

	return nil
}
