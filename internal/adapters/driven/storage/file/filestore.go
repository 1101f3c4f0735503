// Package file persists original uploads on the local filesystem.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.FileStore = (*Store)(nil)

// Store writes uploads into a single flat directory, one file per document.
type Store struct {
	dir string
}

// NewStore creates a file store rooted at the given directory.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("file: storage directory is required")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the content and returns the storage path. The filename is
// derived from the document ID, never from user input.
func (s *Store) Save(_ context.Context, documentID, ext string, content []byte) (string, error) {
	if documentID == "" {
		return "", fmt.Errorf("file: document ID is required")
	}

	ext = strings.TrimPrefix(ext, ".")
	name := documentID
	if ext != "" {
		name = documentID + "." + ext
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, content, 0600); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}

	return path, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (s *Store) Remove(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing file: %w", err)
	}
	return nil
}
