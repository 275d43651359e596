package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// SQLStore writes generated SQL fixture files under a base directory.
type SQLStore struct {
	basePath string
}

// SaveResult describes a written fixture file.
type SaveResult struct {
	Path  string
	Bytes int
}

// NewSQLStore creates a new SQLStore and ensures the base directory exists.
func NewSQLStore(basePath string) (*SQLStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", basePath, err)
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory %s: %w", basePath, err)
	}
	return &SQLStore{basePath: abs}, nil
}

// Path returns the full path for a fixture file name.
func (s *SQLStore) Path(name string) string {
	return filepath.Join(s.basePath, name)
}

// Save writes body to the named file in one go, replacing any previous file.
// name must be a bare file name inside the base directory.
func (s *SQLStore) Save(name, body string) (SaveResult, error) {
	if name == "" {
		return SaveResult{}, fmt.Errorf("output file name is empty")
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return SaveResult{}, fmt.Errorf("output file name %q must not contain a directory", name)
	}

	filePath := s.Path(name)
	if err := os.WriteFile(filePath, []byte(body), 0644); err != nil {
		return SaveResult{}, fmt.Errorf("failed to write sql file: %w", err)
	}
	return SaveResult{Path: filePath, Bytes: len(body)}, nil
}

// Load reads a previously written fixture file.
func (s *SQLStore) Load(name string) (string, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return "", fmt.Errorf("failed to read sql file: %w", err)
	}
	return string(data), nil
}

// Exists checks if the named fixture file exists.
func (s *SQLStore) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return !os.IsNotExist(err)
}
