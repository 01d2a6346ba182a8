package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"notevault/model"
)

// Store reads and writes the library document at a fixed path. Saving is
// always explicit: the manager mutates in memory and the caller decides
// when the document hits disk.
type Store struct {
	path string
}

// New returns a store for the given document path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load parses the document from disk. A missing file is not an error; it
// yields a fresh empty library, same as first launch.
func (s *Store) Load() (*model.Library, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return model.NewLibrary(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read library file: %w", err)
	}
	lib := model.NewLibrary()
	if err := json.Unmarshal(data, lib); err != nil {
		return nil, fmt.Errorf("parse library file: %w", err)
	}
	return lib, nil
}

// Save serializes the whole document. The write goes through a temp file
// in the same directory plus a rename, so a crash mid-save never leaves a
// truncated document behind.
func (s *Store) Save(lib *model.Library) error {
	data, err := json.Marshal(lib)
	if err != nil {
		return fmt.Errorf("serialize library: %w", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".library-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace library file: %w", err)
	}
	return nil
}
