package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ObjectStore receives uploaded file bodies keyed by the library file name.
type ObjectStore interface {
	// Put drains r into the object named name, replacing any stale object
	// already stored under that name.
	Put(ctx context.Context, name string, r io.Reader) error
	// Remove deletes the object if it exists.
	Remove(ctx context.Context, name string) error
}

// DiskStore keeps uploads in a flat cache directory on the local disk.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the cache directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (d *DiskStore) path(name string) string {
	// Base strips any path components a caller smuggled into the name.
	return filepath.Join(d.dir, filepath.Base(name))
}

// Put streams r into the cache file for name. A partial file left by a
// failed copy is removed so a retry starts clean.
func (d *DiskStore) Put(ctx context.Context, name string, r io.Reader) error {
	path := d.path(name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close cache file: %w", err)
	}
	return nil
}

// Remove deletes the cache file for name. Missing files are not an error.
func (d *DiskStore) Remove(ctx context.Context, name string) error {
	err := os.Remove(d.path(name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove cache file: %w", err)
	}
	return nil
}
