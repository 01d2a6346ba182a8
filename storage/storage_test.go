package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStorePutAndRemove(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := s.Put(ctx, "track.flac", strings.NewReader("bytes")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "track.flac"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "bytes" {
		t.Errorf("stored body = %q", data)
	}

	// Replacing an existing object is allowed.
	if err := s.Put(ctx, "track.flac", strings.NewReader("newer")); err != nil {
		t.Fatalf("Put replace: %v", err)
	}
	data, _ = os.ReadFile(filepath.Join(dir, "track.flac"))
	if string(data) != "newer" {
		t.Errorf("replaced body = %q", data)
	}

	if err := s.Remove(ctx, "track.flac"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "track.flac")); !os.IsNotExist(err) {
		t.Error("object still on disk after Remove")
	}
	// Removing twice is fine.
	if err := s.Remove(ctx, "track.flac"); err != nil {
		t.Errorf("second Remove: %v", err)
	}
}

func TestDiskStoreStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Put(context.Background(), "../../escape.txt", strings.NewReader("x")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.txt")); err != nil {
		t.Error("object not stored under its base name inside the cache dir")
	}
	if _, err := os.Stat(filepath.Join(dir, "..", "..", "escape.txt")); err == nil {
		t.Error("object escaped the cache dir")
	}
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestDiskStoreCleansUpPartialWrite(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Put(context.Background(), "partial.flac", brokenReader{}); err == nil {
		t.Fatal("Put with broken reader reported no error")
	}
	if _, err := os.Stat(filepath.Join(dir, "partial.flac")); !os.IsNotExist(err) {
		t.Error("partial file left behind")
	}
}
