package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"notevault/model"
	"notevault/storage"
)

func newFileManagerFixture(t *testing.T) (*FileManager, *Manager, string) {
	t.Helper()
	dir := t.TempDir()
	objects, err := storage.NewDiskStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	m := newTestManager()
	return NewFileManager(m, objects), m, dir
}

func TestFileManagerAddStoresBodyThenRegisters(t *testing.T) {
	fm, m, dir := newFileManagerFixture(t)

	name, ok, err := fm.Add(context.Background(), AddFileRequest{
		User:         testUser,
		Name:         "track01.flac",
		ImportSource: model.ImportCD,
		Body:         strings.NewReader("audio bytes"),
	})
	if err != nil || !ok {
		t.Fatalf("Add = (%q, %v, %v)", name, ok, err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "track01.flac"))
	if err != nil {
		t.Fatalf("stored body unreadable: %v", err)
	}
	if string(data) != "audio bytes" {
		t.Errorf("stored body = %q", data)
	}

	file := m.Library().File("track01.flac")
	if file == nil {
		t.Fatal("file row not registered")
	}
	if file.ImportSource != model.ImportCD || file.InfoAuthor != testUser {
		t.Errorf("file row = %+v", file)
	}
}

func TestFileManagerAddDuplicateName(t *testing.T) {
	fm, m, _ := newFileManagerFixture(t)
	ctx := context.Background()

	if _, ok, err := fm.Add(ctx, AddFileRequest{User: testUser, Name: "dup.flac", ImportSource: model.ImportOther, Body: strings.NewReader("a")}); err != nil || !ok {
		t.Fatalf("first Add failed: ok=%v err=%v", ok, err)
	}
	if _, ok, err := fm.Add(ctx, AddFileRequest{User: testUser, Name: "dup.flac", ImportSource: model.ImportOther, Body: strings.NewReader("b")}); err != nil || ok {
		t.Fatalf("duplicate Add = (ok=%v, err=%v), want rejection without error", ok, err)
	}
	if len(m.Library().Files) != 1 {
		t.Errorf("file count = %d, want 1", len(m.Library().Files))
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stream torn down")
}

func TestFileManagerAddStreamFailure(t *testing.T) {
	fm, m, _ := newFileManagerFixture(t)

	_, ok, err := fm.Add(context.Background(), AddFileRequest{
		User:         testUser,
		Name:         "broken.flac",
		ImportSource: model.ImportOther,
		Body:         failingReader{},
	})
	if err == nil {
		t.Fatal("Add with failing stream reported no error")
	}
	if ok {
		t.Error("Add with failing stream reported ok")
	}
	if m.Library().File("broken.flac") != nil {
		t.Error("file row registered despite stream failure")
	}

	// The name is free again once the failed upload has been released.
	if _, ok, err := fm.Add(context.Background(), AddFileRequest{User: testUser, Name: "broken.flac", ImportSource: model.ImportOther, Body: strings.NewReader("ok now")}); err != nil || !ok {
		t.Errorf("retry after failure = (ok=%v, err=%v)", ok, err)
	}
}

func TestFileManagerConcurrentSameName(t *testing.T) {
	fm, m, _ := newFileManagerFixture(t)

	const workers = 8
	var wg sync.WaitGroup
	results := make([]bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, ok, err := fm.Add(context.Background(), AddFileRequest{
				User:         testUser,
				Name:         "contested.flac",
				ImportSource: model.ImportOther,
				Body:         strings.NewReader("payload"),
			})
			results[i] = ok && err == nil
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, ok := range results {
		if ok {
			wins++
		}
	}
	if wins != 1 {
		t.Errorf("%d uploads won the name, want exactly 1", wins)
	}
	if len(m.Library().Files) != 1 {
		t.Errorf("file count = %d, want 1", len(m.Library().Files))
	}
}

func TestFileManagerDeleteAlwaysTrue(t *testing.T) {
	fm, _, _ := newFileManagerFixture(t)
	if !fm.Delete(testUser, "never-existed.flac") {
		t.Error("delete of missing file reported false")
	}
}
