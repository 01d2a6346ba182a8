package library

import (
	"context"
	"io"
	"sync"

	"notevault/model"
	"notevault/storage"
)

// FileManager handles the upload path: it drains an incoming byte stream
// into the object store and registers the file row only once the stream has
// fully landed. It is the one place in the library that does I/O.
type FileManager struct {
	mgr     *Manager
	objects storage.ObjectStore

	// mu guards inflight and the insert itself. Two concurrent adds with
	// the same name would otherwise both pass the existence check while
	// neither has inserted yet.
	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewFileManager wraps the root manager and an object store.
func NewFileManager(mgr *Manager, objects storage.ObjectStore) *FileManager {
	return &FileManager{
		mgr:      mgr,
		objects:  objects,
		inflight: make(map[string]struct{}),
	}
}

// AddFileRequest carries everything needed to register an upload.
type AddFileRequest struct {
	User         model.UserID
	Name         string
	ImportSource model.ImportSource
	OriginalURL  model.OriginalURL
	Body         io.Reader
}

// Add registers an uploaded file. It reports ok=false when the name is
// already registered or currently being uploaded, and a non-nil error when
// draining the stream fails. The file row is inserted strictly after the
// body has been stored; on stream failure nothing is registered.
func (f *FileManager) Add(ctx context.Context, req AddFileRequest) (model.FileName, bool, error) {
	if !f.reserve(req.Name) {
		return "", false, nil
	}
	defer f.release(req.Name)

	if err := f.objects.Put(ctx, req.Name, req.Body); err != nil {
		return "", false, err
	}

	f.mu.Lock()
	name, ok := f.mgr.AddFile(req.User, req.Name, req.ImportSource, req.OriginalURL)
	f.mu.Unlock()
	return name, ok, nil
}

// reserve claims a name for the duration of an upload.
func (f *FileManager) reserve(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.inflight[name]; busy {
		return false
	}
	if f.mgr.Library().File(model.FileName(name)) != nil {
		return false
	}
	f.inflight[name] = struct{}{}
	return true
}

func (f *FileManager) release(name string) {
	f.mu.Lock()
	delete(f.inflight, name)
	f.mu.Unlock()
}

// Delete removes the file row if present. Always returns true, matching
// the root manager's delete contract. The stored body is left in place;
// reclaiming it is the cache's problem.
func (f *FileManager) Delete(user model.UserID, name model.FileName) bool {
	return f.mgr.DeleteFile(user, name)
}

// Edit returns a mutation handle bound to one file row.
func (f *FileManager) Edit(user model.UserID, name model.FileName) FileEditor {
	return f.mgr.EditFile(user, name)
}
