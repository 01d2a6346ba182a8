package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"notevault/cache"
	"notevault/library"
	"notevault/logger"
	"notevault/model"
	"notevault/store"
)

// APIHandler holds everything the route handlers need. All mutation goes
// through the library manager and its sub-managers; the store is only
// touched by the explicit save endpoint.
//
// The library document is a single in-memory structure with no internal
// locking, so the router serializes access through mu: POSTs take the
// write lock, GETs the read lock.
type APIHandler struct {
	mu       sync.RWMutex
	mgr      *library.Manager
	musics   *library.MusicManager
	files    *library.FileManager
	store    *store.Store
	sessions *cache.SessionCache
}

// NewAPIHandler wires the handler set.
func NewAPIHandler(mgr *library.Manager, musics *library.MusicManager, files *library.FileManager, st *store.Store, sessions *cache.SessionCache) *APIHandler {
	return &APIHandler{mgr: mgr, musics: musics, files: files, store: st, sessions: sessions}
}

// decodeJSON parses the request body into dst, answering 400 on garbage.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

// require answers 400 when any required field is empty.
func require(w http.ResponseWriter, fields ...string) bool {
	for _, f := range fields {
		if f == "" {
			http.Error(w, "missing required field", http.StatusBadRequest)
			return false
		}
	}
	return true
}

// writeBool maps the editors' boolean contract onto status codes: truthy
// is 200, falsy (target not found) is 500. That mapping is the wire
// contract the client SDK relies on.
func writeBool(w http.ResponseWriter, ok bool) {
	if !ok {
		http.Error(w, "target not found", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// writeText answers 200 with a plain-text body, used for created ids.
func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		logger.Warn("write response", logger.ErrorField(err))
	}
}

// writeJSON answers 200 with a JSON body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("write response", logger.ErrorField(err))
	}
}

func userID(s string) model.UserID {
	return model.UserID(s)
}
