package server

import (
	"net/http"
	"strconv"

	"notevault/cache"
	"notevault/logger"
)

// SessionPing handles POST /api/sessionPing: a player heartbeat carrying
// the current playback position.
func (h *APIHandler) SessionPing(w http.ResponseWriter, r *http.Request) {
	var req cache.Session
	if !decodeJSON(w, r, &req) || !require(w, req.SessionID) {
		return
	}
	if err := h.sessions.Ping(r.Context(), req); err != nil {
		logger.Error("session ping", logger.String("session", req.SessionID), logger.ErrorField(err))
		http.Error(w, "session store failure", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// SessionInfo handles POST /api/sessionInfo.
func (h *APIHandler) SessionInfo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"sessionid"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.SessionID) {
		return
	}
	s, ok, err := h.sessions.Get(r.Context(), req.SessionID)
	if err != nil {
		logger.Error("session lookup", logger.String("session", req.SessionID), logger.ErrorField(err))
		http.Error(w, "session store failure", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, s)
}

// RecordPlay handles POST /api/playHistory.
func (h *APIHandler) RecordPlay(w http.ResponseWriter, r *http.Request) {
	var req cache.PlayHistory
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.sessions.RecordPlay(r.Context(), req); err != nil {
		logger.Error("record play", logger.ErrorField(err))
		http.Error(w, "session store failure", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// PlayHistory handles GET /api/playHistory?limit=n, newest last.
func (h *APIHandler) PlayHistory(w http.ResponseWriter, r *http.Request) {
	limit := int64(50)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	history, err := h.sessions.History(r.Context(), limit)
	if err != nil {
		logger.Error("play history", logger.ErrorField(err))
		http.Error(w, "session store failure", http.StatusInternalServerError)
		return
	}
	writeJSON(w, history)
}
