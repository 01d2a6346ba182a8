package server

import (
	"net/http"

	"notevault/model"
)

// CreatePlaylist handles POST /api/createPlaylist.
func (h *APIHandler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID string `json:"userUUID"`
		Name     string `json:"name"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID) {
		return
	}
	id := h.mgr.CreatePlaylist(userID(req.UserUUID), req.Name)
	writeText(w, string(id))
}

// DeletePlaylist handles POST /api/deletePlaylist.
func (h *APIHandler) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID     string `json:"userUUID"`
		PlaylistUUID string `json:"playlistUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.PlaylistUUID) {
		return
	}
	writeBool(w, h.mgr.DeletePlaylist(userID(req.UserUUID), model.PlaylistID(req.PlaylistUUID)))
}

func (h *APIHandler) PlaylistSetName(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID     string `json:"userUUID"`
		PlaylistUUID string `json:"playlistUUID"`
		Name         string `json:"name"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.PlaylistUUID) {
		return
	}
	ed := h.mgr.EditPlaylist(userID(req.UserUUID), model.PlaylistID(req.PlaylistUUID))
	writeBool(w, ed.SetName(req.Name))
}

func (h *APIHandler) PlaylistSetDescription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID     string `json:"userUUID"`
		PlaylistUUID string `json:"playlistUUID"`
		Description  string `json:"description"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.PlaylistUUID) {
		return
	}
	ed := h.mgr.EditPlaylist(userID(req.UserUUID), model.PlaylistID(req.PlaylistUUID))
	writeBool(w, ed.SetDescription(req.Description))
}

func (h *APIHandler) PlaylistAddMusic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID     string `json:"userUUID"`
		PlaylistUUID string `json:"playlistUUID"`
		MusicUUID    string `json:"musicUUID"`
		StreamNumber int    `json:"streamNumber"`
		Type         string `json:"type"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.PlaylistUUID, req.MusicUUID) {
		return
	}
	entryType := model.PlaylistEntryType(req.Type)
	if entryType == "" {
		entryType = model.PlaylistEntryMusic
	}
	ed := h.mgr.EditPlaylist(userID(req.UserUUID), model.PlaylistID(req.PlaylistUUID))
	writeBool(w, ed.AddMusic(model.MusicID(req.MusicUUID), req.StreamNumber, entryType))
}

func (h *APIHandler) PlaylistRemoveMusic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID     string `json:"userUUID"`
		PlaylistUUID string `json:"playlistUUID"`
		Index        int    `json:"index"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.PlaylistUUID) {
		return
	}
	ed := h.mgr.EditPlaylist(userID(req.UserUUID), model.PlaylistID(req.PlaylistUUID))
	writeBool(w, ed.RemoveMusic(req.Index))
}
