package server

import (
	"net/http"

	"notevault/logger"
	"notevault/model"
)

// CreateUser handles POST /api/createUser.
func (h *APIHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.Name) {
		return
	}
	id := h.mgr.CreateUser(req.Name)
	writeText(w, string(id))
}

// DeleteUser handles POST /api/deleteUser.
func (h *APIHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID string `json:"userUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID) {
		return
	}
	writeBool(w, h.mgr.DeleteUser(userID(req.UserUUID)))
}

// SaveLibrary handles POST /api/saveLibrary: flush the in-memory document
// to disk. This is the only endpoint that persists anything.
func (h *APIHandler) SaveLibrary(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Save(h.mgr.Library()); err != nil {
		logger.Error("save library", logger.String("path", h.store.Path()), logger.ErrorField(err))
		http.Error(w, "save failed", http.StatusInternalServerError)
		return
	}
	logger.Info("library saved", logger.String("path", h.store.Path()))
	w.WriteHeader(http.StatusOK)
}

func (h *APIHandler) AlbumList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.mgr.Library().Albums)
}

func (h *APIHandler) AlbumInfo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AlbumUUID string `json:"albumUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.AlbumUUID) {
		return
	}
	album := h.mgr.Library().Album(model.AlbumID(req.AlbumUUID))
	if album == nil {
		http.Error(w, "album not found", http.StatusNotFound)
		return
	}
	writeJSON(w, album)
}

func (h *APIHandler) ArtistList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.mgr.Library().Artists)
}

func (h *APIHandler) ArtistInfo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ArtistUUID string `json:"artistUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.ArtistUUID) {
		return
	}
	artist := h.mgr.Library().Artist(model.ArtistID(req.ArtistUUID))
	if artist == nil {
		http.Error(w, "artist not found", http.StatusNotFound)
		return
	}
	writeJSON(w, artist)
}

func (h *APIHandler) MusicList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.mgr.Library().Musics)
}

func (h *APIHandler) MusicInfo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MusicUUID string `json:"musicUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.MusicUUID) {
		return
	}
	music := h.mgr.Library().Music(model.MusicID(req.MusicUUID))
	if music == nil {
		http.Error(w, "music not found", http.StatusNotFound)
		return
	}
	writeJSON(w, music)
}

func (h *APIHandler) PlaylistList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.mgr.Library().Playlists)
}

func (h *APIHandler) PlaylistInfo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlaylistUUID string `json:"playlistUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.PlaylistUUID) {
		return
	}
	playlist := h.mgr.Library().Playlist(model.PlaylistID(req.PlaylistUUID))
	if playlist == nil {
		http.Error(w, "playlist not found", http.StatusNotFound)
		return
	}
	writeJSON(w, playlist)
}

func (h *APIHandler) FileList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.mgr.Library().Files)
}

func (h *APIHandler) FileInfo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.Name) {
		return
	}
	file := h.mgr.Library().File(model.FileName(req.Name))
	if file == nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}
	writeJSON(w, file)
}

func (h *APIHandler) UserList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.mgr.Library().Users)
}
