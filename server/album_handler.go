package server

import (
	"net/http"

	"notevault/model"
)

// CreateAlbum handles POST /api/createAlbum.
func (h *APIHandler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID string `json:"userUUID"`
		Lang     string `json:"lang"`
		Title    string `json:"title"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID) {
		return
	}
	id := h.mgr.CreateAlbum(userID(req.UserUUID), req.Lang, req.Title)
	writeText(w, string(id))
}

// DeleteAlbum handles POST /api/deleteAlbum.
func (h *APIHandler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		AlbumUUID string `json:"albumUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID) {
		return
	}
	writeBool(w, h.mgr.DeleteAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID)))
}

func (h *APIHandler) AlbumSetTitle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		AlbumUUID string `json:"albumUUID"`
		Title     string `json:"title"`
		Lang      string `json:"lang"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID, req.Lang) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.SetTitle(req.Title, req.Lang))
}

func (h *APIHandler) AlbumRemoveTitle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		AlbumUUID string `json:"albumUUID"`
		Lang      string `json:"lang"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID, req.Lang) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.RemoveTitle(req.Lang))
}

func (h *APIHandler) AlbumSetTitleReadChar(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		AlbumUUID string `json:"albumUUID"`
		Lang      string `json:"lang"`
		Char      string `json:"char"`
		CharLang  string `json:"charLang"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID, req.Lang, req.CharLang) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.SetTitleReadChar(req.Lang, req.Char, req.CharLang))
}

func (h *APIHandler) AlbumDeleteTitleReadChar(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		AlbumUUID string `json:"albumUUID"`
		Lang      string `json:"lang"`
		CharLang  string `json:"charLang"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID, req.Lang, req.CharLang) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.DeleteTitleReadChar(req.Lang, req.CharLang))
}

func (h *APIHandler) AlbumAddArtist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		AlbumUUID  string `json:"albumUUID"`
		ArtistUUID string `json:"artistUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID, req.ArtistUUID) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.AddArtist(model.ArtistID(req.ArtistUUID)))
}

func (h *APIHandler) AlbumRemoveArtist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		AlbumUUID  string `json:"albumUUID"`
		ArtistUUID string `json:"artistUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID, req.ArtistUUID) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.RemoveArtist(model.ArtistID(req.ArtistUUID)))
}

func (h *APIHandler) AlbumAddFeaturingArtist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		AlbumUUID  string `json:"albumUUID"`
		ArtistUUID string `json:"artistUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID, req.ArtistUUID) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.AddFeaturingArtist(model.ArtistID(req.ArtistUUID)))
}

func (h *APIHandler) AlbumRemoveFeaturingArtist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		AlbumUUID  string `json:"albumUUID"`
		ArtistUUID string `json:"artistUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID, req.ArtistUUID) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.RemoveFeaturingArtist(model.ArtistID(req.ArtistUUID)))
}

func (h *APIHandler) AlbumSetFeaturingArtist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID    string   `json:"userUUID"`
		AlbumUUID   string   `json:"albumUUID"`
		ArtistUUIDs []string `json:"artistUUIDs"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID) {
		return
	}
	ids := make([]model.ArtistID, len(req.ArtistUUIDs))
	for i, s := range req.ArtistUUIDs {
		ids[i] = model.ArtistID(s)
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.SetFeaturingArtist(ids))
}

func (h *APIHandler) AlbumAddMusic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		AlbumUUID string `json:"albumUUID"`
		MusicUUID string `json:"musicUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID, req.MusicUUID) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.AddMusic(model.MusicID(req.MusicUUID)))
}

func (h *APIHandler) AlbumRemoveMusic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		AlbumUUID string `json:"albumUUID"`
		MusicUUID string `json:"musicUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID, req.MusicUUID) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.RemoveMusic(model.MusicID(req.MusicUUID)))
}

func (h *APIHandler) AlbumAddArtwork(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		AlbumUUID string `json:"albumUUID"`
		Lang      string `json:"lang"`
		File      string `json:"file"`
		Main      bool   `json:"main"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID, req.File) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.AddArtwork(model.Artwork{Lang: req.Lang, File: model.FileName(req.File), Main: req.Main}))
}

func (h *APIHandler) AlbumRemoveArtwork(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		AlbumUUID string `json:"albumUUID"`
		File      string `json:"file"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID, req.File) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.RemoveArtwork(model.Artwork{File: model.FileName(req.File)}))
}

func (h *APIHandler) AlbumAddGenre(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		AlbumUUID string `json:"albumUUID"`
		Genre     string `json:"genre"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID, req.Genre) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.AddGenre(req.Genre))
}

func (h *APIHandler) AlbumRemoveGenre(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		AlbumUUID string `json:"albumUUID"`
		Genre     string `json:"genre"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID, req.Genre) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.RemoveGenre(req.Genre))
}

func (h *APIHandler) AlbumSetGenre(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string   `json:"userUUID"`
		AlbumUUID string   `json:"albumUUID"`
		Genres    []string `json:"genres"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.SetGenre(req.Genres))
}

func (h *APIHandler) AlbumSetCreateDate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		AlbumUUID string `json:"albumUUID"`
		Year      int    `json:"year"`
		Month     int    `json:"month"`
		Day       int    `json:"day"`
		RawTime   int64  `json:"rawTime"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.SetCreateDate(model.CreateDate{Year: req.Year, Month: req.Month, Day: req.Day, RawTime: req.RawTime}))
}

func (h *APIHandler) AlbumSetRemixAlbum(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID     string `json:"userUUID"`
		AlbumUUID    string `json:"albumUUID"`
		OriginalUUID string `json:"originalUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID, req.OriginalUUID) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.SetRemixAlbum(model.AlbumID(req.OriginalUUID)))
}

func (h *APIHandler) AlbumDeleteRemixAlbum(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		AlbumUUID string `json:"albumUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.DeleteRemixAlbum())
}

func (h *APIHandler) AlbumSetCoverAlbum(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID     string `json:"userUUID"`
		AlbumUUID    string `json:"albumUUID"`
		OriginalUUID string `json:"originalUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID, req.OriginalUUID) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.SetCoverAlbum(model.AlbumID(req.OriginalUUID)))
}

func (h *APIHandler) AlbumDeleteCoverAlbum(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		AlbumUUID string `json:"albumUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.AlbumUUID) {
		return
	}
	ed := h.mgr.EditAlbum(userID(req.UserUUID), model.AlbumID(req.AlbumUUID))
	writeBool(w, ed.DeleteCoverAlbum())
}
