package server

import (
	"net/http"

	"notevault/model"
)

// CreateArtist handles POST /api/createArtist.
func (h *APIHandler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID string `json:"userUUID"`
		Lang     string `json:"lang"`
		Name     string `json:"name"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID) {
		return
	}
	id := h.mgr.CreateArtist(userID(req.UserUUID), req.Lang, req.Name)
	writeText(w, string(id))
}

// DeleteArtist handles POST /api/deleteArtist.
func (h *APIHandler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		ArtistUUID string `json:"artistUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.ArtistUUID) {
		return
	}
	writeBool(w, h.mgr.DeleteArtist(userID(req.UserUUID), model.ArtistID(req.ArtistUUID)))
}

func (h *APIHandler) ArtistSetName(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		ArtistUUID string `json:"artistUUID"`
		Name       string `json:"name"`
		Lang       string `json:"lang"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.ArtistUUID, req.Lang) {
		return
	}
	ed := h.mgr.EditArtist(userID(req.UserUUID), model.ArtistID(req.ArtistUUID))
	writeBool(w, ed.SetName(req.Name, req.Lang))
}

func (h *APIHandler) ArtistRemoveName(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		ArtistUUID string `json:"artistUUID"`
		Lang       string `json:"lang"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.ArtistUUID, req.Lang) {
		return
	}
	ed := h.mgr.EditArtist(userID(req.UserUUID), model.ArtistID(req.ArtistUUID))
	writeBool(w, ed.RemoveName(req.Lang))
}

func (h *APIHandler) ArtistSetNameReadChar(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		ArtistUUID string `json:"artistUUID"`
		Lang       string `json:"lang"`
		Char       string `json:"char"`
		CharLang   string `json:"charLang"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.ArtistUUID, req.Lang, req.CharLang) {
		return
	}
	ed := h.mgr.EditArtist(userID(req.UserUUID), model.ArtistID(req.ArtistUUID))
	writeBool(w, ed.SetNameReadChar(req.Lang, req.Char, req.CharLang))
}

func (h *APIHandler) ArtistDeleteNameReadChar(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		ArtistUUID string `json:"artistUUID"`
		Lang       string `json:"lang"`
		CharLang   string `json:"charLang"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.ArtistUUID, req.Lang, req.CharLang) {
		return
	}
	ed := h.mgr.EditArtist(userID(req.UserUUID), model.ArtistID(req.ArtistUUID))
	writeBool(w, ed.DeleteNameReadChar(req.Lang, req.CharLang))
}

func (h *APIHandler) ArtistAddCharacterVoice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		ArtistUUID string `json:"artistUUID"`
		VoiceUUID  string `json:"voiceUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.ArtistUUID, req.VoiceUUID) {
		return
	}
	ed := h.mgr.EditArtist(userID(req.UserUUID), model.ArtistID(req.ArtistUUID))
	writeBool(w, ed.AddCharacterVoice(model.ArtistID(req.VoiceUUID)))
}

func (h *APIHandler) ArtistRemoveCharacterVoice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		ArtistUUID string `json:"artistUUID"`
		VoiceUUID  string `json:"voiceUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.ArtistUUID, req.VoiceUUID) {
		return
	}
	ed := h.mgr.EditArtist(userID(req.UserUUID), model.ArtistID(req.ArtistUUID))
	writeBool(w, ed.RemoveCharacterVoice(model.ArtistID(req.VoiceUUID)))
}

func (h *APIHandler) ArtistAddArtwork(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		ArtistUUID string `json:"artistUUID"`
		Lang       string `json:"lang"`
		File       string `json:"file"`
		Main       bool   `json:"main"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.ArtistUUID, req.File) {
		return
	}
	ed := h.mgr.EditArtist(userID(req.UserUUID), model.ArtistID(req.ArtistUUID))
	writeBool(w, ed.AddArtwork(model.Artwork{Lang: req.Lang, File: model.FileName(req.File), Main: req.Main}))
}

func (h *APIHandler) ArtistRemoveArtwork(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		ArtistUUID string `json:"artistUUID"`
		File       string `json:"file"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.ArtistUUID, req.File) {
		return
	}
	ed := h.mgr.EditArtist(userID(req.UserUUID), model.ArtistID(req.ArtistUUID))
	writeBool(w, ed.RemoveArtwork(model.Artwork{File: model.FileName(req.File)}))
}
