package server

import (
	"net/http"

	"notevault/library"
	"notevault/model"
)

// Stream endpoints address a stream positionally through the reference
// returned by addMusicStream / addVideoStream: the owning music uuid plus
// the stream's index. A stale index answers 500 like any other missing
// target.

func (h *APIHandler) audioStreamEditor(user, music string, number int) library.MusicStreamEditor {
	ed := h.musicEditor(user, music)
	return ed.EditMusicStream(model.MusicStreamRef{Music: model.MusicID(music), Number: number})
}

func (h *APIHandler) videoStreamEditor(user, music string, number int) library.VideoStreamEditor {
	ed := h.musicEditor(user, music)
	return ed.EditVideoStream(model.VideoStreamRef{Music: model.MusicID(music), Number: number})
}

type streamRequest struct {
	UserUUID   string   `json:"userUUID"`
	MusicUUID  string   `json:"musicUUID"`
	Number     int      `json:"number"`
	File       string   `json:"file"`
	Lang       string   `json:"lang"`
	ArtistUUID string   `json:"artistUUID"`
	Type       string   `json:"type"`
	Master     bool     `json:"master"`
	StartTime  *float64 `json:"startTime"`
	EndTime    *float64 `json:"endTime"`
}

func (h *APIHandler) streamRequest(w http.ResponseWriter, r *http.Request) (streamRequest, bool) {
	var req streamRequest
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID) {
		return req, false
	}
	return req, true
}

func (h *APIHandler) MusicStreamChangeFile(w http.ResponseWriter, r *http.Request) {
	req, ok := h.streamRequest(w, r)
	if !ok || !require(w, req.File) {
		return
	}
	writeBool(w, h.audioStreamEditor(req.UserUUID, req.MusicUUID, req.Number).ChangeFile(model.FileName(req.File)))
}

func (h *APIHandler) MusicStreamChangeLang(w http.ResponseWriter, r *http.Request) {
	req, ok := h.streamRequest(w, r)
	if !ok || !require(w, req.Lang) {
		return
	}
	writeBool(w, h.audioStreamEditor(req.UserUUID, req.MusicUUID, req.Number).ChangeLang(req.Lang))
}

func (h *APIHandler) MusicStreamAddArtist(w http.ResponseWriter, r *http.Request) {
	req, ok := h.streamRequest(w, r)
	if !ok || !require(w, req.ArtistUUID) {
		return
	}
	writeBool(w, h.audioStreamEditor(req.UserUUID, req.MusicUUID, req.Number).AddArtist(model.ArtistID(req.ArtistUUID)))
}

func (h *APIHandler) MusicStreamRemoveArtist(w http.ResponseWriter, r *http.Request) {
	req, ok := h.streamRequest(w, r)
	if !ok || !require(w, req.ArtistUUID) {
		return
	}
	writeBool(w, h.audioStreamEditor(req.UserUUID, req.MusicUUID, req.Number).RemoveArtist(model.ArtistID(req.ArtistUUID)))
}

func (h *APIHandler) MusicStreamChangeType(w http.ResponseWriter, r *http.Request) {
	req, ok := h.streamRequest(w, r)
	if !ok || !require(w, req.Type) {
		return
	}
	writeBool(w, h.audioStreamEditor(req.UserUUID, req.MusicUUID, req.Number).ChangeType(model.AudioType(req.Type)))
}

func (h *APIHandler) MusicStreamSetMaster(w http.ResponseWriter, r *http.Request) {
	req, ok := h.streamRequest(w, r)
	if !ok {
		return
	}
	writeBool(w, h.audioStreamEditor(req.UserUUID, req.MusicUUID, req.Number).SetMaster(req.Master))
}

func (h *APIHandler) MusicStreamSetDelayCorrection(w http.ResponseWriter, r *http.Request) {
	req, ok := h.streamRequest(w, r)
	if !ok {
		return
	}
	correction := model.DelayCorrection{StartTime: req.StartTime, EndTime: req.EndTime}
	writeBool(w, h.audioStreamEditor(req.UserUUID, req.MusicUUID, req.Number).SetDelayCorrection(correction))
}

func (h *APIHandler) VideoStreamChangeFile(w http.ResponseWriter, r *http.Request) {
	req, ok := h.streamRequest(w, r)
	if !ok || !require(w, req.File) {
		return
	}
	writeBool(w, h.videoStreamEditor(req.UserUUID, req.MusicUUID, req.Number).ChangeFile(model.FileName(req.File)))
}

func (h *APIHandler) VideoStreamChangeLang(w http.ResponseWriter, r *http.Request) {
	req, ok := h.streamRequest(w, r)
	if !ok || !require(w, req.Lang) {
		return
	}
	writeBool(w, h.videoStreamEditor(req.UserUUID, req.MusicUUID, req.Number).ChangeLang(req.Lang))
}

func (h *APIHandler) VideoStreamAddArtist(w http.ResponseWriter, r *http.Request) {
	req, ok := h.streamRequest(w, r)
	if !ok || !require(w, req.ArtistUUID) {
		return
	}
	writeBool(w, h.videoStreamEditor(req.UserUUID, req.MusicUUID, req.Number).AddArtist(model.ArtistID(req.ArtistUUID)))
}

func (h *APIHandler) VideoStreamRemoveArtist(w http.ResponseWriter, r *http.Request) {
	req, ok := h.streamRequest(w, r)
	if !ok || !require(w, req.ArtistUUID) {
		return
	}
	writeBool(w, h.videoStreamEditor(req.UserUUID, req.MusicUUID, req.Number).RemoveArtist(model.ArtistID(req.ArtistUUID)))
}

func (h *APIHandler) VideoStreamChangeType(w http.ResponseWriter, r *http.Request) {
	req, ok := h.streamRequest(w, r)
	if !ok || !require(w, req.Type) {
		return
	}
	writeBool(w, h.videoStreamEditor(req.UserUUID, req.MusicUUID, req.Number).ChangeType(model.VideoType(req.Type)))
}

func (h *APIHandler) VideoStreamSetMaster(w http.ResponseWriter, r *http.Request) {
	req, ok := h.streamRequest(w, r)
	if !ok {
		return
	}
	writeBool(w, h.videoStreamEditor(req.UserUUID, req.MusicUUID, req.Number).SetMaster(req.Master))
}

func (h *APIHandler) VideoStreamSetDelayCorrection(w http.ResponseWriter, r *http.Request) {
	req, ok := h.streamRequest(w, r)
	if !ok {
		return
	}
	correction := model.DelayCorrection{StartTime: req.StartTime, EndTime: req.EndTime}
	writeBool(w, h.videoStreamEditor(req.UserUUID, req.MusicUUID, req.Number).SetDelayCorrection(correction))
}
