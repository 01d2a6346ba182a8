package server

import (
	"encoding/json"
	"net/http"

	"notevault/library"
	"notevault/model"
)

// CreateMusic handles POST /api/createMusic.
func (h *APIHandler) CreateMusic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID string `json:"userUUID"`
		Lang     string `json:"lang"`
		Title    string `json:"title"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID) {
		return
	}
	id := h.musics.Create(userID(req.UserUUID), req.Lang, req.Title)
	writeText(w, string(id))
}

// DeleteMusic handles POST /api/deleteMusic.
func (h *APIHandler) DeleteMusic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID) {
		return
	}
	writeBool(w, h.musics.Delete(userID(req.UserUUID), model.MusicID(req.MusicUUID)))
}

func (h *APIHandler) musicEditor(user, music string) library.MusicEditor {
	return h.musics.Edit(userID(user), model.MusicID(music))
}

func (h *APIHandler) MusicSetTitle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
		Title     string `json:"title"`
		Lang      string `json:"lang"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.Lang) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).SetTitle(req.Title, req.Lang))
}

func (h *APIHandler) MusicRemoveTitle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
		Lang      string `json:"lang"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.Lang) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).RemoveTitle(req.Lang))
}

func (h *APIHandler) MusicSetTitleReadChar(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
		Lang      string `json:"lang"`
		Char      string `json:"char"`
		CharLang  string `json:"charLang"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.Lang, req.CharLang) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).SetTitleReadChar(req.Lang, req.Char, req.CharLang))
}

func (h *APIHandler) MusicDeleteTitleReadChar(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
		Lang      string `json:"lang"`
		CharLang  string `json:"charLang"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.Lang, req.CharLang) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).DeleteTitleReadChar(req.Lang, req.CharLang))
}

func (h *APIHandler) MusicAddArtist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		MusicUUID  string `json:"musicUUID"`
		ArtistUUID string `json:"artistUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.ArtistUUID) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).AddArtist(model.ArtistID(req.ArtistUUID)))
}

func (h *APIHandler) MusicRemoveArtist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		MusicUUID  string `json:"musicUUID"`
		ArtistUUID string `json:"artistUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.ArtistUUID) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).RemoveArtist(model.ArtistID(req.ArtistUUID)))
}

func (h *APIHandler) MusicAddFeaturingArtist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		MusicUUID  string `json:"musicUUID"`
		ArtistUUID string `json:"artistUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.ArtistUUID) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).AddFeaturingArtist(model.ArtistID(req.ArtistUUID)))
}

func (h *APIHandler) MusicRemoveFeaturingArtist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string `json:"userUUID"`
		MusicUUID  string `json:"musicUUID"`
		ArtistUUID string `json:"artistUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.ArtistUUID) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).RemoveFeaturingArtist(model.ArtistID(req.ArtistUUID)))
}

func (h *APIHandler) MusicAddGenre(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
		Genre     string `json:"genre"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.Genre) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).AddGenre(req.Genre))
}

func (h *APIHandler) MusicRemoveGenre(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
		Genre     string `json:"genre"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.Genre) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).RemoveGenre(req.Genre))
}

func (h *APIHandler) MusicSetGenre(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string   `json:"userUUID"`
		MusicUUID string   `json:"musicUUID"`
		Genres    []string `json:"genres"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).SetGenre(req.Genres))
}

// MusicSetLyrics accepts the lyrics document under a "lyrics" key. The
// document is validated before it touches the library; malformed lyrics
// answer 400, not 500.
func (h *APIHandler) MusicSetLyrics(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string          `json:"userUUID"`
		MusicUUID string          `json:"musicUUID"`
		Lyrics    json.RawMessage `json:"lyrics"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID) {
		return
	}
	lyrics, ok := library.ParseLyrics(req.Lyrics)
	if !ok {
		http.Error(w, "invalid lyrics document", http.StatusBadRequest)
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).SetLyrics(lyrics))
}

func (h *APIHandler) MusicRemoveLyrics(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
		Lang      string `json:"lang"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.Lang) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).RemoveLyrics(req.Lang))
}

// MusicAddMusicStream answers the positional stream reference as JSON so
// the client can address the stream in later edits.
func (h *APIHandler) MusicAddMusicStream(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
		File      string `json:"file"`
		Lang      string `json:"lang"`
		Type      string `json:"type"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.File) {
		return
	}
	ref, ok := h.musicEditor(req.UserUUID, req.MusicUUID).AddMusicStream(model.FileName(req.File), req.Lang, model.AudioType(req.Type))
	if !ok {
		http.Error(w, "target not found", http.StatusInternalServerError)
		return
	}
	writeJSON(w, ref)
}

func (h *APIHandler) MusicRemoveMusicStream(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
		File      string `json:"file"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.File) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).RemoveMusicStream(model.FileName(req.File)))
}

func (h *APIHandler) MusicAddVideoStream(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
		File      string `json:"file"`
		Lang      string `json:"lang"`
		Type      string `json:"type"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.File) {
		return
	}
	ref, ok := h.musicEditor(req.UserUUID, req.MusicUUID).AddVideoStream(model.FileName(req.File), req.Lang, model.VideoType(req.Type))
	if !ok {
		http.Error(w, "target not found", http.StatusInternalServerError)
		return
	}
	writeJSON(w, ref)
}

func (h *APIHandler) MusicRemoveVideoStream(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
		File      string `json:"file"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.File) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).RemoveVideoStream(model.FileName(req.File)))
}

func (h *APIHandler) MusicSetCreateDate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
		Year      int    `json:"year"`
		Month     int    `json:"month"`
		Day       int    `json:"day"`
		RawTime   int64  `json:"rawTime"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).SetCreateDate(model.CreateDate{Year: req.Year, Month: req.Month, Day: req.Day, RawTime: req.RawTime}))
}

func (h *APIHandler) MusicAddArtwork(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
		Lang      string `json:"lang"`
		File      string `json:"file"`
		Main      bool   `json:"main"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.File) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).AddArtwork(model.Artwork{Lang: req.Lang, File: model.FileName(req.File), Main: req.Main}))
}

func (h *APIHandler) MusicRemoveArtwork(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
		File      string `json:"file"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.File) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).RemoveArtwork(model.Artwork{File: model.FileName(req.File)}))
}

func (h *APIHandler) MusicSetRemixMusic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID     string `json:"userUUID"`
		MusicUUID    string `json:"musicUUID"`
		OriginalUUID string `json:"originalUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.OriginalUUID) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).SetRemixMusic(model.MusicID(req.OriginalUUID)))
}

func (h *APIHandler) MusicDeleteRemixMusic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).DeleteRemixMusic())
}

func (h *APIHandler) MusicSetCoverMusic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID     string `json:"userUUID"`
		MusicUUID    string `json:"musicUUID"`
		OriginalUUID string `json:"originalUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID, req.OriginalUUID) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).SetCoverMusic(model.MusicID(req.OriginalUUID)))
}

func (h *APIHandler) MusicDeleteCoverMusic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID  string `json:"userUUID"`
		MusicUUID string `json:"musicUUID"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.MusicUUID) {
		return
	}
	writeBool(w, h.musicEditor(req.UserUUID, req.MusicUUID).DeleteCoverMusic())
}
