package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter builds the API route table. Every mutation is a POST with a
// flat JSON body; the two reads that take no arguments are GETs.
func NewRouter(h *APIHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(h.lockMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	// Entity lifecycle.
	api.HandleFunc("/createAlbum", h.CreateAlbum).Methods("POST", "OPTIONS")
	api.HandleFunc("/deleteAlbum", h.DeleteAlbum).Methods("POST", "OPTIONS")
	api.HandleFunc("/createArtist", h.CreateArtist).Methods("POST", "OPTIONS")
	api.HandleFunc("/deleteArtist", h.DeleteArtist).Methods("POST", "OPTIONS")
	api.HandleFunc("/createMusic", h.CreateMusic).Methods("POST", "OPTIONS")
	api.HandleFunc("/deleteMusic", h.DeleteMusic).Methods("POST", "OPTIONS")
	api.HandleFunc("/createPlaylist", h.CreatePlaylist).Methods("POST", "OPTIONS")
	api.HandleFunc("/deletePlaylist", h.DeletePlaylist).Methods("POST", "OPTIONS")
	api.HandleFunc("/createUser", h.CreateUser).Methods("POST", "OPTIONS")
	api.HandleFunc("/deleteUser", h.DeleteUser).Methods("POST", "OPTIONS")
	api.HandleFunc("/uploadFile", h.UploadFile).Methods("POST", "OPTIONS")
	api.HandleFunc("/deleteFile", h.DeleteFile).Methods("POST", "OPTIONS")

	// Album edits.
	album := api.PathPrefix("/album").Subrouter()
	album.HandleFunc("/setTitle", h.AlbumSetTitle).Methods("POST", "OPTIONS")
	album.HandleFunc("/removeTitle", h.AlbumRemoveTitle).Methods("POST", "OPTIONS")
	album.HandleFunc("/setTitleReadChar", h.AlbumSetTitleReadChar).Methods("POST", "OPTIONS")
	album.HandleFunc("/deleteTitleReadChar", h.AlbumDeleteTitleReadChar).Methods("POST", "OPTIONS")
	album.HandleFunc("/addArtist", h.AlbumAddArtist).Methods("POST", "OPTIONS")
	album.HandleFunc("/removeArtist", h.AlbumRemoveArtist).Methods("POST", "OPTIONS")
	album.HandleFunc("/addFeaturingArtist", h.AlbumAddFeaturingArtist).Methods("POST", "OPTIONS")
	album.HandleFunc("/removeFeaturingArtist", h.AlbumRemoveFeaturingArtist).Methods("POST", "OPTIONS")
	album.HandleFunc("/setFeaturingArtist", h.AlbumSetFeaturingArtist).Methods("POST", "OPTIONS")
	album.HandleFunc("/addMusic", h.AlbumAddMusic).Methods("POST", "OPTIONS")
	album.HandleFunc("/removeMusic", h.AlbumRemoveMusic).Methods("POST", "OPTIONS")
	album.HandleFunc("/addArtwork", h.AlbumAddArtwork).Methods("POST", "OPTIONS")
	album.HandleFunc("/removeArtwork", h.AlbumRemoveArtwork).Methods("POST", "OPTIONS")
	album.HandleFunc("/addGenre", h.AlbumAddGenre).Methods("POST", "OPTIONS")
	album.HandleFunc("/removeGenre", h.AlbumRemoveGenre).Methods("POST", "OPTIONS")
	album.HandleFunc("/setGenre", h.AlbumSetGenre).Methods("POST", "OPTIONS")
	album.HandleFunc("/setCreateDate", h.AlbumSetCreateDate).Methods("POST", "OPTIONS")
	album.HandleFunc("/setRemixAlbum", h.AlbumSetRemixAlbum).Methods("POST", "OPTIONS")
	album.HandleFunc("/deleteRemixAlbum", h.AlbumDeleteRemixAlbum).Methods("POST", "OPTIONS")
	album.HandleFunc("/setCoverAlbum", h.AlbumSetCoverAlbum).Methods("POST", "OPTIONS")
	album.HandleFunc("/deleteCoverAlbum", h.AlbumDeleteCoverAlbum).Methods("POST", "OPTIONS")

	// Artist edits.
	artist := api.PathPrefix("/artist").Subrouter()
	artist.HandleFunc("/setName", h.ArtistSetName).Methods("POST", "OPTIONS")
	artist.HandleFunc("/removeName", h.ArtistRemoveName).Methods("POST", "OPTIONS")
	artist.HandleFunc("/setNameReadChar", h.ArtistSetNameReadChar).Methods("POST", "OPTIONS")
	artist.HandleFunc("/deleteNameReadChar", h.ArtistDeleteNameReadChar).Methods("POST", "OPTIONS")
	artist.HandleFunc("/addCharacterVoice", h.ArtistAddCharacterVoice).Methods("POST", "OPTIONS")
	artist.HandleFunc("/removeCharacterVoice", h.ArtistRemoveCharacterVoice).Methods("POST", "OPTIONS")
	artist.HandleFunc("/addArtwork", h.ArtistAddArtwork).Methods("POST", "OPTIONS")
	artist.HandleFunc("/removeArtwork", h.ArtistRemoveArtwork).Methods("POST", "OPTIONS")

	// Music edits.
	music := api.PathPrefix("/music").Subrouter()
	music.HandleFunc("/setTitle", h.MusicSetTitle).Methods("POST", "OPTIONS")
	music.HandleFunc("/removeTitle", h.MusicRemoveTitle).Methods("POST", "OPTIONS")
	music.HandleFunc("/setTitleReadChar", h.MusicSetTitleReadChar).Methods("POST", "OPTIONS")
	music.HandleFunc("/deleteTitleReadChar", h.MusicDeleteTitleReadChar).Methods("POST", "OPTIONS")
	music.HandleFunc("/addArtist", h.MusicAddArtist).Methods("POST", "OPTIONS")
	music.HandleFunc("/removeArtist", h.MusicRemoveArtist).Methods("POST", "OPTIONS")
	music.HandleFunc("/addFeaturingArtist", h.MusicAddFeaturingArtist).Methods("POST", "OPTIONS")
	music.HandleFunc("/removeFeaturingArtist", h.MusicRemoveFeaturingArtist).Methods("POST", "OPTIONS")
	music.HandleFunc("/addGenre", h.MusicAddGenre).Methods("POST", "OPTIONS")
	music.HandleFunc("/removeGenre", h.MusicRemoveGenre).Methods("POST", "OPTIONS")
	music.HandleFunc("/setGenre", h.MusicSetGenre).Methods("POST", "OPTIONS")
	music.HandleFunc("/setLyrics", h.MusicSetLyrics).Methods("POST", "OPTIONS")
	music.HandleFunc("/removeLyrics", h.MusicRemoveLyrics).Methods("POST", "OPTIONS")
	music.HandleFunc("/addMusicStream", h.MusicAddMusicStream).Methods("POST", "OPTIONS")
	music.HandleFunc("/removeMusicStream", h.MusicRemoveMusicStream).Methods("POST", "OPTIONS")
	music.HandleFunc("/addVideoStream", h.MusicAddVideoStream).Methods("POST", "OPTIONS")
	music.HandleFunc("/removeVideoStream", h.MusicRemoveVideoStream).Methods("POST", "OPTIONS")
	music.HandleFunc("/addArtwork", h.MusicAddArtwork).Methods("POST", "OPTIONS")
	music.HandleFunc("/removeArtwork", h.MusicRemoveArtwork).Methods("POST", "OPTIONS")
	music.HandleFunc("/setCreateDate", h.MusicSetCreateDate).Methods("POST", "OPTIONS")
	music.HandleFunc("/setRemixMusic", h.MusicSetRemixMusic).Methods("POST", "OPTIONS")
	music.HandleFunc("/deleteRemixMusic", h.MusicDeleteRemixMusic).Methods("POST", "OPTIONS")
	music.HandleFunc("/setCoverMusic", h.MusicSetCoverMusic).Methods("POST", "OPTIONS")
	music.HandleFunc("/deleteCoverMusic", h.MusicDeleteCoverMusic).Methods("POST", "OPTIONS")

	// Audio stream edits, addressed by music uuid + stream index.
	audio := api.PathPrefix("/musicStream").Subrouter()
	audio.HandleFunc("/changeFile", h.MusicStreamChangeFile).Methods("POST", "OPTIONS")
	audio.HandleFunc("/changeLang", h.MusicStreamChangeLang).Methods("POST", "OPTIONS")
	audio.HandleFunc("/addArtist", h.MusicStreamAddArtist).Methods("POST", "OPTIONS")
	audio.HandleFunc("/removeArtist", h.MusicStreamRemoveArtist).Methods("POST", "OPTIONS")
	audio.HandleFunc("/changeType", h.MusicStreamChangeType).Methods("POST", "OPTIONS")
	audio.HandleFunc("/setMaster", h.MusicStreamSetMaster).Methods("POST", "OPTIONS")
	audio.HandleFunc("/setDelayCorrection", h.MusicStreamSetDelayCorrection).Methods("POST", "OPTIONS")

	video := api.PathPrefix("/videoStream").Subrouter()
	video.HandleFunc("/changeFile", h.VideoStreamChangeFile).Methods("POST", "OPTIONS")
	video.HandleFunc("/changeLang", h.VideoStreamChangeLang).Methods("POST", "OPTIONS")
	video.HandleFunc("/addArtist", h.VideoStreamAddArtist).Methods("POST", "OPTIONS")
	video.HandleFunc("/removeArtist", h.VideoStreamRemoveArtist).Methods("POST", "OPTIONS")
	video.HandleFunc("/changeType", h.VideoStreamChangeType).Methods("POST", "OPTIONS")
	video.HandleFunc("/setMaster", h.VideoStreamSetMaster).Methods("POST", "OPTIONS")
	video.HandleFunc("/setDelayCorrection", h.VideoStreamSetDelayCorrection).Methods("POST", "OPTIONS")

	// Playlist edits.
	playlist := api.PathPrefix("/playlist").Subrouter()
	playlist.HandleFunc("/setName", h.PlaylistSetName).Methods("POST", "OPTIONS")
	playlist.HandleFunc("/setDescription", h.PlaylistSetDescription).Methods("POST", "OPTIONS")
	playlist.HandleFunc("/addMusic", h.PlaylistAddMusic).Methods("POST", "OPTIONS")
	playlist.HandleFunc("/removeMusic", h.PlaylistRemoveMusic).Methods("POST", "OPTIONS")

	// File edits.
	file := api.PathPrefix("/file").Subrouter()
	file.HandleFunc("/setImportSource", h.FileSetImportSource).Methods("POST", "OPTIONS")
	file.HandleFunc("/setDescription", h.FileSetDescription).Methods("POST", "OPTIONS")
	file.HandleFunc("/deleteDescription", h.FileDeleteDescription).Methods("POST", "OPTIONS")
	file.HandleFunc("/setVideoId", h.FileSetVideoID).Methods("POST", "OPTIONS")
	file.HandleFunc("/removeVideoId", h.FileRemoveVideoID).Methods("POST", "OPTIONS")
	file.HandleFunc("/setOriginalURL", h.FileSetOriginalURL).Methods("POST", "OPTIONS")
	file.HandleFunc("/removeOriginalURL", h.FileRemoveOriginalURL).Methods("POST", "OPTIONS")
	file.HandleFunc("/setVolumeCorrection", h.FileSetVolumeCorrection).Methods("POST", "OPTIONS")

	// Reads.
	api.HandleFunc("/albumList", h.AlbumList).Methods("GET", "OPTIONS")
	api.HandleFunc("/albumInfo", h.AlbumInfo).Methods("POST", "OPTIONS")
	api.HandleFunc("/artistList", h.ArtistList).Methods("GET", "OPTIONS")
	api.HandleFunc("/artistInfo", h.ArtistInfo).Methods("POST", "OPTIONS")
	api.HandleFunc("/musicList", h.MusicList).Methods("GET", "OPTIONS")
	api.HandleFunc("/musicInfo", h.MusicInfo).Methods("POST", "OPTIONS")
	api.HandleFunc("/playlistList", h.PlaylistList).Methods("GET", "OPTIONS")
	api.HandleFunc("/playlistInfo", h.PlaylistInfo).Methods("POST", "OPTIONS")
	api.HandleFunc("/fileList", h.FileList).Methods("GET", "OPTIONS")
	api.HandleFunc("/fileInfo", h.FileInfo).Methods("POST", "OPTIONS")
	api.HandleFunc("/userList", h.UserList).Methods("GET", "OPTIONS")

	// Persistence and sessions.
	api.HandleFunc("/saveLibrary", h.SaveLibrary).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessionPing", h.SessionPing).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessionInfo", h.SessionInfo).Methods("POST", "OPTIONS")
	api.HandleFunc("/playHistory", h.RecordPlay).Methods("POST", "OPTIONS")
	api.HandleFunc("/playHistory", h.PlayHistory).Methods("GET")

	return r
}

// lockMiddleware serializes document access. Every mutation arrives as a
// POST, so POSTs take the write lock and everything else the read lock.
func (h *APIHandler) lockMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.mu.Lock()
			defer h.mu.Unlock()
		} else {
			h.mu.RLock()
			defer h.mu.RUnlock()
		}
		next.ServeHTTP(w, r)
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
