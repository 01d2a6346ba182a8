package server

import (
	"encoding/json"
	"net/http"

	"notevault/library"
	"notevault/logger"
	"notevault/model"
)

// uploadMeta is the "json" part of the multipart upload form.
type uploadMeta struct {
	UserUUID     string  `json:"userUUID"`
	Name         string  `json:"name"`
	ImportSource string  `json:"importSource"`
	VideoID      *string `json:"videoId"`
	DownloadURL  *string `json:"downloadURL"`
}

// UploadFile handles multipart POST /api/uploadFile. The form carries two
// parts: "json" with the file metadata and "file" with the body. The body
// is drained into object storage before the entity row is inserted, so a
// failed upload never leaves a dangling file record.
func (h *APIHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	var meta uploadMeta
	if err := json.Unmarshal([]byte(r.FormValue("json")), &meta); err != nil {
		http.Error(w, "invalid json part", http.StatusBadRequest)
		return
	}
	if !require(w, meta.UserUUID, meta.Name, meta.ImportSource) {
		return
	}
	body, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file part", http.StatusBadRequest)
		return
	}
	defer body.Close()

	name, ok, err := h.files.Add(r.Context(), library.AddFileRequest{
		User:         model.UserID(meta.UserUUID),
		Name:         meta.Name,
		ImportSource: model.ImportSource(meta.ImportSource),
		OriginalURL:  model.OriginalURL{VideoID: meta.VideoID, DownloadURL: meta.DownloadURL},
		Body:         body,
	})
	if err != nil {
		logger.Error("store upload", logger.String("name", meta.Name), logger.ErrorField(err))
		http.Error(w, "storage failure", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "file name already in use", http.StatusInternalServerError)
		return
	}
	writeText(w, string(name))
}

// DeleteFile handles POST /api/deleteFile.
func (h *APIHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID string `json:"userUUID"`
		Name     string `json:"name"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.Name) {
		return
	}
	writeBool(w, h.files.Delete(userID(req.UserUUID), model.FileName(req.Name)))
}

func (h *APIHandler) fileEditor(user, name string) library.FileEditor {
	return h.files.Edit(userID(user), model.FileName(name))
}

func (h *APIHandler) FileSetImportSource(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID     string `json:"userUUID"`
		Name         string `json:"name"`
		ImportSource string `json:"importSource"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.Name, req.ImportSource) {
		return
	}
	writeBool(w, h.fileEditor(req.UserUUID, req.Name).SetImportSource(model.ImportSource(req.ImportSource)))
}

func (h *APIHandler) FileSetDescription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID    string `json:"userUUID"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.Name) {
		return
	}
	writeBool(w, h.fileEditor(req.UserUUID, req.Name).SetDescription(req.Description))
}

func (h *APIHandler) FileDeleteDescription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID string `json:"userUUID"`
		Name     string `json:"name"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.Name) {
		return
	}
	writeBool(w, h.fileEditor(req.UserUUID, req.Name).DeleteDescription())
}

func (h *APIHandler) FileSetVideoID(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID string `json:"userUUID"`
		Name     string `json:"name"`
		VideoID  string `json:"videoId"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.Name, req.VideoID) {
		return
	}
	writeBool(w, h.fileEditor(req.UserUUID, req.Name).SetVideoID(req.VideoID))
}

func (h *APIHandler) FileRemoveVideoID(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID string `json:"userUUID"`
		Name     string `json:"name"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.Name) {
		return
	}
	writeBool(w, h.fileEditor(req.UserUUID, req.Name).RemoveVideoID())
}

func (h *APIHandler) FileSetOriginalURL(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID string `json:"userUUID"`
		Name     string `json:"name"`
		URL      string `json:"url"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.Name, req.URL) {
		return
	}
	writeBool(w, h.fileEditor(req.UserUUID, req.Name).SetOriginalURL(req.URL))
}

func (h *APIHandler) FileRemoveOriginalURL(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID string `json:"userUUID"`
		Name     string `json:"name"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.Name) {
		return
	}
	writeBool(w, h.fileEditor(req.UserUUID, req.Name).RemoveOriginalURL())
}

func (h *APIHandler) FileSetVolumeCorrection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID   string  `json:"userUUID"`
		Name       string  `json:"name"`
		Correction float64 `json:"correction"`
	}
	if !decodeJSON(w, r, &req) || !require(w, req.UserUUID, req.Name) {
		return
	}
	writeBool(w, h.fileEditor(req.UserUUID, req.Name).SetVolumeCorrection(req.Correction))
}
