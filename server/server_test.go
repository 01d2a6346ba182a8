package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"notevault/cache"
	"notevault/library"
	"notevault/model"
	"notevault/storage"
	"notevault/store"
)

func newTestServer(t *testing.T) (*httptest.Server, *library.Manager) {
	t.Helper()
	objects, err := storage.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	st := store.New(filepath.Join(t.TempDir(), "library.json"))
	lib, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}

	mgr := library.NewManager(lib)
	handler := NewAPIHandler(mgr, library.NewMusicManager(mgr), library.NewFileManager(mgr, objects), st, cache.NewSessionCache(nil))
	ts := httptest.NewServer(NewRouter(handler))
	t.Cleanup(ts.Close)
	return ts, mgr
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestCreateAlbumEndpoint(t *testing.T) {
	ts, mgr := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/createAlbum", map[string]any{
		"userUUID": "user-1",
		"lang":     "en",
		"title":    "Debut",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	id := readBody(t, resp)
	if id == "" {
		t.Fatal("empty uuid in response")
	}

	album := mgr.Library().Album(model.AlbumID(id))
	if album == nil {
		t.Fatalf("album %s not in library", id)
	}
	if len(album.Title) != 1 || album.Title[0].Name != "Debut" {
		t.Errorf("album title = %+v", album.Title)
	}
}

func TestEditMissingTargetAnswers500(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/album/setTitle", map[string]any{
		"userUUID":  "user-1",
		"albumUUID": "no-such-album",
		"title":     "x",
		"lang":      "en",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}

func TestMissingRequiredFieldAnswers400(t *testing.T) {
	ts, _ := newTestServer(t)

	cases := []struct {
		name string
		path string
		body map[string]any
	}{
		{"no userUUID", "/api/createAlbum", map[string]any{"lang": "en"}},
		{"no albumUUID", "/api/album/setTitle", map[string]any{"userUUID": "u", "title": "x", "lang": "en"}},
		{"no lang", "/api/album/setTitle", map[string]any{"userUUID": "u", "albumUUID": "a", "title": "x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+tc.path, tc.body)
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestInvalidJSONAnswers400(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/createAlbum", "application/json", strings.NewReader("{broken"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUploadFileEndpoint(t *testing.T) {
	ts, mgr := newTestServer(t)

	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	meta, _ := json.Marshal(map[string]any{
		"userUUID":     "user-1",
		"name":         "upload.flac",
		"importSource": "CD",
	})
	if err := mw.WriteField("json", string(meta)); err != nil {
		t.Fatal(err)
	}
	part, err := mw.CreateFormFile("file", "upload.flac")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("flac bytes")); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	resp, err := http.Post(ts.URL+"/api/uploadFile", mw.FormDataContentType(), &form)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if name := readBody(t, resp); name != "upload.flac" {
		t.Errorf("response = %q, want upload.flac", name)
	}

	file := mgr.Library().File("upload.flac")
	if file == nil {
		t.Fatal("file row not registered")
	}
	if file.ImportSource != model.ImportCD {
		t.Errorf("ImportSource = %q, want CD", file.ImportSource)
	}
}

func TestUploadFileDuplicateAnswers500(t *testing.T) {
	ts, mgr := newTestServer(t)
	mgr.AddFile("user-1", "taken.flac", model.ImportOther, model.OriginalURL{})

	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	meta, _ := json.Marshal(map[string]any{"userUUID": "user-1", "name": "taken.flac", "importSource": "CD"})
	mw.WriteField("json", string(meta))
	part, _ := mw.CreateFormFile("file", "taken.flac")
	part.Write([]byte("x"))
	mw.Close()

	resp, err := http.Post(ts.URL+"/api/uploadFile", mw.FormDataContentType(), &form)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}

func TestReadEndpoints(t *testing.T) {
	ts, mgr := newTestServer(t)
	id := mgr.CreateAlbum("user-1", "en", "Listed")

	resp, err := http.Get(ts.URL + "/api/albumList")
	if err != nil {
		t.Fatal(err)
	}
	var albums []model.Album
	if err := json.NewDecoder(resp.Body).Decode(&albums); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if len(albums) != 1 || albums[0].UUID != id {
		t.Errorf("albumList = %+v", albums)
	}

	resp = postJSON(t, ts.URL+"/api/albumInfo", map[string]any{"albumUUID": string(id)})
	var album model.Album
	if err := json.NewDecoder(resp.Body).Decode(&album); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if album.UUID != id {
		t.Errorf("albumInfo uuid = %s, want %s", album.UUID, id)
	}

	resp = postJSON(t, ts.URL+"/api/albumInfo", map[string]any{"albumUUID": "missing"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("albumInfo for missing album = %d, want 404", resp.StatusCode)
	}
}

func TestSaveLibraryEndpoint(t *testing.T) {
	objects, err := storage.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "library.json")
	st := store.New(path)
	lib, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	mgr := library.NewManager(lib)
	handler := NewAPIHandler(mgr, library.NewMusicManager(mgr), library.NewFileManager(mgr, objects), st, cache.NewSessionCache(nil))
	ts := httptest.NewServer(NewRouter(handler))
	defer ts.Close()

	id := mgr.CreateAlbum("user-1", "en", "Persisted")
	resp := postJSON(t, ts.URL+"/api/saveLibrary", map[string]any{})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	reloaded, err := store.New(path).Load()
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Album(model.AlbumID(id)) == nil {
		t.Error("saved document missing the album")
	}
}

func TestSessionEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/sessionPing", map[string]any{
		"sessionid": "sess-1",
		"musicuuid": "music-1",
		"playtime":  42.5,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("sessionPing status = %d, want 200", resp.StatusCode)
	}

	resp = postJSON(t, ts.URL+"/api/sessionInfo", map[string]any{"sessionid": "sess-1"})
	var session cache.Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if session.MusicUUID != "music-1" || session.PlayTime != 42.5 {
		t.Errorf("session = %+v", session)
	}
	if session.LastConnectTime == 0 {
		t.Error("LastConnectTime not stamped")
	}

	resp = postJSON(t, ts.URL+"/api/sessionInfo", map[string]any{"sessionid": "never-pinged"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown session status = %d, want 404", resp.StatusCode)
	}

	resp = postJSON(t, ts.URL+"/api/playHistory", map[string]any{"musicuuid": "music-1", "playlength": 120.0})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("record play status = %d, want 200", resp.StatusCode)
	}

	getResp, err := http.Get(ts.URL + "/api/playHistory?limit=10")
	if err != nil {
		t.Fatal(err)
	}
	var history []cache.PlayHistory
	if err := json.NewDecoder(getResp.Body).Decode(&history); err != nil {
		t.Fatal(err)
	}
	getResp.Body.Close()
	if len(history) != 1 || history[0].MusicUUID != "music-1" {
		t.Errorf("history = %+v", history)
	}
}

func TestCORSPreflight(t *testing.T) {
	ts, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/createAlbum", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("preflight status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
}
