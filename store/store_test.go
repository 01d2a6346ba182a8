package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"notevault/model"
)

func TestLoadMissingFileYieldsEmptyLibrary(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "library.json"))

	lib, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lib == nil {
		t.Fatal("Load returned nil library")
	}
	if len(lib.Albums)+len(lib.Artists)+len(lib.Musics)+len(lib.Playlists)+len(lib.Files)+len(lib.Users) != 0 {
		t.Error("fresh library is not empty")
	}
	if lib.Albums == nil {
		t.Error("entity tables not initialized")
	}
}

func TestLoadRejectsMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(path).Load(); err == nil {
		t.Error("malformed document loaded without error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	s := New(path)

	url := "https://example.com/dl"
	volume := -3.5
	lib := model.NewLibrary()
	lib.Albums = append(lib.Albums, model.Album{
		UUID:      "album-1",
		AddedDate: 1700000000000,
		Title: []model.LocalizedText{
			{Lang: "ja", Name: "タイトル", ReadChars: []model.ReadChar{{Lang: "hiragana", Char: "たいとる"}}},
		},
		Musics:          []model.MusicID{"music-1"},
		Artist:          []model.ArtistID{},
		FeaturingArtist: []model.ArtistID{},
		Artwork:         []model.Artwork{{Lang: "ja", File: "cover.png", Main: true}},
		Genre:           []string{"rock"},
		CreateDate:      model.CreateDate{Year: 1998, Month: 7},
	})
	lib.Files = append(lib.Files, model.File{
		Name:             "track.flac",
		AddedDate:        1700000000001,
		FFmpegInfo:       map[string]any{},
		ImportSource:     model.ImportDownloadFile,
		OriginalURL:      model.OriginalURL{DownloadURL: &url},
		VolumeCorrection: &volume,
	})

	if err := s.Save(lib); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(lib, loaded) {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", lib, loaded)
	}
}

func TestSaveOmitsAbsentOptionals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	s := New(path)

	lib := model.NewLibrary()
	lib.Albums = append(lib.Albums, model.Album{UUID: "album-1"})
	if err := s.Save(lib); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	album := doc["albums"].([]any)[0].(map[string]any)
	for _, key := range []string{"remixAlbum", "coverAlbum"} {
		if _, present := album[key]; present {
			t.Errorf("absent optional %q serialized", key)
		}
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "library.json"))
	if err := s.Save(model.NewLibrary()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "library.json" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("directory contents = %v, want only library.json", names)
	}
}
