package library

import (
	"encoding/json"
	"testing"

	"notevault/model"
)

func newAlbumFixture(t *testing.T) (*Manager, model.AlbumID) {
	t.Helper()
	m := newTestManager()
	return m, m.CreateAlbum(testUser, "ja", "初期タイトル")
}

func TestAlbumSetTitleOverwritesPerLang(t *testing.T) {
	m, id := newAlbumFixture(t)
	ed := m.EditAlbum(testUser, id)

	if !ed.SetTitle("New Title", "ja") {
		t.Fatal("SetTitle reported false")
	}
	if !ed.SetTitle("English Title", "en") {
		t.Fatal("SetTitle for new lang reported false")
	}

	album := m.Library().Album(id)
	if len(album.Title) != 2 {
		t.Fatalf("title count = %d, want 2", len(album.Title))
	}
	if album.Title[0].Lang != "ja" || album.Title[0].Name != "New Title" {
		t.Errorf("ja title = %+v, want overwritten in place", album.Title[0])
	}
}

func TestAlbumReadCharStacksDuplicates(t *testing.T) {
	m, id := newAlbumFixture(t)
	ed := m.EditAlbum(testUser, id)

	ed.SetTitleReadChar("ja", "しょき", "hiragana")
	ed.SetTitleReadChar("ja", "シヨキ", "hiragana")

	album := m.Library().Album(id)
	if got := len(album.Title[0].ReadChars); got != 2 {
		t.Errorf("readChar count = %d, want 2 (no dedup)", got)
	}
}

func TestAlbumReadCharBeforeTitle(t *testing.T) {
	m := newTestManager()
	id := m.CreateAlbum(testUser, "", "")
	ed := m.EditAlbum(testUser, id)

	if !ed.SetTitleReadChar("en", "reading", "latin") {
		t.Fatal("SetTitleReadChar reported false")
	}

	album := m.Library().Album(id)
	if len(album.Title) != 1 {
		t.Fatalf("title count = %d, want 1", len(album.Title))
	}
	if album.Title[0].Name != "" {
		t.Errorf("title name = %q, want empty placeholder", album.Title[0].Name)
	}
	if len(album.Title[0].ReadChars) != 1 {
		t.Errorf("readChar count = %d, want 1", len(album.Title[0].ReadChars))
	}
}

func TestAlbumDeleteReadCharMissingLang(t *testing.T) {
	m, id := newAlbumFixture(t)
	ed := m.EditAlbum(testUser, id)

	if ed.DeleteTitleReadChar("fr", "latin") {
		t.Error("delete for missing lang record reported true")
	}
	// Existing lang but missing reading is not an error.
	if !ed.DeleteTitleReadChar("ja", "latin") {
		t.Error("delete of missing reading in existing record reported false")
	}
}

func TestAlbumArtworkRemovedByFileOnly(t *testing.T) {
	m, id := newAlbumFixture(t)
	ed := m.EditAlbum(testUser, id)

	ed.AddArtwork(model.Artwork{Lang: "ja", File: "cover.png", Main: true})
	ed.AddArtwork(model.Artwork{Lang: "en", File: "alt.png"})

	// Language on the removal request is ignored; the file name is the key.
	if !ed.RemoveArtwork(model.Artwork{Lang: "zz", File: "cover.png"}) {
		t.Fatal("RemoveArtwork reported false")
	}
	album := m.Library().Album(id)
	if len(album.Artwork) != 1 || album.Artwork[0].File != "alt.png" {
		t.Errorf("artwork = %+v, want only alt.png", album.Artwork)
	}
}

func TestAlbumSetCreateDateSkipsZeroFields(t *testing.T) {
	m, id := newAlbumFixture(t)
	ed := m.EditAlbum(testUser, id)

	ed.SetCreateDate(model.CreateDate{Year: 2001, Month: 4, Day: 15})
	ed.SetCreateDate(model.CreateDate{Month: 9})

	album := m.Library().Album(id)
	want := model.CreateDate{Year: 2001, Month: 9, Day: 15}
	if album.CreateDate != want {
		t.Errorf("CreateDate = %+v, want %+v", album.CreateDate, want)
	}

	// A zero month cannot clear the field.
	ed.SetCreateDate(model.CreateDate{Year: 2002})
	if album.CreateDate.Month != 9 {
		t.Errorf("Month = %d, want 9 after zero merge", album.CreateDate.Month)
	}
}

func TestAlbumArtistListEdits(t *testing.T) {
	m, id := newAlbumFixture(t)
	ed := m.EditAlbum(testUser, id)

	ed.AddArtist("artist-a")
	ed.AddArtist("artist-b")
	ed.RemoveArtist("artist-a")

	album := m.Library().Album(id)
	if len(album.Artist) != 1 || album.Artist[0] != "artist-b" {
		t.Errorf("artists = %v, want [artist-b]", album.Artist)
	}

	ed.SetFeaturingArtist([]model.ArtistID{"x", "y"})
	if len(album.FeaturingArtist) != 2 {
		t.Errorf("featuring = %v, want [x y]", album.FeaturingArtist)
	}
}

func TestAlbumGenreEdits(t *testing.T) {
	m, id := newAlbumFixture(t)
	ed := m.EditAlbum(testUser, id)

	ed.AddGenre("rock")
	ed.AddGenre("pop")
	ed.RemoveGenre("rock")
	album := m.Library().Album(id)
	if len(album.Genre) != 1 || album.Genre[0] != "pop" {
		t.Errorf("genre = %v, want [pop]", album.Genre)
	}

	ed.SetGenre([]string{"jazz"})
	if len(album.Genre) != 1 || album.Genre[0] != "jazz" {
		t.Errorf("genre = %v, want [jazz]", album.Genre)
	}
}

func TestAlbumRemixAndCoverLinks(t *testing.T) {
	m, id := newAlbumFixture(t)
	ed := m.EditAlbum(testUser, id)

	ed.SetRemixAlbum("original-1")
	album := m.Library().Album(id)
	if album.RemixAlbum == nil || *album.RemixAlbum != "original-1" {
		t.Errorf("RemixAlbum = %v, want original-1", album.RemixAlbum)
	}
	ed.DeleteRemixAlbum()
	if album.RemixAlbum != nil {
		t.Error("RemixAlbum still set after delete")
	}

	ed.SetCoverAlbum("original-2")
	if album.CoverAlbum == nil || *album.CoverAlbum != "original-2" {
		t.Errorf("CoverAlbum = %v, want original-2", album.CoverAlbum)
	}
	ed.DeleteCoverAlbum()
	if album.CoverAlbum != nil {
		t.Error("CoverAlbum still set after delete")
	}
}

func TestAlbumEditorMissingTarget(t *testing.T) {
	m := newTestManager()
	m.CreateAlbum(testUser, "en", "Untouched")
	before, err := json.Marshal(m.Library())
	if err != nil {
		t.Fatal(err)
	}

	ed := m.EditAlbum(testUser, "no-such-album")
	if ed.SetTitle("x", "en") || ed.AddArtist("a") || ed.AddGenre("g") ||
		ed.SetCreateDate(model.CreateDate{Year: 2000}) || ed.DeleteRemixAlbum() {
		t.Error("editor for missing album reported success")
	}

	after, err := json.Marshal(m.Library())
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("document changed by edits against a missing album")
	}
}
