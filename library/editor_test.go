package library

import (
	"testing"

	"notevault/model"
)

func TestArtistNameEdits(t *testing.T) {
	m := newTestManager()
	id := m.CreateArtist(testUser, "ja", "歌手")
	ed := m.EditArtist(testUser, id)

	ed.SetName("Singer", "en")
	ed.SetNameReadChar("ja", "かしゅ", "hiragana")

	artist := m.Library().Artist(id)
	if len(artist.Name) != 2 {
		t.Fatalf("name count = %d, want 2", len(artist.Name))
	}
	if len(artist.Name[0].ReadChars) != 1 {
		t.Errorf("ja readChars = %+v, want 1 entry", artist.Name[0].ReadChars)
	}

	ed.RemoveName("en")
	if len(artist.Name) != 1 {
		t.Errorf("name count after remove = %d, want 1", len(artist.Name))
	}
}

func TestArtistCharacterVoice(t *testing.T) {
	m := newTestManager()
	id := m.CreateArtist(testUser, "en", "Character")
	voice := m.CreateArtist(testUser, "en", "Voice Actor")
	ed := m.EditArtist(testUser, id)

	if !ed.AddCharacterVoice(voice) {
		t.Fatal("AddCharacterVoice reported false")
	}
	artist := m.Library().Artist(id)
	if len(artist.CharacterVoice) != 1 || artist.CharacterVoice[0] != voice {
		t.Errorf("CharacterVoice = %v", artist.CharacterVoice)
	}
	ed.RemoveCharacterVoice(voice)
	if len(artist.CharacterVoice) != 0 {
		t.Error("voice still linked after removal")
	}
}

func TestPlaylistEdits(t *testing.T) {
	m := newTestManager()
	id := m.CreatePlaylist(testUser, "")
	ed := m.EditPlaylist(testUser, id)

	ed.SetName("Morning")
	ed.SetDescription("before work")

	playlist := m.Library().Playlist(id)
	if playlist.Name == nil || *playlist.Name != "Morning" {
		t.Errorf("Name = %v", playlist.Name)
	}
	if playlist.Description == nil || *playlist.Description != "before work" {
		t.Errorf("Description = %v", playlist.Description)
	}

	ed.AddMusic("music-1", 0, model.PlaylistEntryMusic)
	ed.AddMusic("music-2", 1, model.PlaylistEntryVideo)
	// The same music may appear twice.
	ed.AddMusic("music-1", 0, model.PlaylistEntryMusic)
	if len(playlist.Musics) != 3 {
		t.Fatalf("entry count = %d, want 3", len(playlist.Musics))
	}

	if !ed.RemoveMusic(1) {
		t.Fatal("RemoveMusic reported false")
	}
	if len(playlist.Musics) != 2 || playlist.Musics[1].UUID != "music-1" {
		t.Errorf("entries = %+v", playlist.Musics)
	}

	// Out-of-range index is a failed edit, not a no-op.
	if ed.RemoveMusic(5) {
		t.Error("RemoveMusic with out-of-range index reported true")
	}
	if ed.RemoveMusic(-1) {
		t.Error("RemoveMusic with negative index reported true")
	}
}

func TestFileEditorOptionals(t *testing.T) {
	m := newTestManager()
	name, _ := m.AddFile(testUser, "clip.mp4", model.ImportOnlineVideoService, model.OriginalURL{})
	ed := m.EditFile(testUser, name)

	ed.SetDescription("fan upload")
	ed.SetVideoID("dQw4w9WgXcQ")
	ed.SetVolumeCorrection(-1.5)

	file := m.Library().File(name)
	if file.Description == nil || *file.Description != "fan upload" {
		t.Errorf("Description = %v", file.Description)
	}
	if file.OriginalURL.VideoID == nil || *file.OriginalURL.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("VideoID = %v", file.OriginalURL.VideoID)
	}
	if file.VolumeCorrection == nil || *file.VolumeCorrection != -1.5 {
		t.Errorf("VolumeCorrection = %v", file.VolumeCorrection)
	}

	ed.DeleteDescription()
	ed.RemoveVideoID()
	if file.Description != nil || file.OriginalURL.VideoID != nil {
		t.Error("cleared optionals still present")
	}

	ed.SetOriginalURL("https://example.com/raw")
	if file.OriginalURL.DownloadURL == nil || *file.OriginalURL.DownloadURL != "https://example.com/raw" {
		t.Errorf("DownloadURL = %v", file.OriginalURL.DownloadURL)
	}
	ed.RemoveOriginalURL()
	if file.OriginalURL.DownloadURL != nil {
		t.Error("DownloadURL still present after removal")
	}

	ed.SetImportSource(model.ImportOriginal)
	if file.ImportSource != model.ImportOriginal {
		t.Errorf("ImportSource = %q", file.ImportSource)
	}
}

func TestFileEditorMissingTarget(t *testing.T) {
	m := newTestManager()
	ed := m.EditFile(testUser, "ghost.flac")
	if ed.SetDescription("x") || ed.SetVolumeCorrection(1) || ed.RemoveVideoID() {
		t.Error("editor for missing file reported success")
	}
}
