package library

import (
	"time"

	"github.com/google/uuid"

	"notevault/model"
)

// Manager owns the library document and hands out entity-scoped editors.
// Construct it with the document handle; there is no package-level state.
// All mutation is in memory only; the caller persists the document through
// the store when it wants the changes on disk.
type Manager struct {
	lib *model.Library
}

// NewManager wraps an existing document.
func NewManager(lib *model.Library) *Manager {
	return &Manager{lib: lib}
}

// Library exposes the backing document for persistence and read paths.
func (m *Manager) Library() *model.Library {
	return m.lib
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// CreateAlbum adds an empty album owned by user. A non-empty title seeds one
// localized title entry for lang. Returns the new album's identity.
func (m *Manager) CreateAlbum(user model.UserID, lang, title string) model.AlbumID {
	id := model.AlbumID(uuid.NewString())
	album := model.Album{
		UUID:            id,
		InfoAuthor:      user,
		Musics:          []model.MusicID{},
		Artist:          []model.ArtistID{},
		FeaturingArtist: []model.ArtistID{},
		AddedDate:       nowMillis(),
		Artwork:         []model.Artwork{},
		Title:           []model.LocalizedText{},
		Genre:           []string{},
	}
	if title != "" {
		album.Title = append(album.Title, model.LocalizedText{Lang: lang, Name: title, ReadChars: []model.ReadChar{}})
	}
	m.lib.Albums = append(m.lib.Albums, album)
	return id
}

// CreateArtist adds an empty artist. A non-empty name seeds one localized
// name entry for lang.
func (m *Manager) CreateArtist(user model.UserID, lang, name string) model.ArtistID {
	id := model.ArtistID(uuid.NewString())
	artist := model.Artist{
		UUID:           id,
		InfoAuthor:     user,
		AddedDate:      nowMillis(),
		Albums:         []model.AlbumID{},
		CharacterVoice: []model.ArtistID{},
		Artwork:        []model.Artwork{},
		Name:           []model.LocalizedText{},
	}
	if name != "" {
		artist.Name = append(artist.Name, model.LocalizedText{Lang: lang, Name: name, ReadChars: []model.ReadChar{}})
	}
	m.lib.Artists = append(m.lib.Artists, artist)
	return id
}

// CreateMusic adds an empty music. A non-empty title seeds one localized
// title entry for lang.
func (m *Manager) CreateMusic(user model.UserID, lang, title string) model.MusicID {
	id := model.MusicID(uuid.NewString())
	music := model.Music{
		UUID:            id,
		InfoAuthor:      user,
		Artist:          []model.ArtistID{},
		FeaturingArtist: []model.ArtistID{},
		AddedDate:       nowMillis(),
		Artwork:         []model.Artwork{},
		Title:           []model.LocalizedText{},
		Genre:           []string{},
		Lyrics:          []model.Lyrics{},
		Music:           []model.AudioStream{},
		Video:           []model.VideoStream{},
	}
	if title != "" {
		music.Title = append(music.Title, model.LocalizedText{Lang: lang, Name: title, ReadChars: []model.ReadChar{}})
	}
	m.lib.Musics = append(m.lib.Musics, music)
	return id
}

// CreatePlaylist adds an empty playlist. The description starts out present
// but empty; the name is recorded only when supplied.
func (m *Manager) CreatePlaylist(user model.UserID, name string) model.PlaylistID {
	id := model.PlaylistID(uuid.NewString())
	empty := ""
	playlist := model.Playlist{
		UUID:        id,
		InfoAuthor:  user,
		AddedDate:   nowMillis(),
		Description: &empty,
		Musics:      []model.PlaylistEntry{},
	}
	if name != "" {
		playlist.Name = &name
	}
	m.lib.Playlists = append(m.lib.Playlists, playlist)
	return id
}

// CreateUser adds a user with empty capability lists.
func (m *Manager) CreateUser(name string) model.UserID {
	id := model.UserID(uuid.NewString())
	m.lib.Users = append(m.lib.Users, model.User{
		UUID:          id,
		Name:          name,
		ViewAlbums:    []model.AlbumID{},
		ViewArtists:   []model.ArtistID{},
		ViewMusics:    []model.MusicID{},
		ViewPlaylists: []model.PlaylistID{},
		ViewFiles:     []model.FileName{},
	})
	return id
}

// AddFile registers a file row without touching any file body. It reports
// false when the name is already taken; file names are the file table's
// primary key.
func (m *Manager) AddFile(user model.UserID, name string, source model.ImportSource, origin model.OriginalURL) (model.FileName, bool) {
	if m.lib.File(model.FileName(name)) != nil {
		return "", false
	}
	m.lib.Files = append(m.lib.Files, model.File{
		Name:         model.FileName(name),
		InfoAuthor:   user,
		AddedDate:    nowMillis(),
		FFmpegInfo:   map[string]any{},
		ImportSource: source,
		OriginalURL:  origin,
	})
	return model.FileName(name), true
}

// DeleteAlbum removes the album if present. It returns true either way:
// the caller cannot tell a deletion from a no-op. Deletion does not cascade;
// references from artists, musics or playlists are left dangling.
func (m *Manager) DeleteAlbum(user model.UserID, id model.AlbumID) bool {
	for i := range m.lib.Albums {
		if m.lib.Albums[i].UUID == id {
			m.lib.Albums = append(m.lib.Albums[:i], m.lib.Albums[i+1:]...)
			break
		}
	}
	return true
}

// DeleteArtist removes the artist if present. Always returns true.
func (m *Manager) DeleteArtist(user model.UserID, id model.ArtistID) bool {
	for i := range m.lib.Artists {
		if m.lib.Artists[i].UUID == id {
			m.lib.Artists = append(m.lib.Artists[:i], m.lib.Artists[i+1:]...)
			break
		}
	}
	return true
}

// DeleteMusic removes the music if present. Always returns true.
func (m *Manager) DeleteMusic(user model.UserID, id model.MusicID) bool {
	for i := range m.lib.Musics {
		if m.lib.Musics[i].UUID == id {
			m.lib.Musics = append(m.lib.Musics[:i], m.lib.Musics[i+1:]...)
			break
		}
	}
	return true
}

// DeletePlaylist removes the playlist if present. Always returns true.
func (m *Manager) DeletePlaylist(user model.UserID, id model.PlaylistID) bool {
	for i := range m.lib.Playlists {
		if m.lib.Playlists[i].UUID == id {
			m.lib.Playlists = append(m.lib.Playlists[:i], m.lib.Playlists[i+1:]...)
			break
		}
	}
	return true
}

// DeleteFile removes the file row if present. Always returns true. The
// stored file body, if any, is not touched.
func (m *Manager) DeleteFile(user model.UserID, name model.FileName) bool {
	for i := range m.lib.Files {
		if m.lib.Files[i].Name == name {
			m.lib.Files = append(m.lib.Files[:i], m.lib.Files[i+1:]...)
			break
		}
	}
	return true
}

// DeleteUser removes the user if present. Always returns true.
func (m *Manager) DeleteUser(id model.UserID) bool {
	for i := range m.lib.Users {
		if m.lib.Users[i].UUID == id {
			m.lib.Users = append(m.lib.Users[:i], m.lib.Users[i+1:]...)
			break
		}
	}
	return true
}

// EditAlbum returns a mutation handle bound to one album. The handle is
// cheap and safe to discard after a call; it holds no entity data.
func (m *Manager) EditAlbum(user model.UserID, id model.AlbumID) AlbumEditor {
	return AlbumEditor{lib: m.lib, user: user, id: id}
}

// EditArtist returns a mutation handle bound to one artist.
func (m *Manager) EditArtist(user model.UserID, id model.ArtistID) ArtistEditor {
	return ArtistEditor{lib: m.lib, user: user, id: id}
}

// EditMusic returns a mutation handle bound to one music.
func (m *Manager) EditMusic(user model.UserID, id model.MusicID) MusicEditor {
	return MusicEditor{lib: m.lib, user: user, id: id}
}

// EditPlaylist returns a mutation handle bound to one playlist.
func (m *Manager) EditPlaylist(user model.UserID, id model.PlaylistID) PlaylistEditor {
	return PlaylistEditor{lib: m.lib, user: user, id: id}
}

// EditFile returns a mutation handle bound to one file row.
func (m *Manager) EditFile(user model.UserID, name model.FileName) FileEditor {
	return FileEditor{lib: m.lib, user: user, name: name}
}
