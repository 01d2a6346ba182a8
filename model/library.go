package model

// Library is the whole backing document: five ordered entity tables plus
// the user list. One instance exists per process and every manager and
// editor mutates it through a shared handle; nothing is copied out.
type Library struct {
	Albums    []Album    `json:"albums"`
	Artists   []Artist   `json:"artists"`
	Musics    []Music    `json:"musics"`
	Playlists []Playlist `json:"playlists"`
	Files     []File     `json:"files"`
	Users     []User     `json:"users"`
}

// NewLibrary returns an empty document with every table allocated, so the
// tables serialize as [] rather than null.
func NewLibrary() *Library {
	return &Library{
		Albums:    []Album{},
		Artists:   []Artist{},
		Musics:    []Music{},
		Playlists: []Playlist{},
		Files:     []File{},
		Users:     []User{},
	}
}

// Album returns the album with the given uuid, or nil.
func (l *Library) Album(id AlbumID) *Album {
	for i := range l.Albums {
		if l.Albums[i].UUID == id {
			return &l.Albums[i]
		}
	}
	return nil
}

// Artist returns the artist with the given uuid, or nil.
func (l *Library) Artist(id ArtistID) *Artist {
	for i := range l.Artists {
		if l.Artists[i].UUID == id {
			return &l.Artists[i]
		}
	}
	return nil
}

// Music returns the music with the given uuid, or nil.
func (l *Library) Music(id MusicID) *Music {
	for i := range l.Musics {
		if l.Musics[i].UUID == id {
			return &l.Musics[i]
		}
	}
	return nil
}

// Playlist returns the playlist with the given uuid, or nil.
func (l *Library) Playlist(id PlaylistID) *Playlist {
	for i := range l.Playlists {
		if l.Playlists[i].UUID == id {
			return &l.Playlists[i]
		}
	}
	return nil
}

// File returns the file with the given name, or nil.
func (l *Library) File(name FileName) *File {
	for i := range l.Files {
		if l.Files[i].Name == name {
			return &l.Files[i]
		}
	}
	return nil
}

// User returns the user with the given uuid, or nil.
func (l *Library) User(id UserID) *User {
	for i := range l.Users {
		if l.Users[i].UUID == id {
			return &l.Users[i]
		}
	}
	return nil
}
