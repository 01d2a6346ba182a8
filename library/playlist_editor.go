package library

import (
	"notevault/model"
)

// PlaylistEditor is a short-lived mutation handle bound to one playlist.
type PlaylistEditor struct {
	lib  *model.Library
	user model.UserID
	id   model.PlaylistID
}

func (e PlaylistEditor) target() *model.Playlist {
	return e.lib.Playlist(e.id)
}

// SetName sets the playlist's display name.
func (e PlaylistEditor) SetName(name string) bool {
	playlist := e.target()
	if playlist == nil {
		return false
	}
	playlist.Name = &name
	return true
}

// SetDescription sets the playlist's description.
func (e PlaylistEditor) SetDescription(description string) bool {
	playlist := e.target()
	if playlist == nil {
		return false
	}
	playlist.Description = &description
	return true
}

// AddMusic appends an entry at the end of the play order. streamNumber
// picks which stream of the music plays; it is not validated against the
// music's current stream count.
func (e PlaylistEditor) AddMusic(music model.MusicID, streamNumber int, entryType model.PlaylistEntryType) bool {
	playlist := e.target()
	if playlist == nil {
		return false
	}
	playlist.Musics = append(playlist.Musics, model.PlaylistEntry{
		UUID:   music,
		Type:   entryType,
		Number: streamNumber,
	})
	return true
}

// RemoveMusic removes the entry at the given play-order index. False when
// the index is out of range.
func (e PlaylistEditor) RemoveMusic(index int) bool {
	playlist := e.target()
	if playlist == nil {
		return false
	}
	if index < 0 || index >= len(playlist.Musics) {
		return false
	}
	playlist.Musics = append(playlist.Musics[:index], playlist.Musics[index+1:]...)
	return true
}
