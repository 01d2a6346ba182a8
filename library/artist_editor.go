package library

import (
	"notevault/model"
)

// ArtistEditor is a short-lived mutation handle bound to one artist.
type ArtistEditor struct {
	lib  *model.Library
	user model.UserID
	id   model.ArtistID
}

func (e ArtistEditor) target() *model.Artist {
	return e.lib.Artist(e.id)
}

// SetName sets the display name for one language, overwriting the existing
// record or appending a new one.
func (e ArtistEditor) SetName(name, lang string) bool {
	artist := e.target()
	if artist == nil {
		return false
	}
	setLocalized(&artist.Name, name, lang)
	return true
}

// RemoveName drops the name record for lang.
func (e ArtistEditor) RemoveName(lang string) bool {
	artist := e.target()
	if artist == nil {
		return false
	}
	removeLocalized(&artist.Name, lang)
	return true
}

// SetNameReadChar appends a phonetic reading to the name for lang.
// Duplicate charLang entries stack, same as title readings.
func (e ArtistEditor) SetNameReadChar(lang, char, charLang string) bool {
	artist := e.target()
	if artist == nil {
		return false
	}
	addReadChar(&artist.Name, lang, char, charLang)
	return true
}

// DeleteNameReadChar removes the first reading tagged charLang from the
// name for lang. False when the artist or the lang record is missing.
func (e ArtistEditor) DeleteNameReadChar(lang, charLang string) bool {
	artist := e.target()
	if artist == nil {
		return false
	}
	return deleteReadChar(&artist.Name, lang, charLang)
}

// AddCharacterVoice appends a voicing artist reference.
func (e ArtistEditor) AddCharacterVoice(artist model.ArtistID) bool {
	target := e.target()
	if target == nil {
		return false
	}
	target.CharacterVoice = append(target.CharacterVoice, artist)
	return true
}

// RemoveCharacterVoice drops the first matching voicing artist.
func (e ArtistEditor) RemoveCharacterVoice(artist model.ArtistID) bool {
	target := e.target()
	if target == nil {
		return false
	}
	target.CharacterVoice = removeFirst(target.CharacterVoice, artist)
	return true
}

// AddArtwork appends an artwork entry.
func (e ArtistEditor) AddArtwork(artwork model.Artwork) bool {
	artist := e.target()
	if artist == nil {
		return false
	}
	artist.Artwork = append(artist.Artwork, artwork)
	return true
}

// RemoveArtwork drops the first artwork with the given file name,
// regardless of language.
func (e ArtistEditor) RemoveArtwork(artwork model.Artwork) bool {
	artist := e.target()
	if artist == nil {
		return false
	}
	artist.Artwork = removeArtworkByFile(artist.Artwork, artwork.File)
	return true
}
