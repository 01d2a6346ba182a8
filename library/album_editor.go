package library

import (
	"notevault/model"
)

// AlbumEditor is a short-lived mutation handle bound to one album. Every
// mutator re-resolves the target by uuid and reports false when the album
// no longer exists; otherwise it mutates in place and reports true.
type AlbumEditor struct {
	lib  *model.Library
	user model.UserID
	id   model.AlbumID
}

func (e AlbumEditor) target() *model.Album {
	return e.lib.Album(e.id)
}

// SetTitle sets the display title for one language, overwriting the
// existing record or appending a new one.
func (e AlbumEditor) SetTitle(name, lang string) bool {
	album := e.target()
	if album == nil {
		return false
	}
	setLocalized(&album.Title, name, lang)
	return true
}

// RemoveTitle drops the title record for lang.
func (e AlbumEditor) RemoveTitle(lang string) bool {
	album := e.target()
	if album == nil {
		return false
	}
	removeLocalized(&album.Title, lang)
	return true
}

// SetTitleReadChar appends a phonetic reading to the title for lang.
// Repeated calls with the same charLang stack duplicate entries.
func (e AlbumEditor) SetTitleReadChar(lang, char, charLang string) bool {
	album := e.target()
	if album == nil {
		return false
	}
	addReadChar(&album.Title, lang, char, charLang)
	return true
}

// DeleteTitleReadChar removes the first reading tagged charLang from the
// title for lang. False when the album or the lang record is missing.
func (e AlbumEditor) DeleteTitleReadChar(lang, charLang string) bool {
	album := e.target()
	if album == nil {
		return false
	}
	return deleteReadChar(&album.Title, lang, charLang)
}

// AddArtist appends an artist reference. No dedup: adding twice records
// the artist twice.
func (e AlbumEditor) AddArtist(artist model.ArtistID) bool {
	album := e.target()
	if album == nil {
		return false
	}
	album.Artist = append(album.Artist, artist)
	return true
}

// RemoveArtist drops the first matching artist reference.
func (e AlbumEditor) RemoveArtist(artist model.ArtistID) bool {
	album := e.target()
	if album == nil {
		return false
	}
	album.Artist = removeFirst(album.Artist, artist)
	return true
}

// AddFeaturingArtist appends a featuring ("feat.") artist reference.
func (e AlbumEditor) AddFeaturingArtist(artist model.ArtistID) bool {
	album := e.target()
	if album == nil {
		return false
	}
	album.FeaturingArtist = append(album.FeaturingArtist, artist)
	return true
}

// RemoveFeaturingArtist drops the first matching featuring artist.
func (e AlbumEditor) RemoveFeaturingArtist(artist model.ArtistID) bool {
	album := e.target()
	if album == nil {
		return false
	}
	album.FeaturingArtist = removeFirst(album.FeaturingArtist, artist)
	return true
}

// SetFeaturingArtist replaces the whole featuring artist list.
func (e AlbumEditor) SetFeaturingArtist(artists []model.ArtistID) bool {
	album := e.target()
	if album == nil {
		return false
	}
	album.FeaturingArtist = artists
	return true
}

// AddMusic appends a music reference to the album.
func (e AlbumEditor) AddMusic(music model.MusicID) bool {
	album := e.target()
	if album == nil {
		return false
	}
	album.Musics = append(album.Musics, music)
	return true
}

// RemoveMusic drops the first matching music reference.
func (e AlbumEditor) RemoveMusic(music model.MusicID) bool {
	album := e.target()
	if album == nil {
		return false
	}
	album.Musics = removeFirst(album.Musics, music)
	return true
}

// AddArtwork appends an artwork entry.
func (e AlbumEditor) AddArtwork(artwork model.Artwork) bool {
	album := e.target()
	if album == nil {
		return false
	}
	album.Artwork = append(album.Artwork, artwork)
	return true
}

// RemoveArtwork drops the first artwork with the given file name,
// whatever language it is tagged with.
func (e AlbumEditor) RemoveArtwork(artwork model.Artwork) bool {
	album := e.target()
	if album == nil {
		return false
	}
	album.Artwork = removeArtworkByFile(album.Artwork, artwork.File)
	return true
}

// AddGenre appends a genre. No dedup.
func (e AlbumEditor) AddGenre(genre string) bool {
	album := e.target()
	if album == nil {
		return false
	}
	album.Genre = append(album.Genre, genre)
	return true
}

// RemoveGenre drops the first matching genre.
func (e AlbumEditor) RemoveGenre(genre string) bool {
	album := e.target()
	if album == nil {
		return false
	}
	album.Genre = removeFirst(album.Genre, genre)
	return true
}

// SetGenre replaces the whole genre list.
func (e AlbumEditor) SetGenre(genre []string) bool {
	album := e.target()
	if album == nil {
		return false
	}
	album.Genre = genre
	return true
}

// SetCreateDate merges the supplied fields into the album's create date.
// Zero-valued fields are skipped, not cleared.
func (e AlbumEditor) SetCreateDate(date model.CreateDate) bool {
	album := e.target()
	if album == nil {
		return false
	}
	mergeCreateDate(&album.CreateDate, date)
	return true
}

// SetRemixAlbum records the album this one is a remix of.
func (e AlbumEditor) SetRemixAlbum(original model.AlbumID) bool {
	album := e.target()
	if album == nil {
		return false
	}
	album.RemixAlbum = &original
	return true
}

// DeleteRemixAlbum clears the remix origin. Clearing an absent value is
// not an error.
func (e AlbumEditor) DeleteRemixAlbum() bool {
	album := e.target()
	if album == nil {
		return false
	}
	album.RemixAlbum = nil
	return true
}

// SetCoverAlbum records the album this one is a cover of.
func (e AlbumEditor) SetCoverAlbum(original model.AlbumID) bool {
	album := e.target()
	if album == nil {
		return false
	}
	album.CoverAlbum = &original
	return true
}

// DeleteCoverAlbum clears the cover origin.
func (e AlbumEditor) DeleteCoverAlbum() bool {
	album := e.target()
	if album == nil {
		return false
	}
	album.CoverAlbum = nil
	return true
}
