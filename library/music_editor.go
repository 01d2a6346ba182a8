package library

import (
	"notevault/model"
)

// MusicEditor is a short-lived mutation handle bound to one music.
type MusicEditor struct {
	lib  *model.Library
	user model.UserID
	id   model.MusicID
}

func (e MusicEditor) target() *model.Music {
	return e.lib.Music(e.id)
}

// SetTitle sets the display title for one language, overwriting the
// existing record or appending a new one.
func (e MusicEditor) SetTitle(name, lang string) bool {
	music := e.target()
	if music == nil {
		return false
	}
	setLocalized(&music.Title, name, lang)
	return true
}

// RemoveTitle drops the title record for lang.
func (e MusicEditor) RemoveTitle(lang string) bool {
	music := e.target()
	if music == nil {
		return false
	}
	removeLocalized(&music.Title, lang)
	return true
}

// SetTitleReadChar appends a phonetic reading to the title for lang.
func (e MusicEditor) SetTitleReadChar(lang, char, charLang string) bool {
	music := e.target()
	if music == nil {
		return false
	}
	addReadChar(&music.Title, lang, char, charLang)
	return true
}

// DeleteTitleReadChar removes the first reading tagged charLang from the
// title for lang. False when the music or the lang record is missing.
func (e MusicEditor) DeleteTitleReadChar(lang, charLang string) bool {
	music := e.target()
	if music == nil {
		return false
	}
	return deleteReadChar(&music.Title, lang, charLang)
}

// AddArtist appends an artist reference. No dedup.
func (e MusicEditor) AddArtist(artist model.ArtistID) bool {
	music := e.target()
	if music == nil {
		return false
	}
	music.Artist = append(music.Artist, artist)
	return true
}

// RemoveArtist drops the first matching artist reference.
func (e MusicEditor) RemoveArtist(artist model.ArtistID) bool {
	music := e.target()
	if music == nil {
		return false
	}
	music.Artist = removeFirst(music.Artist, artist)
	return true
}

// AddFeaturingArtist appends a featuring artist reference.
func (e MusicEditor) AddFeaturingArtist(artist model.ArtistID) bool {
	music := e.target()
	if music == nil {
		return false
	}
	music.FeaturingArtist = append(music.FeaturingArtist, artist)
	return true
}

// RemoveFeaturingArtist drops the first matching featuring artist.
func (e MusicEditor) RemoveFeaturingArtist(artist model.ArtistID) bool {
	music := e.target()
	if music == nil {
		return false
	}
	music.FeaturingArtist = removeFirst(music.FeaturingArtist, artist)
	return true
}

// AddGenre appends a genre. No dedup.
func (e MusicEditor) AddGenre(genre string) bool {
	music := e.target()
	if music == nil {
		return false
	}
	music.Genre = append(music.Genre, genre)
	return true
}

// RemoveGenre drops the first matching genre.
func (e MusicEditor) RemoveGenre(genre string) bool {
	music := e.target()
	if music == nil {
		return false
	}
	music.Genre = removeFirst(music.Genre, genre)
	return true
}

// SetGenre replaces the whole genre list.
func (e MusicEditor) SetGenre(genre []string) bool {
	music := e.target()
	if music == nil {
		return false
	}
	music.Genre = genre
	return true
}

// SetLyrics installs a lyric document, replacing the document already held
// for the same language or appending a new one.
func (e MusicEditor) SetLyrics(lyrics model.Lyrics) bool {
	music := e.target()
	if music == nil {
		return false
	}
	for i := range music.Lyrics {
		if music.Lyrics[i].Lang == lyrics.Lang {
			music.Lyrics[i] = lyrics
			return true
		}
	}
	music.Lyrics = append(music.Lyrics, lyrics)
	return true
}

// RemoveLyrics drops the lyric document for lang.
func (e MusicEditor) RemoveLyrics(lang string) bool {
	music := e.target()
	if music == nil {
		return false
	}
	for i := range music.Lyrics {
		if music.Lyrics[i].Lang == lang {
			music.Lyrics = append(music.Lyrics[:i], music.Lyrics[i+1:]...)
			break
		}
	}
	return true
}

// AddMusicStream attaches an audio file to the music. When a stream with
// the same file name already exists it is replaced at its current index,
// which resets the artist list, master flag and delay correction. The
// returned ref carries that positional index.
func (e MusicEditor) AddMusicStream(file model.FileName, lang string, streamType model.AudioType) (model.MusicStreamRef, bool) {
	music := e.target()
	if music == nil {
		return model.MusicStreamRef{}, false
	}
	stream := model.AudioStream{
		File:   file,
		Lang:   lang,
		Artist: []model.ArtistID{},
		Type:   streamType,
	}
	for i := range music.Music {
		if music.Music[i].File == file {
			music.Music[i] = stream
			return model.MusicStreamRef{Music: e.id, Number: i}, true
		}
	}
	music.Music = append(music.Music, stream)
	return model.MusicStreamRef{Music: e.id, Number: len(music.Music) - 1}, true
}

// RemoveMusicStream drops the audio stream with the given file name.
// Removal shifts the indices of every later stream, silently invalidating
// refs issued for them.
func (e MusicEditor) RemoveMusicStream(file model.FileName) bool {
	music := e.target()
	if music == nil {
		return false
	}
	for i := range music.Music {
		if music.Music[i].File == file {
			music.Music = append(music.Music[:i], music.Music[i+1:]...)
			break
		}
	}
	return true
}

// AddVideoStream attaches a video file to the music. Same replace-in-place
// and index semantics as AddMusicStream.
func (e MusicEditor) AddVideoStream(file model.FileName, lang string, streamType model.VideoType) (model.VideoStreamRef, bool) {
	music := e.target()
	if music == nil {
		return model.VideoStreamRef{}, false
	}
	stream := model.VideoStream{
		File:   file,
		Lang:   lang,
		Artist: []model.ArtistID{},
		Type:   streamType,
	}
	for i := range music.Video {
		if music.Video[i].File == file {
			music.Video[i] = stream
			return model.VideoStreamRef{Music: e.id, Number: i}, true
		}
	}
	music.Video = append(music.Video, stream)
	return model.VideoStreamRef{Music: e.id, Number: len(music.Video) - 1}, true
}

// RemoveVideoStream drops the video stream with the given file name.
func (e MusicEditor) RemoveVideoStream(file model.FileName) bool {
	music := e.target()
	if music == nil {
		return false
	}
	for i := range music.Video {
		if music.Video[i].File == file {
			music.Video = append(music.Video[:i], music.Video[i+1:]...)
			break
		}
	}
	return true
}

// EditMusicStream returns a second-level editor for one audio stream.
func (e MusicEditor) EditMusicStream(ref model.MusicStreamRef) MusicStreamEditor {
	return MusicStreamEditor{lib: e.lib, ref: ref}
}

// EditVideoStream returns a second-level editor for one video stream.
func (e MusicEditor) EditVideoStream(ref model.VideoStreamRef) VideoStreamEditor {
	return VideoStreamEditor{lib: e.lib, ref: ref}
}

// AddArtwork appends an artwork entry.
func (e MusicEditor) AddArtwork(artwork model.Artwork) bool {
	music := e.target()
	if music == nil {
		return false
	}
	music.Artwork = append(music.Artwork, artwork)
	return true
}

// RemoveArtwork drops the first artwork with the given file name,
// regardless of language.
func (e MusicEditor) RemoveArtwork(artwork model.Artwork) bool {
	music := e.target()
	if music == nil {
		return false
	}
	music.Artwork = removeArtworkByFile(music.Artwork, artwork.File)
	return true
}

// SetCreateDate merges the supplied fields into the music's create date.
// Zero-valued fields are skipped, not cleared.
func (e MusicEditor) SetCreateDate(date model.CreateDate) bool {
	music := e.target()
	if music == nil {
		return false
	}
	mergeCreateDate(&music.CreateDate, date)
	return true
}

// SetRemixMusic records the music this one is a remix of.
func (e MusicEditor) SetRemixMusic(original model.MusicID) bool {
	music := e.target()
	if music == nil {
		return false
	}
	music.RemixMusic = &original
	return true
}

// DeleteRemixMusic clears the remix origin.
func (e MusicEditor) DeleteRemixMusic() bool {
	music := e.target()
	if music == nil {
		return false
	}
	music.RemixMusic = nil
	return true
}

// SetCoverMusic records the music this one is a cover of.
func (e MusicEditor) SetCoverMusic(original model.MusicID) bool {
	music := e.target()
	if music == nil {
		return false
	}
	music.CoverMusic = &original
	return true
}

// DeleteCoverMusic clears the cover origin.
func (e MusicEditor) DeleteCoverMusic() bool {
	music := e.target()
	if music == nil {
		return false
	}
	music.CoverMusic = nil
	return true
}
