package library

import (
	"notevault/model"
)

// MusicStreamEditor mutates one audio stream of a music, addressed by the
// positional ref issued at attach time. A ref whose index has been shifted
// by a removal silently points at a different stream; a ref past the end of
// the array is treated as not found.
type MusicStreamEditor struct {
	lib *model.Library
	ref model.MusicStreamRef
}

func (e MusicStreamEditor) target() *model.AudioStream {
	music := e.lib.Music(e.ref.Music)
	if music == nil || e.ref.Number < 0 || e.ref.Number >= len(music.Music) {
		return nil
	}
	return &music.Music[e.ref.Number]
}

// ChangeFile repoints the stream at another file.
func (e MusicStreamEditor) ChangeFile(file model.FileName) bool {
	stream := e.target()
	if stream == nil {
		return false
	}
	stream.File = file
	return true
}

// ChangeLang retags the stream's language.
func (e MusicStreamEditor) ChangeLang(lang string) bool {
	stream := e.target()
	if stream == nil {
		return false
	}
	stream.Lang = lang
	return true
}

// AddArtist appends an artist to the stream's own artist list. No dedup.
func (e MusicStreamEditor) AddArtist(artist model.ArtistID) bool {
	stream := e.target()
	if stream == nil {
		return false
	}
	stream.Artist = append(stream.Artist, artist)
	return true
}

// RemoveArtist drops the first matching artist from the stream.
func (e MusicStreamEditor) RemoveArtist(artist model.ArtistID) bool {
	stream := e.target()
	if stream == nil {
		return false
	}
	stream.Artist = removeFirst(stream.Artist, artist)
	return true
}

// ChangeType reclassifies the stream.
func (e MusicStreamEditor) ChangeType(streamType model.AudioType) bool {
	stream := e.target()
	if stream == nil {
		return false
	}
	stream.Type = streamType
	return true
}

// SetMaster flags or unflags the stream as the track's timing master.
func (e MusicStreamEditor) SetMaster(master bool) bool {
	stream := e.target()
	if stream == nil {
		return false
	}
	stream.Master = master
	return true
}

// SetDelayCorrection merges the supplied fields into the stream's delay
// correction. Only fields that are present (non-nil) are written, so an
// explicit zero clears drift, unlike SetCreateDate which skips zeros.
func (e MusicStreamEditor) SetDelayCorrection(correction model.DelayCorrection) bool {
	stream := e.target()
	if stream == nil {
		return false
	}
	if correction.StartTime != nil {
		stream.DelayCorrection.StartTime = correction.StartTime
	}
	if correction.EndTime != nil {
		stream.DelayCorrection.EndTime = correction.EndTime
	}
	return true
}

// VideoStreamEditor mutates one video stream of a music. Same addressing
// and staleness caveats as MusicStreamEditor.
type VideoStreamEditor struct {
	lib *model.Library
	ref model.VideoStreamRef
}

func (e VideoStreamEditor) target() *model.VideoStream {
	music := e.lib.Music(e.ref.Music)
	if music == nil || e.ref.Number < 0 || e.ref.Number >= len(music.Video) {
		return nil
	}
	return &music.Video[e.ref.Number]
}

// ChangeFile repoints the stream at another file.
func (e VideoStreamEditor) ChangeFile(file model.FileName) bool {
	stream := e.target()
	if stream == nil {
		return false
	}
	stream.File = file
	return true
}

// ChangeLang retags the stream's language.
func (e VideoStreamEditor) ChangeLang(lang string) bool {
	stream := e.target()
	if stream == nil {
		return false
	}
	stream.Lang = lang
	return true
}

// AddArtist appends an artist to the stream's own artist list.
func (e VideoStreamEditor) AddArtist(artist model.ArtistID) bool {
	stream := e.target()
	if stream == nil {
		return false
	}
	stream.Artist = append(stream.Artist, artist)
	return true
}

// RemoveArtist drops the first matching artist from the stream.
func (e VideoStreamEditor) RemoveArtist(artist model.ArtistID) bool {
	stream := e.target()
	if stream == nil {
		return false
	}
	stream.Artist = removeFirst(stream.Artist, artist)
	return true
}

// ChangeType reclassifies the stream.
func (e VideoStreamEditor) ChangeType(streamType model.VideoType) bool {
	stream := e.target()
	if stream == nil {
		return false
	}
	stream.Type = streamType
	return true
}

// SetMaster flags or unflags the stream as the track's timing master.
func (e VideoStreamEditor) SetMaster(master bool) bool {
	stream := e.target()
	if stream == nil {
		return false
	}
	stream.Master = master
	return true
}

// SetDelayCorrection merges present fields only; see the audio variant.
func (e VideoStreamEditor) SetDelayCorrection(correction model.DelayCorrection) bool {
	stream := e.target()
	if stream == nil {
		return false
	}
	if correction.StartTime != nil {
		stream.DelayCorrection.StartTime = correction.StartTime
	}
	if correction.EndTime != nil {
		stream.DelayCorrection.EndTime = correction.EndTime
	}
	return true
}
