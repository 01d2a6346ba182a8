package library

import (
	"notevault/model"
)

// FileEditor is a short-lived mutation handle bound to one file row.
type FileEditor struct {
	lib  *model.Library
	user model.UserID
	name model.FileName
}

func (e FileEditor) target() *model.File {
	return e.lib.File(e.name)
}

// SetImportSource reclassifies where the file body came from.
func (e FileEditor) SetImportSource(source model.ImportSource) bool {
	file := e.target()
	if file == nil {
		return false
	}
	file.ImportSource = source
	return true
}

// SetDescription sets the free-form description.
func (e FileEditor) SetDescription(description string) bool {
	file := e.target()
	if file == nil {
		return false
	}
	file.Description = &description
	return true
}

// DeleteDescription clears the description. Clearing an absent value is
// not an error.
func (e FileEditor) DeleteDescription() bool {
	file := e.target()
	if file == nil {
		return false
	}
	file.Description = nil
	return true
}

// SetVideoID records the YouTube video id the file was downloaded from.
func (e FileEditor) SetVideoID(videoID string) bool {
	file := e.target()
	if file == nil {
		return false
	}
	file.OriginalURL.VideoID = &videoID
	return true
}

// RemoveVideoID clears the YouTube video id.
func (e FileEditor) RemoveVideoID() bool {
	file := e.target()
	if file == nil {
		return false
	}
	file.OriginalURL.VideoID = nil
	return true
}

// SetOriginalURL records the non-YouTube download URL.
func (e FileEditor) SetOriginalURL(url string) bool {
	file := e.target()
	if file == nil {
		return false
	}
	file.OriginalURL.DownloadURL = &url
	return true
}

// RemoveOriginalURL clears the download URL.
func (e FileEditor) RemoveOriginalURL() bool {
	file := e.target()
	if file == nil {
		return false
	}
	file.OriginalURL.DownloadURL = nil
	return true
}

// SetVolumeCorrection sets the playback gain adjustment.
func (e FileEditor) SetVolumeCorrection(correction float64) bool {
	file := e.target()
	if file == nil {
		return false
	}
	file.VolumeCorrection = &correction
	return true
}
