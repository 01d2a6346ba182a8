package model

// ImportSource ranks where a file body came from, as a proxy for how far it
// sits from the original master.
type ImportSource string

const (
	// ImportOnlineVideoService: ripped from an online video service
	// (YouTube, niconico, ...). Re-encoded at least once; also the bucket
	// for anything you re-encoded yourself. Originality 1.
	ImportOnlineVideoService ImportSource = "onlineVideoService"
	// ImportAnalogRecording: analog capture of a source. Originality 1.
	ImportAnalogRecording ImportSource = "analogRecording"
	// ImportOnlineMusicService: from a music service (Apple Music,
	// Spotify, ...). Originality 2.
	ImportOnlineMusicService ImportSource = "onlineMusicService"
	// ImportDigitalRecording: digital capture of a source. Originality 2.
	ImportDigitalRecording ImportSource = "digitalRecording"
	// ImportCD: from a CD or similar release medium. Originality 3.
	ImportCD ImportSource = "CD"
	// ImportDownloadFile: an unmodified downloaded file (SoundCloud, free
	// sample sites, ...). Originality 4.
	ImportDownloadFile ImportSource = "downloadFile"
	// ImportOriginal: your own original recording. Originality 5.
	ImportOriginal ImportSource = "original"
	// ImportOther: anything else.
	ImportOther ImportSource = "other"
)

// OriginalURL records where a file was downloaded from.
type OriginalURL struct {
	// VideoID is set for YouTube sources.
	VideoID *string `json:"videoId,omitempty"`
	// DownloadURL is set for every other online source.
	DownloadURL *string `json:"downloadURL,omitempty"`
}

// File is one row of the file table. Name doubles as the primary key and
// must be unique across the table.
type File struct {
	Name         FileName `json:"name"`
	Description  *string  `json:"description,omitempty"`
	OfficialInfo bool     `json:"officialInfo"`
	InfoAuthor   UserID   `json:"infoAuthor"`
	AddedDate    int64    `json:"addedDate"`
	// FFmpegInfo is filled by the external probing pipeline; the library
	// only carries it.
	FFmpegInfo   map[string]any `json:"ffmpegInfo"`
	ImportSource ImportSource   `json:"importSource"`
	OriginalURL  OriginalURL    `json:"originalURL"`
	// VolumeCorrection is a gain adjustment applied at playback.
	VolumeCorrection *float64 `json:"volumeCorrection,omitempty"`
}
