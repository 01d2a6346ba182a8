package model

// AudioType classifies an audio stream.
type AudioType string

const (
	AudioNormal       AudioType = "normal"
	AudioVocal        AudioType = "vocal"
	AudioInstrumental AudioType = "instrumental"
	AudioOther        AudioType = "other"
)

// VideoType classifies a video stream.
type VideoType string

const (
	VideoMusicVideo VideoType = "musicvideo"
	VideoMovie      VideoType = "movie"
	VideoOther      VideoType = "other"
)

// DelayCorrection aligns a stream against the master stream of its track.
// StartTime shifts playback start (negative values allowed). EndTime trims
// or extends the end of the track and is honored only on the master stream;
// non-master streams inherit the master's end.
type DelayCorrection struct {
	StartTime *float64 `json:"startTime,omitempty"`
	EndTime   *float64 `json:"endTime,omitempty"`
}

// AudioStream is one audio file attached to a music.
type AudioStream struct {
	File   FileName   `json:"file"`
	Lang   string     `json:"lang"`
	Artist []ArtistID `json:"artist"`
	Type   AudioType  `json:"type"`
	// Master marks the stream whose timing anchors the track. With several
	// masters the first one in the array governs; with none the first
	// stream is implicitly the master.
	Master          bool            `json:"master"`
	DelayCorrection DelayCorrection `json:"delayCorrection"`
}

// VideoStream is one video file attached to a music.
type VideoStream struct {
	File            FileName        `json:"file"`
	Lang            string          `json:"lang"`
	Artist          []ArtistID      `json:"artist"`
	Type            VideoType       `json:"type"`
	Master          bool            `json:"master"`
	DelayCorrection DelayCorrection `json:"delayCorrection"`
}

// MasterAudioIndex returns the index of the governing audio stream:
// the first entry flagged master, else 0. Returns -1 for an empty list.
func MasterAudioIndex(streams []AudioStream) int {
	if len(streams) == 0 {
		return -1
	}
	for i := range streams {
		if streams[i].Master {
			return i
		}
	}
	return 0
}

// MasterVideoIndex is MasterAudioIndex for video streams.
func MasterVideoIndex(streams []VideoStream) int {
	if len(streams) == 0 {
		return -1
	}
	for i := range streams {
		if streams[i].Master {
			return i
		}
	}
	return 0
}
