package model

// PlaylistEntryType says whether a playlist entry plays an audio or a
// video stream of its music.
type PlaylistEntryType string

const (
	PlaylistEntryMusic PlaylistEntryType = "music"
	PlaylistEntryVideo PlaylistEntryType = "video"
)

// PlaylistEntry is one position in a playlist. Number indexes into the
// referenced music's stream array of the given type; it is not validated
// against that array's current length.
type PlaylistEntry struct {
	UUID   MusicID           `json:"uuid"`
	Type   PlaylistEntryType `json:"type"`
	Number int               `json:"number"`
}

// Playlist is one row of the playlist table. Entry order is play order.
type Playlist struct {
	UUID         PlaylistID      `json:"uuid"`
	OfficialInfo bool            `json:"officialInfo"`
	InfoAuthor   UserID          `json:"infoAuthor"`
	AddedDate    int64           `json:"addedDate"`
	Name         *string         `json:"name,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Musics       []PlaylistEntry `json:"musics"`
}
