package model

// CreateDate records when a work was created or published. Any subset of
// the fields may be set; RawTime is a unix-millisecond timestamp for the
// cases where a full moment is known.
type CreateDate struct {
	Year    int   `json:"year,omitempty"`
	Month   int   `json:"month,omitempty"`
	Day     int   `json:"day,omitempty"`
	RawTime int64 `json:"rawTime,omitempty"`
}

// Album is one row of the album table.
type Album struct {
	UUID AlbumID `json:"uuid"`
	// OfficialInfo locks the row to the server operator. Recorded only;
	// nothing enforces it.
	OfficialInfo bool   `json:"officialInfo"`
	InfoAuthor   UserID `json:"infoAuthor"`
	// Musics lists the album's tracks. References are not validated and may
	// dangle after a music is deleted.
	Musics          []MusicID  `json:"musics"`
	Artist          []ArtistID `json:"artist"`
	FeaturingArtist []ArtistID `json:"featuringArtist"`
	// RemixAlbum / CoverAlbum point at the original this album reworks,
	// when the overall album structure matches it.
	RemixAlbum *AlbumID `json:"remixAlbum,omitempty"`
	CoverAlbum *AlbumID `json:"coverAlbum,omitempty"`
	// AddedDate is the unix-millisecond time the row was created.
	AddedDate  int64           `json:"addedDate"`
	CreateDate CreateDate      `json:"createDate"`
	Artwork    []Artwork       `json:"albumArtwork"`
	Title      []LocalizedText `json:"title"`
	Genre      []string        `json:"genre"`
}
