package model

// Music is one row of the music table: a single track with its localized
// titles, lyrics and attached media streams.
type Music struct {
	UUID         MusicID `json:"uuid"`
	OfficialInfo bool    `json:"officialInfo"`
	InfoAuthor   UserID  `json:"infoAuthor"`
	// Artist falls back to the album's artists when empty.
	Artist          []ArtistID `json:"artist"`
	FeaturingArtist []ArtistID `json:"featuringArtist"`
	RemixMusic      *MusicID   `json:"remixMusic,omitempty"`
	CoverMusic      *MusicID   `json:"coverMusic,omitempty"`
	AddedDate       int64      `json:"addedDate"`
	CreateDate      CreateDate `json:"createDate"`
	Artwork         []Artwork  `json:"musicArtwork"`
	Title           []LocalizedText `json:"title"`
	Genre           []string        `json:"genre"`
	// Lyrics holds one document per language.
	Lyrics []Lyrics `json:"lyrics"`
	// Music and Video are the attached audio and video streams.
	Music []AudioStream `json:"music"`
	Video []VideoStream `json:"video"`
}
