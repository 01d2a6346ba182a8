package model

// Artist is one row of the artist table.
type Artist struct {
	UUID         ArtistID `json:"uuid"`
	OfficialInfo bool     `json:"officialInfo"`
	InfoAuthor   UserID   `json:"infoAuthor"`
	AddedDate    int64    `json:"addedDate"`
	// Albums is declared in the schema but no mutation path populates it;
	// album membership lives on the album side.
	Albums []AlbumID `json:"albums"`
	// CharacterVoice lists the artists voicing this character, for artists
	// that are fictional personas. Usually one entry.
	CharacterVoice []ArtistID      `json:"characterVoice"`
	Artwork        []Artwork       `json:"artistArtwork"`
	Name           []LocalizedText `json:"name"`
}
