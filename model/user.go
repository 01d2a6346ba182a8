package model

// User is one row of the user table. The view lists are declared
// capabilities; no mutation path consults them.
type User struct {
	UUID          UserID       `json:"uuid"`
	Name          string       `json:"name"`
	ViewAlbums    []AlbumID    `json:"viewAlbums"`
	ViewArtists   []ArtistID   `json:"viewArtists"`
	ViewMusics    []MusicID    `json:"viewMusics"`
	ViewPlaylists []PlaylistID `json:"viewPlaylists"`
	ViewFiles     []FileName   `json:"viewFiles"`
}
