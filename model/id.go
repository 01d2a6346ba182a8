package model

// Typed identifiers tag a raw UUID (or file name) with its entity kind so a
// bare string can't be handed to an API that expects a different entity's key.

// AlbumID identifies an album.
type AlbumID string

// ArtistID identifies an artist.
type ArtistID string

// MusicID identifies a music (one track).
type MusicID string

// PlaylistID identifies a playlist.
type PlaylistID string

// UserID identifies a user.
type UserID string

// FileName is the natural key of a file entry: the human-readable file name
// under which the upload was registered. File names are unique library-wide.
type FileName string

// MusicStreamRef addresses one entry of a music's audio stream list.
// Number is the current array index. It is positional, not stable: removing
// an earlier stream shifts every later ref without notice.
type MusicStreamRef struct {
	Music  MusicID
	Number int
}

// VideoStreamRef addresses one entry of a music's video stream list.
// Same positional caveat as MusicStreamRef.
type VideoStreamRef struct {
	Music  MusicID
	Number int
}
