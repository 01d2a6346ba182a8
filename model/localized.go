package model

// ReadChar is one phonetic reading annotation, itself tagged with the
// language the reading is written in.
type ReadChar struct {
	Lang string `json:"lang,omitempty"`
	Char string `json:"char,omitempty"`
}

// LocalizedText is a per-language display string plus its phonetic readings.
// Albums and musics use it for titles, artists for names. The convention is
// one record per language; writers find-or-create by language rather than
// checking uniqueness up front.
type LocalizedText struct {
	Lang      string     `json:"lang"`
	Name      string     `json:"name"`
	ReadChars []ReadChar `json:"readChar"`
}

// Artwork is a language-tagged image or looping-video reference.
type Artwork struct {
	Lang string   `json:"lang"`
	File FileName `json:"file"`
	// Main marks the preferred thumbnail for its language. If two entries of
	// the same language are both main, the first one in the array wins.
	Main bool `json:"main"`
}
