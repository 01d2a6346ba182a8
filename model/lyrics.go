package model

// LyricsBlockType classifies one block of lyrics.
type LyricsBlockType string

const (
	LyricsMain   LyricsBlockType = "main"
	LyricsChorus LyricsBlockType = "chorus"
	LyricsOther  LyricsBlockType = "other"
)

// LyricsRun is a run of text within a phrase, optionally carrying a ruby
// (furigana) reading. Splitting into runs exists solely so ruby can be
// attached; a whole phrase in one run is fine.
type LyricsRun struct {
	Text string  `json:"text"`
	Ruby *string `json:"ruby,omitempty"`
}

// LyricsTiming is one point on a phrase's emphasis curve: at Time
// milliseconds the highlight has progressed Emphasis characters. Fractions
// are allowed so ruby text can be swept smoothly.
type LyricsTiming struct {
	Time     float64 `json:"time"`
	Emphasis float64 `json:"emphasis"`
}

// LyricsPhrase is one displayed phrase: its text runs and its timing curve.
type LyricsPhrase struct {
	Str    []LyricsRun    `json:"str"`
	Timing []LyricsTiming `json:"timing"`
}

// LyricsWindow is the display window of a block in track milliseconds.
// Gaps between windows are treated as interludes by the player.
type LyricsWindow struct {
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
}

// LyricsBlock is one line of the lyric document.
type LyricsBlock struct {
	Phrases []LyricsPhrase `json:"phrases"`
	// Artist names who sings this line, when known.
	Artist *string `json:"artist,omitempty"`
	// Type defaults to main when absent.
	Type LyricsBlockType `json:"type,omitempty"`
	// Timing is optional; phrase-level timing always wins over it.
	Timing *LyricsWindow `json:"timing,omitempty"`
	// PhraseNumber groups lines into paragraphs, starting at 0.
	PhraseNumber float64 `json:"phraseNumber"`
}

// Lyrics is a structured lyric document for one language.
type Lyrics struct {
	Lang   string        `json:"lang"`
	Body   []LyricsBlock `json:"body"`
	Artist *string       `json:"artist,omitempty"`
}
