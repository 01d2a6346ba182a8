package library

import (
	"testing"
)

const validLyricsDoc = `{
	"lang": "ja",
	"artist": "artist-1",
	"body": [
		{
			"phrases": [
				{
					"str": [
						{"text": "漢字", "ruby": "かんじ"},
						{"text": "です"}
					],
					"timing": [
						{"time": 0.5, "emphasis": 1},
						{"time": 1.25, "emphasis": 0}
					]
				}
			],
			"type": "chorus",
			"timing": {"startTime": 0, "endTime": 12.5},
			"phraseNumber": 1
		}
	]
}`

func TestParseLyricsValidDocument(t *testing.T) {
	lyrics, ok := ParseLyrics([]byte(validLyricsDoc))
	if !ok {
		t.Fatal("valid document rejected")
	}
	if lyrics.Lang != "ja" {
		t.Errorf("Lang = %q, want ja", lyrics.Lang)
	}
	if lyrics.Artist == nil || *lyrics.Artist != "artist-1" {
		t.Errorf("Artist = %v, want artist-1", lyrics.Artist)
	}
	if len(lyrics.Body) != 1 {
		t.Fatalf("body length = %d, want 1", len(lyrics.Body))
	}

	block := lyrics.Body[0]
	if block.PhraseNumber != 1 {
		t.Errorf("PhraseNumber = %v, want 1", block.PhraseNumber)
	}
	if block.Timing == nil || block.Timing.EndTime != 12.5 {
		t.Errorf("Timing = %+v, want endTime 12.5", block.Timing)
	}

	runs := block.Phrases[0].Str
	if runs[0].Ruby == nil || *runs[0].Ruby != "かんじ" {
		t.Errorf("first run ruby = %v", runs[0].Ruby)
	}
	if runs[1].Ruby != nil {
		t.Error("second run has ruby it was never given")
	}
}

func TestParseLyricsMinimalDocument(t *testing.T) {
	lyrics, ok := ParseLyrics([]byte(`{"lang": "en", "body": []}`))
	if !ok {
		t.Fatal("minimal document rejected")
	}
	if lyrics.Artist != nil {
		t.Error("Artist set without being supplied")
	}
	if len(lyrics.Body) != 0 {
		t.Errorf("body length = %d, want 0", len(lyrics.Body))
	}
}

func TestParseLyricsRejections(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not JSON", `{{{`},
		{"not an object", `[1, 2]`},
		{"missing lang", `{"body": []}`},
		{"lang not a string", `{"lang": 5, "body": []}`},
		{"missing body", `{"lang": "en"}`},
		{"block missing phraseNumber", `{"lang": "en", "body": [{"phrases": []}]}`},
		{"block bad type", `{"lang": "en", "body": [{"phrases": [], "type": "bridge", "phraseNumber": 1}]}`},
		{"block timing missing endTime", `{"lang": "en", "body": [{"phrases": [], "timing": {"startTime": 0}, "phraseNumber": 1}]}`},
		{"phrase missing str", `{"lang": "en", "body": [{"phrases": [{"timing": []}], "phraseNumber": 1}]}`},
		{"phrase missing timing", `{"lang": "en", "body": [{"phrases": [{"str": []}], "phraseNumber": 1}]}`},
		{"run missing text", `{"lang": "en", "body": [{"phrases": [{"str": [{"ruby": "x"}], "timing": []}], "phraseNumber": 1}]}`},
		{"run ruby not a string", `{"lang": "en", "body": [{"phrases": [{"str": [{"text": "a", "ruby": 1}], "timing": []}], "phraseNumber": 1}]}`},
		{"timing entry missing emphasis", `{"lang": "en", "body": [{"phrases": [{"str": [], "timing": [{"time": 1}]}], "phraseNumber": 1}]}`},
		{"artist not a string", `{"lang": "en", "body": [], "artist": 7}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := ParseLyrics([]byte(tc.doc)); ok {
				t.Errorf("document accepted: %s", tc.doc)
			}
		})
	}
}

func TestParseLyricsFractionalPhraseNumber(t *testing.T) {
	lyrics, ok := ParseLyrics([]byte(`{"lang": "en", "body": [{"phrases": [], "phraseNumber": 1.5}]}`))
	if !ok {
		t.Fatal("document with fractional phraseNumber rejected")
	}
	if lyrics.Body[0].PhraseNumber != 1.5 {
		t.Errorf("PhraseNumber = %v, want 1.5", lyrics.Body[0].PhraseNumber)
	}
}
