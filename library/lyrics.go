package library

import (
	"encoding/json"

	"notevault/model"
)

// ParseLyrics validates arbitrary JSON against the lyric document shape and
// returns the typed value. Any violation at any nesting level, including
// input that is not valid JSON at all, yields ok=false with no detail and
// no partial result. It never panics.
func ParseLyrics(data []byte) (model.Lyrics, bool) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.Lyrics{}, false
	}
	return LyricsFromValue(raw)
}

// LyricsFromValue validates an already-decoded JSON value (maps, slices,
// strings, float64 numbers) the same way ParseLyrics does.
func LyricsFromValue(raw any) (model.Lyrics, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return model.Lyrics{}, false
	}
	lang, ok := obj["lang"].(string)
	if !ok {
		return model.Lyrics{}, false
	}
	rawBody, ok := obj["body"].([]any)
	if !ok {
		return model.Lyrics{}, false
	}

	lyrics := model.Lyrics{Lang: lang, Body: make([]model.LyricsBlock, 0, len(rawBody))}
	for _, rawBlock := range rawBody {
		block, ok := lyricsBlockFromValue(rawBlock)
		if !ok {
			return model.Lyrics{}, false
		}
		lyrics.Body = append(lyrics.Body, block)
	}

	if artistRaw, present := obj["artist"]; present {
		artist, ok := artistRaw.(string)
		if !ok {
			return model.Lyrics{}, false
		}
		lyrics.Artist = &artist
	}
	return lyrics, true
}

func lyricsBlockFromValue(raw any) (model.LyricsBlock, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return model.LyricsBlock{}, false
	}
	rawPhrases, ok := obj["phrases"].([]any)
	if !ok {
		return model.LyricsBlock{}, false
	}

	block := model.LyricsBlock{Phrases: make([]model.LyricsPhrase, 0, len(rawPhrases))}
	for _, rawPhrase := range rawPhrases {
		phrase, ok := lyricsPhraseFromValue(rawPhrase)
		if !ok {
			return model.LyricsBlock{}, false
		}
		block.Phrases = append(block.Phrases, phrase)
	}

	if artistRaw, present := obj["artist"]; present {
		artist, ok := artistRaw.(string)
		if !ok {
			return model.LyricsBlock{}, false
		}
		block.Artist = &artist
	}
	if typeRaw, present := obj["type"]; present {
		blockType, ok := typeRaw.(string)
		if !ok {
			return model.LyricsBlock{}, false
		}
		switch model.LyricsBlockType(blockType) {
		case model.LyricsMain, model.LyricsChorus, model.LyricsOther:
			block.Type = model.LyricsBlockType(blockType)
		default:
			return model.LyricsBlock{}, false
		}
	}
	if timingRaw, present := obj["timing"]; present {
		timing, ok := timingRaw.(map[string]any)
		if !ok {
			return model.LyricsBlock{}, false
		}
		startTime, ok := timing["startTime"].(float64)
		if !ok {
			return model.LyricsBlock{}, false
		}
		endTime, ok := timing["endTime"].(float64)
		if !ok {
			return model.LyricsBlock{}, false
		}
		block.Timing = &model.LyricsWindow{StartTime: startTime, EndTime: endTime}
	}
	phraseNumber, ok := obj["phraseNumber"].(float64)
	if !ok {
		return model.LyricsBlock{}, false
	}
	block.PhraseNumber = phraseNumber
	return block, true
}

func lyricsPhraseFromValue(raw any) (model.LyricsPhrase, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return model.LyricsPhrase{}, false
	}
	rawRuns, ok := obj["str"].([]any)
	if !ok {
		return model.LyricsPhrase{}, false
	}
	rawTimings, ok := obj["timing"].([]any)
	if !ok {
		return model.LyricsPhrase{}, false
	}

	phrase := model.LyricsPhrase{
		Str:    make([]model.LyricsRun, 0, len(rawRuns)),
		Timing: make([]model.LyricsTiming, 0, len(rawTimings)),
	}
	for _, rawRun := range rawRuns {
		run, ok := rawRun.(map[string]any)
		if !ok {
			return model.LyricsPhrase{}, false
		}
		text, ok := run["text"].(string)
		if !ok {
			return model.LyricsPhrase{}, false
		}
		item := model.LyricsRun{Text: text}
		if rubyRaw, present := run["ruby"]; present {
			ruby, ok := rubyRaw.(string)
			if !ok {
				return model.LyricsPhrase{}, false
			}
			item.Ruby = &ruby
		}
		phrase.Str = append(phrase.Str, item)
	}
	for _, rawTiming := range rawTimings {
		timing, ok := rawTiming.(map[string]any)
		if !ok {
			return model.LyricsPhrase{}, false
		}
		time, ok := timing["time"].(float64)
		if !ok {
			return model.LyricsPhrase{}, false
		}
		emphasis, ok := timing["emphasis"].(float64)
		if !ok {
			return model.LyricsPhrase{}, false
		}
		phrase.Timing = append(phrase.Timing, model.LyricsTiming{Time: time, Emphasis: emphasis})
	}
	return phrase, true
}
