package library

import (
	"notevault/model"
)

// Helpers shared by the album, artist and music editors. Localized titles
// and artist names are the same record shape, so the find-or-create logic
// lives here once.

// setLocalized overwrites the display string for lang, appending a fresh
// record when the language has none yet.
func setLocalized(list *[]model.LocalizedText, name, lang string) {
	for i := range *list {
		if (*list)[i].Lang == lang {
			(*list)[i].Name = name
			return
		}
	}
	*list = append(*list, model.LocalizedText{Lang: lang, Name: name, ReadChars: []model.ReadChar{}})
}

// removeLocalized drops the record for lang if one exists.
func removeLocalized(list *[]model.LocalizedText, lang string) {
	for i := range *list {
		if (*list)[i].Lang == lang {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return
		}
	}
}

// addReadChar appends a reading annotation to the record for lang. There is
// no dedup: calling twice with the same charLang stacks two entries. When
// the language record does not exist yet it is created with an empty display
// string, so a reading can legitimately precede any title.
func addReadChar(list *[]model.LocalizedText, lang, char, charLang string) {
	for i := range *list {
		if (*list)[i].Lang == lang {
			(*list)[i].ReadChars = append((*list)[i].ReadChars, model.ReadChar{Lang: charLang, Char: char})
			return
		}
	}
	*list = append(*list, model.LocalizedText{
		Lang:      lang,
		Name:      "",
		ReadChars: []model.ReadChar{{Lang: charLang, Char: char}},
	})
}

// deleteReadChar removes the first reading tagged charLang from the record
// for lang. It reports false when the language record itself is missing;
// a missing reading inside an existing record is not an error.
func deleteReadChar(list *[]model.LocalizedText, lang, charLang string) bool {
	for i := range *list {
		if (*list)[i].Lang != lang {
			continue
		}
		for j := range (*list)[i].ReadChars {
			if (*list)[i].ReadChars[j].Lang == charLang {
				(*list)[i].ReadChars = append((*list)[i].ReadChars[:j], (*list)[i].ReadChars[j+1:]...)
				break
			}
		}
		return true
	}
	return false
}

// removeFirst drops the first element equal to v, leaving duplicates alone.
func removeFirst[T comparable](list []T, v T) []T {
	for i := range list {
		if list[i] == v {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// removeArtworkByFile drops the first artwork whose file matches. Language
// is not part of the match key.
func removeArtworkByFile(list []model.Artwork, file model.FileName) []model.Artwork {
	for i := range list {
		if list[i].File == file {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// mergeCreateDate copies only the non-zero fields of in onto dst. A zero is
// indistinguishable from "not supplied" here, so a field cannot be cleared
// by sending 0. Stream delay correction merges on presence instead.
func mergeCreateDate(dst *model.CreateDate, in model.CreateDate) {
	if in.Year != 0 {
		dst.Year = in.Year
	}
	if in.Month != 0 {
		dst.Month = in.Month
	}
	if in.Day != 0 {
		dst.Day = in.Day
	}
	if in.RawTime != 0 {
		dst.RawTime = in.RawTime
	}
}
