package segment

import (
	"unicode"
	"unicode/utf8"

	textdiff "github.com/honlnk/text-diff-viewer"
)

// Split divides a normalized text into comparison units at the given
// precision. The returned slice is fully materialized (the alignment needs
// random access and length), and concatenating the units reproduces the
// input exactly. An empty text yields nil.
func Split(text string, precision textdiff.Precision) []string {
	switch precision {
	case textdiff.PrecisionWord:
		return splitWords(text)
	case textdiff.PrecisionLine:
		return splitLines(text)
	default:
		return splitCharacters(text)
	}
}

// splitCharacters splits into Unicode code points. Iterating by rune keeps
// multi-byte sequences intact.
func splitCharacters(text string) []string {
	if text == "" {
		return nil
	}
	units := make([]string, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		units = append(units, string(r))
	}
	return units
}

// splitWords splits into alternating runs of whitespace and non-whitespace.
// Whitespace runs are retained as standalone units so the split round-trips.
func splitWords(text string) []string {
	if text == "" {
		return nil
	}

	var units []string
	start := 0
	inSpace := false
	for i, r := range text {
		isSpace := unicode.IsSpace(r)
		if i == 0 {
			inSpace = isSpace
			continue
		}
		if isSpace != inSpace {
			units = append(units, text[start:i])
			start = i
			inSpace = isSpace
		}
	}
	return append(units, text[start:])
}

// splitLines splits on newlines, retaining each newline as a standalone
// unit. Empty lines produce no content unit, only the newline itself.
func splitLines(text string) []string {
	var units []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		if i > start {
			units = append(units, text[start:i])
		}
		units = append(units, "\n")
		start = i + 1
	}
	if start < len(text) {
		units = append(units, text[start:])
	}
	return units
}
