package grapheme

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Keystrokes splits a burst of typed text into one rune per user-perceived
// character. Clusters made of several runes (combining marks, emoji
// sequences) cannot map to a single key and are dropped.
func Keystrokes(text string) []rune {
	clusters := Split(text)
	out := make([]rune, 0, len(clusters))
	for _, c := range clusters {
		if utf8.RuneCountInString(c) != 1 {
			continue
		}
		r, _ := utf8.DecodeRuneInString(c)
		out = append(out, r)
	}
	return out
}
