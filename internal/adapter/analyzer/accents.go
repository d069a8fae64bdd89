package analyzer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks is the Combining Diacritical Marks block.
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// RemoveAccents decomposes word, drops combining diacritical marks and
// returns the result in composed form. Invalid UTF-8 is returned unchanged.
func RemoveAccents(word string) string {
	if !utf8.ValidString(word) {
		return word
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningMarks)), norm.NFC)
	out, _, err := transform.String(t, word)
	if err != nil {
		return word
	}
	return out
}
