// Package lyrics turns raw lyric text into analysis results: it tokenizes,
// runs the rhyme detector, and layers optional result caching and
// LLM-assisted placement of unknown words on top.
package lyrics

import "strings"

// punctuation lists the characters stripped before splitting. Hyphens and
// apostrophes are removed, not replaced, so "co-sign" and "can't" stay one
// token each.
var punctuation = strings.NewReplacer(
	".", "", ",", "", ":", "", "?", "", "!", "",
	";", "", "-", "", "(", "", ")", "", "'", "",
)

// Tokenize splits lyric text into words, preserving order. Punctuation is
// stripped first; the split is on any run of whitespace, so line breaks
// behave like spaces.
func Tokenize(text string) []string {
	return strings.Fields(punctuation.Replace(text))
}
