// Package hinglish detects romanized Hindi words in Latin-script lyrics and
// transliterates them to Devanagari for phonemization. Detection is a
// high-recall, low-precision heuristic: English words containing the marker
// substrings ("cheese", "book") classify as Hinglish-like, and downstream
// resolution is expected to tolerate that.
package hinglish

import (
	"fmt"
	"strings"

	"github.com/coregx/ahocorasick"
)

// ============================================================================
// Curated Lexicon
// ============================================================================

// lexicon maps common romanized Hindi/Hinglish words to their exact
// Devanagari spellings. Includes a few English loanwords that show up
// Devanagari-spelled in Desi hip-hop lyrics.
var lexicon = map[string]string{
	"bhai":    "भाई",
	"yaar":    "यार",
	"tera":    "तेरा",
	"mera":    "मेरा",
	"kya":     "क्या",
	"hai":     "है",
	"hoon":    "हूं",
	"nahi":    "नहीं",
	"koi":     "कोई",
	"dil":     "दिल",
	"pyar":    "प्यार",
	"jaan":    "जान",
	"aaj":     "आज",
	"kal":     "कल",
	"raat":    "रात",
	"din":     "दिन",
	"kala":    "काला",
	"galla":   "गल्ला",
	"bakchod": "बकचोद",
	"dhadkan": "धड़कन",
	"gaadi":   "गाड़ी",
	"paisa":   "पैसा",
	"chora":   "छोरा",
	"kaam":    "काम",
	"naam":    "नाम",
	"shaam":   "शाम",
	"jaga":    "जगह",
	"sach":    "सच",
	"jhoot":   "झूठ",
	"dost":    "दोस्त",
	"flow":    "फ्लो",
	"game":    "गेम",
	"boss":    "बॉस",
}

// ============================================================================
// Heuristic Markers
// ============================================================================

// markers are substrings characteristic of romanized Hindi: long-vowel
// digraphs, aspirated consonants, sibilants, nasals, and र combinations.
var markers = []string{
	"aa", "ii", "uu", "ee", "oo",
	"kh", "gh", "ch", "chh", "jh", "th", "dh", "ph", "bh",
	"sh", "zh",
	"ng", "ny",
	"ri", "ru",
}

// consonantLetters feed the doubled-consonant markers (bb, cc, ..., zz),
// another common Hinglish spelling trait.
const consonantLetters = "bcdfghjklmnpqrstvwxyz"

// heuristic holds every marker in a single automaton, built once at package
// load. The pattern set is fixed, so a build failure is a programming error.
var heuristic = buildHeuristic()

func buildHeuristic() *ahocorasick.Automaton {
	patterns := make([]string, 0, len(markers)+len(consonantLetters))
	patterns = append(patterns, markers...)
	for _, c := range consonantLetters {
		patterns = append(patterns, string(c)+string(c))
	}

	automaton, err := ahocorasick.NewBuilder().
		AddStrings(patterns).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		panic(fmt.Sprintf("hinglish: building heuristic automaton: %v", err))
	}
	return automaton
}

// LooksLikeHinglish reports whether a Latin-script word looks like romanized
// Hindi: either a curated lexicon hit or any heuristic marker occurring in
// the lower-cased word.
func LooksLikeHinglish(word string) bool {
	lower := strings.ToLower(word)
	if _, ok := lexicon[lower]; ok {
		return true
	}
	return len(heuristic.FindAllOverlapping([]byte(lower))) > 0
}
