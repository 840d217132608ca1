// Package devanagari converts Devanagari text into the IPA-ish phoneme
// alphabet used for cross-language rhyme comparison. The conversion favors
// rhyme-relevant fidelity over full phonological accuracy: schwa deletion,
// nasalization marks, and conjunct ligatures are approximated.
package devanagari

import "github.com/versemetrics/rhymekit/pkg/phoneme"

// ============================================================================
// Symbol Tables
// ============================================================================

// vowels maps independent vowels, dependent vowel signs (matras), and the
// virama. The virama maps to the empty phoneme: it emits nothing and its
// presence after a consonant suppresses that consonant's inherent vowel.
var vowels = map[rune]phoneme.Phoneme{
	'अ': "ə", 'आ': "aː", 'इ': "i", 'ई': "iː",
	'उ': "u", 'ऊ': "uː", 'ऋ': "ri", 'ए': "eː",
	'ऐ': "ɛː", 'ओ': "oː", 'औ': "ɔː",
	'ा': "aː", 'ि': "i", 'ी': "iː", 'ु': "u",
	'ू': "uː", 'े': "eː", 'ै': "ɛː", 'ो': "oː",
	'ौ': "ɔː", '्': "",
}

// consonants maps single Devanagari consonants.
var consonants = map[rune]phoneme.Phoneme{
	'क': "k", 'ख': "kʰ", 'ग': "g", 'घ': "gʰ", 'ङ': "ŋ",
	'च': "tʃ", 'छ': "tʃʰ", 'ज': "dʒ", 'झ': "dʒʰ", 'ञ': "ɲ",
	'ट': "ʈ", 'ठ': "ʈʰ", 'ड': "ɖ", 'ढ': "ɖʰ", 'ण': "ɳ",
	'त': "t", 'थ': "tʰ", 'द': "d", 'ध': "dʰ", 'न': "n",
	'प': "p", 'फ': "pʰ", 'ब': "b", 'भ': "bʰ", 'म': "m",
	'य': "j", 'र': "r", 'ल': "l", 'व': "ʋ", 'श': "ʃ",
	'ष': "ʂ", 'स': "s", 'ह': "ɦ", 'ळ': "ɭ",
}

// clusters maps multi-rune consonant spellings, matched through a two-rune
// window. The nukta letters ड़ and ढ़ are the entries that actually match.
// क्ष and ज्ञ are three-rune ligature spellings, kept for inventory
// completeness; in running text they decompose through the virama rule
// instead (क्ष comes out as k ʂ, not kʂ).
var clusters = map[string]phoneme.Phoneme{
	"ड़": "ɽ", "ढ़": "ɽʰ", "क्ष": "kʂ", "ज्ञ": "ɡj",
}

// inherentVowel is the default vowel a bare consonant carries.
const inherentVowel = phoneme.Phoneme("ə")

// ============================================================================
// Conversion
// ============================================================================

// Phonemize converts Devanagari text to a phoneme sequence, scanning code
// points left to right:
//
//  1. a two-rune window matching a known consonant cluster emits its phoneme
//     and consumes both runes;
//  2. a vowel sign, independent vowel, or virama emits its mapped phoneme
//     (the virama emits nothing);
//  3. a plain consonant emits its phoneme followed by the inherent vowel,
//     unless the next rune is a vowel sign, independent vowel, or virama;
//  4. any other rune is skipped and contributes no phoneme.
//
// The scan never stops early; unknown symbols shorten the output rather
// than failing it. Pure function, nil for input with no known symbols.
func Phonemize(text string) phoneme.Sequence {
	runes := []rune(text)
	var seq phoneme.Sequence

	for i := 0; i < len(runes); {
		if i+1 < len(runes) {
			if p, ok := clusters[string(runes[i:i+2])]; ok {
				seq = append(seq, p)
				i += 2
				continue
			}
		}

		r := runes[i]

		if p, ok := vowels[r]; ok {
			if p != "" {
				seq = append(seq, p)
			}
			i++
			continue
		}

		if p, ok := consonants[r]; ok {
			seq = append(seq, p)
			if i+1 < len(runes) {
				if _, followed := vowels[runes[i+1]]; !followed {
					seq = append(seq, inherentVowel)
				}
			} else {
				seq = append(seq, inherentVowel)
			}
			i++
			continue
		}

		i++
	}

	return seq
}
