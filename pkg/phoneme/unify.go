package phoneme

import "strings"

// arpabetToIPA projects stress-stripped ARPABET codes into the unified
// IPA-ish alphabet. Devanagari-derived symbols are already in this alphabet
// and never pass through the table.
var arpabetToIPA = map[Phoneme]Phoneme{
	// Vowels
	"AA": "ɑ", "AE": "æ", "AH": "ʌ", "AO": "ɔ", "AW": "aʊ",
	"AY": "aɪ", "EH": "ɛ", "ER": "ɜr", "EY": "eɪ", "IH": "ɪ",
	"IY": "i", "OW": "oʊ", "OY": "ɔɪ", "UH": "ʊ", "UW": "u",
	// Consonants
	"B": "b", "CH": "tʃ", "D": "d", "DH": "ð", "F": "f",
	"G": "g", "HH": "h", "JH": "dʒ", "K": "k", "L": "l",
	"M": "m", "N": "n", "NG": "ŋ", "P": "p", "R": "r",
	"S": "s", "SH": "ʃ", "T": "t", "TH": "θ", "V": "v",
	"W": "w", "Y": "j", "Z": "z", "ZH": "ʒ",
}

// UnifyARPABET maps an ARPABET sequence into the unified alphabet. Stress
// digits are dropped; symbols missing from the table pass through
// lower-cased so that a malformed input still yields a comparable sequence.
func UnifyARPABET(seq Sequence) Sequence {
	unified := make(Sequence, 0, len(seq))
	for _, p := range seq {
		clean := StripStress(p)
		if ipa, ok := arpabetToIPA[clean]; ok {
			unified = append(unified, ipa)
			continue
		}
		unified = append(unified, Phoneme(strings.ToLower(string(clean))))
	}
	return unified
}

// NormalizeStress strips stress digits from every symbol and nothing else.
// It is the comparison normalization for sequences still in ARPABET form,
// so that differing stress patterns still rhyme. Idempotent.
func NormalizeStress(seq Sequence) Sequence {
	normalized := make(Sequence, 0, len(seq))
	for _, p := range seq {
		normalized = append(normalized, StripStress(p))
	}
	return normalized
}

// NormalizeUnified applies the alphabet-agnostic comparison normalization:
// vowel-length marks and aspiration marks are dropped, and the affricates
// tʃ/dʒ collapse to the two-letter spellings ch/j. The aspiration mark must
// be removed before the affricate rewrite so that tʃʰ lands on ch. Idempotent:
// normalized output contains none of the rewritten characters.
func NormalizeUnified(seq Sequence) Sequence {
	normalized := make(Sequence, 0, len(seq))
	for _, p := range seq {
		s := string(p)
		s = strings.ReplaceAll(s, "ː", "")
		s = strings.ReplaceAll(s, "ʰ", "")
		s = strings.ReplaceAll(s, "tʃ", "ch")
		s = strings.ReplaceAll(s, "dʒ", "j")
		normalized = append(normalized, Phoneme(s))
	}
	return normalized
}
