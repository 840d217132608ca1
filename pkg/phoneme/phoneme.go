// Package phoneme defines the phoneme representation shared by every analysis
// stage: ARPABET-style symbols with optional trailing stress digits, IPA-ish
// symbols produced from Devanagari, and the unified comparison alphabet both
// are projected into.
//
// Known limitations: symbols are plain strings, not validated against a fixed
// inventory; callers that invent symbols get pass-through behavior from the
// unifier rather than an error.
package phoneme

import "strings"

// Phoneme is a single phonetic symbol. ARPABET symbols may carry a trailing
// stress digit (0/1/2); IPA-ish symbols may carry a length mark (ː) or an
// aspiration mark (ʰ) before normalization.
type Phoneme string

// Sequence is an ordered phoneme list. A produced sequence is never empty;
// absence of a pronunciation is reported as an unresolved outcome upstream,
// not as an empty Sequence.
type Sequence []Phoneme

// FromStrings converts a plain string slice into a Sequence.
func FromStrings(ss []string) Sequence {
	seq := make(Sequence, len(ss))
	for i, s := range ss {
		seq[i] = Phoneme(s)
	}
	return seq
}

// Strings converts the sequence back to a plain string slice.
func (s Sequence) Strings() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = string(p)
	}
	return out
}

// Join concatenates the symbols with sep. With sep = "-" the result is an
// injective encoding of the sequence: no symbol in any of the fixed tables
// contains a hyphen, so equal strings imply equal sequences.
func (s Sequence) Join(sep string) string {
	var b strings.Builder
	for i, p := range s {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(string(p))
	}
	return b.String()
}

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// HasStress reports whether the symbol ends in a stress digit.
func HasStress(p Phoneme) bool {
	if len(p) == 0 {
		return false
	}
	switch p[len(p)-1] {
	case '0', '1', '2':
		return true
	}
	return false
}

// StripStress removes a single trailing stress digit, if present.
func StripStress(p Phoneme) Phoneme {
	if HasStress(p) {
		return p[:len(p)-1]
	}
	return p
}

// IsARPABETVowel reports whether an ARPABET-style symbol is vowel-like.
// Every ARPABET vowel code contains one of A E I O U; no consonant code does.
func IsARPABETVowel(p Phoneme) bool {
	return strings.ContainsAny(string(p), "AEIOU")
}

// unifiedVowels is the IPA-ish vowel inventory used for tail extraction and
// syllable nuclei after unification.
const unifiedVowels = "aeiouæɑɔɛɪʊʌəɜ"

// IsUnifiedVowel reports whether a unified symbol contains a vowel character.
func IsUnifiedVowel(p Phoneme) bool {
	return strings.ContainsAny(string(p), unifiedVowels)
}
