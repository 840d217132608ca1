package phoneme

// Syllabify splits a sequence into syllable groups around vowel nuclei.
// Phonemes accumulate into the current syllable; when the current phoneme is
// vowel-like and the next one is too (vowel hiatus), or the sequence ends on
// a vowel, the syllable closes there. Trailing consonants stay attached to
// the preceding nucleus, and the final partial syllable is always emitted.
//
// This is a maximal-vowel-nucleus approximation, not true onset-maximization
// syllabification. It is adequate for chunk-level rhyme comparison and must
// not be used for syllable counting.
func Syllabify(seq Sequence, isVowel func(Phoneme) bool) []Sequence {
	if len(seq) == 0 {
		return nil
	}

	var syllables []Sequence
	var current Sequence

	for i, p := range seq {
		current = append(current, p)
		if !isVowel(p) {
			continue
		}
		if i+1 < len(seq) {
			if isVowel(seq[i+1]) {
				syllables = append(syllables, current)
				current = nil
			}
		} else {
			syllables = append(syllables, current)
			current = nil
		}
	}

	if len(current) > 0 {
		syllables = append(syllables, current)
	}

	return syllables
}
