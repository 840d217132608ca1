package rhyme

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/versemetrics/rhymekit/pkg/phoneme"
	"github.com/versemetrics/rhymekit/pkg/pool"
)

// syllableRef is one syllable chunk in the flattened lyric stream.
type syllableRef struct {
	syllable phoneme.Sequence
	word     int
	index    int
}

// FindPatterns finds repeated multisyllable chunks: a sliding window of
// WindowSize syllables moves across word boundaries, each window is reduced
// to its normalized rhyme content, and windows with equal content form a
// pattern. Patterns with at least two occurrences are returned in
// first-appearance order.
//
// A window's content is the concatenation of each syllable's rhyme core
// (from its first vowel-like phoneme to its end), so "Mary Mack" and
// "scary black" collide on EH-R-IY-AE-K even though their onsets differ.
// The blacklist does not apply here; every resolvable word contributes
// syllables.
func (d *Detector) FindPatterns(words []string) []Pattern {
	var flat []syllableRef
	for wi, word := range words {
		res := d.Resolve(word)
		if res.Outcome != Resolved {
			continue
		}
		for si, syl := range phoneme.Syllabify(res.Phonemes, d.isVowel) {
			flat = append(flat, syllableRef{syllable: syl, word: wi, index: si})
		}
	}
	if len(flat) < d.windowSize {
		return nil
	}

	byKey := make(map[string]int)
	var groups []Pattern

	for i := 0; i+d.windowSize <= len(flat); i++ {
		scratch := pool.GetSequence()
		positions := make([]Position, 0, d.windowSize)

		for _, ref := range flat[i : i+d.windowSize] {
			scratch = append(scratch, syllableCore(ref.syllable, d.isVowel)...)
			positions = append(positions, Position{WordIndex: ref.word, SyllableIndex: ref.index})
		}

		normalized := d.Normalize(scratch)
		pool.PutSequence(scratch)
		key := normalized.Join("-")

		idx, ok := byKey[key]
		if !ok {
			idx = len(groups)
			byKey[key] = idx
			groups = append(groups, Pattern{
				ID:       displayID(key),
				Phonemes: normalized,
			})
		}
		groups[idx].Occurrences = append(groups[idx].Occurrences, Occurrence{Positions: positions})
	}

	patterns := make([]Pattern, 0, len(groups))
	for _, g := range groups {
		if len(g.Occurrences) >= 2 {
			patterns = append(patterns, g)
		}
	}
	return patterns
}

// syllableCore is the rhyme-relevant part of one syllable: everything from
// its first vowel-like phoneme onward. A vowelless syllable is its own core.
func syllableCore(syl phoneme.Sequence, isVowel func(phoneme.Phoneme) bool) phoneme.Sequence {
	for i, p := range syl {
		if isVowel(p) {
			return syl[i:]
		}
	}
	return syl
}

// displayID derives the short pattern identifier shown in output. Grouping
// never uses it, so a collision cannot merge two patterns.
func displayID(key string) string {
	sum := blake3.Sum256([]byte(key))
	return hex.EncodeToString(sum[:4])
}
