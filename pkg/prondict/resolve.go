package prondict

import (
	"strings"
	"unicode/utf8"

	"github.com/versemetrics/rhymekit/pkg/phoneme"
)

// Resolve maps a token to an ARPABET sequence. The approximate result
// reports whether the pronunciation came from a similar word rather than the
// token itself; ok is false when nothing usable was found.
//
// Resolution order:
//  1. exact lookup of the lower-cased token;
//  2. collapse any run of 3+ identical characters to one ("yooooo" → "yo")
//     and retry, still exact;
//  3. for collapsed tokens of length ≥2, find dictionary words sharing the
//     token's first 2–3 characters whose length is within 2 of the token's,
//     and use the lexicographically smallest such word's pronunciation as an
//     approximation.
func (d *Dictionary) Resolve(token string) (phoneme.Sequence, bool, bool) {
	lower := strings.ToLower(token)
	if seq, ok := d.Lookup(lower); ok {
		return seq, false, true
	}

	collapsed := collapseRuns(lower)
	if collapsed != lower {
		if seq, ok := d.Lookup(collapsed); ok {
			return seq, false, true
		}
	}

	runes := []rune(collapsed)
	if len(runes) < 2 {
		return nil, false, false
	}

	prefix := collapsed
	if len(runes) >= 3 {
		prefix = string(runes[:3])
	}

	// The trie bounds the candidate scan to the matching-prefix subset. Its
	// result order is unspecified, so the smallest candidate wins to keep
	// resolution deterministic.
	best := ""
	for _, w := range d.index.PrefixSearch(prefix) {
		diff := utf8.RuneCountInString(w) - len(runes)
		if diff < -2 || diff > 2 {
			continue
		}
		if best == "" || w < best {
			best = w
		}
	}
	if best == "" {
		return nil, false, false
	}

	seq, _ := d.Lookup(best)
	return seq, true, true
}

// collapseRuns shrinks every run of 3 or more identical characters down to a
// single character, leaving doubled characters alone ("www" → "w", "ss" →
// "ss"). This normalizes stylized elongation in lyrics.
func collapseRuns(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if j-i >= 3 {
			b.WriteRune(runes[i])
		} else {
			for k := i; k < j; k++ {
				b.WriteRune(runes[i])
			}
		}
		i = j
	}

	return b.String()
}
