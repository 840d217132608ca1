// Package prondict loads a CMUdict-format pronunciation table and resolves
// English tokens to ARPABET phoneme sequences, with spelling-normalization
// and prefix-similarity fallbacks for out-of-vocabulary words.
package prondict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/derekparker/trie/v3"

	"github.com/versemetrics/rhymekit/pkg/phoneme"
)

// Dictionary is a read-only pronunciation table: lower-cased word → ARPABET
// pronunciation variants in table order. It is immutable after Load and safe
// for concurrent use.
type Dictionary struct {
	entries map[string][]phoneme.Sequence
	index   *trie.Trie[struct{}]
}

// New returns an empty dictionary. Every lookup misses; Resolve always
// reports not-ok.
func New() *Dictionary {
	return &Dictionary{
		entries: make(map[string][]phoneme.Sequence),
		index:   trie.New[struct{}](),
	}
}

// Load parses a CMUdict-format stream: one entry per line, headword followed
// by whitespace-separated ARPABET symbols, variant headwords spelled
// WORD(1), WORD(2), and comment lines starting with ";;;". Variants keep
// file order, so the first listed pronunciation of a word stays variant 0.
func Load(r io.Reader) (*Dictionary, error) {
	d := New()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("prondict: line %d: headword %q has no phonemes", lineNo, fields[0])
		}

		word := normalizeHeadword(fields[0])
		seq := phoneme.FromStrings(fields[1:])

		if _, seen := d.entries[word]; !seen {
			d.index.Add(word, struct{}{})
		}
		d.entries[word] = append(d.entries[word], seq)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prondict: failed to read dictionary: %w", err)
	}

	return d, nil
}

// LoadFile opens and parses a CMUdict-format file.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("prondict: failed to open dictionary: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// normalizeHeadword lower-cases the headword and strips a trailing variant
// marker like "(1)". A leading parenthesis is part of the word (CMUdict has
// punctuation entries), so only an interior "(" counts.
func normalizeHeadword(head string) string {
	if idx := strings.IndexByte(head, '('); idx > 0 && strings.HasSuffix(head, ")") {
		head = head[:idx]
	}
	return strings.ToLower(head)
}

// Len reports the number of distinct headwords.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Lookup returns the first pronunciation variant of a lower-cased word.
func (d *Dictionary) Lookup(word string) (phoneme.Sequence, bool) {
	variants, ok := d.entries[word]
	if !ok {
		return nil, false
	}
	return variants[0], true
}

// Variants returns every pronunciation variant of a lower-cased word in
// table order, or nil.
func (d *Dictionary) Variants(word string) []phoneme.Sequence {
	return d.entries[word]
}
