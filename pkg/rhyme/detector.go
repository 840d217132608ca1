// Package rhyme groups song-lyric words into rhyme classes by phoneme
// analysis and finds repeated multisyllable patterns across word boundaries.
// It supports English-only analysis over ARPABET pronunciations and
// multilingual analysis (English + Hindi/Hinglish) over a unified IPA-ish
// alphabet.
package rhyme

import (
	"strings"
	"sync"

	"github.com/orsinium-labs/stopwords"

	"github.com/versemetrics/rhymekit/pkg/devanagari"
	"github.com/versemetrics/rhymekit/pkg/hinglish"
	"github.com/versemetrics/rhymekit/pkg/phoneme"
	"github.com/versemetrics/rhymekit/pkg/prondict"
	"github.com/versemetrics/rhymekit/pkg/script"
)

// Mode selects the resolution and comparison strategy as one coherent pair:
// how words become phonemes and which alphabet tails are compared in.
type Mode int

const (
	// EnglishOnly resolves through the pronunciation table and compares
	// stressed ARPABET tails with stress digits stripped.
	EnglishOnly Mode = iota
	// Multilingual routes by script (Devanagari, Hinglish, English) and
	// compares tails in the unified IPA-ish alphabet.
	Multilingual
)

// String returns the mode identifier used in cache keys and CLI flags.
func (m Mode) String() string {
	if m == Multilingual {
		return "multilingual"
	}
	return "english"
}

// defaultBlacklist holds common words that form accidental rhyme classes
// and should never be highlighted.
var defaultBlacklist = []string{"a", "the", "can", "an", "of", "to", "in", "is", "it"}

// DefaultWindowSize is the syllable count of a pattern window.
const DefaultWindowSize = 2

// Config assembles a Detector. The zero value is a working English-only
// detector with an empty dictionary (every lookup misses).
type Config struct {
	// Mode selects English-only or multilingual analysis.
	Mode Mode
	// WindowSize is the syllable window for pattern detection; 0 means
	// DefaultWindowSize.
	WindowSize int
	// Blacklist replaces the default common-word blacklist when non-nil.
	Blacklist []string
	// ExtendedBlacklist additionally excludes standard English stopwords.
	ExtendedBlacklist bool
	// Dictionary is the English pronunciation table; nil behaves as empty.
	Dictionary *prondict.Dictionary
	// Engine optionally backs Hinglish transliteration with a real scheme
	// conversion before the rule-based fallback.
	Engine hinglish.Engine
	// Scheme names the Engine's transliteration scheme; "" means ITRANS.
	Scheme string
}

// Detector is the analysis facade. It memoizes resolutions per word, so one
// Detector should be reused across calls; all methods are safe for
// concurrent use.
type Detector struct {
	mode        Mode
	windowSize  int
	blacklist   map[string]bool
	stopwordsEN *stopwords.Stopwords
	dict        *prondict.Dictionary
	translit    *hinglish.Transliterator

	mu   sync.RWMutex
	memo map[string]Resolution
}

// New builds a Detector from cfg.
func New(cfg Config) *Detector {
	d := &Detector{
		mode:       cfg.Mode,
		windowSize: cfg.WindowSize,
		blacklist:  make(map[string]bool),
		dict:       cfg.Dictionary,
		translit:   hinglish.NewTransliterator(cfg.Engine, cfg.Scheme),
		memo:       make(map[string]Resolution),
	}
	if d.windowSize <= 0 {
		d.windowSize = DefaultWindowSize
	}
	if d.dict == nil {
		d.dict = prondict.New()
	}

	words := cfg.Blacklist
	if words == nil {
		words = defaultBlacklist
	}
	for _, w := range words {
		d.blacklist[strings.ToLower(w)] = true
	}
	if cfg.ExtendedBlacklist {
		d.stopwordsEN = stopwords.MustGet("en")
	}

	return d
}

// Mode returns the detector's analysis mode.
func (d *Detector) Mode() Mode {
	return d.mode
}

// Blacklisted reports whether a word is excluded from clustering by the
// common-word policy.
func (d *Detector) Blacklisted(word string) bool {
	lower := strings.ToLower(word)
	if d.blacklist[lower] {
		return true
	}
	return d.stopwordsEN != nil && d.stopwordsEN.Contains(lower)
}

// ============================================================================
// Resolution
// ============================================================================

// Resolve maps a word to phonemes under the detector's mode. Results are
// memoized by lower-cased trimmed form and immutable once written; the empty
// word is Skipped and never cached.
func (d *Detector) Resolve(word string) Resolution {
	key := strings.ToLower(strings.TrimSpace(word))
	if key == "" {
		return Resolution{Word: key, Outcome: Skipped, SkipReason: "empty"}
	}

	d.mu.RLock()
	res, ok := d.memo[key]
	d.mu.RUnlock()
	if ok {
		return res
	}

	res = d.resolve(key)

	d.mu.Lock()
	if prior, ok := d.memo[key]; ok {
		res = prior
	} else {
		d.memo[key] = res
	}
	d.mu.Unlock()

	return res
}

func (d *Detector) resolve(key string) Resolution {
	if d.mode == EnglishOnly {
		return d.resolveEnglish(key, false)
	}

	switch script.Classify(key) {
	case script.Devanagari:
		if seq := devanagari.Phonemize(key); len(seq) > 0 {
			return Resolution{Word: key, Outcome: Resolved, Phonemes: seq}
		}
		return Resolution{Word: key, Outcome: Unresolved}

	case script.Latin:
		if hinglish.LooksLikeHinglish(key) {
			deva, approx := d.translit.Transliterate(key)
			if seq := devanagari.Phonemize(deva); len(seq) > 0 {
				return Resolution{Word: key, Outcome: Resolved, Phonemes: seq, Approximate: approx}
			}
		}
		return d.resolveEnglish(key, true)

	default:
		// Mixed or unknown script: the pronunciation table is the last
		// resort before giving up.
		return d.resolveEnglish(key, true)
	}
}

func (d *Detector) resolveEnglish(key string, unify bool) Resolution {
	seq, approx, ok := d.dict.Resolve(key)
	if !ok {
		return Resolution{Word: key, Outcome: Unresolved}
	}
	if unify {
		seq = phoneme.UnifyARPABET(seq)
	}
	return Resolution{Word: key, Outcome: Resolved, Phonemes: seq, Approximate: approx}
}

// ============================================================================
// Mode Strategies
// ============================================================================

// isVowel returns the vowel predicate of the mode's alphabet.
func (d *Detector) isVowel(p phoneme.Phoneme) bool {
	if d.mode == EnglishOnly {
		return phoneme.IsARPABETVowel(p)
	}
	return phoneme.IsUnifiedVowel(p)
}

// Tail extracts the rhyme tail of a resolved sequence: from the last salient
// vowel to the end. English mode prefers the last stress-marked symbol and
// falls back to the last vowel-like symbol; unified mode uses the last
// vowel-like symbol. A sequence with no vowel at all is its own tail.
func (d *Detector) Tail(seq phoneme.Sequence) phoneme.Sequence {
	if len(seq) == 0 {
		return nil
	}

	if d.mode == EnglishOnly {
		for i := len(seq) - 1; i >= 0; i-- {
			if phoneme.HasStress(seq[i]) {
				return seq[i:]
			}
		}
	}
	for i := len(seq) - 1; i >= 0; i-- {
		if d.isVowel(seq[i]) {
			return seq[i:]
		}
	}
	return seq
}

// Normalize maps a tail into its comparison form: stress digits stripped in
// English mode, length/aspiration marks dropped and affricates rewritten in
// multilingual mode. Idempotent in both modes.
func (d *Detector) Normalize(seq phoneme.Sequence) phoneme.Sequence {
	if d.mode == EnglishOnly {
		return phoneme.NormalizeStress(seq)
	}
	return phoneme.NormalizeUnified(seq)
}

// classKey is the joined normalized tail: two words are in the same rhyme
// class exactly when their keys are equal.
func (d *Detector) classKey(seq phoneme.Sequence) string {
	return d.Normalize(d.Tail(seq)).Join("-")
}

// ============================================================================
// Word-Pair and Single-Word Queries
// ============================================================================

// WordsRhyme reports whether two words share a rhyme class. Blacklisted
// words never rhyme, not even with themselves.
func (d *Detector) WordsRhyme(word1, word2 string) bool {
	if d.Blacklisted(word1) || d.Blacklisted(word2) {
		return false
	}

	res1 := d.Resolve(word1)
	res2 := d.Resolve(word2)
	if res1.Outcome != Resolved || res2.Outcome != Resolved {
		return false
	}

	return d.classKey(res1.Phonemes) == d.classKey(res2.Phonemes)
}

// ClassID returns the rhyme-class key for a word, for callers that assign
// stable colors to classes. The blacklist does not apply here; ok is false
// only when the word cannot be resolved.
func (d *Detector) ClassID(word string) (string, bool) {
	res := d.Resolve(word)
	if res.Outcome != Resolved {
		return "", false
	}
	return d.classKey(res.Phonemes), true
}
