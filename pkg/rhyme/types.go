package rhyme

import "github.com/versemetrics/rhymekit/pkg/phoneme"

// ============================================================================
// Resolution Types
// ============================================================================

// Outcome tags what happened when a word was resolved to phonemes.
type Outcome int

const (
	// Resolved means a phoneme sequence was produced.
	Resolved Outcome = iota
	// Skipped means the word was excluded by policy before resolution.
	Skipped
	// Unresolved means every resolution path came up empty.
	Unresolved
)

// String returns the outcome name for logs.
func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case Skipped:
		return "skipped"
	default:
		return "unresolved"
	}
}

// Resolution is the full result of resolving one word. Approximate marks
// degraded results: a pronunciation borrowed from a similar dictionary word,
// or phonemes derived through the rule-based transliteration fallback.
type Resolution struct {
	Word        string
	Outcome     Outcome
	Phonemes    phoneme.Sequence
	Approximate bool
	SkipReason  string
}

// ============================================================================
// Cluster Types
// ============================================================================

// Cluster is one rhyme class with at least two members. Words keep their
// original casing and input order. Key is the class identity: the normalized
// rhyme tail joined with "-", equal exactly when the tails are equal.
type Cluster struct {
	Key   string   `json:"key"`
	Words []string `json:"words"`
}

// ============================================================================
// Pattern Types
// ============================================================================

// Position locates one syllable chunk: which word it came from and which
// syllable of that word it is.
type Position struct {
	WordIndex     int `json:"word_index"`
	SyllableIndex int `json:"syllable_index"`
}

// Occurrence is one sliding-window hit of a pattern, carrying the ordered
// positions of the syllables inside the window.
type Occurrence struct {
	Positions []Position `json:"positions"`
}

// Pattern is a repeated multisyllable chunk. ID is an 8-hex display
// identifier derived from the normalized content; grouping uses the full
// content, so an ID collision can only mislabel, never merge groups.
type Pattern struct {
	ID          string           `json:"id"`
	Phonemes    phoneme.Sequence `json:"phonemes"`
	Occurrences []Occurrence     `json:"occurrences"`
}

// ============================================================================
// Extended Output Types
// ============================================================================

// WordSpan points at one word occurrence in the input, with a code-point
// span for highlighting. Spans currently always cover the whole word.
type WordSpan struct {
	Word  string `json:"word"`
	Index int    `json:"index"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// ClusterRecord is the extended-output form of a rhyme group: either a tail
// cluster (cluster_N) or a multisyllable pattern group (multi_XXXXXXXX).
type ClusterRecord struct {
	ClusterID     string     `json:"cluster_id"`
	Multisyllable bool       `json:"is_multisyllable,omitempty"`
	Words         []WordSpan `json:"words"`
}
