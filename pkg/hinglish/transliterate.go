package hinglish

import "strings"

// DefaultScheme is the transliteration scheme tried first when an Engine is
// available. ITRANS is the de facto romanization for Hindi lyrics.
const DefaultScheme = "itrans"

// Engine converts a romanized word to Devanagari through a named
// transliteration scheme. Implementations may be backed by scheme tables on
// disk; an error means the engine could not convert this word and the
// caller should fall back.
type Engine interface {
	ToDevanagari(word, scheme string) (string, error)
}

// Transliterator turns romanized Hinglish words into Devanagari. Resolution
// order: curated lexicon, optional Engine, rule-based fallback.
type Transliterator struct {
	engine Engine
	scheme string
}

// NewTransliterator builds a Transliterator. engine may be nil; scheme ""
// selects DefaultScheme.
func NewTransliterator(engine Engine, scheme string) *Transliterator {
	if scheme == "" {
		scheme = DefaultScheme
	}
	return &Transliterator{engine: engine, scheme: scheme}
}

// fallbackRules replace romanized consonant clusters with Devanagari letters,
// longest cluster first so "bh" wins over "b". Vowels are left as Latin
// letters, so the output of the fallback is usually mixed-script.
var fallbackRules = []struct {
	rom string
	dev string
}{
	{"chh", "छ"},
	{"kh", "ख"}, {"gh", "घ"}, {"ch", "च"}, {"jh", "झ"},
	{"th", "थ"}, {"dh", "ध"}, {"ph", "फ"}, {"bh", "भ"},
	{"sh", "श"},
	{"k", "क"}, {"g", "ग"}, {"j", "ज"}, {"t", "त"},
	{"d", "द"}, {"n", "न"}, {"p", "प"}, {"b", "ब"},
	{"m", "म"}, {"y", "य"}, {"r", "र"}, {"l", "ल"},
	{"v", "व"}, {"w", "व"}, {"s", "स"}, {"h", "ह"},
}

// Transliterate converts a romanized word to Devanagari. The second result
// reports whether the output is approximate: false for a lexicon hit or a
// successful Engine conversion, true for the rule-based fallback, whose
// mixed-script output is best-effort rather than a correctness guarantee.
func (t *Transliterator) Transliterate(word string) (string, bool) {
	lower := strings.ToLower(word)

	if deva, ok := lexicon[lower]; ok {
		return deva, false
	}

	if t.engine != nil {
		if deva, err := t.engine.ToDevanagari(word, t.scheme); err == nil {
			return deva, false
		}
	}

	return basicTransliterate(word), true
}

// basicTransliterate applies the fallback rules by sequential global
// replacement in rule order.
func basicTransliterate(word string) string {
	result := word
	for _, rule := range fallbackRules {
		result = strings.ReplaceAll(result, rule.rom, rule.dev)
	}
	return result
}
