// Package script classifies tokens by writing system so the resolution
// pipeline can route each word to the right phonemizer.
package script

// Kind is the writing-system class of a token.
type Kind int

const (
	// Other covers empty tokens and tokens in neither script, e.g. pure
	// punctuation, digits, or non-Latin non-Devanagari text.
	Other Kind = iota
	// Latin means the token is fully representable in 7-bit ASCII and
	// contains at least one ASCII letter.
	Latin
	// Devanagari means the token contains Devanagari code points and no
	// ASCII letters.
	Devanagari
	// Mixed means Devanagari code points and ASCII letters both occur,
	// which is what best-effort transliteration output looks like.
	Mixed
)

// String returns the class name for logs and skip reasons.
func (k Kind) String() string {
	switch k {
	case Latin:
		return "latin"
	case Devanagari:
		return "devanagari"
	case Mixed:
		return "mixed"
	default:
		return "other"
	}
}

// devanagariStart and devanagariEnd bound the Devanagari Unicode block.
const (
	devanagariStart = 0x0900
	devanagariEnd   = 0x097F
)

// IsDevanagariRune reports whether r falls in the Devanagari block.
func IsDevanagariRune(r rune) bool {
	return r >= devanagariStart && r <= devanagariEnd
}

// ContainsDevanagari reports whether any code point of s is Devanagari.
func ContainsDevanagari(s string) bool {
	for _, r := range s {
		if IsDevanagariRune(r) {
			return true
		}
	}
	return false
}

// Classify reports the writing-system class of a token. ASCII digits and
// punctuation are carried by either script and never decide the class on
// their own, so "123" and "..." come back Other. Classification only looks
// at code points; it never allocates and has no side effects.
func Classify(token string) Kind {
	var hasDevanagari, hasLetter, hasOther bool
	for _, r := range token {
		switch {
		case IsDevanagariRune(r):
			hasDevanagari = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		case r < 0x80:
			// ASCII digit or punctuation, neutral.
		default:
			hasOther = true
		}
	}

	switch {
	case hasDevanagari && hasLetter:
		return Mixed
	case hasDevanagari:
		return Devanagari
	case hasOther:
		return Other
	case hasLetter:
		return Latin
	default:
		return Other
	}
}
