package phoneme

import (
	"reflect"
	"testing"
)

func TestStressHelpers(t *testing.T) {
	if !HasStress("AE1") {
		t.Error("AE1 should have stress")
	}
	if !HasStress("IY0") {
		t.Error("IY0 should have stress")
	}
	if HasStress("K") {
		t.Error("K should not have stress")
	}
	if HasStress("") {
		t.Error("empty symbol should not have stress")
	}

	if got := StripStress("AE1"); got != "AE" {
		t.Errorf("StripStress(AE1) = %s, want AE", got)
	}
	if got := StripStress("ER2"); got != "ER" {
		t.Errorf("StripStress(ER2) = %s, want ER", got)
	}
	// No digit means no change.
	if got := StripStress("NG"); got != "NG" {
		t.Errorf("StripStress(NG) = %s, want NG", got)
	}
}

func TestVowelPredicates(t *testing.T) {
	for _, p := range []Phoneme{"AA1", "AE", "EH2", "IY0", "OW", "UH1", "ER0"} {
		if !IsARPABETVowel(p) {
			t.Errorf("%s should be an ARPABET vowel", p)
		}
	}
	for _, p := range []Phoneme{"K", "T", "NG", "ZH", "HH", "R"} {
		if IsARPABETVowel(p) {
			t.Errorf("%s should not be an ARPABET vowel", p)
		}
	}

	for _, p := range []Phoneme{"a", "aː", "æ", "ə", "ɜr", "oʊ", "bʰaː"} {
		if !IsUnifiedVowel(p) {
			t.Errorf("%s should count as unified vowel", p)
		}
	}
	for _, p := range []Phoneme{"k", "tʃ", "ʰ", "ŋ", "ɽ", ""} {
		if IsUnifiedVowel(p) {
			t.Errorf("%s should not count as unified vowel", p)
		}
	}
}

func TestSequenceRoundTrip(t *testing.T) {
	ss := []string{"K", "AE1", "T"}
	seq := FromStrings(ss)
	if !reflect.DeepEqual(seq.Strings(), ss) {
		t.Errorf("round trip got %v, want %v", seq.Strings(), ss)
	}

	clone := seq.Clone()
	clone[0] = "B"
	if seq[0] != "K" {
		t.Error("Clone should not share backing storage")
	}
}

func TestJoin(t *testing.T) {
	seq := Sequence{"AE", "T"}
	if got := seq.Join("-"); got != "AE-T" {
		t.Errorf("Join = %s, want AE-T", got)
	}
	if got := (Sequence{}).Join("-"); got != "" {
		t.Errorf("Join of empty = %q, want empty", got)
	}
	// Hyphen joining must stay injective: distinct sequences with the same
	// concatenation disagree once separated.
	a := Sequence{"ab", "c"}.Join("-")
	b := Sequence{"a", "bc"}.Join("-")
	if a == b {
		t.Errorf("Join should distinguish ab+c from a+bc, both = %s", a)
	}
}

func TestUnifyARPABET(t *testing.T) {
	got := UnifyARPABET(Sequence{"K", "AE1", "T"})
	want := Sequence{"k", "æ", "t"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnifyARPABET(K AE1 T) = %v, want %v", got, want)
	}

	got = UnifyARPABET(Sequence{"CH", "EH1", "R", "IY0"})
	want = Sequence{"tʃ", "ɛ", "r", "i"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnifyARPABET(CH EH1 R IY0) = %v, want %v", got, want)
	}

	// Unknown symbols pass through lower-cased instead of vanishing.
	got = UnifyARPABET(Sequence{"QX1", "T"})
	want = Sequence{"qx", "t"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnifyARPABET(QX1 T) = %v, want %v", got, want)
	}
}

func TestNormalizeStress(t *testing.T) {
	got := NormalizeStress(Sequence{"S", "T", "AA1", "R"})
	want := Sequence{"S", "T", "AA", "R"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeStress = %v, want %v", got, want)
	}

	// Idempotent.
	again := NormalizeStress(got)
	if !reflect.DeepEqual(again, got) {
		t.Errorf("NormalizeStress not idempotent: %v then %v", got, again)
	}
}

func TestNormalizeUnified(t *testing.T) {
	got := NormalizeUnified(Sequence{"bʰ", "aː", "iː"})
	want := Sequence{"b", "a", "i"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeUnified(bʰ aː iː) = %v, want %v", got, want)
	}

	got = NormalizeUnified(Sequence{"tʃ", "dʒ"})
	want = Sequence{"ch", "j"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeUnified(tʃ dʒ) = %v, want %v", got, want)
	}

	// An aspirated affricate must land on the plain two-letter spelling,
	// which requires the aspiration strip to run before the rewrite.
	got = NormalizeUnified(Sequence{"tʃʰ", "dʒʰ"})
	want = Sequence{"ch", "j"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeUnified(tʃʰ dʒʰ) = %v, want %v", got, want)
	}
}

func TestNormalizeUnifiedIdempotent(t *testing.T) {
	in := Sequence{"tʃʰ", "aː", "ɽ", "dʒ", "iː", "ch"}
	once := NormalizeUnified(in)
	twice := NormalizeUnified(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("NormalizeUnified not idempotent: %v then %v", once, twice)
	}
}

func TestSyllabifySingleNucleusRun(t *testing.T) {
	// No vowel hiatus anywhere, so the whole word stays one chunk even with
	// two nuclei inside it.
	syls := Syllabify(Sequence{"M", "EH1", "R", "IY0"}, IsARPABETVowel)
	if len(syls) != 1 {
		t.Fatalf("Syllabify(M EH1 R IY0) got %d chunks, want 1", len(syls))
	}
	if !reflect.DeepEqual(syls[0], Sequence{"M", "EH1", "R", "IY0"}) {
		t.Errorf("chunk = %v", syls[0])
	}
}

func TestSyllabifyHiatusSplits(t *testing.T) {
	// IY0 directly before EY1 is the only boundary.
	syls := Syllabify(Sequence{"K", "R", "IY0", "EY1", "T"}, IsARPABETVowel)
	if len(syls) != 2 {
		t.Fatalf("Syllabify(K R IY0 EY1 T) got %d chunks, want 2", len(syls))
	}
	if !reflect.DeepEqual(syls[0], Sequence{"K", "R", "IY0"}) {
		t.Errorf("first chunk = %v, want K R IY0", syls[0])
	}
	if !reflect.DeepEqual(syls[1], Sequence{"EY1", "T"}) {
		t.Errorf("second chunk = %v, want EY1 T", syls[1])
	}
}

func TestSyllabifyFinalVowelCloses(t *testing.T) {
	syls := Syllabify(Sequence{"G", "OW1"}, IsARPABETVowel)
	if len(syls) != 1 {
		t.Fatalf("got %d chunks, want 1", len(syls))
	}

	// A vowel-final close followed by more phonemes emits the remainder as a
	// trailing partial chunk.
	syls = Syllabify(Sequence{"S", "OW1", "AH0", "Z"}, IsARPABETVowel)
	if len(syls) != 2 {
		t.Fatalf("Syllabify(S OW1 AH0 Z) got %d chunks, want 2", len(syls))
	}
	if !reflect.DeepEqual(syls[1], Sequence{"AH0", "Z"}) {
		t.Errorf("second chunk = %v, want AH0 Z", syls[1])
	}
}

func TestSyllabifyNoVowels(t *testing.T) {
	// A vowelless sequence comes back whole rather than vanishing.
	syls := Syllabify(Sequence{"HH", "M"}, IsARPABETVowel)
	if len(syls) != 1 {
		t.Fatalf("got %d chunks, want 1", len(syls))
	}
	if !reflect.DeepEqual(syls[0], Sequence{"HH", "M"}) {
		t.Errorf("chunk = %v, want HH M", syls[0])
	}
}

func TestSyllabifyEmpty(t *testing.T) {
	if syls := Syllabify(nil, IsARPABETVowel); syls != nil {
		t.Errorf("Syllabify(nil) = %v, want nil", syls)
	}
}

func TestSyllabifyUnifiedAlphabet(t *testing.T) {
	// Devanagari-derived symbols use the unified vowel predicate.
	syls := Syllabify(Sequence{"bʰ", "aː", "iː"}, IsUnifiedVowel)
	if len(syls) != 2 {
		t.Fatalf("Syllabify(bʰ aː iː) got %d chunks, want 2", len(syls))
	}
	if !reflect.DeepEqual(syls[0], Sequence{"bʰ", "aː"}) {
		t.Errorf("first chunk = %v, want bʰ aː", syls[0])
	}
	if !reflect.DeepEqual(syls[1], Sequence{"iː"}) {
		t.Errorf("second chunk = %v, want iː", syls[1])
	}
}
