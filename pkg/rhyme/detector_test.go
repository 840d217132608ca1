package rhyme

import (
	"reflect"
	"strings"
	"testing"

	"github.com/versemetrics/rhymekit/pkg/phoneme"
	"github.com/versemetrics/rhymekit/pkg/prondict"
)

// testDict is a small CMUdict-format table covering the vocabulary the
// tests exercise.
const testDict = `;;; fixture
cat  K AE1 T
hat  HH AE1 T
bat  B AE1 T
dog  D AO1 G
log  L AO1 G
fog  F AO1 G
car  K AA1 R
star  S T AA1 R
bar  B AA1 R
man  M AE1 N
plan  P L AE1 N
can  K AE1 N
mary  M EH1 R IY0
mack  M AE1 K
scary  S K EH1 R IY0
black  B L AE1 K
attack  AH0 T AE1 K
track  T R AE1 K
back  B AE1 K
pack  P AE1 K
glow  G L OW1
yo  Y OW1
insert  IH0 N S ER1 T
concert  K AA1 N S ER0 T
read  R EH1 D
red  R EH1 D
brick  B R IH1 K
blue  B L UW1
crew  K R UW1
you  Y UW1
`

func testDictionary(t *testing.T) *prondict.Dictionary {
	t.Helper()
	d, err := prondict.Load(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("loading fixture dictionary: %v", err)
	}
	return d
}

func englishDetector(t *testing.T) *Detector {
	t.Helper()
	return New(Config{Dictionary: testDictionary(t)})
}

func multilingualDetector(t *testing.T) *Detector {
	t.Helper()
	return New(Config{Mode: Multilingual, Dictionary: testDictionary(t)})
}

// ============================================================================
// Resolution
// ============================================================================

func TestResolveEnglish(t *testing.T) {
	d := englishDetector(t)

	res := d.Resolve("Cat")
	if res.Outcome != Resolved {
		t.Fatalf("Resolve(Cat) outcome = %v, want resolved", res.Outcome)
	}
	if res.Approximate {
		t.Error("table hit should not be approximate")
	}
	if !reflect.DeepEqual(res.Phonemes, phoneme.Sequence{"K", "AE1", "T"}) {
		t.Errorf("Resolve(Cat) = %v", res.Phonemes)
	}
}

func TestResolveEmptyAndMisses(t *testing.T) {
	d := englishDetector(t)

	res := d.Resolve("")
	if res.Outcome != Skipped || res.SkipReason != "empty" {
		t.Errorf("Resolve(empty) = %+v, want skipped(empty)", res)
	}
	res = d.Resolve("   ")
	if res.Outcome != Skipped {
		t.Errorf("Resolve(blank) outcome = %v, want skipped", res.Outcome)
	}

	res = d.Resolve("xqzzyq")
	if res.Outcome != Unresolved {
		t.Errorf("Resolve(xqzzyq) outcome = %v, want unresolved", res.Outcome)
	}
}

func TestResolveApproximate(t *testing.T) {
	d := englishDetector(t)

	// "bricky" is out of vocabulary and borrows brick's pronunciation.
	res := d.Resolve("bricky")
	if res.Outcome != Resolved {
		t.Fatalf("Resolve(bricky) outcome = %v, want resolved", res.Outcome)
	}
	if !res.Approximate {
		t.Error("borrowed pronunciation must be flagged approximate")
	}

	// The memo must return the identical resolution on repeat lookups.
	again := d.Resolve("BRICKY")
	if !reflect.DeepEqual(res, again) {
		t.Errorf("memoized resolution differs: %+v vs %+v", res, again)
	}
}

func TestResolveDevanagari(t *testing.T) {
	d := multilingualDetector(t)

	res := d.Resolve("भाई")
	if res.Outcome != Resolved {
		t.Fatalf("Resolve(भाई) outcome = %v", res.Outcome)
	}
	want := phoneme.Sequence{"bʰ", "aː", "iː"}
	if !reflect.DeepEqual(res.Phonemes, want) {
		t.Errorf("Resolve(भाई) = %v, want %v", res.Phonemes, want)
	}
	if res.Approximate {
		t.Error("direct Devanagari phonemization is exact")
	}
}

func TestResolveHinglishLexicon(t *testing.T) {
	d := multilingualDetector(t)

	res := d.Resolve("bhai")
	want := phoneme.Sequence{"bʰ", "aː", "iː"}
	if res.Outcome != Resolved || !reflect.DeepEqual(res.Phonemes, want) {
		t.Errorf("Resolve(bhai) = %+v, want %v via lexicon", res, want)
	}
	if res.Approximate {
		t.Error("lexicon transliteration is exact")
	}
}

func TestResolveHinglishFallbackApproximate(t *testing.T) {
	d := multilingualDetector(t)

	// "dhoka" carries the "dh" marker but is not in the lexicon, so it goes
	// through the rule-based fallback; its mixed-script output phonemizes to
	// consonants plus inherent vowels only.
	res := d.Resolve("dhoka")
	if res.Outcome != Resolved {
		t.Fatalf("Resolve(dhoka) outcome = %v", res.Outcome)
	}
	if !res.Approximate {
		t.Error("fallback transliteration must be flagged approximate")
	}
	want := phoneme.Sequence{"dʰ", "ə", "k", "ə"}
	if !reflect.DeepEqual(res.Phonemes, want) {
		t.Errorf("Resolve(dhoka) = %v, want %v", res.Phonemes, want)
	}
}

func TestResolveDoubledConsonantRoutesToFallback(t *testing.T) {
	d := multilingualDetector(t)

	// "attack" is in the dictionary, but its doubled "tt" classifies it as
	// Hinglish-like first, and the fallback path wins over the table.
	res := d.Resolve("attack")
	if res.Outcome != Resolved || !res.Approximate {
		t.Fatalf("Resolve(attack) = %+v, want approximate fallback result", res)
	}
	want := phoneme.Sequence{"t", "ə", "t", "ə", "k", "ə"}
	if !reflect.DeepEqual(res.Phonemes, want) {
		t.Errorf("Resolve(attack) = %v, want %v", res.Phonemes, want)
	}
}

func TestResolveEnglishPathInMultilingual(t *testing.T) {
	d := multilingualDetector(t)

	// "glow" has no Hinglish markers and resolves through the table into
	// the unified alphabet.
	res := d.Resolve("glow")
	if res.Outcome != Resolved {
		t.Fatalf("Resolve(glow) outcome = %v", res.Outcome)
	}
	want := phoneme.Sequence{"g", "l", "oʊ"}
	if !reflect.DeepEqual(res.Phonemes, want) {
		t.Errorf("Resolve(glow) = %v, want %v", res.Phonemes, want)
	}
}

// ============================================================================
// Pair Queries
// ============================================================================

func TestWordsRhyme(t *testing.T) {
	d := englishDetector(t)

	if !d.WordsRhyme("cat", "hat") {
		t.Error("cat/hat should rhyme")
	}
	if d.WordsRhyme("cat", "dog") {
		t.Error("cat/dog should not rhyme")
	}
	if d.WordsRhyme("cat", "xqzzyq") {
		t.Error("unresolvable words never rhyme")
	}

	// Onsets do not matter, only the tail from the last stressed vowel.
	if !d.WordsRhyme("yo", "glow") {
		t.Error("yo/glow should rhyme on OW")
	}
}

func TestWordsRhymeIgnoresStress(t *testing.T) {
	d := englishDetector(t)

	// insert ends ER1 T, concert ends ER0 T; stress digits are stripped
	// before comparison.
	if !d.WordsRhyme("insert", "concert") {
		t.Error("insert/concert should rhyme once stress is stripped")
	}
}

func TestBlacklistBlocksRhymes(t *testing.T) {
	d := englishDetector(t)

	if d.WordsRhyme("can", "man") {
		t.Error("blacklisted words never rhyme")
	}
	if d.WordsRhyme("can", "can") {
		t.Error("blacklisted words do not rhyme with themselves")
	}
	if !d.WordsRhyme("man", "plan") {
		t.Error("man/plan should rhyme")
	}

	// The class-id query ignores the blacklist: it serves color assignment,
	// not highlighting policy.
	if _, ok := d.ClassID("can"); !ok {
		t.Error("ClassID(can) should still resolve")
	}
}

func TestExtendedBlacklist(t *testing.T) {
	base := New(Config{Dictionary: testDictionary(t)})
	extended := New(Config{Dictionary: testDictionary(t), ExtendedBlacklist: true})

	if base.Blacklisted("you") {
		t.Error("default blacklist should not contain 'you'")
	}
	if !extended.Blacklisted("you") {
		t.Error("extended blacklist should contain the stopword 'you'")
	}

	words := []string{"blue", "crew", "you"}
	if got := base.FindClusters(words); len(got) != 1 || len(got[0].Words) != 3 {
		t.Errorf("base clusters = %+v, want one cluster of three", got)
	}
	if got := extended.FindClusters(words); len(got) != 1 || len(got[0].Words) != 2 {
		t.Errorf("extended clusters = %+v, want blue/crew only", got)
	}
}

func TestClassID(t *testing.T) {
	d := englishDetector(t)

	id1, ok := d.ClassID("cat")
	if !ok || id1 != "AE-T" {
		t.Errorf("ClassID(cat) = %q ok=%v, want AE-T", id1, ok)
	}
	id2, _ := d.ClassID("hat")
	if id1 != id2 {
		t.Error("cat and hat must share a class id")
	}
	if _, ok := d.ClassID("xqzzyq"); ok {
		t.Error("unresolvable words have no class id")
	}
}

func TestClassIDUnified(t *testing.T) {
	d := multilingualDetector(t)

	// भाई ends iː, normalized to i.
	id, ok := d.ClassID("भाई")
	if !ok || id != "i" {
		t.Errorf("ClassID(भाई) = %q ok=%v, want i", id, ok)
	}
}
