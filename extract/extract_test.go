package extract

import (
	"testing"

	"github.com/revelaction/relex/freq"
	sent "github.com/revelaction/relex/sentence"
)

func TestOptionsValidate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatalf("expected default options to be valid, got %v", err)
	}

	bad := []Options{
		{HeadBase: 2, NounTags: NounStrict, Lowercase: LowerAmod},
		{HeadBase: 1, NounTags: "loose", Lowercase: LowerAmod},
		{HeadBase: 1, NounTags: NounStrict, Lowercase: "upper"},
	}
	for _, o := range bad {
		if err := o.Validate(); err == nil {
			t.Errorf("expected error for %+v", o)
		}
	}
}

// Scenario A
func TestAmodBigDog(t *testing.T) {
	s := sent.Sentence{Tokens: []sent.Token{
		{Id: 1, Lemma: "big", Pos: sent.PosAdj, Dep: sent.DepAmod, Head: 2},
		{Id: 2, Lemma: "dog", Pos: sent.PosNoun, Dep: "root", Head: 0},
	}}

	tb := freq.New[Bigram]()
	out := NewAmod(DefaultOptions()).Extract(s, tb)

	if out.Emitted != 1 {
		t.Fatalf("expected 1 emission, got %d", out.Emitted)
	}
	if n := tb.Count(Bigram{"big", "dog"}); n != 1 {
		t.Errorf("expected (big, dog)=1, got %d", n)
	}
}

func TestAmodSkips(t *testing.T) {
	tests := []struct {
		name   string
		tokens []sent.Token
	}{
		{"head is verb", []sent.Token{
			{Id: 1, Lemma: "quick", Pos: sent.PosAdj, Dep: sent.DepAmod, Head: 2},
			{Id: 2, Lemma: "run", Pos: sent.PosVerb, Dep: "root", Head: 0},
		}},
		{"modifier not adjective", []sent.Token{
			{Id: 1, Lemma: "very", Pos: "ADV", Dep: sent.DepAmod, Head: 2},
			{Id: 2, Lemma: "dog", Pos: sent.PosNoun, Dep: "root", Head: 0},
		}},
		{"adjective not amod", []sent.Token{
			{Id: 1, Lemma: "big", Pos: sent.PosAdj, Dep: "nmod", Head: 2},
			{Id: 2, Lemma: "dog", Pos: sent.PosNoun, Dep: "root", Head: 0},
		}},
		{"root adjective", []sent.Token{
			{Id: 1, Lemma: "big", Pos: sent.PosAdj, Dep: sent.DepAmod, Head: 0},
		}},
		{"legacy tag in strict mode", []sent.Token{
			{Id: 1, Lemma: "big", Pos: sent.PosAdj, Dep: sent.DepAmod, Head: 2},
			{Id: 2, Lemma: "dog", Pos: sent.PosNN, Dep: "root", Head: 0},
		}},
		{"proper noun head", []sent.Token{
			{Id: 1, Lemma: "great", Pos: sent.PosAdj, Dep: sent.DepAmod, Head: 2},
			{Id: 2, Lemma: "Britain", Pos: sent.PosPropn, Dep: "root", Head: 0},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := freq.New[Bigram]()
			out := NewAmod(DefaultOptions()).Extract(sent.Sentence{Tokens: tt.tokens}, tb)
			if out.Emitted != 0 || tb.Len() != 0 {
				t.Errorf("expected no bigram, got %d", tb.Len())
			}
		})
	}
}

func TestAmodLegacyNounTag(t *testing.T) {
	s := sent.Sentence{Tokens: []sent.Token{
		{Id: 1, Lemma: "big", Pos: sent.PosAdj, Dep: sent.DepAmod, Head: 2},
		{Id: 2, Lemma: "dog", Pos: sent.PosNN, Dep: "root", Head: 0},
	}}

	opts := DefaultOptions()
	opts.NounTags = NounLegacy

	tb := freq.New[Bigram]()
	NewAmod(opts).Extract(s, tb)

	if n := tb.Count(Bigram{"big", "dog"}); n != 1 {
		t.Errorf("expected (big, dog)=1, got %d", n)
	}
}

func TestAmodZeroBasedHeads(t *testing.T) {
	// With 0-based heads, head 1 addresses the second token.
	s := sent.Sentence{Tokens: []sent.Token{
		{Id: 1, Lemma: "big", Pos: sent.PosAdj, Dep: sent.DepAmod, Head: 1},
		{Id: 2, Lemma: "dog", Pos: sent.PosNoun, Dep: "root", Head: 0},
	}}

	opts := DefaultOptions()
	opts.HeadBase = 0

	tb := freq.New[Bigram]()
	NewAmod(opts).Extract(s, tb)
	if n := tb.Count(Bigram{"big", "dog"}); n != 1 {
		t.Errorf("expected (big, dog)=1 with 0-based heads, got %d", n)
	}

	// The same sentence read 1-based points the adjective at itself.
	tb = freq.New[Bigram]()
	NewAmod(DefaultOptions()).Extract(s, tb)
	if tb.Len() != 0 {
		t.Errorf("expected no bigram with 1-based heads, got %d", tb.Len())
	}
}

func TestAmodZeroBasedOutOfRange(t *testing.T) {
	s := sent.Sentence{Tokens: []sent.Token{
		{Id: 1, Lemma: "big", Pos: sent.PosAdj, Dep: sent.DepAmod, Head: 2},
		{Id: 2, Lemma: "dog", Pos: sent.PosNoun, Dep: "root", Head: 0},
	}}

	opts := DefaultOptions()
	opts.HeadBase = 0

	tb := freq.New[Bigram]()
	NewAmod(opts).Extract(s, tb)
	if tb.Len() != 0 {
		t.Errorf("expected no bigram, got %d", tb.Len())
	}
}

func TestAmodLowercase(t *testing.T) {
	s := sent.Sentence{Tokens: []sent.Token{
		{Id: 1, Lemma: "Big", Pos: sent.PosAdj, Dep: sent.DepAmod, Head: 2},
		{Id: 2, Lemma: "DOG", Pos: sent.PosNoun, Dep: "root", Head: 0},
		{Id: 3, Lemma: "big", Pos: sent.PosAdj, Dep: sent.DepAmod, Head: 4},
		{Id: 4, Lemma: "dog", Pos: sent.PosNoun, Dep: "conj", Head: 2},
	}}

	tb := freq.New[Bigram]()
	NewAmod(DefaultOptions()).Extract(s, tb)
	if n := tb.Count(Bigram{"big", "dog"}); n != 2 {
		t.Errorf("expected folded (big, dog)=2, got %d", n)
	}

	opts := DefaultOptions()
	opts.Lowercase = LowerNone
	tb = freq.New[Bigram]()
	NewAmod(opts).Extract(s, tb)
	if n := tb.Count(Bigram{"Big", "DOG"}); n != 1 {
		t.Errorf("expected unfolded (Big, DOG)=1, got %d", n)
	}
}

func TestAmodIgnoresSentenceValidity(t *testing.T) {
	// two nsubj of the same head make the sentence invalid for SVO only
	s := sent.Sentence{Tokens: []sent.Token{
		{Id: 1, Lemma: "big", Pos: sent.PosAdj, Dep: sent.DepAmod, Head: 2},
		{Id: 2, Lemma: "dog", Pos: sent.PosNoun, Dep: sent.DepNsubj, Head: 4},
		{Id: 3, Lemma: "cat", Pos: sent.PosNoun, Dep: sent.DepNsubj, Head: 4},
		{Id: 4, Lemma: "run", Pos: sent.PosVerb, Dep: "root", Head: 0},
	}}

	amods := freq.New[Bigram]()
	NewAmod(DefaultOptions()).Extract(s, amods)
	if amods.Count(Bigram{"big", "dog"}) != 1 {
		t.Errorf("expected amod bigram in SVO-invalid sentence")
	}

	triples := freq.New[Triple]()
	out := NewSvo(DefaultOptions()).Extract(s, triples)
	if !out.Invalid || triples.Len() != 0 {
		t.Errorf("expected invalid sentence with no triples")
	}
}

func TestAmodMonotonic(t *testing.T) {
	s := sent.Sentence{Tokens: []sent.Token{
		{Id: 1, Lemma: "big", Pos: sent.PosAdj, Dep: sent.DepAmod, Head: 2},
		{Id: 2, Lemma: "dog", Pos: sent.PosNoun, Dep: "root", Head: 0},
	}}

	tb := freq.New[Bigram]()
	x := NewAmod(DefaultOptions())
	prev := 0
	for i := 0; i < 5; i++ {
		x.Extract(s, tb)
		n := tb.Count(Bigram{"big", "dog"})
		if n <= prev {
			t.Fatalf("count did not grow: %d -> %d", prev, n)
		}
		prev = n
	}
}
