// Package extract finds syntactic relation patterns in dependency parsed
// sentences and counts them into frequency tables.
//
// Two extractors are provided: Amod counts adjective-noun modifier bigrams,
// Svo counts subject-verb-object triples.
package extract

import (
	"fmt"

	"github.com/revelaction/relex/freq"
	sent "github.com/revelaction/relex/sentence"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pattern is a countable relation pattern that serializes to output fields.
type Pattern interface {
	comparable
	Fields() []string
}

// Outcome summarizes the extraction of one sentence.
type Outcome struct {
	// Emitted is the number of patterns counted.
	Emitted int

	// Invalid is set when the sentence was excluded as ambiguous.
	Invalid bool
}

// Extractor counts the patterns of one sentence into a table. Extract must
// be safe to call concurrently with different tables.
type Extractor[K Pattern] interface {
	Kind() string
	Extract(s sent.Sentence, t *freq.Table[K]) Outcome
}

// NounTags selects which POS tags the amod extractor accepts as noun heads.
type NounTags string

const (
	// NounStrict accepts NOUN only.
	NounStrict NounTags = "strict"
	// NounLegacy accepts NOUN and the legacy NN tag.
	NounLegacy NounTags = "legacy"
)

// Lowercase selects which extractors case-fold lemmas before counting.
type Lowercase string

const (
	// LowerAmod folds amod bigrams only, leaving SVO triples untouched.
	LowerAmod Lowercase = "amod"
	// LowerAll folds every pattern.
	LowerAll Lowercase = "all"
	// LowerNone keeps lemmas as produced by the lemmatizer.
	LowerNone Lowercase = "none"
)

// Options configure the extractors.
type Options struct {
	// HeadBase is the id of the first token as seen by head pointers: 1
	// means a head h addresses position h-1; 0 means it addresses position
	// h. A head of 0 is the root and is never dereferenced in either case.
	// Only Amod reads it; Svo matches heads against 1-based token ids.
	HeadBase int

	NounTags  NounTags
	Lowercase Lowercase
}

// DefaultOptions returns 1-based heads, strict noun tags and amod-only case
// folding.
func DefaultOptions() Options {
	return Options{
		HeadBase:  1,
		NounTags:  NounStrict,
		Lowercase: LowerAmod,
	}
}

// Validate rejects unknown option values.
func (o Options) Validate() error {
	if o.HeadBase != 0 && o.HeadBase != 1 {
		return fmt.Errorf("head base must be 0 or 1, got %d", o.HeadBase)
	}

	switch o.NounTags {
	case NounStrict, NounLegacy:
	default:
		return fmt.Errorf("unknown noun tags %q (allowed: %s, %s)", o.NounTags, NounStrict, NounLegacy)
	}

	switch o.Lowercase {
	case LowerAmod, LowerAll, LowerNone:
	default:
		return fmt.Errorf("unknown lowercase policy %q (allowed: %s, %s, %s)", o.Lowercase, LowerAmod, LowerAll, LowerNone)
	}

	return nil
}

// folder returns the case mapping for one extraction call. Casers keep
// state, so they are not shared between calls.
func folder(fold bool) func(string) string {
	if !fold {
		return func(s string) string { return s }
	}
	c := cases.Lower(language.Und)
	return c.String
}

func isNominal(pos string) bool {
	return pos == sent.PosNoun || pos == sent.PosPropn
}
