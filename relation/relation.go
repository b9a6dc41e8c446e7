// Package relation builds head-indexed lookups over the dependency edges of
// a sentence, so extractors can ask what depends on a token through a given
// relation without rescanning the sentence.
package relation

import (
	"strings"

	sent "github.com/revelaction/relex/sentence"
)

// Index maps head token ids to their dependents for the relations used by
// the SVO extractor.
type Index struct {
	// Subjects maps a head id to its single nsubj dependent.
	Subjects map[int]sent.Token

	// Objects maps a head id to its single obj, ccomp or xcomp dependent.
	Objects map[int]sent.Token

	// Compounds maps a head id to a dependent whose relation contains
	// "compound". Only the presence of the key is meaningful.
	Compounds map[int]sent.Token

	// Verbs are the VERB tokens, in sentence order.
	Verbs []sent.Token

	// Valid is false when two tokens compete for the same head in Subjects
	// or in Objects. Building stops at the first collision, so the maps of
	// an invalid Index are incomplete.
	Valid bool
}

// IsObjectDep reports whether dep populates the object map.
func IsObjectDep(dep string) bool {
	switch dep {
	case sent.DepObj, sent.DepCcomp, sent.DepXcomp:
		return true
	}
	return false
}

// IsCompoundDep reports whether dep is a compound relation (compound,
// compound:prt, compound:svc ...).
func IsCompoundDep(dep string) bool {
	return strings.Contains(dep, sent.DepCompound)
}

// Build indexes the sentence. The sentence is not modified.
func Build(s sent.Sentence) *Index {
	idx := &Index{
		Subjects:  map[int]sent.Token{},
		Objects:   map[int]sent.Token{},
		Compounds: map[int]sent.Token{},
		Valid:     true,
	}

	for _, tk := range s.Tokens {
		switch {
		case tk.Dep == sent.DepNsubj:
			if _, ok := idx.Subjects[tk.Head]; ok {
				idx.Valid = false
				return idx
			}
			idx.Subjects[tk.Head] = tk
		case IsObjectDep(tk.Dep):
			if _, ok := idx.Objects[tk.Head]; ok {
				idx.Valid = false
				return idx
			}
			idx.Objects[tk.Head] = tk
		case IsCompoundDep(tk.Dep):
			idx.Compounds[tk.Head] = tk
		}

		if tk.Pos == sent.PosVerb {
			idx.Verbs = append(idx.Verbs, tk)
		}
	}

	return idx
}
