package sentence

import (
	"errors"
	"fmt"
)

// Universal POS tags used by the extractors. NN is the legacy (PTB) noun tag.
const (
	PosAdj   = "ADJ"
	PosNoun  = "NOUN"
	PosPropn = "PROPN"
	PosVerb  = "VERB"
	PosNN    = "NN"
)

// Dependency relation labels.
const (
	DepAmod     = "amod"
	DepNsubj    = "nsubj"
	DepObj      = "obj"
	DepCcomp    = "ccomp"
	DepXcomp    = "xcomp"
	DepCompound = "compound"
)

// ErrDanglingHead is returned when a head pointer does not resolve to a token
// of the same sentence.
var ErrDanglingHead = errors.New("dangling head")

// HeadError describes a token whose head lies outside its sentence.
type HeadError struct {
	TokenId int
	Head    int
	Len     int
}

func (e *HeadError) Error() string {
	return fmt.Sprintf("token %d: head %d out of range (sentence has %d tokens)", e.TokenId, e.Head, e.Len)
}

func (e *HeadError) Unwrap() error { return ErrDanglingHead }

// ErrTokenId is returned when token ids are not numbered 1..n in order.
var ErrTokenId = errors.New("token id out of sequence")

// IdError describes a token whose id does not match its position.
type IdError struct {
	Position int
	Id       int
}

func (e *IdError) Error() string {
	return fmt.Sprintf("token at position %d has id %d, expected %d", e.Position, e.Id, e.Position)
}

func (e *IdError) Unwrap() error { return ErrTokenId }

// Sentence is an ordered sequence of tokens. Tokens[i] has Id i+1.
type Sentence struct {
	// Id is the index of the sentence inside of its file, starting at 0.
	Id     int     `json:"id"`
	Tokens []Token `json:"tokens"`
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	// Id is the 1-based position of the token in the sentence.
	Id int `json:"id"`

	// Head is the Id of the governor. 0 is the root.
	Head int    `json:"head"`
	Pos  string `json:"pos"`
	Dep  string `json:"dep"`

	// A string containing detailed (language specific) POS data
	Tag string `json:"tag"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`
}

// Len returns the number of tokens.
func (s Sentence) Len() int {
	return len(s.Tokens)
}

// Token returns the token at the 1-based position id.
func (s Sentence) Token(id int) (Token, bool) {
	if id < 1 || id > len(s.Tokens) {
		return Token{}, false
	}
	return s.Tokens[id-1], true
}

// Validate checks that token ids are 1..n in order and that every non-root
// head resolves to a token of the sentence. The first offending token is
// reported as an *IdError or a *HeadError.
func (s Sentence) Validate() error {
	for i, tk := range s.Tokens {
		if tk.Id != i+1 {
			return &IdError{Position: i + 1, Id: tk.Id}
		}
	}

	n := len(s.Tokens)
	for _, tk := range s.Tokens {
		if tk.Head == 0 {
			continue
		}
		if tk.Head < 0 || tk.Head > n {
			return &HeadError{TokenId: tk.Id, Head: tk.Head, Len: n}
		}
	}
	return nil
}
