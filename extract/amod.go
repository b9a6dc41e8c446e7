package extract

import (
	"github.com/revelaction/relex/freq"
	sent "github.com/revelaction/relex/sentence"
)

const KindAmod = "amod"

// Bigram is an adjective lemma modifying a noun lemma.
type Bigram struct {
	Adj  string
	Noun string
}

func (b Bigram) Fields() []string {
	return []string{b.Adj, b.Noun}
}

// Amod counts ADJ tokens attached with amod to a noun head. It ignores
// sentence validity: every qualifying token counts on its own.
type Amod struct {
	opts Options
}

var _ Extractor[Bigram] = (*Amod)(nil)

func NewAmod(opts Options) *Amod {
	return &Amod{opts: opts}
}

func (a *Amod) Kind() string { return KindAmod }

func (a *Amod) Extract(s sent.Sentence, t *freq.Table[Bigram]) Outcome {
	var out Outcome
	fold := folder(a.opts.Lowercase != LowerNone)

	for _, tk := range s.Tokens {
		if tk.Dep != sent.DepAmod || tk.Pos != sent.PosAdj {
			continue
		}

		head, ok := a.head(s, tk)
		if !ok || !a.isNoun(head.Pos) {
			continue
		}

		t.Inc(Bigram{Adj: fold(tk.Lemma), Noun: fold(head.Lemma)})
		out.Emitted++
	}

	return out
}

// head resolves the governor of tk according to the configured head base.
func (a *Amod) head(s sent.Sentence, tk sent.Token) (sent.Token, bool) {
	if tk.Head == 0 {
		return sent.Token{}, false
	}

	pos := tk.Head - a.opts.HeadBase
	if pos < 0 || pos >= len(s.Tokens) {
		return sent.Token{}, false
	}

	return s.Tokens[pos], true
}

func (a *Amod) isNoun(pos string) bool {
	if pos == sent.PosNoun {
		return true
	}
	return a.opts.NounTags == NounLegacy && pos == sent.PosNN
}
