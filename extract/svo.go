package extract

import (
	"github.com/revelaction/relex/freq"
	"github.com/revelaction/relex/relation"
	sent "github.com/revelaction/relex/sentence"
)

const (
	KindSvo = "svo"

	// NoneSentinel is the serialized form of a missing object.
	NoneSentinel = "[NONE]"
)

// Object is the optional object of a triple.
type Object struct {
	lemma string
	ok    bool
}

// NoObject marks a clause without object.
var NoObject = Object{}

// SomeObject returns an object with the given lemma.
func SomeObject(lemma string) Object {
	return Object{lemma: lemma, ok: true}
}

// Lemma returns the object lemma and whether the object is present.
func (o Object) Lemma() (string, bool) {
	return o.lemma, o.ok
}

func (o Object) String() string {
	if !o.ok {
		return NoneSentinel
	}
	return o.lemma
}

// Triple is a subject-verb-object pattern.
type Triple struct {
	Subject string
	Verb    string
	Object  Object
}

func (t Triple) Fields() []string {
	return []string{t.Subject, t.Verb, t.Object.String()}
}

// Svo counts subject-verb-object triples of valid sentences. At most one
// triple is counted per verb.
type Svo struct {
	opts Options
}

var _ Extractor[Triple] = (*Svo)(nil)

func NewSvo(opts Options) *Svo {
	return &Svo{opts: opts}
}

func (x *Svo) Kind() string { return KindSvo }

func (x *Svo) Extract(s sent.Sentence, t *freq.Table[Triple]) Outcome {
	idx := relation.Build(s)
	if !idx.Valid {
		return Outcome{Invalid: true}
	}

	var out Outcome
	fold := folder(x.opts.Lowercase == LowerAll)

	for _, v := range idx.Verbs {
		tr, ok := triple(idx, v)
		if !ok {
			continue
		}

		tr.Subject = fold(tr.Subject)
		tr.Verb = fold(tr.Verb)
		if lemma, ok := tr.Object.Lemma(); ok {
			tr.Object = SomeObject(fold(lemma))
		}

		t.Inc(tr)
		out.Emitted++
	}

	return out
}

// triple resolves the clause headed by verb v. An object that exists but is
// not a nominal obj drops the verb instead of falling back to NoObject.
func triple(idx *relation.Index, v sent.Token) (Triple, bool) {
	if _, ok := idx.Compounds[v.Id]; ok {
		return Triple{}, false
	}

	subj, ok := idx.Subjects[v.Id]
	if !ok || !isNominal(subj.Pos) {
		return Triple{}, false
	}

	tr := Triple{Subject: subj.Lemma, Verb: v.Lemma, Object: NoObject}

	obj, ok := idx.Objects[v.Id]
	if !ok {
		return tr, true
	}

	if obj.Dep != sent.DepObj || !isNominal(obj.Pos) {
		return Triple{}, false
	}

	tr.Object = SomeObject(obj.Lemma)
	return tr, true
}
