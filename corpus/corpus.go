// Package corpus drives the extraction of relation patterns over the files
// of a corpus and aggregates the counts into frequency tables.
package corpus

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/revelaction/relex/conllu"
	"github.com/revelaction/relex/doc"
	"github.com/revelaction/relex/extract"
	"github.com/revelaction/relex/freq"
	"github.com/revelaction/relex/logger"
	sent "github.com/revelaction/relex/sentence"
	"github.com/revelaction/relex/stat"
	"golang.org/x/sync/errgroup"
)

// Policy decides what happens to a sentence with a dangling head.
type Policy string

const (
	// PolicyFail aborts the unit with an error.
	PolicyFail Policy = "fail"
	// PolicySkip drops the sentence and logs a warning.
	PolicySkip Policy = "skip"
)

func (p Policy) Validate() error {
	switch p {
	case PolicyFail, PolicySkip:
		return nil
	}
	return fmt.Errorf("unknown integrity policy %q (allowed: %s, %s)", p, PolicyFail, PolicySkip)
}

// ReadFunc streams the sentences of a file to fn.
type ReadFunc func(path string, fn func(sent.Sentence) error) error

// ReadFile reads JSON documents with doc.ReadFile and any other file as
// CoNLL-U.
func ReadFile(path string, fn func(sent.Sentence) error) error {
	if strings.HasSuffix(path, doc.Ext) {
		return doc.ReadFile(path, fn)
	}
	return conllu.ReadFile(path, fn)
}

type Options struct {
	// Workers is the number of files extracted concurrently. Values below
	// 1 mean runtime.NumCPU().
	Workers int

	OnIntegrityError Policy

	Logger *log.Logger

	// OnFile is called after each file is extracted. It may be called
	// from several goroutines.
	OnFile func(path string)

	// Read defaults to ReadFile.
	Read ReadFunc
}

// Result is the frequency table of one unit.
type Result[K extract.Pattern] struct {
	Unit  Unit
	Table *freq.Table[K]
	Stats stat.Stats
}

// Aggregator runs an extractor over the files of a unit. Each file is
// extracted into its own table; tables are merged in file order, so the
// result does not depend on the number of workers.
type Aggregator[K extract.Pattern] struct {
	ex   extract.Extractor[K]
	opts Options
}

func New[K extract.Pattern](ex extract.Extractor[K], opts Options) *Aggregator[K] {
	if opts.Workers < 1 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.OnIntegrityError == "" {
		opts.OnIntegrityError = PolicyFail
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Read == nil {
		opts.Read = ReadFile
	}

	return &Aggregator[K]{ex: ex, opts: opts}
}

// Run extracts all files of u. The first failing file aborts the unit.
func (a *Aggregator[K]) Run(ctx context.Context, u Unit) (Result[K], error) {
	lg := a.opts.Logger
	lg.Info("extracting", "kind", a.ex.Kind(), "unit", u.Name, "files", len(u.Files))

	tables := make([]*freq.Table[K], len(u.Files))
	stats := make([]stat.Stats, len(u.Files))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Workers)

	for i, path := range u.Files {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			t, st, err := a.file(gCtx, path)
			if err != nil {
				return err
			}
			tables[i], stats[i] = t, st

			lg.Debug("extracted", "file", path, "sentences", st.NumSentences, "patterns", st.Emitted)
			if a.opts.OnFile != nil {
				a.opts.OnFile(path)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result[K]{}, fmt.Errorf("unit %s: %w", u.Name, err)
	}

	table := freq.New[K]()
	h := stat.NewHandler()
	for i := range tables {
		table.Merge(tables[i])
		h.Merge(stats[i])
	}

	st := h.Get()
	lg.Info("extracted", "kind", a.ex.Kind(), "unit", u.Name, "sentences", st.NumSentences, "distinct", table.Len(), "total", st.Emitted)

	return Result[K]{Unit: u, Table: table, Stats: st}, nil
}

func (a *Aggregator[K]) file(ctx context.Context, path string) (*freq.Table[K], stat.Stats, error) {
	t := freq.New[K]()
	h := stat.NewHandler()

	err := a.opts.Read(path, func(s sent.Sentence) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.Validate(); err != nil {
			if a.opts.OnIntegrityError != PolicySkip {
				return fmt.Errorf("%s: sentence %d: %w", path, s.Id, err)
			}
			a.opts.Logger.Warn("skipping sentence", "file", path, "sentence", s.Id, "err", err)
			h.Skip()
			return nil
		}

		h.Aggregate(s)
		out := a.ex.Extract(s, t)
		if out.Invalid {
			h.Invalid()
		}
		h.Emit(out.Emitted)
		return nil
	})
	if err != nil {
		return nil, stat.Stats{}, err
	}

	return t, h.Get(), nil
}
