package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/relex/config"
	"github.com/revelaction/relex/corpus"
	"github.com/revelaction/relex/extract"
	"github.com/revelaction/relex/logger"
	"github.com/revelaction/relex/render"
	"github.com/revelaction/relex/storage"
	"github.com/urfave/cli/v2"
)

func amodCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      extract.KindAmod,
		Usage:     "count adjective-noun modifier pairs",
		ArgsUsage: "<input> <output>",
		Action: func(c *cli.Context) error {
			cfg, input, output, err := extractArgs(c)
			if err != nil {
				return err
			}
			return runExtract[extract.Bigram](c.Context, extract.NewAmod(cfg.ExtractOptions()), cfg, input, output, ui)
		},
	}
}

func svoCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      extract.KindSvo,
		Usage:     "count subject-verb-object triples",
		ArgsUsage: "<input> <output>",
		Action: func(c *cli.Context) error {
			cfg, input, output, err := extractArgs(c)
			if err != nil {
				return err
			}
			if cfg.HeadBase != 1 {
				return fmt.Errorf("svo matches heads against 1-based token ids, head base %d is not supported", cfg.HeadBase)
			}
			return runExtract[extract.Triple](c.Context, extract.NewSvo(cfg.ExtractOptions()), cfg, input, output, ui)
		},
	}
}

func extractArgs(c *cli.Context) (config.Config, string, string, error) {
	if c.NArg() != 2 {
		return config.Config{}, "", "", fmt.Errorf("%s requires <input> and <output> arguments", c.Command.Name)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return cfg, "", "", err
	}

	return cfg, c.Args().Get(0), c.Args().Get(1), nil
}

// runExtract counts the patterns of every unit of input and writes one
// table per unit to output. No extraction starts if any table already
// exists. A unit that fails is reported and skipped; its error is part of
// the returned error.
func runExtract[K extract.Pattern](ctx context.Context, ex extract.Extractor[K], cfg config.Config, input, output string, ui UI) error {
	units, err := corpus.Discover(input, cfg.Granularity, cfg.Ext)
	if err != nil {
		return err
	}

	repo, closeRepo, err := NewTableRepository(output, cfg.Granularity)
	if err != nil {
		return err
	}
	defer closeRepo()

	numFiles := 0
	for _, u := range units {
		t := storage.Table{Unit: u.Name, Kind: ex.Kind()}
		exists, err := repo.Exists(t)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%s: table %s/%s: %w", output, t.Unit, t.Kind, storage.ErrExists)
		}
		numFiles += len(u.Files)
	}

	var onFile func(string)
	if numFiles > 0 {
		progress := uiprogress.New()
		progress.Out = ui.Err
		bar := progress.AddBar(numFiles)
		bar.AppendCompleted()
		bar.PrependElapsed()
		progress.Start()
		defer progress.Stop()

		onFile = func(string) { bar.Incr() }
	}

	lg := logger.New(ui.Err, cfg.Debug)
	agg := corpus.New[K](ex, corpus.Options{
		Workers:          cfg.Workers,
		OnIntegrityError: cfg.OnIntegrityError,
		Logger:           lg,
		OnFile:           onFile,
	})

	// a failing unit gets no table; the other units are still extracted
	var errs []error
	for _, u := range units {
		res, err := agg.Run(ctx, u)
		if err != nil {
			if ctx.Err() != nil {
				return errors.Join(append(errs, err)...)
			}
			lg.Error("unit failed, no table written", "unit", u.Name, "err", err)
			errs = append(errs, err)
			continue
		}

		t := storage.Table{Unit: u.Name, Kind: ex.Kind()}
		if err := repo.Write(t, render.Rows(res.Table)); err != nil {
			return errors.Join(append(errs, fmt.Errorf("%s: %w", output, err))...)
		}

		st := res.Stats
		fmt.Fprintf(ui.Out, "%s\t%s\tsentences %d\tpatterns %d\tdistinct %d\tskipped %d\n",
			t.Unit, t.Kind, st.NumSentences, st.Emitted, res.Table.Len(), st.Skipped)
	}

	return errors.Join(errs...)
}
