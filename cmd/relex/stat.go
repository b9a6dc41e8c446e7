package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/revelaction/relex/corpus"
	"github.com/revelaction/relex/extract"
	"github.com/revelaction/relex/logger"
	"github.com/urfave/cli/v2"
)

func statCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "print sentence and token statistics per unit",
		ArgsUsage: "<input>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dist",
				Usage: "also print the distribution of sentence lengths",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("stat requires an <input> argument")
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			units, err := corpus.Discover(c.Args().First(), cfg.Granularity, cfg.Ext)
			if err != nil {
				return err
			}

			lg := logger.New(ui.Err, cfg.Debug)
			// the amod extractor only walks the tokens; its table is discarded
			agg := corpus.New[extract.Bigram](extract.NewAmod(cfg.ExtractOptions()), corpus.Options{
				Workers:          cfg.Workers,
				OnIntegrityError: cfg.OnIntegrityError,
				Logger:           lg,
			})

			var errs []error
			for _, u := range units {
				res, err := agg.Run(c.Context, u)
				if err != nil {
					if c.Context.Err() != nil {
						return errors.Join(append(errs, err)...)
					}
					lg.Error("unit failed", "unit", u.Name, "err", err)
					errs = append(errs, err)
					continue
				}

				st := res.Stats
				fmt.Fprintf(ui.Out, "%s\tfiles %d\tsentences %d\ttokens %d\ttokens per sentence %d\tskipped %d\n",
					u.Name, len(u.Files), st.NumSentences, st.NumTokens, st.TokensPerSentenceMean, st.Skipped)

				if !c.Bool("dist") {
					continue
				}

				lengths := make([]int, 0, len(st.TokensPerSentenceDis))
				for n := range st.TokensPerSentenceDis {
					lengths = append(lengths, n)
				}
				sort.Ints(lengths)
				for _, n := range lengths {
					fmt.Fprintf(ui.Out, "%d\t%d\n", n, st.TokensPerSentenceDis[n])
				}
			}

			return errors.Join(errs...)
		},
	}
}
