package main

import (
	"github.com/revelaction/relex/config"
	"github.com/revelaction/relex/corpus"
	"github.com/revelaction/relex/extract"
	"github.com/urfave/cli/v2"
)

const (
	flagConfig           = "config"
	flagGranularity      = "granularity"
	flagWorkers          = "workers"
	flagHeadBase         = "head-base"
	flagNounTags         = "noun-tags"
	flagLowercase        = "lowercase"
	flagOnIntegrityError = "on-integrity-error"
	flagExt              = "ext"
	flagDebug            = "debug"
)

func env(name string) []string {
	return []string{config.EnvPrefix + name}
}

// globalFlags carry no default values so that only flags set on the
// command line or in the environment override the config file.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "YAML configuration `FILE`",
			EnvVars: env("CONFIG"),
		},
		&cli.StringFlag{
			Name:        flagGranularity,
			Aliases:     []string{"g"},
			Usage:       "one table for the whole corpus (corpus) or per top-level directory (directory)",
			DefaultText: string(corpus.Whole),
			EnvVars:     env("GRANULARITY"),
		},
		&cli.IntFlag{
			Name:        flagWorkers,
			Aliases:     []string{"w"},
			Usage:       "number of files extracted concurrently",
			DefaultText: "number of CPUs",
			EnvVars:     env("WORKERS"),
		},
		&cli.IntFlag{
			Name:        flagHeadBase,
			Usage:       "position of the first token as referenced by head pointers (1 or 0); amod only, svo requires 1",
			DefaultText: "1",
			EnvVars:     env("HEAD_BASE"),
		},
		&cli.StringFlag{
			Name:        flagNounTags,
			Usage:       "noun tags accepted as amod heads: strict (NOUN) or legacy (NOUN, NN)",
			DefaultText: string(extract.NounStrict),
			EnvVars:     env("NOUN_TAGS"),
		},
		&cli.StringFlag{
			Name:        flagLowercase,
			Usage:       "patterns lowercased before counting: amod, all or none",
			DefaultText: string(extract.LowerAmod),
			EnvVars:     env("LOWERCASE"),
		},
		&cli.StringFlag{
			Name:        flagOnIntegrityError,
			Usage:       "on a dangling head pointer: fail the unit or skip the sentence",
			DefaultText: string(corpus.PolicyFail),
			EnvVars:     env("ON_INTEGRITY_ERROR"),
		},
		&cli.StringFlag{
			Name:    flagExt,
			Usage:   "only read input files ending in `EXT`",
			EnvVars: env("EXT"),
		},
		&cli.BoolFlag{
			Name:    flagDebug,
			Usage:   "log every extracted file",
			EnvVars: env("DEBUG"),
		},
	}
}

// loadConfig resolves the configuration: defaults, then the config file,
// then flags and environment.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String(flagConfig))
	if err != nil {
		return cfg, err
	}

	if c.IsSet(flagGranularity) {
		cfg.Granularity = corpus.Granularity(c.String(flagGranularity))
	}
	if c.IsSet(flagWorkers) {
		cfg.Workers = c.Int(flagWorkers)
	}
	if c.IsSet(flagHeadBase) {
		cfg.HeadBase = c.Int(flagHeadBase)
	}
	if c.IsSet(flagNounTags) {
		cfg.NounTags = extract.NounTags(c.String(flagNounTags))
	}
	if c.IsSet(flagLowercase) {
		cfg.Lowercase = extract.Lowercase(c.String(flagLowercase))
	}
	if c.IsSet(flagOnIntegrityError) {
		cfg.OnIntegrityError = corpus.Policy(c.String(flagOnIntegrityError))
	}
	if c.IsSet(flagExt) {
		cfg.Ext = c.String(flagExt)
	}
	if c.IsSet(flagDebug) {
		cfg.Debug = c.Bool(flagDebug)
	}

	return cfg, cfg.Validate()
}
