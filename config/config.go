// Package config loads the relex run configuration.
//
// Values are resolved from built-in defaults, then an optional YAML file,
// then the environment and command line flags (applied by the caller). A
// .env file in the working directory is loaded into the environment first.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/revelaction/relex/corpus"
	"github.com/revelaction/relex/extract"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables read by relex.
const EnvPrefix = "RELEX_"

type Config struct {
	Granularity      corpus.Granularity `yaml:"granularity"`
	Workers          int                `yaml:"workers"`
	HeadBase         int                `yaml:"head_base"`
	NounTags         extract.NounTags   `yaml:"noun_tags"`
	Lowercase        extract.Lowercase  `yaml:"lowercase"`
	OnIntegrityError corpus.Policy      `yaml:"on_integrity_error"`
	Ext              string             `yaml:"ext"`
	Debug            bool               `yaml:"debug"`
}

func Default() Config {
	eo := extract.DefaultOptions()
	return Config{
		Granularity:      corpus.Whole,
		Workers:          runtime.NumCPU(),
		HeadBase:         eo.HeadBase,
		NounTags:         eo.NounTags,
		Lowercase:        eo.Lowercase,
		OnIntegrityError: corpus.PolicyFail,
	}
}

// LoadEnv loads a .env file, if any, into the process environment.
// Variables already set are not overridden.
func LoadEnv() bool {
	return godotenv.Load() == nil
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Granularity.Validate(); err != nil {
		return err
	}
	if err := c.OnIntegrityError.Validate(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return c.ExtractOptions().Validate()
}

func (c Config) ExtractOptions() extract.Options {
	return extract.Options{
		HeadBase:  c.HeadBase,
		NounTags:  c.NounTags,
		Lowercase: c.Lowercase,
	}
}
