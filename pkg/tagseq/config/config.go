// Package config loads corpus configuration from YAML and resolves it
// into the components a corpus build needs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/tagseq/pkg/tagseq/corpus"
	"github.com/cognicore/tagseq/pkg/tagseq/internalerr"
	sqlitesource "github.com/cognicore/tagseq/pkg/tagseq/source/sqlite"
)

// Config is the top-level configuration document.
type Config struct {
	Corpus Corpus `yaml:"corpus"`
}

// Corpus configures a single corpus build.
type Corpus struct {
	// Pattern is the filesystem glob of input files. Required.
	Pattern string `yaml:"pattern"`
	// Format names the file format: "thai-text" (default) or "sqlite".
	Format string `yaml:"format"`
	// Featurizer names the featurizer variant; defaults to
	// "type-context" when empty.
	Featurizer string `yaml:"featurizer"`
	// FlushAtEOF finalizes a trailing run at end of file even without a
	// closing boundary line.
	FlushAtEOF bool `yaml:"flush_at_eof"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks that the configured names resolve.
func (c *Config) Validate() error {
	if c.Corpus.Pattern == "" {
		return fmt.Errorf("corpus.pattern is required: %w", internalerr.ErrInvalidConfig)
	}
	if c.Corpus.Featurizer != "" {
		if _, err := corpus.ByName(c.Corpus.Featurizer); err != nil {
			return fmt.Errorf("corpus.featurizer: %w", err)
		}
	}
	switch c.Corpus.Format {
	case "", "thai-text", "sqlite":
	default:
		return fmt.Errorf("corpus.format %q: %w", c.Corpus.Format, internalerr.ErrUnknownFormat)
	}
	return nil
}

// Build resolves the configured names into a featurizer and the corpus
// options that reproduce this configuration.
func (c *Config) Build() (corpus.Featurizer, []corpus.Option, error) {
	name := c.Corpus.Featurizer
	if name == "" {
		name = "type-context"
	}
	feat, err := corpus.ByName(name)
	if err != nil {
		return nil, nil, err
	}

	var opts []corpus.Option
	switch c.Corpus.Format {
	case "", "thai-text":
		// corpus default
	case "sqlite":
		opts = append(opts, corpus.WithFormat(sqlitesource.Format{}))
	default:
		return nil, nil, fmt.Errorf("corpus.format %q: %w", c.Corpus.Format, internalerr.ErrUnknownFormat)
	}
	if c.Corpus.FlushAtEOF {
		opts = append(opts, corpus.WithFlushAtEOF())
	}
	return feat, opts, nil
}
