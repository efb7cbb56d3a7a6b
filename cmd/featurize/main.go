// Command featurize loads a tagged corpus, runs the featurization pass,
// and prints what came out: sequence and document counts, codebook
// sizes, and the label inventory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gosuri/uiprogress"

	"github.com/cognicore/tagseq/pkg/tagseq/config"
	"github.com/cognicore/tagseq/pkg/tagseq/corpus"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (overrides the other flags)")
	pattern := flag.String("pattern", "", "glob of corpus files")
	featurizer := flag.String("featurizer", "type-context", "featurizer variant: unigram, type-context, full-context, label-oracle")
	format := flag.String("format", "thai-text", "corpus format: thai-text or sqlite")
	flushEOF := flag.Bool("flush-eof", false, "finalize a trailing run at end of file")
	quiet := flag.Bool("quiet", false, "suppress the progress bar")
	flag.Parse()

	cfg, err := resolveConfig(*configPath, *pattern, *featurizer, *format, *flushEOF)
	if err != nil {
		log.Fatalf("featurize: %v", err)
	}

	feat, opts, err := cfg.Build()
	if err != nil {
		log.Fatalf("featurize: %v", err)
	}

	paths, err := filepath.Glob(cfg.Corpus.Pattern)
	if err != nil {
		log.Fatalf("featurize: %v", err)
	}

	if !*quiet && len(paths) > 0 {
		uiprogress.Start()
		bar := uiprogress.AddBar(len(paths))
		bar.AppendCompleted()
		bar.PrependElapsed()
		opts = append(opts, corpus.WithProgress(func(string) { bar.Incr() }))
	}

	c, err := corpus.New(cfg.Corpus.Pattern, feat, opts...)
	if !*quiet && len(paths) > 0 {
		uiprogress.Stop()
	}
	if err != nil {
		log.Fatalf("featurize: %v", err)
	}

	printSummary(c)
}

func resolveConfig(configPath, pattern, featurizer, format string, flushEOF bool) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	if pattern == "" {
		return nil, fmt.Errorf("either -config or -pattern is required")
	}
	cfg := &config.Config{Corpus: config.Corpus{
		Pattern:    pattern,
		Format:     format,
		Featurizer: featurizer,
		FlushAtEOF: flushEOF,
	}}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printSummary(c *corpus.Corpus) {
	docs := 0
	for _, seq := range c.Sequences() {
		docs += seq.Len()
	}

	fmt.Fprintf(os.Stdout, "build      %s\n", c.BuildID)
	fmt.Fprintf(os.Stdout, "featurizer %s\n", c.Featurizer().Name())
	fmt.Fprintf(os.Stdout, "files      %d\n", len(c.Files()))
	fmt.Fprintf(os.Stdout, "sequences  %d\n", c.Len())
	fmt.Fprintf(os.Stdout, "documents  %d\n", docs)
	fmt.Fprintf(os.Stdout, "features   %d\n", c.FeatureCodebook.Len())
	fmt.Fprintf(os.Stdout, "labels     %d %v\n", c.LabelCodebook.Len(), c.LabelCodebook.Names())
}
