// Command corpus-explore loads a corpus and opens an interactive prompt
// for inspecting sequences, documents, feature vectors and codebooks.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/cognicore/tagseq/pkg/tagseq/config"
	"github.com/cognicore/tagseq/pkg/tagseq/corpus"
)

var commands = []prompt.Suggest{
	{Text: "stats", Description: "corpus totals and codebook sizes"},
	{Text: "seq", Description: "seq <i>: list the documents of sequence i"},
	{Text: "doc", Description: "doc <i> <j>: show document j of sequence i"},
	{Text: "feats", Description: "feats <i> <j>: decode a document's feature vector"},
	{Text: "label", Description: "label <name>: look up a label index"},
	{Text: "feature", Description: "feature <name>: look up a feature index"},
	{Text: "quit", Description: "exit"},
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	pattern := flag.String("pattern", "", "glob of corpus files")
	featurizer := flag.String("featurizer", "type-context", "featurizer variant")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *pattern, *featurizer)
	if err != nil {
		log.Fatalf("corpus-explore: %v", err)
	}
	feat, opts, err := cfg.Build()
	if err != nil {
		log.Fatalf("corpus-explore: %v", err)
	}
	c, err := corpus.New(cfg.Corpus.Pattern, feat, opts...)
	if err != nil {
		log.Fatalf("corpus-explore: %v", err)
	}

	fmt.Printf("loaded %d sequences from %d files (build %s)\n", c.Len(), len(c.Files()), c.BuildID)

	history := []string{}
	for {
		in := prompt.Input("tagseq> ", completer,
			prompt.OptionTitle("corpus explore"),
			prompt.OptionMaxSuggestion(8),
			prompt.OptionHistory(history),
		)
		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}
		if in == "quit" || in == "exit" {
			return
		}
		history = append(history, in)
		if err := run(c, in); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func loadConfig(configPath, pattern, featurizer string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	if pattern == "" {
		return nil, fmt.Errorf("either -config or -pattern is required")
	}
	cfg := &config.Config{Corpus: config.Corpus{Pattern: pattern, Featurizer: featurizer}}
	return cfg, cfg.Validate()
}

func completer(in prompt.Document) []prompt.Suggest {
	before := in.TextBeforeCursor()
	if before == "" || strings.Contains(before, " ") {
		return nil
	}
	return prompt.FilterHasPrefix(commands, before, true)
}

func run(c *corpus.Corpus, in string) error {
	args := strings.Fields(in)
	switch args[0] {
	case "stats":
		docs := 0
		for _, seq := range c.Sequences() {
			docs += seq.Len()
		}
		fmt.Printf("sequences %d  documents %d  features %d  labels %v\n",
			c.Len(), docs, c.FeatureCodebook.Len(), c.LabelCodebook.Names())
		return nil

	case "seq":
		i, err := index(args, 1, c.Len())
		if err != nil {
			return err
		}
		seq := c.At(i)
		for j, d := range seq.Docs() {
			fmt.Printf("%3d  %s  %s\n", j, d.Data, d.Label)
		}
		return nil

	case "doc":
		i, j, err := docIndex(c, args)
		if err != nil {
			return err
		}
		d := c.At(i).At(j)
		fmt.Printf("data %s  label %q (index %d)  source line %d\nvector %v\n",
			d.Data, d.Label, d.LabelIndex, d.Source, d.FeatureVector)
		return nil

	case "feats":
		i, j, err := docIndex(c, args)
		if err != nil {
			return err
		}
		for _, id := range c.At(i).At(j).FeatureVector {
			name, _ := c.FeatureCodebook.Name(id)
			fmt.Printf("%6d  %s\n", id, name)
		}
		return nil

	case "label":
		if len(args) < 2 {
			return fmt.Errorf("usage: label <name>")
		}
		if id, ok := c.LabelCodebook.ID(args[1]); ok {
			fmt.Printf("%d\n", id)
		} else {
			fmt.Printf("label %q not in codebook\n", args[1])
		}
		return nil

	case "feature":
		if len(args) < 2 {
			return fmt.Errorf("usage: feature <name>")
		}
		// Feature names may contain spaces (the bias term does).
		name := strings.Join(args[1:], " ")
		if id, ok := c.FeatureCodebook.ID(name); ok {
			fmt.Printf("%d\n", id)
		} else {
			fmt.Printf("feature %q not in codebook\n", name)
		}
		return nil
	}
	return fmt.Errorf("unknown command %q", args[0])
}

func index(args []string, pos, limit int) (int, error) {
	if len(args) <= pos {
		return 0, fmt.Errorf("missing index argument")
	}
	i, err := strconv.Atoi(args[pos])
	if err != nil {
		return 0, fmt.Errorf("bad index %q", args[pos])
	}
	if i < 0 || i >= limit {
		return 0, fmt.Errorf("index %d out of range [0,%d)", i, limit)
	}
	return i, nil
}

func docIndex(c *corpus.Corpus, args []string) (int, int, error) {
	i, err := index(args, 1, c.Len())
	if err != nil {
		return 0, 0, err
	}
	j, err := index(args, 2, c.At(i).Len())
	if err != nil {
		return 0, 0, err
	}
	return i, j, nil
}
