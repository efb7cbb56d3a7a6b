package corpus

import (
	"crypto/rand"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/tagseq/pkg/tagseq/codebook"
	"github.com/cognicore/tagseq/pkg/tagseq/internalerr"
)

// Corpus owns the sequences parsed from a set of corpus files together
// with the feature and label codebooks built over them. Construction is
// all-or-nothing: any parse error aborts it and no partial corpus is
// returned.
type Corpus struct {
	// BuildID identifies this corpus build so downstream artifacts can
	// record which featurization they were derived from.
	BuildID string

	FeatureCodebook *codebook.Codebook
	LabelCodebook   *codebook.Codebook

	sequences  []*Sequence
	files      []string
	feat       Featurizer
	format     Format
	flushAtEOF bool
	progress   func(path string)
}

// Option configures corpus construction.
type Option func(*Corpus)

// WithFormat selects the corpus file format. Default is ThaiWordFile.
func WithFormat(f Format) Option {
	return func(c *Corpus) { c.format = f }
}

// WithFlushAtEOF finalizes a non-empty trailing buffer at end of file
// even when the file lacks a closing boundary line. Off by default: a
// trailing run without an explicit EOS line is silently dropped.
func WithFlushAtEOF() Option {
	return func(c *Corpus) { c.flushAtEOF = true }
}

// WithProgress registers a callback invoked after each file is parsed.
func WithProgress(fn func(path string)) Option {
	return func(c *Corpus) { c.progress = fn }
}

// New resolves pattern as a filesystem glob, parses every matched file
// into sequences with the given featurizer's document features in mind,
// and runs a single featurization pass over the whole corpus. A pattern
// matching zero files yields an empty corpus, not an error. A nil
// featurizer falls back to TypeContext.
func New(pattern string, feat Featurizer, opts ...Option) (*Corpus, error) {
	if feat == nil {
		feat = TypeContext{}
	}
	c := &Corpus{
		BuildID: newBuildID(),
		feat:    feat,
		format:  ThaiWordFile{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.format == nil {
		return nil, fmt.Errorf("corpus %q: %w", pattern, internalerr.ErrNoFormat)
	}

	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("corpus %q: %w", pattern, err)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if err := c.loadFile(path); err != nil {
			return nil, err
		}
		if c.progress != nil {
			c.progress(path)
		}
	}

	c.Featurize()
	return c, nil
}

// loadFile runs the boundary state machine over one file's token
// stream: tokens accumulate into a buffer, a boundary token flushes the
// non-empty buffer as a Sequence, and the buffer restarts.
func (c *Corpus) loadFile(path string) error {
	var buf []*Document
	err := c.format.Tokens(path, func(tok Token) error {
		if tok.IsBoundary() {
			if len(buf) > 0 {
				c.sequences = append(c.sequences, NewSequence(buf))
				buf = nil
			}
			return nil
		}
		buf = append(buf, NewDocument(Data{Char: tok.Char, Type: tok.Type}, tok.Tag, tok.Line))
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if c.flushAtEOF && len(buf) > 0 {
		c.sequences = append(c.sequences, NewSequence(buf))
	}
	c.files = append(c.files, path)
	return nil
}

// Featurize rebuilds both codebooks and every document's feature vector
// and label index from scratch. New runs it once after all files load;
// calling it again is safe and produces identical results, since
// vectors are reset rather than appended to.
func (c *Corpus) Featurize() {
	c.FeatureCodebook = codebook.New()
	c.LabelCodebook = codebook.New()
	for _, seq := range c.sequences {
		for t := 0; t < seq.Len(); t++ {
			doc := seq.At(t)
			doc.FeatureVector = doc.FeatureVector[:0]
			for _, f := range c.feat.SequenceFeatures(t, seq) {
				doc.FeatureVector = append(doc.FeatureVector, c.FeatureCodebook.Intern(f))
			}
			doc.LabelIndex = c.LabelCodebook.Intern(doc.Label)
		}
	}
}

// Len returns the number of sequences in the corpus.
func (c *Corpus) Len() int {
	return len(c.sequences)
}

// At returns the sequence at position i.
func (c *Corpus) At(i int) *Sequence {
	return c.sequences[i]
}

// Sequences returns the corpus's sequence list for iteration.
func (c *Corpus) Sequences() []*Sequence {
	return c.sequences
}

// Files returns the resolved input file paths in load order.
func (c *Corpus) Files() []string {
	return c.files
}

// Featurizer returns the featurizer the corpus was built with.
func (c *Corpus) Featurizer() Featurizer {
	return c.feat
}

func newBuildID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
