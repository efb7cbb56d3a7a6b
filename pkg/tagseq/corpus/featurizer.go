package corpus

import (
	"fmt"

	"github.com/cognicore/tagseq/pkg/tagseq/internalerr"
)

// Feature string conventions. Context positions outside the sequence
// never fail a lookup; they resolve to the START/END sentinels instead.
const (
	biasFeature   = "**BIAS TERM**"
	startSentinel = "START"
	endSentinel   = "END"
)

// Featurizer derives the feature identifiers that characterize the
// document at position t of a sequence. Implementations must be
// deterministic: the same position in the same sequence always yields
// the same features in the same order.
type Featurizer interface {
	Name() string
	SequenceFeatures(t int, seq *Sequence) []string
}

// ByName resolves a featurizer by its registered name. Known names:
// unigram, type-context, full-context, label-oracle.
func ByName(name string) (Featurizer, error) {
	switch name {
	case "unigram":
		return Unigram{}, nil
	case "type-context":
		return TypeContext{}, nil
	case "full-context":
		return FullContext{}, nil
	case "label-oracle":
		return LabelOracle{}, nil
	}
	return nil, fmt.Errorf("%q: %w", name, internalerr.ErrUnknownFeaturizer)
}

// Unigram is the context-free baseline: the document's own data pair as
// a single feature.
type Unigram struct{}

func (Unigram) Name() string { return "unigram" }

func (Unigram) SequenceFeatures(t int, seq *Sequence) []string {
	return seq.At(t).Features()
}

// TypeContext emits the current character type, a bias term, and the
// types at t-1 and t+1, with sentinels at the sequence edges.
type TypeContext struct{}

func (TypeContext) Name() string { return "type-context" }

func (TypeContext) SequenceFeatures(t int, seq *Sequence) []string {
	features := []string{
		"T0=" + seq.At(t).Data.Type,
		biasFeature,
	}
	if t == 0 {
		features = append(features, "T-1="+startSentinel)
	} else {
		features = append(features, "T-1="+seq.At(t-1).Data.Type)
	}
	if t == seq.Len()-1 {
		features = append(features, "T+1="+endSentinel)
	} else {
		features = append(features, "T+1="+seq.At(t+1).Data.Type)
	}
	return features
}

// FullContext widens the window to two positions in each direction and
// emits both the raw character and its type at every in-range offset.
// Offsets are walked in increasing order, the forward position before
// the backward one; an out-of-range offset contributes one sentinel
// feature instead of a char/type pair, so a mid-sequence position
// yields 11 features and edge positions fewer.
type FullContext struct{}

func (FullContext) Name() string { return "full-context" }

func (FullContext) SequenceFeatures(t int, seq *Sequence) []string {
	features := []string{
		"T0=" + seq.At(t).Data.Type,
		"T0=" + seq.At(t).Data.Char,
		biasFeature,
	}
	for i := 1; i <= 2; i++ {
		if t+i >= seq.Len() {
			features = append(features, fmt.Sprintf("T+%d=%s", i, endSentinel))
		} else {
			features = append(features,
				fmt.Sprintf("T+%d=%s", i, seq.At(t+i).Data.Char),
				fmt.Sprintf("T+%d=%s", i, seq.At(t+i).Data.Type))
		}
		if t-i < 0 {
			features = append(features, fmt.Sprintf("T-%d=%s", i, startSentinel))
		} else {
			features = append(features,
				fmt.Sprintf("T-%d=%s", i, seq.At(t-i).Data.Char),
				fmt.Sprintf("T-%d=%s", i, seq.At(t-i).Data.Type))
		}
	}
	return features
}

// LabelOracle leaks the true label as the only feature. It exists to
// verify the pipeline end to end: a classifier trained on it should hit
// near-100% accuracy, and anything less points at a plumbing bug.
type LabelOracle struct{}

func (LabelOracle) Name() string { return "label-oracle" }

func (LabelOracle) SequenceFeatures(t int, seq *Sequence) []string {
	return []string{seq.At(t).Label}
}
