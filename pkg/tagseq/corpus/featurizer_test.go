package corpus

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cognicore/tagseq/pkg/tagseq/internalerr"
)

func makeSequence(triples ...[3]string) *Sequence {
	docs := make([]*Document, len(triples))
	for i, tr := range triples {
		docs[i] = NewDocument(Data{Char: tr[0], Type: tr[1]}, tr[2], i)
	}
	return NewSequence(docs)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"unigram", "type-context", "full-context", "label-oracle"} {
		feat, err := ByName(name)
		if err != nil {
			t.Errorf("ByName(%q) error: %v", name, err)
			continue
		}
		if feat.Name() != name {
			t.Errorf("ByName(%q).Name() = %q", name, feat.Name())
		}
	}

	if _, err := ByName("bogus"); !errors.Is(err, internalerr.ErrUnknownFeaturizer) {
		t.Errorf("ByName(bogus) = %v, want ErrUnknownFeaturizer", err)
	}
}

func TestUnigramSingleFeature(t *testing.T) {
	seq := makeSequence([3]string{"ก", "c1", "B"})

	got := Unigram{}.SequenceFeatures(0, seq)
	want := []string{"ก/c1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SequenceFeatures(0) = %v, want %v", got, want)
	}
}

func TestTypeContextStartSentinel(t *testing.T) {
	seq := makeSequence(
		[3]string{"ก", "c1", "B"},
		[3]string{"า", "v1", "I"},
		[3]string{"ร", "c2", "I"},
	)

	got := TypeContext{}.SequenceFeatures(0, seq)
	want := []string{"T0=c1", "**BIAS TERM**", "T-1=START", "T+1=v1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SequenceFeatures(0) = %v, want %v", got, want)
	}
}

func TestTypeContextEndSentinel(t *testing.T) {
	seq := makeSequence(
		[3]string{"ก", "c1", "B"},
		[3]string{"า", "v1", "I"},
		[3]string{"ร", "c2", "I"},
	)

	got := TypeContext{}.SequenceFeatures(2, seq)
	want := []string{"T0=c2", "**BIAS TERM**", "T-1=v1", "T+1=END"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SequenceFeatures(2) = %v, want %v", got, want)
	}
}

func TestTypeContextMidSequence(t *testing.T) {
	seq := makeSequence(
		[3]string{"ก", "c1", "B"},
		[3]string{"า", "v1", "I"},
		[3]string{"ร", "c2", "I"},
	)

	got := TypeContext{}.SequenceFeatures(1, seq)
	want := []string{"T0=v1", "**BIAS TERM**", "T-1=c1", "T+1=c2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SequenceFeatures(1) = %v, want %v", got, want)
	}
}

func TestFullContextMidSequence(t *testing.T) {
	seq := makeSequence(
		[3]string{"a", "ta", "B"},
		[3]string{"b", "tb", "I"},
		[3]string{"c", "tc", "I"},
		[3]string{"d", "td", "B"},
		[3]string{"e", "te", "I"},
	)

	got := FullContext{}.SequenceFeatures(2, seq)
	want := []string{
		"T0=tc", "T0=c", "**BIAS TERM**",
		"T+1=d", "T+1=td", "T-1=b", "T-1=tb",
		"T+2=e", "T+2=te", "T-2=a", "T-2=ta",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SequenceFeatures(2) = %v, want %v", got, want)
	}
	if len(got) != 11 {
		t.Errorf("mid-sequence feature count = %d, want 11", len(got))
	}
}

func TestFullContextSequenceStart(t *testing.T) {
	seq := makeSequence(
		[3]string{"a", "ta", "B"},
		[3]string{"b", "tb", "I"},
		[3]string{"c", "tc", "I"},
	)

	got := FullContext{}.SequenceFeatures(0, seq)
	want := []string{
		"T0=ta", "T0=a", "**BIAS TERM**",
		"T+1=b", "T+1=tb", "T-1=START",
		"T+2=c", "T+2=tc", "T-2=START",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SequenceFeatures(0) = %v, want %v", got, want)
	}
}

func TestFullContextSequenceEnd(t *testing.T) {
	seq := makeSequence(
		[3]string{"a", "ta", "B"},
		[3]string{"b", "tb", "I"},
		[3]string{"c", "tc", "I"},
	)

	got := FullContext{}.SequenceFeatures(2, seq)
	want := []string{
		"T0=tc", "T0=c", "**BIAS TERM**",
		"T+1=END", "T-1=b", "T-1=tb",
		"T+2=END", "T-2=a", "T-2=ta",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SequenceFeatures(2) = %v, want %v", got, want)
	}
}

func TestFullContextSingletonSequence(t *testing.T) {
	seq := makeSequence([3]string{"a", "ta", "B"})

	// Every context offset is out of range; only sentinels remain.
	got := FullContext{}.SequenceFeatures(0, seq)
	want := []string{
		"T0=ta", "T0=a", "**BIAS TERM**",
		"T+1=END", "T-1=START",
		"T+2=END", "T-2=START",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SequenceFeatures(0) = %v, want %v", got, want)
	}
}

func TestLabelOracleLeaksLabel(t *testing.T) {
	seq := makeSequence(
		[3]string{"ก", "c1", "B"},
		[3]string{"า", "v1", "I"},
	)

	for pos := 0; pos < seq.Len(); pos++ {
		got := LabelOracle{}.SequenceFeatures(pos, seq)
		if len(got) != 1 || got[0] != seq.At(pos).Label {
			t.Errorf("SequenceFeatures(%d) = %v, want [%s]", pos, got, seq.At(pos).Label)
		}
	}
}
