// Package corpus loads tagged character corpora and converts them into
// labeled sequences of integer feature vectors for sequence classifiers.
package corpus

// Data is the raw content of one corpus token: the character itself and
// its character-type code (consonant, vowel, and so on).
type Data struct {
	Char string
	Type string
}

// String renders the pair as a single identifier so it can serve as a
// feature or map key.
func (d Data) String() string {
	return d.Char + "/" + d.Type
}

// Document is a single labeled instance. FeatureVector and LabelIndex
// are empty until the owning corpus runs its featurization pass; after
// that, FeatureVector holds one codebook index per feature the active
// featurizer produced, in the featurizer's order.
type Document struct {
	Data          Data
	Label         string // empty for unlabeled/test data
	Source        int    // 0-based line number in the originating file, -1 if unknown
	FeatureVector []int
	LabelIndex    int // -1 before featurization
}

// NewDocument creates a document with no features assigned yet.
func NewDocument(data Data, label string, source int) *Document {
	return &Document{
		Data:       data,
		Label:      label,
		Source:     source,
		LabelIndex: -1,
	}
}

// Features returns the context-free baseline feature list: a single
// feature wrapping the raw data pair.
func (d *Document) Features() []string {
	return []string{d.Data.String()}
}
