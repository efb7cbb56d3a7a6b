package corpus

// Sequence is one contiguous run of documents between two boundary
// markers, treated as a single training or inference unit.
//
// The label list is a snapshot taken at construction time. Replacing or
// deleting documents later does NOT update it; callers that mutate a
// sequence and still need labels should read them from the documents.
type Sequence struct {
	docs   []*Document
	labels []string
}

// NewSequence wraps a document list and snapshots its labels.
func NewSequence(docs []*Document) *Sequence {
	labels := make([]string, len(docs))
	for i, d := range docs {
		labels[i] = d.Label
	}
	return &Sequence{docs: docs, labels: labels}
}

// Len returns the number of documents in the sequence.
func (s *Sequence) Len() int {
	return len(s.docs)
}

// At returns the document at position i.
func (s *Sequence) At(i int) *Document {
	return s.docs[i]
}

// SetDoc replaces the document at position i. The label snapshot is not
// recomputed.
func (s *Sequence) SetDoc(i int, d *Document) {
	s.docs[i] = d
}

// Delete removes the document at position i. The label snapshot is not
// recomputed.
func (s *Sequence) Delete(i int) {
	s.docs = append(s.docs[:i], s.docs[i+1:]...)
}

// Docs returns the underlying document list for iteration.
func (s *Sequence) Docs() []*Document {
	return s.docs
}

// Labels returns the label list captured when the sequence was built.
func (s *Sequence) Labels() []string {
	return s.labels
}
