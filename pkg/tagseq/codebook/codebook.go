// Package codebook maps feature and label identifiers to dense integer
// indices. A classifier downstream works on integer vectors only; the
// codebook is what lets it decode those integers back into names.
package codebook

// Codebook is a bijective mapping between string identifiers and dense
// integer indices. Indices start at 0 and are assigned in first-seen
// order; once assigned, an index is never changed or reused.
type Codebook struct {
	index map[string]int
	names []string
}

// New creates an empty codebook.
func New() *Codebook {
	return &Codebook{
		index: make(map[string]int),
	}
}

// Intern returns the index for the given identifier, assigning the next
// free index if the identifier has not been seen before. Re-interning an
// identifier always yields the index of its first occurrence.
func (c *Codebook) Intern(s string) int {
	if id, ok := c.index[s]; ok {
		return id
	}
	id := len(c.names)
	c.index[s] = id
	c.names = append(c.names, s)
	return id
}

// ID returns the index for an identifier, without interning it.
func (c *Codebook) ID(s string) (int, bool) {
	id, ok := c.index[s]
	return id, ok
}

// Name returns the identifier for an index.
func (c *Codebook) Name(id int) (string, bool) {
	if id < 0 || id >= len(c.names) {
		return "", false
	}
	return c.names[id], true
}

// Len returns the number of interned identifiers.
func (c *Codebook) Len() int {
	return len(c.names)
}

// Names returns all identifiers in index order. The returned slice is a
// copy and safe to mutate.
func (c *Codebook) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}
