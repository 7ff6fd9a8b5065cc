package domain

// MappingEntry associates a source file base name with the test file believed to exercise it
type MappingEntry struct {
	Source string `json:"source" yaml:"source"`
	Test   string `json:"test" yaml:"test"`
}

// CoverageMapping is an ordered, read-only table of source to test associations.
// Source names are unique.
type CoverageMapping struct {
	entries []MappingEntry
	index   map[string]int
}

// NewCoverageMapping builds a mapping from entries in the given order.
// Callers are expected to have rejected duplicate sources already; later
// duplicates are ignored.
func NewCoverageMapping(entries []MappingEntry) *CoverageMapping {
	m := &CoverageMapping{
		entries: make([]MappingEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if _, ok := m.index[e.Source]; ok {
			continue
		}
		m.index[e.Source] = len(m.entries)
		m.entries = append(m.entries, e)
	}
	return m
}

// Entries returns a copy of the entries in insertion order
func (m *CoverageMapping) Entries() []MappingEntry {
	out := make([]MappingEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Keys returns the source names in insertion order
func (m *CoverageMapping) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Source
	}
	return keys
}

// Contains reports whether source is a key of the mapping
func (m *CoverageMapping) Contains(source string) bool {
	_, ok := m.index[source]
	return ok
}

// TestFor returns the test file mapped to source
func (m *CoverageMapping) TestFor(source string) (string, bool) {
	i, ok := m.index[source]
	if !ok {
		return "", false
	}
	return m.entries[i].Test, true
}

// Len returns the number of entries
func (m *CoverageMapping) Len() int {
	return len(m.entries)
}

// IssueKind describes how a mapping entry disagrees with the scanned tree
type IssueKind string

const (
	// IssueMissingSource means the entry's source is not among the enumerated source files
	IssueMissingSource IssueKind = "missing-source"
	// IssueMissingTest means the entry's test is not among the enumerated test files
	IssueMissingTest IssueKind = "missing-test"
)

// MappingIssue is a mapping entry referencing a file that was not found
type MappingIssue struct {
	Entry MappingEntry `json:"entry"`
	Kind  IssueKind    `json:"kind"`
}
