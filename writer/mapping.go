package writer

// Artifact is one export destination: a path and the payload to place there.
type Artifact struct {
	Path string
	Body Body
}

// Mapping maps logical output ids to artifacts, preserving insertion order
// for deterministic multi-file and archive output.
type Mapping struct {
	ids     []string
	entries map[string]Artifact
}

// Create an empty export mapping.
func NewMapping() *Mapping {
	return &Mapping{entries: make(map[string]Artifact)}
}

// Add or replace an artifact. A fresh id is appended to the iteration order.
func (m *Mapping) Add(id, path string, body Body) {
	if _, exists := m.entries[id]; !exists {
		m.ids = append(m.ids, id)
	}
	m.entries[id] = Artifact{Path: path, Body: body}
}

// Look up an artifact by logical id.
func (m *Mapping) Get(id string) (Artifact, bool) {
	art, exists := m.entries[id]
	return art, exists
}

// Return the logical ids in iteration order.
func (m *Mapping) IDs() []string {
	return append([]string(nil), m.ids...)
}

// Return the number of entries.
func (m *Mapping) Len() int {
	return len(m.ids)
}

// Visit every artifact in iteration order. The first error aborts the walk
// and is returned to the caller.
func (m *Mapping) Each(visit func(id string, art Artifact) error) error {
	for _, id := range m.ids {
		if err := visit(id, m.entries[id]); err != nil {
			return err
		}
	}
	return nil
}
