package scene

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// MemRegistry collects mesh payloads in memory instead of writing them to the
// filesystem. Each mesh id may be written at most once; a second writer for
// the same id is a logic error. Entries become visible to the collector only
// after their writer has been closed.
type MemRegistry struct {
	mu      sync.Mutex
	ids     []string
	entries map[string]*memEntry
}

type memEntry struct {
	path   string
	buf    bytes.Buffer
	closed bool
}

// Create an empty in-memory mesh registry.
func NewMemRegistry() *MemRegistry {
	return &MemRegistry{entries: make(map[string]*memEntry)}
}

// Return a mesh streamer writing into the registry.
func (r *MemRegistry) Streamer() MeshStreamer {
	return func(id, path string) (io.WriteCloser, error) {
		r.mu.Lock()
		defer r.mu.Unlock()

		if _, exists := r.entries[id]; exists {
			return nil, fmt.Errorf("mesh registry: duplicate write for mesh %q", id)
		}
		entry := &memEntry{path: path}
		r.entries[id] = entry
		r.ids = append(r.ids, id)
		return &memSink{registry: r, entry: entry}, nil
	}
}

// Return a probe reporting whether a payload was already streamed for an id.
// Only completed entries at the same destination count; an open writer or a
// conflicting path still routes the caller through the streamer.
func (r *MemRegistry) Probe() MeshProbe {
	return func(id, path string) bool {
		r.mu.Lock()
		defer r.mu.Unlock()

		entry, exists := r.entries[id]
		return exists && entry.closed && entry.path == path
	}
}

// Return a mesh collector reading completed entries back out of the registry.
func (r *MemRegistry) Collector() MeshCollector {
	return func(*Graph) map[string]MeshArtifact {
		r.mu.Lock()
		defer r.mu.Unlock()

		out := make(map[string]MeshArtifact, len(r.entries))
		for _, id := range r.ids {
			entry := r.entries[id]
			if !entry.closed {
				continue
			}
			out[id] = MeshArtifact{Path: entry.path, Body: entry.buf.Bytes()}
		}
		return out
	}
}

type memSink struct {
	registry *MemRegistry
	entry    *memEntry
}

func (s *memSink) Write(p []byte) (int, error) {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	if s.entry.closed {
		return 0, fmt.Errorf("mesh registry: write after close")
	}
	return s.entry.buf.Write(p)
}

func (s *memSink) Close() error {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	s.entry.closed = true
	return nil
}
