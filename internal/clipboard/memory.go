package clipboard

import (
	"sync"

	"github.com/berrythewa/clipstack/internal/types"
)

// Memory is an in-process Clipboard. It backs tests and headless daemon
// runs where no display server is reachable; writes from any goroutine play
// the role of external applications touching the clipboard.
type Memory struct {
	mu      sync.Mutex
	reps    []types.Representation
	version uint64
}

// NewMemory returns an empty in-memory clipboard at version 0.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Version() (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version, nil
}

func (m *Memory) Read() ([]types.Representation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyRepresentations(m.reps), nil
}

func (m *Memory) Write(reps []types.Representation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reps = copyRepresentations(reps)
	m.version++
	return nil
}

func (m *Memory) Close() error {
	return nil
}

func copyRepresentations(reps []types.Representation) []types.Representation {
	out := make([]types.Representation, len(reps))
	for i, r := range reps {
		data := make([]byte, len(r.Data))
		copy(data, r.Data)
		out[i] = types.Representation{Type: r.Type, Data: data}
	}
	return out
}
