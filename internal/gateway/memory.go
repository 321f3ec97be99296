package gateway

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process Gateway used by tests and local development. It
// mimics the replace-all write semantics of the real backends.
type Memory struct {
	mu   sync.Mutex
	tabs map[string][][]string

	// ReadErr and WriteErr, when set, force the corresponding operation to
	// fail as if the backend were unreachable.
	ReadErr  error
	WriteErr error
}

// Verify interface compliance
var _ Gateway = (*Memory)(nil)

// NewMemory creates an empty in-memory gateway
func NewMemory() *Memory {
	return &Memory{tabs: make(map[string][][]string)}
}

// Seed replaces a tab's contents without the error toggles applying
func (m *Memory) Seed(tab string, rows [][]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tabs[tab] = copyRows(rows)
}

func (m *Memory) ReadAll(_ context.Context, tab string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, fmt.Errorf("%w: read tab %s: %v", ErrBackendUnavailable, tab, m.ReadErr)
	}
	return copyRows(m.tabs[tab]), nil
}

func (m *Memory) ReplaceAll(_ context.Context, tab string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return fmt.Errorf("%w: write tab %s: %v", ErrBackendUnavailable, tab, m.WriteErr)
	}
	m.tabs[tab] = copyRows(rows)
	return nil
}

func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
