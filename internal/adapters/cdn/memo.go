package cdn

import (
	"sync"

	"go.webpin.dev/webpin/internal/core/domain"
)

// Memo is an ephemeral in-process response cache keyed by exact URL. It is
// an explicit dependency of the Client rather than package state, so tests
// construct isolated instances and its lifetime is owned by the caller.
type Memo struct {
	mu      sync.RWMutex
	entries map[string]domain.Response
}

// NewMemo creates an empty response memo.
func NewMemo() *Memo {
	return &Memo{entries: make(map[string]domain.Response)}
}

func (m *Memo) get(url string) (domain.Response, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	resp, ok := m.entries[url]
	return resp, ok
}

func (m *Memo) put(url string, resp domain.Response) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[url] = resp
}

// Len returns the number of memoized responses.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
