// Package session tracks the SSE sessions of the HTTP transport.
//
// A session exists from the moment its push channel opens until it closes;
// posted messages find their session by id.
package session

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Manager is a concurrent id → *Session store.
type Manager struct {
	sessions sync.Map // id → *Session
	count    atomic.Int64
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// NewID returns a fresh random session id.
func NewID() string { return uuid.NewString() }

// Add stores s. An existing session with the same id is replaced.
func (m *Manager) Add(s *Session) {
	if _, loaded := m.sessions.Swap(s.ID, s); !loaded {
		m.count.Add(1)
	}
}

// Get returns the session for id.
func (m *Manager) Get(id string) (*Session, bool) {
	v, ok := m.sessions.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

// Remove deletes the session for id. Removing an unknown id is a no-op.
func (m *Manager) Remove(id string) {
	if _, loaded := m.sessions.LoadAndDelete(id); loaded {
		m.count.Add(-1)
	}
}

// Len returns the number of open sessions.
func (m *Manager) Len() int { return int(m.count.Load()) }

// IDs returns the ids of the open sessions in no particular order.
func (m *Manager) IDs() []string {
	var ids []string
	m.sessions.Range(func(k, _ any) bool {
		ids = append(ids, k.(string))
		return true
	})
	return ids
}
