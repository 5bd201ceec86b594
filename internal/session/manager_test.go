package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/occirank/Haloscan-mcp-server/internal/credential"
)

func TestManager_AddGetRemove(t *testing.T) {
	m := NewManager()
	creds := credential.NewHolder("k")
	s := New(NewID(), nil, creds, "127.0.0.1:1234")

	m.Add(s)
	assert.Equal(t, 1, m.Len())

	got, ok := m.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Same(t, creds, got.Credentials)
	assert.False(t, got.CreatedAt.IsZero())

	m.Remove(s.ID)
	_, ok = m.Get(s.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())

	m.Remove(s.ID)
	assert.Equal(t, 0, m.Len())
}

func TestManager_ReplaceKeepsCount(t *testing.T) {
	m := NewManager()
	m.Add(New("same", nil, nil, ""))
	m.Add(New("same", nil, nil, ""))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []string{"same"}, m.IDs())
}

func TestNewID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestManager_Concurrent(t *testing.T) {
	m := NewManager()
	var wg sync.WaitGroup
	ids := make([]string, 64)
	for i := range ids {
		ids[i] = NewID()
	}
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			m.Add(New(id, nil, nil, ""))
		}(id)
	}
	wg.Wait()
	assert.Equal(t, len(ids), m.Len())

	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			m.Remove(id)
		}(id)
	}
	wg.Wait()
	assert.Equal(t, 0, m.Len())
}
