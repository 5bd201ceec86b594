package credential

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolder_Empty(t *testing.T) {
	h := NewHolder("")
	assert.False(t, h.IsSet())
	assert.Equal(t, "", h.Get())

	_, err := h.Require()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissing))
}

func TestHolder_NilIsUnset(t *testing.T) {
	var h *Holder
	assert.Equal(t, "", h.Get())
	_, err := h.Require()
	assert.ErrorIs(t, err, ErrMissing)
}

func TestHolder_SetReplaces(t *testing.T) {
	h := NewHolder("first")
	require.Equal(t, "first", h.Get())

	h.Set("  second  ")
	key, err := h.Require()
	require.NoError(t, err)
	assert.Equal(t, "second", key)

	h.Set("")
	assert.False(t, h.IsSet())
}

func TestHolder_Masked(t *testing.T) {
	assert.Equal(t, "", NewHolder("").Masked())
	assert.Equal(t, "***", NewHolder("abc").Masked())
	assert.Equal(t, "******7890", NewHolder("1234567890").Masked())
}

func TestHolder_ConcurrentAccess(t *testing.T) {
	h := NewHolder("seed")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); h.Set("key") }()
		go func() { defer wg.Done(); _ = h.Get() }()
	}
	wg.Wait()
	assert.Equal(t, "key", h.Get())
}
