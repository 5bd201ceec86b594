// Package credential holds the Haloscan API key that authenticates upstream calls.
//
// A Holder is created explicitly and passed by reference to whoever needs it.
// The stdio transport and the HTTP transport in "env" mode share one
// process-wide Holder; the HTTP transport in "header" or "query" mode creates
// one Holder per session so keys never leak between callers.
package credential

import (
	"errors"
	"strings"
	"sync"
)

// ErrMissing is returned when an upstream call is attempted without a key.
var ErrMissing = errors.New("HALOSCAN_API_KEY is not set")

// Holder is a mutable slot for one API key. The zero value is an empty holder.
type Holder struct {
	mu  sync.RWMutex
	key string
}

// NewHolder returns a Holder seeded with key (which may be empty).
func NewHolder(key string) *Holder {
	return &Holder{key: strings.TrimSpace(key)}
}

// Set replaces the current key. Subsequent calls observe the new value.
func (h *Holder) Set(key string) {
	h.mu.Lock()
	h.key = strings.TrimSpace(key)
	h.mu.Unlock()
}

// Get returns the current key, or "" when unset. A nil Holder is unset.
func (h *Holder) Get() string {
	if h == nil {
		return ""
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.key
}

// IsSet reports whether a non-empty key is held.
func (h *Holder) IsSet() bool { return h.Get() != "" }

// Require returns the current key or ErrMissing.
func (h *Holder) Require() (string, error) {
	key := h.Get()
	if key == "" {
		return "", ErrMissing
	}
	return key, nil
}

// Masked returns the key with all but the last four characters hidden,
// for status output. It returns "" when unset.
func (h *Holder) Masked() string {
	key := h.Get()
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
