// Package history keeps a bounded, de-duplicated most-recently-used
// list of strings, used for the recent search terms and recent file
// filters. Persistence is handled by the caller through the config
// store; this package is pure list logic.
package history

import "strings"

// DefaultCapacity bounds a history list unless overridden.
const DefaultCapacity = 20

// History is an ordered sequence of strings, most recent first.
// It is touched only from the consumer side, so it needs no locking.
type History struct {
	items    []string
	capacity int
}

// New creates an empty history with the given capacity.
// Non-positive capacities fall back to DefaultCapacity.
func New(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{capacity: capacity}
}

// NewFrom creates a history seeded from a persisted list. The seed is
// sanitised: blanks and duplicates dropped, overflow truncated.
func NewFrom(capacity int, seed []string) *History {
	h := New(capacity)
	for i := len(seed) - 1; i >= 0; i-- {
		h.Add(seed[i])
	}
	return h
}

// Add inserts value at the front. The value is trimmed first; empty
// values are ignored. An existing value moves to the front instead of
// duplicating. The list never grows beyond its capacity.
func (h *History) Add(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}

	for i, existing := range h.items {
		if existing == value {
			h.items = append(h.items[:i], h.items[i+1:]...)
			break
		}
	}

	h.items = append([]string{value}, h.items...)
	if len(h.items) > h.capacity {
		h.items = h.items[:h.capacity]
	}
}

// Items returns a copy of the list, most recent first.
func (h *History) Items() []string {
	out := make([]string, len(h.items))
	copy(out, h.items)
	return out
}

// Latest returns the most recent entry, or "" when empty.
func (h *History) Latest() string {
	if len(h.items) == 0 {
		return ""
	}
	return h.items[0]
}

// At returns the entry at index i, or "" when out of range. Used for
// stepping through recent entries from the input fields.
func (h *History) At(i int) string {
	if i < 0 || i >= len(h.items) {
		return ""
	}
	return h.items[i]
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.items)
}
