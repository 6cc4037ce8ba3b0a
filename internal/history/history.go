// Package history keeps a bounded, most-recent-first list of generated
// passwords. The ring is a plain container and is not safe for concurrent
// use; callers that share one guard it themselves.
package history

import "time"

// DefaultCapacity bounds a ring when the caller does not pick a size.
const DefaultCapacity = 5

// Entry is one generated password with its strength verdict.
type Entry struct {
	ID        string    `json:"id"`
	Password  string    `json:"password"`
	Score     int       `json:"score"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// Ring holds up to a fixed number of entries, newest first. Adding beyond
// capacity evicts the oldest entry.
type Ring struct {
	capacity int
	entries  []Entry
}

// NewRing returns an empty ring. A capacity of zero or less falls back to
// DefaultCapacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity),
	}
}

// Add puts e at the front of the ring, evicting the oldest entry when the
// ring is full.
func (r *Ring) Add(e Entry) {
	if len(r.entries) == r.capacity {
		r.entries = r.entries[:r.capacity-1]
	}
	r.entries = append([]Entry{e}, r.entries...)
}

// Entries returns a copy of the ring's contents, newest first.
func (r *Ring) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Clear empties the ring. Capacity is unchanged.
func (r *Ring) Clear() {
	r.entries = r.entries[:0]
}

// Len reports how many entries the ring currently holds.
func (r *Ring) Len() int {
	return len(r.entries)
}

// Capacity reports the maximum number of entries the ring can hold.
func (r *Ring) Capacity() int {
	return r.capacity
}
