package subm

import (
	"sync"
	"time"
)

const DefaultCapacity = 1000

// Store is a bounded, append-only, in-memory collection of submissions.
// One mutex guards the size-check-then-append sequence so concurrent
// submits cannot overshoot capacity or collide on ids.
type Store struct {
	mu       sync.RWMutex
	subms    []Submission
	nextID   int // monotonic, not reset by Clear
	capacity int
}

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		nextID:   1,
		capacity: capacity,
	}
}

// Append validates nothing: callers validate fields first. It assigns the
// next id, stamps the current time and appends. Returns a capacity error
// without appending when the store is full.
func (s *Store) Append(category string, items [NumItems]string) (Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.subms) >= s.capacity {
		return Submission{}, newErrCapacityExceeded()
	}

	subm := Submission{
		ID:        s.nextID,
		Category:  category,
		Items:     items,
		CreatedAt: time.Now(),
	}
	s.nextID++
	s.subms = append(s.subms, subm)
	return subm, nil
}

// ListNewestFirst returns a copy of all submissions in reverse insertion
// order. Safe to call concurrently with writes.
func (s *Store) ListNewestFirst() []Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Submission, len(s.subms))
	for i, subm := range s.subms {
		out[len(s.subms)-1-i] = subm
	}
	return out
}

// Clear removes every submission atomically and reports how many were
// removed. The id sequence keeps counting.
func (s *Store) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.subms)
	s.subms = nil
	return n
}

func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subms)
}

func (s *Store) Capacity() int {
	return s.capacity
}
