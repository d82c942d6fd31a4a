package store

import (
	"sync"
	"sync/atomic"

	"github.com/alexanderramin/disasterops/internal/domain"
)

// Store publishes the current snapshot. Writers are serialized; readers load
// the current pointer without locking because snapshots are never mutated.
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[Snapshot]
}

// New creates a Store whose current snapshot is initial.
func New(initial *Snapshot) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// AddToSchedule applies AddToSchedule to the current snapshot and publishes
// the result. changed is false when the call was a no-op.
func (s *Store) AddToSchedule(id string, day domain.Weekday) (snap *Snapshot, changed bool) {
	return s.apply(func(cur *Snapshot) *Snapshot { return AddToSchedule(cur, id, day) })
}

// RemoveFromSchedule applies RemoveFromSchedule to the current snapshot and
// publishes the result. changed is false when the call was a no-op.
func (s *Store) RemoveFromSchedule(id string, day domain.Weekday) (snap *Snapshot, changed bool) {
	return s.apply(func(cur *Snapshot) *Snapshot { return RemoveFromSchedule(cur, id, day) })
}

func (s *Store) apply(fn func(*Snapshot) *Snapshot) (*Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	next := fn(cur)
	if next == cur {
		return cur, false
	}
	s.current.Store(next)
	return next, true
}
