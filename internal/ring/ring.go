package ring

import (
	"errors"
	"sync"
)

// Capacity is fixed: a fight needs exactly two competitors.
const Capacity = 2

var (
	// ErrRingFull indicates the ring already holds two boxers.
	ErrRingFull = errors.New("ring is full")
	// ErrAlreadyInRing indicates the boxer is already staged.
	ErrAlreadyInRing = errors.New("boxer already in ring")
)

// Ring is the staging area for the next fight. It owns its occupant list
// outright; every mutation goes through the mutex, so registry and
// matchmaker calls are atomic with respect to one another.
type Ring struct {
	mu        sync.Mutex
	occupants []int64
}

// New returns an empty ring.
func New() *Ring {
	return &Ring{occupants: make([]int64, 0, Capacity)}
}

// Enter stages a boxer. The caller is responsible for checking the boxer
// exists in the registry first.
func (r *Ring) Enter(boxerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.occupants {
		if id == boxerID {
			return ErrAlreadyInRing
		}
	}
	if len(r.occupants) >= Capacity {
		return ErrRingFull
	}

	r.occupants = append(r.occupants, boxerID)
	return nil
}

// Occupants returns the staged boxer ids in insertion order.
func (r *Ring) Occupants() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, len(r.occupants))
	copy(out, r.occupants)
	return out
}

// Len reports the number of staged boxers.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.occupants)
}

// Clear empties the ring unconditionally. Idempotent.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.occupants = r.occupants[:0]
}

// Evict removes a single boxer if staged, reporting whether it was present.
// Used when a boxer is deleted from the registry.
func (r *Ring) Evict(boxerID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, id := range r.occupants {
		if id == boxerID {
			r.occupants = append(r.occupants[:i], r.occupants[i+1:]...)
			return true
		}
	}
	return false
}
