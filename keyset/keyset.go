// Package keyset implements compressed sets of entity IDs.
//
// A Set wraps a 64-bit Roaring Bitmap. Every bundled collection maintains
// one alongside its elements, which lets a union compute intersection
// cardinality and membership without walking the collections themselves.
package keyset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/entitygo/core"
)

// Set is a compressed, ordered set of IDs.
// It wraps the official roaring implementation.
type Set struct {
	rb *roaring64.Bitmap
}

// New creates a new empty key set.
func New() *Set {
	return &Set{
		rb: roaring64.New(),
	}
}

// Of creates a key set containing the given IDs.
func Of(ids ...core.ID) *Set {
	s := New()
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add adds an ID to the set.
func (s *Set) Add(id core.ID) {
	s.rb.Add(uint64(id))
}

// Remove removes an ID from the set.
func (s *Set) Remove(id core.ID) {
	s.rb.Remove(uint64(id))
}

// Contains checks if an ID is in the set.
func (s *Set) Contains(id core.ID) bool {
	return s.rb.Contains(uint64(id))
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of IDs in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// And intersects the set in place with other.
func (s *Set) And(other *Set) {
	s.rb.And(other.rb)
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		rb: s.rb.Clone(),
	}
}

// All returns an iterator over the IDs in ascending order.
func (s *Set) All() iter.Seq[core.ID] {
	return func(yield func(core.ID) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(core.ID(it.Next())) {
				return
			}
		}
	}
}

// Intersection returns the intersection of one or more key sets as a new set.
func Intersection(sets ...*Set) *Set {
	if len(sets) == 0 {
		return New()
	}

	out := sets[0].Clone()
	for _, s := range sets[1:] {
		out.And(s)
	}

	return out
}
