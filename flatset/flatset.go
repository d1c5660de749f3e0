// Package flatset provides the default base collection for unions: a sorted,
// duplicate-free slice of elements keyed by ID.
//
// Elements are stored contiguously in ascending key order, giving cache
// friendly iteration and O(log n) lookup via binary search. Inserts and
// deletes shift the tail of the slice, so flatset suits workloads that read
// far more than they write; see package treeset for a tree-backed
// alternative with the same capability surface.
//
// No synchronization is performed. The caller must not mutate a set while a
// cursor or union over it is live; any mutation invalidates outstanding
// cursors and references.
package flatset

import (
	"iter"
	"sort"

	"github.com/hupe1980/entitygo/core"
	"github.com/hupe1980/entitygo/keyset"
	"github.com/hupe1980/entitygo/store"
)

// Set is a sorted-slice collection of elements of type T.
type Set[T any] struct {
	key   core.KeyFunc[T]
	kind  store.Kind
	items []T
	ids   *keyset.Set
}

// New creates an empty set using the element's own ID accessor as the key
// extraction policy.
func New[T core.Identifiable]() *Set[T] {
	return NewWithKey(core.KeyOf[T]())
}

// NewWithKey creates an empty set with an explicit key extraction policy.
// Use it for element types without a natural identifier accessor.
func NewWithKey[T any](key core.KeyFunc[T]) *Set[T] {
	return &Set[T]{
		key:  key,
		kind: store.KindOf[T](),
		ids:  keyset.New(),
	}
}

// Collect creates a set from the given elements.
func Collect[T core.Identifiable](items ...T) *Set[T] {
	s := New[T]()
	for _, v := range items {
		s.Put(v)
	}
	return s
}

// search returns the insertion index for id.
func (s *Set[T]) search(id core.ID) int {
	return sort.Search(len(s.items), func(i int) bool {
		return s.key(s.items[i]) >= id
	})
}

// Put inserts v, replacing any existing element with the same key. It
// reports whether an element was replaced.
func (s *Set[T]) Put(v T) bool {
	id := s.key(v)

	i := s.search(id)
	if i < len(s.items) && s.key(s.items[i]) == id {
		s.items[i] = v
		return true
	}

	s.items = append(s.items, v)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = v
	s.ids.Add(id)

	return false
}

// Delete removes the element with the given key. It reports whether an
// element was removed.
func (s *Set[T]) Delete(id core.ID) bool {
	i := s.search(id)
	if i >= len(s.items) || s.key(s.items[i]) != id {
		return false
	}

	s.items = append(s.items[:i], s.items[i+1:]...)
	s.ids.Remove(id)

	return true
}

// Get returns a pointer to the element with the given key. The pointer is
// invalidated by any subsequent mutation of the set.
func (s *Set[T]) Get(id core.ID) (*T, bool) {
	i := s.search(id)
	if i >= len(s.items) || s.key(s.items[i]) != id {
		return nil, false
	}
	return &s.items[i], true
}

// Contains checks if an element with the given key exists.
func (s *Set[T]) Contains(id core.ID) bool {
	return s.ids.Contains(id)
}

// Len returns the number of elements.
func (s *Set[T]) Len() int { return len(s.items) }

// Kind returns the element kind stored in this set.
func (s *Set[T]) Kind() store.Kind { return s.kind }

// Keys returns the live key set of the collection.
func (s *Set[T]) Keys() *keyset.Set { return s.ids }

// All returns an iterator over the elements in ascending key order.
func (s *Set[T]) All() iter.Seq2[core.ID, *T] {
	return func(yield func(core.ID, *T) bool) {
		for i := range s.items {
			if !yield(s.key(s.items[i]), &s.items[i]) {
				return
			}
		}
	}
}

// Cursor returns a cursor at the first element.
func (s *Set[T]) Cursor() store.Cursor {
	return &cursor[T]{set: s, pos: 0}
}

// Find returns a cursor at the element with the given key, or an exhausted
// cursor when the key is absent.
func (s *Set[T]) Find(id core.ID) store.Cursor {
	i := s.search(id)
	if i >= len(s.items) || s.key(s.items[i]) != id {
		return &cursor[T]{set: s, pos: len(s.items)}
	}
	return &cursor[T]{set: s, pos: i}
}

// FindValue looks an element up by value, extracting the key with the set's
// own policy.
func (s *Set[T]) FindValue(v any) (store.Cursor, error) {
	tv, ok := v.(T)
	if !ok {
		return nil, &store.ErrValueType{Kind: s.kind, Value: v}
	}
	return s.Find(s.key(tv)), nil
}

// cursor walks the backing slice. pos == len(items) marks exhaustion.
type cursor[T any] struct {
	set *Set[T]
	pos int
}

var _ store.Cursor = (*cursor[struct{}])(nil)

func (c *cursor[T]) Valid() bool {
	return c.pos < len(c.set.items)
}

func (c *cursor[T]) ID() core.ID {
	return c.set.key(c.set.items[c.pos])
}

func (c *cursor[T]) Next() {
	if c.pos < len(c.set.items) {
		c.pos++
	}
}

func (c *cursor[T]) SeekGE(id core.ID) {
	if !c.Valid() || c.ID() >= id {
		return
	}
	// Binary search the remaining tail; forward-only by contract.
	c.pos += sort.Search(len(c.set.items)-c.pos, func(i int) bool {
		return c.set.key(c.set.items[c.pos+i]) >= id
	})
}

func (c *cursor[T]) Ref() store.Ref {
	return store.NewRef(c.set.kind, &c.set.items[c.pos])
}

func (c *cursor[T]) Clone() store.Cursor {
	return &cursor[T]{set: c.set, pos: c.pos}
}
