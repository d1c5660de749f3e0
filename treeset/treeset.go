// Package treeset provides a red-black-tree base collection for unions.
//
// It exposes the same capability surface as package flatset but keeps its
// elements in a balanced tree, so inserts and deletes are O(log n) without
// shifting memory. Use it for collections that mutate frequently between
// iterations.
//
// No synchronization is performed; the caller must not mutate a set while a
// cursor or union over it is live.
package treeset

import (
	"iter"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/hupe1980/entitygo/core"
	"github.com/hupe1980/entitygo/keyset"
	"github.com/hupe1980/entitygo/store"
)

// Set is a tree-backed collection of elements of type T.
type Set[T any] struct {
	key  core.KeyFunc[T]
	kind store.Kind
	tree *redblacktree.Tree // uint64 -> *T
	ids  *keyset.Set
}

// New creates an empty set using the element's own ID accessor as the key
// extraction policy.
func New[T core.Identifiable]() *Set[T] {
	return NewWithKey(core.KeyOf[T]())
}

// NewWithKey creates an empty set with an explicit key extraction policy.
func NewWithKey[T any](key core.KeyFunc[T]) *Set[T] {
	return &Set[T]{
		key:  key,
		kind: store.KindOf[T](),
		tree: redblacktree.NewWith(utils.UInt64Comparator),
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

// Put inserts v, replacing any existing element with the same key. It
// reports whether an element was replaced.
func (s *Set[T]) Put(v T) bool {
	id := s.key(v)

	replaced := s.ids.Contains(id)
	s.tree.Put(uint64(id), &v)
	s.ids.Add(id)

	return replaced
}

// Delete removes the element with the given key. It reports whether an
// element was removed.
func (s *Set[T]) Delete(id core.ID) bool {
	if !s.ids.Contains(id) {
		return false
	}

	s.tree.Remove(uint64(id))
	s.ids.Remove(id)

	return true
}

// Get returns a pointer to the element with the given key. The pointer stays
// valid until the element is deleted or replaced.
func (s *Set[T]) Get(id core.ID) (*T, bool) {
	v, ok := s.tree.Get(uint64(id))
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// Contains checks if an element with the given key exists.
func (s *Set[T]) Contains(id core.ID) bool {
	return s.ids.Contains(id)
}

// Len returns the number of elements.
func (s *Set[T]) Len() int { return s.tree.Size() }

// Kind returns the element kind stored in this set.
func (s *Set[T]) Kind() store.Kind { return s.kind }

// Keys returns the live key set of the collection.
func (s *Set[T]) Keys() *keyset.Set { return s.ids }

// All returns an iterator over the elements in ascending key order.
func (s *Set[T]) All() iter.Seq2[core.ID, *T] {
	return func(yield func(core.ID, *T) bool) {
		it := s.tree.Iterator()
		for it.Next() {
			if !yield(core.ID(it.Key().(uint64)), it.Value().(*T)) {
				return
			}
		}
	}
}

// Cursor returns a cursor at the first element.
func (s *Set[T]) Cursor() store.Cursor {
	it := s.tree.Iterator()
	valid := it.Next()
	return &cursor[T]{set: s, it: it, valid: valid}
}

// Find returns a cursor at the element with the given key, or an exhausted
// cursor when the key is absent.
func (s *Set[T]) Find(id core.ID) store.Cursor {
	node, found := s.tree.Ceiling(uint64(id))
	if !found || node.Key.(uint64) != uint64(id) {
		return &cursor[T]{set: s}
	}
	return &cursor[T]{set: s, it: s.tree.IteratorAt(node), valid: true}
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

// cursor walks the backing tree in key order.
type cursor[T any] struct {
	set   *Set[T]
	it    redblacktree.Iterator
	valid bool
}

var _ store.Cursor = (*cursor[struct{}])(nil)

func (c *cursor[T]) Valid() bool { return c.valid }

func (c *cursor[T]) ID() core.ID {
	return core.ID(c.it.Key().(uint64))
}

func (c *cursor[T]) Next() {
	if c.valid {
		c.valid = c.it.Next()
	}
}

func (c *cursor[T]) SeekGE(id core.ID) {
	if !c.valid || c.ID() >= id {
		return
	}
	// Reposition via tree lookup rather than stepping node by node.
	node, found := c.set.tree.Ceiling(uint64(id))
	if !found {
		c.valid = false
		return
	}
	c.it = c.set.tree.IteratorAt(node)
}

func (c *cursor[T]) Ref() store.Ref {
	return store.NewRef(c.set.kind, c.it.Value().(*T))
}

func (c *cursor[T]) Clone() store.Cursor {
	return &cursor[T]{set: c.set, it: c.it, valid: c.valid}
}
