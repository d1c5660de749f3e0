package entitygo

import (
	"github.com/hupe1980/entitygo/core"
	"github.com/hupe1980/entitygo/store"
)

// Iterator is a forward merge-intersection iterator over the collections of
// a union. It drives one cursor per collection toward a common key and
// yields a composite view at every key present in all collections, in
// ascending order.
//
// An iterator is terminal when the intersection is exhausted. Callers must
// check Done (or compare against the union's End iterator) before calling
// Entity or Next; both panic with ErrExhausted on a terminal iterator.
type Iterator struct {
	cursors []store.Cursor

	// frontier is the highest key observed among the cursors during
	// synchronization. Invariant: while the iterator is not terminal,
	// every cursor references an element whose key equals frontier.
	frontier core.ID

	done bool
}

// newIterator builds an iterator from freshly positioned cursors and runs
// the initial synchronization pass.
func newIterator(cursors []store.Cursor) *Iterator {
	it := &Iterator{cursors: cursors}

	// An already exhausted collection short-circuits the whole
	// intersection.
	for _, c := range cursors {
		if !c.Valid() {
			it.collapse()
			return it
		}
	}

	it.frontier = it.distinguished().ID()
	it.leapfrog()

	return it
}

// newFoundIterator builds an iterator from cursors that already agree on id.
// No synchronization pass is needed.
func newFoundIterator(cursors []store.Cursor, id core.ID) *Iterator {
	return &Iterator{cursors: cursors, frontier: id}
}

// newTerminalIterator builds an iterator in the terminal state.
func newTerminalIterator() *Iterator {
	return &Iterator{done: true}
}

// distinguished returns the cursor advanced first on every step. The last
// collection is the fixed choice, preserved from the original design; it is
// policy, not an optimization contract.
func (it *Iterator) distinguished() store.Cursor {
	return it.cursors[len(it.cursors)-1]
}

// collapse drives the iterator to its terminal state, standing in for
// moving every cursor to its end sentinel.
func (it *Iterator) collapse() {
	it.cursors = nil
	it.done = true
}

// leapfrog runs the multi-way synchronization pass: round-robin over the
// cursors, each one skipping forward to the frontier. A cursor landing past
// the frontier raises it and restarts the agreement count; a cursor running
// out collapses the iterator. The pass completes when all cursors sit on the
// frontier simultaneously. Total cost over an iterator's lifetime is linear
// in the elements scanned across all collections, never their product.
func (it *Iterator) leapfrog() {
	n := len(it.cursors)
	if n == 1 {
		// Single collection: transparent pass-through.
		return
	}

	// The distinguished cursor defined the frontier, so it already agrees.
	// n consecutive agreeing cursors in round-robin order means all agree.
	streak := 1

	for i := 0; streak < n; i = (i + 1) % n {
		c := it.cursors[i]

		c.SeekGE(it.frontier)
		if !c.Valid() {
			it.collapse()
			return
		}

		if id := c.ID(); id > it.frontier {
			it.frontier = id
			streak = 1
		} else {
			streak++
		}
	}
}

// Done reports whether the iterator is terminal.
func (it *Iterator) Done() bool { return it.done }

// Entity returns the composite view at the current common key. Repeated
// calls without an intervening Next yield reference-equal views.
//
// Entity panics with ErrExhausted when the iterator is terminal.
func (it *Iterator) Entity() Entity {
	if it.done {
		panic(ErrExhausted)
	}

	refs := make([]store.Ref, len(it.cursors))
	for i, c := range it.cursors {
		refs[i] = c.Ref()
	}

	return Entity{id: it.frontier, refs: refs}
}

// Next advances to the next key common to all collections, or to the
// terminal state when none remains. Only the distinguished collection's
// cursor is stepped before resynchronizing.
//
// Next panics with ErrExhausted when the iterator is already terminal.
func (it *Iterator) Next() {
	if it.done {
		panic(ErrExhausted)
	}

	c := it.distinguished()
	c.Next()
	if !c.Valid() {
		it.collapse()
		return
	}

	it.frontier = c.ID()
	it.leapfrog()
}

// Equal reports whether two iterators over the same collections reference
// the same position. Every corresponding cursor must match; two terminal
// iterators are always equal. Collections are duplicate-free, so cursors
// match exactly when they sit on the same key.
func (it *Iterator) Equal(other *Iterator) bool {
	if it.done || other.done {
		return it.done && other.done
	}
	if len(it.cursors) != len(other.cursors) {
		return false
	}
	for i := range it.cursors {
		if it.cursors[i].ID() != other.cursors[i].ID() {
			return false
		}
	}
	return true
}
