package entitygo

import (
	"iter"
	"time"

	"github.com/hupe1980/entitygo/core"
	"github.com/hupe1980/entitygo/keyset"
	"github.com/hupe1980/entitygo/store"
)

// Union binds one or more ordered collections by reference and exposes
// intersection iteration and lookup over them.
//
// A union never mutates its collections and does not own them: its validity
// is bounded by the concurrent validity of every referenced collection, and
// the caller must not mutate any of them while an iterator obtained from the
// union is live.
type Union struct {
	stores []store.Store
	kinds  []store.Kind
	opts   options
}

// New creates a union over the given collections. The column order of every
// composite view follows the order of stores. Each collection must hold a
// distinct element kind.
func New(stores []store.Store, optFns ...Option) (*Union, error) {
	if len(stores) == 0 {
		return nil, ErrNoStores
	}

	opts := applyOptions(optFns)

	kinds := make([]store.Kind, len(stores))
	seen := make(map[store.Kind]struct{}, len(stores))
	for i, s := range stores {
		k := s.Kind()
		if _, dup := seen[k]; dup {
			return nil, &ErrDuplicateKind{Kind: k}
		}
		seen[k] = struct{}{}
		kinds[i] = k
	}

	u := &Union{
		stores: stores,
		kinds:  kinds,
		opts:   opts,
	}

	opts.logger.WithArity(len(stores)).Debug("union created", "kinds", kindNames(kinds))

	return u, nil
}

// Arity returns the number of collections bound by the union.
func (u *Union) Arity() int { return len(u.stores) }

// Kinds returns the element kinds of the union's columns in order.
func (u *Union) Kinds() []store.Kind {
	kinds := make([]store.Kind, len(u.kinds))
	copy(kinds, u.kinds)
	return kinds
}

// Begin returns an iterator positioned at the first key common to all
// collections, or a terminal iterator when the intersection is empty.
func (u *Union) Begin() *Iterator {
	cursors := make([]store.Cursor, len(u.stores))
	for i, s := range u.stores {
		cursors[i] = s.Cursor()
	}
	return newIterator(cursors)
}

// End returns the terminal iterator.
func (u *Union) End() *Iterator {
	return newTerminalIterator()
}

// Find looks id up independently in every collection, in O(log n) each. Any
// miss makes the result terminal; otherwise the hits become the iterator's
// cursors directly, with no synchronization pass.
func (u *Union) Find(id core.ID) *Iterator {
	start := time.Now()

	cursors := make([]store.Cursor, len(u.stores))
	for i, s := range u.stores {
		c := s.Find(id)
		if !c.Valid() {
			u.opts.metricsCollector.RecordFind(time.Since(start), false)
			u.opts.logger.Debug("find missed", "id", uint64(id), "kind", u.kinds[i].String())
			return newTerminalIterator()
		}
		cursors[i] = c
	}

	u.opts.metricsCollector.RecordFind(time.Since(start), true)

	return newFoundIterator(cursors, id)
}

// FindValues is Find with one native lookup value per collection, delegated
// to each collection's own lookup semantics. The number of values must match
// the union's arity.
func (u *Union) FindValues(vals ...any) (*Iterator, error) {
	if len(vals) != len(u.stores) {
		return nil, &ErrArityMismatch{Expected: len(u.stores), Actual: len(vals)}
	}

	start := time.Now()

	cursors := make([]store.Cursor, len(u.stores))
	for i, s := range u.stores {
		c, err := s.FindValue(vals[i])
		if err != nil {
			return nil, err
		}
		if !c.Valid() {
			u.opts.metricsCollector.RecordFind(time.Since(start), false)
			return newTerminalIterator(), nil
		}
		cursors[i] = c
	}

	// Independent native lookups can land on different keys; a common key
	// is only guaranteed when all hits agree.
	id := cursors[0].ID()
	for _, c := range cursors[1:] {
		if c.ID() != id {
			u.opts.metricsCollector.RecordFind(time.Since(start), false)
			return newTerminalIterator(), nil
		}
	}

	u.opts.metricsCollector.RecordFind(time.Since(start), true)

	return newFoundIterator(cursors, id), nil
}

// Contains reports whether id is present in every collection of the union.
func (u *Union) Contains(id core.ID) bool {
	for _, s := range u.stores {
		if !s.Keys().Contains(id) {
			return false
		}
	}
	return true
}

// Count returns the intersection cardinality, computed from the
// collections' key sets without touching any element.
func (u *Union) Count() uint64 {
	start := time.Now()

	sets := make([]*keyset.Set, len(u.stores))
	for i, s := range u.stores {
		sets[i] = s.Keys()
	}
	count := keyset.Intersection(sets...).Cardinality()

	u.opts.metricsCollector.RecordCount(time.Since(start), count)

	return count
}

// All returns an iterator over every composite view in the intersection, in
// ascending key order.
func (u *Union) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for it := u.Begin(); !it.Done(); it.Next() {
			if !yield(it.Entity()) {
				return
			}
		}
	}
}

func kindNames(kinds []store.Kind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
