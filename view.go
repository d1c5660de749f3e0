package entitygo

import (
	"github.com/hupe1980/entitygo/core"
	"github.com/hupe1980/entitygo/store"
)

// Entity is a composite view over the elements that share one ID across the
// collections of a union: one reference per collection, all captured at a
// single dereference.
//
// Entities are transient value objects. They do not extend the lifetime of
// the referenced elements and do not protect against mutation; mutating a
// source collection invalidates every outstanding view over it.
type Entity struct {
	id   core.ID
	refs []store.Ref
}

// ID returns the key shared by all components of the view.
func (e Entity) ID() core.ID { return e.id }

// Len returns the number of components in the view.
func (e Entity) Len() int { return len(e.refs) }

// Kinds returns the component kinds of the view in column order.
func (e Entity) Kinds() []store.Kind {
	kinds := make([]store.Kind, len(e.refs))
	for i, r := range e.refs {
		kinds[i] = r.Kind()
	}
	return kinds
}

// Ref returns the type-erased reference for the given kind.
func (e Entity) Ref(kind store.Kind) (store.Ref, bool) {
	for _, r := range e.refs {
		if r.Kind() == kind {
			return r, true
		}
	}
	return store.Ref{}, false
}

// Narrow projects the view onto an ordered subset of its component kinds,
// copying only the relevant references. It returns ErrKindNotFound when a
// requested kind is not part of the view.
func (e Entity) Narrow(kinds ...store.Kind) (Entity, error) {
	refs := make([]store.Ref, len(kinds))
	for i, k := range kinds {
		r, ok := e.Ref(k)
		if !ok {
			return Entity{}, &ErrKindNotFound{Kind: k}
		}
		refs[i] = r
	}
	return Entity{id: e.id, refs: refs}, nil
}

// Get returns a mutable reference to the component of type T. It returns
// ErrKindNotFound when the view has no such component and ErrReadOnly when
// the component's source collection is read-only.
func Get[T any](e Entity) (*T, error) {
	kind := store.KindOf[T]()

	r, ok := e.Ref(kind)
	if !ok {
		return nil, &ErrKindNotFound{Kind: kind}
	}
	if r.ReadOnly() {
		return nil, &ErrReadOnly{Kind: kind}
	}

	return r.Pointer().(*T), nil
}

// Value returns a copy of the component of type T. Copies are always
// permitted, including for read-only components.
func Value[T any](e Entity) (T, error) {
	kind := store.KindOf[T]()

	r, ok := e.Ref(kind)
	if !ok {
		var zero T
		return zero, &ErrKindNotFound{Kind: kind}
	}

	return *r.Pointer().(*T), nil
}

// MustGet is like Get but panics on error. Intended for call sites that
// statically know the component is present and mutable.
func MustGet[T any](e Entity) *T {
	p, err := Get[T](e)
	if err != nil {
		panic(err)
	}
	return p
}
