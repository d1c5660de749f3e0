// Package store defines the contract an ordered collection must satisfy to
// participate in a union.
//
// The Store interface is the capability predicate: only containers that
// guarantee ascending, duplicate-free iteration by ID and O(log n) lookup can
// implement it, and supplying anything else fails to compile. Elements are
// addressed across collection types through a runtime kind tag (see Kind) and
// type-erased references (see Ref).
package store

import (
	"fmt"
	"reflect"

	"github.com/hupe1980/entitygo/core"
	"github.com/hupe1980/entitygo/keyset"
)

// Kind identifies the element type of a collection at runtime. Unions address
// their columns by kind, and composite views resolve component lookups
// through it.
type Kind struct {
	t reflect.Type
}

// KindOf returns the kind tag for element type T.
func KindOf[T any]() Kind {
	return Kind{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// String returns the element type name.
func (k Kind) String() string {
	if k.t == nil {
		return "<none>"
	}
	return k.t.String()
}

// Ref is a type-erased reference to a single element residing in a
// collection. Refs are transient: they do not extend the lifetime of the
// referenced element and are invalidated by whatever mutation rules the
// owning collection defines.
type Ref struct {
	kind     Kind
	ptr      any // *T
	readOnly bool
}

// NewRef creates a reference to the element pointed to by ptr (a *T).
// It is intended for Store implementations producing cursor output.
func NewRef(kind Kind, ptr any) Ref {
	return Ref{kind: kind, ptr: ptr}
}

// Kind returns the element kind of the reference.
func (r Ref) Kind() Kind { return r.kind }

// ReadOnly reports whether the referenced element came from a read-only
// collection.
func (r Ref) ReadOnly() bool { return r.readOnly }

// Pointer returns the underlying *T. Callers must not mutate through it when
// the reference is read-only; use the accessors in the root package, which
// enforce this.
func (r Ref) Pointer() any { return r.ptr }

// Frozen returns a copy of the reference marked read-only.
func (r Ref) Frozen() Ref {
	r.readOnly = true
	return r
}

// Cursor is a position within one ordered collection, paired with its
// exhaustion state. A cursor is exhausted exactly when Valid reports false;
// once exhausted it stays exhausted for its lifetime.
type Cursor interface {
	// Valid reports whether the cursor references an element.
	Valid() bool

	// ID returns the key at the current position. It must only be called
	// when Valid reports true.
	ID() core.ID

	// Next advances the cursor by one element, exhausting it when no
	// element remains.
	Next()

	// SeekGE advances the cursor forward to the first element whose key is
	// >= id, exhausting it when no such element exists. It never moves
	// backward; a cursor already at or past id stays put.
	SeekGE(id core.ID)

	// Ref returns a type-erased reference to the current element. It must
	// only be called when Valid reports true.
	Ref() Ref

	// Clone returns an independent cursor at the same position.
	Clone() Cursor
}

// Store is an ordered, duplicate-free collection of elements keyed by ID.
// Ascending key order must be maintained at all times by the owner; Find must
// run in O(log n) expected time.
type Store interface {
	// Kind returns the element kind stored in this collection.
	Kind() Kind

	// Len returns the number of elements.
	Len() int

	// Cursor returns a cursor at the collection's first element, exhausted
	// when the collection is empty.
	Cursor() Cursor

	// Find returns a cursor positioned at the element with the given key,
	// or an exhausted cursor when the key is absent.
	Find(id core.ID) Cursor

	// FindValue looks an element up by the collection's native search
	// value (an element value of the stored type). It returns
	// ErrValueType when v is not of the stored type.
	FindValue(v any) (Cursor, error)

	// Keys returns the collection's key set. The returned set is live and
	// must not be mutated by callers.
	Keys() *keyset.Set
}

// ErrValueType indicates a native lookup value of the wrong type.
type ErrValueType struct {
	Kind  Kind
	Value any
}

func (e *ErrValueType) Error() string {
	return fmt.Sprintf("lookup value of type %T does not match store kind %s", e.Value, e.Kind)
}
