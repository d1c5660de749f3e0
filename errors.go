package entitygo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/entitygo/store"
)

var (
	// ErrNoStores is returned when a union is built over zero collections.
	ErrNoStores = errors.New("union requires at least one store")

	// ErrExhausted is the panic value used when a terminal iterator is
	// dereferenced or advanced. Reaching the terminal state is not an
	// error; failing to check for it before use is a programming defect.
	ErrExhausted = errors.New("iterator is exhausted")
)

// ErrDuplicateKind indicates that two collections in one union store the
// same element type.
type ErrDuplicateKind struct {
	Kind store.Kind
}

func (e *ErrDuplicateKind) Error() string {
	return fmt.Sprintf("duplicate kind in union: %s", e.Kind)
}

// ErrKindNotFound indicates a component lookup or narrowing request for a
// kind that is not part of the view.
type ErrKindNotFound struct {
	Kind store.Kind
}

func (e *ErrKindNotFound) Error() string {
	return fmt.Sprintf("kind not present in view: %s", e.Kind)
}

// ErrReadOnly indicates a mutable reference request for a component whose
// source collection is read-only.
type ErrReadOnly struct {
	Kind store.Kind
}

func (e *ErrReadOnly) Error() string {
	return fmt.Sprintf("component is read-only: %s", e.Kind)
}

// ErrArityMismatch indicates a per-collection lookup with the wrong number
// of search values.
type ErrArityMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrArityMismatch) Error() string {
	return fmt.Sprintf("arity mismatch: union has %d collections, got %d lookup values", e.Expected, e.Actual)
}
