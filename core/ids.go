// Package core defines the shared identifier types used across entitygo.
package core

// ID is the ordered key shared by all collections participating in a union.
// It uniquely identifies an element within one collection; the co-occurrence
// of one ID across several collections is what constitutes an entity.
type ID uint64

// MaxID is the maximum possible value for an ID.
const MaxID = ^ID(0)

// Identifiable is the conventional identifier accessor. Element types that
// implement it can be stored without supplying an explicit key function.
type Identifiable interface {
	ID() ID
}

// KeyFunc extracts the ordered key from an element. It must be pure and
// stable: collection ordering depends on the key never changing while the
// element resides in a set.
type KeyFunc[T any] func(T) ID

// KeyOf returns the default key extraction policy, delegating to the
// element's ID accessor.
func KeyOf[T Identifiable]() KeyFunc[T] {
	return func(v T) ID { return v.ID() }
}
