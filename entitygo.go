package entitygo

import (
	"github.com/hupe1980/entitygo/core"
	"github.com/hupe1980/entitygo/store"
)

// Of creates a union over the given collections. It is the variadic
// convenience form of New without options.
func Of(stores ...store.Store) (*Union, error) {
	return New(stores)
}

// Begin builds a union over the given collections and returns its first
// iterator.
func Begin(stores ...store.Store) (*Iterator, error) {
	u, err := New(stores)
	if err != nil {
		return nil, err
	}
	return u.Begin(), nil
}

// End builds a union over the given collections and returns its terminal
// iterator.
func End(stores ...store.Store) (*Iterator, error) {
	u, err := New(stores)
	if err != nil {
		return nil, err
	}
	return u.End(), nil
}

// Find builds a union over the given collections and looks id up in it.
func Find(id core.ID, stores ...store.Store) (*Iterator, error) {
	u, err := New(stores)
	if err != nil {
		return nil, err
	}
	return u.Find(id), nil
}
