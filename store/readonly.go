package store

import (
	"github.com/hupe1980/entitygo/core"
	"github.com/hupe1980/entitygo/keyset"
)

// ReadOnly wraps a store so that every reference produced through it is
// read-only. This is the explicit read-only view kind: mixing wrapped and
// unwrapped stores in one union yields per-component mutability.
func ReadOnly(s Store) Store {
	if _, ok := s.(*readOnlyStore); ok {
		return s
	}
	return &readOnlyStore{inner: s}
}

type readOnlyStore struct {
	inner Store
}

var _ Store = (*readOnlyStore)(nil)

func (s *readOnlyStore) Kind() Kind { return s.inner.Kind() }

func (s *readOnlyStore) Len() int { return s.inner.Len() }

func (s *readOnlyStore) Cursor() Cursor {
	return &readOnlyCursor{inner: s.inner.Cursor()}
}

func (s *readOnlyStore) Find(id core.ID) Cursor {
	return &readOnlyCursor{inner: s.inner.Find(id)}
}

func (s *readOnlyStore) FindValue(v any) (Cursor, error) {
	c, err := s.inner.FindValue(v)
	if err != nil {
		return nil, err
	}
	return &readOnlyCursor{inner: c}, nil
}

func (s *readOnlyStore) Keys() *keyset.Set { return s.inner.Keys() }

type readOnlyCursor struct {
	inner Cursor
}

var _ Cursor = (*readOnlyCursor)(nil)

func (c *readOnlyCursor) Valid() bool { return c.inner.Valid() }

func (c *readOnlyCursor) ID() core.ID { return c.inner.ID() }

func (c *readOnlyCursor) Next() { c.inner.Next() }

func (c *readOnlyCursor) SeekGE(id core.ID) { c.inner.SeekGE(id) }

func (c *readOnlyCursor) Ref() Ref { return c.inner.Ref().Frozen() }

func (c *readOnlyCursor) Clone() Cursor {
	return &readOnlyCursor{inner: c.inner.Clone()}
}
