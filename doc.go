// Package entitygo composes independently sorted, key-ordered collections
// into lazily evaluated join views.
//
// Given N collections, each holding elements uniquely identified by an
// ordered ID, a Union iterates exactly the IDs present in all N collections
// and yields for each one an Entity: a fixed-arity set of references, one
// per collection, without copying or re-indexing any element. The motivating
// use is an entity-component architecture where each component type lives in
// its own sorted set and an entity is nothing more than the co-occurrence of
// an ID across a chosen subset of those sets.
//
// # Quick Start
//
//	transforms := flatset.New[Transform]()
//	bodies := flatset.New[RigidBody]()
//
//	transforms.Put(Transform{Id: 1, X: 2})
//	bodies.Put(RigidBody{Id: 1, Mass: 120})
//
//	u, _ := entitygo.Of(transforms, bodies)
//	for e := range u.All() {
//	    t := entitygo.MustGet[Transform](e)
//	    b := entitygo.MustGet[RigidBody](e)
//	    t.X += b.Mass
//	}
//
// # Lookup
//
// Find runs one O(log n) lookup per collection and is terminal when the ID
// is missing from any of them:
//
//	if it := u.Find(42); !it.Done() {
//	    e := it.Entity()
//	    // ...
//	}
//
// # Views
//
// Entities narrow to ordered subsets of their component kinds and convert to
// single component references via Get, Value and MustGet. References obtained
// from a collection wrapped with store.ReadOnly are read-only; mutability is
// tracked per component, so one view can mix read-only and mutable
// references.
//
// # Collections
//
// Any container implementing store.Store participates in unions. Two are
// bundled: flatset (sorted slice, read-optimized, the default) and treeset
// (red-black tree, write-friendlier). Both accept an explicit key extraction
// function for element types without an ID accessor.
//
// # Concurrency
//
// The core is single-threaded and performs no locking. Collections must not
// be mutated while an iterator over them is live. Multiple purely-reading
// iterations over the same collections may run concurrently.
package entitygo
