package entitygo_test

import (
	"testing"

	"github.com/hupe1980/entitygo"
	"github.com/hupe1980/entitygo/core"
	"github.com/hupe1980/entitygo/flatset"
)

func newBenchUnion(b *testing.B, n int) *entitygo.Union {
	b.Helper()

	transforms := flatset.New[Transform]()
	bodies := flatset.New[RigidBody]()

	for i := 0; i < n; i++ {
		transforms.Put(Transform{Id: core.ID(i)})
		if i%2 == 0 {
			bodies.Put(RigidBody{Id: core.ID(i)})
		}
	}

	u, err := entitygo.Of(transforms, bodies)
	if err != nil {
		b.Fatal(err)
	}
	return u
}

func BenchmarkIterate(b *testing.B) {
	u := newBenchUnion(b, 10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for it := u.Begin(); !it.Done(); it.Next() {
			_ = it.Entity()
		}
	}
}

func BenchmarkFind(b *testing.B) {
	u := newBenchUnion(b, 10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = u.Find(core.ID((i * 2) % 10_000))
	}
}

func BenchmarkCount(b *testing.B) {
	u := newBenchUnion(b, 10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = u.Count()
	}
}
