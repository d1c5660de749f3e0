package entitygo_test

import (
	"testing"

	"github.com/hupe1980/entitygo"
	"github.com/hupe1980/entitygo/core"
	"github.com/hupe1980/entitygo/flatset"
	"github.com/hupe1980/entitygo/store"
	"github.com/hupe1980/entitygo/treeset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestNew(t *testing.T) {
	transforms, bodies, _ := newScene()

	t.Run("NoStores", func(t *testing.T) {
		_, err := entitygo.New(nil)
		require.ErrorIs(t, err, entitygo.ErrNoStores)
	})

	t.Run("DuplicateKind", func(t *testing.T) {
		_, err := entitygo.Of(transforms, flatset.New[Transform]())
		var derr *entitygo.ErrDuplicateKind
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, store.KindOf[Transform](), derr.Kind)
	})

	t.Run("ArityAndKinds", func(t *testing.T) {
		u, err := entitygo.Of(transforms, bodies)
		require.NoError(t, err)

		assert.Equal(t, 2, u.Arity())
		assert.Equal(t, []store.Kind{store.KindOf[Transform](), store.KindOf[RigidBody]()}, u.Kinds())
	})
}

func TestFind(t *testing.T) {
	transforms, bodies, characters := newScene()

	t.Run("NonTerminalIffPresentInAll", func(t *testing.T) {
		u, err := entitygo.Of(transforms, bodies)
		require.NoError(t, err)

		assert.False(t, u.Find(1).Done())
		assert.False(t, u.Find(2).Done())
		assert.True(t, u.Find(3).Done())
		assert.True(t, u.Find(100).Done())
	})

	t.Run("ThreeWay", func(t *testing.T) {
		u, err := entitygo.Of(transforms, bodies, characters)
		require.NoError(t, err)

		it := u.Find(2)
		require.False(t, it.Done())

		e := it.Entity()
		assert.Equal(t, core.ID(2), e.ID())

		tr := entitygo.MustGet[Transform](e)
		bd := entitygo.MustGet[RigidBody](e)
		ch := entitygo.MustGet[Character](e)

		assert.Equal(t, float32(5), tr.X)
		assert.Equal(t, float32(120), bd.Mass)
		assert.Equal(t, "Hero", ch.Archetype)

		// The view references the stored elements themselves.
		tp, ok := transforms.Get(2)
		require.True(t, ok)
		assert.Same(t, tp, tr)
		bp, ok := bodies.Get(2)
		require.True(t, ok)
		assert.Same(t, bp, bd)
		cp, ok := characters.Get(2)
		require.True(t, ok)
		assert.Same(t, cp, ch)

		assert.True(t, u.Find(1).Done())
	})

	t.Run("FindEqualsAdvancedBegin", func(t *testing.T) {
		u, err := entitygo.Of(transforms, bodies)
		require.NoError(t, err)

		it := u.Begin()
		it.Next() // now at key 2

		assert.True(t, u.Find(2).Equal(it))
	})
}

func TestFindValues(t *testing.T) {
	transforms, bodies, _ := newScene()

	u, err := entitygo.Of(transforms, bodies)
	require.NoError(t, err)

	t.Run("Hit", func(t *testing.T) {
		it, err := u.FindValues(Transform{Id: 2}, RigidBody{Id: 2})
		require.NoError(t, err)
		require.False(t, it.Done())
		assert.Equal(t, core.ID(2), it.Entity().ID())
	})

	t.Run("Miss", func(t *testing.T) {
		it, err := u.FindValues(Transform{Id: 3}, RigidBody{Id: 3})
		require.NoError(t, err)
		assert.True(t, it.Done())
	})

	t.Run("DisagreeingKeys", func(t *testing.T) {
		it, err := u.FindValues(Transform{Id: 1}, RigidBody{Id: 2})
		require.NoError(t, err)
		assert.True(t, it.Done())
	})

	t.Run("ArityMismatch", func(t *testing.T) {
		_, err := u.FindValues(Transform{Id: 1})
		var aerr *entitygo.ErrArityMismatch
		require.ErrorAs(t, err, &aerr)
		assert.Equal(t, 2, aerr.Expected)
		assert.Equal(t, 1, aerr.Actual)
	})

	t.Run("WrongValueType", func(t *testing.T) {
		_, err := u.FindValues("nope", RigidBody{Id: 1})
		var verr *store.ErrValueType
		require.ErrorAs(t, err, &verr)
	})
}

func TestContains(t *testing.T) {
	transforms, bodies, _ := newScene()

	u, err := entitygo.Of(transforms, bodies)
	require.NoError(t, err)

	assert.True(t, u.Contains(1))
	assert.True(t, u.Contains(2))
	assert.False(t, u.Contains(3))
	assert.False(t, u.Contains(100))
}

func TestCount(t *testing.T) {
	transforms, bodies, characters := newScene()

	t.Run("MatchesScenario", func(t *testing.T) {
		u2, err := entitygo.Of(transforms, bodies)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), u2.Count())

		u3, err := entitygo.Of(transforms, bodies, characters)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), u3.Count())
	})

	t.Run("MatchesIterationSteps", func(t *testing.T) {
		u, err := entitygo.Of(transforms, bodies, characters)
		require.NoError(t, err)

		var steps uint64
		for it := u.Begin(); !it.Done(); it.Next() {
			steps++
		}

		assert.Equal(t, u.Count(), steps)
	})
}

func TestEmptyCollection(t *testing.T) {
	transforms, bodies, _ := newScene()

	u, err := entitygo.Of(transforms, bodies, flatset.NewWithKey(characterKey))
	require.NoError(t, err)

	assert.True(t, u.Begin().Done())
	assert.True(t, u.Begin().Equal(u.End()))
	assert.Equal(t, uint64(0), u.Count())
}

func TestSingleCollection(t *testing.T) {
	transforms, _, _ := newScene()

	u, err := entitygo.Of(transforms)
	require.NoError(t, err)

	var got []core.ID
	for e := range u.All() {
		got = append(got, e.ID())

		// Pass-through: the view references the stored element itself.
		p, ok := transforms.Get(e.ID())
		require.True(t, ok)
		assert.Same(t, p, entitygo.MustGet[Transform](e))
	}

	assert.Equal(t, []core.ID{1, 2, 3}, got)
}

func TestMixedBackingStores(t *testing.T) {
	transforms, _, _ := newScene()

	characters := treeset.NewWithKey(characterKey)
	characters.Put(Character{Id: 2, Archetype: "Hero"})
	characters.Put(Character{Id: 3, Archetype: "Warlord"})

	u, err := entitygo.Of(transforms, characters)
	require.NoError(t, err)

	var got []core.ID
	for e := range u.All() {
		got = append(got, e.ID())
	}

	assert.Equal(t, []core.ID{2, 3}, got)
	assert.Equal(t, uint64(2), u.Count())
}

func TestConvenience(t *testing.T) {
	transforms, bodies, _ := newScene()

	t.Run("BeginEnd", func(t *testing.T) {
		begin, err := entitygo.Begin(transforms, bodies)
		require.NoError(t, err)
		end, err := entitygo.End(transforms, bodies)
		require.NoError(t, err)

		var got []core.ID
		for it := begin; !it.Equal(end); it.Next() {
			got = append(got, it.Entity().ID())
		}

		assert.Equal(t, []core.ID{1, 2}, got)
	})

	t.Run("Find", func(t *testing.T) {
		it, err := entitygo.Find(3, transforms, bodies)
		require.NoError(t, err)
		assert.True(t, it.Done())

		it, err = entitygo.Find(2, transforms, bodies)
		require.NoError(t, err)
		assert.False(t, it.Done())
	})

	t.Run("PropagatesErrors", func(t *testing.T) {
		_, err := entitygo.Begin()
		require.ErrorIs(t, err, entitygo.ErrNoStores)
	})
}

// Purely-reading iterations over the same collections may run concurrently;
// each iterator carries its own cursors.
func TestConcurrentReads(t *testing.T) {
	transforms, bodies, characters := newScene()

	u, err := entitygo.Of(transforms, bodies, characters)
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			var got []core.ID
			for e := range u.All() {
				got = append(got, e.ID())
			}
			assert.Equal(t, []core.ID{2}, got)
			return nil
		})
	}

	require.NoError(t, g.Wait())
}

func TestMetrics(t *testing.T) {
	transforms, bodies, _ := newScene()

	mc := &entitygo.BasicMetricsCollector{}
	u, err := entitygo.New(
		[]store.Store{transforms, bodies},
		entitygo.WithMetricsCollector(mc),
	)
	require.NoError(t, err)

	u.Find(1)
	u.Find(3)
	u.Count()

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.FindCount)
	assert.Equal(t, int64(1), stats.FindMisses)
	assert.Equal(t, int64(1), stats.CountCount)
	assert.Equal(t, int64(2), stats.CountTotal)
}
