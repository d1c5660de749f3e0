package entitygo_test

import (
	"github.com/hupe1980/entitygo/core"
	"github.com/hupe1980/entitygo/flatset"
)

// Test components modeled on a small game scene: an entity is an ID that
// occurs in several of these sets at once.

type Transform struct {
	Id      core.ID
	X, Y, Z float32
}

func (t Transform) ID() core.ID { return t.Id }

type RigidBody struct {
	Id   core.ID
	Mass float32
}

func (b RigidBody) ID() core.ID { return b.Id }

// Character deliberately has no ID accessor; its sets are built with an
// explicit key function to exercise the override policy.
type Character struct {
	Id        core.ID
	Archetype string
}

func characterKey(c Character) core.ID { return c.Id }

// newScene builds three component sets with the canonical fixture:
// transforms hold {1,2,3}, bodies {1,2}, characters {2,3}.
func newScene() (*flatset.Set[Transform], *flatset.Set[RigidBody], *flatset.Set[Character]) {
	transforms := flatset.New[Transform]()
	bodies := flatset.New[RigidBody]()
	characters := flatset.NewWithKey(characterKey)

	transforms.Put(Transform{Id: 1, X: 2, Y: 3, Z: 4})
	bodies.Put(RigidBody{Id: 1, Mass: 120})

	transforms.Put(Transform{Id: 2, X: 5, Y: 7, Z: 8})
	bodies.Put(RigidBody{Id: 2, Mass: 120})
	characters.Put(Character{Id: 2, Archetype: "Hero"})

	transforms.Put(Transform{Id: 3, X: 15, Y: -7, Z: 8})
	characters.Put(Character{Id: 3, Archetype: "Warlord"})

	return transforms, bodies, characters
}
