package entitygo_test

import (
	"fmt"

	"github.com/hupe1980/entitygo"
	"github.com/hupe1980/entitygo/flatset"
	"github.com/hupe1980/entitygo/store"
)

func Example() {
	transforms := flatset.New[Transform]()
	bodies := flatset.New[RigidBody]()
	characters := flatset.NewWithKey(characterKey)

	// Three entities, each implicitly defined by its components.
	transforms.Put(Transform{Id: 1, X: 2, Y: 3, Z: 4})
	bodies.Put(RigidBody{Id: 1, Mass: 120})

	transforms.Put(Transform{Id: 2, X: 5, Y: 7, Z: 8})
	bodies.Put(RigidBody{Id: 2, Mass: 120})
	characters.Put(Character{Id: 2, Archetype: "Hero"})

	transforms.Put(Transform{Id: 3, X: 15, Y: -7, Z: 8})
	characters.Put(Character{Id: 3, Archetype: "Warlord"})

	// Entities with both a Transform and a RigidBody.
	u, _ := entitygo.Of(transforms, bodies)
	for e := range u.All() {
		t := entitygo.MustGet[Transform](e)
		b := entitygo.MustGet[RigidBody](e)
		fmt.Printf("entity %d: x=%g mass=%g\n", e.ID(), t.X, b.Mass)
	}

	// Entities with all three components.
	u3, _ := entitygo.Of(transforms, bodies, characters)
	fmt.Println("full entities:", u3.Count())

	// Output:
	// entity 1: x=2 mass=120
	// entity 2: x=5 mass=120
	// full entities: 1
}

func ExampleUnion_Find() {
	transforms := flatset.New[Transform]()
	bodies := flatset.New[RigidBody]()

	transforms.Put(Transform{Id: 7, X: 1})
	bodies.Put(RigidBody{Id: 7, Mass: 10})

	u, _ := entitygo.Of(transforms, bodies)

	if it := u.Find(7); !it.Done() {
		fmt.Println("found", it.Entity().ID())
	}
	if it := u.Find(8); it.Done() {
		fmt.Println("8 is not in every set")
	}

	// Output:
	// found 7
	// 8 is not in every set
}

func ExampleEntity_Narrow() {
	transforms := flatset.New[Transform]()
	bodies := flatset.New[RigidBody]()

	transforms.Put(Transform{Id: 1, X: 3})
	bodies.Put(RigidBody{Id: 1, Mass: 9})

	it, _ := entitygo.Find(1, transforms, bodies)
	e := it.Entity()

	narrow, _ := e.Narrow(store.KindOf[RigidBody]())
	fmt.Println(narrow.Len(), entitygo.MustGet[RigidBody](narrow).Mass)

	// Output:
	// 1 9
}
