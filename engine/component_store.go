package engine

import (
	"github.com/skilletworks/lunchrush/component"
)

// ComponentStore provides cached pointers to the typed component stores
// Initialized once with the world; systems copy the fields they touch
// into their own struct to eliminate repeated field chasing
type ComponentStore struct {
	// Movement
	Position *Store[component.PositionComponent]
	Velocity *Store[component.VelocityComponent]

	// Knives
	Sharpness  *Store[component.SharpnessComponent]
	Sharpening *Store[component.SharpeningProgressComponent]

	// Cooking
	HeatSource       *Store[component.HeatSourceComponent]
	CookRequirements *Store[component.CookRequirementsComponent]
	Cooking          *Store[component.CookingProgressComponent]
	Burn             *Store[component.BurnProgressComponent]
	Container        *Store[component.ContainerComponent]

	// Chopping
	Ingredient *Store[component.IngredientComponent]
	Choppable  *Store[component.ChoppableItemComponent]
	Chopping   *Store[component.ChoppingProgressComponent]
}

// newComponentStore initializes every typed store
// Store names follow the component vocabulary the presentation layer
// sees in Inspector listings
func newComponentStore() ComponentStore {
	return ComponentStore{
		Position: NewStore[component.PositionComponent]("Position"),
		Velocity: NewStore[component.VelocityComponent]("Velocity"),

		Sharpness:  NewStore[component.SharpnessComponent]("Sharpness"),
		Sharpening: NewStore[component.SharpeningProgressComponent]("SharpeningProgress"),

		HeatSource:       NewStore[component.HeatSourceComponent]("HeatSource"),
		CookRequirements: NewStore[component.CookRequirementsComponent]("CookRequirements"),
		Cooking:          NewStore[component.CookingProgressComponent]("CookingProgress"),
		Burn:             NewStore[component.BurnProgressComponent]("BurnProgress"),
		Container:        NewStore[component.ContainerComponent]("Container"),

		Ingredient: NewStore[component.IngredientComponent]("Ingredient"),
		Choppable:  NewStore[component.ChoppableItemComponent]("ChoppableItem"),
		Chopping:   NewStore[component.ChoppingProgressComponent]("ChoppingProgress"),
	}
}

// all returns the stores in registration order for uniform lifecycle
// operations and deterministic digest traversal
func (c *ComponentStore) all() []AnyStore {
	return []AnyStore{
		c.Position,
		c.Velocity,
		c.Sharpness,
		c.Sharpening,
		c.HeatSource,
		c.CookRequirements,
		c.Cooking,
		c.Burn,
		c.Container,
		c.Ingredient,
		c.Choppable,
		c.Chopping,
	}
}
