package component

import "github.com/skilletworks/lunchrush/core"

// IngredientComponent is immutable per-ingredient reference data
type IngredientComponent struct {
	Type         string
	Hardness     float64
	BaseChopTime float64 // Seconds per chop under a perfectly sharp knife
	Degradation  float64 // Sharpness removed from the knife per completed chop
}

// ChoppableItemComponent tracks preparation state of an ingredient
// Chops never exceeds RequiredChops; FullyChopped mirrors Chops >= RequiredChops
type ChoppableItemComponent struct {
	RequiredChops int
	Chops         int
	FullyChopped  bool
}

// ChoppingProgressComponent tracks an active chop
// Presence means a chop is in flight on this ingredient
type ChoppingProgressComponent struct {
	Knife        core.Entity // Tool degraded when the chop lands
	Elapsed      float64
	ChopDuration float64
}
