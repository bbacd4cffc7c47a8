package event

import "github.com/skilletworks/lunchrush/core"

// SharpeningStartedPayload reports a knife entering the sharpening state
type SharpeningStartedPayload struct {
	Knife    core.Entity `json:"knife"`
	Duration float64     `json:"duration"`
}

// SharpeningProgressPayload reports per-tick sharpening advancement
type SharpeningProgressPayload struct {
	Knife    core.Entity `json:"knife"`
	Progress float64     `json:"progress"` // Fraction of duration elapsed, [0, 1]
	Level    float64     `json:"level"`
}

// KnifeSharpenedPayload reports sharpening completion
type KnifeSharpenedPayload struct {
	Knife core.Entity `json:"knife"`
	Level float64     `json:"level"` // Always the knife's max level
}

// SharpeningCancelledPayload reports an aborted sharpening operation
// Accumulated level is kept; Progress records how far it got
type SharpeningCancelledPayload struct {
	Knife    core.Entity `json:"knife"`
	Progress float64     `json:"progress"`
}

// KnifeDegradedPayload reports sharpness lost to a completed chop
type KnifeDegradedPayload struct {
	Knife  core.Entity `json:"knife"`
	Level  float64     `json:"level"` // Sharpness after degradation
	Amount float64     `json:"amount"`
}

// HeatLevelChangedPayload reports a burner heat adjustment
type HeatLevelChangedPayload struct {
	Stove    core.Entity `json:"stove"`
	Previous float64     `json:"previous"`
	Heat     float64     `json:"heat"` // Snapped discrete level now active
}

// FoodPlacedOnHeatPayload reports food landing on a burner
type FoodPlacedOnHeatPayload struct {
	Food  core.Entity `json:"food"`
	Stove core.Entity `json:"stove"`
}

// FoodRemovedFromHeatPayload reports food taken off a burner
type FoodRemovedFromHeatPayload struct {
	Food  core.Entity `json:"food"`
	Stove core.Entity `json:"stove"`
}

// CookingProgressPayload reports per-tick doneness for tracked food
type CookingProgressPayload struct {
	Food     core.Entity `json:"food"`
	Doneness float64     `json:"doneness"`
	Optimal  bool        `json:"optimal"` // Burner heat inside the item's optimal range
}

// BurningStartedPayload reports doneness first exceeding the burn threshold
type BurningStartedPayload struct {
	Food     core.Entity `json:"food"`
	Doneness float64     `json:"doneness"`
}

// FoodCookedPayload reports doneness crossing the cooked threshold
type FoodCookedPayload struct {
	Food     core.Entity `json:"food"`
	Doneness float64     `json:"doneness"`
	Quality  float64     `json:"quality"` // 1 at a perfect crossing, falling with overshoot
	Perfect  bool        `json:"perfect"`
}

// ChoppingStartedPayload reports a chop starting on an ingredient
type ChoppingStartedPayload struct {
	Ingredient core.Entity `json:"ingredient"`
	Knife      core.Entity `json:"knife"`
	Duration   float64     `json:"duration"` // Seconds, scaled by knife sharpness
}

// ChoppingProgressPayload reports per-tick chop advancement
type ChoppingProgressPayload struct {
	Ingredient core.Entity `json:"ingredient"`
	Progress   float64     `json:"progress"` // [0, 1]; 1 immediately when duration <= 0
}

// ChoppingCancelledPayload reports an aborted chop
// No chop is credited and the knife is not degraded
type ChoppingCancelledPayload struct {
	Ingredient core.Entity `json:"ingredient"`
	Progress   float64     `json:"progress"`
}

// IngredientChoppedPayload reports one completed chop
type IngredientChoppedPayload struct {
	Ingredient   core.Entity `json:"ingredient"`
	Chops        int         `json:"chops"`
	FullyChopped bool        `json:"fully_chopped"`
}

// IngredientFullyPreparedPayload reports the final chop on an ingredient
type IngredientFullyPreparedPayload struct {
	Ingredient core.Entity `json:"ingredient"`
}
