package command

import "github.com/skilletworks/lunchrush/core"

// SetVelocityPayload replaces an entity's velocity vector
type SetVelocityPayload struct {
	Entity   core.Entity `json:"entity"`
	Velocity core.Vec2   `json:"velocity"`
}

// SetPositionPayload teleports an entity
type SetPositionPayload struct {
	Entity   core.Entity `json:"entity"`
	Position core.Vec2   `json:"position"`
}

// StartSharpeningPayload begins restoring a knife's sharpness
type StartSharpeningPayload struct {
	Knife    core.Entity `json:"knife"`
	Duration float64     `json:"duration"`
}

// CancelSharpeningPayload stops an active sharpening operation
type CancelSharpeningPayload struct {
	Knife core.Entity `json:"knife"`
}

// SetHeatLevelPayload requests a burner heat change
// The requested value snaps to the nearest discrete heat level
type SetHeatLevelPayload struct {
	Stove core.Entity `json:"stove"`
	Heat  float64     `json:"heat"`
}

// PlaceFoodOnBurnerPayload puts a food item on a stove burner
type PlaceFoodOnBurnerPayload struct {
	Food  core.Entity `json:"food"`
	Stove core.Entity `json:"stove"`
}

// RemoveFoodFromBurnerPayload takes a food item off its burner to cool
type RemoveFoodFromBurnerPayload struct {
	Food core.Entity `json:"food"`
}

// StartChoppingPayload begins chopping an ingredient with a knife
type StartChoppingPayload struct {
	Ingredient core.Entity `json:"ingredient"`
	Knife      core.Entity `json:"knife"`
}

// CancelChoppingPayload stops an active chop without crediting it
type CancelChoppingPayload struct {
	Ingredient core.Entity `json:"ingredient"`
}
