package component

// PositionComponent is an entity's location in kitchen space
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent is an entity's position change per second
type VelocityComponent struct {
	X, Y float64
}
