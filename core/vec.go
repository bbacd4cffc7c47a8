package core

// Vec2 is a 2D vector in kitchen-space units.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
