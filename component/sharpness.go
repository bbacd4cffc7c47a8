package component

// SharpnessComponent tracks a tool's cutting effectiveness
// Level stays within [0, MaxLevel]; MaxLevel rises with upgrades
type SharpnessComponent struct {
	Level    float64
	MaxLevel float64
}

// SharpeningProgressComponent tracks an active sharpening operation
// Presence means sharpening is in flight; removal returns the knife to idle
type SharpeningProgressComponent struct {
	InitialLevel float64 // Level captured at start; fixes the restoration rate
	Elapsed      float64 // Simulation seconds accumulated
	Duration     float64 // Simulation seconds until completion
}
