package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityMovement   = 10
	PrioritySharpening = 20 // Before chopping so restored knives cut at the new level
	PriorityCooking    = 30
	PriorityChopping   = 40 // Last; applies knife degradation after sharpening settled
)
