package parameter

// Doneness scale for cooked food
// 0 is raw, BurnThreshold is perfectly cooked, DonenessMax is ruined
const (
	DonenessMax   = 2.0
	BurnThreshold = 1.0
)

// CoolingFactor is the fraction of the full-heat cooking rate at which
// doneness recedes while a food item is off heat
const CoolingFactor = 0.3

// DefaultSharpnessMax is the stock ceiling for knife sharpness before upgrades
const DefaultSharpnessMax = 1.0
