package component

import "github.com/skilletworks/lunchrush/core"

// HeatSourceComponent is a stove burner's live state
// Heat always holds one of the parameter.Heat* levels
type HeatSourceComponent struct {
	Heat    float64
	Food    core.Entity // Food item currently on this burner
	HasFood bool
}

// CookRequirementsComponent is immutable reference data describing how a
// food item wants to be cooked
type CookRequirementsComponent struct {
	RequiresContainer bool
	ContainerType     string
	OptimalHeatMin    float64
	OptimalHeatMax    float64
	CookTime          float64 // Seconds from raw to perfect at full heat
}

// CookingProgressComponent tracks a food item while cooking or cooling
// Presence means the item is heat-tracked; Doneness stays within [0, 2]
type CookingProgressComponent struct {
	Doneness       float64
	OptimalHeatMin float64
	OptimalHeatMax float64
	CookTime       float64
	OnHeat         bool
	Stove          core.Entity // Linked burner, meaningful while OnHeat
}

// BurnProgressComponent tracks burn damage on an overcooked item
// Present exactly while Doneness exceeds 1.0; Level stays within [0, 1]
type BurnProgressComponent struct {
	Level float64
}

// ContainerComponent is a pan or pot that can hold one food item
type ContainerComponent struct {
	Type    string
	Food    core.Entity
	HasFood bool
}
