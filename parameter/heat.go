package parameter

import "math"

// Discrete heat levels selectable on a stove burner
// HeatSourceComponent.Heat always holds one of these values
const (
	HeatOff    = 0.0
	HeatLow    = 0.33
	HeatMedium = 0.66
	HeatHigh   = 1.0
)

// heatLevels lists the levels in ascending order for snapping
var heatLevels = [...]float64{HeatOff, HeatLow, HeatMedium, HeatHigh}

// SnapHeat maps a requested heat value to the nearest discrete level
// Midpoint ties resolve toward the lower level
func SnapHeat(requested float64) float64 {
	best := heatLevels[0]
	bestDist := math.Abs(requested - best)
	for _, level := range heatLevels[1:] {
		dist := math.Abs(requested - level)
		if dist < bestDist {
			best = level
			bestDist = dist
		}
	}
	return best
}
