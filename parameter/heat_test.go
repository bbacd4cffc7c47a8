package parameter

import "testing"

func TestSnapHeat(t *testing.T) {
	cases := []struct {
		requested float64
		want      float64
	}{
		{0.0, HeatOff},
		{0.1, HeatOff},
		{0.33, HeatLow},
		{0.4, HeatLow},
		{0.5, HeatMedium},
		{0.66, HeatMedium},
		{0.75, HeatMedium},
		{0.9, HeatHigh},
		{1.0, HeatHigh},
		{-5.0, HeatOff},
		{99.0, HeatHigh},
	}
	for _, c := range cases {
		if got := SnapHeat(c.requested); got != c.want {
			t.Errorf("SnapHeat(%v) = %v, want %v", c.requested, got, c.want)
		}
	}
}

func TestSnapHeatMidpointTiesResolveLower(t *testing.T) {
	// 0.165 is equidistant from 0.0 and 0.33
	if got := SnapHeat(0.165); got != HeatOff {
		t.Errorf("SnapHeat(0.165) = %v, want %v (lower level wins ties)", got, HeatOff)
	}
	// 0.83 is equidistant from 0.66 and 1.0
	if got := SnapHeat(0.83); got != HeatMedium {
		t.Errorf("SnapHeat(0.83) = %v, want %v (lower level wins ties)", got, HeatMedium)
	}
}
