package parameter

// Chop duration curve: duration = BaseChopTime / (ChopSpeedFloor + sharpness*ChopSpeedSlope)
// The floor keeps a fully dull knife making progress instead of dividing
// toward infinity; at sharpness 1.0 the divisor reaches 1.0 and the chop
// takes exactly BaseChopTime
const (
	ChopSpeedFloor = 0.3
	ChopSpeedSlope = 0.7
)
