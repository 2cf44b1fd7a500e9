package gamemath

import "math"

// Angle constants used by the movement and camera code.
const (
	Pi     = math.Pi
	HalfPi = math.Pi / 2.0
	TwoPi  = math.Pi * 2.0
)

// DegToRad converts an angle in degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * (math.Pi / 180.0)
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * (180.0 / math.Pi)
}
