package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Clamp clamps a value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampMagnitude limits the length of a 2D vector to max, preserving direction.
func ClampMagnitude(v mgl64.Vec2, max float64) mgl64.Vec2 {
	length := v.Len()
	if length <= max || length == 0 {
		return v
	}
	return v.Mul(max / length)
}
