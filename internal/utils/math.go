// internal/utils/math.go
package utils

import "math"

// Clamp ограничивает значение отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// RadToDeg переводит радианы в градусы
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
