package domain

import "math"

const twoPi = 2 * math.Pi

// DegToRad converts degrees to radians.
func DegToRad(d float64) float64 {
	return d * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(r float64) float64 {
	return r * 180 / math.Pi
}

// NormalizeAngle wraps a into (-π, π]. +π is kept as is; -π maps to +π.
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a > math.Pi {
		a -= twoPi
	} else if a <= -math.Pi {
		a += twoPi
	}
	return a
}

// ToCompassBearing maps an atan2 result in (-π, π] onto [0, 2π).
func ToCompassBearing(a float64) float64 {
	if a < 0 {
		a += twoPi
		// A tiny negative input rounds up to exactly 2π.
		if a >= twoPi {
			return 0
		}
	}
	return a
}

// wrapDegrees reduces d into [0, 360).
func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		return 0
	}
	return d
}
