package geometry

import "math"

const (
	// TwoPi is a full turn in radians.
	TwoPi = 2 * math.Pi

	// FullCircleDeg is a full turn in degrees.
	FullCircleDeg = 360.0

	// Sqrt2 is the ratio between the diagonal and the side of a square.
	Sqrt2 = math.Sqrt2

	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
)

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * degToRad
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * radToDeg
}

// NormalizeAngle maps any angle in radians into [0, 2π) using floored modulo.
func NormalizeAngle(rad float64) float64 {
	return floorMod(rad, TwoPi)
}

// HueDegToRad normalises a hue in degrees into [0, 360) and converts it to
// radians. Negative hues and hues above 360 are accepted.
func HueDegToRad(hueDeg float64) float64 {
	return DegToRad(floorMod(hueDeg, FullCircleDeg))
}

// RadToHueDeg converts an angle in radians to a hue in [0, 360).
func RadToHueDeg(rad float64) float64 {
	return floorMod(RadToDeg(rad), FullCircleDeg)
}

// AngularDistance returns the smallest separation between two angles on a
// circle. The result is in [0, π] and symmetric in its arguments.
func AngularDistance(a, b float64) float64 {
	diff := math.Mod(math.Abs(a-b), TwoPi)
	if diff > math.Pi {
		return TwoPi - diff
	}
	return diff
}

// CalculateAngle returns the angle of p around the centre of a container,
// atan2(dy, dx), in (-π, π]. A zero container measures from the origin, and a
// point exactly on the centre yields 0.
func CalculateAngle(p Point, container Size) float64 {
	c := container.Center()
	return math.Atan2(p.Y-c.Y, p.X-c.X)
}

// floorMod is the floored modulo: the result has the sign of m and is never
// equal to m, including when x is a tiny negative number.
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r = 0
	}
	return r
}

// Clamp restricts v to [lo, hi]. An inverted range collapses to lo and NaN
// becomes lo, so callers always receive a usable value.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo || math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to [0, 1]; NaN becomes 0.
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Fraction returns num/den clamped to [0, 1]. A non-positive denominator
// yields 0 rather than an infinity or NaN.
func Fraction(num, den float64) float64 {
	if den <= 0 || math.IsNaN(den) {
		return 0
	}
	return Clamp01(num / den)
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
