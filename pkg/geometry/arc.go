package geometry

import "math"

// StrokeCap describes how the ends of an arc stroke are drawn. Rounded caps
// extend the touchable area past the nominal arc ends.
type StrokeCap int

const (
	// CapButt ends the stroke flush with the arc angles.
	CapButt StrokeCap = iota
	// CapRound ends the stroke with a half disc of the stroke thickness.
	CapRound
)

// String returns the cap name.
func (c StrokeCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	default:
		return "unknown"
	}
}

// InRing reports whether p lies in the annulus of the given centre line
// radius and thickness. Both bounds are inclusive.
func InRing(p, center Point, radius, thickness float64) bool {
	distance := p.Distance(center)
	inner := radius - thickness/2
	outer := radius + thickness/2
	return distance >= inner && distance <= outer
}

// InArc reports whether p lies on the arc stroke of the given radius and
// thickness spanning [startDeg, startDeg+sweepDeg] clockwise in screen space.
// Angles are in degrees; 0 points right and 90 points down.
// A sweep of 360 degrees or more matches every angle in the ring.
func InArc(p, center Point, radius, thickness, startDeg, sweepDeg float64, cap StrokeCap) bool {
	if !InRing(p, center, radius, thickness) {
		return false
	}
	if sweepDeg >= FullCircleDeg {
		return true
	}

	angleDeg := RadToDeg(math.Atan2(p.Y-center.Y, p.X-center.X))
	if angleDeg < 0 {
		angleDeg += FullCircleDeg
	}

	arcStart := floorMod(startDeg, FullCircleDeg)
	arcEnd := floorMod(startDeg+sweepDeg, FullCircleDeg)

	if cap == CapRound {
		capDeg := roundCapDeg(radius, thickness)
		arcStart = floorMod(arcStart-capDeg, FullCircleDeg)
		arcEnd = floorMod(arcEnd+capDeg, FullCircleDeg)
	}

	if arcStart <= arcEnd {
		return angleDeg >= arcStart && angleDeg <= arcEnd
	}
	return angleDeg >= arcStart || angleDeg <= arcEnd
}

// roundCapDeg is the angle subtended by a round cap of half the stroke
// thickness at the given radius.
func roundCapDeg(radius, thickness float64) float64 {
	if radius <= 0 {
		return 0
	}
	return RadToDeg(math.Asin(Clamp(thickness/2/radius, -1, 1)))
}

// AngleInArc reports whether angle lies on the arc from start to end, all in
// normalised radians. When end < start the arc wraps through 0.
func AngleInArc(angle, start, end, sweep float64) bool {
	if sweep >= TwoPi {
		return true
	}
	if end >= start {
		return angle >= start && angle <= end
	}
	return angle >= start || angle <= end
}

// ConstrainToArc projects p onto the arc of the given radius. A point whose
// angle is already on the arc keeps its angle and only has its radius
// snapped; otherwise it snaps to the nearer arc end, preferring the start on
// a tie.
func ConstrainToArc(p, center Point, radius, startDeg, sweepDeg float64) Point {
	rel := p.Sub(center)
	angle := ConstrainAngleToArc(math.Atan2(rel.Y, rel.X), startDeg, sweepDeg)
	return PointOnCircle(center, radius, angle)
}

// ConstrainAngleToArc is the angular part of ConstrainToArc. The result is
// normalised, and an angle snapped to an arc end is exactly
// NormalizeAngle(DegToRad(startDeg)) or the matching end angle.
func ConstrainAngleToArc(angle, startDeg, sweepDeg float64) float64 {
	angle = NormalizeAngle(angle)

	startRad := NormalizeAngle(DegToRad(startDeg))
	sweepRad := DegToRad(sweepDeg)
	if sweepDeg >= FullCircleDeg {
		sweepRad = TwoPi
	}
	endRad := NormalizeAngle(startRad + sweepRad)

	if AngleInArc(angle, startRad, endRad, sweepRad) {
		return angle
	}
	if AngularDistance(angle, startRad) <= AngularDistance(angle, endRad) {
		return startRad
	}
	return endRad
}

// PointOnCircle returns the point at angle (radians) on the circle.
func PointOnCircle(center Point, radius, angle float64) Point {
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}
