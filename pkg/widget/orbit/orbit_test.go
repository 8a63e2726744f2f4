package orbit

import (
	"math"
	"testing"

	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
)

const tolerance = 1e-9

func TestSpacingAngleDeg(t *testing.T) {
	if got := SpacingAngleDeg(16, 50, 0); got != 0 {
		t.Errorf("SpacingAngleDeg(radius 0) = %v, want 0", got)
	}
	if got := SpacingAngleDeg(16, 50, -5); got != 0 {
		t.Errorf("SpacingAngleDeg(negative radius) = %v, want 0", got)
	}

	// A gap of a quarter circumference is 90 degrees.
	radius := 100.0
	gap := geometry.TwoPi * radius / 4
	if got := SpacingAngleDeg(gap-20, 20, radius); math.Abs(got-90) > tolerance {
		t.Errorf("SpacingAngleDeg() = %v, want 90", got)
	}
}

func TestRadius(t *testing.T) {
	tests := []struct {
		name      string
		container geometry.Size
		thickness float64
		want      float64
	}{
		{"square", geometry.Sz(400, 400), 50, 175},
		{"uses smaller side", geometry.Sz(200, 300), 20, 90},
		{"unmeasured", geometry.Size{}, 50, 0},
		{"zero width", geometry.Sz(0, 300), 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Radius(tt.container, tt.thickness); got != tt.want {
				t.Errorf("Radius() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArcAngles(t *testing.T) {
	const sp = 20.0
	if got := ValueStartAngleDeg(sp); got != 100 {
		t.Errorf("ValueStartAngleDeg() = %v, want 100", got)
	}
	if got := SaturationStartAngleDeg(sp); got != 280 {
		t.Errorf("SaturationStartAngleDeg() = %v, want 280", got)
	}
	if ValueSweepAngleDeg(sp) != 160 || SaturationSweepAngleDeg(sp) != 160 {
		t.Errorf("sweeps = %v, %v, want 160", ValueSweepAngleDeg(sp), SaturationSweepAngleDeg(sp))
	}
	if got := DegToRadWithSpacing(90, sp); math.Abs(got-geometry.DegToRad(100)) > tolerance {
		t.Errorf("DegToRadWithSpacing(90, 20) = %v", got)
	}
	if got := DegToRadWithSpacing(270, -sp); math.Abs(got-geometry.DegToRad(260)) > tolerance {
		t.Errorf("DegToRadWithSpacing(270, -20) = %v", got)
	}
}

func TestMapAngleToFractionOfArc(t *testing.T) {
	tests := []struct {
		name              string
		angle, start, end float64
		want              float64
	}{
		{"start", 0, 0, math.Pi, 0},
		{"end", math.Pi, 0, math.Pi, 1},
		{"midpoint", math.Pi / 2, 0, math.Pi, 0.5},
		{"wrapping arc", 0, 3 * math.Pi / 2, math.Pi / 2, 0.5},
		{"unnormalised inputs", 5 * math.Pi / 2, 2 * math.Pi, 3 * math.Pi, 0.5},
		{"outside arc clamps", 3 * math.Pi / 2, 0, math.Pi, 1},
		{"just before start clamps", -0.1, 0, math.Pi, 1},
		{"zero length arc", 1, 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapAngleToFractionOfArc(tt.angle, tt.start, tt.end)
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("MapAngleToFractionOfArc(%v, %v, %v) = %v, want %v", tt.angle, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestMapFractionToAngleOnArc(t *testing.T) {
	if got := MapFractionToAngleOnArc(0.25, 1, 3); got != 1.5 {
		t.Errorf("MapFractionToAngleOnArc(0.25, 1, 3) = %v, want 1.5", got)
	}
	start, end := SaturationRange(20)
	for _, f := range []float64{0, 0.3, 0.5, 1} {
		angle := MapFractionToAngleOnArc(f, start, end)
		if got := MapAngleToFractionOfArc(angle, start, end); math.Abs(got-f) > tolerance {
			t.Errorf("round trip of %v = %v", f, got)
		}
	}
}

func TestDetectRegion(t *testing.T) {
	center := geometry.Pt(150, 150)
	const (
		radius    = 100.0
		thickness = 20.0
		spacing   = 10.0
		spAngle   = 20.0
	)

	tests := []struct {
		name string
		rel  geometry.Point
		cap  geometry.StrokeCap
		want Region
	}{
		{"left is value", geometry.Pt(-100, 0), geometry.CapRound, RegionValue},
		{"far away is unknown", geometry.Pt(300, 0), geometry.CapRound, RegionUnknown},
		{"upper right is saturation", geometry.Pt(86.6, -50), geometry.CapRound, RegionSaturation},
		{"right is saturation", geometry.Pt(100, 0), geometry.CapRound, RegionSaturation},
		{"inner ring is hue", geometry.Pt(70, 0), geometry.CapRound, RegionHue},
		{"inner ring left is hue", geometry.Pt(-65, 0), geometry.CapRound, RegionHue},
		{"bottom gap", geometry.Pt(0, 100), geometry.CapRound, RegionUnknown},
		{"top gap", geometry.Pt(0, -100), geometry.CapButt, RegionUnknown},
		{"between arcs and ring", geometry.Pt(85, 0), geometry.CapRound, RegionUnknown},
		{"centre", geometry.Pt(0, 0), geometry.CapRound, RegionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectRegion(center.Add(tt.rel), center, radius, thickness, spAngle, spacing, tt.cap)
			if got != tt.want {
				t.Errorf("DetectRegion(%v) = %v, want %v", tt.rel, got, tt.want)
			}
		})
	}
}

func TestRoundCapWidensArc(t *testing.T) {
	center := geometry.Pt(0, 0)
	// 97 degrees: inside the round cap of a value arc starting at 100.
	p := geometry.PointOnCircle(center, 100, geometry.DegToRad(97))

	if got := DetectRegion(p, center, 100, 20, 20, 10, geometry.CapRound); got != RegionValue {
		t.Errorf("round cap: DetectRegion() = %v, want value", got)
	}
	if got := DetectRegion(p, center, 100, 20, 20, 10, geometry.CapButt); got != RegionUnknown {
		t.Errorf("butt cap: DetectRegion() = %v, want unknown", got)
	}
}

func TestRegionString(t *testing.T) {
	for region, want := range map[Region]string{
		RegionUnknown:    "unknown",
		RegionHue:        "hue",
		RegionSaturation: "saturation",
		RegionValue:      "value",
	} {
		if got := region.String(); got != want {
			t.Errorf("Region(%d).String() = %q, want %q", region, got, want)
		}
	}
}

func colourApproxEqual(a, b colour.RGBA) bool {
	return math.Abs(a.R-b.R) < 1e-6 && math.Abs(a.G-b.G) < 1e-6 &&
		math.Abs(a.B-b.B) < 1e-6 && math.Abs(a.A-b.A) < 1e-6
}

func TestLayoutColourRoundTrip(t *testing.T) {
	layout := NewLayout(geometry.Sz(400, 400), 50, 16)

	colours := []colour.RGBA{
		colour.Red,
		colour.Blue,
		colour.White,
		colour.FromHSV(200, 0.4, 0.7, 1),
		colour.FromHSV(33, 0.9, 0.2, 1),
	}

	for _, c := range colours {
		if got := layout.Colour(layout.KnobAngles(c)); !colourApproxEqual(got, c) {
			t.Errorf("Colour(KnobAngles(%v)) = %v", c, got)
		}
	}
}

func TestLayoutKnobAnglesForBlack(t *testing.T) {
	layout := NewLayout(geometry.Sz(400, 400), 50, 16)
	angles := layout.KnobAngles(colour.Black)

	satStart, _ := SaturationRange(layout.SpacingAngleDeg)
	if math.Abs(angles.Saturation-satStart) > tolerance {
		t.Errorf("saturation knob for black = %v, want arc start %v", angles.Saturation, satStart)
	}
	if got := layout.Colour(angles); !colourApproxEqual(got, colour.Black) {
		t.Errorf("Colour() = %v, want black", got)
	}
}

func TestLayoutDrag(t *testing.T) {
	layout := NewLayout(geometry.Sz(400, 400), 50, 16)
	angles := layout.KnobAngles(colour.Red)

	// Straight left is the middle of the value arc.
	angles = layout.Drag(RegionValue, geometry.Pt(0, 200), angles)
	if _, _, v := layout.HSV(angles); math.Abs(v-0.5) > tolerance {
		t.Errorf("value after drag to the left = %v, want 0.5", v)
	}

	// Straight down is in the gap, nearest the start of the value arc.
	angles = layout.Drag(RegionValue, geometry.Pt(200, 400), angles)
	if _, _, v := layout.HSV(angles); v != 0 {
		t.Errorf("value after drag into the bottom gap = %v, want 0", v)
	}

	// Straight up is in the top gap, nearest the start of the saturation arc.
	angles = layout.Drag(RegionSaturation, geometry.Pt(201, 0), angles)
	if _, s, _ := layout.HSV(angles); s != 1 {
		t.Errorf("saturation after drag into the top gap = %v, want 1", s)
	}

	angles = layout.Drag(RegionHue, geometry.Pt(200, 399), angles)
	if h, _, _ := layout.HSV(angles); math.Abs(h-90) > tolerance {
		t.Errorf("hue after drag below centre = %v, want 90", h)
	}

	before := angles
	if got := layout.Drag(RegionUnknown, geometry.Pt(0, 0), angles); got != before {
		t.Errorf("Drag(RegionUnknown) changed angles to %v", got)
	}
}

func TestLayoutDetectAndConstrain(t *testing.T) {
	layout := NewLayout(geometry.Sz(400, 400), 50, 16)

	if got := layout.DetectRegion(geometry.Pt(200-175, 200)); got != RegionValue {
		t.Errorf("DetectRegion(left) = %v, want value", got)
	}
	hue := geometry.Pt(200+layout.HueRingRadius(), 200)
	if got := layout.DetectRegion(hue); got != RegionHue {
		t.Errorf("DetectRegion(hue ring) = %v, want hue", got)
	}

	p := layout.Constrain(RegionValue, geometry.Pt(200, 1000))
	if d := p.Distance(layout.Center); math.Abs(d-layout.Radius) > 1e-6 {
		t.Errorf("Constrain() distance = %v, want radius %v", d, layout.Radius)
	}

	p = layout.Constrain(RegionHue, geometry.Pt(200, 1000))
	if d := p.Distance(layout.Center); math.Abs(d-layout.HueRingRadius()) > 1e-6 {
		t.Errorf("Constrain(hue) distance = %v, want %v", d, layout.HueRingRadius())
	}

	if got := layout.Constrain(RegionUnknown, geometry.Pt(1, 2)); got != geometry.Pt(1, 2) {
		t.Errorf("Constrain(unknown) = %v, want input", got)
	}
}

func TestLayoutUnmeasured(t *testing.T) {
	layout := NewLayout(geometry.Size{}, 50, 16)
	if layout.Radius != 0 || layout.SpacingAngleDeg != 0 {
		t.Errorf("unmeasured layout = %+v", layout)
	}
	// Must not produce NaN.
	c := layout.Colour(layout.KnobAngles(colour.Red))
	if math.IsNaN(c.R) || math.IsNaN(c.G) || math.IsNaN(c.B) {
		t.Errorf("Colour() on unmeasured layout = %v", c)
	}
}
