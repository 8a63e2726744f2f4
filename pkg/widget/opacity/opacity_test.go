package opacity

import (
	"math"
	"testing"

	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
)

func TestDeriveKnobColorDegenerate(t *testing.T) {
	sizes := []geometry.Size{
		geometry.Sz(0, 0),
		geometry.Sz(100, 0),
		geometry.Sz(0, 20),
		geometry.Sz(-10, 20),
	}
	positions := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(50, 10), geometry.Pt(-3, 1e6)}

	for _, size := range sizes {
		for _, pos := range positions {
			if got := DeriveKnobColor(pos, size, colour.Red); got != colour.Transparent {
				t.Errorf("DeriveKnobColor(%v, %v) = %v, want transparent", pos, size, got)
			}
		}
	}
}

func TestDeriveKnobColor(t *testing.T) {
	container := geometry.Sz(220, 20)

	tests := []struct {
		name      string
		x         float64
		wantAlpha float64
	}{
		{"track start is transparent", 10, 0},
		{"track end is opaque", 210, 1},
		{"middle", 110, 0.5},
		{"left of track clamps", -50, 0},
		{"right of track clamps", 500, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveKnobColor(geometry.Pt(tt.x, 10), container, colour.Blue)
			if math.Abs(got.A-tt.wantAlpha) > 1e-9 {
				t.Errorf("alpha = %v, want %v", got.A, tt.wantAlpha)
			}
			if got.R != 0 || got.G != 0 || got.B != 1 {
				t.Errorf("DeriveKnobColor() changed the colour channels: %v", got)
			}
		})
	}
}

func TestAlphaIsMonotonic(t *testing.T) {
	container := geometry.Sz(300, 24)
	prev := -1.0
	for x := -20.0; x <= 320; x += 2.5 {
		a := Alpha(geometry.Pt(x, 0), container)
		if a < prev {
			t.Fatalf("Alpha(x=%v) = %v decreased from %v", x, a, prev)
		}
		if a < 0 || a > 1 {
			t.Fatalf("Alpha(x=%v) = %v out of range", x, a)
		}
		prev = a
	}
}

func TestTrackNarrowerThanKnob(t *testing.T) {
	if got := Alpha(geometry.Pt(5, 0), geometry.Sz(10, 20)); got != 0 {
		t.Errorf("Alpha() on a track narrower than the knob = %v, want 0", got)
	}
}

func TestKnobPositions(t *testing.T) {
	container := geometry.Sz(220, 20)

	if got := InitialKnobPosition(container); got != geometry.Pt(210, 10) {
		t.Errorf("InitialKnobPosition() = %v, want (210, 10)", got)
	}
	if got := Alpha(InitialKnobPosition(container), container); got != 1 {
		t.Errorf("initial alpha = %v, want 1", got)
	}

	for _, alpha := range []float64{0, 0.25, 0.5, 1} {
		pos := KnobPositionForAlpha(alpha, container)
		if got := Alpha(pos, container); math.Abs(got-alpha) > 1e-9 {
			t.Errorf("Alpha(KnobPositionForAlpha(%v)) = %v", alpha, got)
		}
	}

	if got := Constrain(geometry.Some(geometry.Pt(400, 3)), container); got != geometry.Pt(210, 10) {
		t.Errorf("Constrain() = %v, want (210, 10)", got)
	}
}
