package geometry

import "testing"

func TestNullPoint(t *testing.T) {
	if UnspecifiedPoint.Valid {
		t.Error("UnspecifiedPoint.Valid = true, want false")
	}

	origin := Some(Pt(0, 0))
	if !origin.Valid {
		t.Error("Some(origin).Valid = false, want true")
	}
	if origin == UnspecifiedPoint {
		t.Error("a specified origin must not equal the unspecified sentinel")
	}
}

func TestSize(t *testing.T) {
	if !(Size{}).IsZero() {
		t.Error("zero Size.IsZero() = false, want true")
	}
	if Sz(0, 10).IsZero() {
		t.Error("Sz(0, 10).IsZero() = true, want false")
	}
	if got := Sz(30, 20).MinDimension(); got != 20 {
		t.Errorf("MinDimension() = %v, want 20", got)
	}
	if got := Sz(30, 20).Center(); got != Pt(15, 10) {
		t.Errorf("Center() = %v, want (15, 10)", got)
	}
}

func TestRect(t *testing.T) {
	r := RectFromSize(Pt(10, 20), Sz(30, 40))

	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("Width/Height = %v/%v, want 30/40", r.Width(), r.Height())
	}
	if got := r.Center(); got != Pt(25, 40) {
		t.Errorf("Center() = %v, want (25, 40)", got)
	}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{name: "inside", p: Pt(20, 30), want: true},
		{name: "top-left corner inclusive", p: Pt(10, 20), want: true},
		{name: "right edge exclusive", p: Pt(40, 30), want: false},
		{name: "bottom edge exclusive", p: Pt(20, 60), want: false},
		{name: "outside", p: Pt(0, 0), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	if got := r.Clamp(Pt(100, -5)); got != Pt(40, 20) {
		t.Errorf("Clamp() = %v, want (40, 20)", got)
	}
	if !(Rect{}).IsEmpty() {
		t.Error("zero Rect.IsEmpty() = false, want true")
	}
}

func TestPointDistance(t *testing.T) {
	if got := Pt(0, 0).Distance(Pt(3, 4)); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
	if got := Pt(1, 2).Add(Pt(3, 4)).Sub(Pt(1, 1)); got != Pt(3, 5) {
		t.Errorf("Add/Sub = %v, want (3, 5)", got)
	}
}
