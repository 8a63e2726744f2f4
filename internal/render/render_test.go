package render

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/colorprism/internal/config"
	"github.com/jmylchreest/colorprism/internal/picker"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
)

func closeTo(a, b colour.RGBA, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol && math.Abs(a.A-b.A) <= tol
}

func sampleAt(t *testing.T, s Sampler, p geometry.Point, want colour.RGBA) {
	t.Helper()
	got, ok := s.Sample(p)
	if !ok {
		t.Fatalf("Sample(%v) drew nothing, want %v", p, want)
	}
	if !closeTo(got, want, 1e-3) {
		t.Errorf("Sample(%v) = %+v, want %+v", p, got, want)
	}
}

func newPicker(t *testing.T, style picker.Style, initial colour.RGBA, size geometry.Size) (picker.Picker, Sampler) {
	t.Helper()
	p, err := picker.New(style, config.Default(), initial)
	if err != nil {
		t.Fatal(err)
	}
	p.Resize(size)
	s, err := ForPicker(p)
	if err != nil {
		t.Fatal(err)
	}
	return p, s
}

func TestRenderSolid(t *testing.T) {
	for _, ss := range []int{1, 4} {
		r := New(nil, WithSupersample(ss))
		img, err := r.Render(Solid(colour.Red), 5, 3)
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 3 {
			t.Fatalf("bounds = %v, want 5x3", b)
		}
		for y := range 3 {
			for x := range 5 {
				if got := At(img, x, y); !closeTo(got, colour.Red, 2.0/255) {
					t.Errorf("supersample %d: pixel (%d, %d) = %+v", ss, x, y, got)
				}
			}
		}
	}
}

func TestRenderBackground(t *testing.T) {
	empty := SamplerFunc(func(geometry.Point) (colour.RGBA, bool) { return colour.RGBA{}, false })

	img, err := New(nil, WithSupersample(1)).Render(empty, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := At(img, 0, 0); got.A != 0 {
		t.Errorf("default background alpha = %v, want 0", got.A)
	}

	img, err = New(nil, WithSupersample(1), WithBackground(colour.Blue)).Render(empty, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := At(img, 1, 1); got != colour.Blue {
		t.Errorf("background = %+v, want blue", got)
	}
}

func TestRenderInvalidSize(t *testing.T) {
	r := New(nil)
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := r.Render(Solid(colour.Red), size[0], size[1]); err == nil {
			t.Errorf("Render(%dx%d) should fail", size[0], size[1])
		}
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := New(nil, WithSupersample(2)).WritePNG(&buf, Solid(colour.Green), 8, 4); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("decoded bounds = %v", b)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := New(nil).WriteFile(path, Solid(colour.White), 4, 4); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("WriteFile() wrote an empty file")
	}

	if err := New(nil).WriteFile(filepath.Join(t.TempDir(), "missing", "out.png"), Solid(colour.White), 4, 4); err == nil {
		t.Error("WriteFile() into a missing directory should fail")
	}
}

func TestWriteFileInvalidSizeCreatesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	if err := New(nil).WriteFile(path, Solid(colour.White), 0, 0); err == nil {
		t.Fatal("WriteFile() with a zero size should fail")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("WriteFile() left %s behind (stat error = %v)", path, err)
	}
}

func TestOrbitSampler(t *testing.T) {
	_, s := newPicker(t, picker.StyleOrbit, colour.Red, geometry.Sz(400, 400))

	sampleAt(t, s, geometry.Pt(200, 200), colour.Red)
	sampleAt(t, s, geometry.Pt(25, 200), colour.RGB(0.5, 0, 0))
	sampleAt(t, s, geometry.Pt(375, 200), colour.RGB(1, 0.5, 0.5))
	sampleAt(t, s, geometry.Pt(200, 309), colour.RGB(0.5, 1, 0))
	// Hue knob sits on the ring at hue 0.
	sampleAt(t, s, geometry.Pt(309, 200), KnobFill)

	if _, ok := s.Sample(geometry.Pt(0, 0)); ok {
		t.Error("corner should be empty")
	}
}

func TestWheelSampler(t *testing.T) {
	_, s := newPicker(t, picker.StyleWheel, colour.Red, geometry.Sz(200, 200))

	sampleAt(t, s, geometry.Pt(100, 100), colour.FromHSV(0, 0.5, 0.5, 1))
	sampleAt(t, s, geometry.Pt(100, 170), colour.RGB(0.5, 1, 0))
	sampleAt(t, s, geometry.Pt(170, 100), colour.Red)
	sampleAt(t, s, geometry.Pt(30, 100), colour.Cyan)

	if _, ok := s.Sample(geometry.Pt(0, 0)); ok {
		t.Error("corner should be empty")
	}
}

func TestSpectrumSampler(t *testing.T) {
	_, s := newPicker(t, picker.StyleSpectrum, colour.Red, geometry.Sz(400, 300))

	sampleAt(t, s, geometry.Pt(200, 10), colour.White)
	sampleAt(t, s, geometry.Pt(200, 282), colour.RGB(0.5, 0, 0))
	if _, ok := s.Sample(geometry.Pt(200, 260)); ok {
		t.Error("gap between panel and slider should be empty")
	}
}

func TestSwatchesSampler(t *testing.T) {
	_, s := newPicker(t, picker.StyleSwatches, colour.Black, geometry.Sz(110, 100))

	sampleAt(t, s, geometry.Pt(5, 95), colour.Black)
	sampleAt(t, s, geometry.Pt(10.5, 95), KnobFill)
	sampleAt(t, s, geometry.Pt(5, 5), colour.White)
}

func TestOpacitySampler(t *testing.T) {
	o := picker.NewOpacity(config.Default().Opacity, 1)
	o.Resize(geometry.Sz(236, 36))
	s := ForOpacity(o, colour.Red)

	sampleAt(t, s, geometry.Pt(1, 1), CheckerLight)
	sampleAt(t, s, geometry.Pt(218, 18), colour.Red)
	// The ramp is half transparent halfway along the track, drawn over the
	// dark checker box at (118, 30).
	sampleAt(t, s, geometry.Pt(118, 30), Over(colour.Red.WithAlpha(0.5), CheckerDark))
	if _, ok := s.Sample(geometry.Pt(100, 40)); ok {
		t.Error("below the track should be empty")
	}
}

func TestOver(t *testing.T) {
	got := Over(colour.Red.WithAlpha(0.5), colour.White)
	if !closeTo(got, colour.RGB(1, 0.5, 0.5), 1e-9) {
		t.Errorf("Over() = %+v", got)
	}
	if got := Over(colour.Blue, colour.White); got != colour.Blue {
		t.Errorf("opaque Over() = %+v", got)
	}
}

func TestForPickerUnknown(t *testing.T) {
	if _, err := ForPicker(nil); err == nil {
		t.Error("ForPicker(nil) should fail")
	}
}
