package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/colorprism/pkg/colour"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.SetNRGBA(3, 1, color.NRGBA{R: 255, A: 255})
	path := writePNG(t, img)

	loaded, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if b := loaded.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("bounds = %v", b)
	}

	got, err := ColourAt(loaded, 3, 1)
	if err != nil {
		t.Fatalf("ColourAt() error = %v", err)
	}
	if got != colour.Red {
		t.Errorf("ColourAt(3, 1) = %v, want red", got)
	}
}

func TestFileLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty", "", "cannot be empty"},
		{"missing", filepath.Join(dir, "missing.png"), "not found"},
		{"directory", dir, "directory"},
		{"undecodable", garbage, "failed to decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileLoader().Load(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load(%q) error = %v, want %q", tt.path, err, tt.want)
			}
		})
	}
}

func TestColourAtOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 13, 23))
	img.SetNRGBA(10, 20, color.NRGBA{B: 255, A: 255})

	got, err := ColourAt(img, 0, 0)
	if err != nil || got != colour.Blue {
		t.Errorf("ColourAt(0, 0) = %v, %v, want blue", got, err)
	}
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, 3}} {
		if _, err := ColourAt(img, p[0], p[1]); err == nil {
			t.Errorf("ColourAt(%d, %d) should fail", p[0], p[1])
		}
	}
	if x, y := Centre(img); x != 1 || y != 1 {
		t.Errorf("Centre() = %d, %d", x, y)
	}
}

func TestIsImageFile(t *testing.T) {
	for path, want := range map[string]bool{
		"a.png": true, "b.JPG": true, "c.webp": true, "d.txt": false, "noext": false,
	} {
		if got := IsImageFile(path); got != want {
			t.Errorf("IsImageFile(%q) = %v, want %v", path, got, want)
		}
	}
}
