package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/colorprism/pkg/colour"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "colorprism.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Orbit.Thickness != 50 || cfg.Orbit.Spacing != 16 || cfg.Orbit.KnobScale != 0.75 {
		t.Errorf("orbit defaults = %+v", cfg.Orbit)
	}
	if cfg.Wheel.RingThickness != 60 || cfg.Wheel.PanelScale != 0.95 || cfg.Wheel.PanelKnobRadius != 14 {
		t.Errorf("wheel defaults = %+v", cfg.Wheel)
	}
	if cfg.Spectrum.KnobRadius != 16 || cfg.Spectrum.ValueHeight != 36 {
		t.Errorf("spectrum defaults = %+v", cfg.Spectrum)
	}
	if cfg.Initial() != colour.Red {
		t.Errorf("Initial() = %v, want red", cfg.Initial())
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Demo.Style != "orbit" {
		t.Errorf("Demo.Style = %q, want orbit", cfg.Demo.Style)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
initial_colour: "#00FF00"
orbit:
  thickness: 30
wheel:
  panel_scale: 0.5
demo:
  style: wheel
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Orbit.Thickness != 30 {
		t.Errorf("Orbit.Thickness = %v, want 30", cfg.Orbit.Thickness)
	}
	if cfg.Orbit.Spacing != 16 {
		t.Errorf("Orbit.Spacing = %v, want default 16", cfg.Orbit.Spacing)
	}
	if cfg.Wheel.PanelScale != 0.5 || cfg.Wheel.RingThickness != 60 {
		t.Errorf("Wheel = %+v", cfg.Wheel)
	}
	if cfg.Initial() != colour.Green {
		t.Errorf("Initial() = %v, want green", cfg.Initial())
	}
	if cfg.Demo.Style != "wheel" {
		t.Errorf("Demo.Style = %q, want wheel", cfg.Demo.Style)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, `{"spectrum": {"knob_radius": 10}}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Spectrum.KnobRadius != 10 || cfg.Spectrum.ValueHeight != 36 {
		t.Errorf("Spectrum = %+v", cfg.Spectrum)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed yaml", "orbit: [", "parsing config"},
		{"negative thickness", "orbit:\n  thickness: -1\n", "orbit.thickness must not be negative"},
		{"scale above one", "wheel:\n  panel_scale: 1.5\n", "wheel.panel_scale must be between 0 and 1"},
		{"bad colour", "initial_colour: nope\n", "initial_colour"},
		{"no checker boxes", "opacity:\n  checker_boxes: 0\n", "opacity.checker_boxes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading config") {
		t.Errorf("Load(missing) error = %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Orbit.Thickness = -1
	cfg.Wheel.PanelScale = 2
	cfg.Demo.Style = "hexagon"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	for _, want := range []string{"orbit.thickness", "wheel.panel_scale", "demo.style"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q missing %q", err, want)
		}
	}
}

func TestValidateDemoStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"wheel", false},
		{" Spectrum ", false},
		{"SWATCHES", false},
		{"", true},
		{"hexagon", true},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			cfg := Default()
			cfg.Demo.Style = tt.style
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() with demo.style %q error = %v, wantErr %v", tt.style, err, tt.wantErr)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/from/env.yaml")

	if got := ResolvePath("/from/flag.yaml"); got != "/from/flag.yaml" {
		t.Errorf("ResolvePath(flag) = %q", got)
	}
	if got := ResolvePath(""); got != "/from/env.yaml" {
		t.Errorf("ResolvePath(\"\") = %q, want env value", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandPath("~/presets.yaml"); got != filepath.Join(home, "presets.yaml") {
		t.Errorf("expandPath() = %q", got)
	}
	if got := expandPath("/abs/presets.yaml"); got != "/abs/presets.yaml" {
		t.Errorf("expandPath(abs) = %q", got)
	}
}
