package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", `
window:
  width: 800
  height: 600
  title: sandbox
gravity: [0, -3.7, 0]
time_scale: 0.5
debug: true
scene: assets/scenes/moon.yaml
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 || cfg.Window.Title != "sandbox" {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Window.TargetFPS != 60 {
		t.Errorf("unset target_fps = %d, want default 60", cfg.Window.TargetFPS)
	}
	if cfg.Gravity != [3]float32{0, -3.7, 0} {
		t.Errorf("gravity = %v", cfg.Gravity)
	}
	if cfg.TimeScale != 0.5 || !cfg.Debug {
		t.Errorf("time_scale=%v debug=%v", cfg.TimeScale, cfg.Debug)
	}
	if cfg.Scene != "assets/scenes/moon.yaml" {
		t.Errorf("scene = %q", cfg.Scene)
	}

	if g := cfg.GravityVector(); g.Y != -3.7 {
		t.Errorf("GravityVector().Y = %v", g.Y)
	}
}

func TestLoadMalformedFileReportsError(t *testing.T) {
	path := writeFile(t, "config.yaml", "window: [not, a, mapping")

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if cfg != Default() {
		t.Errorf("cfg after parse error = %+v, want defaults", cfg)
	}
}

func TestLoadClampsNonsenseValues(t *testing.T) {
	path := writeFile(t, "config.yaml", `
window:
  width: -100
  height: 0
  target_fps: -5
time_scale: 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("window = %+v, want default size", cfg.Window)
	}
	if cfg.Window.TargetFPS != 60 {
		t.Errorf("target_fps = %d, want 60", cfg.Window.TargetFPS)
	}
	if cfg.TimeScale != 1.0 {
		t.Errorf("time_scale = %v, want 1", cfg.TimeScale)
	}
}
