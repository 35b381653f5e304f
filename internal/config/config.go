package config

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the engine looks for its config when no --config
// flag is given, relative to the working directory.
const DefaultPath = "assets/config.yaml"

// Window holds window and frame-loop settings.
type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// Config is the engine configuration. Missing fields keep their defaults.
type Config struct {
	Window    Window     `yaml:"window"`
	Gravity   [3]float32 `yaml:"gravity"`
	TimeScale float32    `yaml:"time_scale"`
	Debug     bool       `yaml:"debug"`
	Scene     string     `yaml:"scene"`
}

// Default returns the stock configuration used when no file is present.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "starter3d",
			TargetFPS: 60,
		},
		Gravity:   [3]float32{0, -9.8, 0},
		TimeScale: 1.0,
		Scene:     "assets/scenes/demo.yaml",
	}
}

// Load reads a config file. A missing or unreadable file yields Default()
// without an error; a file that exists but fails to parse is reported.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		cfg.Window.Width = Default().Window.Width
		cfg.Window.Height = Default().Window.Height
	}
	if cfg.Window.TargetFPS <= 0 {
		cfg.Window.TargetFPS = Default().Window.TargetFPS
	}
	if cfg.TimeScale <= 0 {
		cfg.TimeScale = 1.0
	}
	return cfg, nil
}

// GravityVector returns the configured gravity as a raylib vector.
func (c Config) GravityVector() rl.Vector3 {
	return rl.Vector3{X: c.Gravity[0], Y: c.Gravity[1], Z: c.Gravity[2]}
}
