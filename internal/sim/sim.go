package sim

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"starter3d/internal/physics"
)

// Config describes a headless crate-drop run: a dynamic unit crate released
// above a solid floor collider, stepped at a fixed dt with no window.
type Config struct {
	DropHeight  float32
	Restitution float32
	Friction    float32
	Gravity     rl.Vector3
	TimeScale   float32
	Dt          float32
	Duration    float32 // simulated seconds
}

// DefaultConfig mirrors the windowed demo scene.
func DefaultConfig() Config {
	return Config{
		DropHeight:  5,
		Restitution: 0.5,
		Friction:    0.5,
		Gravity:     rl.Vector3{Y: -9.8},
		TimeScale:   1,
		Dt:          1.0 / 60.0,
		Duration:    10,
	}
}

// Result is the recorded trajectory plus settle statistics.
type Result struct {
	Heights    []float64 // crate center height per step
	Bounces    int       // floor contact enter events
	Settled    bool
	SettleTime float32 // simulated seconds until at rest, 0 if never
	RestHeight float32 // final crate center height
	Steps      int
}

// Run executes the drop and records the crate's height each step.
func Run(cfg Config) (Result, error) {
	if cfg.Dt <= 0 {
		return Result{}, fmt.Errorf("sim: dt must be positive, got %g", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return Result{}, fmt.Errorf("sim: duration must be positive, got %g", cfg.Duration)
	}

	timeScale := cfg.TimeScale
	world := physics.NewWorld(physics.Options{
		Gravity:   &cfg.Gravity,
		TimeScale: &timeScale,
	})

	var result Result

	floorSize := rl.Vector3{X: 10, Y: 1, Z: 10}
	world.CreateCollider(physics.ColliderOptions{
		ID:   "floor",
		Size: &floorSize,
		OnCollisionEnter: func(*physics.Body) {
			result.Bounces++
		},
	})

	crate, err := world.CreateBody(physics.BodyOptions{
		ID:          "crate",
		Position:    rl.Vector3{Y: cfg.DropHeight},
		Restitution: &cfg.Restitution,
		Friction:    &cfg.Friction,
	})
	if err != nil {
		return Result{}, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	stillFrames := 0
	for i := 0; i < steps; i++ {
		world.Update(cfg.Dt)
		result.Heights = append(result.Heights, float64(crate.Position.Y))

		// At rest once the crate barely moves for a full second. The
		// discrete contact cycle leaves a rebound of about g*dt*r/(1+r)
		// per frame, so the threshold sits above that.
		if rl.Vector3Length(crate.Velocity) < 0.1 {
			stillFrames++
			if !result.Settled && float32(stillFrames)*cfg.Dt >= 1.0 {
				result.Settled = true
				result.SettleTime = float32(i+1) * cfg.Dt
			}
		} else {
			stillFrames = 0
		}
	}

	result.RestHeight = crate.Position.Y
	result.Steps = steps
	return result, nil
}
