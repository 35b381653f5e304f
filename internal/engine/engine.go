package engine

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"starter3d/internal/config"
)

// Scene is what the engine drives: one Update with the frame delta, then
// one Draw, every frame until the window closes.
type Scene interface {
	Init() error
	Update(deltaTime float32)
	Draw()
	Unload()
}

// Engine owns the window and the frame loop. Everything else (physics,
// input, audio, rendering) hangs off the scene it runs.
type Engine struct {
	cfg config.Config
}

func New(cfg config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Run opens the window and drives the scene until the window closes.
func (e *Engine) Run(scene Scene) error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(int32(e.cfg.Window.Width), int32(e.cfg.Window.Height), e.cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(e.cfg.Window.TargetFPS))

	if err := scene.Init(); err != nil {
		return fmt.Errorf("engine: scene init: %w", err)
	}
	defer scene.Unload()

	log.Printf("engine: running %dx%d @ %d fps", e.cfg.Window.Width, e.cfg.Window.Height, e.cfg.Window.TargetFPS)

	for !rl.WindowShouldClose() {
		scene.Update(rl.GetFrameTime())

		rl.BeginDrawing()
		scene.Draw()
		rl.EndDrawing()
	}
	return nil
}
