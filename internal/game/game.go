package game

import (
	"log"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"starter3d/internal/assets"
	"starter3d/internal/audio"
	"starter3d/internal/camera"
	"starter3d/internal/config"
	"starter3d/internal/input"
	"starter3d/internal/scene"
)

// Game is the demo scene: a crate stack over a static floor with a trigger
// zone, an orbit camera, and a debug overlay. It implements engine.Scene.
type Game struct {
	cfg config.Config

	input   *input.Manager
	audio   *audio.Manager
	world   *scene.World
	cam     *camera.OrbitCamera
	rend    scene.Renderer
	overlay scene.Overlay
	watcher *assets.Watcher
}

func New(cfg config.Config) *Game {
	return &Game{
		cfg: cfg,
		cam: camera.New(rl.Vector3{Y: 2}),
	}
}

func (g *Game) Init() error {
	assets.Init()
	g.audio = audio.NewManager()

	g.world = scene.NewWorld(g.cfg, g.audio)
	if err := g.world.LoadFile(g.cfg.Scene); err != nil {
		return err
	}

	g.overlay.Visible = g.cfg.Debug
	g.input = input.NewManager()
	g.input.Pressed.AddListener(g.onAction)

	watcher, err := assets.NewWatcher(filepath.Dir(g.cfg.Scene))
	if err != nil {
		log.Printf("game: scene hot-reload disabled: %v", err)
	} else {
		g.watcher = watcher
	}
	return nil
}

func (g *Game) onAction(a input.Action) {
	switch a {
	case input.ActionSpawnCrate:
		if _, err := g.world.SpawnCrate(rl.Vector3{Y: 6}); err != nil {
			log.Printf("game: %v", err)
		}
	case input.ActionJump:
		// Kick every dynamic body upward.
		for _, b := range g.world.Physics.Bodies() {
			b.ApplyImpulse(rl.Vector3{Y: 5 * b.Mass})
		}
	case input.ActionToggleDebug:
		g.overlay.Visible = !g.overlay.Visible
	case input.ActionPause:
		g.overlay.Paused = !g.overlay.Paused
	case input.ActionReset:
		if err := g.world.Reload(); err != nil {
			log.Printf("game: reset: %v", err)
		}
	}
}

func (g *Game) Update(deltaTime float32) {
	g.input.Update()
	g.pollWatcher()

	if g.input.RightMouseDown() {
		g.cam.Orbit(g.input.MouseDelta())
	}
	g.cam.Zoom(g.input.Wheel())

	if !g.overlay.Paused {
		g.world.Physics.Update(deltaTime)
	}

	g.audio.SetListener(g.cam.Position(), g.cam.Forward(), rl.Vector3{Y: 1})
	g.audio.Update()
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		log.Printf("game: scene file changed (%s), reloading", path)
		if err := g.world.Reload(); err != nil {
			log.Printf("game: reload: %v", err)
		}
	case err, ok := <-g.watcher.Errors:
		if !ok {
			g.watcher = nil
			return
		}
		log.Printf("game: watcher: %v", err)
	default:
	}
}

func (g *Game) Draw() {
	g.rend.ShowBounds = g.overlay.ShowBounds
	g.rend.Draw(g.cam.Raylib(), g.world)
	g.overlay.Draw(g.world)
	rl.DrawText("E spawn crate  SPACE kick  P pause  R reset  F3 debug",
		10, int32(g.cfg.Window.Height)-26, 16, rl.Fade(rl.RayWhite, 0.7))
}

func (g *Game) Unload() {
	if g.watcher != nil {
		g.watcher.Close()
	}
	g.audio.Close()
	assets.UnloadAll()
}
