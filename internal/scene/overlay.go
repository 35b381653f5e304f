package scene

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Overlay is the raygui debug panel: pause, time scale, bounds toggle and
// world counters. Draw mutates its fields from the widgets, so the caller
// reads them back after each frame.
type Overlay struct {
	Visible    bool
	Paused     bool
	ShowBounds bool
}

func (o *Overlay) Draw(w *World) {
	rl.DrawFPS(10, 10)
	if !o.Visible {
		return
	}

	panel := rl.NewRectangle(10, 40, 230, 150)
	gui.Panel(panel, "physics")

	o.Paused = gui.CheckBox(rl.NewRectangle(20, 75, 16, 16), "Paused", o.Paused)
	o.ShowBounds = gui.CheckBox(rl.NewRectangle(20, 100, 16, 16), "Show bounds", o.ShowBounds)

	ts := w.Physics.TimeScale
	ts = gui.Slider(rl.NewRectangle(20, 125, 140, 16), "", fmt.Sprintf("%.2f", ts), ts, 0, 3)
	w.Physics.TimeScale = ts

	gui.Label(rl.NewRectangle(20, 150, 200, 16),
		fmt.Sprintf("bodies %d  colliders %d", len(w.Physics.Bodies()), len(w.Physics.Colliders())))
	gui.Label(rl.NewRectangle(20, 168, 200, 16),
		fmt.Sprintf("gravity %.1f  scale %.2f", w.Physics.Gravity.Y, ts))
}
