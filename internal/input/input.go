package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"starter3d/internal/engine"
)

// Action is a named game input, decoupled from physical keys.
type Action int

const (
	ActionJump Action = iota
	ActionSpawnCrate
	ActionToggleDebug
	ActionPause
	ActionReset
	actionCount
)

var actionNames = map[Action]string{
	ActionJump:        "jump",
	ActionSpawnCrate:  "spawn-crate",
	ActionToggleDebug: "toggle-debug",
	ActionPause:       "pause",
	ActionReset:       "reset",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Manager maps actions to raylib key codes and turns key presses into
// events. Poll Down/JustPressed directly or subscribe to Pressed.
type Manager struct {
	bindings map[Action][]int32

	// Pressed fires once per frame for every action that just went down.
	Pressed engine.EventWithArg[Action]
}

// NewManager returns a manager with the default bindings.
func NewManager() *Manager {
	m := &Manager{bindings: make(map[Action][]int32)}
	m.Bind(ActionJump, rl.KeySpace)
	m.Bind(ActionSpawnCrate, rl.KeyE)
	m.Bind(ActionToggleDebug, rl.KeyF3)
	m.Bind(ActionPause, rl.KeyP)
	m.Bind(ActionReset, rl.KeyR)
	return m
}

// Bind replaces the keys for an action.
func (m *Manager) Bind(action Action, keys ...int32) {
	m.bindings[action] = keys
}

// Keys returns the keys currently bound to an action.
func (m *Manager) Keys(action Action) []int32 {
	return m.bindings[action]
}

// Down reports whether any key bound to the action is held.
func (m *Manager) Down(action Action) bool {
	for _, key := range m.bindings[action] {
		if rl.IsKeyDown(key) {
			return true
		}
	}
	return false
}

// JustPressed reports whether any key bound to the action went down this
// frame.
func (m *Manager) JustPressed(action Action) bool {
	for _, key := range m.bindings[action] {
		if rl.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// Update polls all actions once and fires Pressed for those that just went
// down. Call once per frame before gameplay updates.
func (m *Manager) Update() {
	for a := Action(0); a < actionCount; a++ {
		if m.JustPressed(a) {
			m.Pressed.Invoke(a)
		}
	}
}

// MouseDelta returns the mouse movement since last frame.
func (m *Manager) MouseDelta() rl.Vector2 {
	return rl.GetMouseDelta()
}

// Wheel returns the scroll wheel movement this frame.
func (m *Manager) Wheel() float32 {
	return rl.GetMouseWheelMove()
}

// RightMouseDown reports whether the right button is held (camera orbit).
func (m *Manager) RightMouseDown() bool {
	return rl.IsMouseButtonDown(rl.MouseRightButton)
}
