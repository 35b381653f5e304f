package assets

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var manager *Manager

// Manager caches loaded assets by path so repeated loads are free. One
// instance serves the whole process; rendering and audio handles are opaque
// to everything outside this package's callers.
type Manager struct {
	models   map[string]rl.Model
	textures map[string]rl.Texture2D
	sounds   map[string]rl.Sound
}

// Color name mapping used by scene files.
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
}

// LookupColor returns a raylib color from a name string, defaulting to white.
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

func Init() {
	manager = &Manager{
		models:   make(map[string]rl.Model),
		textures: make(map[string]rl.Texture2D),
		sounds:   make(map[string]rl.Sound),
	}
}

// LoadModel loads a model, caching it for reuse.
func LoadModel(path string) rl.Model {
	if manager == nil {
		Init()
	}
	if model, exists := manager.models[path]; exists {
		return model
	}
	model := rl.LoadModel(path)
	manager.models[path] = model
	return model
}

// LoadTexture loads a texture, caching it for reuse.
func LoadTexture(path string) rl.Texture2D {
	if manager == nil {
		Init()
	}
	if texture, exists := manager.textures[path]; exists {
		return texture
	}
	texture := rl.LoadTexture(path)
	manager.textures[path] = texture
	return texture
}

// LoadSound loads a sound, caching it for reuse. The second return is false
// when the file could not be loaded.
func LoadSound(path string) (rl.Sound, bool) {
	if manager == nil {
		Init()
	}
	if sound, exists := manager.sounds[path]; exists {
		return sound, true
	}
	sound := rl.LoadSound(path)
	if !rl.IsSoundValid(sound) {
		log.Printf("assets: failed to load sound %s", path)
		return rl.Sound{}, false
	}
	manager.sounds[path] = sound
	return sound, true
}

// UnloadAll releases every cached asset. Call once at shutdown, after the
// audio device is closed.
func UnloadAll() {
	if manager == nil {
		return
	}
	for _, model := range manager.models {
		rl.UnloadModel(model)
	}
	for _, texture := range manager.textures {
		rl.UnloadTexture(texture)
	}
	for _, sound := range manager.sounds {
		rl.UnloadSound(sound)
	}
	manager = nil
}
