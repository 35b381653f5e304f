package audio

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"starter3d/internal/assets"
)

// Listener is the audio listener position and orientation.
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// Source is a playable sound placed in the world.
type Source struct {
	ID          uint64
	Position    rl.Vector3
	Sound       rl.Sound
	Volume      float32
	MaxDistance float32
	Spatial     bool
	playing     bool
}

// Manager owns the audio device and all sources. Each game holds its own
// instance; there is no package-global state.
type Manager struct {
	mu       sync.Mutex
	listener Listener
	sources  map[uint64]*Source
	nextID   uint64
	open     bool
}

// NewManager opens the audio device. Playback calls on a manager whose
// device failed to open are silent no-ops.
func NewManager() *Manager {
	rl.InitAudioDevice()
	return &Manager{
		sources: make(map[uint64]*Source),
		open:    rl.IsAudioDeviceReady(),
	}
}

// Close stops everything and shuts the device down.
func (m *Manager) Close() {
	m.mu.Lock()
	for _, src := range m.sources {
		rl.StopSound(src.Sound)
	}
	m.sources = nil
	m.open = false
	m.mu.Unlock()
	rl.CloseAudioDevice()
}

// LoadSource loads a sound through the asset cache and registers a source
// for it. Returns false when the file could not be loaded.
func (m *Manager) LoadSource(path string) (uint64, bool) {
	if !m.open {
		return 0, false
	}
	sound, ok := assets.LoadSound(path)
	if !ok {
		return 0, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.sources[id] = &Source{
		ID:          id,
		Sound:       sound,
		Volume:      1.0,
		MaxDistance: 50.0,
		Spatial:     true,
	}
	return id, true
}

// Play starts a source from the beginning.
func (m *Manager) Play(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if src, ok := m.sources[id]; ok {
		rl.PlaySound(src.Sound)
		src.playing = true
	}
}

// Stop halts a source.
func (m *Manager) Stop(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if src, ok := m.sources[id]; ok {
		rl.StopSound(src.Sound)
		src.playing = false
	}
}

// SetSourcePosition moves a spatial source.
func (m *Manager) SetSourcePosition(id uint64, pos rl.Vector3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if src, ok := m.sources[id]; ok {
		src.Position = pos
	}
}

// SetSourceVolume sets a source's base volume.
func (m *Manager) SetSourceVolume(id uint64, volume float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if src, ok := m.sources[id]; ok {
		src.Volume = volume
	}
}

// SetSourceSpatial toggles distance attenuation and panning for a source.
func (m *Manager) SetSourceSpatial(id uint64, spatial bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if src, ok := m.sources[id]; ok {
		src.Spatial = spatial
	}
}

// SetListener updates the listener pose used for spatialization.
func (m *Manager) SetListener(pos, forward, up rl.Vector3) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listener.Position = pos

	fwdLen := rl.Vector3Length(forward)
	if fwdLen > 0.001 {
		m.listener.Forward = rl.Vector3Scale(forward, 1.0/fwdLen)
	} else {
		m.listener.Forward = rl.Vector3{Z: -1}
	}

	right := rl.Vector3CrossProduct(up, m.listener.Forward)
	rightLen := rl.Vector3Length(right)
	if rightLen > 0.001 {
		m.listener.Right = rl.Vector3Scale(right, 1.0/rightLen)
	} else {
		m.listener.Right = rl.Vector3{X: 1}
	}
}

// Update recomputes volume and pan for every playing source. Call once per
// frame.
func (m *Manager) Update() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, src := range m.sources {
		if !src.playing {
			continue
		}
		if !rl.IsSoundPlaying(src.Sound) {
			src.playing = false
			continue
		}

		if !src.Spatial {
			rl.SetSoundVolume(src.Sound, src.Volume)
			rl.SetSoundPan(src.Sound, 0.5)
			continue
		}

		toSource := rl.Vector3Subtract(src.Position, m.listener.Position)
		distance := rl.Vector3Length(toSource)

		// Linear falloff out to MaxDistance.
		var volume float32
		if distance < src.MaxDistance {
			volume = src.Volume * (1.0 - distance/src.MaxDistance)
		}

		pan := float32(0.5)
		if distance > 0.001 {
			direction := rl.Vector3Scale(toSource, 1.0/distance)
			rightDot := rl.Vector3DotProduct(direction, m.listener.Right)
			pan = 0.5 + rightDot*0.5
			if pan < 0 {
				pan = 0
			} else if pan > 1 {
				pan = 1
			}
		}

		rl.SetSoundVolume(src.Sound, volume)
		rl.SetSoundPan(src.Sound, pan)
	}
}
