package scene

import (
	"fmt"
	"log"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"

	"starter3d/internal/assets"
	"starter3d/internal/audio"
	"starter3d/internal/config"
	"starter3d/internal/physics"
)

// Entry ties a physics object to how it is drawn. Exactly one of Body and
// Collider is set.
type Entry struct {
	Name     string
	Color    rl.Color
	Body     *physics.Body
	Collider *physics.Collider
}

// World is the running scene: a physics world, its render entries, and the
// audio hooks wired from the scene file.
type World struct {
	Physics *physics.World
	Audio   *audio.Manager

	entries     []*Entry
	crate       *physics.Body // spawn template; nil until a prefab object loads
	crateSpawns int

	cfg  config.Config
	path string
}

// NewWorld builds an empty world with the configured gravity and time scale.
func NewWorld(cfg config.Config, audioMgr *audio.Manager) *World {
	gravity := cfg.GravityVector()
	timeScale := cfg.TimeScale
	return &World{
		Physics: physics.NewWorld(physics.Options{
			Gravity:   &gravity,
			TimeScale: &timeScale,
			Debug:     cfg.Debug,
		}),
		Audio: audioMgr,
		cfg:   cfg,
	}
}

// LoadFile replaces the world contents with the scene described by path.
func (w *World) LoadFile(path string) error {
	file, err := LoadFile(path)
	if err != nil {
		return err
	}
	w.path = path
	return w.build(file)
}

// Reload rebuilds the world from the last loaded file. Used by hot-reload
// and the reset action.
func (w *World) Reload() error {
	if w.path == "" {
		return fmt.Errorf("scene: nothing loaded yet")
	}
	return w.LoadFile(w.path)
}

func (w *World) build(file File) error {
	gravity := w.cfg.GravityVector()
	timeScale := w.cfg.TimeScale
	w.Physics = physics.NewWorld(physics.Options{
		Gravity:   &gravity,
		TimeScale: &timeScale,
		Debug:     w.cfg.Debug,
	})
	w.entries = nil
	w.crate = nil
	w.crateSpawns = 0

	for _, def := range file.Objects {
		entry, err := w.addObject(def)
		if err != nil {
			return err
		}
		w.entries = append(w.entries, entry)
	}
	log.Printf("scene: loaded %q (%d objects)", file.Name, len(file.Objects))
	return nil
}

func (w *World) addObject(def ObjectDef) (*Entry, error) {
	entry := &Entry{
		Name:  def.Name,
		Color: assets.LookupColor(def.Color),
	}

	switch {
	case def.Body != nil:
		body, err := w.Physics.CreateBody(physics.BodyOptions{
			Position:    vec3(def.Position),
			Velocity:    vec3(def.Body.Velocity),
			Mass:        def.Body.Mass,
			Restitution: def.Body.Restitution,
			Friction:    def.Body.Friction,
			Static:      def.Body.Static,
			Shape:       def.Body.Shape,
			Size:        vec3Ptr(def.Body.Size),
			UserData:    def.Name,
		})
		if err != nil {
			return nil, fmt.Errorf("scene: object %s: %w", def.Name, err)
		}
		entry.Body = body
		if def.Prefab {
			w.crate = body
		}

	case def.Collider != nil:
		opts := physics.ColliderOptions{
			Position:  vec3(def.Position),
			Size:      vec3Ptr(def.Collider.Size),
			IsTrigger: def.Collider.Trigger,
			UserData:  def.Name,
		}
		if def.Collider.Sound != "" && w.Audio != nil {
			if id, ok := w.Audio.LoadSource(def.Collider.Sound); ok {
				w.Audio.SetSourcePosition(id, vec3(def.Position))
				play := func(*physics.Body) { w.Audio.Play(id) }
				if def.Collider.Trigger {
					opts.OnTriggerEnter = play
				} else {
					opts.OnCollisionEnter = play
				}
			}
		}
		entry.Collider = w.Physics.CreateCollider(opts)
	}

	return entry, nil
}

// Entries returns the renderable objects in load order.
func (w *World) Entries() []*Entry {
	return w.entries
}

// SpawnCrate clones the prefab body and drops the copy near the given
// point. Returns an error when the scene declared no prefab.
func (w *World) SpawnCrate(near rl.Vector3) (*Entry, error) {
	if w.crate == nil {
		return nil, fmt.Errorf("scene: no prefab body in %s", w.path)
	}

	var body physics.Body
	if err := copier.Copy(&body, w.crate); err != nil {
		return nil, fmt.Errorf("scene: clone prefab: %w", err)
	}
	body.ID = "" // AddBody assigns a fresh one
	body.Velocity = rl.Vector3{}
	body.Acceleration = rl.Vector3{}

	// Re-roll the drop point a few times if it lands inside an existing
	// body; a bad last roll is acceptable, the solver untangles it.
	for attempt := 0; attempt < 8; attempt++ {
		body.Position = rl.Vector3{
			X: near.X + rand.Float32()*2 - 1,
			Y: near.Y,
			Z: near.Z + rand.Float32()*2 - 1,
		}
		if !w.overlapsBody(body.AABB()) {
			break
		}
	}
	w.Physics.AddBody(&body)

	w.crateSpawns++
	entry := &Entry{
		Name:  fmt.Sprintf("crate-spawn-%d", w.crateSpawns),
		Color: rl.Orange,
		Body:  &body,
	}
	w.entries = append(w.entries, entry)
	return entry, nil
}

func (w *World) overlapsBody(box physics.AABB) bool {
	for _, b := range w.Physics.Bodies() {
		if box.Intersects(b.AABB()) {
			return true
		}
	}
	return false
}

// Despawn removes an entry and its physics object.
func (w *World) Despawn(entry *Entry) {
	for i, e := range w.entries {
		if e == entry {
			w.entries = append(w.entries[:i], w.entries[i+1:]...)
			break
		}
	}
	if entry.Body != nil {
		w.Physics.RemoveBody(entry.Body)
	}
	if entry.Collider != nil {
		w.Physics.RemoveCollider(entry.Collider)
	}
}
