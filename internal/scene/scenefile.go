package scene

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// File is the on-disk scene format.
type File struct {
	Name    string      `yaml:"name"`
	Objects []ObjectDef `yaml:"objects"`
}

// ObjectDef describes one scene object. Exactly one of Body and Collider
// should be set; an object with neither is render-only.
type ObjectDef struct {
	Name     string       `yaml:"name"`
	Position [3]float32   `yaml:"position"`
	Color    string       `yaml:"color"`
	Body     *BodyDef     `yaml:"body,omitempty"`
	Collider *ColliderDef `yaml:"collider,omitempty"`
	Prefab   bool         `yaml:"prefab,omitempty"` // spawn template, also placed
}

// BodyDef mirrors physics.BodyOptions. Pointer fields keep absent distinct
// from zero, same as the options struct.
type BodyDef struct {
	Size        *[3]float32 `yaml:"size,omitempty"`
	Velocity    [3]float32  `yaml:"velocity"`
	Mass        *float32    `yaml:"mass,omitempty"`
	Restitution *float32    `yaml:"restitution,omitempty"`
	Friction    *float32    `yaml:"friction,omitempty"`
	Static      bool        `yaml:"static"`
	Shape       string      `yaml:"shape,omitempty"`
}

// ColliderDef describes a detection volume. Sound, when set, is played
// spatially on trigger or collision enter.
type ColliderDef struct {
	Size    *[3]float32 `yaml:"size,omitempty"`
	Trigger bool        `yaml:"trigger"`
	Sound   string      `yaml:"sound,omitempty"`
}

// LoadFile parses a scene file.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("scene: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes scene YAML and validates the basics.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("scene: parse: %w", err)
	}
	for i, obj := range f.Objects {
		if obj.Body != nil && obj.Collider != nil {
			return File{}, fmt.Errorf("scene: object %d (%s): body and collider are mutually exclusive", i, obj.Name)
		}
	}
	return f, nil
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func vec3Ptr(v *[3]float32) *rl.Vector3 {
	if v == nil {
		return nil
	}
	out := vec3(*v)
	return &out
}
