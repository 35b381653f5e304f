package scene

import (
	"strings"
	"testing"
)

const sampleScene = `
name: test-scene
objects:
  - name: floor
    position: [0, -0.5, 0]
    color: gray
    body:
      size: [20, 1, 20]
      static: true
      friction: 0.8
  - name: crate
    position: [0, 5, 0]
    color: brown
    prefab: true
    body:
      restitution: 0
  - name: chime
    position: [3, 1, 3]
    collider:
      size: [2, 2, 2]
      trigger: true
      sound: assets/sounds/chime.wav
  - name: marker
    position: [1, 0, 1]
    color: red
`

func TestParseScene(t *testing.T) {
	f, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Name != "test-scene" || len(f.Objects) != 4 {
		t.Fatalf("f = %+v", f)
	}

	floor := f.Objects[0]
	if floor.Body == nil || !floor.Body.Static {
		t.Fatalf("floor = %+v", floor)
	}
	if floor.Body.Size == nil || *floor.Body.Size != [3]float32{20, 1, 20} {
		t.Errorf("floor size = %v", floor.Body.Size)
	}
	if floor.Body.Friction == nil || *floor.Body.Friction != 0.8 {
		t.Errorf("floor friction = %v", floor.Body.Friction)
	}
	// Unset pointer fields stay nil so defaults apply downstream.
	if floor.Body.Mass != nil || floor.Body.Restitution != nil {
		t.Errorf("unset mass/restitution decoded non-nil: %+v", floor.Body)
	}

	crate := f.Objects[1]
	if !crate.Prefab {
		t.Error("crate prefab flag lost")
	}
	// Explicit zero is not absent.
	if crate.Body.Restitution == nil || *crate.Body.Restitution != 0 {
		t.Errorf("explicit zero restitution = %v", crate.Body.Restitution)
	}

	chime := f.Objects[2]
	if chime.Collider == nil || !chime.Collider.Trigger || chime.Collider.Sound == "" {
		t.Errorf("chime = %+v", chime.Collider)
	}

	marker := f.Objects[3]
	if marker.Body != nil || marker.Collider != nil {
		t.Errorf("render-only object decoded physics: %+v", marker)
	}
}

func TestParseRejectsBodyWithCollider(t *testing.T) {
	_, err := Parse([]byte(`
objects:
  - name: broken
    body:
      static: true
    collider:
      trigger: true
`))
	if err == nil {
		t.Fatal("expected an error for body+collider object")
	}
	if !strings.Contains(err.Error(), "mutually exclusive") {
		t.Errorf("err = %v", err)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("objects: [oops")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestVec3Ptr(t *testing.T) {
	if vec3Ptr(nil) != nil {
		t.Error("nil in, non-nil out")
	}
	v := [3]float32{1, 2, 3}
	got := vec3Ptr(&v)
	if got == nil || got.X != 1 || got.Y != 2 || got.Z != 3 {
		t.Errorf("got = %v", got)
	}
}
