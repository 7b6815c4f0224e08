package scene

import "testing"

func TestBuildAllNamedScenesSucceed(t *testing.T) {
	for _, name := range Names {
		sc, err := Build(name, 100, 100)
		if err != nil {
			t.Errorf("Build(%q) returned error: %v", name, err)
			continue
		}
		if sc == nil || sc.BVH == nil {
			t.Errorf("Build(%q) produced a nil scene or BVH", name)
			continue
		}
		if sc.Camera == nil {
			t.Errorf("Build(%q) produced a nil camera", name)
		}
	}
}

func TestBuildRejectsUnknownScene(t *testing.T) {
	if _, err := Build("not-a-real-scene", 100, 100); err == nil {
		t.Error("expected an error for an unknown scene name")
	}
}
