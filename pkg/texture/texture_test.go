package texture

import (
	"testing"

	"github.com/tjrivera/pathtracer/pkg/core"
)

func TestSolidIgnoresCoordinates(t *testing.T) {
	tex := NewSolid(core.NewVec3(0.2, 0.4, 0.6))
	a := tex.Value(0, 0, core.NewVec3(0, 0, 0))
	b := tex.Value(0.9, 0.1, core.NewVec3(100, -50, 3))
	if a != b {
		t.Errorf("solid texture varied with coordinates: %v != %v", a, b)
	}
}

func TestCheckerAlternates(t *testing.T) {
	c0 := core.NewVec3(0, 0, 0)
	c1 := core.NewVec3(1, 1, 1)
	tex := NewChecker(c0, c1)

	// sin(10x)sin(10y)sin(10z) at the origin's neighborhood alternates sign
	// as any one coordinate crosses a multiple of pi/10.
	v1 := tex.Value(0, 0, core.NewVec3(0.1, 0.1, 0.1))
	v2 := tex.Value(0, 0, core.NewVec3(0.1+3.14159/10, 0.1, 0.1))
	if v1 == v2 {
		t.Error("expected checker to alternate color across a cell boundary")
	}
}

func TestImageSampleOutOfRangeReturnsMagenta(t *testing.T) {
	tex := NewImage(nil, 0, 0)
	got := tex.Value(0.5, 0.5, core.Vec3{})
	if got != magenta {
		t.Errorf("expected magenta fallback for empty image, got %v", got)
	}
}

func TestImageSamplesExpectedTexel(t *testing.T) {
	// 2x2 image: top-left red, top-right green, bottom-left blue, bottom-right white.
	pixels := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}
	tex := NewImage(pixels, 2, 2)

	red := tex.Value(0.1, 0.9, core.Vec3{})
	if red != core.NewVec3(1, 0, 0) {
		t.Errorf("top-left texel = %v, want red", red)
	}

	blue := tex.Value(0.1, 0.1, core.Vec3{})
	if blue != core.NewVec3(0, 0, 1) {
		t.Errorf("bottom-left texel = %v, want blue", blue)
	}
}

func TestHDRSamplesRawFloats(t *testing.T) {
	pixels := []float32{2.5, 1.0, 0.0, 0.0, 0.0, 3.0}
	tex := NewHDR(pixels, 2, 1)

	got := tex.Value(0.1, 0.5, core.Vec3{})
	if got != core.NewVec3(2.5, 1.0, 0.0) {
		t.Errorf("HDR sample = %v, want {2.5 1 0}", got)
	}
}
