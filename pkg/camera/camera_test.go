package camera

import (
	"math"
	"testing"

	"github.com/tjrivera/pathtracer/pkg/core"
)

func straightOnConfig() Config {
	return Config{
		LookFrom:    core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 1.0,
		Aperture:    0,
		FocusDist:   5,
	}
}

func TestGetRayCentersOnLookAtAxis(t *testing.T) {
	cam := New(straightOnConfig())
	// With zero aperture, the lens sample never perturbs the origin.
	ray := cam.GetRay(0.5, 0.5, core.NewSampler(1))

	if ray.Origin != core.NewVec3(0, 0, 5) {
		t.Errorf("ray origin = %v, want lookFrom unperturbed at zero aperture", ray.Origin)
	}
	dir := ray.Direction.Normalize()
	if math.Abs(dir.X) > 1e-9 || math.Abs(dir.Y) > 1e-9 {
		t.Errorf("center ray direction = %v, want pointing straight down -Z", dir)
	}
	if dir.Z >= 0 {
		t.Errorf("center ray direction Z = %f, want negative (toward lookAt)", dir.Z)
	}
}

func TestGetRayVariesAcrossImagePlane(t *testing.T) {
	cam := New(straightOnConfig())
	left := cam.GetRay(0, 0.5, core.NewSampler(1))
	right := cam.GetRay(1, 0.5, core.NewSampler(1))

	if left.Direction.X >= right.Direction.X {
		t.Errorf("expected s=0 ray to point more negative-X than s=1: %v vs %v", left.Direction, right.Direction)
	}
}

func TestZeroApertureProducesNoLensJitter(t *testing.T) {
	cam := New(straightOnConfig())
	a := cam.GetRay(0.3, 0.7, core.NewSampler(1))
	b := cam.GetRay(0.3, 0.7, core.NewSampler(2))

	if a.Origin != b.Origin {
		t.Errorf("zero-aperture camera origins should match regardless of sampler state: %v != %v", a.Origin, b.Origin)
	}
}
