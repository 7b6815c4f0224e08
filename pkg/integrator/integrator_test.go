package integrator

import (
	"testing"

	"github.com/tjrivera/pathtracer/pkg/bvh"
	"github.com/tjrivera/pathtracer/pkg/camera"
	"github.com/tjrivera/pathtracer/pkg/core"
	"github.com/tjrivera/pathtracer/pkg/material"
	"github.com/tjrivera/pathtracer/pkg/primitive"
	"github.com/tjrivera/pathtracer/pkg/texture"
)

func straightOnCamera() *camera.Camera {
	return camera.New(camera.Config{
		LookFrom:    core.NewVec3(0, 0, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 1,
		Aperture:    0,
		FocusDist:   3,
	})
}

func TestRadianceReturnsZeroAtDepthZero(t *testing.T) {
	mat := material.NewDiffuseLight(texture.NewSolid(core.NewVec3(5, 5, 5)))
	sphere := primitive.NewSphere(core.NewVec3(0, 0, 0), 1, mat)
	scene := &Scene{BVH: bvh.Build([]*primitive.Primitive{sphere}), Camera: straightOnCamera()}

	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))
	got := radiance(scene, ray, 0, core.NewSampler(1))
	if got != (core.Vec3{}) {
		t.Errorf("radiance at depth 0 = %v, want zero", got)
	}
}

func TestRadianceReturnsBackgroundOnMiss(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(1, 0, 0))
	sphere := primitive.NewSphere(core.NewVec3(100, 100, 100), 1, mat)
	background := core.NewVec3(0.1, 0.2, 0.3)
	scene := &Scene{BVH: bvh.Build([]*primitive.Primitive{sphere}), Camera: straightOnCamera(), Background: background}

	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))
	got := radiance(scene, ray, 10, core.NewSampler(1))
	if got != background {
		t.Errorf("radiance on miss = %v, want background %v", got, background)
	}
}

func TestRadianceOfSingleLightAtDepthOneIsJustEmission(t *testing.T) {
	emission := core.NewVec3(2, 2, 2)
	mat := material.NewDiffuseLight(texture.NewSolid(emission))
	sphere := primitive.NewSphere(core.NewVec3(0, 0, 0), 1, mat)
	scene := &Scene{BVH: bvh.Build([]*primitive.Primitive{sphere}), Camera: straightOnCamera()}

	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))
	got := radiance(scene, ray, 1, core.NewSampler(1))
	if got != emission {
		t.Errorf("radiance = %v, want emission %v", got, emission)
	}
}

func TestRenderPixelClampsToUnitRange(t *testing.T) {
	mat := material.NewDiffuseLight(texture.NewSolid(core.NewVec3(50, 50, 50)))
	sphere := primitive.NewSphere(core.NewVec3(0, 0, 0), 5, mat)
	scene := &Scene{BVH: bvh.Build([]*primitive.Primitive{sphere}), Camera: straightOnCamera()}

	got := RenderPixel(scene, 50, 50, 100, 100, 4, 5, core.NewSampler(1))
	if got.X > 1 || got.Y > 1 || got.Z > 1 || got.X < 0 || got.Y < 0 || got.Z < 0 {
		t.Errorf("RenderPixel output %v not clamped to [0,1]", got)
	}
}
