// Package scene provides the hand-authored scene factories that build the
// core's input graph: a BVH of primitives, a camera, optional light hints,
// and a background color, named by the CLI's --scene flag.
package scene

import (
	"fmt"

	"github.com/tjrivera/pathtracer/pkg/bvh"
	"github.com/tjrivera/pathtracer/pkg/camera"
	"github.com/tjrivera/pathtracer/pkg/core"
	"github.com/tjrivera/pathtracer/pkg/integrator"
	"github.com/tjrivera/pathtracer/pkg/loaders"
	"github.com/tjrivera/pathtracer/pkg/material"
	"github.com/tjrivera/pathtracer/pkg/primitive"
	"github.com/tjrivera/pathtracer/pkg/texture"
)

// Names lists the scenes Build accepts, in the order the CLI validates them.
var Names = []string{"basic", "basic_checker", "hdri", "rect_light", "cornell_box", "volumes"}

// Build constructs the named scene at the given framebuffer dimensions.
func Build(name string, width, height int) (*integrator.Scene, error) {
	switch name {
	case "basic":
		return basicScene(width, height, false), nil
	case "basic_checker":
		return basicScene(width, height, true), nil
	case "hdri":
		return hdriScene(width, height), nil
	case "rect_light":
		return rectLightScene(width, height), nil
	case "cornell_box":
		return cornellBoxScene(width, height), nil
	case "volumes":
		return volumesScene(width, height), nil
	default:
		return nil, fmt.Errorf("scene: unknown scene %q (want one of %v)", name, Names)
	}
}

func aspectRatio(width, height int) float64 {
	return float64(width) / float64(height)
}

// basicScene places a diffuse (or checkered) sphere on a diffuse ground
// plane, lit by a sky-gradient background.
func basicScene(width, height int, checkered bool) *integrator.Scene {
	var groundMat *material.Material
	if checkered {
		groundMat = material.NewTexturedLambertian(texture.NewChecker(
			core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9),
		))
	} else {
		groundMat = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	}

	sphereMat := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	metalMat := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.1)
	glassMat := material.NewDielectric(1.5)

	prims := []*primitive.Primitive{
		primitive.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMat),
		primitive.NewSphere(core.NewVec3(0, 1, 0), 1, sphereMat),
		primitive.NewSphere(core.NewVec3(-2.2, 1, 0), 1, metalMat),
		primitive.NewSphere(core.NewVec3(2.2, 1, 0), 1, glassMat),
	}

	cam := camera.New(camera.Config{
		LookFrom:    core.NewVec3(4, 2, 6),
		LookAt:      core.NewVec3(0, 0.8, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        30,
		AspectRatio: aspectRatio(width, height),
		Aperture:    0.05,
		FocusDist:   8,
	})

	return &integrator.Scene{
		BVH:        bvh.Build(prims),
		Camera:     cam,
		Background: skyBackground(),
	}
}

// skyBackground approximates a white-to-blue gradient sky with a single
// representative constant, since the integrator's background is a flat
// radiance value rather than a direction-dependent gradient.
func skyBackground() core.Vec3 {
	return core.NewVec3(0.5, 0.7, 1.0)
}

// gradientHDR builds a small procedural equirectangular buffer (a vertical
// sky-to-ground gradient) used when the bundled HDR test asset is absent,
// so this scene always builds.
func gradientHDR() (pixels []float32, w, h int) {
	w, h = 16, 8
	pixels = make([]float32, w*h*3)
	top := [3]float32{0.6, 0.75, 1.0}
	bottom := [3]float32{0.9, 0.85, 0.7}
	for y := 0; y < h; y++ {
		frac := float32(y) / float32(h-1)
		for x := 0; x < w; x++ {
			i := (y*w + x) * 3
			pixels[i] = top[0] + (bottom[0]-top[0])*frac
			pixels[i+1] = top[1] + (bottom[1]-top[1])*frac
			pixels[i+2] = top[2] + (bottom[2]-top[2])*frac
		}
	}
	return pixels, w, h
}

// hdriAssetPath is where a bundled Radiance test asset would live; hdriScene
// falls back to a procedural gradient when it's absent.
const hdriAssetPath = "testdata/env.hdr"

// hdriScene wraps a large sphere in an Hdri material so the environment
// dome is a finite primitive, consistent with the rest of the scene graph.
func hdriScene(width, height int) *integrator.Scene {
	pixels, w, h, err := loaders.LoadHDRTexture(hdriAssetPath)
	if err != nil {
		pixels, w, h = gradientHDR()
	}
	envMat := material.NewHdri(texture.NewHDR(pixels, w, h))

	sphereMat := material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0)

	prims := []*primitive.Primitive{
		primitive.NewSphere(core.NewVec3(0, 0, 0), 1000, envMat),
		primitive.NewSphere(core.NewVec3(0, 0, 0), 1, sphereMat),
	}

	cam := camera.New(camera.Config{
		LookFrom:    core.NewVec3(0, 0, 4),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: aspectRatio(width, height),
		FocusDist:   4,
	})

	return &integrator.Scene{BVH: bvh.Build(prims), Camera: cam}
}

// rectLightScene places a diffuse sphere under a single rectangular area
// light, against a black background so the light is the only illumination.
func rectLightScene(width, height int) *integrator.Scene {
	groundMat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphereMat := material.NewLambertian(core.NewVec3(0.2, 0.4, 0.8))
	lightMat := material.NewDiffuseLight(texture.NewSolid(core.NewVec3(4, 4, 4)))

	light := primitive.NewRectXY(-1, 1, -1, 1, 0, lightMat, false)
	lightTransform := primitive.NewTransform(light, core.NewVec3(0, 3, 0), 1.5708)

	prims := []*primitive.Primitive{
		primitive.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMat),
		primitive.NewSphere(core.NewVec3(0, 1, 0), 1, sphereMat),
		lightTransform,
	}

	cam := camera.New(camera.Config{
		LookFrom:    core.NewVec3(0, 2, 6),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        35,
		AspectRatio: aspectRatio(width, height),
		FocusDist:   6,
	})

	return &integrator.Scene{
		BVH:    bvh.Build(prims),
		Camera: cam,
		Lights: []*primitive.Primitive{lightTransform},
	}
}

// cornellBoxScene is the classic Cornell box: five diffuse walls, a
// ceiling area light, and two boxes, all at the traditional 555-unit scale.
func cornellBoxScene(width, height int) *integrator.Scene {
	const boxSize = 555.0

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(texture.NewSolid(core.NewVec3(15, 15, 15)))

	lightRect := primitive.NewRectXZ(213, 343, 227, 332, boxSize-1, light, true)

	prims := []*primitive.Primitive{
		primitive.NewRectYZ(0, boxSize, 0, boxSize, boxSize, red, true),  // left wall
		primitive.NewRectYZ(0, boxSize, 0, boxSize, 0, green, false),     // right wall
		primitive.NewRectXZ(0, boxSize, 0, boxSize, 0, white, false),     // floor
		primitive.NewRectXZ(0, boxSize, 0, boxSize, boxSize, white, true), // ceiling
		primitive.NewRectXY(0, boxSize, 0, boxSize, boxSize, white, true), // back wall
		lightRect,
	}

	tallBox := primitive.NewGroup(primitive.NewPrism(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white))
	tallBoxT := primitive.NewTransform(tallBox, core.NewVec3(265, 0, 295), 0.2618)
	shortBox := primitive.NewGroup(primitive.NewPrism(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white))
	shortBoxT := primitive.NewTransform(shortBox, core.NewVec3(130, 0, 65), -0.3142)

	prims = append(prims, tallBoxT, shortBoxT)

	cam := camera.New(camera.Config{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: aspectRatio(width, height),
		FocusDist:   800,
	})

	return &integrator.Scene{
		BVH:    bvh.Build(prims),
		Camera: cam,
		Lights: []*primitive.Primitive{lightRect},
	}
}

// volumesScene wraps a sphere boundary in a constant-density medium,
// exercising the ConstantMedium primitive against a lit backdrop.
func volumesScene(width, height int) *integrator.Scene {
	groundMat := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	lightMat := material.NewDiffuseLight(texture.NewSolid(core.NewVec3(7, 7, 7)))

	boundary := primitive.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5))
	fog := primitive.NewConstantMedium(boundary, 1.0, core.NewVec3(0.2, 0.4, 0.9))

	lightRect := primitive.NewRectXZ(-2, 2, -2, 2, 4, lightMat, true)

	prims := []*primitive.Primitive{
		primitive.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMat),
		boundary,
		fog,
		lightRect,
	}

	cam := camera.New(camera.Config{
		LookFrom:    core.NewVec3(0, 2, 6),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        35,
		AspectRatio: aspectRatio(width, height),
		FocusDist:   6,
	})

	return &integrator.Scene{
		BVH:    bvh.Build(prims),
		Camera: cam,
		Lights: []*primitive.Primitive{lightRect},
	}
}
