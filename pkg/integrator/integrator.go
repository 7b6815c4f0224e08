// Package integrator implements the recursive Monte-Carlo radiance
// estimator and the per-pixel antialiasing loop that drives it.
package integrator

import (
	"math"

	"github.com/tjrivera/pathtracer/pkg/bvh"
	"github.com/tjrivera/pathtracer/pkg/camera"
	"github.com/tjrivera/pathtracer/pkg/core"
	"github.com/tjrivera/pathtracer/pkg/primitive"
)

// shadowAcneBias keeps a scattered ray's t_min away from zero so a hit
// point doesn't immediately re-intersect its own surface from float error.
const shadowAcneBias = 0.001

// Scene is the immutable, read-only input to the estimator: the BVH over
// every primitive, the camera, an optional subset of primitives listed as
// lights (metadata only; radiance never reads it), and the background
// radiance for rays that escape the scene entirely.
type Scene struct {
	BVH        *bvh.Node
	Camera     *camera.Camera
	Lights     []*primitive.Primitive
	Background core.Vec3
}

// PixelColor estimates the radiance at image coordinates (s, t) in [0,1]^2
// by casting a single camera ray and recursing to maxDepth.
func PixelColor(scene *Scene, s, t float64, maxDepth int, sampler *core.Sampler) core.Vec3 {
	ray := scene.Camera.GetRay(s, t, sampler)
	return radiance(scene, ray, maxDepth, sampler)
}

// radiance estimates incoming light along ray, recursing up to depth
// scatter events. It terminates by depth exhaustion, ray escape
// (background), or a material's Scatter reporting absorption — there is no
// Russian roulette and no next-event estimation; Scene.Lights is unused by
// this estimator and exists only as metadata for callers that want it.
func radiance(scene *Scene, ray core.Ray, depth int, sampler *core.Sampler) core.Vec3 {
	if depth == 0 {
		return core.Vec3{}
	}

	hit, ok := scene.BVH.Hit(ray, shadowAcneBias, math.Inf(1), sampler)
	if !ok {
		return scene.Background
	}

	emitted := hit.Material.Emitted(hit)

	result, scattered := hit.Material.Scatter(ray, hit, sampler)
	if !scattered {
		return emitted
	}

	incoming := radiance(scene, result.Scattered, depth-1, sampler)
	return emitted.Add(result.Attenuation.MultiplyVec(incoming))
}
