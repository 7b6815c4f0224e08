// Package material implements the tagged-variant Material type and the
// HitRecord that primitives populate when a ray intersects them. HitRecord
// lives here rather than in core to avoid a core -> material -> core import
// cycle, since a HitRecord must carry the Material that was struck.
package material

import (
	"math"

	"github.com/tjrivera/pathtracer/pkg/core"
	"github.com/tjrivera/pathtracer/pkg/texture"
)

// Kind tags which variant of Material is populated.
type Kind int

const (
	// KindLambertian is a perfectly diffuse surface with a constant albedo.
	KindLambertian Kind = iota
	// KindTexturedLambertian is a diffuse surface whose albedo comes from a Texture lookup.
	KindTexturedLambertian
	// KindMetal is a fuzzed specular reflector.
	KindMetal
	// KindDielectric is a refractive/reflective transparent surface.
	KindDielectric
	// KindDiffuseLight emits a texture's value when viewed from its front face.
	KindDiffuseLight
	// KindHdri emits a texture's value unconditionally, modeling an environment dome.
	KindHdri
	// KindIsotropic scatters uniformly in all directions, for participating media.
	KindIsotropic
	// KindBlend stochastically dispatches to one of two child materials.
	KindBlend
)

// Material is a closed sum type over the eight material variants. Only the
// fields relevant to Kind are populated.
type Material struct {
	Kind Kind

	Albedo  core.Vec3 // KindLambertian, KindMetal, KindIsotropic
	Texture texture.Texture // KindTexturedLambertian, KindDiffuseLight, KindHdri

	Fuzz float64 // KindMetal, clamped to [0,1]
	IOR  float64 // KindDielectric

	BlendA, BlendB *Material // KindBlend
	BlendRatio     float64   // KindBlend, in [0,1]
}

// HitRecord describes the geometric and material state at a ray-primitive
// intersection.
type HitRecord struct {
	Point         core.Vec3
	OutwardNormal core.Vec3 // geometric normal, independent of ray direction
	Normal        core.Vec3 // faces against the incident ray
	FrontFace     bool
	T             float64
	U, V          float64
	Material      *Material
}

// SetFaceNormal orients Normal against rayDirection and records FrontFace,
// given the primitive's outward-facing geometric normal.
func (h *HitRecord) SetFaceNormal(rayDirection, outwardNormal core.Vec3) {
	h.OutwardNormal = outwardNormal
	h.FrontFace = rayDirection.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterResult is the outcome of a successful Scatter call.
type ScatterResult struct {
	Attenuation core.Vec3
	Scattered   core.Ray
}

// NewLambertian creates a constant-albedo diffuse material.
func NewLambertian(albedo core.Vec3) *Material {
	return &Material{Kind: KindLambertian, Albedo: albedo}
}

// NewTexturedLambertian creates a diffuse material whose albedo is sampled
// from tex at the hit's (u, v).
func NewTexturedLambertian(tex texture.Texture) *Material {
	return &Material{Kind: KindTexturedLambertian, Texture: tex}
}

// NewMetal creates a fuzzed specular reflector. fuzz is clamped to [0,1].
func NewMetal(albedo core.Vec3, fuzz float64) *Material {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	return &Material{Kind: KindMetal, Albedo: albedo, Fuzz: fuzz}
}

// NewDielectric creates a transparent material with the given index of refraction.
func NewDielectric(ior float64) *Material {
	return &Material{Kind: KindDielectric, IOR: ior}
}

// NewDiffuseLight creates a material that emits tex's value from its front face only.
func NewDiffuseLight(tex texture.Texture) *Material {
	return &Material{Kind: KindDiffuseLight, Texture: tex}
}

// NewHdri creates an environment-dome emitter that emits tex's value
// unconditionally, regardless of facing.
func NewHdri(tex texture.Texture) *Material {
	return &Material{Kind: KindHdri, Texture: tex}
}

// NewIsotropic creates a uniform-scatter material for participating media.
func NewIsotropic(albedo core.Vec3) *Material {
	return &Material{Kind: KindIsotropic, Albedo: albedo}
}

// NewBlend creates a material that stochastically dispatches to a with
// probability ratio and to b otherwise.
func NewBlend(a, b *Material, ratio float64) *Material {
	return &Material{Kind: KindBlend, BlendA: a, BlendB: b, BlendRatio: ratio}
}

// Scatter computes the outgoing ray and attenuation for a ray striking hit,
// drawing randomness from s. The second return reports whether the ray
// scatters at all (false for pure emitters).
func (m *Material) Scatter(rayIn core.Ray, hit HitRecord, s *core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return scatterLambertian(m.Albedo, hit, s)

	case KindTexturedLambertian:
		albedo := m.Texture.Value(hit.U, hit.V, hit.Point)
		return scatterLambertian(albedo, hit, s)

	case KindMetal:
		reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)
		if m.Fuzz > 0 {
			reflected = reflected.Add(s.InUnitSphere().Multiply(m.Fuzz))
		}
		scattered := core.NewRay(hit.Point, reflected)
		if scattered.Direction.Dot(hit.Normal) <= 0 {
			return ScatterResult{}, false
		}
		return ScatterResult{Attenuation: m.Albedo, Scattered: scattered}, true

	case KindDielectric:
		return scatterDielectric(m.IOR, rayIn, hit, s)

	case KindIsotropic:
		scattered := core.NewRay(hit.Point, s.UnitVector())
		return ScatterResult{Attenuation: m.Albedo, Scattered: scattered}, true

	case KindBlend:
		if s.Float64() < m.BlendRatio {
			return m.BlendA.Scatter(rayIn, hit, s)
		}
		return m.BlendB.Scatter(rayIn, hit, s)

	case KindDiffuseLight, KindHdri:
		return ScatterResult{}, false

	default:
		return ScatterResult{}, false
	}
}

func scatterLambertian(albedo core.Vec3, hit HitRecord, s *core.Sampler) (ScatterResult, bool) {
	direction := s.LambertianDirection(hit.Normal)
	if direction.NearZero() {
		direction = hit.Normal
	}
	scattered := core.NewRay(hit.Point, direction)
	return ScatterResult{Attenuation: albedo, Scattered: scattered}, true
}

func scatterDielectric(ior float64, rayIn core.Ray, hit HitRecord, s *core.Sampler) (ScatterResult, bool) {
	attenuation := core.NewVec3(1, 1, 1)

	var ratio float64
	if hit.FrontFace {
		ratio = 1.0 / ior
	} else {
		ratio = ior
	}

	unitDir := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDir.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := ratio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || schlickReflectance(cosTheta, ratio) > s.Float64() {
		direction = core.Reflect(unitDir, hit.Normal)
	} else {
		direction = core.Refract(unitDir, hit.Normal, ratio)
	}

	scattered := core.NewRay(hit.Point, direction)
	return ScatterResult{Attenuation: attenuation, Scattered: scattered}, true
}

// schlickReflectance approximates Fresnel reflectance at the given cosine of
// the incident angle for a surface with the given ratio of refractive indices.
func schlickReflectance(cosine, ratio float64) float64 {
	r0 := (1 - ratio) / (1 + ratio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// Emitted returns the light emitted by the material at hit, independent of
// scattering. Non-emissive materials return the zero vector.
func (m *Material) Emitted(hit HitRecord) core.Vec3 {
	switch m.Kind {
	case KindDiffuseLight:
		if !hit.FrontFace {
			return core.Vec3{}
		}
		return m.Texture.Value(hit.U, hit.V, hit.Point)

	case KindHdri:
		return m.Texture.Value(hit.U, hit.V, hit.Point)

	case KindBlend:
		a := m.BlendA.Emitted(hit)
		b := m.BlendB.Emitted(hit)
		return a.Multiply(m.BlendRatio).Add(b.Multiply(1 - m.BlendRatio))

	default:
		return core.Vec3{}
	}
}
