// Package primitive implements the tagged-variant Primitive type: the
// closed set of shapes (and shape combinators) the renderer can intersect,
// dispatched by Kind rather than through an interface.
package primitive

import (
	"math"

	"github.com/tjrivera/pathtracer/pkg/core"
	"github.com/tjrivera/pathtracer/pkg/material"
)

// Kind tags which variant of Primitive is populated.
type Kind int

const (
	// KindSphere is a sphere defined by center and radius.
	KindSphere Kind = iota
	// KindRectXY is an axis-aligned rectangle in the XY plane at z=K.
	KindRectXY
	// KindRectXZ is an axis-aligned rectangle in the XZ plane at y=K.
	KindRectXZ
	// KindRectYZ is an axis-aligned rectangle in the YZ plane at x=K.
	KindRectYZ
	// KindTriangle is a single triangle tested with Möller-Trumbore.
	KindTriangle
	// KindTransform wraps a child primitive with a translate + rotate-Y transform.
	KindTransform
	// KindConstantMedium wraps a boundary primitive as a homogeneous participating medium.
	KindConstantMedium
	// KindGroup bundles several primitives so they can be addressed (and
	// transformed) as one, e.g. the six faces NewPrism produces.
	KindGroup
)

// epsilon pads degenerate (zero-thickness) AABBs, such as axis-aligned
// rectangles, so the BVH slab test doesn't miss them due to float error.
const epsilon = 1e-4

// Primitive is a closed sum type over the renderer's intersectable shapes.
// Only the fields relevant to Kind are populated.
type Primitive struct {
	Kind Kind

	// KindSphere
	Center core.Vec3
	Radius float64

	// KindRectXY / KindRectXZ / KindRectYZ
	A0, A1, B0, B1, K float64
	FlipNormal        bool

	// KindTriangle
	TriA, TriB, TriC core.Vec3

	// KindSphere / KindRectXY / KindRectXZ / KindRectYZ / KindTriangle
	Material *material.Material

	// KindTransform
	Child       *Primitive
	Translation core.Vec3
	RotationY   float64 // radians

	// KindConstantMedium
	Boundary *Primitive
	Density  float64
	Albedo   core.Vec3

	// KindGroup
	Children []*Primitive
}

// NewSphere creates a sphere primitive.
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Primitive {
	return &Primitive{Kind: KindSphere, Center: center, Radius: radius, Material: mat}
}

// NewRectXY creates an axis-aligned rectangle in the XY plane at z=k.
func NewRectXY(x0, x1, y0, y1, k float64, mat *material.Material, flipNormal bool) *Primitive {
	return &Primitive{Kind: KindRectXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: mat, FlipNormal: flipNormal}
}

// NewRectXZ creates an axis-aligned rectangle in the XZ plane at y=k.
func NewRectXZ(x0, x1, z0, z1, k float64, mat *material.Material, flipNormal bool) *Primitive {
	return &Primitive{Kind: KindRectXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: mat, FlipNormal: flipNormal}
}

// NewRectYZ creates an axis-aligned rectangle in the YZ plane at x=k.
func NewRectYZ(y0, y1, z0, z1, k float64, mat *material.Material, flipNormal bool) *Primitive {
	return &Primitive{Kind: KindRectYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: mat, FlipNormal: flipNormal}
}

// NewTriangle creates a triangle primitive, hittable from both sides.
func NewTriangle(a, b, c core.Vec3, mat *material.Material) *Primitive {
	return &Primitive{Kind: KindTriangle, TriA: a, TriB: b, TriC: c, Material: mat}
}

// NewTransform wraps child with a rotate-then-translate transform: the child
// is rotated about the Y axis by rotationY radians, then translated.
func NewTransform(child *Primitive, translation core.Vec3, rotationY float64) *Primitive {
	return &Primitive{Kind: KindTransform, Child: child, Translation: translation, RotationY: rotationY}
}

// NewConstantMedium wraps boundary as a homogeneous participating medium of
// the given density, scattering with the given albedo.
func NewConstantMedium(boundary *Primitive, density float64, albedo core.Vec3) *Primitive {
	return &Primitive{Kind: KindConstantMedium, Boundary: boundary, Density: density, Albedo: albedo}
}

// NewPrism expands to six axis-aligned rectangles forming a closed box
// spanning [min, max], all sharing mat.
func NewPrism(min, max core.Vec3, mat *material.Material) []*Primitive {
	return []*Primitive{
		NewRectXY(min.X, max.X, min.Y, max.Y, max.Z, mat, false), // front
		NewRectXY(min.X, max.X, min.Y, max.Y, min.Z, mat, true),  // back
		NewRectXZ(min.X, max.X, min.Z, max.Z, max.Y, mat, false), // top
		NewRectXZ(min.X, max.X, min.Z, max.Z, min.Y, mat, true),  // bottom
		NewRectYZ(min.Y, max.Y, min.Z, max.Z, max.X, mat, false), // right
		NewRectYZ(min.Y, max.Y, min.Z, max.Z, min.X, mat, true),  // left
	}
}

// NewGroup bundles children into a single Primitive, for cases like
// NewPrism's six faces that must be transformed or otherwise addressed as
// one unit. Hit tests every child and keeps the nearest.
func NewGroup(children []*Primitive) *Primitive {
	return &Primitive{Kind: KindGroup, Children: children}
}

// Hit tests whether ray intersects the primitive within (tMin, tMax),
// returning the nearest such hit.
func (p *Primitive) Hit(ray core.Ray, tMin, tMax float64, s *core.Sampler) (material.HitRecord, bool) {
	switch p.Kind {
	case KindSphere:
		return p.hitSphere(ray, tMin, tMax)
	case KindRectXY:
		return p.hitRect(ray, tMin, tMax, axisX, axisY)
	case KindRectXZ:
		return p.hitRect(ray, tMin, tMax, axisX, axisZ)
	case KindRectYZ:
		return p.hitRect(ray, tMin, tMax, axisY, axisZ)
	case KindTriangle:
		return p.hitTriangle(ray, tMin, tMax)
	case KindTransform:
		return p.hitTransform(ray, tMin, tMax, s)
	case KindConstantMedium:
		return p.hitConstantMedium(ray, tMin, tMax, s)
	case KindGroup:
		return p.hitGroup(ray, tMin, tMax, s)
	default:
		return material.HitRecord{}, false
	}
}

// hitGroup tests every child and returns the nearest hit, narrowing tMax as
// nearer hits are found so later children can't win with a farther one.
func (p *Primitive) hitGroup(ray core.Ray, tMin, tMax float64, s *core.Sampler) (material.HitRecord, bool) {
	var closest material.HitRecord
	found := false
	for _, child := range p.Children {
		if hit, ok := child.Hit(ray, tMin, tMax, s); ok {
			closest = hit
			tMax = hit.T
			found = true
		}
	}
	return closest, found
}

func (p *Primitive) hitSphere(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	oc := ray.Origin.Subtract(p.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - p.Radius*p.Radius

	disc := halfB*halfB - a*c
	if disc < 0 {
		return material.HitRecord{}, false
	}
	sqrtD := math.Sqrt(disc)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return material.HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(p.Center).Multiply(1.0 / p.Radius)

	theta := math.Asin(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X)
	u := 1 - (phi+math.Pi)/(2*math.Pi)
	v := (theta + math.Pi/2) / math.Pi

	hit := material.HitRecord{Point: point, T: root, U: u, V: v, Material: p.Material}
	hit.SetFaceNormal(ray.Direction, outwardNormal)
	return hit, true
}

type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

// hitRect implements RectXY/RectXZ/RectYZ uniformly: a and b name the two
// in-plane axes (in declared order) and the missing axis is the constant one.
func (p *Primitive) hitRect(ray core.Ray, tMin, tMax float64, a, b axis) (material.HitRecord, bool) {
	kAxis := thirdAxis(a, b)

	denom := ray.Direction.Axis(int(kAxis))
	if denom == 0 {
		return material.HitRecord{}, false
	}
	t := (p.K - ray.Origin.Axis(int(kAxis))) / denom
	if t <= tMin || t >= tMax {
		return material.HitRecord{}, false
	}

	point := ray.At(t)
	av := point.Axis(int(a))
	bv := point.Axis(int(b))
	if av < p.A0 || av > p.A1 || bv < p.B0 || bv > p.B1 {
		return material.HitRecord{}, false
	}

	outwardNormal := normalForAxis(kAxis)
	if p.FlipNormal {
		outwardNormal = outwardNormal.Negate()
	}

	u := (av - p.A0) / (p.A1 - p.A0)
	v := (bv - p.B0) / (p.B1 - p.B0)

	hit := material.HitRecord{Point: point, T: t, U: u, V: v, Material: p.Material}
	hit.SetFaceNormal(ray.Direction, outwardNormal)
	return hit, true
}

func thirdAxis(a, b axis) axis {
	for _, candidate := range []axis{axisX, axisY, axisZ} {
		if candidate != a && candidate != b {
			return candidate
		}
	}
	return axisZ
}

func normalForAxis(a axis) core.Vec3 {
	switch a {
	case axisX:
		return core.NewVec3(1, 0, 0)
	case axisY:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

// rectBoundingBox returns the AABB for a rect primitive, inflated along the
// degenerate axis so the BVH slab test doesn't spuriously miss it.
func (p *Primitive) rectBoundingBox(a, b axis) core.AABB {
	kAxis := thirdAxis(a, b)
	min := setAxis(setAxis(core.Vec3{}, a, p.A0), b, p.B0)
	max := setAxis(setAxis(core.Vec3{}, a, p.A1), b, p.B1)
	min = setAxis(min, kAxis, p.K)
	max = setAxis(max, kAxis, p.K)
	return core.NewAABB(min, max).Expand(epsilon)
}

func setAxis(v core.Vec3, a axis, val float64) core.Vec3 {
	switch a {
	case axisX:
		v.X = val
	case axisY:
		v.Y = val
	default:
		v.Z = val
	}
	return v
}

func (p *Primitive) hitTriangle(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	const triEpsilon = 1e-8

	edge1 := p.TriB.Subtract(p.TriA)
	edge2 := p.TriC.Subtract(p.TriA)
	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if math.Abs(det) < triEpsilon {
		return material.HitRecord{}, false
	}
	invDet := 1.0 / det

	s := ray.Origin.Subtract(p.TriA)
	u := s.Dot(h) * invDet
	if u < 0 || u > 1 {
		return material.HitRecord{}, false
	}

	q := s.Cross(edge1)
	v := ray.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return material.HitRecord{}, false
	}

	t := edge2.Dot(q) * invDet
	if t <= tMin || t >= tMax {
		return material.HitRecord{}, false
	}

	point := ray.At(t)
	outwardNormal := edge1.Cross(edge2).Normalize()

	hit := material.HitRecord{Point: point, T: t, U: u, V: v, Material: p.Material}
	hit.SetFaceNormal(ray.Direction, outwardNormal)
	return hit, true
}

func (p *Primitive) hitTransform(ray core.Ray, tMin, tMax float64, s *core.Sampler) (material.HitRecord, bool) {
	cosTheta := math.Cos(p.RotationY)
	sinTheta := math.Sin(p.RotationY)

	localOrigin := ray.Origin.Subtract(p.Translation)
	localOrigin = rotateY(localOrigin, cosTheta, -sinTheta)
	localDirection := rotateY(ray.Direction, cosTheta, -sinTheta)
	localRay := core.NewRay(localOrigin, localDirection)

	hit, ok := p.Child.Hit(localRay, tMin, tMax, s)
	if !ok {
		return material.HitRecord{}, false
	}

	hit.Point = rotateY(hit.Point, cosTheta, sinTheta).Add(p.Translation)
	worldNormal := rotateY(hit.OutwardNormal, cosTheta, sinTheta)
	hit.SetFaceNormal(ray.Direction, worldNormal)
	return hit, true
}

// rotateY rotates v about the Y axis given the cosine/sine of the rotation
// angle (sin's sign encodes direction, so callers pass -sinTheta to invert).
func rotateY(v core.Vec3, cosTheta, sinTheta float64) core.Vec3 {
	return core.NewVec3(
		cosTheta*v.X+sinTheta*v.Z,
		v.Y,
		-sinTheta*v.X+cosTheta*v.Z,
	)
}

func (p *Primitive) hitConstantMedium(ray core.Ray, tMin, tMax float64, s *core.Sampler) (material.HitRecord, bool) {
	enter, ok := p.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), s)
	if !ok {
		return material.HitRecord{}, false
	}
	exit, ok := p.Boundary.Hit(ray, enter.T+1e-4, math.Inf(1), s)
	if !ok {
		return material.HitRecord{}, false
	}

	tEnter := enter.T
	tExit := exit.T
	if tEnter < tMin {
		tEnter = tMin
	}
	if tExit > tMax {
		tExit = tMax
	}
	if tEnter >= tExit {
		return material.HitRecord{}, false
	}
	if tEnter < 0 {
		tEnter = 0
	}

	rayLength := ray.Direction.Length()
	distanceInside := (tExit - tEnter) * rayLength

	hitDistance := -math.Log(s.Float64()) / p.Density
	if hitDistance >= distanceInside {
		return material.HitRecord{}, false
	}

	t := tEnter + hitDistance/rayLength
	mediumMaterial := material.NewIsotropic(p.Albedo)
	hit := material.HitRecord{
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		T:         t,
		Material:  mediumMaterial,
	}
	hit.OutwardNormal = hit.Normal
	return hit, true
}

// BoundingBox returns a finite enclosing box for every primitive. Media with
// an unbounded boundary return their boundary's (possibly very large) box.
func (p *Primitive) BoundingBox() core.AABB {
	switch p.Kind {
	case KindSphere:
		r := core.NewVec3(p.Radius, p.Radius, p.Radius)
		return core.NewAABB(p.Center.Subtract(r), p.Center.Add(r))
	case KindRectXY:
		return p.rectBoundingBox(axisX, axisY)
	case KindRectXZ:
		return p.rectBoundingBox(axisX, axisZ)
	case KindRectYZ:
		return p.rectBoundingBox(axisY, axisZ)
	case KindTriangle:
		return core.NewAABBFromPoints(p.TriA, p.TriB, p.TriC).Expand(epsilon)
	case KindTransform:
		return transformedBoundingBox(p.Child.BoundingBox(), p.Translation, p.RotationY)
	case KindConstantMedium:
		return p.Boundary.BoundingBox()
	case KindGroup:
		return groupBoundingBox(p.Children)
	default:
		return core.AABB{}
	}
}

func groupBoundingBox(children []*Primitive) core.AABB {
	if len(children) == 0 {
		return core.AABB{}
	}
	box := children[0].BoundingBox()
	for _, c := range children[1:] {
		box = box.Union(c.BoundingBox())
	}
	return box
}

// transformedBoundingBox rotates all 8 corners of box by rotationY then
// translates, taking the componentwise envelope of the result.
func transformedBoundingBox(box core.AABB, translation core.Vec3, rotationY float64) core.AABB {
	cosTheta := math.Cos(rotationY)
	sinTheta := math.Sin(rotationY)

	var corners [8]core.Vec3
	i := 0
	for _, x := range []float64{box.Min.X, box.Max.X} {
		for _, y := range []float64{box.Min.Y, box.Max.Y} {
			for _, z := range []float64{box.Min.Z, box.Max.Z} {
				corners[i] = rotateY(core.NewVec3(x, y, z), cosTheta, sinTheta).Add(translation)
				i++
			}
		}
	}
	return core.NewAABBFromPoints(corners[:]...)
}
