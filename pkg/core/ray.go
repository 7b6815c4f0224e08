package core

// Ray represents a ray with an origin and direction. InvDirection is the
// componentwise reciprocal of Direction, precomputed once so the BVH slab
// test never divides per axis per node.
type Ray struct {
	Origin       Vec3
	Direction    Vec3
	InvDirection Vec3
}

// NewRay creates a new ray and precomputes its reciprocal direction. A zero
// component in Direction yields +/-Inf in InvDirection, which the slab test
// handles correctly without a special case.
func NewRay(origin, direction Vec3) Ray {
	return Ray{
		Origin:       origin,
		Direction:    direction,
		InvDirection: Vec3{X: 1 / direction.X, Y: 1 / direction.Y, Z: 1 / direction.Z},
	}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
