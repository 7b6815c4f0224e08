package core

import (
	"math"
	"math/rand"
)

// Sampler is the single PRNG entry point used by every hot path that needs
// randomness: camera depth-of-field sampling, material scattering, and
// constant-medium free-flight sampling. Each render worker owns exactly one
// Sampler; nothing here is safe to share across goroutines.
type Sampler struct {
	rnd *rand.Rand
}

// NewSampler creates a Sampler seeded deterministically so that repeated
// renders with the same seed produce bit-identical output.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rnd: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform sample in [0, 1).
func (s *Sampler) Float64() float64 {
	return s.rnd.Float64()
}

// Vec2 returns a pair of independent uniform samples in [0, 1)^2.
func (s *Sampler) Vec2() (float64, float64) {
	return s.rnd.Float64(), s.rnd.Float64()
}

// InUnitDisk returns a uniformly distributed point in the unit disk (z=0),
// used for thin-lens depth-of-field sampling.
func (s *Sampler) InUnitDisk() Vec3 {
	for {
		p := Vec3{X: 2*s.rnd.Float64() - 1, Y: 2*s.rnd.Float64() - 1}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// InUnitSphere returns a uniformly distributed point inside the unit sphere,
// used for metal fuzz perturbation.
func (s *Sampler) InUnitSphere() Vec3 {
	for {
		p := Vec3{
			X: 2*s.rnd.Float64() - 1,
			Y: 2*s.rnd.Float64() - 1,
			Z: 2*s.rnd.Float64() - 1,
		}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// UnitVector returns a uniformly distributed unit vector (uniform on the
// sphere), used for isotropic-medium scattering.
func (s *Sampler) UnitVector() Vec3 {
	a := s.rnd.Float64() * 2 * math.Pi
	z := s.rnd.Float64()*2 - 1
	r := math.Sqrt(math.Max(0, 1-z*z))
	return Vec3{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z}
}

// LambertianDirection returns normal plus a uniformly random unit vector, an
// approximate cosine-weighted scatter direction for diffuse surfaces.
func (s *Sampler) LambertianDirection(normal Vec3) Vec3 {
	return normal.Add(s.UnitVector())
}
