package core

import "testing"

func TestInUnitDiskStaysInsideUnitCircle(t *testing.T) {
	s := NewSampler(1)
	for i := 0; i < 1000; i++ {
		p := s.InUnitDisk()
		if p.Z != 0 {
			t.Fatalf("InUnitDisk produced nonzero Z: %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("InUnitDisk produced point outside unit disk: %v", p)
		}
	}
}

func TestInUnitSphereStaysInsideUnitSphere(t *testing.T) {
	s := NewSampler(2)
	for i := 0; i < 1000; i++ {
		p := s.InUnitSphere()
		if p.LengthSquared() >= 1 {
			t.Fatalf("InUnitSphere produced point outside unit sphere: %v", p)
		}
	}
}

func TestUnitVectorIsUnitLength(t *testing.T) {
	s := NewSampler(3)
	for i := 0; i < 1000; i++ {
		v := s.UnitVector()
		if l := v.Length(); l < 0.999 || l > 1.001 {
			t.Fatalf("UnitVector length = %f, want ~1", l)
		}
	}
}

func TestSamplerDeterministicForSameSeed(t *testing.T) {
	a := NewSampler(42)
	b := NewSampler(42)
	for i := 0; i < 50; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("samplers with the same seed diverged")
		}
	}
}
