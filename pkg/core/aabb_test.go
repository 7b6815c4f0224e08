package core

import (
	"math"
	"testing"
)

func TestUnionContainsBothBoxes(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(0.5, -1, 2), NewVec3(2, 0, 3))
	u := a.Union(b)

	for _, p := range []Vec3{a.Min, a.Max, b.Min, b.Max} {
		if p.X < u.Min.X || p.X > u.Max.X || p.Y < u.Min.Y || p.Y > u.Max.Y || p.Z < u.Min.Z || p.Z > u.Max.Z {
			t.Errorf("union %v does not contain point %v", u, p)
		}
	}
}

func TestHitMatchesSlabIntersection(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))

	if !box.Hit(ray, 0.001, math.Inf(1)) {
		t.Error("expected ray through box center to hit")
	}

	missRay := NewRay(NewVec3(5, 5, -5), NewVec3(0, 0, 1))
	if box.Hit(missRay, 0.001, math.Inf(1)) {
		t.Error("expected parallel ray far from box to miss")
	}
}

func TestHitRespectsTRange(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))

	// Box spans t in [4, 6]; restrict the query window to miss it.
	if box.Hit(ray, 0, 3) {
		t.Error("expected box hit to be excluded by tMax before entry")
	}
	if box.Hit(ray, 7, 10) {
		t.Error("expected box hit to be excluded by tMin after exit")
	}
}

func TestLongestAxis(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 5, 2))
	if axis := box.LongestAxis(); axis != 1 {
		t.Errorf("LongestAxis() = %d, want 1 (Y)", axis)
	}
}
