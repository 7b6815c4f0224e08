package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tjrivera/pathtracer/pkg/core"
	"github.com/tjrivera/pathtracer/pkg/material"
)

func writeOBJ(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.obj")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing test OBJ file: %v", err)
	}
	return path
}

func TestLoadOBJMeshTriangulatesTriangleAsIs(t *testing.T) {
	path := writeOBJ(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))

	tris, err := LoadOBJMesh(path, MeshTransform{Scale: 1}, mat)
	if err != nil {
		t.Fatalf("LoadOBJMesh: %v", err)
	}
	if len(tris) != 1 {
		t.Fatalf("got %d triangles, want 1", len(tris))
	}
}

func TestLoadOBJMeshFanTriangulatesQuad(t *testing.T) {
	path := writeOBJ(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n")
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))

	tris, err := LoadOBJMesh(path, MeshTransform{Scale: 1}, mat)
	if err != nil {
		t.Fatalf("LoadOBJMesh: %v", err)
	}
	// n-gon fan triangulation produces n-2 triangles; a quad yields 2.
	if len(tris) != 2 {
		t.Fatalf("got %d triangles for a quad, want 2", len(tris))
	}
}

func TestLoadOBJMeshAppliesScaleAndTranslation(t *testing.T) {
	path := writeOBJ(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))

	transform := MeshTransform{Scale: 2, Translation: core.NewVec3(5, 0, 0), ForwardAxis: 2}
	tris, err := LoadOBJMesh(path, transform, mat)
	if err != nil {
		t.Fatalf("LoadOBJMesh: %v", err)
	}
	if tris[0].TriB.X != 7 {
		t.Errorf("transformed vertex X = %f, want 7 (scaled by 2, translated by 5)", tris[0].TriB.X)
	}
}

func TestLoadOBJMeshRejectsMalformedFace(t *testing.T) {
	path := writeOBJ(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 99\n")
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))

	if _, err := LoadOBJMesh(path, MeshTransform{Scale: 1}, mat); err == nil {
		t.Error("expected an error for a face referencing an out-of-range vertex")
	}
}
