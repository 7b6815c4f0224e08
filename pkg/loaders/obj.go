package loaders

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tjrivera/pathtracer/pkg/core"
	"github.com/tjrivera/pathtracer/pkg/material"
	"github.com/tjrivera/pathtracer/pkg/primitive"
)

// MeshTransform describes the placement applied to every vertex of a
// loaded mesh before triangulation: uniform scale, the ForwardAxis remap, a
// Y-axis rotation (in degrees), then a translation. ForwardAxis 0 turns local
// +X into world -Z and 1 turns local +Y into world -Z; 2 (and any other
// value, including Z) leaves the axes as authored. The zero value selects X.
type MeshTransform struct {
	Scale       float64
	RotationDeg float64
	Translation core.Vec3
	ForwardAxis int
}

// LoadOBJMesh reads a minimal Wavefront OBJ file (v/vt/f records only),
// applies transform to every vertex, fan-triangulates any face with more
// than 3 vertices, and returns a flat list of triangle primitives sharing mat.
func LoadOBJMesh(path string, transform MeshTransform, mat *material.Material) ([]*primitive.Primitive, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open obj %q: %w", path, err)
	}
	defer file.Close()

	var vertices []core.Vec3
	var faces [][]int // each face: indices into vertices, already 0-based

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("loaders: %q: %w", path, err)
			}
			vertices = append(vertices, applyTransform(v, transform))

		case "vt":
			// Texture coordinates are parsed but not used: triangles derive
			// uv from barycentric coordinates, not OBJ texcoords.

		case "f":
			face, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("loaders: %q: %w", path, err)
			}
			faces = append(faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: reading %q: %w", path, err)
	}

	var triangles []*primitive.Primitive
	for _, face := range faces {
		for i := 1; i+1 < len(face); i++ {
			a, b, c := face[0], face[i], face[i+1]
			if a < 0 || a >= len(vertices) || b < 0 || b >= len(vertices) || c < 0 || c >= len(vertices) {
				return nil, fmt.Errorf("loaders: %q: face references out-of-range vertex", path)
			}
			triangles = append(triangles, primitive.NewTriangle(vertices[a], vertices[b], vertices[c], mat))
		}
	}

	return triangles, nil
}

func parseVertex(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("vertex record has fewer than 3 components")
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return core.Vec3{}, fmt.Errorf("parsing vertex x: %w", err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return core.Vec3{}, fmt.Errorf("parsing vertex y: %w", err)
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return core.Vec3{}, fmt.Errorf("parsing vertex z: %w", err)
	}
	return core.NewVec3(x, y, z), nil
}

// parseFace extracts the vertex index from each "v", "v/vt", "v/vt/vn", or
// "v//vn" reference, converting OBJ's 1-based indexing to 0-based.
func parseFace(fields []string) ([]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face record has fewer than 3 vertices")
	}
	indices := make([]int, len(fields))
	for i, f := range fields {
		vertexPart := strings.SplitN(f, "/", 2)[0]
		idx, err := strconv.Atoi(vertexPart)
		if err != nil {
			return nil, fmt.Errorf("parsing face vertex index %q: %w", f, err)
		}
		indices[i] = idx - 1
	}
	return indices, nil
}

func applyTransform(v core.Vec3, t MeshTransform) core.Vec3 {
	v = v.Multiply(t.Scale)
	v = rotateForward(v, t.ForwardAxis)

	theta := t.RotationDeg * math.Pi / 180
	cosT, sinT := math.Cos(theta), math.Sin(theta)
	v = core.NewVec3(cosT*v.X+sinT*v.Z, v.Y, -sinT*v.X+cosT*v.Z)

	return v.Add(t.Translation)
}

// rotateForward permutes v so that ForwardAxis 0 (X) or 1 (Y) becomes the
// world -Z axis, with the other two axes becoming X and Y respectively. Any
// other ForwardAxis returns v unchanged.
func rotateForward(v core.Vec3, forwardAxis int) core.Vec3 {
	switch forwardAxis {
	case 0:
		return core.NewVec3(v.Y, v.Z, -v.X)
	case 1:
		return core.NewVec3(v.X, v.Z, -v.Y)
	default:
		return v
	}
}
