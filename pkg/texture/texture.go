// Package texture implements the tagged-variant Texture type: a closed set
// of value lookups at (u, v, p) dispatched by Kind rather than through an
// interface.
package texture

import (
	"math"

	"github.com/tjrivera/pathtracer/pkg/core"
)

// Kind tags which variant of Texture is populated.
type Kind int

const (
	// KindSolid is a uniform color, ignoring u, v, and p entirely.
	KindSolid Kind = iota
	// KindChecker is a 3D procedural checkerboard alternating between two colors.
	KindChecker
	// KindImage samples an sRGB-byte RGB image, linearizing by /255.
	KindImage
	// KindHDR samples an equirectangular float32 radiance image.
	KindHDR
)

// Texture is a closed sum type over the four texture variants. Only the
// fields relevant to Kind are populated.
type Texture struct {
	Kind Kind

	// KindSolid / KindChecker
	Color0, Color1 core.Vec3

	// KindImage / KindHDR
	Width, Height int
	ImageBytes    []byte    // KindImage: tightly packed RGB8
	HDRPixels     []float32 // KindHDR: tightly packed RGB float32
}

// NewSolid creates a uniform-color texture.
func NewSolid(rgb core.Vec3) Texture {
	return Texture{Kind: KindSolid, Color0: rgb}
}

// NewChecker creates a 3D procedural checker texture alternating c0/c1.
func NewChecker(c0, c1 core.Vec3) Texture {
	return Texture{Kind: KindChecker, Color0: c0, Color1: c1}
}

// NewImage creates an 8-bit RGB image texture. bytes must be tightly packed
// row-major RGB triples of length w*h*3.
func NewImage(bytes []byte, w, h int) Texture {
	return Texture{Kind: KindImage, ImageBytes: bytes, Width: w, Height: h}
}

// NewHDR creates a float32 equirectangular radiance texture. pixels must be
// tightly packed row-major RGB triples of length w*h*3.
func NewHDR(pixels []float32, w, h int) Texture {
	return Texture{Kind: KindHDR, HDRPixels: pixels, Width: w, Height: h}
}

// magenta is the debug color returned for lookups against an empty image
// buffer, making a missing or failed-to-load texture obvious in renders.
var magenta = core.NewVec3(1, 0, 1)

// Value evaluates the texture at surface parameters (u, v) and world point p.
func (t Texture) Value(u, v float64, p core.Vec3) core.Vec3 {
	switch t.Kind {
	case KindSolid:
		return t.Color0
	case KindChecker:
		sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
		if sines < 0 {
			return t.Color0
		}
		return t.Color1
	case KindImage:
		return t.sampleImage(u, v)
	case KindHDR:
		return t.sampleHDR(u, v)
	default:
		return magenta
	}
}

// pixelCoords maps (u, v) to a clamped (x, y) texel index shared by the
// image and HDR variants: u clamps to [0,1]; v is flipped (1-v) then
// clamped, since image row 0 is conventionally the top of the texture.
func pixelCoords(u, v float64, w, h int) (int, int) {
	u = clamp01(u)
	v = 1 - clamp01(v)

	x := int(u * float64(w))
	y := int(v * float64(h))
	if x >= w {
		x = w - 1
	}
	if y >= h {
		y = h - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func (t Texture) sampleImage(u, v float64) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.ImageBytes) < t.Width*t.Height*3 {
		return magenta
	}
	x, y := pixelCoords(u, v, t.Width, t.Height)
	i := (y*t.Width + x) * 3
	return core.NewVec3(
		float64(t.ImageBytes[i])/255.0,
		float64(t.ImageBytes[i+1])/255.0,
		float64(t.ImageBytes[i+2])/255.0,
	)
}

func (t Texture) sampleHDR(u, v float64) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.HDRPixels) < t.Width*t.Height*3 {
		return magenta
	}
	x, y := pixelCoords(u, v, t.Width, t.Height)
	i := (y*t.Width + x) * 3
	return core.NewVec3(
		float64(t.HDRPixels[i]),
		float64(t.HDRPixels[i+1]),
		float64(t.HDRPixels[i+2]),
	)
}
