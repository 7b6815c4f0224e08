package render

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/tjrivera/pathtracer/pkg/bvh"
	"github.com/tjrivera/pathtracer/pkg/camera"
	"github.com/tjrivera/pathtracer/pkg/core"
	"github.com/tjrivera/pathtracer/pkg/integrator"
	"github.com/tjrivera/pathtracer/pkg/material"
	"github.com/tjrivera/pathtracer/pkg/primitive"
	"github.com/tjrivera/pathtracer/pkg/texture"
)

func testScene() *integrator.Scene {
	mat := material.NewDiffuseLight(texture.NewSolid(core.NewVec3(3, 3, 3)))
	sphere := primitive.NewSphere(core.NewVec3(0, 0, 0), 1, mat)
	cam := camera.New(camera.Config{
		LookFrom:    core.NewVec3(0, 0, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60,
		AspectRatio: 1,
		FocusDist:   3,
	})
	return &integrator.Scene{BVH: bvh.Build([]*primitive.Primitive{sphere}), Camera: cam}
}

func TestBuildTilesCoversEntireFrameWithoutOverlap(t *testing.T) {
	tiles := buildTiles(70, 50)
	covered := make(map[[2]int]bool)
	for _, tile := range tiles {
		for y := tile.y0; y < tile.y1; y++ {
			for x := tile.x0; x < tile.x1; x++ {
				key := [2]int{x, y}
				if covered[key] {
					t.Fatalf("pixel (%d,%d) covered by more than one tile", x, y)
				}
				covered[key] = true
			}
		}
	}
	if len(covered) != 70*50 {
		t.Fatalf("covered %d pixels, want %d", len(covered), 70*50)
	}
}

func TestRunProducesFullyOpaqueImage(t *testing.T) {
	cfg := Config{
		Scene:    testScene(),
		Width:    16,
		Height:   16,
		Samples:  2,
		MaxDepth: 3,
		Workers:  2,
		BaseSeed: 1,
		Logger:   zerolog.Nop(),
	}
	img, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				t.Fatalf("pixel (%d,%d) alpha = %d, want fully opaque", x, y, a)
			}
		}
	}
}

func TestRunIsDeterministicForSameBaseSeed(t *testing.T) {
	cfg := Config{
		Scene:    testScene(),
		Width:    24,
		Height:   24,
		Samples:  4,
		MaxDepth: 3,
		Workers:  3,
		BaseSeed: 42,
		Logger:   zerolog.Nop(),
	}
	a, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	b, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("pixel (%d,%d) differs between identical-seed runs", x, y)
			}
		}
	}
}
