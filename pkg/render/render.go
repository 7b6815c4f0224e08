// Package render drives the parallel framebuffer render: it partitions the
// frame into disjoint tiles, runs a fixed worker pool over them, and
// assembles the gamma-corrected RGBA8 output image.
package render

import (
	"image"
	imgcolor "image/color"
	"runtime"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tjrivera/pathtracer/pkg/core"
	"github.com/tjrivera/pathtracer/pkg/integrator"
)

// TileSize is the edge length of a square tile of pixels assigned to a
// single worker as one unit of work.
const TileSize = 32

// Config describes one render invocation.
type Config struct {
	Scene         *integrator.Scene
	Width, Height int
	Samples       int // samples per pixel
	MaxDepth      int
	Workers       int   // 0 selects runtime.NumCPU()
	BaseSeed      int64 // per-tile seeds are BaseSeed XOR tileIndex
	Logger        zerolog.Logger
}

// Stats summarizes one tile's contribution, logged as rendering progresses.
type Stats struct {
	TileIndex int
	Pixels    int
}

// tileTask is one unit of work: a disjoint rectangular region of the image,
// tagged with a deterministic index that seeds its worker's PRNG.
type tileTask struct {
	index          int
	x0, y0, x1, y1 int
}

// Run partitions cfg's frame into TileSize x TileSize tiles, renders them
// across a fixed pool of workers, and returns the assembled RGBA8 image.
// Each tile gets a fresh PRNG seeded with BaseSeed XOR tile index, so
// the same config always produces the same framebuffer regardless of
// scheduling order.
func Run(cfg Config) (*image.RGBA, error) {
	numWorkers := cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	tiles := buildTiles(cfg.Width, cfg.Height)
	taskQueue := make(chan tileTask, len(tiles))
	for _, tile := range tiles {
		taskQueue <- tile
	}
	close(taskQueue)

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))

	var wg sync.WaitGroup
	var completed int64
	var mu sync.Mutex

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskQueue {
				sampler := core.NewSampler(cfg.BaseSeed ^ int64(task.index))
				stats := renderTile(cfg, img, task, sampler)

				mu.Lock()
				completed++
				n := completed
				mu.Unlock()
				cfg.Logger.Debug().
					Int("tile", stats.TileIndex).
					Int("pixels", stats.Pixels).
					Int("tiles_done", int(n)).
					Int("tiles_total", len(tiles)).
					Msg("tile rendered")
			}
		}()
	}

	wg.Wait()

	cfg.Logger.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("samples", cfg.Samples).
		Msg("render complete")

	return img, nil
}

// buildTiles partitions a (width, height) frame into TileSize x TileSize
// tiles, in row-major order, with the last row/column of tiles clipped to
// the frame edge.
func buildTiles(width, height int) []tileTask {
	var tiles []tileTask
	index := 0
	for y0 := 0; y0 < height; y0 += TileSize {
		y1 := min(y0+TileSize, height)
		for x0 := 0; x0 < width; x0 += TileSize {
			x1 := min(x0+TileSize, width)
			tiles = append(tiles, tileTask{index: index, x0: x0, y0: y0, x1: x1, y1: y1})
			index++
		}
	}
	return tiles
}

// renderTile writes RenderPixel's output for every pixel in task's bounds
// directly into img. Tiles never overlap, so concurrent writers touch
// disjoint pixels and need no locking.
func renderTile(cfg Config, img *image.RGBA, task tileTask, sampler *core.Sampler) Stats {
	for j := task.y0; j < task.y1; j++ {
		for i := task.x0; i < task.x1; i++ {
			color := integrator.RenderPixel(cfg.Scene, i, j, cfg.Width, cfg.Height, cfg.Samples, cfg.MaxDepth, sampler)
			r := uint8(color.X*255 + 0.5)
			g := uint8(color.Y*255 + 0.5)
			b := uint8(color.Z*255 + 0.5)
			img.SetRGBA(i, j, imgcolor.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return Stats{TileIndex: task.index, Pixels: (task.x1 - task.x0) * (task.y1 - task.y0)}
}
