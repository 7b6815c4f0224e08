// Command pathtracer renders one of a fixed set of named scenes to a PNG file.
package main

import (
	"fmt"
	"image/png"
	"os"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tjrivera/pathtracer/pkg/render"
	"github.com/tjrivera/pathtracer/pkg/scene"
)

const (
	defaultWidth    = 640
	defaultHeight   = 480
	defaultMaxDepth = 50
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var sceneName string
	var samples int
	var outPath string

	cmd := &cobra.Command{
		Use:   "pathtracer",
		Short: "Render a scene with an offline Monte-Carlo path tracer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(sceneName, samples, outPath)
		},
	}

	cmd.Flags().StringVar(&sceneName, "scene", "basic", fmt.Sprintf("scene to render, one of %v", scene.Names))
	cmd.Flags().IntVar(&samples, "AA", 200, "samples per pixel (antialiasing)")
	cmd.Flags().StringVar(&outPath, "out", "render.png", "output PNG path")

	return cmd
}

func run(sceneName string, samples int, outPath string) error {
	logger := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

	if !slices.Contains(scene.Names, sceneName) {
		return fmt.Errorf("--scene %q is not one of %v", sceneName, scene.Names)
	}
	if samples <= 0 {
		return fmt.Errorf("--AA must be a positive integer, got %d", samples)
	}

	sc, err := scene.Build(sceneName, defaultWidth, defaultHeight)
	if err != nil {
		logger.Error().Err(err).Str("scene", sceneName).Msg("failed to build scene")
		return err
	}

	start := time.Now()
	img, err := render.Run(render.Config{
		Scene:    sc,
		Width:    defaultWidth,
		Height:   defaultHeight,
		Samples:  samples,
		MaxDepth: defaultMaxDepth,
		BaseSeed: 1,
		Logger:   logger,
	})
	if err != nil {
		logger.Error().Err(err).Msg("render failed")
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		logger.Error().Err(err).Str("path", outPath).Msg("failed to create output file")
		return err
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		logger.Error().Err(err).Msg("failed to encode PNG")
		return err
	}

	logger.Info().
		Dur("elapsed", time.Since(start)).
		Str("scene", sceneName).
		Int("samples", samples).
		Str("out", outPath).
		Msg("render written")
	return nil
}
