package integrator

import "github.com/tjrivera/pathtracer/pkg/core"

// RenderPixel estimates pixel (i, j) of a (width, height) image by averaging
// samples independent camera-ray estimates, gamma-2 correcting, and
// clamping to [0,1]. Image row 0 is the top of the image (t is flipped).
func RenderPixel(scene *Scene, i, j, width, height, samples, maxDepth int, sampler *core.Sampler) core.Vec3 {
	var total core.Vec3
	for n := 0; n < samples; n++ {
		xi1, xi2 := sampler.Vec2()
		s := (float64(i) + xi1) / float64(width)
		t := 1 - (float64(j)+xi2)/float64(height)

		total = total.Add(PixelColor(scene, s, t, maxDepth, sampler))
	}

	averaged := total.Multiply(1.0 / float64(samples))
	return averaged.GammaCorrect(2).Clamp(0, 1)
}
