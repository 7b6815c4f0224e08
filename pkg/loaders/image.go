// Package loaders implements the external-collaborator decoders named but
// not specified by the core: image textures, equirectangular HDR radiance
// maps, and Wavefront OBJ triangle meshes. None of this package's output
// format is specific to any one file format — every loader here produces
// the tightly packed buffers the texture/primitive packages already expect.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoding
	_ "golang.org/x/image/tiff" // register TIFF decoding
)

// LoadImageTexture decodes a PNG/JPEG/BMP/TIFF file and returns its pixels
// as a tightly packed row-major RGB8 buffer, matching texture.NewImage's
// contract.
func LoadImageTexture(path string) (pixels []byte, width, height int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("loaders: open image %q: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("loaders: decode image %q: %w", path, err)
	}

	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	pixels = make([]byte, width*height*3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*width + x) * 3
			pixels[i] = byte(r >> 8)
			pixels[i+1] = byte(g >> 8)
			pixels[i+2] = byte(b >> 8)
		}
	}

	return pixels, width, height, nil
}
