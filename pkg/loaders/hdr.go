package loaders

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadHDRTexture parses a Radiance RGBE (.hdr) file and returns its pixels
// as a tightly packed row-major RGB float32 buffer, matching
// texture.NewHDR's contract. Supports both flat and run-length-encoded
// scanlines in the "-Y H +X W" (top-down) orientation.
func LoadHDRTexture(path string) (pixels []float32, width, height int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("loaders: open hdr %q: %w", path, err)
	}
	defer file.Close()

	r := bufio.NewReader(file)

	if err := checkMagic(r); err != nil {
		return nil, 0, 0, fmt.Errorf("loaders: %q: %w", path, err)
	}
	if err := skipHeaderLines(r); err != nil {
		return nil, 0, 0, fmt.Errorf("loaders: %q: %w", path, err)
	}
	width, height, err = readResolution(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("loaders: %q: %w", path, err)
	}

	pixels = make([]float32, width*height*3)
	for y := 0; y < height; y++ {
		scanline, err := readScanline(r, width)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("loaders: %q: scanline %d: %w", path, y, err)
		}
		for x := 0; x < width; x++ {
			rr, gg, bb := rgbeToFloat(scanline[x*4], scanline[x*4+1], scanline[x*4+2], scanline[x*4+3])
			i := (y*width + x) * 3
			pixels[i], pixels[i+1], pixels[i+2] = rr, gg, bb
		}
	}

	return pixels, width, height, nil
}

func checkMagic(r *bufio.Reader) error {
	line, err := r.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading magic line: %w", err)
	}
	if !strings.HasPrefix(line, "#?RADIANCE") && !strings.HasPrefix(line, "#?RGBE") {
		return fmt.Errorf("not a Radiance HDR file (magic %q)", strings.TrimSpace(line))
	}
	return nil
}

// skipHeaderLines reads variable-declaration lines (FORMAT=, EXPOSURE=,
// etc.) until the blank line that terminates the header.
func skipHeaderLines(r *bufio.Reader) error {
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading header: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			return nil
		}
	}
}

// readResolution parses a line of the form "-Y H +X W" (top-down scan).
func readResolution(r *bufio.Reader) (width, height int, err error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return 0, 0, fmt.Errorf("reading resolution line: %w", err)
	}
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != "-Y" || fields[2] != "+X" {
		return 0, 0, fmt.Errorf("unsupported resolution line %q", strings.TrimSpace(line))
	}
	height, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing height: %w", err)
	}
	width, err = strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing width: %w", err)
	}
	return width, height, nil
}

// readScanline reads one scanline of width RGBE texels, detecting the
// new-style run-length-encoded format (a two-byte marker of 0x02 0x02
// followed by a big-endian length) and falling back to flat encoding.
func readScanline(r *bufio.Reader, width int) ([]byte, error) {
	out := make([]byte, width*4)

	header, err := peekBytes(r, 4)
	if err != nil {
		return nil, err
	}

	isRLE := width >= 8 && width <= 0x7fff &&
		header[0] == 2 && header[1] == 2 && (int(header[2])<<8|int(header[3])) == width

	if !isRLE {
		if _, err := io.ReadFull(r, out); err != nil {
			return nil, fmt.Errorf("reading flat scanline: %w", err)
		}
		return out, nil
	}

	if _, err := io.ReadFull(r, make([]byte, 4)); err != nil {
		return nil, fmt.Errorf("consuming RLE header: %w", err)
	}

	for channel := 0; channel < 4; channel++ {
		x := 0
		for x < width {
			count, err := r.ReadByte()
			if err != nil {
				return nil, fmt.Errorf("reading run count: %w", err)
			}
			if count > 128 {
				// run of (count-128) copies of the next byte
				runLen := int(count) - 128
				value, err := r.ReadByte()
				if err != nil {
					return nil, fmt.Errorf("reading run value: %w", err)
				}
				for i := 0; i < runLen; i++ {
					out[(x+i)*4+channel] = value
				}
				x += runLen
			} else {
				// count literal bytes
				literalLen := int(count)
				for i := 0; i < literalLen; i++ {
					value, err := r.ReadByte()
					if err != nil {
						return nil, fmt.Errorf("reading literal byte: %w", err)
					}
					out[(x+i)*4+channel] = value
				}
				x += literalLen
			}
		}
	}

	return out, nil
}

func peekBytes(r *bufio.Reader, n int) ([]byte, error) {
	b, err := r.Peek(n)
	if err != nil {
		return nil, fmt.Errorf("peeking scanline header: %w", err)
	}
	return b, nil
}

// rgbeToFloat decodes one RGBE (4-byte shared-exponent) texel into linear floats.
func rgbeToFloat(r, g, b, e byte) (float32, float32, float32) {
	if e == 0 {
		return 0, 0, 0
	}
	scale := math.Ldexp(1.0, int(e)-(128+8))
	return float32(float64(r) * scale), float32(float64(g) * scale), float32(float64(b) * scale)
}
