package output

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// maxChannel is the largest value a channel may reach before quantization
const maxChannel = 0.999

// Quantize converts a linear channel value to 8 bits by truncating 256·c.
// Values are clamped to [0, 0.999] first; NaN maps to 0.
func Quantize(c float64) uint8 {
	if math.IsNaN(c) {
		return 0
	}
	c = max(0, min(maxChannel, c))
	return uint8(256 * c)
}

// QuantizeColor quantizes all three channels
func QuantizeColor(color core.Vec3) (r, g, b uint8) {
	return Quantize(color.X), Quantize(color.Y), Quantize(color.Z)
}

// PPMWriter streams an image in the plain-text P3 format.
// Call WriteHeader once, WritePixel width·height times in row-major order, then Flush.
type PPMWriter struct {
	w       *bufio.Writer
	pending int // Pixels still expected after the header
}

// NewPPMWriter creates a P3 writer on top of w
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the format tag, dimensions and maximum channel value
func (p *PPMWriter) WriteHeader(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("ppm: invalid dimensions %dx%d", width, height)
	}
	p.pending = width * height
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel appends one pixel as "R G B"
func (p *PPMWriter) WritePixel(color core.Vec3) error {
	if p.pending <= 0 {
		return fmt.Errorf("ppm: pixel written beyond image bounds")
	}
	p.pending--
	r, g, b := QuantizeColor(color)
	_, err := fmt.Fprintf(p.w, "%d %d %d\n", r, g, b)
	return err
}

// Flush writes buffered data and reports pixels that were never written
func (p *PPMWriter) Flush() error {
	if err := p.w.Flush(); err != nil {
		return err
	}
	if p.pending != 0 {
		return fmt.Errorf("ppm: %d pixels missing", p.pending)
	}
	return nil
}

// WritePPM writes a whole image, top-left pixel first
func WritePPM(w io.Writer, img *renderer.Image) error {
	p := NewPPMWriter(w)
	if err := p.WriteHeader(img.Width, img.Height); err != nil {
		return err
	}
	for _, color := range img.Pixels {
		if err := p.WritePixel(color); err != nil {
			return err
		}
	}
	return p.Flush()
}
