package output

import (
	"io"

	"github.com/fogleman/gg"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// WritePNG encodes the image as an 8-bit PNG
func WritePNG(w io.Writer, img *renderer.Image) error {
	dc := gg.NewContext(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := QuantizeColor(img.At(x, y))
			dc.SetRGB255(int(r), int(g), int(b))
			dc.SetPixel(x, y)
		}
	}
	return dc.EncodePNG(w)
}
