package renderer

import "github.com/df07/go-sphere-raytracer/pkg/core"

// Image is a row-major framebuffer of linear RGB colors, top row first
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (x, y)
func (img *Image) At(x, y int) core.Vec3 {
	return img.Pixels[y*img.Width+x]
}

// Set sets the color of pixel (x, y)
func (img *Image) Set(x, y int, color core.Vec3) {
	img.Pixels[y*img.Width+x] = color
}

// Row returns the pixels of row y. Rows do not overlap, so distinct rows may
// be written from different goroutines.
func (img *Image) Row(y int) []core.Vec3 {
	return img.Pixels[y*img.Width : (y+1)*img.Width]
}
