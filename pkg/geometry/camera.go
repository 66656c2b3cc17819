package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ErrInvalidCamera is returned when a camera configuration cannot produce an image
var ErrInvalidCamera = errors.New("invalid camera configuration")

// CameraConfig contains all parameters needed to create a pinhole camera
type CameraConfig struct {
	Center         core.Vec3 // Eye point
	Width          int       // Image width in pixels
	AspectRatio    float64   // Width / height
	FocalLength    float64   // Distance from eye to viewport along -Z
	ViewportHeight float64   // Viewport height in world units
}

// DefaultCameraConfig returns the 16:9 camera looking down -Z from the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:         core.NewVec3(0, 0, 0),
		Width:          256,
		AspectRatio:    16.0 / 9.0,
		FocalLength:    1.0,
		ViewportHeight: 2.0,
	}
}

// MergeCameraConfig merges a partial override into a base config.
// Zero-valued fields in the override keep the base value.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if !override.Center.IsZero() {
		result.Center = override.Center
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.FocalLength != 0 {
		result.FocalLength = override.FocalLength
	}
	if override.ViewportHeight != 0 {
		result.ViewportHeight = override.ViewportHeight
	}
	return result
}

// Height returns the image height implied by the width and aspect ratio, at least 1
func (c CameraConfig) Height() int {
	if c.AspectRatio <= 0 {
		return 1
	}
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// Validate reports whether the configuration describes a usable camera
func (c CameraConfig) Validate() error {
	switch {
	case c.Width < 1:
		return fmt.Errorf("%w: width must be at least 1, got %d", ErrInvalidCamera, c.Width)
	case !(c.AspectRatio > 0):
		return fmt.Errorf("%w: aspect ratio must be positive, got %v", ErrInvalidCamera, c.AspectRatio)
	case !(c.FocalLength > 0):
		return fmt.Errorf("%w: focal length must be positive, got %v", ErrInvalidCamera, c.FocalLength)
	case !(c.ViewportHeight > 0):
		return fmt.Errorf("%w: viewport height must be positive, got %v", ErrInvalidCamera, c.ViewportHeight)
	case !c.Center.IsFinite():
		return fmt.Errorf("%w: center must be finite, got %v", ErrInvalidCamera, c.Center)
	}
	return nil
}

// Camera generates rays through the centers of the pixels of a viewport
type Camera struct {
	config  CameraConfig
	width   int
	height  int
	center  core.Vec3
	pixel00 core.Vec3 // Center of the upper-left pixel
	deltaU  core.Vec3 // Offset from pixel to pixel horizontally
	deltaV  core.Vec3 // Offset from pixel to pixel vertically (downwards)
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	width := config.Width
	height := config.Height()

	// Use the real pixel ratio, not the requested one, so pixels stay square
	viewportWidth := config.ViewportHeight * (float64(width) / float64(height))

	viewportU := core.NewVec3(viewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -config.ViewportHeight, 0)

	deltaU := viewportU.Multiply(1.0 / float64(width))
	deltaV := viewportV.Multiply(1.0 / float64(height))

	upperLeft := config.Center.
		Subtract(core.NewVec3(0, 0, config.FocalLength)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))

	return &Camera{
		config:  config,
		width:   width,
		height:  height,
		center:  config.Center,
		pixel00: upperLeft.Add(deltaU.Add(deltaV).Multiply(0.5)),
		deltaU:  deltaU,
		deltaV:  deltaV,
	}, nil
}

// GetRay returns the ray from the eye through the center of pixel (i, j),
// where i counts columns from the left and j counts rows from the top
func (c *Camera) GetRay(i, j int) core.Ray {
	pixelCenter := c.pixel00.
		Add(c.deltaU.Multiply(float64(i))).
		Add(c.deltaV.Multiply(float64(j)))
	return core.NewRay(c.center, pixelCenter.Subtract(c.center))
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }
