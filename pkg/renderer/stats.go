package renderer

import (
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalRays    int           // Rays intersected against the scene
	TotalBounces int           // Reflective bounces followed
	MaxBounces   int           // Longest reflection chain of any pixel
	RowsRendered int           // Completed scanlines
	Workers      int           // Goroutines used
	Duration     time.Duration // Wall time of the render
}

// AddTrace accounts for one traced pixel
func (s *RenderStats) AddTrace(trace integrator.TraceResult) {
	s.TotalPixels++
	s.TotalRays += trace.Rays
	s.TotalBounces += trace.Bounces
	s.MaxBounces = max(s.MaxBounces, trace.Bounces)
}

// Merge folds the statistics of a partial render into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalRays += other.TotalRays
	s.TotalBounces += other.TotalBounces
	s.MaxBounces = max(s.MaxBounces, other.MaxBounces)
	s.RowsRendered += other.RowsRendered
}

// AverageRaysPerPixel returns the mean number of rays per rendered pixel
func (s RenderStats) AverageRaysPerPixel() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalRays) / float64(s.TotalPixels)
}

// CalculateAverageLuminance returns the mean perceptual luminance of an image
func CalculateAverageLuminance(img *Image) float64 {
	if len(img.Pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range img.Pixels {
		total += luminance(c)
	}
	return total / float64(len(img.Pixels))
}

// luminance uses Rec. 709 weights
func luminance(c core.Vec3) float64 {
	return 0.2126*c.X + 0.7152*c.Y + 0.0722*c.Z
}
