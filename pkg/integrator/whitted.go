package integrator

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// LightingMode selects how point lights contribute to diffuse surfaces
type LightingMode int

const (
	// FirstLight shades with the first light only and ignores its color
	FirstLight LightingMode = iota
	// AverageLights averages the colored Lambertian term of every light
	AverageLights
)

// String returns the flag spelling of the mode
func (m LightingMode) String() string {
	switch m {
	case FirstLight:
		return "first"
	case AverageLights:
		return "average"
	default:
		return "unknown"
	}
}

// DefaultReflectionBias offsets reflected rays along the normal to avoid self-intersection
const DefaultReflectionBias = 0.1

// Config contains shading options
type Config struct {
	ReflectionBias  float64      // Offset of reflected ray origins along the normal
	LightingMode    LightingMode // How lights are combined on diffuse surfaces
	TintReflections bool         // Multiply reflections by the mirror's color
}

// DefaultConfig returns the plain mirror and single light shading
func DefaultConfig() Config {
	return Config{
		ReflectionBias: DefaultReflectionBias,
		LightingMode:   FirstLight,
	}
}

// WhittedIntegrator shades hits with Lambertian lighting and follows mirror reflections.
// It holds no mutable state and may be shared between goroutines.
type WhittedIntegrator struct {
	config Config
}

// NewWhittedIntegrator creates a new integrator
func NewWhittedIntegrator(config Config) *WhittedIntegrator {
	if config.ReflectionBias < 0 {
		config.ReflectionBias = 0
	}
	return &WhittedIntegrator{config: config}
}

// RayColor computes the color for a single ray
func (w *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene, depth int) core.Vec3 {
	return w.Trace(ray, s, depth).Color
}

// Trace computes the color for a single ray and counts the work done
func (w *WhittedIntegrator) Trace(ray core.Ray, s *scene.Scene, depth int) TraceResult {
	var result TraceResult
	result.Color = w.rayColorRecursive(ray, s, depth, &result)
	return result
}

// rayColorRecursive returns the color for a given ray
func (w *WhittedIntegrator) rayColorRecursive(ray core.Ray, s *scene.Scene, depth int, stats *TraceResult) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	stats.Rays++
	index, hit, isHit := s.Hit(ray)
	if !isHit {
		return BackgroundGradient(ray, s.Background)
	}

	obj := s.Object(index)
	if obj.Material.Reflective {
		stats.Bounces++
		reflected := w.calculateReflectedColor(ray, hit, s, depth, stats)
		if w.config.TintReflections {
			return reflected.MultiplyVec(obj.Material.Color)
		}
		return reflected
	}

	return w.calculateDiffuseColor(hit, obj.Material.Color, s)
}

// calculateReflectedColor follows the mirror direction from the hit point
func (w *WhittedIntegrator) calculateReflectedColor(ray core.Ray, hit geometry.HitRecord, s *scene.Scene, depth int, stats *TraceResult) core.Vec3 {
	reflected := core.NewRay(
		hit.Point.Add(hit.Normal.Multiply(w.config.ReflectionBias)),
		ray.Direction.Reflect(hit.Normal),
	)
	return w.rayColorRecursive(reflected, s, depth-1, stats)
}

// calculateDiffuseColor applies Lambertian shading without shadows or ambient light
func (w *WhittedIntegrator) calculateDiffuseColor(hit geometry.HitRecord, albedo core.Vec3, s *scene.Scene) core.Vec3 {
	if len(s.Lights) == 0 {
		return core.Vec3{}
	}

	if w.config.LightingMode == AverageLights {
		sum := core.Vec3{}
		for _, light := range s.Lights {
			intensity := LambertIntensity(hit.Normal, light.DirectionFrom(hit.Point))
			sum = sum.Add(light.Color.Multiply(intensity))
		}
		return albedo.MultiplyVec(sum.Multiply(1.0 / float64(len(s.Lights))))
	}

	intensity := LambertIntensity(hit.Normal, s.Lights[0].DirectionFrom(hit.Point))
	return albedo.Multiply(intensity)
}

// LambertIntensity returns n·l for unit vectors, or 0 when the surface faces away from the light
func LambertIntensity(normal, toLight core.Vec3) float64 {
	intensity := normal.Dot(toLight)
	if intensity < 0 {
		return 0
	}
	return intensity
}
