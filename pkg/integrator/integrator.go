package integrator

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along ray with at most depth reflective bounces
	RayColor(ray core.Ray, scene *scene.Scene, depth int) core.Vec3

	// Trace is RayColor that also reports how much work the ray took
	Trace(ray core.Ray, scene *scene.Scene, depth int) TraceResult
}

// TraceResult is the color of a camera ray plus per-ray statistics
type TraceResult struct {
	Color   core.Vec3
	Rays    int // Rays intersected against the scene, including the camera ray
	Bounces int // Reflective bounces followed
}

// BackgroundGradient returns the sky color for a ray that escapes the scene,
// blending bottom to top by the normalized vertical direction
func BackgroundGradient(ray core.Ray, background scene.Background) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)

	return background.BottomColor.Lerp(background.TopColor, a)
}
