package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ErrInvalidRadius is returned when a sphere is built with a non-positive or non-finite radius
var ErrInvalidRadius = errors.New("sphere radius must be positive and finite")

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) (*Sphere, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	if !center.IsFinite() {
		return nil, fmt.Errorf("sphere center must be finite: got %v", center)
	}
	return &Sphere{Center: center, Radius: radius}, nil
}

// Hit tests if a ray intersects with the sphere, returning the nearest hit with t > 0.
// Rays starting inside the sphere report the far intersection.
func (s *Sphere) Hit(ray core.Ray) (HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return HitRecord{}, false
	}
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-b - sqrtD) / (2 * a)
	if root <= 0 {
		root = (-b + sqrtD) / (2 * a)
		if root <= 0 {
			// Sphere is entirely behind the origin
			return HitRecord{}, false
		}
	}

	point := ray.At(root)
	return HitRecord{
		T:      root,
		Point:  point,
		Normal: point.Subtract(s.Center).Normalize(),
	}, true
}
