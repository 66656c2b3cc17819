package geometry

import "github.com/df07/go-sphere-raytracer/pkg/core"

// HitRecord contains information about a ray-object intersection.
// It is only meaningful when the hit test that produced it reported a hit.
type HitRecord struct {
	T      float64   // Parameter t along the ray
	Point  core.Vec3 // Point of intersection
	Normal core.Vec3 // Unit outward surface normal at Point
}
