package lights

import "github.com/df07/go-sphere-raytracer/pkg/core"

// PointLight is an infinitesimal light source emitting uniformly in all directions
type PointLight struct {
	Position core.Vec3 // World-space position
	Color    core.Vec3 // Emitted RGB color
}

// NewPointLight creates a point light
func NewPointLight(position, color core.Vec3) PointLight {
	return PointLight{Position: position, Color: color}
}

// NewWhitePointLight creates a white point light at the given position
func NewWhitePointLight(position core.Vec3) PointLight {
	return NewPointLight(position, core.NewVec3(1, 1, 1))
}

// DirectionFrom returns the unit direction from point toward the light
func (l PointLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.Position.Subtract(point).Normalize()
}
