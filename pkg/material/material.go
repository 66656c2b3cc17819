package material

import "github.com/df07/go-sphere-raytracer/pkg/core"

// Material describes how a surface responds to light.
// A reflective material is a perfect mirror and its Color is not used by
// the default shading mode.
type Material struct {
	Color      core.Vec3 // Base RGB color in [0,1]
	Reflective bool      // Whether the surface is a mirror
}

// NewDiffuse creates a matte Lambertian material with the given base color
func NewDiffuse(color core.Vec3) Material {
	return Material{Color: color}
}

// NewMirror creates a perfect white mirror
func NewMirror() Material {
	return Material{Color: core.NewVec3(1, 1, 1), Reflective: true}
}

// NewTintedMirror creates a mirror whose color only matters when reflections are tinted
func NewTintedMirror(tint core.Vec3) Material {
	return Material{Color: tint, Reflective: true}
}

// Named presets used by the built-in scenes
var (
	MatteWhite = NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	MatteRed   = NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	MatteGreen = NewDiffuse(core.NewVec3(0.12, 0.45, 0.15))
	MatteBlue  = NewDiffuse(core.NewVec3(0.1, 0.2, 0.5))
	Mirror     = NewMirror()
)
