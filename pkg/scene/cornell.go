package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// wallRadius is large enough that the visible part of each wall sphere is nearly flat
const wallRadius = 1000.0

// NewCornellScene creates a Cornell box whose five walls are huge spheres,
// holding a mirror sphere and a white diffuse sphere
func NewCornellScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaults := geometry.DefaultCameraConfig()
	defaults.AspectRatio = 1.0 // Square aspect ratio for Cornell box
	b := newBuilder("cornell", defaults, cameraOverrides)

	// Box spans x,y in [-1,1] and z in [-3,-1]
	const half = 1.0
	const back = -3.0
	const mid = -2.0

	b.sphere(core.NewVec3(-half-wallRadius, 0, mid), wallRadius, material.MatteRed)   // Left wall
	b.sphere(core.NewVec3(half+wallRadius, 0, mid), wallRadius, material.MatteGreen)  // Right wall
	b.sphere(core.NewVec3(0, -half-wallRadius, mid), wallRadius, material.MatteWhite) // Floor
	b.sphere(core.NewVec3(0, half+wallRadius, mid), wallRadius, material.MatteWhite)  // Ceiling
	b.sphere(core.NewVec3(0, 0, back-wallRadius), wallRadius, material.MatteWhite)    // Back wall

	// Mirror hovers above the floor so offset reflection origins stay outside it
	b.sphere(core.NewVec3(-0.4, -0.45, -2.2), 0.4, material.Mirror)
	b.sphere(core.NewVec3(0.45, -0.65, -1.7), 0.35, material.MatteWhite)

	// Just under the ceiling
	b.light(core.NewVec3(0, 0.9, mid), core.NewVec3(1, 1, 1))

	b.scene.MaxDepth = 8

	return b.build()
}
