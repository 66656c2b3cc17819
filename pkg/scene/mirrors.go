package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// NewMirrorsScene creates two mirror spheres facing each other with a small
// diffuse sphere between them, so reflection chains run until the depth budget
func NewMirrorsScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	b := newBuilder("mirrors", geometry.DefaultCameraConfig(), cameraOverrides)

	b.sphere(core.NewVec3(-1.2, 0, -2), 1.0, material.Mirror)
	b.sphere(core.NewVec3(1.2, 0, -2), 1.0, material.Mirror)
	b.sphere(core.NewVec3(0, 0.9, -2.5), 0.3, material.MatteRed)

	b.light(core.NewVec3(0, 3, 0), core.NewVec3(1, 1, 1))

	b.scene.MaxDepth = 5

	return b.build()
}
