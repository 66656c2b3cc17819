package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// NewDefaultScene creates a matte red sphere next to a mirror sphere on a large ground sphere
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	b := newBuilder("default", geometry.DefaultCameraConfig(), cameraOverrides)

	b.sphere(core.NewVec3(0, -100.5, -1), 100, material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6)))
	b.sphere(core.NewVec3(0, 0, -1.2), 0.5, material.MatteRed)
	b.sphere(core.NewVec3(-1.05, 0.05, -1.1), 0.4, material.Mirror)
	b.sphere(core.NewVec3(1.05, -0.1, -1.0), 0.4, material.MatteBlue)

	b.light(core.NewVec3(-2, 3, 1), core.NewVec3(1, 1, 1))

	return b.build()
}
