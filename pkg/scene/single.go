package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// NewSingleSphereScene creates one diffuse sphere that fills the whole frame,
// lit by a light at the eye
func NewSingleSphereScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaults := geometry.DefaultCameraConfig()
	defaults.Width = 64
	defaults.AspectRatio = 1.0
	b := newBuilder("single", defaults, cameraOverrides)

	b.sphere(core.NewVec3(0, 0, -3), 2.5, material.NewDiffuse(core.NewVec3(0.9, 0.6, 0.3)))
	b.light(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1))

	return b.build()
}
