package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// builder collects the first error while a built-in scene is assembled
type builder struct {
	scene *Scene
	err   error
}

func newBuilder(name string, defaults geometry.CameraConfig, overrides []geometry.CameraConfig) *builder {
	cameraConfig := defaults
	if len(overrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaults, overrides[0])
	}
	return &builder{scene: NewScene(name, cameraConfig)}
}

func (b *builder) sphere(center core.Vec3, radius float64, mat material.Material) {
	if b.err != nil {
		return
	}
	_, b.err = b.scene.AddSphere(center, radius, mat)
}

func (b *builder) light(position, color core.Vec3) {
	b.scene.AddLight(lights.NewPointLight(position, color))
}

func (b *builder) build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.scene.Validate(); err != nil {
		return nil, err
	}
	return b.scene, nil
}
