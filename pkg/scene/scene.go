package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// DefaultMaxDepth is the reflection budget used when a scene does not set one
const DefaultMaxDepth = 10

// ErrInvalidScene is returned by Validate for scenes that cannot be rendered
var ErrInvalidScene = errors.New("invalid scene")

// Object pairs a sphere with the material of its surface
type Object struct {
	Sphere   *geometry.Sphere
	Material material.Material
}

// Background is the vertical sky gradient seen by rays that escape the scene
type Background struct {
	TopColor    core.Vec3 // Color straight up
	BottomColor core.Vec3 // Color straight down
}

// DefaultBackground returns the white to sky blue gradient
func DefaultBackground() Background {
	return Background{
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Scene contains all the elements needed for rendering.
// It is populated during setup and must not be modified once rendering starts.
type Scene struct {
	Name         string
	CameraConfig geometry.CameraConfig
	Objects      []Object            // Objects in insertion order
	Lights       []lights.PointLight // Lights in insertion order
	Background   Background
	MaxDepth     int // Reflection budget for camera rays
}

// NewScene creates an empty scene with the default background and depth budget
func NewScene(name string, cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		Name:         name,
		CameraConfig: cameraConfig,
		Objects:      make([]Object, 0),
		Lights:       make([]lights.PointLight, 0),
		Background:   DefaultBackground(),
		MaxDepth:     DefaultMaxDepth,
	}
}

// AddSphere appends a sphere with the given material and returns its index
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) (int, error) {
	sphere, err := geometry.NewSphere(center, radius)
	if err != nil {
		return -1, fmt.Errorf("scene %q: object %d: %w", s.Name, len(s.Objects), err)
	}
	s.Objects = append(s.Objects, Object{Sphere: sphere, Material: mat})
	return len(s.Objects) - 1, nil
}

// AddLight appends a point light
func (s *Scene) AddLight(light lights.PointLight) {
	s.Lights = append(s.Lights, light)
}

// Object returns the object at index i as reported by Hit
func (s *Scene) Object(i int) *Object {
	return &s.Objects[i]
}

// Hit finds the object nearest to the ray origin along the ray.
// It returns the object's index, the hit record and whether anything was hit.
// Ties keep the object inserted first.
func (s *Scene) Hit(ray core.Ray) (int, geometry.HitRecord, bool) {
	closest := -1
	closestSoFar := math.Inf(1)
	var closestHit geometry.HitRecord

	for i := range s.Objects {
		hit, isHit := s.Objects[i].Sphere.Hit(ray)
		if isHit && hit.T > 0 && hit.T < closestSoFar {
			closest = i
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	if closest < 0 {
		return -1, geometry.HitRecord{}, false
	}
	return closest, closestHit, true
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if err := s.CameraConfig.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	if s.MaxDepth <= 0 {
		return fmt.Errorf("%w: scene %q: max depth must be positive, got %d", ErrInvalidScene, s.Name, s.MaxDepth)
	}
	for i, obj := range s.Objects {
		if obj.Sphere == nil {
			return fmt.Errorf("%w: scene %q: object %d has no geometry", ErrInvalidScene, s.Name, i)
		}
		if !obj.Material.Color.IsFinite() {
			return fmt.Errorf("%w: scene %q: object %d has non-finite color %v", ErrInvalidScene, s.Name, i, obj.Material.Color)
		}
	}
	for i, light := range s.Lights {
		if !light.Position.IsFinite() || !light.Color.IsFinite() {
			return fmt.Errorf("%w: scene %q: light %d is not finite", ErrInvalidScene, s.Name, i)
		}
	}
	return nil
}

// GetPrimitiveCount returns the number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Objects)
}
