package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// ErrUnknownScene is returned when a scene id is not registered
var ErrUnknownScene = errors.New("unknown scene")

// Constructor builds a scene, optionally overriding its camera
type Constructor func(cameraOverrides ...geometry.CameraConfig) (*Scene, error)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"` // Optional description
}

type registration struct {
	info SceneInfo
	ctor Constructor
}

var builtinScenes = map[string]registration{
	"default": {
		info: SceneInfo{ID: "default", DisplayName: "Default", Description: "Matte and mirror spheres on a ground sphere"},
		ctor: NewDefaultScene,
	},
	"cornell": {
		info: SceneInfo{ID: "cornell", DisplayName: "Cornell Box", Description: "Cornell box made of sphere walls with a mirror sphere"},
		ctor: NewCornellScene,
	},
	"mirrors": {
		info: SceneInfo{ID: "mirrors", DisplayName: "Facing Mirrors", Description: "Two facing mirror spheres that exhaust the reflection budget"},
		ctor: NewMirrorsScene,
	},
	"single": {
		info: SceneInfo{ID: "single", DisplayName: "Single Sphere", Description: "One diffuse sphere filling the frame"},
		ctor: NewSingleSphereScene,
	},
}

// ListScenes returns the built-in scenes sorted by id
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, reg := range builtinScenes {
		scenes = append(scenes, reg.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// CreateScene builds the built-in scene with the given id
func CreateScene(id string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	reg, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return reg.ctor(cameraOverrides...)
}
