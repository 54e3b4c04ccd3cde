package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

var (
	// ErrUnknownScene is returned when a scene ID is not registered
	ErrUnknownScene = errors.New("unknown scene")
	// ErrNilRandom is returned when a scene is requested without a random source
	ErrNilRandom = errors.New("nil random source")
)

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string // Unique identifier
	DisplayName string // UI display name
	Description string
	Moving      bool   // Whether the scene has time-varying geometry
}

type builtinScene struct {
	info  SceneInfo
	build func(*rand.Rand) *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "random-spheres",
			DisplayName: "Random Spheres",
			Description: "Ground sphere, grid of random diffuse/metal/glass spheres and three large spheres",
		},
		build: NewRandomScene,
	},
	{
		info: SceneInfo{
			ID:          "random-spheres-motion",
			DisplayName: "Random Spheres - Motion",
			Description: "Random spheres with diffuse spheres rising over the shutter interval",
			Moving:      true,
		},
		build: NewRandomMotionScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, s := range builtinScenes {
		scenes = append(scenes, s.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// NewSceneByID composes the built-in scene with the given ID using random
func NewSceneByID(id string, random *rand.Rand) (*Scene, error) {
	if random == nil {
		return nil, fmt.Errorf("scene %q: %w", id, ErrNilRandom)
	}
	for _, s := range builtinScenes {
		if s.info.ID == id {
			return s.build(random), nil
		}
	}
	return nil, fmt.Errorf("scene %q: %w", id, ErrUnknownScene)
}
