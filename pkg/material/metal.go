package material

import (
	"fmt"

	"github.com/df07/go-scene-composer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	if !core.InUnitRange(albedo) {
		panic(fmt.Sprintf("material: metal albedo %v outside [0,1]", albedo))
	}
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Kind implements the Material interface
func (m *Metal) Kind() Kind { return Reflective }

func (m *Metal) sealed() {}
