package material

import (
	"fmt"

	"github.com/df07/go-scene-composer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance, each component in [0,1]
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	if !core.InUnitRange(albedo) {
		panic(fmt.Sprintf("material: lambertian albedo %v outside [0,1]", albedo))
	}
	return &Lambertian{Albedo: albedo}
}

// Kind implements the Material interface
func (l *Lambertian) Kind() Kind { return Diffuse }

func (l *Lambertian) sealed() {}
