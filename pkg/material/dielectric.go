package material

import "fmt"

// Glass is the refractive index used for every glass sphere in the generated scenes
const Glass = 1.5

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	if !(refractiveIndex > 0) {
		panic(fmt.Sprintf("material: refractive index must be positive, got %v", refractiveIndex))
	}
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Kind implements the Material interface
func (d *Dielectric) Kind() Kind { return Refractive }

func (d *Dielectric) sealed() {}
