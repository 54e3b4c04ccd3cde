package geometry

import (
	"fmt"

	"github.com/df07/go-scene-composer/pkg/core"
	"github.com/df07/go-scene-composer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	radius float64
	mat    material.Material
}

// NewSphere creates a new sphere. It panics on a non-positive radius or nil material.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	if !(radius > 0) {
		panic(fmt.Sprintf("geometry: sphere radius must be positive, got %v", radius))
	}
	if mat == nil {
		panic("geometry: sphere material must not be nil")
	}
	return &Sphere{
		Center: center,
		radius: radius,
		mat:    mat,
	}
}

// CenterAt returns the fixed center regardless of time
func (s *Sphere) CenterAt(float64) core.Vec3 { return s.Center }

// Radius returns the sphere radius
func (s *Sphere) Radius() float64 { return s.radius }

// Material returns the shared material
func (s *Sphere) Material() material.Material { return s.mat }

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return sphereBounds(s.Center, s.radius)
}

func (s *Sphere) sealed() {}
