package geometry

import (
	"fmt"

	"github.com/df07/go-scene-composer/pkg/core"
	"github.com/df07/go-scene-composer/pkg/material"
)

// MovingSphere is a sphere whose center travels in a straight line from
// Center0 at Time0 to Center1 at Time1.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	radius           float64
	mat              material.Material
}

// NewMovingSphere creates a new moving sphere. It panics on a non-positive
// radius, a nil material, or time0 >= time1.
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *MovingSphere {
	if !(radius > 0) {
		panic(fmt.Sprintf("geometry: moving sphere radius must be positive, got %v", radius))
	}
	if !(time0 < time1) {
		panic(fmt.Sprintf("geometry: moving sphere start time %v must be before end time %v", time0, time1))
	}
	if mat == nil {
		panic("geometry: moving sphere material must not be nil")
	}
	return &MovingSphere{
		Center0: center0,
		Center1: center1,
		Time0:   time0,
		Time1:   time1,
		radius:  radius,
		mat:     mat,
	}
}

// CenterAt interpolates the center linearly. Times outside [Time0, Time1]
// extrapolate along the same line.
func (m *MovingSphere) CenterAt(time float64) core.Vec3 {
	return core.Lerp(m.Center0, m.Center1, (time-m.Time0)/(m.Time1-m.Time0))
}

// Radius returns the sphere radius
func (m *MovingSphere) Radius() float64 { return m.radius }

// Material returns the shared material
func (m *MovingSphere) Material() material.Material { return m.mat }

// BoundingBox covers the sphere at both ends of its motion window
func (m *MovingSphere) BoundingBox() core.AABB {
	return sphereBounds(m.Center0, m.radius).Union(sphereBounds(m.Center1, m.radius))
}

func (m *MovingSphere) sealed() {}
