package geometry

import (
	"github.com/df07/go-scene-composer/pkg/core"
	"github.com/df07/go-scene-composer/pkg/material"
)

// Shape is a traceable primitive handed to the renderer. The variant set is
// closed: *Sphere and *MovingSphere. Renderers dispatch with a type switch.
type Shape interface {
	// CenterAt returns the shape's center at the given time
	CenterAt(time float64) core.Vec3
	Radius() float64
	Material() material.Material
	// BoundingBox bounds the shape over its whole motion window
	BoundingBox() core.AABB
	sealed()
}

func sphereBounds(center core.Vec3, radius float64) core.AABB {
	r := core.Splat(radius)
	return core.NewAABB(center.Sub(r), center.Add(r))
}
