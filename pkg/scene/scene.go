package scene

import (
	"github.com/df07/go-scene-composer/pkg/core"
	"github.com/df07/go-scene-composer/pkg/geometry"
)

// Scene contains the shapes handed to the renderer. Shapes keep insertion
// order so that equal random streams produce identical scenes.
type Scene struct {
	Shapes []geometry.Shape
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// BoundingBox returns the bounds of every shape over its motion window
func (s *Scene) BoundingBox() core.AABB {
	if len(s.Shapes) == 0 {
		return core.AABB{}
	}
	box := s.Shapes[0].BoundingBox()
	for _, shape := range s.Shapes[1:] {
		box = box.Union(shape.BoundingBox())
	}
	return box
}
