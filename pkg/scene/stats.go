package scene

import (
	"log/slog"

	"github.com/df07/go-scene-composer/pkg/geometry"
	"github.com/df07/go-scene-composer/pkg/material"
)

// Stats summarizes the contents of a scene
type Stats struct {
	Shapes    int // Total shapes
	Moving    int // Shapes whose center depends on time
	Diffuse   int
	Metal     int
	Glass     int
	Materials int // Distinct material instances; shared materials count once
}

// Stats counts shapes by geometry variant and material kind
func (s *Scene) Stats() Stats {
	stats := Stats{Shapes: len(s.Shapes)}
	seen := make(map[material.Material]struct{})

	for _, shape := range s.Shapes {
		if _, ok := shape.(*geometry.MovingSphere); ok {
			stats.Moving++
		}

		mat := shape.Material()
		switch mat.Kind() {
		case material.Diffuse:
			stats.Diffuse++
		case material.Reflective:
			stats.Metal++
		case material.Refractive:
			stats.Glass++
		}
		seen[mat] = struct{}{}
	}

	stats.Materials = len(seen)
	return stats
}

// LogValue implements slog.LogValuer
func (st Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("shapes", st.Shapes),
		slog.Int("moving", st.Moving),
		slog.Int("diffuse", st.Diffuse),
		slog.Int("metal", st.Metal),
		slog.Int("glass", st.Glass),
		slog.Int("materials", st.Materials),
	)
}
