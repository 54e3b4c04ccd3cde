package scene

import (
	"math/rand"

	"github.com/df07/go-scene-composer/pkg/core"
	"github.com/df07/go-scene-composer/pkg/geometry"
	"github.com/df07/go-scene-composer/pkg/material"
)

// Filler grid: cells a, b in [gridMin, gridMax), one candidate sphere per cell
const (
	gridMin      = -5
	gridMax      = 5
	gridSpacing  = 2.0
	gridJitter   = 0.9
	fillerHeight = 0.2
	fillerRadius = 0.2

	// Candidates closer than this to exclusionCenter would intersect the metal feature sphere
	exclusionRadius = 0.9

	diffuseThreshold    = 0.8
	reflectiveThreshold = 0.95

	// Diffuse fillers in the motion scene rise by up to motionRise over [motionStart, motionEnd]
	motionRise  = 0.5
	motionStart = 0.0
	motionEnd   = 1.0

	groundRadius  = 1000.0
	featureRadius = 1.0
)

var (
	exclusionCenter = core.NewVec3(4, fillerHeight, 0)

	groundCenter = core.NewVec3(0, -groundRadius, 0)
	groundAlbedo = core.NewVec3(0.5, 0.5, 0.5)

	glassFeatureCenter   = core.NewVec3(0, 1, 0)
	diffuseFeatureCenter = core.NewVec3(-4, 1, 0)
	diffuseFeatureAlbedo = core.NewVec3(0.4, 0.2, 0.1)
	metalFeatureCenter   = core.NewVec3(4, 1, 0)
	metalFeatureAlbedo   = core.NewVec3(0.7, 0.6, 0.5)
)

// diffuseFiller builds the shape for a filler whose selector fell in the
// diffuse band. It owns the random draws for that filler after the center.
type diffuseFiller func(center core.Vec3, random *rand.Rand) geometry.Shape

// NewRandomScene creates the random spheres scene: a ground sphere, a 10x10
// grid of small jittered spheres with randomly chosen materials, and three
// large feature spheres. All randomness is drawn from random, so equal seeds
// give identical scenes.
func NewRandomScene(random *rand.Rand) *Scene {
	return compose(random, staticDiffuseFiller)
}

// NewRandomMotionScene creates the random spheres scene with motion blur
// support: diffuse fillers become moving spheres that rise vertically over
// the time window [0, 1]. Metal and glass fillers stay static.
func NewRandomMotionScene(random *rand.Rand) *Scene {
	return compose(random, movingDiffuseFiller)
}

// ClassifyMaterial maps a selector in [0,1) to a filler material kind:
// below 0.8 is diffuse, below 0.95 reflective, anything else refractive.
func ClassifyMaterial(selector float64) material.Kind {
	switch {
	case selector < diffuseThreshold:
		return material.Diffuse
	case selector < reflectiveThreshold:
		return material.Reflective
	default:
		return material.Refractive
	}
}

func compose(random *rand.Rand, diffuse diffuseFiller) *Scene {
	log := core.Logger("scene")
	s := &Scene{Shapes: make([]geometry.Shape, 0, 4+(gridMax-gridMin)*(gridMax-gridMin))}

	// Glass is shared by every refractive filler and the glass feature sphere
	glass := material.NewDielectric(material.Glass)

	s.Add(geometry.NewSphere(groundCenter, groundRadius, material.NewLambertian(groundAlbedo)))

	rejected := 0
	for a := gridMin; a < gridMax; a++ {
		for b := gridMin; b < gridMax; b++ {
			selector := random.Float64()
			center := core.NewVec3(
				gridSpacing*float64(a)+gridJitter*random.Float64(),
				fillerHeight,
				gridSpacing*float64(b)+gridJitter*random.Float64(),
			)

			if distance := center.Sub(exclusionCenter).Len(); distance < exclusionRadius {
				rejected++
				log.Debug("rejected filler candidate", "a", a, "b", b, "distance", distance)
				continue
			}

			switch ClassifyMaterial(selector) {
			case material.Diffuse:
				s.Add(diffuse(center, random))
			case material.Reflective:
				s.Add(geometry.NewSphere(center, fillerRadius, randomMetal(random)))
			default:
				s.Add(geometry.NewSphere(center, fillerRadius, glass))
			}
		}
	}

	s.Add(
		geometry.NewSphere(glassFeatureCenter, featureRadius, glass),
		geometry.NewSphere(diffuseFeatureCenter, featureRadius, material.NewLambertian(diffuseFeatureAlbedo)),
		geometry.NewSphere(metalFeatureCenter, featureRadius, material.NewMetal(metalFeatureAlbedo, 0.0)),
	)

	log.Debug("composed random scene", "shapes", len(s.Shapes), "rejected", rejected)
	return s
}

func staticDiffuseFiller(center core.Vec3, random *rand.Rand) geometry.Shape {
	return geometry.NewSphere(center, fillerRadius, randomLambertian(random))
}

func movingDiffuseFiller(center core.Vec3, random *rand.Rand) geometry.Shape {
	// Conversion rounds the rise before the add so it is never fused
	rise := float64(motionRise * random.Float64())
	end := center.Add(core.NewVec3(0, rise, 0))
	return geometry.NewMovingSphere(center, end, motionStart, motionEnd, fillerRadius, randomLambertian(random))
}

// randomLambertian draws each albedo component as the product of two
// uniforms, which skews fillers towards dark saturated colors.
func randomLambertian(random *rand.Rand) *material.Lambertian {
	r := random.Float64() * random.Float64()
	g := random.Float64() * random.Float64()
	b := random.Float64() * random.Float64()
	return material.NewLambertian(core.NewVec3(r, g, b))
}

// randomMetal draws bright desaturated albedo components in [0.5, 1) and a
// fuzz in [0, 0.5).
func randomMetal(random *rand.Rand) *material.Metal {
	r := 0.5 * (1 + random.Float64())
	g := 0.5 * (1 + random.Float64())
	b := 0.5 * (1 + random.Float64())
	return material.NewMetal(core.NewVec3(r, g, b), 0.5*random.Float64())
}
