package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the 3-component vector used for points, offsets and colors.
// It is mathgl's float64 vector, so Add, Sub, Mul, Len and Dot come from there.
type Vec3 = mgl64.Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Lerp returns (1-t)*a + t*b. The result is exactly a at t=0 and exactly b at t=1;
// t outside [0,1] extrapolates along the same line.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Splat returns a vector with all three components set to v
func Splat(v float64) Vec3 {
	return Vec3{v, v, v}
}

// InUnitRange reports whether every component of v lies in [0,1]
func InUnitRange(v Vec3) bool {
	for _, c := range v {
		if c < 0 || c > 1 {
			return false
		}
	}
	return true
}
