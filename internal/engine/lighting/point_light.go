// Package lighting provides the moving point light that sweeps the surface.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/ripplegl/pkg/math"
)

// PointLight represents a point light source for GPU upload.
type PointLight struct {
	Position  math.Vec3
	Color     [3]float32 // RGB color (0-1 range)
	Intensity float32
}

// ClampColor clamps color components to the 0-1 range.
func (l *PointLight) ClampColor() {
	for i := 0; i < 3; i++ {
		if l.Color[i] > 1 {
			l.Color[i] = 1
		}
		if l.Color[i] < 0 {
			l.Color[i] = 0
		}
	}
}

// Orbit animates a point light on a circular path around the Z axis,
// hovering above the surface plane.
type Orbit struct {
	Radius float32
	Height float32
	Speed  float32 // radians per second
}

// PositionAt returns the light position at time t (seconds since start).
// Pure function of t, so the animation is deterministic and resumable.
func (o Orbit) PositionAt(t float64) math.Vec3 {
	angle := float64(o.Speed) * t
	return math.Vec3{
		X: o.Radius * float32(gomath.Cos(angle)),
		Y: o.Radius * float32(gomath.Sin(angle)),
		Z: o.Height,
	}
}
