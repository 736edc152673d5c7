// Package surface generates a triangulated mesh for a surface of revolution
// with a damped sinusoidal height profile.
package surface

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter reports a surface parameter the builder cannot work with.
var ErrInvalidParameter = errors.New("invalid surface parameter")

// ErrResourceLimit reports a resolution whose vertex count exceeds the build limit.
var ErrResourceLimit = errors.New("vertex limit exceeded")

// Params holds the coefficients of the height profile
// z = amplitude * e^(-decay*r) * sin((frequency*pi/radius)*r + phase).
// Radius is also the outer radius of the surface; r sweeps [0, Radius].
type Params struct {
	Amplitude float64
	Decay     float64
	Frequency float64
	Radius    float64
	Phase     float64
}

// Validate checks that every coefficient is finite and that the radius is
// non-zero. A zero radius would put a division by zero into the angular
// frequency term and poison the whole position buffer with NaNs.
func (p Params) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"amplitude", p.Amplitude},
		{"decay", p.Decay},
		{"frequency", p.Frequency},
		{"radius", p.Radius},
		{"phase", p.Phase},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParameter, f.name)
		}
	}
	if p.Radius == 0 {
		return fmt.Errorf("%w: radius must be non-zero", ErrInvalidParameter)
	}
	return nil
}

// Sample evaluates the surface at radius r and angle u (radians).
// Pure function; non-finite inputs propagate into the result.
func Sample(r, u float64, p Params) (x, y, z float32) {
	w := p.Frequency * math.Pi / p.Radius
	x = float32(r * math.Cos(u))
	y = float32(r * math.Sin(u))
	z = float32(p.Amplitude * math.Exp(-p.Decay*r) * math.Sin(w*r+p.Phase))
	return x, y, z
}
