package surface

import (
	"math"
	"testing"
)

func TestSampleOrigin(t *testing.T) {
	x, y, z := Sample(0, 0, testParams())
	if x != 0 || y != 0 || z != 0 {
		t.Errorf("Sample(0,0) = (%v,%v,%v), want origin", x, y, z)
	}
}

func TestSamplePhaseLiftsOrigin(t *testing.T) {
	p := testParams()
	p.Phase = math.Pi / 2

	// At r=0 the exponential is 1 and sin(phase) = 1, so z = amplitude.
	_, _, z := Sample(0, 0, p)
	if got, want := z, float32(p.Amplitude); got != want {
		t.Errorf("Sample(0,0) z = %v, want %v", got, want)
	}
}

func TestSampleRadialPosition(t *testing.T) {
	p := testParams()

	x, y, _ := Sample(2, 0, p)
	if x != 2 || y != 0 {
		t.Errorf("Sample(2,0) xy = (%v,%v), want (2,0)", x, y)
	}

	x, y, _ = Sample(2, math.Pi/2, p)
	if math.Abs(float64(x)) > 1e-6 || math.Abs(float64(y)-2) > 1e-6 {
		t.Errorf("Sample(2,pi/2) xy = (%v,%v), want (0,2)", x, y)
	}
}

func TestSampleDecayBoundsHeight(t *testing.T) {
	p := testParams()
	for r := 0.0; r <= p.Radius; r += 0.25 {
		_, _, z := Sample(r, 0, p)
		bound := p.Amplitude * math.Exp(-p.Decay*r)
		if math.Abs(float64(z)) > bound+1e-6 {
			t.Errorf("Sample(%v,0) z = %v exceeds envelope %v", r, z, bound)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := testParams().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	p := testParams()
	p.Radius = 0
	if err := p.Validate(); err == nil {
		t.Error("Validate() accepted zero radius")
	}

	p = testParams()
	p.Phase = math.Inf(1)
	if err := p.Validate(); err == nil {
		t.Error("Validate() accepted infinite phase")
	}
}
