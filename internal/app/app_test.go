package app

import (
	"errors"
	"testing"

	"github.com/Faultbox/ripplegl/internal/config"
	"github.com/Faultbox/ripplegl/internal/engine/surface"
)

func TestVertexLimit(t *testing.T) {
	if got := vertexLimit(0); got != surface.DefaultMaxVertices {
		t.Errorf("vertexLimit(0) = %d, want default %d", got, surface.DefaultMaxVertices)
	}
	if got := vertexLimit(-1); got != surface.DefaultMaxVertices {
		t.Errorf("vertexLimit(-1) = %d, want default %d", got, surface.DefaultMaxVertices)
	}
	if got := vertexLimit(100000); got != 100000 {
		t.Errorf("vertexLimit(100000) = %d, want 100000", got)
	}
}

// A default config, which leaves max_vertices at zero, must still reject a
// grid larger than the library cap.
func TestDefaultConfigEnforcesVertexCap(t *testing.T) {
	cfg := config.Default()
	params := surface.Params{
		Amplitude: cfg.Surface.Amplitude,
		Decay:     cfg.Surface.Decay,
		Frequency: cfg.Surface.Frequency,
		Radius:    cfg.Surface.Radius,
		Phase:     cfg.Surface.Phase,
	}
	res := surface.Resolution{Rings: 2050, Segments: 2049} // 4200450 > DefaultMaxVertices

	_, err := surface.BuildWithLimit(res, params, vertexLimit(cfg.Surface.MaxVertices))
	if !errors.Is(err, surface.ErrResourceLimit) {
		t.Fatalf("oversized grid with default config: got err %v, want ErrResourceLimit", err)
	}
}

func TestAspectRatio(t *testing.T) {
	if got := aspectRatio(1280, 720); got <= 1.77 || got >= 1.78 {
		t.Errorf("aspectRatio(1280, 720) = %v, want ~1.778", got)
	}
	// Minimized windows report a zero-height drawable.
	if got := aspectRatio(1280, 0); got != 1 {
		t.Errorf("aspectRatio(1280, 0) = %v, want 1", got)
	}
	if got := aspectRatio(0, 0); got != 1 {
		t.Errorf("aspectRatio(0, 0) = %v, want 1", got)
	}
}
