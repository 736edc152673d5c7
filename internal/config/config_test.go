package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Surface.Amplitude != 4 {
		t.Errorf("expected amplitude 4, got %f", cfg.Surface.Amplitude)
	}
	if cfg.Surface.Radius != 6 {
		t.Errorf("expected radius 6, got %f", cfg.Surface.Radius)
	}
	if cfg.Surface.Rings != 64 {
		t.Errorf("expected rings 64, got %d", cfg.Surface.Rings)
	}
	if cfg.Surface.Segments != 128 {
		t.Errorf("expected segments 128, got %d", cfg.Surface.Segments)
	}
	if cfg.Surface.UVScale != 4 {
		t.Errorf("expected uv_scale 4, got %f", cfg.Surface.UVScale)
	}

	if cfg.Light.OrbitSpeed != 0.8 {
		t.Errorf("expected orbit speed 0.8, got %f", cfg.Light.OrbitSpeed)
	}

	if cfg.Capture.Format != "png" {
		t.Errorf("expected capture format png, got %s", cfg.Capture.Format)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

surface:
  amplitude: 2.5
  decay: 0.25
  frequency: 10
  radius: 8
  phase: 1.5
  rings: 200
  segments: 400
  uv_scale: 2
  max_vertices: 500000

light:
  color: [1, 0.5, 0.25]
  intensity: 2
  orbit_radius: 12
  orbit_height: 3
  orbit_speed: 1.5

capture:
  dir: "shots"
  format: "webp"

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Surface.Amplitude != 2.5 {
		t.Errorf("expected amplitude 2.5, got %f", cfg.Surface.Amplitude)
	}
	if cfg.Surface.Rings != 200 {
		t.Errorf("expected rings 200, got %d", cfg.Surface.Rings)
	}
	if cfg.Surface.MaxVertices != 500000 {
		t.Errorf("expected max_vertices 500000, got %d", cfg.Surface.MaxVertices)
	}

	if cfg.Light.Color != [3]float32{1, 0.5, 0.25} {
		t.Errorf("expected light color (1,0.5,0.25), got %v", cfg.Light.Color)
	}
	if cfg.Light.OrbitRadius != 12 {
		t.Errorf("expected orbit radius 12, got %f", cfg.Light.OrbitRadius)
	}

	if cfg.Capture.Dir != "shots" {
		t.Errorf("expected capture dir 'shots', got %s", cfg.Capture.Dir)
	}
	if cfg.Capture.Format != "webp" {
		t.Errorf("expected capture format 'webp', got %s", cfg.Capture.Format)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
surface:
  amplitude: 1.0
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Surface.Amplitude != 1.0 {
		t.Errorf("expected amplitude 1.0, got %f", cfg.Surface.Amplitude)
	}
	// Untouched sections keep their defaults.
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected default width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Surface.Radius != 6 {
		t.Errorf("expected default radius 6, got %f", cfg.Surface.Radius)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Surface.Frequency = 9
	cfg.Capture.Format = "webp"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}

	if loaded.Surface.Frequency != 9 {
		t.Errorf("expected frequency 9 after round trip, got %f", loaded.Surface.Frequency)
	}
	if loaded.Capture.Format != "webp" {
		t.Errorf("expected format 'webp' after round trip, got %s", loaded.Capture.Format)
	}
}
