// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Surface  SurfaceConfig  `yaml:"surface"`
	Light    LightConfig    `yaml:"light"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SurfaceConfig holds the ripple surface parameters and grid resolution.
// Amplitude/Decay/Frequency/Radius/Phase are the coefficients of the height
// profile z = amplitude * e^(-decay*r) * sin((frequency*pi/radius)*r + phase).
type SurfaceConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Decay     float64 `yaml:"decay"`
	Frequency float64 `yaml:"frequency"`
	Radius    float64 `yaml:"radius"`
	Phase     float64 `yaml:"phase"`

	Rings    int `yaml:"rings"`
	Segments int `yaml:"segments"`

	UVScale     float32 `yaml:"uv_scale"`     // texture tiling multiplier
	MaxVertices int     `yaml:"max_vertices"` // rebuild cap, 0 = library default
}

// LightConfig holds the moving point light settings.
type LightConfig struct {
	Color       [3]float32 `yaml:"color"`
	Intensity   float32    `yaml:"intensity"`
	OrbitRadius float32    `yaml:"orbit_radius"`
	OrbitHeight float32    `yaml:"orbit_height"`
	OrbitSpeed  float32    `yaml:"orbit_speed"` // radians per second
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // "png" or "webp"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Surface: SurfaceConfig{
			Amplitude: 4,
			Decay:     0.5,
			Frequency: 6,
			Radius:    6,
			Phase:     0,
			Rings:     64,
			Segments:  128,
			UVScale:   4,
		},
		Light: LightConfig{
			Color:       [3]float32{1, 1, 0.9},
			Intensity:   1.0,
			OrbitRadius: 8,
			OrbitHeight: 5,
			OrbitSpeed:  0.8,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
