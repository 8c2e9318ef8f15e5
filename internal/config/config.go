// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Morph    MorphConfig    `yaml:"morph"`
	Marker   MarkerConfig   `yaml:"marker"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// MorphConfig holds globe/map transition settings.
type MorphConfig struct {
	// Duration is the globe-to-map transition time in seconds.
	Duration float32 `yaml:"duration"`
	// SpinSpeed is the globe's rotation rate in radians per second.
	SpinSpeed float32 `yaml:"spin_speed"`
	// StartFlat starts the viewer in flat-map mode.
	StartFlat bool `yaml:"start_flat"`
}

// MarkerConfig holds marker overlay settings.
type MarkerConfig struct {
	// PanSpeed is the WASD pan rate in world units per second.
	PanSpeed float32 `yaml:"pan_speed"`
	Size     float32 `yaml:"size"`
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
		Morph: MorphConfig{
			Duration:  1.5,
			SpinSpeed: 0.15,
			StartFlat: false,
		},
		Marker: MarkerConfig{
			PanSpeed: 1.2,
			Size:     0.35,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
