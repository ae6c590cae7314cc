package core

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config for the engine run. Every field can come from an optional YAML file
// and be overridden by command line flags.
type Config struct {
	Title      string     `yaml:"title,omitempty"`
	Width      int        `yaml:"width,omitempty"`
	Height     int        `yaml:"height,omitempty"`
	VSync      bool       `yaml:"vsync,omitempty"`
	ClearColor [4]float32 `yaml:"clear_color,omitempty"` // RGBA

	Layout   string  `yaml:"layout,omitempty"`    // declarative ui source
	Backend  string  `yaml:"backend,omitempty"`   // "gl" or "term"
	LogLevel string  `yaml:"log_level,omitempty"` // see logging.Initialize
	FontPath string  `yaml:"font,omitempty"`      // TTF/OTF; empty uses the built-in face
	FontSize float32 `yaml:"font_size,omitempty"`
	OriginX  float32 `yaml:"origin_x,omitempty"`
	OriginY  float32 `yaml:"origin_y,omitempty"`
}

const (
	BackendGL   = "gl"
	BackendTerm = "term"
)

func DefaultConfig() Config {
	return Config{
		Title:      "grui",
		Width:      300,
		Height:     300,
		VSync:      true,
		ClearColor: [4]float32{0.3, 0.3, 0.32, 1},
		Backend:    BackendGL,
		FontSize:   18,
		OriginX:    50,
		OriginY:    50,
	}
}

// LoadConfig reads path on top of DefaultConfig. A missing file is not an
// error; the defaults are returned as they are.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	switch c.Backend {
	case BackendGL, BackendTerm:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font size %v must be positive", c.FontSize)
	}
	return nil
}
