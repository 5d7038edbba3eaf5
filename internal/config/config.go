package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and binding settings.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir"`

	// Binding settings
	Smoothing float64 `json:"smoothing"`

	// Preview settings
	Preview     bool `json:"preview"`
	PreviewSize int  `json:"preview_size"`
	Supersample int  `json:"supersample"`

	// Batch settings
	Workers int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Smoothing > 0 {
		c.Smoothing = flags.Smoothing
	}
	if flags.Preview {
		c.Preview = true
	}
	if flags.PreviewSize > 0 {
		c.PreviewSize = flags.PreviewSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = "bound"
	}
	if c.Smoothing <= 0 {
		c.Smoothing = 0.1
	}
	if c.PreviewSize <= 0 {
		c.PreviewSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir   string
	Smoothing   float64
	Preview     bool
	PreviewSize int
	Workers     int
}
