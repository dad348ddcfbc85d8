package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexozer/nurbs"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by every demo.
type Config struct {
	// OutputDir receives the csv, png and stl files.
	OutputDir string `toml:"output_dir" yaml:"output_dir"`

	// Samples is the number of points tabulated along curves and laws.
	Samples int `toml:"samples" yaml:"samples"`

	DivisionsU int `toml:"divisions_u" yaml:"divisions_u"`
	DivisionsV int `toml:"divisions_v" yaml:"divisions_v"`

	// Viewer is a command line run on each written mesh, e.g.
	// "meshlab" or "f3d --up +z". Empty disables it.
	Viewer string `toml:"viewer" yaml:"viewer"`

	// FillStyle is used by the fill demos: coons, stretch or curved.
	FillStyle string `toml:"fill_style" yaml:"fill_style"`

	LogLevel string `toml:"log_level" yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		OutputDir:  "output",
		Samples:    101,
		DivisionsU: 32,
		DivisionsV: 32,
		FillStyle:  nurbs.CoonsStyle.String(),
		LogLevel:   "info",
	}
}

// LoadConfig reads a toml or yaml file, picked by extension, over the
// defaults. A leading ~ in path is expanded. The result is not validated so
// flags can still override bad values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Samples < 2 {
		return fmt.Errorf("samples must be at least 2, got %d", c.Samples)
	}
	if c.DivisionsU < 1 || c.DivisionsV < 1 {
		return fmt.Errorf("divisions must be at least 1, got %dx%d", c.DivisionsU, c.DivisionsV)
	}
	if _, err := nurbs.ParseFillStyle(c.FillStyle); err != nil {
		return err
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, fmt.Errorf("log level %q: %w", name, err)
	}

	return level, nil
}

// outputPath expands OutputDir, creates it and joins name onto it.
func (c *Config) outputPath(name string) (string, error) {
	dir, err := homedir.Expand(c.OutputDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	return filepath.Join(dir, name), nil
}
