// Package batch processes a directory of documents and writes one outline
// JSON file per input document.
package batch

import (
	"errors"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/tsawler/outliner/layout"
)

// Config holds the resolved settings for a batch run.
type Config struct {
	// InputDir is the directory scanned for input documents.
	InputDir string

	// OutputDir receives one <name>.json file per processed document.
	OutputDir string

	// ClipMargin, TitleBand, and MaxRankedSizes tune outline extraction.
	// Zero values fall back to the layout defaults.
	ClipMargin     float64
	TitleBand      float64
	MaxRankedSizes int

	// Verbose enables debug-level logging.
	Verbose bool
}

// DefaultConfig returns a Config with the layout package's default tuning.
func DefaultConfig() Config {
	cfg := layout.DefaultConfig()
	return Config{
		ClipMargin:     cfg.ClipMargin,
		TitleBand:      cfg.TitleBand,
		MaxRankedSizes: cfg.MaxRankedSizes,
	}
}

// layoutConfig converts the batch settings to a layout.Config, substituting
// defaults for unset fields.
func (c Config) layoutConfig() layout.Config {
	cfg := layout.DefaultConfig()
	if c.ClipMargin > 0 {
		cfg.ClipMargin = c.ClipMargin
	}
	if c.TitleBand > 0 {
		cfg.TitleBand = c.TitleBand
	}
	if c.MaxRankedSizes > 0 {
		cfg.MaxRankedSizes = c.MaxRankedSizes
	}
	return cfg
}

// FileConfig represents the YAML configuration schema.
type FileConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	Outline struct {
		ClipMargin     *float64 `yaml:"clipMargin"`
		TitleBand      *float64 `yaml:"titleBand"`
		MaxRankedSizes int      `yaml:"maxRankedSizes"`
	} `yaml:"outline"`

	Verbose bool `yaml:"verbose"`
}

// LoadConfigFile reads YAML into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse yaml: %w", err)
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset in cfg. Flags should already have been parsed;
// this lets the file supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}

	if cfg.InputDir == "" && fc.Input != "" {
		cfg.InputDir = fc.Input
	}
	if cfg.OutputDir == "" && fc.Output != "" {
		cfg.OutputDir = fc.Output
	}
	if cfg.ClipMargin == 0 && fc.Outline.ClipMargin != nil {
		cfg.ClipMargin = *fc.Outline.ClipMargin
	}
	if cfg.TitleBand == 0 && fc.Outline.TitleBand != nil {
		cfg.TitleBand = *fc.Outline.TitleBand
	}
	if cfg.MaxRankedSizes == 0 && fc.Outline.MaxRankedSizes > 0 {
		cfg.MaxRankedSizes = fc.Outline.MaxRankedSizes
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if cfg.InputDir == "" {
		return errors.New("config: input directory is required")
	}
	if cfg.OutputDir == "" {
		return errors.New("config: output directory is required")
	}
	if cfg.ClipMargin < 0 || cfg.ClipMargin >= 0.5 {
		return fmt.Errorf("config: clip margin %v out of range [0, 0.5)", cfg.ClipMargin)
	}
	if cfg.TitleBand < 0 || cfg.TitleBand > 1 {
		return fmt.Errorf("config: title band %v out of range [0, 1]", cfg.TitleBand)
	}
	return nil
}
