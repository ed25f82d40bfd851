// Package config loads pokerhand settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the complete pokerhand configuration
type Config struct {
	Batch  BatchSettings
	Output OutputSettings
	Log    LogSettings
}

// BatchSettings controls the batch comparator
type BatchSettings struct {
	Workers  int  `hcl:"workers,optional"`
	FailFast bool `hcl:"fail_fast,optional"`
	Strict   bool `hcl:"strict,optional"`
}

// OutputSettings controls how results are rendered
type OutputSettings struct {
	Format  string `hcl:"format,optional"`
	Path    string `hcl:"path,optional"`
	NoColor bool   `hcl:"no_color,optional"`
}

// LogSettings controls logging
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// fileConfig mirrors Config with optional blocks.
type fileConfig struct {
	Batch  *BatchSettings  `hcl:"batch,block"`
	Output *OutputSettings `hcl:"output,block"`
	Log    *LogSettings    `hcl:"log,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Batch: BatchSettings{
			Workers: 4,
		},
		Output: OutputSettings{
			Format: FormatText,
		},
		Log: LogSettings{
			Level: "warn",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source, filling unset values from Default.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if raw.Batch != nil {
		cfg.Batch.FailFast = raw.Batch.FailFast
		cfg.Batch.Strict = raw.Batch.Strict
		if raw.Batch.Workers != 0 {
			cfg.Batch.Workers = raw.Batch.Workers
		}
	}
	if raw.Output != nil {
		cfg.Output.Path = raw.Output.Path
		cfg.Output.NoColor = raw.Output.NoColor
		if raw.Output.Format != "" {
			cfg.Output.Format = raw.Output.Format
		}
	}
	if raw.Log != nil && raw.Log.Level != "" {
		cfg.Log.Level = raw.Log.Level
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Batch.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Batch.Workers)
	}

	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}
