package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerhand/internal/config"
)

// Globals are flags shared by every command.
type Globals struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" help:"Path to HCL config file" default:"pokerhand.hcl" env:"POKERHAND_CONFIG" type:"path"`
	Debug   bool             `help:"Enable debug logging"`
	NoColor bool             `help:"Disable coloured output"`
}

// load reads the config file and applies the global flag overrides.
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	if g.NoColor {
		cfg.Output.NoColor = true
	}
	return cfg, nil
}

// setupLogger creates a stderr logger at the configured level.
func setupLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	}), nil
}
