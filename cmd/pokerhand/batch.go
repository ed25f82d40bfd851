package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/coder/quartz"

	"github.com/lox/pokerhand/internal/batch"
	"github.com/lox/pokerhand/internal/config"
	"github.com/lox/pokerhand/internal/fileutil"
)

// BatchCmd compares every pair of hands in a file.
type BatchCmd struct {
	File     string `arg:"" help:"Input file with ten cards per line (left hand then right hand), or - for stdin"`
	Workers  int    `short:"w" help:"Number of concurrent workers (default from config)"`
	Format   string `short:"f" help:"Output format: text or json (default from config)"`
	Output   string `short:"o" help:"Write the report to this file instead of stdout"`
	Strict   bool   `help:"Reject hands that contain the same card twice"`
	FailFast bool   `help:"Stop at the first line that cannot be evaluated"`
}

func (cmd *BatchCmd) Run(globals *Globals, out io.Writer) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}
	cmd.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := setupLogger(cfg.Log.Level)
	if err != nil {
		return err
	}

	pairs, err := cmd.readPairs()
	if err != nil {
		return err
	}
	logger.Debug("Loaded input", "file", cmd.File, "pairs", len(pairs))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := batch.NewRunner(logger, quartz.NewReal(), batch.Options{
		Workers:  cfg.Batch.Workers,
		FailFast: cfg.Batch.FailFast,
		Strict:   cfg.Batch.Strict,
	})
	summary, err := runner.Run(ctx, pairs)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		logger.Warn("Some lines could not be evaluated", "failed", summary.Failed)
	}

	if cfg.Output.Path == "" {
		return render(out, summary, cfg)
	}
	err = fileutil.WriteAtomic(cfg.Output.Path, 0o644, func(w io.Writer) error {
		return render(w, summary, cfg)
	})
	if err != nil {
		return err
	}
	logger.Info("Wrote report", "path", cfg.Output.Path)
	return nil
}

// apply overlays command line flags on the loaded config.
func (cmd *BatchCmd) apply(cfg *config.Config) {
	if cmd.Workers != 0 {
		cfg.Batch.Workers = cmd.Workers
	}
	if cmd.Format != "" {
		cfg.Output.Format = cmd.Format
	}
	if cmd.Output != "" {
		cfg.Output.Path = cmd.Output
	}
	if cmd.Strict {
		cfg.Batch.Strict = true
	}
	if cmd.FailFast {
		cfg.Batch.FailFast = true
	}
}

func (cmd *BatchCmd) readPairs() ([]batch.Pair, error) {
	if cmd.File == "-" {
		return batch.ReadPairs(os.Stdin)
	}
	f, err := os.Open(filepath.Clean(cmd.File))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return batch.ReadPairs(f)
}

func render(w io.Writer, summary *batch.Summary, cfg *config.Config) error {
	if cfg.Output.Format == config.FormatJSON {
		return batch.WriteJSON(w, summary)
	}
	return batch.WriteText(w, summary, batch.NewStyles(w, cfg.Output.NoColor))
}
