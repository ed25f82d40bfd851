package main

import (
	"fmt"
	"io"

	"github.com/lox/pokerhand/internal/batch"
	"github.com/lox/pokerhand/poker"
)

// CompareCmd reports whether the left hand beats the right.
type CompareCmd struct {
	Left   string `arg:"" help:"First hand, e.g. 'AH AS AC 2D 3H'"`
	Right  string `arg:"" help:"Second hand"`
	Strict bool   `help:"Reject hands that contain the same card twice"`
}

func (cmd *CompareCmd) Run(globals *Globals, out io.Writer) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}
	styles := batch.NewStyles(out, cfg.Output.NoColor)

	var opts []poker.Option
	if cmd.Strict || cfg.Batch.Strict {
		opts = append(opts, poker.WithStrictCards())
	}
	left := poker.FromString(cmd.Left, opts...)
	right := poker.FromString(cmd.Right, opts...)

	outcome, err := left.Compare(right)
	if err != nil {
		return err
	}
	lc, _ := left.Category()
	rc, _ := right.Category()

	_, err = fmt.Fprintf(out, "%s (%s) vs %s (%s): %s\n",
		styles.Hand.Render(left.Text()), lc,
		styles.Hand.Render(right.Text()), rc,
		styles.Outcome(outcome))
	return err
}
