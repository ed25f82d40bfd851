package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/lox/pokerhand/internal/batch"
	"github.com/lox/pokerhand/poker"
)

// EvalCmd classifies hands and prints their tie-break keys.
type EvalCmd struct {
	Hands  []string `arg:"" help:"Hands such as 'TH JH QH KH AH' (quote each hand)" required:""`
	Strict bool     `help:"Reject hands that contain the same card twice"`
}

func (cmd *EvalCmd) Run(globals *Globals, out io.Writer) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}
	styles := batch.NewStyles(out, cfg.Output.NoColor)

	var opts []poker.Option
	if cmd.Strict || cfg.Batch.Strict {
		opts = append(opts, poker.WithStrictCards())
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		styles.Header.Render("hand"),
		styles.Header.Render("score"),
		styles.Header.Render("category"),
		styles.Header.Render("key"))

	for _, text := range cmd.Hands {
		h := poker.FromString(text, opts...)
		category, err := h.Category()
		if err != nil {
			return err
		}
		key, err := h.TieBreakKey()
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			styles.Hand.Render(h.Text()), category, category, formatKey(key))
	}
	return tw.Flush()
}

func formatKey(key []poker.Rank) string {
	parts := make([]string, len(key))
	for i, r := range key {
		parts[i] = fmt.Sprint(int(r))
	}
	return strings.Join(parts, " ")
}
