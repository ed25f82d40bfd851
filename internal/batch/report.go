package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokerhand/poker"
)

// Styles holds the lipgloss styles used by the text report.
type Styles struct {
	Header lipgloss.Style
	Hand   lipgloss.Style
	Win    lipgloss.Style
	Loss   lipgloss.Style
	Tie    lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles builds report styles for w. With noColor set, or when w is not
// a terminal, output is plain text.
func NewStyles(w io.Writer, noColor bool) Styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Hand:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Win:    r.NewStyle().Foreground(lipgloss.Color("10")),
		Loss:   r.NewStyle().Foreground(lipgloss.Color("9")),
		Tie:    r.NewStyle().Foreground(lipgloss.Color("11")),
		Error:  r.NewStyle().Foreground(lipgloss.Color("9")).Italic(true),
	}
}

// Outcome renders an outcome in its colour.
func (s Styles) Outcome(o poker.Outcome) string {
	switch o {
	case poker.Win:
		return s.Win.Render(o.String())
	case poker.Loss:
		return s.Loss.Render(o.String())
	default:
		return s.Tie.Render(o.String())
	}
}

// WriteText renders the summary as an aligned table followed by totals.
func WriteText(w io.Writer, s *Summary, styles Styles) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		styles.Header.Render("line"),
		styles.Header.Render("left"),
		styles.Header.Render("category"),
		styles.Header.Render("right"),
		styles.Header.Render("category"),
		styles.Header.Render("result"))

	for _, c := range s.Comparisons {
		if c.Err != nil {
			fmt.Fprintf(tw, "%d\t%s\t\t%s\t\t%s\n",
				c.Line, c.Left, c.Right, styles.Error.Render(c.Err.Error()))
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.Line,
			styles.Hand.Render(c.Left),
			c.LeftCategory,
			styles.Hand.Render(c.Right),
			c.RightCategory,
			styles.Outcome(c.Outcome))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%d compared: %d won, %d lost, %d tied, %d failed in %v\n",
		len(s.Comparisons), s.Wins, s.Losses, s.Ties, s.Failed, s.Elapsed.Truncate(time.Millisecond))
	return err
}

type jsonComparison struct {
	Line          int    `json:"line"`
	Left          string `json:"left"`
	Right         string `json:"right,omitempty"`
	LeftCategory  int    `json:"left_category,omitempty"`
	RightCategory int    `json:"right_category,omitempty"`
	Outcome       string `json:"outcome,omitempty"`
	Error         string `json:"error,omitempty"`
}

type jsonSummary struct {
	Comparisons []jsonComparison `json:"comparisons"`
	Wins        int              `json:"wins"`
	Losses      int              `json:"losses"`
	Ties        int              `json:"ties"`
	Failed      int              `json:"failed"`
	StartedAt   time.Time        `json:"started_at"`
	ElapsedMS   int64            `json:"elapsed_ms"`
}

// WriteJSON renders the summary as indented JSON.
func WriteJSON(w io.Writer, s *Summary) error {
	out := jsonSummary{
		Comparisons: make([]jsonComparison, 0, len(s.Comparisons)),
		Wins:        s.Wins,
		Losses:      s.Losses,
		Ties:        s.Ties,
		Failed:      s.Failed,
		StartedAt:   s.StartedAt,
		ElapsedMS:   s.Elapsed.Milliseconds(),
	}
	for _, c := range s.Comparisons {
		jc := jsonComparison{Line: c.Line, Left: c.Left, Right: c.Right}
		if c.Err != nil {
			jc.Error = c.Err.Error()
		} else {
			jc.LeftCategory = int(c.LeftCategory)
			jc.RightCategory = int(c.RightCategory)
			jc.Outcome = c.Outcome.String()
		}
		out.Comparisons = append(out.Comparisons, jc)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
