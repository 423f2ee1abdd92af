// Package output - Text, JSON, and Markdown renderers
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// ANSI colors for terminal output
const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiCyan  = "\033[36m"
)

type textFormatter struct {
	noColor bool
}

func (f *textFormatter) Format() Format { return FormatText }

func (f *textFormatter) color(c, text string) string {
	if f.noColor {
		return text
	}
	return c + text + ansiReset
}

func (f *textFormatter) Render(w io.Writer, reports []Report) error {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}

		title := r.Analysis
		if r.Subject != "" {
			title += " · " + r.Subject
		}
		fmt.Fprintln(w, f.color(ansiBold+ansiCyan, "━━━ "+title+" ━━━"))

		tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
		for _, row := range r.Rows {
			unit := row.Unit
			if unit != "" {
				unit = " " + f.color(ansiDim, unit)
			}
			fmt.Fprintf(tw, "  %s\t%s%s\n", row.Label, row.Value, unit)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format { return FormatJSON }

func (f *jsonFormatter) Render(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

type markdownFormatter struct{}

func (f *markdownFormatter) Format() Format { return FormatMarkdown }

func (f *markdownFormatter) Render(w io.Writer, reports []Report) error {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}

		title := r.Analysis
		if r.Subject != "" {
			title += " — " + r.Subject
		}
		fmt.Fprintf(w, "## %s\n\n", title)
		fmt.Fprintln(w, "| Quantity | Value | Unit |")
		fmt.Fprintln(w, "|---|---|---|")
		for _, row := range r.Rows {
			fmt.Fprintf(w, "| %s | %s | %s |\n",
				escapePipes(row.Label), escapePipes(row.Value), escapePipes(row.Unit))
		}
	}
	return nil
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
