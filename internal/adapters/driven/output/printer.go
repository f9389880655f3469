// Package output provides the result printer: it writes matched lines
// to a writer, one per line, in the order the search returned them.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/matcher"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
)

// Ensure Printer implements the interface.
var _ driven.ResultWriter = (*Printer)(nil)

// Format selects how a report is rendered.
type Format int

const (
	// FormatLines prints each matched line.
	FormatLines Format = iota

	// FormatCount prints only the number of matched lines.
	FormatCount

	// FormatJSON prints the whole report as indented JSON.
	FormatJSON
)

// Options configures a Printer.
type Options struct {
	Format      Format
	LineNumbers bool
	Color       bool
}

// Printer writes search reports.
type Printer struct {
	w      io.Writer
	opts   Options
	match  lipgloss.Style
	number lipgloss.Style
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, opts Options) *Printer {
	renderer := lipgloss.NewRenderer(w)
	if opts.Color {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:    w,
		opts: opts,
		match: renderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F38BA8")).
			TabWidth(lipgloss.NoTabConversion),
		number: renderer.NewStyle().
			Foreground(lipgloss.Color("#A6E3A1")).
			TabWidth(lipgloss.NoTabConversion),
	}
}

// Write renders report according to the printer options.
func (p *Printer) Write(report *domain.SearchReport) error {
	switch p.opts.Format {
	case FormatCount:
		_, err := fmt.Fprintln(p.w, report.Count())
		return err
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		_, err = fmt.Fprintln(p.w, string(data))
		return err
	default:
		return p.writeLines(report)
	}
}

func (p *Printer) writeLines(report *domain.SearchReport) error {
	var b strings.Builder
	for _, m := range report.Matches {
		if p.opts.LineNumbers {
			b.WriteString(p.render(p.number, fmt.Sprintf("%d", m.LineNumber)))
			b.WriteByte(':')
		}
		if p.opts.Color {
			b.WriteString(p.highlight(m.Line, report.Query, report.Policy))
		} else {
			b.WriteString(m.Line)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

// highlight renders every occurrence of query in line with the match style.
func (p *Printer) highlight(line, query string, policy domain.CasePolicy) string {
	spans := matcher.Highlight(line, query, policy)
	if len(spans) == 0 {
		return line
	}

	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(line[last:s.Start])
		b.WriteString(p.match.Render(line[s.Start:s.End]))
		last = s.End
	}
	b.WriteString(line[last:])
	return b.String()
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.opts.Color {
		return s
	}
	return style.Render(s)
}

// ShouldColor resolves a colour mode against the destination writer.
// Auto colours only terminals, and NO_COLOR always disables auto.
func ShouldColor(mode domain.ColorMode, w io.Writer) bool {
	switch mode {
	case domain.ColorAlways:
		return true
	case domain.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
