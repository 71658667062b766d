// Package console renders module output for humans: a styled title, aligned
// label/value rows, and locale-aware numbers.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer writes styled, line-oriented output to one writer.
type Printer struct {
	out   io.Writer
	num   *message.Printer
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	warn  lipgloss.Style
}

// New returns a Printer for out. An empty or unknown locale falls back to English.
func New(out io.Writer, locale string) *Printer {
	tag := language.English
	if locale != "" {
		if t, err := language.Parse(locale); err == nil {
			tag = t
		}
	}

	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:   out,
		num:   message.NewPrinter(tag),
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label: r.NewStyle().Faint(true).Width(18),
		value: r.NewStyle().Bold(true),
		warn:  r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Title prints a heading line.
func (p *Printer) Title(s string) {
	_, _ = fmt.Fprintln(p.out, p.title.Render(s))
}

// Field prints one "label  value" row.
func (p *Printer) Field(label string, value any) {
	_, _ = fmt.Fprintln(p.out, p.label.Render(label)+" "+p.value.Render(fmt.Sprint(value)))
}

// Linef prints a plain formatted line.
func (p *Printer) Linef(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// Warn prints a highlighted warning line.
func (p *Printer) Warn(s string) {
	_, _ = fmt.Fprintln(p.out, p.warn.Render(s))
}

// Number formats f with the given number of decimals and locale grouping.
func (p *Printer) Number(f float64, decimals int) string {
	return p.num.Sprintf(fmt.Sprintf("%%.%df", decimals), f)
}

// Money formats f with two decimals.
func (p *Printer) Money(f float64) string {
	return p.Number(f, 2)
}
