// Package console renders the text reports. Colors and tables follow
// the terminal; everything here writes to the writer it is given so the
// commands can keep stdout machine-readable when they need to.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
)

// Header prints a titled divider above a report.
func Header(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", Bold(title))
	fmt.Fprintln(w, Dim(strings.Repeat("=", 40)))
}

// KeyValue prints an indented key-value line.
func KeyValue(w io.Writer, key, value string) {
	fmt.Fprintf(w, "  %-14s %s\n", Dim(key+":"), value)
}

// Bar renders a fixed-width progress bar, full at done >= total. A zero
// total renders as full; the goal is trivially met.
func Bar(done, total, width int) string {
	ratio := 1.0
	if total > 0 {
		ratio = float64(done) / float64(total)
		if ratio > 1 {
			ratio = 1
		}
	}
	filled := int(float64(width) * ratio)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
