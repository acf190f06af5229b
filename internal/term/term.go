// Package term decides when decorated output is appropriate and
// renders it. The demo's contract lines always go to stdout unstyled;
// section headers are decoration, written to stderr only when it is
// an interactive terminal.
package term

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#3B82F6"))

// ColorEnabled reports whether styled output should be written to w.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Header writes one styled section header to w when w is an
// interactive terminal; otherwise it writes nothing, so piped runs
// carry only the contract lines.
func Header(w io.Writer, text string) {
	if !ColorEnabled(w) {
		return
	}
	fmt.Fprintln(w, headerStyle.Render("== "+text+" =="))
}
