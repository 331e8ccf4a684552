// Package cli provides the blitzviz command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI colors for terminal output.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
)

// Reporter prints run progress to the user. Colors are used only when
// the destination is a terminal; piped output stays plain.
type Reporter struct {
	out   io.Writer
	color bool
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	r := &Reporter{out: out}
	if f, ok := out.(*os.File); ok {
		r.color = term.IsTerminal(int(f.Fd()))
	}
	return r
}

// Infof prints an informational line.
func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Successf prints a success line, green on terminals.
func (r *Reporter) Successf(format string, args ...any) {
	r.printColored(colorGreen, format, args...)
}

// Errorf prints an error line, red on terminals.
func (r *Reporter) Errorf(format string, args ...any) {
	r.printColored(colorRed, format, args...)
}

func (r *Reporter) printColored(color, format string, args ...any) {
	if r.color {
		fmt.Fprintf(r.out, color+format+colorReset+"\n", args...)
		return
	}
	fmt.Fprintf(r.out, format+"\n", args...)
}
