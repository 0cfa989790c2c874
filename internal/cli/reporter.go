// Package cli provides the command-line interface for blockmodes.
package cli

import (
	"fmt"
	"io"
	"sync"
)

// Reporter prints status lines for a command to the terminal.
// Status and success lines honor quiet; warnings and errors always print.
type Reporter struct {
	mu    sync.Mutex
	out   io.Writer
	quiet bool
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer, quiet bool) *Reporter {
	return &Reporter{
		out:   out,
		quiet: quiet,
	}
}

func (r *Reporter) printf(prefix, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, prefix+format+"\n", args...)
}

// Status prints a progress line.
func (r *Reporter) Status(format string, args ...any) {
	if r.quiet {
		return
	}
	r.printf("", format, args...)
}

// Warn prints a warning.
func (r *Reporter) Warn(format string, args ...any) {
	r.printf("Warning: ", format, args...)
}

// PrintError prints an error message.
func (r *Reporter) PrintError(format string, args ...any) {
	r.printf("Error: ", format, args...)
}

// PrintSuccess prints a success message.
func (r *Reporter) PrintSuccess(format string, args ...any) {
	if r.quiet {
		return
	}
	r.printf("", format, args...)
}
