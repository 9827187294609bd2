// Package presenter provides consistent CLI output for user-facing messages:
// progress, success, warning, and error lines with color support and a quiet
// mode. Diagnostics belong to slog; this package is only the human surface.
package presenter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Presenter writes user-facing messages to a pair of output streams.
type Presenter struct {
	output      io.Writer
	errorOutput io.Writer
	quiet       bool
}

// New creates a Presenter on stdout/stderr, honoring NO_COLOR.
func New() *Presenter {
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriters creates a Presenter with custom output streams, used by tests.
func NewWithWriters(output, errorOutput io.Writer) *Presenter {
	return &Presenter{output: output, errorOutput: errorOutput}
}

// SetQuiet suppresses everything except errors.
func (p *Presenter) SetQuiet(quiet bool) {
	p.quiet = quiet
}

// IsQuiet reports whether quiet mode is active.
func (p *Presenter) IsQuiet() bool {
	return p.quiet
}

// Info displays an informational message
func (p *Presenter) Info(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.output, message)
}

// Progressf displays a formatted progress message
func (p *Presenter) Progressf(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.output, format+"\n", args...)
}

// Success displays a success message
func (p *Presenter) Success(message string) {
	if p.quiet {
		return
	}
	color.New(color.FgGreen, color.Bold).Fprintf(p.output, "✓ %s\n", message)
}

// Warning displays a warning message
func (p *Presenter) Warning(message string) {
	if p.quiet {
		return
	}
	color.New(color.FgYellow, color.Bold).Fprintf(p.output, "⚠ %s\n", message)
}

// Error displays an error message to the error stream, even in quiet mode.
func (p *Presenter) Error(err error, context string) {
	if err == nil {
		return
	}
	errorColor := color.New(color.FgRed, color.Bold)
	if context != "" {
		errorColor.Fprintf(p.errorOutput, "[ERROR] %s: %v\n", context, err)
	} else {
		errorColor.Fprintf(p.errorOutput, "[ERROR] %v\n", err)
	}
}
