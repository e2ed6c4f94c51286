// Package presenter provides consistent CLI output for the human-facing
// commands (package, validate). Query commands never use it for results;
// their stdout is reserved for the JSON document.
package presenter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// TerminalPresenter writes user-facing messages with optional color.
type TerminalPresenter struct {
	output      io.Writer
	errorOutput io.Writer
	quiet       bool
}

// New creates a TerminalPresenter writing to stderr for errors and stdout
// for everything else, with color auto-detection.
func New() *TerminalPresenter {
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
	return &TerminalPresenter{output: os.Stdout, errorOutput: os.Stderr}
}

// NewWithWriters creates a TerminalPresenter with custom writers.
func NewWithWriters(output, errorOutput io.Writer) *TerminalPresenter {
	return &TerminalPresenter{output: output, errorOutput: errorOutput}
}

// Error displays an error message to the error output.
func (p *TerminalPresenter) Error(err error, context string) {
	if err == nil {
		return
	}
	c := color.New(color.FgRed, color.Bold)
	if context != "" {
		c.Fprintf(p.errorOutput, "[ERROR] %s: %v\n", context, err)
	} else {
		c.Fprintf(p.errorOutput, "[ERROR] %v\n", err)
	}
}

// Success displays a success message.
func (p *TerminalPresenter) Success(message string) {
	if p.quiet {
		return
	}
	color.New(color.FgGreen, color.Bold).Fprintf(p.output, "✓ %s\n", message)
}

// Warning displays a warning message.
func (p *TerminalPresenter) Warning(message string) {
	if p.quiet {
		return
	}
	color.New(color.FgYellow, color.Bold).Fprintf(p.output, "⚠ %s\n", message)
}

// Info displays an informational message.
func (p *TerminalPresenter) Info(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.output, "%s\n", message)
}

// SetQuiet enables or disables quiet mode.
func (p *TerminalPresenter) SetQuiet(quiet bool) {
	p.quiet = quiet
}

var defaultPresenter = New()

// Error displays an error message using the default presenter.
func Error(err error, context string) {
	defaultPresenter.Error(err, context)
}

// Success displays a success message using the default presenter.
func Success(message string) {
	defaultPresenter.Success(message)
}

// Warning displays a warning message using the default presenter.
func Warning(message string) {
	defaultPresenter.Warning(message)
}

// Info displays an informational message using the default presenter.
func Info(message string) {
	defaultPresenter.Info(message)
}
