// Package output provides the CLI renderer. Output adapts to environment:
// styled text on a terminal, markdown when piped, and machine-readable JSON
// on request.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode selects how command output is rendered.
type OutputMode string

// Output modes.
const (
	// ModeAuto picks text on a TTY and markdown otherwise.
	ModeAuto OutputMode = "auto"
	// ModeText is styled terminal output.
	ModeText OutputMode = "text"
	// ModeMarkdown is plain markdown for piped/scripted use.
	ModeMarkdown OutputMode = "markdown"
	// ModeJSON is machine-readable output.
	ModeJSON OutputMode = "json"
)

// Mode parses a mode string, defaulting to auto for unknown values.
func Mode(s string) OutputMode {
	switch OutputMode(s) {
	case ModeText, ModeMarkdown, ModeJSON:
		return OutputMode(s)
	default:
		return ModeAuto
	}
}

// Renderer writes command output in the active mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting TTY state from the writer.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return NewRendererWithTTY(out, errOut, isTTY, mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
// Used by tests to exercise both styled and plain output.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	r := &Renderer{out: out, errOut: errOut, mode: mode, isTTY: isTTY}
	r.styles = newStyles(r.EffectiveMode() == ModeText && isTTY)
	return r
}

// EffectiveMode resolves ModeAuto against the TTY state.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode == ModeAuto || r.mode == "" {
		if r.isTTY {
			return ModeText
		}
		return ModeMarkdown
	}
	return r.mode
}

// Styles returns the active style set. Plain (no-op) styles outside of
// styled terminal output.
func (r *Renderer) Styles() *Styles { return r.styles }

// Out returns the stdout writer.
func (r *Renderer) Out() io.Writer { return r.out }

// Println writes a line to stdout.
func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output to stdout.
func (r *Renderer) Printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

// Success writes a success line to stdout.
func (r *Renderer) Success(msg string) {
	r.Println(r.styles.Success.Render(msg))
}

// Errorf writes a formatted error line to stderr.
func (r *Renderer) Errorf(format string, a ...any) {
	fmt.Fprintf(r.errOut, format, a...)
}

// JSON writes v as indented JSON to stdout.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
