// Package report renders the per-file progress output spec §7 requires:
// filename, dimensions, scale, region/cluster counts, per-stage elapsed
// time, and a final "saved as …" or skip line — in color when the
// terminal supports it, plain text otherwise.
//
// The ANSI escape sequences are grounded on the source's TermUtils/term
// module (FG/BG/STYLE enums of raw SGR codes); the teacher repo's own
// terminal integration (pkg/cli/terminal_preview.go) hand-rolls escape
// sequences rather than pulling in a color library, and no repo in the
// example pack imports one (fatih/color, lipgloss, …), so this package
// follows the same hand-rolled-ANSI convention rather than introducing an
// unseen dependency.
package report

import (
	"fmt"
	"io"
	"os"
	"time"
)

// SGR codes used by the reporter, mirroring the source's FG/STYLE enums.
const (
	sgrReset = "[0m"
	sgrBlue  = "[34m"
	sgrGreen = "[32m"
	sgrRed   = "[31m"
	sgrBold  = "[1m"
)

// Reporter writes progress lines to an output stream, optionally wrapping
// segments in ANSI color. It implements trace.Reporter so it can be handed
// straight to trace.Trace.
type Reporter struct {
	Out   io.Writer
	Color bool
}

// New creates a Reporter writing to os.Stdout. If colorOverride is nil, the
// terminal is auto-detected; DetectColor performs that detection.
func New(colorOverride *bool) *Reporter {
	color := DetectColor()
	if colorOverride != nil {
		color = *colorOverride
	}
	return &Reporter{Out: os.Stdout, Color: color}
}

// DetectColor reports whether stdout looks like a color-capable terminal:
// stdout must be a character device and TERM must not be "dumb" or empty.
// Grounded on the teacher's terminal-capability sniffing in
// pkg/cli/terminal_preview.go (env-var based detection with a conservative
// fallback).
func DetectColor() bool {
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return false
	}
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

func (r *Reporter) wrap(code, s string) string {
	if !r.Color {
		return s
	}
	return code + s + sgrReset
}

func (r *Reporter) info(s string) string  { return r.wrap(sgrBlue, s) }
func (r *Reporter) ok(s string) string    { return r.wrap(sgrGreen, s) }
func (r *Reporter) errf(s string) string  { return r.wrap(sgrRed, s) }
func (r *Reporter) bold(s string) string  { return r.wrap(sgrBold, s) }

// FileHeader prints the filename/dimensions/scale block spec §7 requires at
// the start of processing one file.
func (r *Reporter) FileHeader(filename string, width, height, scale int) {
	fmt.Fprintf(r.Out, "%s %s\n", r.bold("filename:"), filename)
	fmt.Fprintf(r.Out, "\timage size: %s\n", r.info(fmt.Sprintf("%dx%d", width, height)))
	fmt.Fprintf(r.Out, "\tscale: %s\n", r.info(fmt.Sprintf("%d", scale)))
}

// StageDone implements trace.Reporter: prints one stage's count and elapsed
// time. Never mutates pipeline data — it only reads the numbers handed to
// it (spec §5).
func (r *Reporter) StageDone(stage string, count int, elapsed time.Duration) {
	fmt.Fprintf(r.Out, "\t%s: %d (%s)\n", stage, count, r.ok(elapsed.Round(time.Microsecond).String()))
}

// Saved prints the final "saved as …" success line.
func (r *Reporter) Saved(filename string, size int) {
	fmt.Fprintf(r.Out, "%s %s (%d bytes)\n\n", r.ok("saved as"), filename, size)
}

// Skipped prints a skip line for a file that could not be processed.
func (r *Reporter) Skipped(filename string, reason error) {
	fmt.Fprintf(r.Out, "%s %s: %v\n\n", r.errf("skip"), filename, reason)
}

// Warning prints a non-fatal warning line (e.g. a malformed .env value).
func (r *Reporter) Warning(msg string) {
	fmt.Fprintf(r.Out, "%s %s\n", r.errf("warning:"), msg)
}

// Line prints a plain informational line with no per-stage semantics.
func (r *Reporter) Line(msg string) {
	fmt.Fprintln(r.Out, msg)
}
