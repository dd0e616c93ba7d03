// Package diag prints the generator's human-readable progress lines. The
// Printer is injected wherever output is produced so formatting stays
// process-wide configuration rather than scattered globals.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes colorized diagnostic lines. Its output is observational
// only; nothing consumes it.
type Printer struct {
	out io.Writer

	method  *color.Color
	pattern *color.Color
	shape   *color.Color
	ok      *color.Color
	event   *color.Color
	fail    *color.Color
}

// New creates a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{
		out:     out,
		method:  color.New(color.FgGreen, color.Bold),
		pattern: color.New(color.FgCyan),
		shape:   color.New(color.FgMagenta),
		ok:      color.New(color.FgGreen),
		event:   color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
	}
}

// Route reports one discovered route.
func (p *Printer) Route(method, pattern, shape string) {
	p.method.Fprintf(p.out, "%7s ", method)
	p.pattern.Fprint(p.out, pattern)
	if shape == "factory" {
		p.shape.Fprintf(p.out, "  [%s]", shape)
	}
	fmt.Fprintln(p.out)
}

// Done reports a completed generation pass.
func (p *Printer) Done(outputFile string, routeCount int) {
	p.ok.Fprint(p.out, "✓ ")
	fmt.Fprintf(p.out, "wrote %d routes to %s\n", routeCount, outputFile)
}

// Change reports a watch-mode file event.
func (p *Printer) Change(op, path string) {
	p.event.Fprintf(p.out, "[%s] ", op)
	fmt.Fprintln(p.out, path)
}

// Watching reports that watch mode is active.
func (p *Printer) Watching(dir string) {
	fmt.Fprintf(p.out, "\nwatching %s for changes...\n", dir)
}

// Error reports a failed generation pass.
func (p *Printer) Error(err error) {
	p.fail.Fprint(p.out, "✗ ")
	fmt.Fprintln(p.out, err)
}
