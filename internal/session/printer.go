package session

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// printer writes operator-facing status lines.
type printer struct {
	w     io.Writer
	cyan  *color.Color
	green *color.Color
	amber *color.Color
	red   *color.Color
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:     w,
		cyan:  color.New(color.FgCyan),
		green: color.New(color.FgGreen),
		amber: color.New(color.FgYellow),
		red:   color.New(color.FgRed, color.Bold),
	}
}

func (p *printer) info(format string, args ...any) { p.line(p.cyan, format, args...) }
func (p *printer) ok(format string, args ...any)   { p.line(p.green, format, args...) }
func (p *printer) warn(format string, args ...any) { p.line(p.amber, format, args...) }
func (p *printer) fail(format string, args ...any) { p.line(p.red, format, args...) }

func (p *printer) line(c *color.Color, format string, args ...any) {
	_, _ = c.Fprintln(p.w, fmt.Sprintf(format, args...))
}
