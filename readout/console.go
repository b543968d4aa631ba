package readout

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Console prints readout stats to a console with a fixed width font.
// Labels are right-aligned by their display width, values are colored.
type Console struct {
	W         io.Writer
	LineWidth int // in fixed-width ‘en’s
	Label     *color.Color
	Value     *color.Color
	Context   *uax11.Context
}

var setupGraphemes sync.Once

// NewConsole creates a console printer for stdout. The line width is taken
// from the terminal, if stdout is one.
func NewConsole() *Console {
	return &Console{
		W:         os.Stdout,
		LineWidth: LineWidthFromTerminal(),
		Label:     color.New(color.FgHiBlack),
		Value:     color.New(color.FgCyan, color.Bold),
		Context:   uax11.LatinContext,
	}
}

// LineWidthFromTerminal checks whether stdout is a terminal, and if so, reads
// the terminal's width. It falls back to 65 ‘en’s.
func LineWidthFromTerminal() int {
	width := 65
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			if w > 10 {
				width = w
			} else {
				width = 10
			}
		}
	}
	tracer().P("format", "console").Debugf("setting line length to %d en", width)
	return width
}

// Print outputs stats, one per line. Values which would exceed the line
// width are truncated to it.
func (c *Console) Print(stats []Stat) error {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	ctx := c.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	labelWidth := 0
	for _, s := range stats {
		labelWidth = max(labelWidth, c.width(s.Name, ctx))
	}
	for _, s := range stats {
		pad := strings.Repeat(" ", labelWidth-c.width(s.Name, ctx))
		value := s.Value
		if room := c.LineWidth - labelWidth - 2; room > 0 && c.width(value, ctx) > room {
			value = truncate(value, room, ctx)
		}
		if _, err := io.WriteString(c.W, pad); err != nil {
			return err
		}
		if err := c.print(c.Label, s.Name+": "); err != nil {
			return err
		}
		if err := c.print(c.Value, value); err != nil {
			return err
		}
		if _, err := io.WriteString(c.W, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) print(col *color.Color, s string) error {
	if col == nil {
		_, err := io.WriteString(c.W, s)
		return err
	}
	_, err := col.Fprint(c.W, s)
	return err
}

func (c *Console) width(s string, ctx *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

// truncate cuts s after the last rune fitting into width.
func truncate(s string, width int, ctx *uax11.Context) string {
	cut := 0
	for i := range s {
		if i > 0 && uax11.StringWidth(grapheme.StringFromString(s[:i]), ctx) > width {
			break
		}
		cut = i
	}
	if uax11.StringWidth(grapheme.StringFromString(s), ctx) <= width {
		return s
	}
	return s[:cut]
}
