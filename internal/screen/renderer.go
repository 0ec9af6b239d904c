package screen

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mitchellh/go-wordwrap"

	"github.com/specialistvlad/textadv/internal/msglog"
)

const (
	clearScreen = "\033[2J"
	resetCursor = "\033[H"
	timeLayout  = "15:04:05"
	prompt      = "> "
)

// Options configures a Renderer.
type Options struct {
	Border     string // a single character repeated across the border rows
	Timestamps bool   // prefix log lines with their time
	Color      bool   // colour lines by message kind
}

// Renderer draws the viewport to an output stream.
type Renderer struct {
	out  io.Writer
	opts Options
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer, opts Options) *Renderer {
	if opts.Border == "" {
		opts.Border = "="
	}
	return &Renderer{out: out, opts: opts}
}

func moveCursor(col, row int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}

// Render clears the screen and draws entries inside a border sized to
// cols x rows. Entries that do not fit are dropped from the top.
func (r *Renderer) Render(entries []msglog.Message, cols, rows int) error {
	if cols < minCols {
		cols = minCols
	}
	if rows < minRows {
		rows = minRows
	}
	border := strings.Repeat(r.opts.Border, cols)

	var b strings.Builder
	b.WriteString(resetCursor)
	b.WriteString(clearScreen)
	b.WriteString(border)

	lines := r.layout(entries, cols, LogRows(rows))
	for i, l := range lines {
		b.WriteString(moveCursor(1, 3+i))
		b.WriteString(l)
	}

	b.WriteString(moveCursor(1, rows))
	b.WriteString(border)
	b.WriteString(moveCursor(1, 2))
	b.WriteString(prompt)

	_, err := io.WriteString(r.out, b.String())
	return err
}

// layout wraps entries to cols and keeps the last limit visual lines.
func (r *Renderer) layout(entries []msglog.Message, cols, limit int) []string {
	var lines []string
	for _, m := range entries {
		prefix := ""
		if r.opts.Timestamps {
			prefix = "[" + m.Time.Format(timeLayout) + "] "
		}
		width := cols - len(prefix)
		if width < 1 {
			width = 1
		}
		wrapped := strings.Split(wordwrap.WrapString(m.Text, uint(width)), "\n")
		for i, w := range wrapped {
			if len(w) > width {
				w = w[:width]
			}
			lead := prefix
			if i > 0 {
				lead = strings.Repeat(" ", len(prefix))
			}
			lines = append(lines, lead+r.paint(m.Kind, w))
		}
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	return lines
}

func (r *Renderer) paint(kind msglog.Kind, text string) string {
	if !r.opts.Color {
		return text
	}
	switch kind {
	case msglog.Error:
		return color.Red.Render(text)
	case msglog.Echo:
		return color.Gray.Render(text)
	case msglog.Narrative:
		return color.Cyan.Render(text)
	default:
		return text
	}
}

// Restore puts the cursor home and clears the screen.
func (r *Renderer) Restore() error {
	_, err := io.WriteString(r.out, resetCursor+clearScreen)
	return err
}
