package screen

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	fallbackCols = 80
	fallbackRows = 24
	minCols      = 20
	minRows      = 4
)

// SizeFunc reports the terminal size in columns and rows.
type SizeFunc func() (cols, rows int)

// HostSize returns a SizeFunc measuring the terminal attached to f. When f is
// not a terminal it reports 80x24.
func HostSize(f *os.File) SizeFunc {
	return func() (int, int) {
		cols, rows, err := term.GetSize(int(f.Fd()))
		if err != nil || cols <= 0 || rows <= 0 {
			return fallbackCols, fallbackRows
		}
		return cols, rows
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// LogRows returns how many log lines fit in a terminal with the given number
// of rows.
func LogRows(rows int) int {
	if rows < minRows {
		rows = minRows
	}
	return rows - 3
}

// LineReader reads newline-terminated lines.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its trailing "\n" or "\r\n". A final
// line without a newline is returned with a nil error; io.EOF is returned
// once nothing is left.
func (l *LineReader) ReadLine() (string, error) {
	s, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimSuffix(s, "\r"), nil
		}
		return "", err
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
