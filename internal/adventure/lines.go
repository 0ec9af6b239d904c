package adventure

import (
	"bytes"

	"github.com/hashicorp/hcl/v2"
)

// line is one physical line of the source with its position.
type line struct {
	text   string
	num    int // 1-based line number in the untrimmed input
	offset int // byte offset of the first character in the untrimmed input
}

// pos returns the hcl position of column col (0-based) within the line.
func (l line) pos(col int) hcl.Pos {
	return hcl.Pos{Line: l.num, Column: col + 1, Byte: l.offset + col}
}

// lineStream yields the lines of a source buffer after surrounding
// whitespace has been trimmed. Line numbers and offsets still refer to the
// untrimmed input so diagnostics match what the author sees in an editor.
type lineStream struct {
	src    []byte
	pos    int
	num    int
	offset int
	last   line
}

func newLineStream(src []byte) *lineStream {
	lead := len(src) - len(bytes.TrimLeft(src, " \t\r\n"))
	trimmed := bytes.TrimSpace(src)
	return &lineStream{
		src:    trimmed,
		num:    bytes.Count(src[:lead], []byte{'\n'}),
		offset: lead,
	}
}

// next returns the following line. A trailing "\r" is dropped.
func (s *lineStream) next() (line, bool) {
	if s.pos >= len(s.src) {
		return line{}, false
	}
	rest := s.src[s.pos:]
	end := bytes.IndexByte(rest, '\n')
	advance := end + 1
	if end < 0 {
		end = len(rest)
		advance = end
	}
	text := rest[:end]
	text = bytes.TrimSuffix(text, []byte{'\r'})

	s.num++
	l := line{text: string(text), num: s.num, offset: s.offset + s.pos}
	s.pos += advance
	s.last = l
	return l, true
}

// end returns the position just past the last consumed line, used to point
// at the place where a missing section marker was expected.
func (s *lineStream) end() hcl.Pos {
	if s.num == 0 {
		return hcl.Pos{Line: 1, Column: 1, Byte: s.offset}
	}
	return s.last.pos(len(s.last.text))
}

// cursor scans a single line byte by byte.
type cursor struct {
	ln  line
	pos int
}

func newCursor(ln line) *cursor {
	return &cursor{ln: ln}
}

func (c *cursor) done() bool { return c.pos >= len(c.ln.text) }

func (c *cursor) peek() (byte, bool) {
	if c.done() {
		return 0, false
	}
	return c.ln.text[c.pos], true
}

func (c *cursor) next() (byte, bool) {
	b, ok := c.peek()
	if ok {
		c.pos++
	}
	return b, ok
}

// accept consumes b if it is the next byte.
func (c *cursor) accept(b byte) bool {
	if next, ok := c.peek(); ok && next == b {
		c.pos++
		return true
	}
	return false
}

func (c *cursor) skipSpaces() {
	for {
		b, ok := c.peek()
		if !ok || (b != ' ' && b != '\t') {
			return
		}
		c.pos++
	}
}

func (c *cursor) rest() string {
	if c.done() {
		return ""
	}
	return c.ln.text[c.pos:]
}

// rangeFrom returns the source range between column start and the cursor.
func (c *cursor) rangeFrom(filename string, start int) hcl.Range {
	end := c.pos
	if end <= start {
		end = start + 1
	}
	return hcl.Range{Filename: filename, Start: c.ln.pos(start), End: c.ln.pos(end)}
}
