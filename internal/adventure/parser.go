package adventure

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

const (
	markerMap      = "map"
	markerMapEnd   = "pam"
	markerRooms    = "rooms"
	markerRoomsEnd = "smoor"
)

// parser turns a line stream into an Adventure. It is single use.
type parser struct {
	filename string
	lines    *lineStream
	adv      *Adventure
}

// Parse reads an adventure from src. filename is used for diagnostics and
// becomes the Adventure's name with the extension stripped.
func Parse(filename string, src []byte) (*Adventure, error) {
	p := &parser{
		filename: filename,
		lines:    newLineStream(src),
		adv:      newAdventure(strings.TrimSuffix(filename, FileExtension)),
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.adv, nil
}

func (p *parser) parse() error {
	if err := p.expectMarker(markerMap); err != nil {
		return err
	}
	if err := p.parseMap(); err != nil {
		return err
	}
	if err := p.expectMarker(markerRooms); err != nil {
		return err
	}
	return p.parseRooms()
}

func isMarker(ln line, marker string) bool {
	return strings.TrimRight(ln.text, " \t") == marker
}

func (p *parser) expectMarker(marker string) error {
	ln, ok := p.lines.next()
	if !ok {
		return p.missingMarker(marker, p.atEnd())
	}
	if !isMarker(ln, marker) {
		return p.missingMarker(marker, p.wholeLine(ln))
	}
	return nil
}

func (p *parser) missingMarker(marker string, subject hcl.Range) *GrammarError {
	return newGrammarError(MissingMarker, subject,
		fmt.Sprintf("Missing %q marker", marker),
		fmt.Sprintf("Expected a line containing only %q.", marker))
}

func (p *parser) atEnd() hcl.Range {
	end := p.lines.end()
	return hcl.Range{Filename: p.filename, Start: end, End: end}
}

func (p *parser) wholeLine(ln line) hcl.Range {
	end := len(ln.text)
	if end == 0 {
		end = 1
	}
	return hcl.Range{Filename: p.filename, Start: ln.pos(0), End: ln.pos(end)}
}

// parseMap consumes map rows up to and including the closing marker.
func (p *parser) parseMap() error {
	row := 0
	for {
		ln, ok := p.lines.next()
		if !ok {
			return p.missingMarker(markerMapEnd, p.atEnd())
		}
		if isMarker(ln, markerMapEnd) {
			return nil
		}
		if row >= MapSize {
			return newGrammarError(TooManyRows, p.wholeLine(ln),
				"Too many map rows",
				fmt.Sprintf("The map may have at most %d rows before %q.", MapSize, markerMapEnd))
		}
		col := 0
		for i := 0; i < len(ln.text) && col < MapSize; i++ {
			b := ln.text[i]
			if b == ' ' || b == '\t' {
				continue
			}
			p.adv.Map[row][col] = b
			col++
		}
		row++
	}
}

// parseRooms consumes room definitions up to and including the closing marker.
func (p *parser) parseRooms() error {
	for {
		ln, ok := p.lines.next()
		if !ok {
			return p.missingMarker(markerRoomsEnd, p.atEnd())
		}
		if isMarker(ln, markerRoomsEnd) {
			return nil
		}
		if strings.TrimSpace(ln.text) == "" || strings.HasPrefix(ln.text, "#") {
			continue
		}
		room, err := p.parseRoom(ln)
		if err != nil {
			return err
		}
		p.adv.Rooms[room.Key] = room
	}
}

// parseRoom parses `K="description"(dir=K,...);`.
func (p *parser) parseRoom(ln line) (*Room, error) {
	c := newCursor(ln)
	key, _ := c.next()
	room := &Room{Key: Key(key), Exits: make(map[Direction]Key)}

	if !c.accept('=') {
		return nil, p.malformedRoom(c, fmt.Sprintf("Expected \"=\" after room key %q.", rune(key)))
	}
	if !c.accept('"') {
		return nil, p.malformedRoom(c, "Expected the room description to start with a double quote.")
	}
	start := c.pos
	closing := strings.IndexByte(c.rest(), '"')
	if closing < 0 {
		c.pos = len(ln.text)
		return nil, newGrammarError(MalformedRoom, c.rangeFrom(p.filename, start-1),
			"Malformed room definition", "The room description is missing its closing double quote.")
	}
	room.Description = ln.text[start : start+closing]
	c.pos = start + closing + 1

	if c.accept('(') {
		if err := p.parseExits(c, room); err != nil {
			return nil, err
		}
	}

	rest := strings.TrimSpace(c.rest())
	switch {
	case rest == ";":
		return room, nil
	case !strings.HasSuffix(rest, ";"):
		return nil, newGrammarError(MissingTerminator, hcl.Range{Filename: p.filename, Start: ln.pos(len(ln.text)), End: ln.pos(len(ln.text) + 1)},
			"Missing terminator",
			fmt.Sprintf("Room %q must end with \";\".", rune(key)))
	default:
		return nil, p.malformedRoom(c, fmt.Sprintf("Unexpected %q before \";\".", strings.TrimSuffix(rest, ";")))
	}
}

func (p *parser) malformedRoom(c *cursor, detail string) *GrammarError {
	return newGrammarError(MalformedRoom, c.rangeFrom(p.filename, c.pos), "Malformed room definition", detail)
}

// parseExits parses `dir=K(,dir=K)*)` with the opening parenthesis already consumed.
func (p *parser) parseExits(c *cursor, room *Room) error {
	for {
		c.skipSpaces()
		start := c.pos
		for {
			b, ok := c.peek()
			if !ok || b == '=' || b == ',' || b == ')' {
				break
			}
			c.pos++
		}
		token := strings.TrimSpace(c.ln.text[start:c.pos])
		if token == "" || !c.accept('=') {
			return p.malformedConnection(c, start, "Expected a connection of the form direction=key.")
		}
		dir := ParseDirection(token)
		if dir == Invalid {
			return newGrammarError(UnknownDirection, hcl.Range{Filename: p.filename, Start: c.ln.pos(start), End: c.ln.pos(start + len(token))},
				"Unknown direction",
				fmt.Sprintf("%q is not one of north, east, south or west.", token))
		}
		key, ok := c.next()
		if !ok || key == ',' || key == ')' {
			return p.malformedConnection(c, start, fmt.Sprintf("Missing room key after %q.", token+"="))
		}
		room.Exits[dir] = Key(key)

		c.skipSpaces()
		switch b, _ := c.next(); b {
		case ',':
			continue
		case ')':
			return nil
		default:
			return p.malformedConnection(c, start, "Expected \",\" or \")\" after a connection.")
		}
	}
}

func (p *parser) malformedConnection(c *cursor, start int, detail string) *GrammarError {
	return newGrammarError(MalformedConnection, c.rangeFrom(p.filename, start), "Malformed connection", detail)
}
