package adventure

import "strings"

// Direction is one of the four compass directions a room can connect through.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	// Invalid is returned by ParseDirection for unrecognized tokens. It is
	// never stored in a Room.
	Invalid
)

// Directions lists the valid directions in declaration order.
var Directions = [...]Direction{North, East, South, West}

var directionNames = [...]string{
	North: "north",
	East:  "east",
	South: "south",
	West:  "west",
}

// ParseDirection matches token case-insensitively against the four direction
// names. Anything else yields Invalid.
func ParseDirection(token string) Direction {
	token = strings.ToLower(token)
	for _, d := range Directions {
		if directionNames[d] == token {
			return d
		}
	}
	return Invalid
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d >= North && d < Invalid
}

func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}
