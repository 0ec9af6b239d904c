// Package nav resolves `look` requests against a loaded adventure.
//
// Looking never moves the player: State.Current only changes when a new
// adventure is loaded.
package nav

import (
	"fmt"

	"github.com/specialistvlad/textadv/internal/adventure"
)

// State is the player's position within an adventure.
type State struct {
	Current adventure.Key
}

// NewState returns a state positioned at start.
func NewState(start adventure.Key) State {
	return State{Current: start}
}

// Reset moves the player back to start.
func (s *State) Reset(start adventure.Key) {
	s.Current = start
}

// ErrorKind distinguishes navigation failures.
type ErrorKind int

const (
	// InvalidDirection means the token is not a compass direction.
	InvalidDirection ErrorKind = iota + 1
	// NoSuchRoom means there is no room to describe: nothing is loaded, the
	// current room is undefined, there is no exit that way, or the exit
	// leads to a key with no room definition.
	NoSuchRoom
)

// NavError is returned by Look.
type NavError struct {
	Kind  ErrorKind
	Token string // the direction token as typed, for InvalidDirection
	From  adventure.Key
	Dir   adventure.Direction // adventure.Invalid when no direction applies
	To    adventure.Key       // the dangling target, when HasTo
	HasTo bool
	// NotLoaded is set when no adventure has been loaded yet.
	NotLoaded bool
}

func (e *NavError) Error() string {
	switch {
	case e.Kind == InvalidDirection:
		return fmt.Sprintf("invalid direction %q", e.Token)
	case e.NotLoaded:
		return "no adventure loaded"
	case !e.Dir.Valid():
		return fmt.Sprintf("room '%s' does not exist", e.From)
	case e.HasTo:
		return fmt.Sprintf("room '%s' to the %s of '%s' does not exist", e.To, e.Dir, e.From)
	default:
		return fmt.Sprintf("there is no way %s from room '%s'", e.Dir, e.From)
	}
}

// Look describes the current room when token is empty, or the room one step
// away in the direction named by token otherwise. It never changes state.
func Look(state State, adv *adventure.Adventure, token string) (string, error) {
	if adv == nil {
		return "", &NavError{Kind: NoSuchRoom, From: state.Current, Dir: adventure.Invalid, NotLoaded: true}
	}

	room, ok := adv.RoomAt(state.Current)
	if !ok {
		return "", &NavError{Kind: NoSuchRoom, From: state.Current, Dir: adventure.Invalid}
	}
	if token == "" {
		return room.Description, nil
	}

	dir := adventure.ParseDirection(token)
	if dir == adventure.Invalid {
		return "", &NavError{Kind: InvalidDirection, Token: token, From: state.Current, Dir: adventure.Invalid}
	}

	to, ok := room.Exit(dir)
	if !ok {
		return "", &NavError{Kind: NoSuchRoom, From: state.Current, Dir: dir}
	}
	dest, ok := adv.RoomAt(to)
	if !ok {
		return "", &NavError{Kind: NoSuchRoom, From: state.Current, Dir: dir, To: to, HasTo: true}
	}
	return dest.Description, nil
}
