// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the in-memory room graph produced by the parser and
// consumed by navigation.
package adventure

import (
	"fmt"
	"strings"
)

const (
	// MapSize is the width and height of the cosmetic map grid.
	MapSize = 5
	// StartKey is the room every session starts in after a successful load.
	StartKey Key = 'S'
	// FileExtension is the suffix of adventure files on disk.
	FileExtension = ".ta"
)

// Key identifies a room. Any single byte is a valid key.
type Key byte

func (k Key) String() string {
	return fmt.Sprintf("%c", rune(k))
}

// Room is a single location in the adventure.
type Room struct {
	Key         Key
	Description string
	// Exits maps a direction to the key of the room it leads to. A missing
	// direction means there is no exit that way.
	Exits map[Direction]Key
}

// Exit returns the key of the room reached by going in dir from r.
func (r *Room) Exit(dir Direction) (Key, bool) {
	if r == nil || !dir.Valid() {
		return 0, false
	}
	k, ok := r.Exits[dir]
	return k, ok
}

// Adventure is a fully parsed adventure file.
type Adventure struct {
	Name  string
	Map   [MapSize][MapSize]byte
	Rooms map[Key]*Room
}

func newAdventure(name string) *Adventure {
	a := &Adventure{
		Name:  name,
		Rooms: make(map[Key]*Room),
	}
	for y := range a.Map {
		for x := range a.Map[y] {
			a.Map[y][x] = ' '
		}
	}
	return a
}

// RoomAt looks up a room by key.
func (a *Adventure) RoomAt(k Key) (*Room, bool) {
	if a == nil {
		return nil, false
	}
	r, ok := a.Rooms[k]
	return r, ok
}

// MapRows returns the map grid as five strings, top row first.
func (a *Adventure) MapRows() []string {
	rows := make([]string, 0, MapSize)
	for _, row := range a.Map {
		rows = append(rows, string(row[:]))
	}
	return rows
}

// MapString returns the map grid joined by newlines.
func (a *Adventure) MapString() string {
	return strings.Join(a.MapRows(), "\n")
}
