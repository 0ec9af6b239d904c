// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package adventure holds the room-graph model of a text adventure and the
// parser for the `.ta` file format that produces it.
//
// # File format
//
// An adventure file is strict and line oriented:
//
//	map
//	.....
//	..S..
//	pam
//	rooms
//	# comments start with a hash
//	S="You are standing in a clearing."(north=N,east=E);
//	N="A dark forest."(south=S);
//	smoor
//
// The map block holds up to five rows of a purely cosmetic 5x5 grid. Each
// room line binds a single-character key to a quoted description and an
// optional list of exits. Exit targets are not checked against the room
// table; a dangling exit is only discovered when someone walks into it.
//
// # Errors
//
// Parse stops at the first problem and returns a *GrammarError whose
// hcl.Diagnostic points at the offending file, line and column. Loader
// failures to read the file are reported as *FileReadError.
package adventure
