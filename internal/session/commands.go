package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/textadv/internal/ctxlog"
	"github.com/specialistvlad/textadv/internal/msglog"
	"github.com/specialistvlad/textadv/internal/nav"
)

type command struct {
	name  string
	usage string
	help  string
	run   func(ctx context.Context, s *Session, args []string) Result
}

// commands is the dispatch table, in the order `help` lists them.
var commands []command

func init() {
	commands = []command{
		{name: "help", usage: "help", help: "show this list", run: runHelp},
		{name: "load", usage: "load <name>", help: "load adventures/<name>.ta", run: runLoad},
		{name: "look", usage: "look [direction]", help: "describe this room, or the room north/east/south/west", run: runLook},
		{name: "map", usage: "map", help: "show the adventure map", run: runMap},
		{name: "list", usage: "list", help: "list available adventures", run: runList},
		{name: "clear", usage: "clear", help: "clear the message log", run: runClear},
		{name: "exit", usage: "exit", help: "quit", run: runExit},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func runHelp(_ context.Context, s *Session, _ []string) Result {
	s.info("Commands:")
	for _, c := range commands {
		s.info(fmt.Sprintf("  %-18s %s", c.usage, c.help))
	}
	return Result{}
}

func runClear(_ context.Context, s *Session, _ []string) Result {
	s.log.Clear()
	return Result{}
}

func runExit(ctx context.Context, _ *Session, _ []string) Result {
	ctxlog.FromContext(ctx).Info("Exit requested.")
	return Result{Exit: true}
}

func runLoad(ctx context.Context, s *Session, args []string) Result {
	if len(args) != 1 {
		s.fail(ctx, fmt.Errorf("usage: load <name>"))
		return Result{}
	}
	name := args[0]

	adv, err := s.loader.Load(ctx, name)
	if err != nil {
		s.fail(ctx, fmt.Errorf("could not load %q: %w", name, err))
		return Result{}
	}

	s.adv = adv
	s.loaded = true
	s.state.Reset(s.start)
	ctxlog.FromContext(ctx).Info("Adventure loaded.", "name", adv.Name, "rooms", len(adv.Rooms))
	s.info(fmt.Sprintf("Loaded adventure %q (%s.ta) with %d rooms.", adv.Name, adv.Name, len(adv.Rooms)))
	return Result{}
}

func runLook(ctx context.Context, s *Session, args []string) Result {
	if len(args) > 1 {
		s.fail(ctx, fmt.Errorf("usage: look [direction]"))
		return Result{}
	}
	token := ""
	if len(args) == 1 {
		token = args[0]
	}

	text, err := nav.Look(s.state, s.adv, token)
	if err != nil {
		s.fail(ctx, err)
		return Result{}
	}
	s.log.Append(msglog.Narrative, text)
	return Result{}
}

func runMap(ctx context.Context, s *Session, _ []string) Result {
	if !s.loaded {
		s.fail(ctx, &nav.NavError{Kind: nav.NoSuchRoom, NotLoaded: true})
		return Result{}
	}
	for _, row := range s.adv.MapRows() {
		s.log.Append(msglog.Narrative, row)
	}
	return Result{}
}

func runList(ctx context.Context, s *Session, _ []string) Result {
	names, err := s.loader.List(ctx)
	if err != nil {
		s.fail(ctx, fmt.Errorf("could not list adventures: %w", err))
		return Result{}
	}
	if len(names) == 0 {
		s.info("No adventures found.")
		return Result{}
	}
	s.info("Adventures: " + strings.Join(names, ", "))
	return Result{}
}
