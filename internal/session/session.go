// Package session owns the state of a single game session and dispatches the
// commands typed at the prompt.
//
// A Session is not safe for concurrent use. The REPL feeds it one line at a
// time and renders its message log in between.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/specialistvlad/textadv/internal/adventure"
	"github.com/specialistvlad/textadv/internal/ctxlog"
	"github.com/specialistvlad/textadv/internal/msglog"
	"github.com/specialistvlad/textadv/internal/nav"
)

// ErrUnknownCommand is wrapped by the error logged for unrecognized commands.
var ErrUnknownCommand = errors.New("unknown command")

// Loader provides adventures by name.
type Loader interface {
	Load(ctx context.Context, name string) (*adventure.Adventure, error)
	List(ctx context.Context) ([]string, error)
}

// Session is the state of one player at one terminal.
type Session struct {
	log    *msglog.Log
	loader Loader
	start  adventure.Key
	lower  cases.Caser

	adv    *adventure.Adventure
	loaded bool
	state  nav.State
}

// New creates a session that reads adventures through loader and writes
// messages to log. start is the room every successful load begins in.
func New(log *msglog.Log, loader Loader, start adventure.Key) *Session {
	return &Session{
		log:    log,
		loader: loader,
		start:  start,
		lower:  cases.Lower(language.Und),
		state:  nav.NewState(start),
	}
}

// Log returns the session's message log.
func (s *Session) Log() *msglog.Log { return s.log }

// Loaded reports whether an adventure has been loaded successfully.
func (s *Session) Loaded() bool { return s.loaded }

// Adventure returns the current adventure, or nil.
func (s *Session) Adventure() *adventure.Adventure { return s.adv }

// State returns the navigation state.
func (s *Session) State() nav.State { return s.state }

// Result tells the REPL what to do after a command.
type Result struct {
	Exit bool
}

// Dispatch handles one input line. Blank lines do nothing. Every other line
// is echoed to the log before it is handled.
func (s *Session) Dispatch(ctx context.Context, input string) Result {
	logger := ctxlog.FromContext(ctx)

	line := strings.TrimSpace(input)
	if line == "" {
		return Result{}
	}
	s.log.Append(msglog.Echo, "> "+line)

	fields := strings.Fields(line)
	for i := range fields {
		fields[i] = s.lower.String(fields[i])
	}
	name, args := fields[0], fields[1:]
	logger.Debug("Dispatching command.", "command", name, "args", args)

	cmd, ok := lookup(name)
	if !ok {
		err := fmt.Errorf("%w: %q (type \"help\" for a list)", ErrUnknownCommand, name)
		s.fail(ctx, err)
		return Result{}
	}
	return cmd.run(ctx, s, args)
}

// fail records err in both the message log and the diagnostic logger.
func (s *Session) fail(ctx context.Context, err error) {
	ctxlog.FromContext(ctx).Warn("Command failed.", "error", err)
	s.log.Append(msglog.Error, "error: "+err.Error())
}

func (s *Session) info(text string) {
	s.log.Append(msglog.Info, text)
}
