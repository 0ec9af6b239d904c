package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/textadv/internal/adventure"
	"github.com/specialistvlad/textadv/internal/msglog"
	"github.com/specialistvlad/textadv/internal/testutil"
)

var malformed = map[string]string{
	"nosmoor":  "map\npam\nrooms\nS=\"x\";\n",
	"nosemi":   "map\npam\nrooms\nS=\"x\"(north=N)\nsmoor\n",
	"baddir":   "map\npam\nrooms\nS=\"x\"(upward=N);\nsmoor\n",
	"manyrows": "map\n1\n2\n3\n4\n5\n6\npam\nrooms\nsmoor\n",
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	files := map[string]string{"test.ta": testutil.ClearingAdventure}
	for name, src := range malformed {
		files[name+".ta"] = src
	}
	dir := testutil.WriteFiles(t, files)
	return New(msglog.New(100), adventure.NewLoader(dir), adventure.StartKey)
}

func lastMessage(t *testing.T, s *Session) msglog.Message {
	t.Helper()
	entries := s.Log().Entries()
	require.NotEmpty(t, entries)
	return entries[len(entries)-1]
}

func TestDispatch_Scenario(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)

	s.Dispatch(ctx, "load test")
	require.True(t, s.Loaded())
	assert.Contains(t, lastMessage(t, s).Text, "test.ta")

	s.Dispatch(ctx, "look")
	assert.Equal(t, msglog.Message{Time: lastMessage(t, s).Time, Kind: msglog.Narrative, Text: "You are standing in a clearing."}, lastMessage(t, s))

	s.Dispatch(ctx, "look north")
	assert.Equal(t, "A dark forest.", lastMessage(t, s).Text)
	assert.Equal(t, adventure.StartKey, s.State().Current, "look never moves the player")

	s.Dispatch(ctx, "look up")
	assert.Equal(t, msglog.Error, lastMessage(t, s).Kind)
	assert.Equal(t, `error: invalid direction "up"`, lastMessage(t, s).Text)
}

func TestDispatch_NoConnection(t *testing.T) {
	ctx := context.Background()
	dir := testutil.WriteFiles(t, map[string]string{"test.ta": testutil.ClearingAdventure})
	s := New(msglog.New(10), adventure.NewLoader(dir), 'N')

	s.Dispatch(ctx, "load test")
	s.Dispatch(ctx, "look west")

	msg := lastMessage(t, s)
	assert.Equal(t, msglog.Error, msg.Kind)
	assert.Equal(t, "error: there is no way west from room 'N'", msg.Text)
}

func TestDispatch_CaseInsensitive(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name  string
		lines []string
		want  string
	}{
		{name: "upper load", lines: []string{"LOAD test", "look"}, want: "You are standing in a clearing."},
		{name: "title case look", lines: []string{"load test", "Look North"}, want: "A dark forest."},
		{name: "mixed case look", lines: []string{"load test", "loOk"}, want: "You are standing in a clearing."},
		{name: "upper argument", lines: []string{"load TEST", "LOOK EAST"}, want: "An old well."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t)
			for _, l := range tc.lines {
				s.Dispatch(ctx, l)
			}
			assert.Equal(t, tc.want, lastMessage(t, s).Text)
		})
	}
}

func TestDispatch_FailedLoadKeepsPreviousAdventure(t *testing.T) {
	ctx := context.Background()

	for name := range malformed {
		t.Run(name+" before any load", func(t *testing.T) {
			s := newTestSession(t)
			s.Dispatch(ctx, "load "+name)

			assert.False(t, s.Loaded())
			assert.Nil(t, s.Adventure())
			msg := lastMessage(t, s)
			assert.Equal(t, msglog.Error, msg.Kind)
			assert.Contains(t, msg.Text, name+".ta:")
		})

		t.Run(name+" after a load", func(t *testing.T) {
			s := newTestSession(t)
			s.Dispatch(ctx, "load test")
			before := s.Adventure()
			require.NotNil(t, before)

			s.Dispatch(ctx, "load "+name)
			assert.True(t, s.Loaded())
			assert.Same(t, before, s.Adventure())

			s.Dispatch(ctx, "look")
			assert.Equal(t, "You are standing in a clearing.", lastMessage(t, s).Text)
		})
	}
}

func TestDispatch_LoadMissingFile(t *testing.T) {
	s := newTestSession(t)
	s.Dispatch(context.Background(), "load nowhere")

	assert.False(t, s.Loaded())
	msg := lastMessage(t, s)
	assert.Equal(t, msglog.Error, msg.Kind)
	assert.Contains(t, msg.Text, `could not load "nowhere"`)
}

func TestDispatch_LoadUsage(t *testing.T) {
	s := newTestSession(t)
	s.Dispatch(context.Background(), "load")
	assert.Equal(t, "error: usage: load <name>", lastMessage(t, s).Text)

	s.Dispatch(context.Background(), "look a b")
	assert.Equal(t, "error: usage: look [direction]", lastMessage(t, s).Text)
}

func TestDispatch_LookBeforeLoad(t *testing.T) {
	s := newTestSession(t)
	s.Dispatch(context.Background(), "look")
	assert.Equal(t, "error: no adventure loaded", lastMessage(t, s).Text)

	s.Dispatch(context.Background(), "map")
	assert.Equal(t, "error: no adventure loaded", lastMessage(t, s).Text)
}

func TestDispatch_BlankLineIsNoop(t *testing.T) {
	s := newTestSession(t)
	res := s.Dispatch(context.Background(), "   \t ")
	assert.False(t, res.Exit)
	assert.Zero(t, s.Log().Len())
}

func TestDispatch_UnknownCommand(t *testing.T) {
	s := newTestSession(t)
	s.Dispatch(context.Background(), "dance wildly")

	entries := s.Log().Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, msglog.Echo, entries[0].Kind)
	assert.Equal(t, "> dance wildly", entries[0].Text)
	assert.Equal(t, msglog.Error, entries[1].Kind)
	assert.True(t, strings.HasPrefix(entries[1].Text, "error: "+ErrUnknownCommand.Error()))
	assert.Contains(t, entries[1].Text, `"dance"`)
}

func TestDispatch_Clear(t *testing.T) {
	s := newTestSession(t)
	s.Dispatch(context.Background(), "help")
	require.NotZero(t, s.Log().Len())

	s.Dispatch(context.Background(), "CLEAR")
	assert.Zero(t, s.Log().Len())
}

func TestDispatch_Exit(t *testing.T) {
	s := newTestSession(t)
	assert.True(t, s.Dispatch(context.Background(), "exit").Exit)
	assert.True(t, s.Dispatch(context.Background(), "  Exit  ").Exit)
	assert.False(t, s.Dispatch(context.Background(), "help").Exit)
}

func TestDispatch_Help(t *testing.T) {
	s := newTestSession(t)
	s.Dispatch(context.Background(), "help")

	var all []string
	for _, m := range s.Log().Entries() {
		all = append(all, m.Text)
	}
	text := strings.Join(all, "\n")
	for _, c := range []string{"help", "load <name>", "look [direction]", "clear", "exit", "map", "list"} {
		assert.Contains(t, text, c)
	}
}

func TestDispatch_MapAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)

	s.Dispatch(ctx, "list")
	assert.Equal(t, "Adventures: baddir, manyrows, nosemi, nosmoor, test", lastMessage(t, s).Text)

	s.Dispatch(ctx, "load test")
	s.Dispatch(ctx, "map")
	entries := s.Log().Entries()
	var rows []string
	for _, m := range entries[len(entries)-adventure.MapSize:] {
		rows = append(rows, m.Text)
	}
	assert.Equal(t, []string{".....", ".....", "..S..", ".....", "....."}, rows)
}

type failingLoader struct{}

func (failingLoader) Load(context.Context, string) (*adventure.Adventure, error) {
	return nil, errors.New("boom")
}

func (failingLoader) List(context.Context) ([]string, error) {
	return nil, errors.New("disk on fire")
}

func TestDispatch_LoaderErrorsAreLogged(t *testing.T) {
	s := New(msglog.New(10), failingLoader{}, adventure.StartKey)

	s.Dispatch(context.Background(), "list")
	assert.Equal(t, "error: could not list adventures: disk on fire", lastMessage(t, s).Text)

	s.Dispatch(context.Background(), "load x")
	assert.Equal(t, `error: could not load "x": boom`, lastMessage(t, s).Text)
}
