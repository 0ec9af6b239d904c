package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/textadv/internal/app"
	"github.com/specialistvlad/textadv/internal/settings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("textadv", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
textadv - a terminal text-adventure runner.

Usage:
  textadv [options] [ADVENTURE]

Arguments:
  ADVENTURE
    Name of an adventure (without .ta) to load on start.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL settings file. Defaults to ./"+settings.DefaultFile+" when present.")
	advFlag := flagSet.String("adventures", "", "Directory containing .ta adventure files.")
	startFlag := flagSet.String("start-room", "", "Key of the room a loaded adventure starts in.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFileFlag := flagSet.String("log-file", "", "File to append diagnostic logs to. Logs are discarded when empty.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable coloured output.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one adventure name may be given"}
	}
	slog.Debug("Arguments parsed successfully.")

	ctx := context.Background()
	path, optional := *configFlag, false
	if path == "" {
		path, optional = settings.DefaultFile, true
	}
	s, err := settings.LoadFile(ctx, path, settings.Default(), optional)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	s, err = settings.ApplyEnv(s, nil)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *advFlag != "" {
		s.AdventuresDir = *advFlag
	}
	if *startFlag != "" {
		s.StartRoom = *startFlag
	}
	slog.Debug("Settings merged.", "settings", s)

	config, err := app.NewConfig(app.Config{
		AdventuresDir:    s.AdventuresDir,
		StartRoom:        s.StartRoom,
		InitialAdventure: flagSet.Arg(0),
		Border:           s.Border,
		Timestamps:       s.Timestamps,
		Color:            !*noColorFlag,
		LogFormat:        strings.ToLower(*logFormatFlag),
		LogLevel:         strings.ToLower(*logLevelFlag),
		LogFile:          *logFileFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
