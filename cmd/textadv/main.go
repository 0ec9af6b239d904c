package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/textadv/internal/app"
	"github.com/specialistvlad/textadv/internal/cli"
	"github.com/specialistvlad/textadv/internal/screen"
)

// main is the entrypoint for the textadv application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// SIGINT and SIGQUIT end the game cleanly with exit code 0.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGQUIT)
	defer stop()

	term := app.Terminal{
		In:   os.Stdin,
		Out:  os.Stdout,
		Size: screen.HostSize(os.Stdout),
	}

	// The real main function handles errors and exit codes.
	if err := run(ctx, term, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, term app.Terminal, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Anything that panics past this point is reported as a start-up or
	// runtime failure instead of a stack trace over the game screen.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("textadv panicked: %v", r)
		}
	}()

	a, err := app.NewApp(appConfig, term)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run(ctx)
}
