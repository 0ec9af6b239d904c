package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/textadv/internal/msglog"
	"github.com/specialistvlad/textadv/internal/screen"
)

type lineResult struct {
	line string
	err  error
}

// Run executes the read-render-dispatch loop until the player exits, input
// ends, or ctx is cancelled. The screen is restored on every return path.
func (a *App) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancel(a.context(ctx))
	defer cancel()
	a.logger.Debug("App.Run method started.", "adventures_dir", a.config.AdventuresDir)

	defer func() {
		if rerr := a.renderer.Restore(); rerr != nil && err == nil {
			err = fmt.Errorf("failed to restore terminal: %w", rerr)
		}
		a.logger.Debug("App.Run method finished.")
	}()

	a.session.Log().Append(msglog.Info, `Welcome. Type "help" for a list of commands.`)
	if name := a.config.InitialAdventure; name != "" {
		if a.session.Dispatch(ctx, "load "+name).Exit {
			return nil
		}
	}

	lines := make(chan lineResult)
	// The reader goroutine may stay blocked in ReadLine after ctx is
	// cancelled; it ends with the process.
	go a.readLines(ctx, lines)

	for {
		if err := a.render(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			a.logger.Info("Interrupted, shutting down.")
			return nil
		case res := <-lines:
			if res.err != nil {
				if errors.Is(res.err, io.EOF) {
					a.logger.Info("Input closed, shutting down.")
					return nil
				}
				return fmt.Errorf("failed to read input: %w", res.err)
			}
			if a.session.Dispatch(ctx, res.line).Exit {
				return nil
			}
		}
	}
}

// render sizes the message log to the terminal and redraws it.
func (a *App) render() error {
	cols, rows := a.size()
	log := a.session.Log()
	log.Resize(screen.LogRows(rows))
	if err := a.renderer.Render(log.Entries(), cols, rows); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	return nil
}

func (a *App) readLines(ctx context.Context, out chan<- lineResult) {
	for {
		line, err := a.input.ReadLine()
		select {
		case out <- lineResult{line: line, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}
