package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/textadv/internal/adventure"
	"github.com/specialistvlad/textadv/internal/ctxlog"
	"github.com/specialistvlad/textadv/internal/msglog"
	"github.com/specialistvlad/textadv/internal/screen"
	"github.com/specialistvlad/textadv/internal/session"
)

// Terminal bundles the collaborators the App talks to.
type Terminal struct {
	In   io.Reader
	Out  io.Writer
	Size screen.SizeFunc
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	config   *Config
	logger   *slog.Logger
	logFile  io.Closer
	input    *screen.LineReader
	renderer *screen.Renderer
	size     screen.SizeFunc
	session  *session.Session
}

// NewApp is the constructor for the main application. Diagnostic logs go to
// cfg.LogFile so they never draw over the game viewport.
func NewApp(cfg *Config, t Terminal) (*App, error) {
	var logW io.Writer = io.Discard
	var logFile io.Closer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logW, logFile = f, f
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	size := t.Size
	if size == nil {
		size = func() (int, int) { return 80, 24 }
	}
	_, rows := size()

	log := msglog.New(screen.LogRows(rows))
	loader := adventure.NewLoader(cfg.AdventuresDir)
	sess := session.New(log, loader, adventure.Key(cfg.StartRoom[0]))

	return &App{
		config:  cfg,
		logger:  logger,
		logFile: logFile,
		input:   screen.NewLineReader(t.In),
		renderer: screen.NewRenderer(t.Out, screen.Options{
			Border:     cfg.Border,
			Timestamps: cfg.Timestamps,
			Color:      cfg.Color,
		}),
		size:    size,
		session: sess,
	}, nil
}

// Session returns the application's session. This is primarily for testing.
func (a *App) Session() *session.Session {
	return a.session
}

// Close releases the log file, if any.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}

// context returns ctx carrying the app's logger.
func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
