package cli

import (
	"io"
	"log/slog"

	"github.com/roach88/pocketcalc/internal/calc"
	"github.com/roach88/pocketcalc/internal/config"
	"github.com/roach88/pocketcalc/internal/history"
	"github.com/roach88/pocketcalc/internal/render"
	"github.com/roach88/pocketcalc/internal/session"
)

// settings is the resolved configuration for one command run.
type settings struct {
	Config   config.Config
	Angle    calc.AngleMode
	Renderer *render.Renderer
}

// loadSettings reads --config (if any) and applies the flag overrides.
// Every failure here is a command error.
func loadSettings(opts *RootOptions) (*settings, error) {
	loader := config.NewLoader(opts.fs())

	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := loader.Load(opts.Config)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load config", err)
		}
		cfg = loaded
	}
	if opts.Angle != "" {
		cfg.AngleMode = opts.Angle
	}
	if opts.Locale != "" {
		cfg.Locale = opts.Locale
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid settings", err)
	}

	angle, _ := calc.ParseAngleMode(cfg.AngleMode)
	renderer, err := render.Parse(cfg.Locale)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid locale", err)
	}

	return &settings{Config: cfg, Angle: angle, Renderer: renderer}, nil
}

// newLogger builds the diagnostic logger. Logs go to w, never to stdout,
// so JSON output stays parseable.
func newLogger(opts *RootOptions, w io.Writer) *slog.Logger {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}

// openSession opens an in-memory history store and a session over it.
// The caller closes the store.
func openSession(set *settings, logger *slog.Logger) (*session.Session, *history.Store, error) {
	st, err := history.Open(history.InMemory)
	if err != nil {
		return nil, nil, WrapExitError(ExitFailure, "failed to open history", err)
	}
	sess := session.New(st, session.Options{
		AngleMode:    set.Angle,
		HistoryLimit: set.Config.HistoryLimit,
		Logger:       logger,
	})
	logger.Debug("session started",
		"session_id", sess.ID(),
		"angle_mode", set.Angle.String(),
		"locale", set.Renderer.Tag().String(),
	)
	return sess, st, nil
}
