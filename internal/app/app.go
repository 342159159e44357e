package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/foamworks/foamctl/internal/ctxlog"
	"github.com/foamworks/foamctl/internal/dictionary"
	"github.com/foamworks/foamctl/internal/engine"
	"github.com/foamworks/foamctl/internal/foamtool"
	"github.com/foamworks/foamctl/internal/journal"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	logger  *slog.Logger
	service *dictionary.Service
	config  *Config
}

// NewApp is the constructor for the main application. Backend selection
// happens here, once; everything downstream only sees the facade. Logs
// go to logW so command output stays clean.
func NewApp(logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)

	backend, err := selectBackend(dictionary.Mode(cfg.Backend))
	if err != nil {
		return nil, err
	}
	logger.Debug("backend selected", "backend", backend.Name())

	var opts []dictionary.Option
	if !cfg.NoJournal {
		opts = append(opts, dictionary.WithJournal(journal.NewWriter()))
	}

	return &App{
		logger:  logger,
		service: dictionary.NewService(backend, opts...),
		config:  cfg,
	}, nil
}

// selectBackend resolves a mode to a concrete backend. Auto prefers
// the foamDictionary wrapper when the utility is on PATH.
func selectBackend(mode dictionary.Mode) (dictionary.Backend, error) {
	switch mode {
	case dictionary.ModeBuiltin:
		return engine.New(), nil
	case dictionary.ModeFoamDictionary:
		return foamtool.New()
	case dictionary.ModeAuto:
		if foamtool.Available() {
			if b, err := foamtool.New(); err == nil {
				return b, nil
			}
		}
		return engine.New(), nil
	}
	return nil, fmt.Errorf("unknown backend mode %q", mode)
}

// Service returns the dictionary facade.
func (a *App) Service() *dictionary.Service {
	return a.service
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Config returns the validated configuration the App was built with.
func (a *App) Config() *Config {
	return a.config
}

// BaseContext returns a context carrying the application logger. Every
// operation context derives from it.
func (a *App) BaseContext() context.Context {
	return ctxlog.WithLogger(context.Background(), a.logger)
}
