package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	urfavecli "github.com/urfave/cli/v2"

	"github.com/KirkDiggler/scoretracker/internal/services/game"
	"github.com/KirkDiggler/scoretracker/internal/services/messaging"
	"github.com/KirkDiggler/scoretracker/internal/services/persistence"
)

// flushTimeout bounds the final save after each command
const flushTimeout = 5 * time.Second

// Options are the global flags a command runs with
type Options struct {
	// ConfigPath is the YAML config file
	ConfigPath string

	// FilePath is the auto-save file; empty leaves the file tier off
	FilePath string

	// ImportPath is the file read by import
	ImportPath string
}

// Services are the dependencies a command runs against
type Services struct {
	Game        game.Service
	Persistence persistence.Service

	// Gatherer backs the /metrics endpoint during play; may be nil
	Gatherer       prometheus.Gatherer
	MetricsAddress string

	// Close releases storage connections; may be nil
	Close func() error
}

// Bootstrap builds the services for one run of the tracker
type Bootstrap func(ctx context.Context, opts Options) (*Services, error)

// Config holds the configuration for the command line app
type Config struct {
	Bootstrap Bootstrap
	Messages  messaging.Service

	// In feeds the interactive session; defaults to stdin
	In io.Reader

	// Out receives all output; defaults to stdout
	Out io.Writer

	Logger *slog.Logger
}

// App is the score tracker command line
type App struct {
	cli       *urfavecli.App
	bootstrap Bootstrap
	messages  messaging.Service
	in        io.Reader
	out       io.Writer
	logger    *slog.Logger

	// svc is set while a command (or a play session) is running
	svc *Services
}

// New creates the command line app
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Bootstrap == nil {
		return nil, errors.New("bootstrap cannot be nil")
	}
	if cfg.Messages == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	a := &App{
		bootstrap: cfg.Bootstrap,
		messages:  cfg.Messages,
		in:        cfg.In,
		out:       cfg.Out,
		logger:    cfg.Logger,
	}
	if a.in == nil {
		a.in = os.Stdin
	}
	if a.out == nil {
		a.out = os.Stdout
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}

	a.cli = &urfavecli.App{
		Name:      "tracker",
		Usage:     "keep score for games won by hitting the target exactly",
		Writer:    a.out,
		ErrWriter: a.out,

		// team specs carry commas
		DisableSliceFlagSeparator: true,

		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
			},
			&urfavecli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "auto-save the game to this file",
				EnvVars: []string{"SCORETRACKER_STORAGE_AUTO_SAVE_FILE"},
			},
		},
		Commands: a.commands(),
		Action: func(c *urfavecli.Context) error {
			if c.Args().Present() {
				return fmt.Errorf("unknown command %q", c.Args().First())
			}
			return urfavecli.ShowAppHelp(c)
		},
	}

	return a, nil
}

// Run executes one command line. Errors are printed as friendly messages
// before being returned.
func (a *App) Run(ctx context.Context, args []string) error {
	err := a.cli.RunContext(ctx, args)
	if err != nil {
		a.printError(ctx, err)
	}
	return err
}

func (a *App) printError(ctx context.Context, err error) {
	out, mErr := a.messages.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if mErr != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, out.Message)
}

func (a *App) options(c *urfavecli.Context) Options {
	return Options{
		ConfigPath: c.String("config"),
		FilePath:   c.String("file"),
		ImportPath: c.String("from"),
	}
}

// with runs fn against a bootstrapped, resumed game and saves the result.
// Inside a play session the session's services are reused.
func (a *App) with(fn func(c *urfavecli.Context) error) urfavecli.ActionFunc {
	return func(c *urfavecli.Context) error {
		if a.svc != nil {
			return fn(c)
		}

		ctx := c.Context
		opts := a.options(c)

		svc, err := a.bootstrap(ctx, opts)
		if err != nil {
			return fmt.Errorf("failed to start tracker: %w", err)
		}

		runCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = svc.Persistence.Run(runCtx)
		}()

		a.svc = svc
		defer func() {
			a.settle(ctx)
			cancel()
			<-done

			if svc.Close != nil {
				if err := svc.Close(); err != nil {
					a.logger.WarnContext(ctx, "Failed to close storage", slog.Any("error", err))
				}
			}
			a.svc = nil
		}()

		if err := a.resume(ctx, opts); err != nil {
			return err
		}
		return fn(c)
	}
}

// settle waits for queued saves and shows the notices they raised
func (a *App) settle(ctx context.Context) {
	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
	defer cancel()

	if err := a.svc.Persistence.Flush(flushCtx); err != nil {
		a.logger.WarnContext(ctx, "Save did not finish", slog.Any("error", err))
	}
	a.printNotices(a.svc.Persistence.Notices())
}

// resume restores the saved game. An auto-save file, when given, is the
// newest copy and wins over the fallback store.
func (a *App) resume(ctx context.Context, opts Options) error {
	if _, err := a.svc.Game.Resume(ctx); err != nil {
		return err
	}

	if opts.FilePath == "" {
		return nil
	}

	data, err := os.ReadFile(opts.FilePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		a.logger.WarnContext(ctx, "Could not read auto-save file", slog.String("file", opts.FilePath), slog.Any("error", err))
	case len(data) > 0:
		if _, err := a.svc.Game.LoadGame(ctx, &game.LoadGameInput{Data: data}); err != nil {
			a.logger.WarnContext(ctx, "Ignoring unreadable auto-save file", slog.String("file", opts.FilePath), slog.Any("error", err))
		}
	}

	if _, err := a.svc.Game.SetupAutoSave(ctx, &game.SetupAutoSaveInput{}); err != nil {
		a.logger.WarnContext(ctx, "Auto-save unavailable", slog.Any("error", err))
	}
	return nil
}
