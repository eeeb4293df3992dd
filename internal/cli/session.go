package cli

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/registrar/internal/config"
	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/seed"
	"github.com/roach88/registrar/internal/store"
)

// session is what one command invocation works with.
type session struct {
	cfg    config.Config
	logger *slog.Logger
	out    *OutputFormatter
	clock  seed.Clock
	store  *store.Store
}

// newSession loads configuration and sets up logging and output.
// It does not open the database; see openSession.
func newSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath, opts.EnvFile)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	if opts.Database != "" {
		cfg.Database = opts.Database
	}

	runID := uuid.Must(uuid.NewV7()).String()
	logger := newLogger(cmd.ErrOrStderr(), cfg.Log, opts.Verbose).With("run", runID)

	clock := opts.Clock
	if clock == nil {
		clock = seed.SystemClock{}
	}

	return &session{
		cfg:    cfg,
		logger: logger,
		out:    &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), RunID: runID},
		clock:  clock,
	}, nil
}

// openSession is newSession plus an open store. Callers must Close it.
func openSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	s, err := newSession(opts, cmd)
	if err != nil {
		return nil, err
	}
	if err := s.openStore(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) openStore() error {
	s.logger.Debug("opening database", "path", s.cfg.Database)
	st, err := store.Open(s.cfg.Database, store.WithLogger(s.logger))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	s.store = st
	return nil
}

func (s *session) Close() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Error("error closing database", "error", err)
	}
}

func (s *session) today() string {
	return records.FormatDate(s.clock.Now())
}

// storageError wraps a fatal store error for the exit code mapping.
func storageError(action string, err error) error {
	return WrapExitError(ExitCommandError, action, err)
}

func newLogger(w io.Writer, lc config.Log, verbose bool) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}
