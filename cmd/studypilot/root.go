package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"studypilot/internal/config"
	"studypilot/internal/domain/repositories"
	"studypilot/internal/notify"
	"studypilot/internal/preferences"
	"studypilot/internal/repository/memory"
	"studypilot/internal/repository/sqlite"
)

// app carries the state shared by every subcommand
type app struct {
	out    io.Writer
	errOut io.Writer

	home      string
	ephemeral bool
	verbose   bool

	cfg      *config.Config
	logger   *slog.Logger
	provider *preferences.Provider
	notifier notify.Notifier
	slots    repositories.SlotStore
	db       *sqlite.DB
}

// skipSlotsAnnotation marks commands that never read or write preference slots
const skipSlotsAnnotation = "studypilot/skip-slots"

// newRootCmd builds the command tree. The returned close func releases the
// slot database and must be called after Execute, whether or not it failed.
func newRootCmd(out, errOut io.Writer) (*cobra.Command, func() error) {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "studypilot",
		Short: "Manage StudyPilot preferences on this device",
		Long: `Manage the StudyPilot preferences stored on this device.

Preferences live in $STUDYPILOT_HOME/slots.db (default ~/.studypilot).
Use --ephemeral to work against an in-memory store that is discarded on exit.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.open,
	}

	root.PersistentFlags().StringVar(&a.home, "home", "", "directory holding slots.db (default $STUDYPILOT_HOME)")
	root.PersistentFlags().BoolVar(&a.ephemeral, "ephemeral", false, "keep preferences in memory only")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log storage diagnostics to stderr")

	root.AddCommand(
		newPrefsCmd(a),
		newBannerCmd(a),
		newMarkersCmd(a),
		newProgressCmd(a),
	)
	return root, a.close
}

func (a *app) open(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()
	a.cfg = config.Load()

	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
	a.notifier = notify.NewWriterNotifier(a.out)

	provider, err := preferences.NewProvider(a.logger)
	if err != nil {
		return err
	}
	a.provider = provider

	if cmd.Annotations[skipSlotsAnnotation] == "true" {
		return nil
	}

	if a.ephemeral {
		a.slots = memory.NewSlotStore()
		return nil
	}

	home := a.home
	if home == "" {
		home = a.cfg.Home
	}
	db, err := sqlite.Open(filepath.Join(home, "slots.db"))
	if err != nil {
		return fmt.Errorf("open local preferences: %w", err)
	}
	a.db = db
	a.slots = db.Scope(sqlite.LocalScope)
	a.logger.Debug("local preferences opened", "path", db.Path())
	return nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
