package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/brk3/quit/internal/config"
	"github.com/brk3/quit/internal/logger"
	"github.com/brk3/quit/internal/storage"
	"github.com/brk3/quit/internal/storage/bolt"
	"github.com/brk3/quit/internal/tracker"
)

// app is what every command works against. It is built once per process in
// the root command's pre-run and handed to each subcommand.
type app struct {
	cfgPath    string
	listenAddr string
	cfg        *config.Config
	kv         storage.KV
	store      *tracker.Store
	now        func() time.Time
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfg == nil {
		var err error
		if a.cfgPath != "" {
			a.cfg, err = config.LoadFile(a.cfgPath)
		} else {
			a.cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if err := logger.Setup(a.cfg.LogLevel, a.cfg.LogFormat); err != nil {
			return err
		}
	}

	if !needsStore(cmd) {
		return nil
	}
	return a.openStore()
}

// openStore opens the local database once. Commands annotated with
// skip-store call it themselves when they turn out to need it.
func (a *app) openStore() error {
	if a.store != nil {
		return nil
	}
	kv, err := bolt.OpenWithTimeout(a.cfg.DBPath, a.cfg.DBTimeout)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	a.kv = kv
	a.store = tracker.Open(kv, tracker.WithKey(a.cfg.StorageKey))
	logger.Debug("Opened store", "path", a.cfg.DBPath, "habits", a.store.Len())
	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) error {
	if a.kv == nil {
		return nil
	}
	err := a.kv.Close()
	a.kv = nil
	return err
}

const skipStoreAnnotation = "skip-store"

func needsStore(cmd *cobra.Command) bool {
	_, skip := cmd.Annotations[skipStoreAnnotation]
	return !skip
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quit",
		Short: "Track how long you've been free of a habit",
		Long: `
	Quit counts the days, hours, minutes and seconds since you stopped a habit,
	with a message for every milestone along the way. Everything is stored in a
	local database file.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default $QUIT_CONFIG or ./config.yaml)")

	rootCmd.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
		newOptionsCmd(),
		newWatchCmd(a),
		newServerCmd(a),
		newNudgeCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

func Execute() {
	a := &app{now: time.Now}
	rootCmd := newRootCmd(a)
	rootCmd.SetOut(os.Stdout)
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
