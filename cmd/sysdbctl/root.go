package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/sysdb/sysdb/store"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	logger *slog.Logger
	db     *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "sysdbctl",
	Short: "Drive an in-memory sysdb instance",
	Long: `sysdbctl is a command-line client for sysdb, the in-memory
system-information store and query engine implemented in this repository.
It runs the library in-process against a freshly seeded demo dataset; it
is not a network client for a separately running daemon.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		db = store.New(store.DefaultLimits(), logger)
		seedDemoData(db, logger)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress informational messages (query results and errors are still printed)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode.
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
