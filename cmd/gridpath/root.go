package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/internal/metrics"
)

// Shared state, populated by the root command before any subcommand runs.
var (
	cfg       config.Config
	logger    *slog.Logger
	collector *metrics.Collector
)

var rootCmd = &cobra.Command{
	Use:   "gridpath",
	Short: "gridpath finds shortest paths through puzzle grids",
	Long: `gridpath runs Dijkstra searches over 2D grids parsed from text files.
It solves corrupted-memory mazes and counts shortcuts on race tracks.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Metrics.Textfile == "" {
			return nil
		}
		if err := collector.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		logger.Debug("metrics written", "path", cfg.Metrics.Textfile)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "gridpath.yaml", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this textfile")
}

// setup loads the configuration, applies flag overrides and builds the logger
// and metrics collector.
func setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if mf, _ := cmd.Flags().GetString("metrics-file"); mf != "" {
		cfg.Metrics.Textfile = mf
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger = logging.New(level, cmd.ErrOrStderr())
	collector = metrics.New()

	return nil
}

// overrideInt copies a flag into dst when the user set it explicitly.
func overrideInt(cmd *cobra.Command, name string, dst *int) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetInt(name)
	}
}
