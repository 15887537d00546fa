// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "logicsim",
	Short: "Digital logic circuit simulator",
	Long: `Run digital logic circuits described in scenario files and inspect the
values of their outputs.

Examples:
  logicsim run adder.yaml             # Print the outputs of a scenario
  logicsim run --check adder.yaml     # Fail if outputs differ from expectations
  logicsim table nand                 # Print a gate's table over all logic values`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML configuration file")
}

// loadConfig returns the configuration from the --config file, or the default
// configuration.
func loadConfig() (logicsim.Config, error) {
	if configFile == "" {
		return logicsim.DefaultConfig(), nil
	}
	f, err := os.Open(configFile)
	if err != nil {
		return logicsim.Config{}, errors.Wrap(err, "open configuration")
	}
	defer f.Close()
	return logicsim.LoadConfig(f)
}

func newLogger(w io.Writer, cfg logicsim.Config) *slog.Logger {
	lvl := cfg.SlogLevel()
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
