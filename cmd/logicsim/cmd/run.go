// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/internal/scenario"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var check bool

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Simulate a scenario and print its outputs",
	Long: `Build the circuit described in a scenario file, apply its input values and
print the value of every output element.

Configuration from --config overrides the scenario's own config section.

Available parts for elements of kind "part": mux, dmux, halfadder, fulladder,
adder (ways = width), and, or (ways = input count).`,
	Args: cobra.ExactArgs(1),
	RunE: runScenario,
}

func init() {
	runCmd.Flags().BoolVar(&check, "check", false, "fail if outputs differ from the scenario's expectations")
	rootCmd.AddCommand(runCmd)
}

func runScenario(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "open scenario")
	}
	defer f.Close()
	sc, err := scenario.Load(f)
	if err != nil {
		return errors.Wrap(err, args[0])
	}
	if configFile != "" {
		if sc.Config, err = loadConfig(); err != nil {
			return err
		}
	}
	log := newLogger(cmd.ErrOrStderr(), sc.Config)
	sim, err := sc.Simulator(logicsim.WithLogger(log))
	if err != nil {
		return errors.Wrap(err, args[0])
	}
	log.Debug("circuit loaded", "scenario", args[0], "version", sim.Version())

	out := cmd.OutOrStdout()
	for _, id := range sc.Outputs() {
		v, err := sim.GetOutputValue(logicsim.ElementID(id))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%v\n", id, v)
	}
	if !check {
		return nil
	}
	ms, err := sc.Check(sim)
	if err != nil {
		return err
	}
	for _, m := range ms {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: expected %v, got %v\n", m.Output, m.Expected, m.Got)
	}
	if len(ms) > 0 {
		return errors.Errorf("%d output(s) differ from expectations", len(ms))
	}
	return nil
}
