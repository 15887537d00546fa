// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/db47h/logicsim"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table <gate>",
	Short: "Print a gate's table over all logic values",
	Long: `Print the output of a built-in gate (and, or, not, nand, nor, xor, xnor)
for every combination of input logic values.`,
	Args: cobra.ExactArgs(1),
	RunE: printTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func printTable(cmd *cobra.Command, args []string) error {
	g, err := logicsim.ParseGateKind(args[0])
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if g.Arity() == 1 {
		fmt.Fprintln(w, "in\tout")
		for _, a := range logicsim.Values {
			fmt.Fprintf(w, "%v\t%v\n", a, logicsim.Evaluate(g, a))
		}
		return w.Flush()
	}
	fmt.Fprint(w, "a \\ b")
	for _, b := range logicsim.Values {
		fmt.Fprintf(w, "\t%v", b)
	}
	fmt.Fprintln(w)
	for _, a := range logicsim.Values {
		fmt.Fprint(w, a)
		for _, b := range logicsim.Values {
			fmt.Fprintf(w, "\t%v", logicsim.Evaluate(g, a, b))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
