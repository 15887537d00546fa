// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package logicsim provides the simulation engine of a digital logic circuit
editor.

A circuit is a Topology of elements (inputs, outputs, gates and black boxes)
whose pins are joined by conductors. Pins transitively joined by conductors
form a node, and every node resolves to one of seven logic values: 0, 1,
pullUp, pullDown, pending, error or floating. Floating nodes, conflicting
drivers and feedback loops are values, not errors: only a malformed topology
is reported as an error (ErrInvalidTopology).

Values are computed lazily: querying a node evaluates only the part of the
circuit it depends on, and results are memoized until the next topology or
input change. Gates evaluate their inputs in pin order and stop at the first
controlling input, so an And gate with an input at 0 resolves to 0 even if
its other input is caught in a feedback loop. Loops that do not settle resolve
to error.

The Simulator type is the entry point for editors:

	t, err := logicsim.NewBuilder().
		Inputs("a", "b").
		Gate("g", logicsim.And, "a=a.out, b=b.out").
		Output("out", "g.out").
		Topology()
	if err != nil {
		// handle error
	}
	sim, err := logicsim.New(t, logicsim.DefaultConfig())
	if err != nil {
		// handle error
	}
	sim.SetInputValue("a", logicsim.One)
	sim.SetInputValue("b", logicsim.Zero)
	v, _ := sim.GetOutputValue("out") // v == logicsim.Zero

*/
package logicsim
