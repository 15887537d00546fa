// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package scenario

import (
	"strings"
	"testing"

	"github.com/db47h/logicsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adder = `
config:
  input_default: pullUp
elements:
  - {id: a, kind: input}
  - {id: b, kind: input}
  - {id: cin, kind: input}
  - {id: fa, kind: part, part: fulladder, connect: "a=a.out, b=b.out, cin=cin.out"}
  - {id: s, kind: output, connect: "in=fa.s"}
  - {id: cout, kind: output, connect: fa.cout}
  - {id: n, kind: gate, gate: NOT, connect: "in=cout.in"}
  - {id: ncout, kind: output}
wires:
  - [n.out, ncout.in]
inputs: {a: 1, b: 0}
expect: {s: 0, cout: 1, ncout: 0}
`

func TestScenario(t *testing.T) {
	f, err := Load(strings.NewReader(adder))
	require.NoError(t, err)
	assert.Equal(t, logicsim.PullUp, f.Config.InputDefault)
	assert.Equal(t, []string{"cout", "ncout", "s"}, f.Outputs())

	sim, err := f.Simulator()
	require.NoError(t, err)
	// cin is pulled up
	ms, err := f.Check(sim)
	require.NoError(t, err)
	assert.Empty(t, ms)

	require.NoError(t, sim.SetInputValue("cin", logicsim.Zero))
	ms, err = f.Check(sim)
	require.NoError(t, err)
	assert.Equal(t, []Mismatch{
		{"cout", logicsim.One, logicsim.Zero},
		{"ncout", logicsim.Zero, logicsim.One},
		{"s", logicsim.Zero, logicsim.One},
	}, ms)
}

func TestScenario_parts(t *testing.T) {
	const and3 = `
elements:
  - {id: x, kind: input}
  - {id: y, kind: input}
  - {id: z, kind: input}
  - {id: g, kind: part, part: and, ways: 3, connect: "in0=x.out, in1=y.out, in2=z.out"}
  - {id: add, kind: part, part: adder, connect: "a0=x.out, b0=y.out"} # other inputs float
  - {id: o, kind: output, connect: g.out}
  - {id: c, kind: output, connect: add.c}
inputs: {x: 1, y: 1, z: 1}
expect: {o: 1, c: floating}
`
	f, err := Load(strings.NewReader(and3))
	require.NoError(t, err)
	sim, err := f.Simulator()
	require.NoError(t, err)
	ms, err := f.Check(sim)
	require.NoError(t, err)
	assert.Empty(t, ms)
	assert.Contains(t, Parts(), "mux")
}

func TestLoad_errors(t *testing.T) {
	td := []struct {
		name string
		in   string
	}{
		{"unknown field", "elements: [{id: a, kind: input, color: red}]"},
		{"no elements", "inputs: {a: 1}"},
		{"bad kind", "elements: [{id: a, kind: resistor}]"},
		{"missing id", "elements: [{kind: input}]"},
		{"gate without kind", "elements: [{id: g, kind: gate}]"},
		{"unknown part", "elements: [{id: p, kind: part, part: alu}]"},
		{"one way and", "elements: [{id: p, kind: part, part: and, ways: 1}]"},
		{"bad value", "elements: [{id: a, kind: input}]\ninputs: {a: 2}"},
		{"bad config", "config: {input_default: 1}\nelements: [{id: a, kind: input}]"},
		{"empty wire end", "elements: [{id: a, kind: input}]\nwires: [[a.out, '']]"},
	}
	for _, d := range td {
		_, err := Load(strings.NewReader(d.in))
		assert.Error(t, err, d.name)
	}
}

func TestSimulator_errors(t *testing.T) {
	td := []struct {
		name string
		in   string
	}{
		{"input connect", "elements: [{id: a, kind: input, connect: 'x=a.out'}]"},
		{"bad gate", "elements: [{id: g, kind: gate, gate: mux}]"},
		{"bad reference", "elements: [{id: o, kind: output, connect: 'in=nope.out'}]"},
		{"bad wire", "elements: [{id: a, kind: input}]\nwires: [[a.out, a.in]]"},
		{"analog input", "elements: [{id: a, kind: input}]\ninputs: {a: pullUp}"},
		{"not an input", "elements: [{id: o, kind: output}]\ninputs: {o: 1}"},
	}
	for _, d := range td {
		f, err := Load(strings.NewReader(d.in))
		require.NoError(t, err, d.name)
		_, err = f.Simulator()
		assert.Error(t, err, d.name)
	}
}
