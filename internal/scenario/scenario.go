// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package scenario loads circuit scenarios from YAML files: a circuit, input
// values and expected output values. Scenarios drive the logicsim command
// and test fixtures.
//
//	config:
//	  input_default: pullDown
//	elements:
//	  - {id: a, kind: input}
//	  - {id: b, kind: input}
//	  - {id: g, kind: gate, gate: and, connect: "a=a.out, b=b.out"}
//	  - {id: o, kind: output, connect: "in=g.out"}
//	wires:
//	  - [a.out, b.out]
//	inputs: {a: 1, b: 0}
//	expect: {o: 0}
//
package scenario

import (
	"io"
	"sort"
	"strings"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/logiclib"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Element describes an element of the circuit.
//
type Element struct {
	ID   string `yaml:"id" validate:"required"`
	Kind string `yaml:"kind" validate:"required,oneof=input output gate part"`
	// gate kind, for gates
	Gate string `yaml:"gate" validate:"required_if=Kind gate"`
	// part name, for parts
	Part string `yaml:"part" validate:"required_if=Kind part"`
	// input count for n-way parts, or width for adders
	Ways int `yaml:"ways" validate:"omitempty,min=1,max=32"`
	// connection list, like "a=in1.out, b=g2.out"
	Connect string `yaml:"connect"`
}

// File is the content of a scenario file.
//
type File struct {
	Config   logicsim.Config           `yaml:"config" validate:"-"`
	Elements []Element                 `yaml:"elements" validate:"required,dive"`
	Wires    [][2]string               `yaml:"wires" validate:"dive,dive,required"`
	Inputs   map[string]logicsim.Value `yaml:"inputs"`
	Expect   map[string]logicsim.Value `yaml:"expect"`
}

// A Mismatch is an output whose value differs from the expected one.
//
type Mismatch struct {
	Output   string
	Expected logicsim.Value
	Got      logicsim.Value
}

var validate = validator.New()

var parts = map[string]func(ways int) logicsim.BlackBox{
	"mux":       func(int) logicsim.BlackBox { return logiclib.Mux() },
	"dmux":      func(int) logicsim.BlackBox { return logiclib.DMux() },
	"halfadder": func(int) logicsim.BlackBox { return logiclib.HalfAdder() },
	"fulladder": func(int) logicsim.BlackBox { return logiclib.FullAdder() },
	"adder":     func(n int) logicsim.BlackBox { return logiclib.AdderN(n) },
	"and":       func(n int) logicsim.BlackBox { return logiclib.AndNWay(n) },
	"or":        func(n int) logicsim.BlackBox { return logiclib.OrNWay(n) },
}

var defaultWays = map[string]int{"adder": 4, "and": 2, "or": 2}

// Parts returns the names of the available parts.
//
func Parts() []string {
	ns := make([]string, 0, len(parts))
	for n := range parts {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

// Load reads and validates a scenario.
//
func Load(r io.Reader) (*File, error) {
	f := &File{Config: logicsim.DefaultConfig()}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		return nil, errors.Wrap(err, "decode scenario")
	}
	if err := validate.Struct(f); err != nil {
		return nil, errors.Wrap(err, "invalid scenario")
	}
	if err := f.Config.Validate(); err != nil {
		return nil, err
	}
	for _, e := range f.Elements {
		if e.Kind != "part" {
			continue
		}
		if _, ok := parts[e.Part]; !ok {
			return nil, errors.Errorf("element %s: unknown part %q", e.ID, e.Part)
		}
		if e.Part == "and" || e.Part == "or" {
			if e.Ways == 1 {
				return nil, errors.Errorf("element %s: %s part needs at least 2 ways", e.ID, e.Part)
			}
		}
	}
	return f, nil
}

// Topology builds the scenario's circuit.
//
func (f *File) Topology() (*logicsim.Topology, error) {
	b := logicsim.NewBuilder()
	for _, e := range f.Elements {
		id := logicsim.ElementID(e.ID)
		switch e.Kind {
		case "input":
			b.Inputs(id)
			if e.Connect != "" {
				return nil, errors.Errorf("element %s: inputs take no connection list, use wires", e.ID)
			}
		case "output":
			b.Output(id, refOf(e.Connect))
		case "gate":
			g, err := logicsim.ParseGateKind(e.Gate)
			if err != nil {
				return nil, errors.Wrapf(err, "element %s", e.ID)
			}
			b.Gate(id, g, e.Connect)
		case "part":
			n := e.Ways
			if n == 0 {
				n = defaultWays[e.Part]
			}
			b.Box(id, parts[e.Part](n), e.Connect)
		}
	}
	for _, w := range f.Wires {
		b.Wire(w[0], w[1])
	}
	return b.Topology()
}

// refOf accepts either "in=x.out" or "x.out" for outputs.
func refOf(conn string) string {
	if _, ref, ok := strings.Cut(conn, "="); ok {
		return strings.TrimSpace(ref)
	}
	return strings.TrimSpace(conn)
}

// Simulator builds a simulator for the scenario and applies its input values.
//
func (f *File) Simulator(opts ...logicsim.Option) (*logicsim.Simulator, error) {
	t, err := f.Topology()
	if err != nil {
		return nil, err
	}
	sim, err := logicsim.New(t, f.Config, opts...)
	if err != nil {
		return nil, err
	}
	for _, id := range sortedKeys(f.Inputs) {
		if err := sim.SetInputValue(logicsim.ElementID(id), f.Inputs[id]); err != nil {
			return nil, err
		}
	}
	return sim, nil
}

// Outputs returns the ids of all output elements in the scenario, sorted.
//
func (f *File) Outputs() []string {
	var r []string
	for _, e := range f.Elements {
		if e.Kind == "output" {
			r = append(r, e.ID)
		}
	}
	sort.Strings(r)
	return r
}

// Check compares the expected output values against sim.
//
func (f *File) Check(sim *logicsim.Simulator) ([]Mismatch, error) {
	var ms []Mismatch
	for _, id := range sortedKeys(f.Expect) {
		v, err := sim.GetOutputValue(logicsim.ElementID(id))
		if err != nil {
			return nil, err
		}
		if exp := f.Expect[id]; v != exp {
			ms = append(ms, Mismatch{id, exp, v})
		}
	}
	return ms, nil
}

func sortedKeys(m map[string]logicsim.Value) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
