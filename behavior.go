// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// common pin names
const (
	pinIn  = "in"
	pinOut = "out"
)

// GateKind is the kind of a built-in gate.
//
type GateKind uint8

// Built-in gates.
//
const (
	And GateKind = iota + 1
	Or
	Not
	Nand
	Nor
	Xor
	Xnor
)

type gateSpec struct {
	name  string
	arity int
	// controlling level: any input at that level determines the output.
	ctl    bool
	hasCtl bool
	invert bool
	fn     func(a, b bool) bool
}

var gates = [...]gateSpec{
	And:  {name: "and", arity: 2, ctl: false, hasCtl: true, fn: func(a, b bool) bool { return a && b }},
	Or:   {name: "or", arity: 2, ctl: true, hasCtl: true, fn: func(a, b bool) bool { return a || b }},
	Not:  {name: "not", arity: 1, invert: true, fn: func(a, _ bool) bool { return a }},
	Nand: {name: "nand", arity: 2, ctl: false, hasCtl: true, invert: true, fn: func(a, b bool) bool { return a && b }},
	Nor:  {name: "nor", arity: 2, ctl: true, hasCtl: true, invert: true, fn: func(a, b bool) bool { return a || b }},
	Xor:  {name: "xor", arity: 2, fn: func(a, b bool) bool { return a != b }},
	Xnor: {name: "xnor", arity: 2, invert: true, fn: func(a, b bool) bool { return a != b }},
}

// GateKinds lists all built-in gates.
//
var GateKinds = []GateKind{And, Or, Not, Nand, Nor, Xor, Xnor}

func (g GateKind) spec() *gateSpec {
	if g == 0 || int(g) >= len(gates) {
		return nil
	}
	return &gates[g]
}

func (g GateKind) String() string {
	if s := g.spec(); s != nil {
		return s.name
	}
	return "GateKind(" + strconv.Itoa(int(g)) + ")"
}

// ParseGateKind returns the gate kind with the given name (case insensitive).
//
func ParseGateKind(name string) (GateKind, error) {
	name = strings.ToLower(name)
	for _, g := range GateKinds {
		if g.spec().name == name {
			return g, nil
		}
	}
	return 0, errors.Errorf("unknown gate kind %q", name)
}

// Arity returns the number of inputs of the gate, or 0 for an invalid
// GateKind.
//
func (g GateKind) Arity() int {
	if s := g.spec(); s != nil {
		return s.arity
	}
	return 0
}

// Controlling returns the input level that determines the output of the gate on
// its own, if any (0 for And/Nand, 1 for Or/Nor).
//
func (g GateKind) Controlling() (level bool, ok bool) {
	if s := g.spec(); s != nil {
		return s.ctl, s.hasCtl
	}
	return false, false
}

// Evaluate computes the output of gate g given its input values.
//
// Pulls are read as their level. An input at the controlling level of the gate
// determines the output regardless of other inputs, including Floating and
// Error ones: And(0, floating) is 0, not floating, and an And gate with an
// input at 0 ignores a feedback loop on its other input.
// Otherwise any non-digital input forces the output to the worst of the
// non-digital inputs, with precedence Error > Pending > Floating.
//
// Missing inputs are Floating and extra inputs are ignored.
//
func Evaluate(g GateKind, in ...Value) Value {
	return EvaluateLazy(g, func(i int) Value {
		if i < len(in) {
			return in[i]
		}
		return Floating
	})
}

// EvaluateLazy is like Evaluate but fetches inputs on demand, in pin order.
// Evaluation stops at the first input at the gate's controlling level, so
// remaining inputs are never requested.
//
func EvaluateLazy(g GateKind, get func(i int) Value) Value {
	s := g.spec()
	if s == nil {
		return Error
	}
	var (
		acc     bool
		bad     Value
		poison  bool
		started bool
	)
	for i := 0; i < s.arity; i++ {
		v := get(i)
		l, ok := v.Level()
		if !ok {
			if !poison {
				bad, poison = v, true
			} else {
				bad = worst(bad, v)
			}
			continue
		}
		if s.hasCtl && l == s.ctl {
			return Bool(s.ctl != s.invert)
		}
		if !started {
			acc, started = l, true
		} else {
			acc = s.fn(acc, l)
		}
	}
	if poison {
		return bad
	}
	return Bool(acc != s.invert)
}
