// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclib

import (
	"strconv"

	"github.com/db47h/logicsim"
)

func nWay(name string, g logicsim.GateKind, ways int) *logicsim.Chip {
	if ways < 2 {
		panic(name + ": at least 2 inputs required")
	}
	ins := numbered(pIn, ways)
	b := logicsim.NewBuilder().Inputs(ids(ins...)...)
	prev := ins[0]
	for i := 1; i < ways; i++ {
		id := "g" + strconv.Itoa(i)
		b.Gate(logicsim.ElementID(id), g, "a="+out(prev)+", b="+out(ins[i]))
		prev = id
	}
	b.Output(pOut, out(prev))
	return chip(name+strconv.Itoa(ways)+"Way", b, ins, []string{pOut})
}

// AndNWay returns a N-Way AND gate.
//
//	Inputs: in0, in1, ... in<n-1>
//	Outputs: out
//	Function: out = in0 && in1 && ... && in<n-1>
//
func AndNWay(ways int) *logicsim.Chip { return nWay("AND", logicsim.And, ways) }

// OrNWay returns a N-Way OR gate.
//
//	Inputs: in0, in1, ... in<n-1>
//	Outputs: out
//	Function: out = in0 || in1 || ... || in<n-1>
//
func OrNWay(ways int) *logicsim.Chip { return nWay("OR", logicsim.Or, ways) }

// AndNWayFunc is the reference implementation of AndNWay.
//
func AndNWayFunc(ways int) *logicsim.FuncBox {
	return logicsim.NewFuncBox("AND"+strconv.Itoa(ways)+"WayFunc", numbered(pIn, ways), []string{pOut},
		func(in []bool) []bool {
			for _, v := range in {
				if !v {
					return []bool{false}
				}
			}
			return []bool{true}
		})
}

// OrNWayFunc is the reference implementation of OrNWay.
//
func OrNWayFunc(ways int) *logicsim.FuncBox {
	return logicsim.NewFuncBox("OR"+strconv.Itoa(ways)+"WayFunc", numbered(pIn, ways), []string{pOut},
		func(in []bool) []bool {
			for _, v := range in {
				if v {
					return []bool{true}
				}
			}
			return []bool{false}
		})
}

// GateFunc returns a FuncBox computing a built-in gate on digital levels.
//
func GateFunc(g logicsim.GateKind) *logicsim.FuncBox {
	var ins []string
	if g.Arity() == 1 {
		ins = []string{pIn}
	} else {
		ins = []string{pA, pB}
	}
	return logicsim.NewFuncBox(g.String()+"Func", ins, []string{pOut}, func(in []bool) []bool {
		vs := make([]logicsim.Value, len(in))
		for i, l := range in {
			vs[i] = logicsim.Bool(l)
		}
		return []bool{logicsim.Evaluate(g, vs...) == logicsim.One}
	})
}

// Nand builds a gate of the given kind out of NAND gates only.
//
//	Inputs: a, b (in for Not)
//	Outputs: out
//
func Nand(g logicsim.GateKind) *logicsim.Chip {
	b := logicsim.NewBuilder()
	ins := []string{pA, pB}
	nand := func(id, x, y string) { b.Gate(logicsim.ElementID(id), logicsim.Nand, "a="+out(x)+", b="+out(y)) }
	var res string
	switch g {
	case logicsim.Not:
		ins = []string{pIn}
		b.Inputs(pIn)
		nand("n", pIn, pIn)
		res = "n"
	case logicsim.And, logicsim.Nand:
		b.Inputs(pA, pB)
		nand("n", pA, pB)
		nand("and", "n", "n")
		res = "and"
		if g == logicsim.Nand {
			res = "n"
		}
	case logicsim.Or, logicsim.Nor:
		b.Inputs(pA, pB)
		nand("notA", pA, pA)
		nand("notB", pB, pB)
		nand("or", "notA", "notB")
		res = "or"
		if g == logicsim.Nor {
			nand("nor", "or", "or")
			res = "nor"
		}
	case logicsim.Xor, logicsim.Xnor:
		b.Inputs(pA, pB)
		nand("nandAB", pA, pB)
		nand("w0", pA, "nandAB")
		nand("w1", pB, "nandAB")
		nand("xor", "w0", "w1")
		res = "xor"
		if g == logicsim.Xnor {
			nand("xnor", "xor", "xor")
			res = "xnor"
		}
	default:
		panic("unknown gate kind " + g.String())
	}
	b.Output(pOut, out(res))
	return chip(g.String()+"FromNand", b, ins, []string{pOut})
}
