// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclib

import (
	"github.com/db47h/logicsim"
)

// Mux returns a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux() *logicsim.Chip {
	b := logicsim.NewBuilder().
		Inputs(pA, pB, pSel).
		Gate("notSel", logicsim.Not, "in=sel.out").
		Gate("w0", logicsim.And, "a=a.out, b=notSel.out").
		Gate("w1", logicsim.And, "a=b.out, b=sel.out").
		Gate("or", logicsim.Or, "a=w0.out, b=w1.out").
		Output(pOut, "or.out")
	return chip("MUX", b, []string{pA, pB, pSel}, []string{pOut})
}

// MuxFunc is the reference implementation of Mux.
//
func MuxFunc() *logicsim.FuncBox {
	return logicsim.NewFuncBox("MUXFunc", []string{pA, pB, pSel}, []string{pOut}, func(in []bool) []bool {
		if in[2] {
			return []bool{in[1]}
		}
		return []bool{in[0]}
	})
}

// DMux returns a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux() *logicsim.Chip {
	b := logicsim.NewBuilder().
		Inputs(pIn, pSel).
		Gate("notSel", logicsim.Not, "in=sel.out").
		Gate("ga", logicsim.And, "a=in.out, b=notSel.out").
		Gate("gb", logicsim.And, "a=in.out, b=sel.out").
		Output(pA, "ga.out").
		Output(pB, "gb.out")
	return chip("DMUX", b, []string{pIn, pSel}, []string{pA, pB})
}

// DMuxFunc is the reference implementation of DMux.
//
func DMuxFunc() *logicsim.FuncBox {
	return logicsim.NewFuncBox("DMUXFunc", []string{pIn, pSel}, []string{pA, pB}, func(in []bool) []bool {
		if in[1] {
			return []bool{false, in[0]}
		}
		return []bool{in[0], false}
	})
}
