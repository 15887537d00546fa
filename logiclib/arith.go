// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclib

import (
	"strconv"

	"github.com/db47h/logicsim"
)

// HalfAdder returns a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder() *logicsim.Chip {
	b := logicsim.NewBuilder().
		Inputs(pA, pB).
		Gate("xor", logicsim.Xor, "a=a.out, b=b.out").
		Gate("and", logicsim.And, "a=a.out, b=b.out").
		Output(pSum, "xor.out").
		Output(pCarr, "and.out")
	return chip("HalfAdder", b, []string{pA, pB}, []string{pSum, pCarr})
}

// FullAdder returns a full adder made of two half adders.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder() *logicsim.Chip {
	h := HalfAdder()
	b := logicsim.NewBuilder().
		Inputs(pA, pB, "cin").
		Box("h0", h, "a=a.out, b=b.out").
		Box("h1", h, "a=h0.s, b=cin.out").
		Gate("or", logicsim.Or, "a=h0.c, b=h1.c").
		Output(pSum, "h1.s").
		Output("cout", "or.out")
	return chip("FullAdder", b, []string{pA, pB, "cin"}, []string{pSum, "cout"})
}

// HalfAdderFunc is the reference implementation of HalfAdder.
//
func HalfAdderFunc() *logicsim.FuncBox {
	return logicsim.NewFuncBox("HalfAdderFunc", []string{pA, pB}, []string{pSum, pCarr}, func(in []bool) []bool {
		return []bool{in[0] != in[1], in[0] && in[1]}
	})
}

// FullAdderFunc is the reference implementation of FullAdder.
//
func FullAdderFunc() *logicsim.FuncBox {
	return logicsim.NewFuncBox("FullAdderFunc", []string{pA, pB, "cin"}, []string{pSum, "cout"}, func(in []bool) []bool {
		n := 0
		for _, v := range in {
			if v {
				n++
			}
		}
		return []bool{n&1 != 0, n >= 2}
	})
}

// AdderN returns a ripple-carry adder of the given width.
//
//	Inputs: a0..a<bits-1>, b0..b<bits-1>
//	Outputs: out0..out<bits-1>, c
//	Function: out + c<<bits = a + b
//
func AdderN(bits int) *logicsim.Chip {
	if bits < 1 {
		panic("AdderN: bits must be > 0")
	}
	fa := FullAdder()
	as, bs, outs := numbered(pA, bits), numbered(pB, bits), numbered(pOut, bits)
	b := logicsim.NewBuilder().Inputs(ids(as...)...).Inputs(ids(bs...)...)
	b.Box("h0", HalfAdder(), "a="+out(as[0])+", b="+out(bs[0]))
	b.Output(logicsim.ElementID(outs[0]), "h0.s")
	carry := "h0.c"
	for i := 1; i < bits; i++ {
		id := "fa" + strconv.Itoa(i)
		b.Box(logicsim.ElementID(id), fa, "a="+out(as[i])+", b="+out(bs[i])+", cin="+carry)
		b.Output(logicsim.ElementID(outs[i]), id+".s")
		carry = id + ".cout"
	}
	b.Output(pCarr, carry)
	return chip("Adder"+strconv.Itoa(bits), b, append(as, bs...), append(outs, pCarr))
}

// AdderNFunc is the reference implementation of AdderN.
//
func AdderNFunc(bits int) *logicsim.FuncBox {
	ins := append(numbered(pA, bits), numbered(pB, bits)...)
	outs := append(numbered(pOut, bits), pCarr)
	return logicsim.NewFuncBox("Adder"+strconv.Itoa(bits)+"Func", ins, outs, func(in []bool) []bool {
		var a, b uint64
		for i := 0; i < bits; i++ {
			if in[i] {
				a |= 1 << uint(i)
			}
			if in[bits+i] {
				b |= 1 << uint(i)
			}
		}
		s := a + b
		r := make([]bool, bits+1)
		for i := range r {
			r[i] = s&(1<<uint(i)) != 0
		}
		return r
	})
}
