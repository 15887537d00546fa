// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclib_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
	ll "github.com/db47h/logicsim/logiclib"
	"github.com/db47h/logicsim/simtest"
)

func Test_gate_nand(t *testing.T) {
	for _, g := range ls.GateKinds {
		t.Run(g.String(), func(t *testing.T) {
			simtest.CompareBox(t, ll.Nand(g), ll.GateFunc(g))
		})
	}
}

func Test_gate_table(t *testing.T) {
	td := []struct {
		name   string
		box    ls.BlackBox
		result [][]bool // a=0 && b=0, a=0 && b=1, a=1 && b=0, a=1 && b=1
	}{
		{"NOT", ll.GateFunc(ls.Not), [][]bool{{true, false}}},
		{"AND", ll.GateFunc(ls.And), [][]bool{{false, false, false, true}}},
		{"NAND", ll.Nand(ls.Nand), [][]bool{{true, true, true, false}}},
		{"OR", ll.Nand(ls.Or), [][]bool{{false, true, true, true}}},
		{"NOR", ll.GateFunc(ls.Nor), [][]bool{{true, false, false, false}}},
		{"XOR", ll.Nand(ls.Xor), [][]bool{{false, true, true, false}}},
		{"XNOR", ll.GateFunc(ls.Xnor), [][]bool{{true, false, false, true}}},
		{"MUX", ll.Mux(), [][]bool{{false, false, false, true, true, false, true, true}}},
		{"DMUX", ll.DMux(), [][]bool{{false, false, true, false}, {false, false, false, true}}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			simtest.TruthTable(t, d.box, func(in []bool) []bool {
				// results are listed with the first input as the most significant bit
				i := 0
				for _, v := range in {
					i <<= 1
					if v {
						i |= 1
					}
				}
				out := make([]bool, len(d.result))
				for o := range out {
					out[o] = d.result[o][i]
				}
				return out
			})
		})
	}
}

func Test_gateN(t *testing.T) {
	for _, n := range []int{2, 3, 5, 8} {
		simtest.CompareBox(t, ll.AndNWay(n), ll.AndNWayFunc(n))
		simtest.CompareBox(t, ll.OrNWay(n), ll.OrNWayFunc(n))
	}
}
