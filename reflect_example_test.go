// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim_test

import (
	"fmt"

	ls "github.com/db47h/logicsim"
)

// mux4 is a custom 4 bits mux.
//
type mux4 struct {
	A   [4]bool `logic:"in"`     // input pins a0..a3
	B   [4]bool `logic:"in"`     // input pins b0..b3
	S   bool    `logic:"in,sel"` // single pin, the second tag value forces the pin name to "sel"
	Out [4]bool `logic:"out"`    // output pins out0..out3
}

// Update implements Updater.
//
func (m *mux4) Update() {
	if m.S {
		m.Out = m.B
	} else {
		m.Out = m.A
	}
}

// MakeBox example with a custom 4 bits mux.
func ExampleMakeBox() {
	b := ls.NewBuilder().Inputs("sel", "lo", "hi")
	conns := "sel=sel.out"
	for i := 0; i < 4; i++ {
		n := fmt.Sprint(i)
		// a = 0b0001, b = 0b1111
		if i == 0 {
			conns += ", a" + n + "=hi.out"
		} else {
			conns += ", a" + n + "=lo.out"
		}
		conns += ", b" + n + "=hi.out"
		b.Output(ls.ElementID("out"+n), "m.out"+n)
	}
	t, err := b.Box("m", ls.MakeBox((*mux4)(nil)), conns).Topology()
	if err != nil {
		panic(err)
	}
	sim, err := ls.New(t, ls.DefaultConfig())
	if err != nil {
		panic(err)
	}
	_ = sim.SetInputValue("hi", ls.One)
	_ = sim.SetInputValue("lo", ls.Zero)

	show := func() {
		sel, _ := sim.InputValue("sel")
		fmt.Printf("sel=%v out=", sel)
		for i := 3; i >= 0; i-- {
			v, _ := sim.GetOutputValue(ls.ElementID(fmt.Sprint("out", i)))
			fmt.Print(v)
		}
		fmt.Println()
	}
	show()
	_ = sim.SetInputValue("sel", ls.One)
	show()
	_ = sim.SetInputValue("sel", ls.Zero)
	show()

	// Output:
	// sel=pullDown out=0001
	// sel=1 out=1111
	// sel=0 out=0001
}
