// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logiclib provides a library of composite parts for logicsim.
//
// Parts are chips: black boxes simulating a sub-circuit built from the
// built-in gates. Reference implementations backed by Go functions are
// provided alongside for testing purposes.
//
package logiclib

import (
	"strconv"

	"github.com/db47h/logicsim"
)

// common pin names
const (
	pA    = "a"
	pB    = "b"
	pIn   = "in"
	pSel  = "sel"
	pOut  = "out"
	pSum  = "s"
	pCarr = "c"
)

func ids(names ...string) []logicsim.ElementID {
	r := make([]logicsim.ElementID, len(names))
	for i, n := range names {
		r[i] = logicsim.ElementID(n)
	}
	return r
}

// numbered returns name0, name1, ... name<n-1>.
func numbered(name string, n int) []string {
	r := make([]string, n)
	for i := range r {
		r[i] = name + strconv.Itoa(i)
	}
	return r
}

// chip builds a chip from b. Part definitions are static, so errors are bugs.
func chip(name string, b *logicsim.Builder, ins, outs []string) *logicsim.Chip {
	t, err := b.Topology()
	if err != nil {
		panic(err)
	}
	c, err := logicsim.NewChip(name, t, ids(ins...), ids(outs...))
	if err != nil {
		panic(err)
	}
	return c
}

func out(id string) string { return id + "." + pOut }
