// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "sort"

// loops groups the nodes of a partition into strongly connected components of
// the node dependency graph: node n depends on node m if m is connected to an
// input pin of a gate or black box driving n.
//
type loops struct {
	of      []int   // node -> component
	members [][]int // component -> nodes, ascending
	cyclic  []bool  // component is a feedback loop
}

type tarjanState struct {
	index   int
	lowlink int
	onStack bool
}

// deps returns the nodes that node n depends on.
func deps(t *Topology, p *Partition, n int) []int {
	var ds []int
	for _, cp := range p.Node(n).Drivers {
		el := t.elements[cp.Element]
		if el.Kind != KindGate && el.Kind != KindBlackBox {
			continue
		}
		for i := 0; i < el.Inputs(); i++ {
			if m, ok := p.NodeOf(ConnectionPoint{el.ID, i}); ok {
				ds = append(ds, m)
			}
		}
	}
	return ds
}

// findLoops runs Tarjan's algorithm over the dependency graph of p.
//
func findLoops(t *Topology, p *Partition) *loops {
	n := p.Len()
	l := &loops{of: make([]int, n)}
	state := make([]*tarjanState, n)
	edges := make([][]int, n)
	for i := range edges {
		edges[i] = deps(t, p, i)
	}
	var stack []int
	index := 0

	var strongconnect func(u int)
	strongconnect = func(u int) {
		su := &tarjanState{index: index, lowlink: index, onStack: true}
		state[u] = su
		index++
		stack = append(stack, u)

		self := false
		for _, v := range edges[u] {
			switch sv := state[v]; {
			case v == u:
				self = true
			case sv == nil:
				strongconnect(v)
				su.lowlink = min(su.lowlink, state[v].lowlink)
			case sv.onStack:
				su.lowlink = min(su.lowlink, sv.index)
			}
		}

		if su.lowlink != su.index {
			return
		}
		id := len(l.members)
		var ms []int
		for {
			w := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			state[w].onStack = false
			l.of[w] = id
			ms = append(ms, w)
			if w == u {
				break
			}
		}
		sort.Ints(ms)
		l.members = append(l.members, ms)
		l.cyclic = append(l.cyclic, self || len(ms) > 1)
	}

	for u := 0; u < n; u++ {
		if state[u] == nil {
			strongconnect(u)
		}
	}
	return l
}
