// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// A NodeKey identifies a node by its content: the hash of its sorted member
// list. Two rebuilds yield the same key for a node whose membership did not
// change.
//
type NodeKey uint64

func (k NodeKey) String() string {
	return strconv.FormatUint(uint64(k), 16)
}

// A Node is a set of connection points joined by conductors.
//
type Node struct {
	Key     NodeKey
	Members []ConnectionPoint // sorted
	Drivers []ConnectionPoint // driving pins, sorted
}

// A Partition maps every connection point of a topology to its node.
//
type Partition struct {
	nodes []Node
	index map[ConnectionPoint]int
}

// NodeDiff lists the keys of nodes that appeared or disappeared between two
// partitions.
//
type NodeDiff struct {
	Added   []NodeKey
	Removed []NodeKey
}

// Empty returns true if no node changed membership.
//
func (d NodeDiff) Empty() bool { return len(d.Added) == 0 && len(d.Removed) == 0 }

// union-find with path halving and union by size.
type disjointSet struct {
	parent []int
	size   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), size: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}
	return ds
}

func (ds *disjointSet) find(i int) int {
	for ds.parent[i] != i {
		ds.parent[i] = ds.parent[ds.parent[i]]
		i = ds.parent[i]
	}
	return i
}

func (ds *disjointSet) union(a, b int) {
	a, b = ds.find(a), ds.find(b)
	if a == b {
		return
	}
	if ds.size[a] < ds.size[b] {
		a, b = b, a
	}
	ds.parent[b] = a
	ds.size[a] += ds.size[b]
}

// RebuildNodes computes the nodes of t: the connected components of the graph
// whose vertices are all element pins and conductor endpoints and whose edges
// are conductors. Unconnected pins are singleton nodes.
//
// It returns an error wrapping ErrInvalidTopology if a conductor references a
// connection point that does not exist.
//
func RebuildNodes(t *Topology) (*Partition, error) {
	es := t.Elements()
	cs := t.Conductors()

	var pts []ConnectionPoint
	for i := range es {
		for pin, n := 0, es[i].Pins(); pin < n; pin++ {
			pts = append(pts, ConnectionPoint{es[i].ID, pin})
		}
	}
	for _, c := range cs {
		pts = append(pts, ConnectionPoint{c.ID, 0}, ConnectionPoint{c.ID, 1})
	}
	index := make(map[ConnectionPoint]int, len(pts))
	for i, cp := range pts {
		index[cp] = i
	}

	ds := newDisjointSet(len(pts))
	for _, c := range cs {
		p0, p1 := index[ConnectionPoint{c.ID, 0}], index[ConnectionPoint{c.ID, 1}]
		ds.union(p0, p1)
		for end, ref := range [2]ConnectionPoint{c.A, c.B} {
			if ref.IsZero() {
				continue
			}
			r, ok := index[ref]
			if !ok {
				return nil, topologyErrorf("conductor %s: end %d references unknown connection point %v", c.ID, end, ref)
			}
			if end == 0 {
				ds.union(p0, r)
			} else {
				ds.union(p1, r)
			}
		}
	}

	// group members by root
	roots := make(map[int]int)
	var nodes []Node
	for i, cp := range pts {
		r := ds.find(i)
		n, ok := roots[r]
		if !ok {
			n = len(nodes)
			roots[r] = n
			nodes = append(nodes, Node{})
		}
		nodes[n].Members = append(nodes[n].Members, cp)
	}
	for i := range nodes {
		n := &nodes[i]
		sort.Slice(n.Members, func(a, b int) bool { return n.Members[a].less(n.Members[b]) })
		for _, cp := range n.Members {
			if e, ok := t.elements[cp.Element]; ok && e.IsDriver(cp.Pin) {
				n.Drivers = append(n.Drivers, cp)
			}
		}
		n.Key = nodeKey(n.Members)
	}
	sort.Slice(nodes, func(a, b int) bool { return nodes[a].Members[0].less(nodes[b].Members[0]) })

	p := &Partition{nodes: nodes, index: make(map[ConnectionPoint]int, len(pts))}
	for i := range nodes {
		for _, cp := range nodes[i].Members {
			p.index[cp] = i
		}
	}
	return p, nil
}

func nodeKey(members []ConnectionPoint) NodeKey {
	d := xxhash.New()
	for _, cp := range members {
		d.WriteString(string(cp.Element))
		d.WriteString("\x00" + strconv.Itoa(cp.Pin) + "\x00")
	}
	return NodeKey(d.Sum64())
}

// Len returns the number of nodes.
//
func (p *Partition) Len() int { return len(p.nodes) }

// Node returns node i.
//
func (p *Partition) Node(i int) *Node { return &p.nodes[i] }

// NodeOf returns the index of the node containing cp.
//
func (p *Partition) NodeOf(cp ConnectionPoint) (int, bool) {
	i, ok := p.index[cp]
	return i, ok
}

// Key returns the key of the node containing cp.
//
func (p *Partition) Key(cp ConnectionPoint) (NodeKey, bool) {
	i, ok := p.index[cp]
	if !ok {
		return 0, false
	}
	return p.nodes[i].Key, true
}

// SameNode returns true if a and b belong to the same node.
//
func (p *Partition) SameNode(a, b ConnectionPoint) bool {
	i, ok := p.index[a]
	j, ok2 := p.index[b]
	return ok && ok2 && i == j
}

// Keys returns the set of node keys.
//
func (p *Partition) Keys() map[NodeKey]struct{} {
	m := make(map[NodeKey]struct{}, len(p.nodes))
	for i := range p.nodes {
		m[p.nodes[i].Key] = struct{}{}
	}
	return m
}

// Diff returns the nodes added and removed going from old to p. A nil old
// partition is treated as empty.
//
func (p *Partition) Diff(old *Partition) NodeDiff {
	var d NodeDiff
	cur := p.Keys()
	var prev map[NodeKey]struct{}
	if old != nil {
		prev = old.Keys()
	}
	for i := range p.nodes {
		if _, ok := prev[p.nodes[i].Key]; !ok {
			d.Added = append(d.Added, p.nodes[i].Key)
		}
	}
	if old != nil {
		for i := range old.nodes {
			if _, ok := cur[old.nodes[i].Key]; !ok {
				d.Removed = append(d.Removed, old.nodes[i].Key)
			}
		}
	}
	return d
}
