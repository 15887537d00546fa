// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"sort"
)

// A Topology is the set of elements and conductors of a circuit.
//
// Element and conductor ids share the same namespace. Conductor references
// are not checked until nodes are built, so elements and conductors can be
// added in any order.
//
type Topology struct {
	elements   map[ElementID]Element
	conductors map[ElementID]Conductor
}

// NewTopology returns an empty topology.
//
func NewTopology() *Topology {
	return &Topology{
		elements:   make(map[ElementID]Element),
		conductors: make(map[ElementID]Conductor),
	}
}

// Clone returns a shallow copy of t. Black boxes are shared.
//
func (t *Topology) Clone() *Topology {
	c := &Topology{
		elements:   make(map[ElementID]Element, len(t.elements)),
		conductors: make(map[ElementID]Conductor, len(t.conductors)),
	}
	for k, v := range t.elements {
		c.elements[k] = v
	}
	for k, v := range t.conductors {
		c.conductors[k] = v
	}
	return c
}

// AddElement adds e to the topology. Adding an element identical to an
// existing one is a no-op. It returns an error wrapping ErrInvalidTopology if
// the element is invalid or if its id is already used by a different element
// or by a conductor.
//
func (t *Topology) AddElement(e Element) error {
	if err := e.validate(); err != nil {
		return err
	}
	if _, ok := t.conductors[e.ID]; ok {
		return topologyErrorf("element id %s already used by a conductor", e.ID)
	}
	if o, ok := t.elements[e.ID]; ok {
		if o.same(&e) {
			return nil
		}
		return topologyErrorf("duplicate element id %s", e.ID)
	}
	t.elements[e.ID] = e
	return nil
}

// AddConductor adds c to the topology, with the same duplicate rules as
// AddElement.
//
func (t *Topology) AddConductor(c Conductor) error {
	if c.ID == "" {
		return topologyErrorf("empty conductor id")
	}
	if _, ok := t.elements[c.ID]; ok {
		return topologyErrorf("conductor id %s already used by an element", c.ID)
	}
	if o, ok := t.conductors[c.ID]; ok {
		if o == c {
			return nil
		}
		return topologyErrorf("duplicate conductor id %s", c.ID)
	}
	t.conductors[c.ID] = c
	return nil
}

// Remove removes the element or conductor with the given id. It returns false
// if no such id exists.
//
func (t *Topology) Remove(id ElementID) bool {
	if _, ok := t.elements[id]; ok {
		delete(t.elements, id)
		return true
	}
	if _, ok := t.conductors[id]; ok {
		delete(t.conductors, id)
		return true
	}
	return false
}

// Element returns the element with the given id. Conductors are returned as
// elements of kind KindConductor.
//
func (t *Topology) Element(id ElementID) (Element, bool) {
	if e, ok := t.elements[id]; ok {
		return e, true
	}
	if _, ok := t.conductors[id]; ok {
		return Element{ID: id, Kind: KindConductor}, true
	}
	return Element{}, false
}

// Conductor returns the conductor with the given id.
//
func (t *Topology) Conductor(id ElementID) (Conductor, bool) {
	c, ok := t.conductors[id]
	return c, ok
}

// Elements returns all non-conductor elements sorted by id.
//
func (t *Topology) Elements() []Element {
	es := make([]Element, 0, len(t.elements))
	for _, e := range t.elements {
		es = append(es, e)
	}
	sort.Slice(es, func(i, j int) bool { return es[i].ID < es[j].ID })
	return es
}

// Conductors returns all conductors sorted by id.
//
func (t *Topology) Conductors() []Conductor {
	cs := make([]Conductor, 0, len(t.conductors))
	for _, c := range t.conductors {
		cs = append(cs, c)
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].ID < cs[j].ID })
	return cs
}

// Len returns the total number of elements and conductors.
//
func (t *Topology) Len() int { return len(t.elements) + len(t.conductors) }

// hasPoint returns true if cp names an existing pin or conductor endpoint.
func (t *Topology) hasPoint(cp ConnectionPoint) bool {
	e, ok := t.Element(cp.Element)
	return ok && cp.Pin >= 0 && cp.Pin < e.Pins()
}
