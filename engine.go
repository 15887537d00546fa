// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

type cacheEntry struct {
	v       Value
	version uint64
}

// Engine is the propagation engine: it computes node values lazily and
// memoizes them per topology version.
//
// Feedback loops are evaluated as a unit: all nodes of a loop start Pending
// and are re-evaluated in rounds until they settle. Nodes that are still
// Pending, or still changing after one more round than the loop has nodes,
// are in Error. Values thus never depend on the order of queries.
//
// An Engine is not safe for concurrent use. See Simulator for a synchronized
// API.
//
type Engine struct {
	topo    *Topology
	part    *Partition
	version uint64
	inputs  map[ElementID]Value
	def     Value

	cache []cacheEntry
	loops *loops

	metrics *Metrics
	log     *slog.Logger
}

// NewEngine returns an engine for topology t. Unset inputs drive inputDefault.
// The engine takes ownership of t.
//
func NewEngine(t *Topology, inputDefault Value, m *Metrics, log *slog.Logger) (*Engine, error) {
	p, err := RebuildNodes(t)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = NewMetrics(nil)
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e := &Engine{
		topo:    t,
		part:    p,
		version: 1,
		inputs:  make(map[ElementID]Value),
		def:     inputDefault,
		cache:   make([]cacheEntry, p.Len()),
		loops:   findLoops(t, p),
		metrics: m,
		log:     log,
	}
	m.Rebuilds.Inc()
	m.Nodes.Set(float64(p.Len()))
	m.Version.Set(float64(e.version))
	return e, nil
}

// Version returns the current topology version. It is bumped on every
// structural or input change.
//
func (e *Engine) Version() uint64 { return e.version }

// Partition returns the current node partition.
//
func (e *Engine) Partition() *Partition { return e.part }

// Topology returns the current topology. It must not be modified.
//
func (e *Engine) Topology() *Topology { return e.topo }

func (e *Engine) bump() {
	e.version++
	e.metrics.Version.Set(float64(e.version))
}

// SetTopology replaces the engine's topology with t and rebuilds nodes. On
// error, the engine is left unchanged. Values of inputs that no longer exist
// are forgotten.
//
func (e *Engine) SetTopology(t *Topology) (NodeDiff, error) {
	p, err := RebuildNodes(t)
	if err != nil {
		return NodeDiff{}, err
	}
	diff := p.Diff(e.part)
	e.topo, e.part = t, p
	for id := range e.inputs {
		if el, ok := t.elements[id]; !ok || el.Kind != KindInput {
			delete(e.inputs, id)
		}
	}
	e.cache = make([]cacheEntry, p.Len())
	e.loops = findLoops(t, p)
	e.bump()
	e.metrics.Rebuilds.Inc()
	e.metrics.Nodes.Set(float64(p.Len()))
	e.log.Debug("nodes rebuilt", "version", e.version, "nodes", p.Len(),
		"added", len(diff.Added), "removed", len(diff.Removed))
	return diff, nil
}

func (e *Engine) input(id ElementID) error {
	el, ok := e.topo.elements[id]
	if !ok {
		return errors.Wrapf(ErrUnknownElement, "%s", id)
	}
	if el.Kind != KindInput {
		return errors.Wrapf(ErrNotInput, "%s is a %v", id, el.Kind)
	}
	return nil
}

// SetInput sets the value driven by input element id. Any Value is accepted.
// It returns false if the input already had that value, in which case the
// version is not bumped.
//
func (e *Engine) SetInput(id ElementID, v Value) (bool, error) {
	if err := e.input(id); err != nil {
		return false, err
	}
	if e.InputValue(id) == v {
		return false, nil
	}
	e.inputs[id] = v
	e.bump()
	return true, nil
}

// ResetInput returns input id to the default value.
//
func (e *Engine) ResetInput(id ElementID) (bool, error) {
	if err := e.input(id); err != nil {
		return false, err
	}
	if _, ok := e.inputs[id]; !ok {
		return false, nil
	}
	delete(e.inputs, id)
	e.bump()
	return true, nil
}

// InputValue returns the value driven by input id.
//
func (e *Engine) InputValue(id ElementID) Value {
	if v, ok := e.inputs[id]; ok {
		return v
	}
	return e.def
}

// Value returns the value of the node containing cp.
//
func (e *Engine) Value(cp ConnectionPoint) (Value, error) {
	n, ok := e.part.NodeOf(cp)
	if !ok {
		if _, ok := e.topo.Element(cp.Element); ok {
			return Floating, topologyErrorf("no connection point %v", cp)
		}
		return Floating, errors.Wrapf(ErrUnknownElement, "%s", cp.Element)
	}
	v := e.NodeValue(n)
	e.metrics.result(v)
	return v, nil
}

// NodeValue returns the value of node n of the current partition.
//
func (e *Engine) NodeValue(n int) Value {
	if c := e.cache[n]; c.version == e.version {
		e.metrics.CacheHits.Inc()
		return c.v
	}
	if c := e.loops.of[n]; e.loops.cyclic[c] {
		e.solve(c)
		return e.cache[n].v
	}
	e.metrics.CacheMisses.Inc()
	v := e.resolve(n, e.NodeValue)
	if v == Pending {
		// pending input
		v = Error
	}
	e.cache[n] = cacheEntry{v, e.version}
	return v
}

// solve evaluates feedback loop c and caches the values of its nodes. Nothing
// is cached until the loop has settled.
func (e *Engine) solve(c int) {
	ms := e.loops.members[c]
	pos := make(map[int]int, len(ms))
	cur := make([]Value, len(ms))
	next := make([]Value, len(ms))
	for i, n := range ms {
		pos[n] = i
		cur[i] = Pending
	}
	// within a round, loop nodes read the values of the previous round.
	read := func(n int) Value {
		if i, ok := pos[n]; ok {
			return cur[i]
		}
		return e.NodeValue(n)
	}
	e.metrics.CacheMisses.Add(float64(len(ms)))

	settled := false
	for round := 0; round <= len(ms) && !settled; round++ {
		settled = true
		for i, n := range ms {
			next[i] = e.resolve(n, read)
			if next[i] != cur[i] {
				settled = false
			}
		}
		cur, next = next, cur
	}

	unresolved := false
	for i, n := range ms {
		v := cur[i]
		if v == Pending || !settled && v != next[i] {
			v, unresolved = Error, true
		}
		e.cache[n] = cacheEntry{v, e.version}
	}
	if unresolved {
		e.metrics.Cycles.Inc()
		e.log.Debug("unresolved feedback loop", "node", e.part.Node(ms[0]).Members[0],
			"nodes", len(ms), "version", e.version)
	}
}

// resolve computes the value of node n from its drivers, reading the nodes
// they depend on with read.
func (e *Engine) resolve(n int, read func(int) Value) Value {
	drivers := e.part.Node(n).Drivers
	vs := make([]Value, len(drivers))
	for i, cp := range drivers {
		vs[i] = e.driver(cp, read)
	}
	return Resolve(vs...)
}

// driver returns the value driven by output pin cp.
func (e *Engine) driver(cp ConnectionPoint, read func(int) Value) Value {
	el := e.topo.elements[cp.Element]
	pin := func(i int) Value {
		n, ok := e.part.NodeOf(ConnectionPoint{el.ID, i})
		if !ok {
			return Floating
		}
		return read(n)
	}
	switch el.Kind {
	case KindInput:
		return e.InputValue(el.ID)
	case KindGate:
		return EvaluateLazy(el.Gate, pin)
	case KindBlackBox:
		in := make([]Value, el.Inputs())
		pending := false
		for i := range in {
			in[i] = pin(i)
			pending = pending || in[i] == Pending
		}
		out := el.Box.Eval(in)
		i := cp.Pin - len(in)
		if i >= len(out) || out[i] == Pending && !pending {
			return Error
		}
		return out[i]
	}
	return Floating
}
