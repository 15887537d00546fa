// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"io"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// A Change describes a batch of topology edits. Removals are applied before
// additions, so that an element can be replaced in a single change.
//
type Change struct {
	AddedConductors   []Conductor
	RemovedConductors []ElementID
	AddedElements     []Element
	RemovedElements   []ElementID
}

// EventKind is the kind of a simulator Event.
//
type EventKind uint8

// Event kinds.
//
const (
	TopologyChanged EventKind = iota + 1
	InputChanged
)

func (k EventKind) String() string {
	switch k {
	case TopologyChanged:
		return "topology"
	case InputChanged:
		return "input"
	}
	return "unknown"
}

// An Event notifies listeners of a state change.
//
type Event struct {
	Kind    EventKind
	Version uint64
	// Input element, for InputChanged events.
	Element ElementID
	// Nodes whose membership changed, for TopologyChanged events.
	Nodes NodeDiff
}

// An Option configures a Simulator.
//
type Option func(*Simulator)

// WithLogger sets the simulator's logger. By default, nothing is logged.
//
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) { s.log = l }
}

// WithRegisterer registers the simulator's metrics with reg.
//
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Simulator) { s.metrics = NewMetrics(reg) }
}

// WithMetrics makes the simulator report to m.
//
func WithMetrics(m *Metrics) Option {
	return func(s *Simulator) { s.metrics = m }
}

// Simulator is the query and command surface of the simulation engine.
//
// All methods are serialized by a mutex. Listeners registered with Subscribe
// are called after the lock is released, in the goroutine that made the
// change.
//
type Simulator struct {
	mu      sync.Mutex
	cfg     Config
	eng     *Engine
	log     *slog.Logger
	metrics *Metrics

	lmu     sync.Mutex
	subs    []subscription
	nextSub int
}

type subscription struct {
	id int
	fn func(Event)
}

// New returns a new simulator for a copy of topology t. A nil t starts with an
// empty circuit.
//
func New(t *Topology, cfg Config, opts ...Option) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulator{cfg: cfg}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}
	if t == nil {
		t = NewTopology()
	} else {
		t = t.Clone()
	}
	eng, err := NewEngine(t, cfg.InputDefault, s.metrics, s.log)
	if err != nil {
		return nil, err
	}
	s.eng = eng
	return s, nil
}

// Config returns the simulator's configuration.
//
func (s *Simulator) Config() Config { return s.cfg }

// Version returns the current topology version.
//
func (s *Simulator) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Version()
}

// Topology returns a copy of the current topology.
//
func (s *Simulator) Topology() *Topology {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Topology().Clone()
}

// SetInputValue sets the value driven by an input element. v must be Zero or
// One. Setting an input to its current value is a no-op.
//
func (s *Simulator) SetInputValue(id ElementID, v Value) error {
	if !v.IsDigital() {
		return errors.Wrapf(ErrInvalidValue, "input %s: %v", id, v)
	}
	return s.setInput(id, func() (bool, error) { return s.eng.SetInput(id, v) })
}

// ResetInputValue returns an input element to the configured default value.
//
func (s *Simulator) ResetInputValue(id ElementID) error {
	return s.setInput(id, func() (bool, error) { return s.eng.ResetInput(id) })
}

func (s *Simulator) setInput(id ElementID, set func() (bool, error)) error {
	s.mu.Lock()
	changed, err := set()
	ver := s.eng.Version()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if changed {
		s.log.Debug("input changed", "input", id, "version", ver)
		s.notify(Event{Kind: InputChanged, Version: ver, Element: id})
	}
	return nil
}

// InputValue returns the value driven by an input element.
//
func (s *Simulator) InputValue(id ElementID) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.eng.input(id); err != nil {
		return Floating, err
	}
	return s.eng.InputValue(id), nil
}

// GetOutputValue returns the value of the node feeding an output element.
//
func (s *Simulator) GetOutputValue(id ElementID) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.eng.Topology().Element(id)
	if !ok {
		return Floating, errors.Wrapf(ErrUnknownElement, "%s", id)
	}
	if el.Kind != KindOutput {
		return Floating, errors.Wrapf(ErrNotOutput, "%s is a %v", id, el.Kind)
	}
	return s.eng.Value(ConnectionPoint{id, 0})
}

// Value returns the value of the node containing connection point cp.
//
func (s *Simulator) Value(cp ConnectionPoint) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Value(cp)
}

// NodeKey returns the key of the node containing cp.
//
func (s *Simulator) NodeKey(cp ConnectionPoint) (NodeKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k, ok := s.eng.Partition().Key(cp)
	if !ok {
		return 0, errors.Wrapf(ErrUnknownElement, "no connection point %v", cp)
	}
	return k, nil
}

// NotifyTopologyChanged applies a batch of topology edits and rebuilds nodes.
//
// The change is applied atomically: if the resulting topology is invalid, the
// simulator is left untouched and the returned error wraps
// ErrInvalidTopology. Removing an absent id or adding an element or conductor
// identical to an existing one is a no-op.
//
func (s *Simulator) NotifyTopologyChanged(c Change) error {
	s.mu.Lock()
	diff, changed, err := s.apply(c)
	ver := s.eng.Version()
	s.mu.Unlock()
	if err != nil {
		s.metrics.RejectedChanges.Inc()
		s.log.Warn("topology change rejected", "err", err, "version", ver)
		return err
	}
	if changed {
		s.notify(Event{Kind: TopologyChanged, Version: ver, Nodes: diff})
	}
	return nil
}

func (s *Simulator) apply(c Change) (NodeDiff, bool, error) {
	cur := s.eng.Topology()
	t := cur.Clone()
	changed := false
	for _, id := range c.RemovedConductors {
		if _, ok := t.conductors[id]; ok {
			delete(t.conductors, id)
			changed = true
		}
	}
	for _, id := range c.RemovedElements {
		changed = t.Remove(id) || changed
	}
	for _, e := range c.AddedElements {
		if err := t.AddElement(e); err != nil {
			return NodeDiff{}, false, err
		}
	}
	for _, w := range c.AddedConductors {
		if err := t.AddConductor(w); err != nil {
			return NodeDiff{}, false, err
		}
	}
	if !changed && t.Len() == cur.Len() {
		// only identical re-additions
		return NodeDiff{}, false, nil
	}
	diff, err := s.eng.SetTopology(t)
	if err != nil {
		return NodeDiff{}, false, err
	}
	return diff, true, nil
}

// Subscribe registers fn to be called after every state change. Listeners are
// called in subscription order. The returned function unregisters fn.
//
func (s *Simulator) Subscribe(fn func(Event)) (cancel func()) {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscription{id, fn})
	return func() {
		s.lmu.Lock()
		defer s.lmu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Simulator) notify(ev Event) {
	s.lmu.Lock()
	subs := s.subs
	s.lmu.Unlock()
	for _, sub := range subs {
		sub.fn(ev)
	}
}
