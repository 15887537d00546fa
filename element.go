// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"reflect"
	"strconv"
)

// An ElementID identifies an element or conductor in a topology. Ids are
// allocated by whoever places the elements.
//
type ElementID string

// A ConnectionPoint is a single pin of an element or one of the two endpoints
// of a conductor.
//
type ConnectionPoint struct {
	Element ElementID
	Pin     int
}

// Pt is a shorthand for ConnectionPoint{id, pin}.
//
func Pt(id ElementID, pin int) ConnectionPoint {
	return ConnectionPoint{id, pin}
}

func (cp ConnectionPoint) String() string {
	return string(cp.Element) + "." + strconv.Itoa(cp.Pin)
}

// IsZero returns true for the empty connection point, used for the dangling
// end of a conductor.
//
func (cp ConnectionPoint) IsZero() bool { return cp.Element == "" }

func (cp ConnectionPoint) less(o ConnectionPoint) bool {
	if cp.Element != o.Element {
		return cp.Element < o.Element
	}
	return cp.Pin < o.Pin
}

// Kind is the kind of an element.
//
type Kind uint8

// Element kinds.
//
const (
	KindInput Kind = iota + 1
	KindOutput
	KindGate
	KindConductor
	KindBlackBox
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	case KindGate:
		return "gate"
	case KindConductor:
		return "conductor"
	case KindBlackBox:
		return "blackBox"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// A BlackBox is a gate-like element with an opaque function from its input
// vector to its output vector.
//
// Eval receives one value per input and must return one value per output.
// An input caught in a feedback loop that is still settling is Pending; Eval
// may then return Pending for the outputs that depend on it. A Pending
// output is reported as Error unless one of the inputs is Pending, and so is a
// missing output.
//
// Boxes are compared by identity when an element is added again to a
// topology, so implementations should be pointers.
//
type BlackBox interface {
	Name() string
	Inputs() []string
	Outputs() []string
	Eval(in []Value) []Value
}

// An Element is an element placed in a circuit. Conductors are described by
// the Conductor type.
//
type Element struct {
	ID   ElementID
	Kind Kind
	Gate GateKind // for KindGate
	Box  BlackBox // for KindBlackBox
}

// NewInput returns an input element. Its single pin, "out", is a driver.
//
func NewInput(id ElementID) Element { return Element{ID: id, Kind: KindInput} }

// NewOutput returns an output element. Its single pin is "in".
//
func NewOutput(id ElementID) Element { return Element{ID: id, Kind: KindOutput} }

// NewGate returns a gate element of the given kind.
//
//	Pins: input pins in order ("a", "b" or "in" for Not), then "out".
//
func NewGate(id ElementID, g GateKind) Element {
	return Element{ID: id, Kind: KindGate, Gate: g}
}

// NewBlackBox returns a black box element. Its pins are the box's inputs
// followed by its outputs.
//
func NewBlackBox(id ElementID, box BlackBox) Element {
	return Element{ID: id, Kind: KindBlackBox, Box: box}
}

// Pins returns the element's pin count.
//
func (e *Element) Pins() int {
	switch e.Kind {
	case KindInput, KindOutput:
		return 1
	case KindGate:
		return e.Gate.Arity() + 1
	case KindConductor:
		return 2
	case KindBlackBox:
		return len(e.Box.Inputs()) + len(e.Box.Outputs())
	}
	return 0
}

// Inputs returns the number of input pins of the element. For gates and black
// boxes, input pins are numbered 0 to Inputs()-1.
//
func (e *Element) Inputs() int {
	switch e.Kind {
	case KindOutput:
		return 1
	case KindGate:
		return e.Gate.Arity()
	case KindBlackBox:
		return len(e.Box.Inputs())
	}
	return 0
}

// IsDriver returns true if the given pin drives the node it belongs to.
//
func (e *Element) IsDriver(pin int) bool {
	switch e.Kind {
	case KindInput:
		return pin == 0
	case KindGate, KindBlackBox:
		return pin >= e.Inputs() && pin < e.Pins()
	}
	return false
}

// PinName returns the name of pin i.
//
func (e *Element) PinName(i int) string {
	if i < 0 || i >= e.Pins() {
		return ""
	}
	switch e.Kind {
	case KindInput:
		return pinOut
	case KindOutput:
		return pinIn
	case KindGate:
		if i == e.Gate.Arity() {
			return pinOut
		}
		if e.Gate.Arity() == 1 {
			return pinIn
		}
		return string(rune('a' + i))
	case KindBlackBox:
		if n := len(e.Box.Inputs()); i >= n {
			return e.Box.Outputs()[i-n]
		}
		return e.Box.Inputs()[i]
	}
	return strconv.Itoa(i)
}

// PinIndex returns the index of the named pin. A decimal pin number is
// accepted as well.
//
func (e *Element) PinIndex(name string) (int, bool) {
	n := e.Pins()
	for i := 0; i < n; i++ {
		if e.PinName(i) == name {
			return i, true
		}
	}
	if i, err := strconv.Atoi(name); err == nil && i >= 0 && i < n {
		return i, true
	}
	return 0, false
}

func (e *Element) validate() error {
	switch e.Kind {
	case KindInput, KindOutput:
	case KindGate:
		if e.Gate.Arity() == 0 {
			return topologyErrorf("element %s: unknown gate kind %d", e.ID, e.Gate)
		}
	case KindBlackBox:
		if e.Box == nil {
			return topologyErrorf("element %s: nil black box", e.ID)
		}
	default:
		return topologyErrorf("element %s: invalid kind %v", e.ID, e.Kind)
	}
	if e.ID == "" {
		return topologyErrorf("empty element id")
	}
	return nil
}

// same reports whether e and o define the same element. Black boxes are
// compared by identity: two distinct chips are different boxes even if they
// simulate the same sub-circuit.
func (e *Element) same(o *Element) bool {
	return e.ID == o.ID && e.Kind == o.Kind && e.Gate == o.Gate && sameBox(e.Box, o.Box)
}

func sameBox(a, b BlackBox) bool {
	if a == nil || b == nil {
		return a == b
	}
	// comparing interfaces holding uncomparable values panics.
	if t := reflect.TypeOf(a); t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}

// A Conductor joins two connection points. Its own endpoints are pins 0 and 1
// of the conductor id: A is joined to pin 0 and B to pin 1, and other
// conductors may reference these endpoints. A zero A or B leaves that end
// dangling.
//
type Conductor struct {
	ID   ElementID
	A, B ConnectionPoint
}

// Wire returns a conductor joining a and b.
//
func Wire(id ElementID, a, b ConnectionPoint) Conductor {
	return Conductor{ID: id, A: a, B: b}
}
