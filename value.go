// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// A Value is the logic value of a node or pin.
//
type Value uint8

// Logic values.
//
// Zero and One are driven digital levels. PullUp and PullDown are weak levels
// only visible on a node with no strong driver. Pending marks a node under
// evaluation and only escapes the engine as part of an unresolved feedback
// loop. Error is the value of a node with conflicting drivers or caught in an
// unresolved loop. Floating is the value of a node with no driver.
//
const (
	Zero Value = iota
	One
	PullUp
	PullDown
	Pending
	Error
	Floating
)

var valueNames = [...]string{
	Zero:     "0",
	One:      "1",
	PullUp:   "pullUp",
	PullDown: "pullDown",
	Pending:  "pending",
	Error:    "error",
	Floating: "floating",
}

// Values lists all logic values in declaration order.
//
var Values = []Value{Zero, One, PullUp, PullDown, Pending, Error, Floating}

func (v Value) String() string {
	if int(v) < len(valueNames) {
		return valueNames[v]
	}
	return "Value(" + strconv.Itoa(int(v)) + ")"
}

// ParseValue returns the Value whose String() is s.
//
func ParseValue(s string) (Value, error) {
	for i, n := range valueNames {
		if n == s {
			return Value(i), nil
		}
	}
	return Floating, errors.Wrapf(ErrInvalidValue, "%q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(text []byte) error {
	p, err := ParseValue(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// Bool returns the Value corresponding to a boolean level.
//
func Bool(b bool) Value {
	if b {
		return One
	}
	return Zero
}

// IsDigital returns true for strongly driven levels (Zero and One).
//
func (v Value) IsDigital() bool { return v == Zero || v == One }

// IsWeak returns true for pull values.
//
func (v Value) IsWeak() bool { return v == PullUp || v == PullDown }

// Level returns the level seen by a gate input connected to a node of value v.
// Pulls read as their level. ok is false for non-digital values.
//
func (v Value) Level() (level bool, ok bool) {
	switch v {
	case Zero, PullDown:
		return false, true
	case One, PullUp:
		return true, true
	}
	return false, false
}

// Not returns the complement of v. Non-digital values are returned unchanged.
//
func (v Value) Not() Value {
	if l, ok := v.Level(); ok {
		return Bool(!l)
	}
	return v
}

// severity ranks non-digital values: Error > Pending > Floating.
func (v Value) severity() int {
	switch v {
	case Error:
		return 3
	case Pending:
		return 2
	case Floating:
		return 1
	}
	return 0
}

// worst returns whichever of a and b has the highest severity.
func worst(a, b Value) Value {
	if b.severity() > a.severity() {
		return b
	}
	return a
}
