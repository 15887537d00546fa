// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "github.com/pkg/errors"

// Errors returned by the simulator. Functions wrap them with context; use
// errors.Cause to test for a specific condition.
//
var (
	// ErrInvalidTopology reports a structural error in a topology, like a
	// conductor referencing a connection point that does not exist.
	ErrInvalidTopology = errors.New("invalid topology")
	// ErrUnknownElement reports a query or command on an unknown element id.
	ErrUnknownElement = errors.New("unknown element")
	// ErrNotInput is returned when setting the value of a non-input element.
	ErrNotInput = errors.New("element is not an input")
	// ErrNotOutput is returned when querying the output value of a non-output element.
	ErrNotOutput = errors.New("element is not an output")
	// ErrInvalidValue reports a value that cannot be used in that context.
	ErrInvalidValue = errors.New("invalid value")
)

// IsInvalidTopology returns true if err was caused by ErrInvalidTopology.
//
func IsInvalidTopology(err error) bool {
	return errors.Cause(err) == ErrInvalidTopology
}

func topologyErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidTopology, format, args...)
}
