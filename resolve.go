// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// Resolve returns the value of a node given the values of its drivers.
//
//	no driver                         floating
//	single driver                     its value, verbatim
//	any driver in error               error
//	strong 0 and strong 1             error
//	any driver pending                pending
//	strong value (0 or 1)             that value; pulls and floating drivers are ignored
//	pulls only, all equal             that pull
//	pullUp and pullDown               error
//	floating drivers only             floating
//
func Resolve(drivers ...Value) Value {
	switch len(drivers) {
	case 0:
		return Floating
	case 1:
		return drivers[0]
	}
	var zero, one, up, down, pending bool
	for _, v := range drivers {
		switch v {
		case Error:
			return Error
		case Zero:
			zero = true
		case One:
			one = true
		case PullUp:
			up = true
		case PullDown:
			down = true
		case Pending:
			pending = true
		}
	}
	switch {
	case zero && one:
		return Error
	case pending:
		return Pending
	case zero:
		return Zero
	case one:
		return One
	case up && down:
		return Error
	case up:
		return PullUp
	case down:
		return PullDown
	}
	return Floating
}
