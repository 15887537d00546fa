// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Updater is the interface that black boxes built using reflection must
// implement. See MakeBox.
//
type Updater interface {
	Update()
}

var updaterType = reflect.TypeOf((*Updater)(nil)).Elem()

type field struct {
	index []int
	elem  int // array element, or -1
}

// A StructBox is a BlackBox backed by a struct type implementing Updater.
//
type StructBox struct {
	name string
	typ  reflect.Type
	ins  []string
	outs []string
	inF  []field
	outF []field
}

// MakeBox wraps the struct type of t into a black box. Only the type of t is
// used: every evaluation works on a fresh zero value, with input fields set,
// then calls Update and reads output fields.
//
// Input/output pins are identified by field tags. The field tag must be
// `logic:"in"` or `logic:"out"`. By default, the pin name is the field name in
// lowercase. A specific pin name can be forced by adding it in the tag:
// `logic:"in,pin_name"`.
//
// Pin fields must be of type bool, or arrays of bool, in which case element i
// becomes pin <name><i>.
//
// If any input is non-digital, Update is not called and all outputs are the
// worst non-digital input value.
//
func MakeBox(t Updater) *StructBox {
	typ := reflect.TypeOf(t)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if k := typ.Kind(); k != reflect.Struct {
		panic(errors.Errorf("unsupported type %q for %q", k, typ.Name()))
	}
	if typ.Implements(updaterType) {
		panic(errors.Errorf("%s: Update must have a pointer receiver", typ.Name()))
	}

	b := &StructBox{name: typ.Name(), typ: typ}
	n := typ.NumField()
	for i := 0; i < n; i++ {
		var isInput bool
		f := typ.Field(i)
		pin := strings.ToLower(f.Name)
		tag, ok := f.Tag.Lookup("logic")
		if !ok {
			continue
		}
		tv := strings.Split(tag, ",")
		if len(tv) > 2 {
			panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
		}
		if len(tv) == 2 && tv[1] != "" {
			pin = tv[1]
		}
		switch tv[0] {
		case "in":
			isInput = true
		case "out":
		default:
			panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
		}

		add := func(name string, fl field) {
			if isInput {
				b.ins = append(b.ins, name)
				b.inF = append(b.inF, fl)
			} else {
				b.outs = append(b.outs, name)
				b.outF = append(b.outF, fl)
			}
		}
		ft := f.Type
		switch {
		case ft.Kind() == reflect.Array && ft.Elem().Kind() == reflect.Bool:
			for j := 0; j < ft.Len(); j++ {
				add(pin+strconv.Itoa(j), field{f.Index, j})
			}
		case ft.Kind() == reflect.Bool:
			add(pin, field{f.Index, -1})
		default:
			panic(errors.Errorf("unsupported type %q for field %q in %q", ft.Kind(), f.Name, typ.Name()))
		}
	}
	return b
}

func (f field) value(v reflect.Value) reflect.Value {
	fv := v.FieldByIndex(f.index)
	if f.elem >= 0 {
		fv = fv.Index(f.elem)
	}
	return fv
}

// Name implements BlackBox.
func (b *StructBox) Name() string { return b.name }

// Inputs implements BlackBox.
func (b *StructBox) Inputs() []string { return b.ins }

// Outputs implements BlackBox.
func (b *StructBox) Outputs() []string { return b.outs }

// Eval implements BlackBox.
func (b *StructBox) Eval(in []Value) []Value {
	out := make([]Value, len(b.outs))
	ls, bad, ok := levels(in, len(b.inF))
	if !ok {
		return fill(out, bad)
	}
	v := reflect.New(b.typ)
	e := v.Elem()
	for i, f := range b.inF {
		f.value(e).SetBool(ls[i])
	}
	v.Interface().(Updater).Update()
	for i, f := range b.outF {
		out[i] = Bool(f.value(e).Bool())
	}
	return out
}
