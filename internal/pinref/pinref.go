// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pinref parses pin references like "g1.out" and connection lists
// like "a=in1.out, b=g2.out".
//
package pinref

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z0-9_][A-Za-z0-9_\-]*`},
	{Name: "Punct", Pattern: `[.,=]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// A Ref references a pin of an element by name or number.
//
type Ref struct {
	Element string `parser:"@Ident"`
	Pin     string `parser:"\".\" @Ident"`
}

func (r Ref) String() string { return r.Element + "." + r.Pin }

// A Conn connects a pin of the element being wired to a Ref.
//
type Conn struct {
	Pin string `parser:"@Ident \"=\""`
	Ref Ref    `parser:"@@"`
}

type connList struct {
	Conns []Conn `parser:"( @@ ( \",\" @@ )* )?"`
}

var (
	refParser  = participle.MustBuild[Ref](participle.Lexer(refLexer), participle.Elide("Whitespace"))
	connParser = participle.MustBuild[connList](participle.Lexer(refLexer), participle.Elide("Whitespace"))
)

// Parse parses a pin reference of the form "element.pin".
//
func Parse(s string) (Ref, error) {
	r, err := refParser.ParseString("", s)
	if err != nil {
		return Ref{}, errors.Wrapf(err, "pin reference %q", s)
	}
	return *r, nil
}

// ParseConnections parses a comma separated list of "pin=element.pin"
// connections. An empty string yields an empty list.
//
//	ParseConnections("a=in1.out, b=g2.out")
//
func ParseConnections(s string) ([]Conn, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	l, err := connParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(err, "connections %q", s)
	}
	seen := make(map[string]bool, len(l.Conns))
	for _, c := range l.Conns {
		if seen[c.Pin] {
			return nil, errors.Errorf("connections %q: pin %s connected twice", s, c.Pin)
		}
		seen[c.Pin] = true
	}
	return l.Conns, nil
}
