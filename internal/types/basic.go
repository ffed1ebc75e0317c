// Package types defines the type classes, inferred metadata and scope tree
// used by the Calvin semantic analyzer.
package types

import (
	"fmt"

	"github.com/you-not-fish/calvin/internal/syntax"
)

// TypeClass is the coarse category of a value. There is no subtyping or
// coercion between classes.
type TypeClass int

const (
	Unknown TypeClass = iota // inference failed
	Integral
	Real
	Complex
	Boolean
	Binary
	String
	Never // result of an undeclared name
)

var classNames = [...]string{
	Unknown:  "unknown",
	Integral: "integer",
	Real:     "real",
	Complex:  "complex",
	Boolean:  "boolean",
	Binary:   "binary",
	String:   "string",
	Never:    "never",
}

func (c TypeClass) String() string {
	if c >= 0 && int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("TypeClass(%d)", int(c))
}

// LitClass returns the class of a literal of the given kind.
func LitClass(kind syntax.LitKind) TypeClass {
	switch kind {
	case syntax.StringLit:
		return String
	case syntax.BoolLit:
		return Boolean
	case syntax.BinaryLit:
		return Binary
	case syntax.RealLit:
		return Real
	case syntax.IntLit:
		return Integral
	case syntax.ComplexLit:
		return Complex
	}
	panic(fmt.Sprintf("types: no class for literal kind %v; should never happen", kind))
}

// BasicClass returns the class named by a basic type keyword. The first
// letter decides: i and u are integral, r real, x complex, s string, and b
// is boolean when followed by o and binary otherwise.
//
// A keyword outside that set means the lexer grew a basic type this
// function does not know, so BasicClass panics.
func BasicClass(name string) TypeClass {
	if name != "" {
		switch name[0] {
		case 'i', 'u':
			return Integral
		case 'x':
			return Complex
		case 'r':
			return Real
		case 'b':
			if len(name) > 1 && name[1] == 'o' {
				return Boolean
			}
			return Binary
		case 's':
			return String
		}
	}
	panic(fmt.Sprintf("types: no class for basic type %q; should never happen", name))
}
