package types

import (
	"fmt"

	"github.com/you-not-fish/calvin/internal/syntax"
)

// Meta is an inferred type class together with the token it was
// inferred from.
type Meta struct {
	Class  TypeClass
	Source syntax.Lexeme
}

// MetaOf returns the Meta for class c derived from tok.
func MetaOf(c TypeClass, tok syntax.Lexeme) Meta {
	return Meta{Class: c, Source: tok}
}

func (m Meta) String() string {
	return fmt.Sprintf("%s (from %s on line %d)", m.Class, m.Source.Lit, m.Source.Line())
}

// Symbol is a name bound in a scope.
type Symbol struct {
	Tok  syntax.Lexeme // declaring identifier
	Meta Meta
}

// Name returns the bound name.
func (s *Symbol) Name() string { return s.Tok.Lit }

// Line returns the line of the declaration.
func (s *Symbol) Line() uint32 { return s.Tok.Line() }
