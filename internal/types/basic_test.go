package types

import (
	"strings"
	"testing"

	"github.com/you-not-fish/calvin/internal/syntax"
)

func TestTypeClassString(t *testing.T) {
	tests := []struct {
		class TypeClass
		want  string
	}{
		{Unknown, "unknown"},
		{Integral, "integer"},
		{Real, "real"},
		{Complex, "complex"},
		{Boolean, "boolean"},
		{Binary, "binary"},
		{String, "string"},
		{Never, "never"},
		{TypeClass(42), "TypeClass(42)"},
	}
	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.class), got, tt.want)
		}
	}
}

func TestLitClass(t *testing.T) {
	tests := []struct {
		kind syntax.LitKind
		want TypeClass
	}{
		{syntax.StringLit, String},
		{syntax.BoolLit, Boolean},
		{syntax.BinaryLit, Binary},
		{syntax.IntLit, Integral},
		{syntax.ComplexLit, Complex},
		{syntax.RealLit, Real},
	}
	for _, tt := range tests {
		if got := LitClass(tt.kind); got != tt.want {
			t.Errorf("LitClass(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestLitClassFromSource(t *testing.T) {
	tests := []struct {
		src  string
		want TypeClass
	}{
		{"1.0", Real},
		{"21", Integral},
		{"'Hello, World!'", String},
		{"true", Boolean},
		{"0xff", Binary},
		{"2.0i", Complex},
		{"NaN", Real},
	}
	for _, tt := range tests {
		toks := syntax.Tokenize("test.cal", tt.src)
		if len(toks) != 1 || toks[0].Tok != syntax.Lit {
			t.Fatalf("%s: tokens = %v", tt.src, toks)
		}
		if got := LitClass(toks[0].Kind); got != tt.want {
			t.Errorf("%s: class = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestBasicClass(t *testing.T) {
	tests := []struct {
		name string
		want TypeClass
	}{
		{"i8", Integral},
		{"i64", Integral},
		{"u32", Integral},
		{"r32", Real},
		{"r64", Real},
		{"x64", Complex},
		{"bool", Boolean},
		{"b8", Binary},
		{"b64", Binary},
		{"string", String},
	}
	for _, tt := range tests {
		if got := BasicClass(tt.name); got != tt.want {
			t.Errorf("BasicClass(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBasicClassPanics(t *testing.T) {
	for _, name := range []string{"", "f32", "char"} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				if msg, _ := r.(string); !strings.Contains(msg, "should never happen") {
					t.Errorf("panic = %v", r)
				}
			}()
			BasicClass(name)
		})
	}
}

func TestMetaString(t *testing.T) {
	tok := syntax.Lexeme{Tok: syntax.Lit, Lit: "1.0", Kind: syntax.RealLit, Pos: syntax.NewPos("test.cal", 3, 9)}
	m := MetaOf(Real, tok)
	if got := m.String(); got != "real (from 1.0 on line 3)" {
		t.Errorf("String() = %q", got)
	}
}

func TestIdentical(t *testing.T) {
	a := Meta{Class: Integral}
	b := Meta{Class: Integral, Source: syntax.Lexeme{Lit: "x"}}
	c := Meta{Class: Real}
	if !Identical(a, b) {
		t.Error("same class should be identical regardless of source")
	}
	if Identical(a, c) {
		t.Error("different classes should not be identical")
	}
}

func TestIsNumeric(t *testing.T) {
	for c := Unknown; c <= Never; c++ {
		want := c == Integral || c == Real || c == Complex
		if got := IsNumeric(c); got != want {
			t.Errorf("IsNumeric(%v) = %v, want %v", c, got, want)
		}
	}
}
