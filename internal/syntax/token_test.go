package syntax

import (
	"strings"
	"testing"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{_EOF, "EOF"},
		{_Leftover, "LEFTOVER"},
		{_Name, "NAME"},
		{_Literal, "LITERAL"},
		{_BasicType, "BASIC_TYPE"},
		{_AndAnd, "and"},
		{_UShr, ">>>"},
		{_CoalesceAssign, "??="},
		{_Not, "not"},
		{_Lbrace, "{"},
		{_Finally, "finally"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("Token(%d).String() = %q, want %q", tt.tok, got, tt.want)
			}
		})
	}
}

func TestTokenNamesComplete(t *testing.T) {
	for tok := Token(0); tok < tokenCount; tok++ {
		if tokenNames[tok] == "" {
			t.Errorf("token %d has no name", tok)
		}
	}
	if got := Token(999).String(); !strings.HasPrefix(got, "token(") {
		t.Errorf("Token(999).String() = %q", got)
	}
}

func TestTokenCategories(t *testing.T) {
	tests := []struct {
		tok  Token
		want Category
	}{
		{_Name, 0},
		{_Literal, Literal},
		{_BasicType, 0},
		{_Eql, BinaryOp},
		{_AndAnd, BinaryOp},
		{_Assign, BinaryOp},
		{_In, BinaryOp},
		{_AddAssign, CompoundAssign},
		{_CoalesceAssign, CompoundAssign},
		{_Not, UnaryOp},
		{_Inc, UnaryOp | PostfixOp},
		{_Dec, UnaryOp | PostfixOp},
		{_Semi, 0},
		{_Let, Keyword},
		{_Return, Keyword},
	}

	for _, tt := range tests {
		t.Run(tt.tok.String(), func(t *testing.T) {
			if got := tt.tok.Categories(); got != tt.want {
				t.Errorf("Token(%v).Categories() = %v, want %v", tt.tok, got, tt.want)
			}
		})
	}

	if !_Inc.Is(PostfixOp) || _Not.Is(PostfixOp) {
		t.Error("postfix membership wrong for ++ or not")
	}
}

func TestCategoryString(t *testing.T) {
	if got := (UnaryOp | PostfixOp).String(); got != "UnOp|PostFix" {
		t.Errorf("got %q, want UnOp|PostFix", got)
	}
	if got := Category(0).String(); got != "none" {
		t.Errorf("got %q, want none", got)
	}
}

func TestTokenPrecedence(t *testing.T) {
	tests := []struct {
		tok  Token
		want int
	}{
		{_Name, PrecNone},
		{_Lparen, PrecNone},
		{_Not, PrecNone},

		{_Mul, PrecMul},
		{_Div, PrecMul},
		{_Rem, PrecMul},
		{_Add, PrecAdd},
		{_Sub, PrecAdd},
		{_Shl, PrecShift},
		{_Shr, PrecShift},
		{_UShr, PrecShift},
		{_Lss, PrecOrder},
		{_Geq, PrecOrder},
		{_Eql, PrecEqual},
		{_Neq, PrecEqual},
		{_Xor, PrecBitXor},
		{_And, PrecBitAnd},
		{_Or, PrecBitOr},
		{_Coalesce, PrecCoalesce},
		{_AndAnd, PrecLogical},
		{_OrOr, PrecLogical},
		{_In, PrecLogical},
		{_Tilde, PrecLogical},
		{_Assign, PrecAssign},
		{_ShlAssign, PrecAssign},
		{_CoalesceAssign, PrecAssign},
	}

	for _, tt := range tests {
		t.Run(tt.tok.String(), func(t *testing.T) {
			if got := tt.tok.Precedence(); got != tt.want {
				t.Errorf("Token(%v).Precedence() = %d, want %d", tt.tok, got, tt.want)
			}
		})
	}
}

func TestTokenIsAssign(t *testing.T) {
	for tok := Token(0); tok < tokenCount; tok++ {
		want := tok == _Assign || tok.Is(CompoundAssign)
		if got := tok.IsAssign(); got != want {
			t.Errorf("Token(%v).IsAssign() = %v, want %v", tok, got, want)
		}
	}
}

func TestLitKindString(t *testing.T) {
	tests := []struct {
		kind LitKind
		want string
	}{
		{StringLit, "string"},
		{BoolLit, "bool"},
		{BinaryLit, "binary"},
		{IntLit, "int"},
		{ComplexLit, "complex"},
		{RealLit, "real"},
		{LitKind(42), "LitKind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("LitKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		word string
		want Token
	}{
		{"let", _Let},
		{"elif", _Elif},
		{"finally", _Finally},
		{"and", _AndAnd},
		{"not", _Not},
		{"i16", _BasicType},
		{"string", _BasicType},
		{"lettuce", _Name},
		{"x16", _Name},
		{"b", _Name},
		{"true", _Name}, // booleans are literals, resolved by the scanner
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := LookupKeyword(tt.word); got != tt.want {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestKeywordCount(t *testing.T) {
	count := 0
	for tok := Token(0); tok < tokenCount; tok++ {
		if tok.IsKeyword() {
			count++
		}
	}
	if count != 10 {
		t.Errorf("keyword count = %d, want 10", count)
	}
	// keywords also holds the four word operators
	if len(keywords) != count+4 {
		t.Errorf("keywords map size = %d, want %d", len(keywords), count+4)
	}
}

func TestLexemeString(t *testing.T) {
	toks := Tokenize("", "let x = 'hi';")
	var parts []string
	for _, tok := range toks {
		parts = append(parts, tok.String())
	}
	got := strings.Join(parts, " ")
	want := "let NAME(x) = LITERAL('hi') ;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
