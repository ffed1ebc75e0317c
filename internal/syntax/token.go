// Package syntax implements lexical analysis and parsing for the Calvin
// programming language.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF      Token = iota // end of file
	_Leftover              // character matching no pattern

	// Literals
	_Name      // identifier: foo, bar, lettuce
	_Literal   // literal value (used with LitKind)
	_BasicType // bool, i32, u8, b16, r64, x32, string

	// Binary operators
	_Eql      // ==
	_Neq      // !=
	_Geq      // >=
	_Leq      // <=
	_Lss      // <
	_Gtr      // >
	_AndAnd   // and
	_OrOr     // or
	_Add      // +
	_Sub      // -
	_Mul      // *
	_Div      // /
	_Rem      // %
	_Tilde    // ~
	_And      // &
	_Or       // |
	_Xor      // ^
	_Shl      // <<
	_Shr      // >>
	_UShr     // >>>
	_Coalesce // ??
	_Assign   // =
	_In       // in

	// Compound assignment
	_AddAssign      // +=
	_SubAssign      // -=
	_MulAssign      // *=
	_DivAssign      // /=
	_RemAssign      // %=
	_TildeAssign    // ~=
	_AndAssign      // &=
	_OrAssign       // |=
	_XorAssign      // ^=
	_ShlAssign      // <<=
	_ShrAssign      // >>=
	_UShrAssign     // >>>=
	_CoalesceAssign // ??=

	// Unary and postfix operators
	_Not // not
	_Inc // ++
	_Dec // --

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Lbrack // [
	_Rbrack // ]
	_Semi   // ;
	_Colon  // :
	_Comma  // ,

	// Keywords
	_Let
	_If
	_Elif
	_Else
	_Do
	_While
	_Finally
	_Break
	_Continue
	_Return

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:      "EOF",
	_Leftover: "LEFTOVER",

	_Name:      "NAME",
	_Literal:   "LITERAL",
	_BasicType: "BASIC_TYPE",

	_Eql:      "==",
	_Neq:      "!=",
	_Geq:      ">=",
	_Leq:      "<=",
	_Lss:      "<",
	_Gtr:      ">",
	_AndAnd:   "and",
	_OrOr:     "or",
	_Add:      "+",
	_Sub:      "-",
	_Mul:      "*",
	_Div:      "/",
	_Rem:      "%",
	_Tilde:    "~",
	_And:      "&",
	_Or:       "|",
	_Xor:      "^",
	_Shl:      "<<",
	_Shr:      ">>",
	_UShr:     ">>>",
	_Coalesce: "??",
	_Assign:   "=",
	_In:       "in",

	_AddAssign:      "+=",
	_SubAssign:      "-=",
	_MulAssign:      "*=",
	_DivAssign:      "/=",
	_RemAssign:      "%=",
	_TildeAssign:    "~=",
	_AndAssign:      "&=",
	_OrAssign:       "|=",
	_XorAssign:      "^=",
	_ShlAssign:      "<<=",
	_ShrAssign:      ">>=",
	_UShrAssign:     ">>>=",
	_CoalesceAssign: "??=",

	_Not: "not",
	_Inc: "++",
	_Dec: "--",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Lbrack: "[",
	_Rbrack: "]",
	_Semi:   ";",
	_Colon:  ":",
	_Comma:  ",",

	_Let:      "let",
	_If:       "if",
	_Elif:     "elif",
	_Else:     "else",
	_Do:       "do",
	_While:    "while",
	_Finally:  "finally",
	_Break:    "break",
	_Continue: "continue",
	_Return:   "return",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Category groups tokens independently of their kind, so later passes can
// test for "any binary operator" with a single check. A token may belong to
// several categories: ++ is both a unary and a postfix operator.
type Category uint8

const (
	BinaryOp Category = 1 << iota
	CompoundAssign
	UnaryOp
	PostfixOp
	Literal
	Keyword
)

var categoryNames = [...]struct {
	c    Category
	name string
}{
	{BinaryOp, "BinOp"},
	{CompoundAssign, "CmpAsgn"},
	{UnaryOp, "UnOp"},
	{PostfixOp, "PostFix"},
	{Literal, "Literal"},
	{Keyword, "Keyword"},
}

// String lists the categories in c separated by '|'.
func (c Category) String() string {
	var s string
	for _, n := range categoryNames {
		if c&n.c != 0 {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	if s == "" {
		return "none"
	}
	return s
}

// Categories returns the set of categories t belongs to.
func (t Token) Categories() Category {
	switch {
	case t == _Literal:
		return Literal
	case t >= _Eql && t <= _In:
		return BinaryOp
	case t >= _AddAssign && t <= _CoalesceAssign:
		return CompoundAssign
	case t == _Not:
		return UnaryOp
	case t == _Inc || t == _Dec:
		return UnaryOp | PostfixOp
	case t >= _Let && t <= _Return:
		return Keyword
	}
	return 0
}

// Is reports whether t belongs to category c.
func (t Token) Is(c Category) bool {
	return t.Categories()&c != 0
}

// Precedence levels for binary operators, higher binds tighter.
// The word operators (and, or, in, ~) share the loosest ranked level,
// just above assignment.
const (
	PrecNone     = iota // not a binary operator
	PrecAssign          // = and compound assignment, never reordered
	PrecLogical         // and or in ~
	PrecCoalesce        // ??
	PrecBitOr           // |
	PrecBitAnd          // &
	PrecBitXor          // ^
	PrecEqual           // == !=
	PrecOrder           // < > <= >=
	PrecShift           // << >> >>>
	PrecAdd             // + -
	PrecMul             // * / %
)

// Precedence returns the binding level of a binary or compound-assignment
// operator, or PrecNone for any other token.
func (t Token) Precedence() int {
	switch t {
	case _Mul, _Div, _Rem:
		return PrecMul
	case _Add, _Sub:
		return PrecAdd
	case _Shl, _Shr, _UShr:
		return PrecShift
	case _Lss, _Gtr, _Leq, _Geq:
		return PrecOrder
	case _Eql, _Neq:
		return PrecEqual
	case _Xor:
		return PrecBitXor
	case _And:
		return PrecBitAnd
	case _Or:
		return PrecBitOr
	case _Coalesce:
		return PrecCoalesce
	case _AndAnd, _OrOr, _In, _Tilde:
		return PrecLogical
	case _Assign:
		return PrecAssign
	}
	if t.Is(CompoundAssign) {
		return PrecAssign
	}
	return PrecNone
}

// IsAssign reports whether t is = or a compound assignment operator.
func (t Token) IsAssign() bool {
	return t.Precedence() == PrecAssign
}

// IsKeyword reports whether t is a statement keyword.
func (t Token) IsKeyword() bool {
	return t.Is(Keyword)
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// Exported tokens for use outside the parser.
const (
	EOF       Token = _EOF
	Leftover  Token = _Leftover
	Name      Token = _Name
	Lit       Token = _Literal
	BasicType Token = _BasicType
	Assign    Token = _Assign
	Add       Token = _Add
	Sub       Token = _Sub
	Mul       Token = _Mul
	Not       Token = _Not
	Inc       Token = _Inc
	Dec       Token = _Dec
	Semi      Token = _Semi
)

// LitKind represents the kind of a literal token.
type LitKind uint8

const (
	StringLit  LitKind = iota // "hello", 'world'
	BoolLit                   // true, false
	BinaryLit                 // 0xff, 0o17, 0b1010_0101
	IntLit                    // 42, -7, 1_000
	ComplexLit                // 2.0i, 1+2j
	RealLit                   // 3.14, -inf, NaN
)

var litKindNames = [...]string{
	StringLit:  "string",
	BoolLit:    "bool",
	BinaryLit:  "binary",
	IntLit:     "int",
	ComplexLit: "complex",
	RealLit:    "real",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k <= RealLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// keywords maps word-shaped spellings to their token. A word only takes the
// keyword meaning when it stands alone; "coffeebreak" is a single _Name.
var keywords = map[string]Token{
	"let":      _Let,
	"if":       _If,
	"elif":     _Elif,
	"else":     _Else,
	"do":       _Do,
	"while":    _While,
	"finally":  _Finally,
	"break":    _Break,
	"continue": _Continue,
	"return":   _Return,
	"and":      _AndAnd,
	"or":       _OrOr,
	"in":       _In,
	"not":      _Not,
}

// LookupKeyword returns the token for a complete word: a keyword, a word
// operator, a basic type, or _Name.
func LookupKeyword(word string) Token {
	if tok, ok := keywords[word]; ok {
		return tok
	}
	if IsBasicType(word) {
		return _BasicType
	}
	return _Name
}

// IsBasicType reports whether word spells a primitive type:
// bool, string, (i|u|b)(8|16|32|64) or (r|x)(32|64).
func IsBasicType(word string) bool {
	switch word {
	case "bool", "string":
		return true
	}
	if len(word) < 2 {
		return false
	}
	size := word[1:]
	switch word[0] {
	case 'i', 'u', 'b':
		return size == "8" || size == "16" || size == "32" || size == "64"
	case 'r', 'x':
		return size == "32" || size == "64"
	}
	return false
}

// Lexeme is a scanned token together with its matched text and position.
// Lexemes are immutable once produced.
type Lexeme struct {
	Tok  Token
	Lit  string  // matched source text
	Kind LitKind // literal kind, valid when Tok == Lit
	Pos  Pos
}

// Line returns the 1-based line of the lexeme.
func (l Lexeme) Line() uint32 {
	return l.Pos.Line()
}

func (l Lexeme) String() string {
	switch l.Tok {
	case _Name, _Literal, _BasicType, _Leftover:
		return fmt.Sprintf("%s(%s)", l.Tok, l.Lit)
	}
	return l.Tok.String()
}
