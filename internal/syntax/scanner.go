package syntax

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"
)

// Scanner performs lexical analysis on Calvin source code.
//
// Every position yields exactly one token: characters that match no
// pattern come back as _Leftover tokens and are left for the parser to
// reject. The scanner itself only reports I/O and encoding problems
// through errh.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token   // token type
	lit    string  // matched source text
	kind   LitKind // literal kind (only valid when tok == _Literal)
	tokPos Pos     // token start position

	// operand reports whether the previous token can end an operand.
	// A leading + or - is only folded into a number when it cannot.
	operand bool
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each read or encoding error; if nil,
// errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{source: *newSource(filename, src, errh)}
}

// Tokenize scans src completely and returns its tokens, excluding the
// final EOF.
func Tokenize(filename, src string) []Lexeme {
	s := NewScanner(filename, strings.NewReader(src), nil)
	var toks []Lexeme
	for {
		s.Next()
		if s.tok == _EOF {
			return toks
		}
		toks = append(toks, s.Lexeme())
	}
}

// Next advances to the next token.
func (s *Scanner) Next() {
redo:
	for isWhitespace(s.ch) {
		s.nextch()
	}

	s.tokPos = s.pos()
	start := s.chOffs
	s.kind = 0

	c := s.ascii()
	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""
		return

	case isLetter(c):
		s.scanWord()

	case isDigit(c):
		s.scanNumber()

	case c == '"' || c == '\'':
		s.scanString()

	case c == '/' && s.skipComment():
		goto redo

	default:
		s.scanOperator()
	}

	s.lit = s.segment(start)
	s.operand = s.endsOperand()
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's matched text.
func (s *Scanner) Literal() string {
	return s.lit
}

// LitKind returns the current literal's kind (only valid when Token() == _Literal).
func (s *Scanner) LitKind() LitKind {
	return s.kind
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// Lexeme returns the current token as an immutable value.
func (s *Scanner) Lexeme() Lexeme {
	return Lexeme{Tok: s.tok, Lit: s.lit, Kind: s.kind, Pos: s.tokPos}
}

// ascii returns the current character if it is ASCII, or 0.
func (s *Scanner) ascii() byte {
	if s.ch >= 0 && s.ch < utf8.RuneSelf {
		return byte(s.ch)
	}
	return 0
}

// endsOperand reports whether the current token can end an operand.
func (s *Scanner) endsOperand() bool {
	switch s.tok {
	case _Name, _Literal, _Rparen, _Rbrack, _Inc, _Dec:
		return true
	}
	return false
}

// scanWord scans an identifier, keyword, word operator, basic type,
// boolean, or one of the word-shaped reals inf and NaN. The longest
// candidate wins; on a tie a literal beats a keyword, which beats a name.
func (s *Scanner) scanWord() {
	rest := s.rest()
	n := 1
	for n < len(rest) && isIdentChar(rest[n]) {
		n++
	}
	word := string(rest[:n])

	if rest[0] == 'i' || rest[0] == 'N' {
		if m, kind := matchNumber(rest, false); m >= n {
			s.tok = _Literal
			s.kind = kind
			s.skip(m)
			return
		}
	}

	s.skip(n)
	switch word {
	case "true", "false":
		s.tok = _Literal
		s.kind = BoolLit
	default:
		s.tok = LookupKeyword(word)
	}
}

// scanNumber scans a numeric literal starting with a digit.
func (s *Scanner) scanNumber() {
	n, kind := matchNumber(s.rest(), false)
	s.tok = _Literal
	s.kind = kind
	s.skip(n)
}

// scanString scans a single- or double-quoted string. A backslash escapes
// the following character; strings may span lines. An unterminated string
// leaves its opening quote as a _Leftover token.
func (s *Scanner) scanString() {
	rest := s.rest()
	q := rest[0]
	for i := 1; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			i++
		case q:
			s.tok = _Literal
			s.kind = StringLit
			s.skip(i + 1)
			return
		}
	}
	s.tok = _Leftover
	s.nextch()
}

// skipComment skips a line or block comment starting at the current '/'.
// It reports false when there is no complete comment here, in which case
// nothing is consumed. Block comments do not nest and end at the first */.
func (s *Scanner) skipComment() bool {
	rest := s.rest()
	if len(rest) < 2 {
		return false
	}
	switch rest[1] {
	case '/':
		for s.ch != '\n' && s.ch >= 0 {
			s.nextch()
		}
		return true
	case '*':
		end := bytes.Index(rest[2:], []byte("*/"))
		if end < 0 {
			return false
		}
		s.skip(2 + end + 2)
		return true
	}
	return false
}

// scanOperator scans an operator or delimiter, preferring the longest
// spelling. A + or - that cannot continue an operand absorbs a following
// number. A character that starts no operator becomes a _Leftover token.
func (s *Scanner) scanOperator() {
	ch := s.ch
	s.nextch()

	switch ch {
	case '+', '-':
		if !s.operand {
			if n, kind := matchNumber(s.buf[s.chOffs-1:], true); n > 0 {
				s.tok = _Literal
				s.kind = kind
				s.skip(n - 1)
				return
			}
		}
		switch {
		case s.ch == ch:
			s.nextch()
			s.tok = _Inc
			if ch == '-' {
				s.tok = _Dec
			}
		case s.ch == '=':
			s.nextch()
			s.tok = _AddAssign
			if ch == '-' {
				s.tok = _SubAssign
			}
		default:
			s.tok = _Add
			if ch == '-' {
				s.tok = _Sub
			}
		}
	case '*':
		s.tok = s.assignOp(_Mul, _MulAssign)
	case '/':
		s.tok = s.assignOp(_Div, _DivAssign)
	case '%':
		s.tok = s.assignOp(_Rem, _RemAssign)
	case '~':
		s.tok = s.assignOp(_Tilde, _TildeAssign)
	case '&':
		s.tok = s.assignOp(_And, _AndAssign)
	case '|':
		s.tok = s.assignOp(_Or, _OrAssign)
	case '^':
		s.tok = s.assignOp(_Xor, _XorAssign)
	case '=':
		s.tok = s.assignOp(_Assign, _Eql)
	case '!':
		if s.ch != '=' {
			s.tok = _Leftover
			return
		}
		s.nextch()
		s.tok = _Neq
	case '?':
		if s.ch != '?' {
			s.tok = _Leftover
			return
		}
		s.nextch()
		s.tok = s.assignOp(_Coalesce, _CoalesceAssign)
	case '<':
		switch s.ch {
		case '=':
			s.nextch()
			s.tok = _Leq
		case '<':
			s.nextch()
			s.tok = s.assignOp(_Shl, _ShlAssign)
		default:
			s.tok = _Lss
		}
	case '>':
		switch s.ch {
		case '=':
			s.nextch()
			s.tok = _Geq
		case '>':
			s.nextch()
			if s.ch == '>' {
				s.nextch()
				s.tok = s.assignOp(_UShr, _UShrAssign)
			} else {
				s.tok = s.assignOp(_Shr, _ShrAssign)
			}
		default:
			s.tok = _Gtr
		}
	case '(':
		s.tok = _Lparen
	case ')':
		s.tok = _Rparen
	case '{':
		s.tok = _Lbrace
	case '}':
		s.tok = _Rbrace
	case '[':
		s.tok = _Lbrack
	case ']':
		s.tok = _Rbrack
	case ';':
		s.tok = _Semi
	case ':':
		s.tok = _Colon
	case ',':
		s.tok = _Comma
	default:
		s.tok = _Leftover
	}
}

// assignOp returns with if the current character is '=' (consuming it),
// and plain otherwise.
func (s *Scanner) assignOp(plain, with Token) Token {
	if s.ch == '=' {
		s.nextch()
		return with
	}
	return plain
}

// Numeric literal matchers. Each takes the input and a start index and
// returns the end index of the longest match, or -1.

// matchNumber matches the longest numeric literal at the start of b.
// If signed is false a leading + or - never matches.
func matchNumber(b []byte, signed bool) (int, LitKind) {
	if len(b) == 0 || !signed && (b[0] == '+' || b[0] == '-') {
		return 0, 0
	}
	best, kind := 0, LitKind(0)
	try := func(end int, k LitKind) {
		if end > best {
			best, kind = end, k
		}
	}
	try(matchBinary(b, 0), BinaryLit)
	try(matchInt(b, 0), IntLit)
	try(matchComplex(b, 0), ComplexLit)
	try(matchReal(b, 0), RealLit)
	return best, kind
}

// matchGroup matches d([d_]*d)?: digits with single or repeated
// underscores between them, never at either end.
func matchGroup(b []byte, i int, digit func(byte) bool) int {
	if i >= len(b) || !digit(b[i]) {
		return -1
	}
	end := i + 1
	for j := i + 1; j < len(b) && (digit(b[j]) || b[j] == '_'); j++ {
		if digit(b[j]) {
			end = j + 1
		}
	}
	return end
}

// matchDecimal matches 0 or a decimal number without a leading zero.
func matchDecimal(b []byte, i int) int {
	if i >= len(b) {
		return -1
	}
	if b[i] == '0' {
		return i + 1
	}
	if b[i] < '1' || b[i] > '9' {
		return -1
	}
	return matchGroup(b, i, isDigit)
}

func skipSign(b []byte, i int) int {
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		return i + 1
	}
	return i
}

func matchInt(b []byte, i int) int {
	return matchDecimal(b, skipSign(b, i))
}

// matchBinary matches 0x, 0o and 0b literals.
func matchBinary(b []byte, i int) int {
	if i+2 >= len(b) || b[i] != '0' {
		return -1
	}
	switch b[i+1] {
	case 'x':
		return matchGroup(b, i+2, isHexDigit)
	case 'o':
		return matchGroup(b, i+2, isOctalDigit)
	case 'b':
		return matchGroup(b, i+2, isBinaryDigit)
	}
	return -1
}

// matchReal matches NaN, or an optionally signed inf or decimal with a
// non-empty fraction.
func matchReal(b []byte, i int) int {
	if bytes.HasPrefix(b[i:], []byte("NaN")) {
		return i + 3
	}
	i = skipSign(b, i)
	if bytes.HasPrefix(b[i:], []byte("inf")) {
		return i + 3
	}
	j := matchDecimal(b, i)
	if j < 0 || j+1 >= len(b) || b[j] != '.' || !isDigit(b[j+1]) {
		return -1
	}
	j++
	for j < len(b) && isDigit(b[j]) {
		j++
	}
	return j
}

// matchComplexPart matches a real or an integer.
func matchComplexPart(b []byte, i int) int {
	return max(matchReal(b, i), matchInt(b, i))
}

// matchComplex matches an imaginary literal such as 2.0i, or a sum
// such as 1+2j or 1.5-0.5I.
func matchComplex(b []byte, i int) int {
	re := matchComplexPart(b, i)
	if re < 0 || re >= len(b) {
		return -1
	}
	best := -1
	if isImagSuffix(b[re]) {
		best = re + 1
	}
	if b[re] == '+' || b[re] == '-' {
		if im := matchComplexPart(b, re+1); im > 0 && im < len(b) && isImagSuffix(b[im]) {
			best = max(best, im+1)
		}
	}
	return best
}
