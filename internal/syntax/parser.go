package syntax

import (
	"fmt"
	"io"
)

// MaxErrors is the default number of syntax errors after which parsing
// stops.
const MaxErrors = 10

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// lexer is the token stream a Parser reads from.
type lexer interface {
	Next()
	Lexeme() Lexeme
}

// Parser performs syntax analysis on Calvin source code.
//
// The grammar needs one token of lookahead. On a mismatch the parser
// records an error, skips to the next statement boundary and goes on, so a
// single run reports as many problems as it can. Errors found while
// skipping are suppressed until the next statement starts.
type Parser struct {
	lex lexer

	// Current token info
	cur Lexeme
	tok Token
	pos Pos

	// Error handling
	errh       func(pos Pos, msg string)
	errs       []*SyntaxError
	maxErrors  int
	abort      bool // set when the error limit is reached
	recovering bool // skipping after an error in the current statement
}

// NewParser creates a new Parser for the given source.
// The errh function, if not nil, is called for each error as it is found.
func NewParser(filename string, src io.Reader, errh func(pos Pos, msg string)) *Parser {
	p := &Parser{errh: errh, maxErrors: MaxErrors}
	p.lex = NewScanner(filename, src, func(line, col uint32, msg string) {
		p.errorAt(NewPos(filename, line, col), msg)
	})
	p.next()
	return p
}

// NewTokenParser creates a Parser reading already scanned tokens.
func NewTokenParser(toks []Lexeme, errh func(pos Pos, msg string)) *Parser {
	p := &Parser{lex: &tokenList{toks: toks}, errh: errh, maxErrors: MaxErrors}
	p.next()
	return p
}

// ParseTokens parses toks and returns the tree with all syntax errors.
// The tree is only reliable if the error list is empty.
func ParseTokens(toks []Lexeme) (*File, []*SyntaxError) {
	p := NewTokenParser(toks, nil)
	f := p.Parse()
	return f, p.Errors()
}

// tokenList replays a token slice, then repeats EOF.
type tokenList struct {
	toks []Lexeme
	i    int
	cur  Lexeme
}

func (l *tokenList) Next() {
	if l.i < len(l.toks) {
		l.cur = l.toks[l.i]
		l.i++
		return
	}
	l.cur = Lexeme{Tok: _EOF, Pos: l.cur.Pos}
}

func (l *tokenList) Lexeme() Lexeme {
	return l.cur
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	if p.abort {
		p.tok = _EOF
		return
	}
	p.lex.Next()
	p.cur = p.lex.Lexeme()
	p.tok = p.cur.Tok
	p.pos = p.cur.Pos
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, it reports an error and skips to a statement boundary.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError("expected " + tok.String())
		p.advance()
	}
}

// expect is like want but returns the position of the expected token.
func (p *Parser) expect(tok Token) Pos {
	pos := p.pos
	p.want(tok)
	return pos
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError reports a syntax error at the current token.
func (p *Parser) syntaxError(msg string) {
	if p.recovering {
		return
	}
	p.recovering = true
	p.errorAt(p.pos, msg+", found "+p.found())
}

// found describes the current token for error messages.
func (p *Parser) found() string {
	switch p.tok {
	case _EOF:
		return "EOF"
	case _Leftover:
		return fmt.Sprintf("unexpected character %q", p.cur.Lit)
	case _Name, _Literal, _BasicType:
		return p.cur.String()
	}
	return fmt.Sprintf("%q", p.tok.String())
}

// SetMaxErrors sets the error limit. A limit of zero or less disables it.
func (p *Parser) SetMaxErrors(n int) {
	p.maxErrors = n
}

// errorAt records an error and aborts once the error limit is reached.
func (p *Parser) errorAt(pos Pos, msg string) {
	if p.abort {
		return
	}
	p.errs = append(p.errs, &SyntaxError{Pos: pos, Msg: msg})
	if p.errh != nil {
		p.errh(pos, msg)
	}

	if p.maxErrors > 0 && len(p.errs) >= p.maxErrors {
		p.abort = true
		if p.errh != nil {
			p.errh(pos, "too many errors; aborting parse")
		}
		p.tok = _EOF
	}
}

// stmtSync holds the tokens where statement-level recovery can resume.
var stmtSync = map[Token]bool{
	_Semi:     true,
	_Rbrace:   true,
	_Let:      true,
	_If:       true,
	_Do:       true,
	_While:    true,
	_Break:    true,
	_Continue: true,
	_Return:   true,
	_EOF:      true,
}

// advance skips tokens up to, but not including, a synchronization point.
func (p *Parser) advance() {
	for !stmtSync[p.tok] {
		p.next()
	}
}

// Errors returns the syntax errors found so far.
func (p *Parser) Errors() []*SyntaxError {
	return p.errs
}

// FirstError returns the first error encountered, or nil if none.
func (p *Parser) FirstError() error {
	if len(p.errs) == 0 {
		return nil
	}
	return p.errs[0]
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete compilation unit.
func (p *Parser) Parse() *File {
	f := &File{}
	f.pos = p.pos

	for !p.abort && p.tok != _EOF {
		if p.tok == _Rbrace {
			p.errorAt(p.pos, "unexpected }")
			p.next()
			continue
		}
		if s := p.stmt(); s != nil {
			f.Stmts = append(f.Stmts, s)
		}
	}

	f.EOF = p.pos
	return f
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses a single statement.
func (p *Parser) stmt() Stmt {
	p.recovering = false

	switch p.tok {
	case _Semi:
		s := &EmptyStmt{}
		s.pos = p.pos
		p.next()
		return s

	case _Let:
		s := &LetStmt{}
		s.pos = p.pos
		p.next()
		s.Decl = p.declaration()
		p.want(_Semi)
		return s

	case _Break, _Continue:
		s := &BranchStmt{Tok: p.tok}
		s.pos = p.pos
		p.next()
		p.want(_Semi)
		return s

	case _Return:
		s := &ReturnStmt{}
		s.pos = p.pos
		p.next()
		if startsExpr(p.tok) {
			s.Result = p.expr()
		}
		p.want(_Semi)
		return s

	case _If:
		return p.ifStmt()

	case _Do, _While:
		return p.whileStmt()

	case _Lbrace:
		s := &BlockStmt{}
		s.pos = p.pos
		s.Body = p.body()
		return s
	}

	if startsExpr(p.tok) {
		s := &ExprStmt{}
		s.pos = p.pos
		s.X = p.expr()
		p.want(_Semi)
		return s
	}

	p.syntaxError("expected statement")
	p.next()
	p.advance()
	return nil
}

// startsExpr reports whether tok can begin an expression.
func startsExpr(tok Token) bool {
	switch tok {
	case _Literal, _Name, _Lparen, _Lbrack:
		return true
	}
	return tok.Is(UnaryOp)
}

// ifStmt parses: if ifPredBody (elif ifPredBody)* (else body)?
func (p *Parser) ifStmt() *IfStmt {
	s := &IfStmt{}
	s.pos = p.pos
	p.want(_If)

	s.If = p.ifPredBody()
	for p.got(_Elif) {
		s.Elifs = append(s.Elifs, p.ifPredBody())
	}
	if p.got(_Else) {
		s.Else = p.body()
	}
	return s
}

// ifPredBody parses: ( (let declaration | expression) ) body
func (p *Parser) ifPredBody() *IfPredBody {
	pb := &IfPredBody{}
	pb.pos = p.pos

	p.want(_Lparen)
	if p.got(_Let) {
		pb.Decl = p.declaration()
	} else {
		pb.Cond = p.expr()
	}
	p.want(_Rparen)
	pb.Body = p.body()
	return pb
}

// whileStmt parses: (do body)? while expression (; | body) (finally body)?
func (p *Parser) whileStmt() *WhileStmt {
	s := &WhileStmt{}
	s.pos = p.pos

	if p.got(_Do) {
		s.Do = p.body()
	}
	p.want(_While)
	s.Cond = p.expr()
	if !p.got(_Semi) {
		s.Body = p.body()
	}
	if p.got(_Finally) {
		s.Finally = p.body()
	}
	return s
}

// body parses: { statement* }
func (p *Parser) body() *Body {
	b := &Body{}
	b.pos = p.pos

	p.want(_Lbrace)
	for !p.abort && p.tok != _Rbrace && p.tok != _EOF {
		if s := p.stmt(); s != nil {
			b.Stmts = append(b.Stmts, s)
		}
	}
	b.Rbrace = p.expect(_Rbrace)
	return b
}

// declaration parses: ID (: type)? (= expression)?
func (p *Parser) declaration() *Declaration {
	d := &Declaration{}
	d.pos = p.pos

	d.Name = p.name()
	if p.got(_Colon) {
		d.Type = p.typ()
	}
	if p.got(_Assign) {
		d.Value = p.expr()
	}
	return d
}

// name parses an identifier.
func (p *Parser) name() Lexeme {
	if p.tok != _Name {
		p.syntaxError("expected identifier")
		n := Lexeme{Tok: _Name, Lit: "_", Pos: p.pos}
		p.advance()
		return n
	}
	n := p.cur
	p.next()
	return n
}

// ----------------------------------------------------------------------------
// Types

// typ parses: BASIC_TYPE arrayType*
func (p *Parser) typ() *TypeExpr {
	t := &TypeExpr{}
	t.pos = p.pos

	if p.tok != _BasicType {
		p.syntaxError("expected type")
		t.Name = Lexeme{Tok: _BasicType, Lit: "_", Pos: p.pos}
		p.advance()
		return t
	}
	t.Name = p.cur
	p.next()

	for p.tok == _Lbrack {
		t.Dims = append(t.Dims, p.arrayType())
	}
	return t
}

// arrayType parses: [ INT? ]
func (p *Parser) arrayType() *ArrayType {
	a := &ArrayType{}
	a.pos = p.pos

	p.want(_Lbrack)
	if p.tok == _Literal && p.cur.Kind == IntLit {
		n := p.cur
		a.Len = &n
		p.next()
	}
	p.want(_Rbrack)
	return a
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses: chainValue ( PostfixOp | (CompoundAssignOp | BinOp) expression )?
//
// Operators are not ranked here: every chain nests to the right.
func (p *Parser) expr() *Expression {
	x := &Expression{}
	x.pos = p.pos
	x.X = p.chainValue()

	switch {
	case p.tok.Is(PostfixOp):
		op := p.cur
		x.Postfix = &op
		p.next()
	case p.tok.Is(BinaryOp | CompoundAssign):
		op := p.cur
		x.Op = &op
		p.next()
		x.Y = p.expr()
	}
	return x
}

// chainValue parses: value indexOrSlice*
func (p *Parser) chainValue() *ChainValue {
	cv := &ChainValue{}
	cv.pos = p.pos
	cv.X = p.value()

	for p.tok == _Lbrack {
		cv.Index = append(cv.Index, p.indexOrSlice())
	}
	return cv
}

// indexOrSlice parses: [ expression? ( : expression? ( : expression? )? )? ]
func (p *Parser) indexOrSlice() *IndexOrSlice {
	ix := &IndexOrSlice{}
	ix.pos = p.pos

	p.want(_Lbrack)
	if startsExpr(p.tok) {
		ix.Start = p.expr()
	}
	if p.got(_Colon) {
		ix.Colons++
		if startsExpr(p.tok) {
			ix.End = p.expr()
		}
		if p.got(_Colon) {
			ix.Colons++
			if startsExpr(p.tok) {
				ix.Step = p.expr()
			}
		}
	}
	ix.Rbrack = p.expect(_Rbrack)
	return ix
}

// value parses: UnaryOp chainValue | constant | ID | ( expression )
func (p *Parser) value() Value {
	pos := p.pos

	switch {
	case p.tok.Is(UnaryOp):
		v := &UnaryValue{Op: p.cur}
		v.pos = pos
		p.next()
		v.X = p.chainValue()
		return v

	case p.tok == _Literal:
		lit := &BasicLit{Lit: p.cur}
		lit.pos = pos
		p.next()
		return p.constValue(lit)

	case p.tok == _Lbrack:
		return p.constValue(p.listLit())

	case p.tok == _Name:
		v := &NameValue{Name: p.cur}
		v.pos = pos
		p.next()
		return v

	case p.tok == _Lparen:
		v := &ParenValue{}
		v.pos = pos
		p.next()
		v.X = p.expr()
		v.Rparen = p.expect(_Rparen)
		return v
	}

	p.syntaxError("expected operand")
	v := &NameValue{Name: Lexeme{Tok: _Name, Lit: "_", Pos: pos}}
	v.pos = pos
	p.advance()
	return v
}

func (p *Parser) constValue(c Constant) *ConstValue {
	v := &ConstValue{Const: c}
	v.pos = c.Pos()
	return v
}

// listLit parses: [ (expression (, expression)*)? ]
func (p *Parser) listLit() *ListLit {
	l := &ListLit{}
	l.pos = p.pos

	p.want(_Lbrack)
	for p.tok != _Rbrack && p.tok != _EOF {
		l.Elems = append(l.Elems, p.expr())
		if !p.got(_Comma) {
			break
		}
	}
	l.Rbrack = p.expect(_Rbrack)
	return l
}
