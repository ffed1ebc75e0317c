package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Every node corresponds to one grammar production and reports its name
// through Production. Productions with alternatives (statement, value,
// constant) are interfaces with one concrete node per alternative.

// Node is the interface implemented by all CST nodes.
type Node interface {
	Pos() Pos           // position of first character belonging to the node
	Production() string // grammar production the node was built from
	aNode()             // marker method to restrict implementations to this package
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Value is the interface for the alternatives of the value production.
type Value interface {
	Node
	aValue()
}

// Constant is the interface for the alternatives of the constant production.
type Constant interface {
	Node
	aConstant()
}

// Operand is the left operand of an Expression. The parser only ever
// produces *ChainValue; the reorder pass nests *Expression groups here.
type Operand interface {
	Node
	aOperand()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all CST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos       { return n.pos }
func (n *node) SetPos(pos Pos) { n.pos = pos }
func (n *node) aNode()         {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt()             {}
func (*stmt) Production() string { return "statement" }

// value is embedded in all value nodes.
type value struct{ node }

func (*value) aValue()            {}
func (*value) Production() string { return "value" }

// constant is embedded in all constant nodes.
type constant struct{ node }

func (*constant) aConstant()         {}
func (*constant) Production() string { return "constant" }

// ----------------------------------------------------------------------------
// File and statements

// File represents a complete compilation unit.
type File struct {
	node
	Stmts []Stmt
	EOF   Pos // position of the end of input
}

func (*File) Production() string { return "file" }

// EmptyStmt represents a lone semicolon.
type EmptyStmt struct {
	stmt
}

// LetStmt represents let Decl;
type LetStmt struct {
	stmt
	Decl *Declaration
}

// BranchStmt represents break; or continue;
type BranchStmt struct {
	stmt
	Tok Token // _Break or _Continue
}

// ReturnStmt represents return [Result];
type ReturnStmt struct {
	stmt
	Result *Expression // nil for bare return
}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	stmt
	X *Expression
}

// IfStmt represents if (...) {...} elif (...) {...} else {...}
type IfStmt struct {
	stmt
	If    *IfPredBody
	Elifs []*IfPredBody
	Else  *Body // nil if absent
}

// WhileStmt represents [do {...}] while Cond (; | {...}) [finally {...}]
type WhileStmt struct {
	stmt
	Do      *Body // nil if absent
	Cond    *Expression
	Body    *Body // nil when the loop ends in ';'
	Finally *Body // nil if absent
}

// BlockStmt represents a bare { ... } block.
type BlockStmt struct {
	stmt
	Body *Body
}

// IfPredBody is the (predicate) {body} part shared by if and elif.
// Exactly one of Decl and Cond is set on a well-formed tree.
type IfPredBody struct {
	node
	Decl *Declaration // set for (let ...)
	Cond *Expression
	Body *Body
}

func (*IfPredBody) Production() string { return "ifPredBody" }

// Body represents { Stmts... }.
type Body struct {
	node
	Stmts  []Stmt
	Rbrace Pos
}

func (*Body) Production() string { return "body" }

// Declaration represents Name [: Type] [= Value].
type Declaration struct {
	node
	Name  Lexeme
	Type  *TypeExpr   // nil if absent
	Value *Expression // nil if absent
}

func (*Declaration) Production() string { return "declaration" }

// ----------------------------------------------------------------------------
// Expressions

// Expression is one link of an operator chain: X [Op Y] or X Postfix.
//
// As parsed, X is always a *ChainValue and Y continues the chain to the
// right, so a op b op c nests as a op (b op c) regardless of precedence.
// The reorder pass fixes grouping by moving links under X.
type Expression struct {
	node
	X       Operand
	Op      *Lexeme     // binary or compound assignment operator, nil if none
	Y       *Expression // right operand, set iff Op is set
	Postfix *Lexeme     // ++ or --, nil if none
}

func (*Expression) Production() string { return "expression" }
func (*Expression) aOperand()          {}

// NewExpr returns an operator-free expression holding x.
func NewExpr(x Operand) *Expression {
	e := &Expression{X: x}
	e.pos = x.Pos()
	return e
}

// HasOp reports whether x is a binary link.
func (x *Expression) HasOp() bool {
	return x.Op != nil && x.Y != nil
}

// ChainValue represents a value followed by index or slice suffixes.
type ChainValue struct {
	node
	X     Value
	Index []*IndexOrSlice
}

func (*ChainValue) Production() string { return "chainValue" }
func (*ChainValue) aOperand()          {}

// IndexOrSlice represents [Start], [Start:End] or [Start:End:Step],
// any part of which may be empty.
type IndexOrSlice struct {
	node
	Start  *Expression
	End    *Expression
	Step   *Expression
	Colons int // 0, 1 or 2
	Rbrack Pos
}

func (*IndexOrSlice) Production() string { return "indexOrSlice" }

// UnaryValue represents Op X where Op is not, ++ or --.
type UnaryValue struct {
	value
	Op Lexeme
	X  *ChainValue
}

// ConstValue wraps a constant.
type ConstValue struct {
	value
	Const Constant
}

// NameValue represents a use of an identifier.
type NameValue struct {
	value
	Name Lexeme
}

// ParenValue represents ( X ).
type ParenValue struct {
	value
	X      *Expression
	Rparen Pos
}

// BasicLit represents a literal token.
type BasicLit struct {
	constant
	Lit Lexeme
}

// ListLit represents [Elems...].
type ListLit struct {
	constant
	Elems  []*Expression
	Rbrack Pos
}

// ----------------------------------------------------------------------------
// Types

// TypeExpr represents a basic type followed by array suffixes: i32[4][].
type TypeExpr struct {
	node
	Name Lexeme // _BasicType
	Dims []*ArrayType
}

func (*TypeExpr) Production() string { return "type" }

// ArrayType represents [Len] or [].
type ArrayType struct {
	node
	Len *Lexeme // integer literal, nil if absent
}

func (*ArrayType) Production() string { return "arrayType" }
