package passes

import "github.com/you-not-fish/calvin/internal/syntax"

// Reorder regroups every operator chain in f by operator precedence and
// returns the number of rotations performed.
//
// The parser nests every chain to the right: a * b + c arrives as
// a * (b + c). Reorder works bottom-up. Once the right operand of a link
// is itself in order, the link is rotated below it whenever its operator
// binds at least as tightly as the right operand's operator, giving
// (a * b) + c. Equal levels rotate too, which makes chains of the same
// level left-associative. Assignment operators never take part.
//
// Parenthesized groups, unary operands, index and slice expressions and
// list literal elements are reordered independently.
func Reorder(f *syntax.File) int {
	r := &reorderer{}
	for _, s := range f.Stmts {
		r.stmt(s)
	}
	return r.rotations
}

type reorderer struct {
	rotations int
}

func (r *reorderer) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.LetStmt:
		r.decl(s.Decl)
	case *syntax.ReturnStmt:
		s.Result = r.expr(s.Result)
	case *syntax.ExprStmt:
		s.X = r.expr(s.X)
	case *syntax.IfStmt:
		r.predBody(s.If)
		for _, pb := range s.Elifs {
			r.predBody(pb)
		}
		r.body(s.Else)
	case *syntax.WhileStmt:
		r.body(s.Do)
		s.Cond = r.expr(s.Cond)
		r.body(s.Body)
		r.body(s.Finally)
	case *syntax.BlockStmt:
		r.body(s.Body)
	}
}

func (r *reorderer) body(b *syntax.Body) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		r.stmt(s)
	}
}

func (r *reorderer) predBody(pb *syntax.IfPredBody) {
	if pb == nil {
		return
	}
	r.decl(pb.Decl)
	pb.Cond = r.expr(pb.Cond)
	r.body(pb.Body)
}

func (r *reorderer) decl(d *syntax.Declaration) {
	if d != nil {
		d.Value = r.expr(d.Value)
	}
}

// expr reorders the chain rooted at x and returns its new root.
func (r *reorderer) expr(x *syntax.Expression) *syntax.Expression {
	if x == nil {
		return nil
	}
	r.operand(x)
	if !x.HasOp() {
		return x
	}
	x.Y = r.expr(x.Y)

	top := x.Y
	if !rotates(x, top) {
		return x
	}

	// Sink x down the left spine of top while it still binds at least as
	// tightly, then hang it where the spine ends.
	parent := top
	for {
		l, ok := parent.X.(*syntax.Expression)
		if !ok || !rotates(x, l) {
			break
		}
		parent = l
	}
	x.Y = asExpr(parent.X)
	parent.X = x

	// Each spine link x passed is one rotation.
	for e := top; ; e = e.X.(*syntax.Expression) {
		e.SetPos(x.Pos())
		r.rotations++
		if e == parent {
			break
		}
	}
	return top
}

// operand reorders the groups nested in the left operand of x.
func (r *reorderer) operand(x *syntax.Expression) {
	switch op := x.X.(type) {
	case *syntax.ChainValue:
		r.chain(op)
	case *syntax.Expression:
		x.X = r.expr(op)
	}
}

func (r *reorderer) chain(cv *syntax.ChainValue) {
	if cv == nil {
		return
	}
	r.value(cv.X)
	for _, ix := range cv.Index {
		ix.Start = r.expr(ix.Start)
		ix.End = r.expr(ix.End)
		ix.Step = r.expr(ix.Step)
	}
}

func (r *reorderer) value(v syntax.Value) {
	switch v := v.(type) {
	case *syntax.UnaryValue:
		r.chain(v.X)
	case *syntax.ParenValue:
		v.X = r.expr(v.X)
	case *syntax.ConstValue:
		if l, ok := v.Const.(*syntax.ListLit); ok {
			for i, e := range l.Elems {
				l.Elems[i] = r.expr(e)
			}
		}
	}
}

// rotates reports whether x must move below y: both are non-assignment
// links and x binds at least as tightly as y.
func rotates(x, y *syntax.Expression) bool {
	if !x.HasOp() || !y.HasOp() {
		return false
	}
	xt, yt := x.Op.Tok, y.Op.Tok
	if xt.IsAssign() || yt.IsAssign() {
		return false
	}
	return xt.Precedence() >= yt.Precedence()
}

func asExpr(op syntax.Operand) *syntax.Expression {
	if x, ok := op.(*syntax.Expression); ok {
		return x
	}
	return syntax.NewExpr(op)
}
