package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented textual representation of the CST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// child prints a labeled optional child one level deeper.
func (p *printer) child(label string, node Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(node)
	p.indent--
}

func (p *printer) body(label string, b *Body) {
	if b != nil {
		p.child(label, b)
	}
}

func (p *printer) expr(label string, x *Expression) {
	if x != nil {
		p.child(label, x)
	}
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *File:
		p.printf("File %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *EmptyStmt:
		p.printf("EmptyStmt %s\n", n.pos)

	case *LetStmt:
		p.printf("LetStmt %s\n", n.pos)
		p.indent++
		p.print(n.Decl)
		p.indent--

	case *BranchStmt:
		p.printf("BranchStmt %s %s\n", n.pos, n.Tok)

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.child("If", n.If)
		for _, pb := range n.Elifs {
			p.child("Elif", pb)
		}
		p.body("Else", n.Else)
		p.indent--

	case *WhileStmt:
		p.printf("WhileStmt %s\n", n.pos)
		p.indent++
		p.body("Do", n.Do)
		p.expr("Cond", n.Cond)
		p.body("Body", n.Body)
		p.body("Finally", n.Finally)
		p.indent--

	case *BlockStmt:
		p.printf("BlockStmt %s\n", n.pos)
		p.indent++
		p.print(n.Body)
		p.indent--

	case *IfPredBody:
		p.printf("IfPredBody %s\n", n.pos)
		p.indent++
		if n.Decl != nil {
			p.child("Let", n.Decl)
		}
		p.expr("Cond", n.Cond)
		p.body("Body", n.Body)
		p.indent--

	case *Body:
		p.printf("Body %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *Declaration:
		p.printf("Declaration %s %s\n", n.pos, n.Name.Lit)
		p.indent++
		if n.Type != nil {
			p.printf("Type: %s\n", TypeString(n.Type))
		}
		p.expr("Value", n.Value)
		p.indent--

	case *Expression:
		switch {
		case n.HasOp():
			p.printf("Expression %s %s\n", n.pos, n.Op.Lit)
			p.indent++
			p.child("X", n.X)
			p.child("Y", n.Y)
			p.indent--
		case n.Postfix != nil:
			p.printf("Expression %s postfix %s\n", n.pos, n.Postfix.Lit)
			p.indent++
			p.print(n.X)
			p.indent--
		default:
			p.print(n.X)
		}

	case *ChainValue:
		if len(n.Index) == 0 {
			p.print(n.X)
			return
		}
		p.printf("ChainValue %s\n", n.pos)
		p.indent++
		p.print(n.X)
		for _, ix := range n.Index {
			p.print(ix)
		}
		p.indent--

	case *IndexOrSlice:
		p.printf("IndexOrSlice %s colons=%d\n", n.pos, n.Colons)
		p.indent++
		p.expr("Start", n.Start)
		p.expr("End", n.End)
		p.expr("Step", n.Step)
		p.indent--

	case *UnaryValue:
		p.printf("UnaryValue %s %s\n", n.pos, n.Op.Lit)
		p.indent++
		p.print(n.X)
		p.indent--

	case *ConstValue:
		p.print(n.Const)

	case *NameValue:
		p.printf("Name %s %q\n", n.pos, n.Name.Lit)

	case *ParenValue:
		p.printf("ParenValue %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *BasicLit:
		p.printf("BasicLit %s %s %s\n", n.pos, n.Lit.Kind, n.Lit.Lit)

	case *ListLit:
		p.printf("ListLit %s len=%d\n", n.pos, len(n.Elems))
		p.indent++
		for _, e := range n.Elems {
			p.print(e)
		}
		p.indent--

	case *TypeExpr:
		p.printf("Type %s %s\n", n.pos, TypeString(n))

	default:
		p.printf("<%T>\n", node)
	}
}

// TypeString returns the source spelling of a type: i32[4][].
func TypeString(t *TypeExpr) string {
	if t == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(t.Name.Lit)
	for _, d := range t.Dims {
		b.WriteByte('[')
		if d.Len != nil {
			b.WriteString(d.Len.Lit)
		}
		b.WriteByte(']')
	}
	return b.String()
}
