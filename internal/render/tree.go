// Package render draws syntax trees and scope trees for people: the
// multi-line parenthesized tree shown by calvinc parse --format paren,
// the scope dump shown with --debug-scopes, and the YAML check report.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/you-not-fish/calvin/internal/syntax"
)

// Depth colors cycle through the bright ANSI range, red to white.
var depthColors = []lipgloss.Color{"9", "10", "11", "12", "13", "14"}

// Options controls tree and scope rendering.
type Options struct {
	Color  bool // color lines by depth
	Indent int  // spaces per level, 2 if zero
}

type printer struct {
	w        io.Writer
	opts     Options
	renderer *lipgloss.Renderer
	indent   int
	err      error
}

func newPrinter(w io.Writer, opts Options) *printer {
	if opts.Indent == 0 {
		opts.Indent = 2
	}
	p := &printer{w: w, opts: opts}
	if opts.Color {
		p.renderer = lipgloss.NewRenderer(w)
	}
	return p
}

// line writes one line at the current depth.
func (p *printer) line(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	s := strings.Repeat(" ", p.indent) + fmt.Sprintf(format, args...)
	if p.renderer != nil {
		depth := p.indent / p.opts.Indent
		style := lipgloss.NewStyle().Foreground(depthColors[depth%len(depthColors)])
		s = style.Renderer(p.renderer).Render(s)
	}
	_, p.err = io.WriteString(p.w, s+"\n")
}

func (p *printer) in()  { p.indent += p.opts.Indent }
func (p *printer) out() { p.indent -= p.opts.Indent }

// Tree writes node as a parenthesized tree with one construct per line.
// Nesting depth shows operator grouping, so the output of a reordered
// tree reads as the evaluation order.
func Tree(w io.Writer, node syntax.Node, opts Options) error {
	p := newPrinter(w, opts)
	p.node(node)
	return p.err
}

func (p *printer) node(n syntax.Node) {
	switch n := n.(type) {
	case *syntax.File:
		if len(n.Stmts) == 0 {
			return
		}
		p.line("(")
		p.in()
		p.stmts(n.Stmts)
		p.out()
		p.line(")")

	case syntax.Stmt:
		p.stmt(n)

	case *syntax.Body:
		p.stmts(n.Stmts)

	case *syntax.IfPredBody:
		p.predBody(n)

	case *syntax.Declaration:
		p.decl(n)

	case *syntax.Expression:
		p.expr(n)

	case *syntax.ChainValue:
		p.chain(n)

	case syntax.Value:
		p.value(n)

	case syntax.Constant:
		p.constant(n)

	case *syntax.TypeExpr:
		p.line(": %s", syntax.TypeString(n))

	default:
		p.line("<%T>", n)
	}
}

func (p *printer) stmts(list []syntax.Stmt) {
	for _, s := range list {
		p.stmt(s)
	}
}

func (p *printer) block(open string, b *syntax.Body) {
	p.line(open)
	p.in()
	p.stmts(b.Stmts)
	p.out()
}

func (p *printer) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.LetStmt:
		p.decl(s.Decl)

	case *syntax.BranchStmt:
		p.line("%s;", s.Tok)

	case *syntax.ReturnStmt:
		if s.Result == nil {
			p.line("return;")
			return
		}
		p.line("return (")
		p.in()
		p.expr(s.Result)
		p.out()
		p.line(")")

	case *syntax.IfStmt:
		p.line("if (")
		p.predBody(s.If)
		for _, pb := range s.Elifs {
			p.line("elif (")
			p.predBody(pb)
		}
		if s.Else != nil {
			p.block("else {", s.Else)
			p.line("}")
		}

	case *syntax.WhileStmt:
		if s.Do != nil {
			p.block("do {", s.Do)
			p.line("} while (")
		} else {
			p.line("while (")
		}
		p.in()
		p.expr(s.Cond)
		p.out()
		if s.Body != nil {
			p.block(") {", s.Body)
		} else {
			p.line(") {")
		}
		if s.Finally != nil {
			p.block("} finally {", s.Finally)
		}
		p.line("}")

	case *syntax.BlockStmt:
		p.block("{", s.Body)
		p.line("}")

	case *syntax.ExprStmt:
		p.expr(s.X)

	case *syntax.EmptyStmt:
		p.line(";")
	}
}

func (p *printer) predBody(pb *syntax.IfPredBody) {
	p.in()
	if pb.Decl != nil {
		p.decl(pb.Decl)
	} else if pb.Cond != nil {
		p.expr(pb.Cond)
	}
	p.out()
	p.block(") {", pb.Body)
	p.line("}")
}

func (p *printer) decl(d *syntax.Declaration) {
	if d.Value != nil {
		p.line("let %s = (", d.Name.Lit)
	} else {
		p.line("let %s", d.Name.Lit)
	}
	p.in()
	if d.Type != nil {
		p.line(": %s", syntax.TypeString(d.Type))
	}
	if d.Value != nil {
		p.expr(d.Value)
	}
	p.out()
	if d.Value != nil {
		p.line(")")
	}
}

func (p *printer) expr(x *syntax.Expression) {
	switch {
	case x.HasOp():
		p.line("(%s", x.Op.Lit)
	case x.Postfix != nil:
		p.line("(%s", x.Postfix.Lit)
	default:
		p.line("(")
	}
	p.in()
	p.operand(x.X)
	if x.HasOp() {
		p.expr(x.Y)
	}
	p.out()
	p.line(")")
}

func (p *printer) operand(x syntax.Operand) {
	switch x := x.(type) {
	case *syntax.Expression:
		p.expr(x)
	case *syntax.ChainValue:
		p.chain(x)
	}
}

func (p *printer) chain(c *syntax.ChainValue) {
	p.value(c.X)
	for _, ix := range c.Index {
		p.line("[")
		p.in()
		parts := []*syntax.Expression{ix.Start, ix.End, ix.Step}
		for i := 0; i <= ix.Colons; i++ {
			if i > 0 {
				p.line(":")
			}
			if parts[i] != nil {
				p.expr(parts[i])
			}
		}
		p.out()
		p.line("]")
	}
}

func (p *printer) value(v syntax.Value) {
	switch v := v.(type) {
	case *syntax.ParenValue:
		p.line("(")
		p.in()
		p.expr(v.X)
		p.out()
		p.line(")")
	case *syntax.ConstValue:
		p.constant(v.Const)
	case *syntax.NameValue:
		p.line("%s", v.Name.Lit)
	case *syntax.UnaryValue:
		p.line("(%s!", v.Op.Lit)
		p.in()
		p.chain(v.X)
		p.out()
		p.line(")")
	}
}

func (p *printer) constant(c syntax.Constant) {
	switch c := c.(type) {
	case *syntax.BasicLit:
		p.line("%s", c.Lit.Lit)
	case *syntax.ListLit:
		p.line("[")
		p.in()
		for _, e := range c.Elems {
			p.expr(e)
		}
		p.out()
		p.line("]")
	}
}
