package syntax

import "strings"

// Sexpr renders a node in a compact prefix form that makes operator
// grouping explicit: "let a = 1 * 2 + 3;" after reordering renders as
// (let a (+ (* 1 2) 3)). Parentheses from the source are not kept;
// grouping is shown by nesting alone.
func Sexpr(node Node) string {
	var b strings.Builder
	writeSexpr(&b, node)
	return b.String()
}

func writeSexpr(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *File:
		for i, s := range n.Stmts {
			if i > 0 {
				b.WriteByte('\n')
			}
			writeSexpr(b, s)
		}

	case *EmptyStmt:
		b.WriteString("(;)")

	case *LetStmt:
		b.WriteString("(let ")
		writeSexpr(b, n.Decl)
		b.WriteByte(')')

	case *BranchStmt:
		b.WriteString("(" + n.Tok.String() + ")")

	case *ReturnStmt:
		b.WriteString("(return")
		if n.Result != nil {
			b.WriteByte(' ')
			writeSexpr(b, n.Result)
		}
		b.WriteByte(')')

	case *ExprStmt:
		writeSexpr(b, n.X)

	case *IfStmt:
		b.WriteString("(if ")
		writeSexpr(b, n.If)
		for _, pb := range n.Elifs {
			b.WriteString(" elif ")
			writeSexpr(b, pb)
		}
		if n.Else != nil {
			b.WriteString(" else ")
			writeSexpr(b, n.Else)
		}
		b.WriteByte(')')

	case *WhileStmt:
		b.WriteString("(")
		if n.Do != nil {
			b.WriteString("do ")
			writeSexpr(b, n.Do)
			b.WriteByte(' ')
		}
		b.WriteString("while ")
		writeSexpr(b, n.Cond)
		if n.Body != nil {
			b.WriteByte(' ')
			writeSexpr(b, n.Body)
		}
		if n.Finally != nil {
			b.WriteString(" finally ")
			writeSexpr(b, n.Finally)
		}
		b.WriteByte(')')

	case *BlockStmt:
		writeSexpr(b, n.Body)

	case *IfPredBody:
		if n.Decl != nil {
			b.WriteString("(let ")
			writeSexpr(b, n.Decl)
			b.WriteByte(')')
		} else if n.Cond != nil {
			writeSexpr(b, n.Cond)
		}
		b.WriteByte(' ')
		writeSexpr(b, n.Body)

	case *Body:
		b.WriteByte('{')
		for i, s := range n.Stmts {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeSexpr(b, s)
		}
		b.WriteByte('}')

	case *Declaration:
		b.WriteString(n.Name.Lit)
		if n.Type != nil {
			b.WriteString(":" + TypeString(n.Type))
		}
		if n.Value != nil {
			b.WriteByte(' ')
			writeSexpr(b, n.Value)
		}

	case *Expression:
		switch {
		case n.HasOp():
			b.WriteString("(" + n.Op.Lit + " ")
			writeSexpr(b, n.X)
			b.WriteByte(' ')
			writeSexpr(b, n.Y)
			b.WriteByte(')')
		case n.Postfix != nil:
			b.WriteByte('(')
			writeSexpr(b, n.X)
			b.WriteString(" " + n.Postfix.Lit + ")")
		default:
			writeSexpr(b, n.X)
		}

	case *ChainValue:
		writeSexpr(b, n.X)
		for _, ix := range n.Index {
			writeSexpr(b, ix)
		}

	case *IndexOrSlice:
		b.WriteByte('[')
		parts := []*Expression{n.Start, n.End, n.Step}
		for i := 0; i <= n.Colons; i++ {
			if i > 0 {
				b.WriteByte(':')
			}
			if parts[i] != nil {
				writeSexpr(b, parts[i])
			}
		}
		b.WriteByte(']')

	case *UnaryValue:
		b.WriteString("(" + n.Op.Lit + " ")
		writeSexpr(b, n.X)
		b.WriteByte(')')

	case *ConstValue:
		writeSexpr(b, n.Const)

	case *NameValue:
		b.WriteString(n.Name.Lit)

	case *ParenValue:
		writeSexpr(b, n.X)

	case *BasicLit:
		b.WriteString(n.Lit.Lit)

	case *ListLit:
		b.WriteByte('[')
		for i, e := range n.Elems {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeSexpr(b, e)
		}
		b.WriteByte(']')

	case *TypeExpr:
		b.WriteString(TypeString(n))
	}
}
