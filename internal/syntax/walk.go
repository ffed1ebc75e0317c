package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses a CST in depth-first order, visiting children in source
// order. Absent optional children are skipped.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *LetStmt:
		walkDecl(n.Decl, v)

	case *ReturnStmt:
		walkExpr(n.Result, v)

	case *ExprStmt:
		walkExpr(n.X, v)

	case *IfStmt:
		walkPredBody(n.If, v)
		for _, pb := range n.Elifs {
			walkPredBody(pb, v)
		}
		walkBody(n.Else, v)

	case *WhileStmt:
		walkBody(n.Do, v)
		walkExpr(n.Cond, v)
		walkBody(n.Body, v)
		walkBody(n.Finally, v)

	case *BlockStmt:
		walkBody(n.Body, v)

	case *IfPredBody:
		walkDecl(n.Decl, v)
		walkExpr(n.Cond, v)
		walkBody(n.Body, v)

	case *Body:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *Declaration:
		if n.Type != nil {
			Walk(n.Type, v)
		}
		walkExpr(n.Value, v)

	case *Expression:
		Walk(n.X, v)
		walkExpr(n.Y, v)

	case *ChainValue:
		Walk(n.X, v)
		for _, ix := range n.Index {
			Walk(ix, v)
		}

	case *IndexOrSlice:
		walkExpr(n.Start, v)
		walkExpr(n.End, v)
		walkExpr(n.Step, v)

	case *UnaryValue:
		if n.X != nil {
			Walk(n.X, v)
		}

	case *ConstValue:
		Walk(n.Const, v)

	case *ParenValue:
		walkExpr(n.X, v)

	case *ListLit:
		for _, e := range n.Elems {
			walkExpr(e, v)
		}

	case *TypeExpr:
		for _, d := range n.Dims {
			Walk(d, v)
		}

	// Leaf nodes: EmptyStmt, BranchStmt, NameValue, BasicLit, ArrayType
	}
}

// The helpers below keep typed nil pointers out of the Node interface.

func walkExpr(x *Expression, v Visitor) {
	if x != nil {
		Walk(x, v)
	}
}

func walkBody(b *Body, v Visitor) {
	if b != nil {
		Walk(b, v)
	}
}

func walkDecl(d *Declaration, v Visitor) {
	if d != nil {
		Walk(d, v)
	}
}

func walkPredBody(pb *IfPredBody, v Visitor) {
	if pb != nil {
		Walk(pb, v)
	}
}

// Inspect traverses a CST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
