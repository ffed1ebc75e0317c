package types2

import "github.com/you-not-fish/calvin/internal/syntax"

// stmts checks a list of statements in the current scope.
func (c *Checker) stmts(list []syntax.Stmt) {
	for _, s := range list {
		c.stmt(s)
	}
}

// stmt checks a single statement.
func (c *Checker) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.EmptyStmt, *syntax.BranchStmt:
		// nothing to check

	case *syntax.LetStmt:
		c.declaration(s.Decl)

	case *syntax.ReturnStmt:
		if s.Result != nil {
			c.expr(s.Result)
		}

	case *syntax.ExprStmt:
		c.expr(s.X)

	case *syntax.IfStmt:
		c.ifStmt(s)

	case *syntax.WhileStmt:
		c.whileStmt(s)

	case *syntax.BlockStmt:
		c.openBody(anonScope, s.Body)
	}
}

// ifStmt checks each clause in its own scope. A declaration in a clause's
// predicate belongs to that clause's scope.
func (c *Checker) ifStmt(s *syntax.IfStmt) {
	c.pushScope(ifScope, s.If)
	c.predBody(s.If)
	c.popScope()

	for _, pb := range s.Elifs {
		c.pushScope(elifScope, pb)
		c.predBody(pb)
		c.popScope()
	}

	if s.Else != nil {
		c.openBody(elseScope, s.Else)
	}
}

func (c *Checker) predBody(pb *syntax.IfPredBody) {
	if pb.Decl != nil {
		c.declaration(pb.Decl)
	} else if pb.Cond != nil {
		c.expr(pb.Cond)
	}
	c.body(pb.Body)
}

// whileStmt checks the do, while and finally bodies in separate scopes.
// The condition is checked in the enclosing scope.
func (c *Checker) whileStmt(s *syntax.WhileStmt) {
	if s.Do != nil {
		c.openBody(doScope, s.Do)
	}
	c.expr(s.Cond)
	if s.Body != nil {
		c.openBody(whileScope, s.Body)
	}
	if s.Finally != nil {
		c.openBody(finallyScope, s.Finally)
	}
}

// openBody checks b in a new scope.
func (c *Checker) openBody(k construct, b *syntax.Body) {
	c.pushScope(k, b)
	c.body(b)
	c.popScope()
}

func (c *Checker) body(b *syntax.Body) {
	if b != nil {
		c.stmts(b.Stmts)
	}
}
