package syntax

import (
	"fmt"
	"strings"
)

// VerifyFlat checks that node has the shape the parser produces: every
// expression's left operand is a chain value, so operator chains only
// continue to the right. It returns an error describing all violations
// found, or nil if valid.
func VerifyFlat(node Node) error {
	var errs []string

	Inspect(node, func(n Node) bool {
		x, ok := n.(*Expression)
		if !ok {
			return true
		}
		if x.X == nil {
			errs = append(errs, fmt.Sprintf("%s: expression has no left operand", x.pos))
			return true
		}
		if _, ok := x.X.(*ChainValue); !ok {
			errs = append(errs, fmt.Sprintf("%s: left operand is %T, want *ChainValue", x.pos, x.X))
		}
		if (x.Op == nil) != (x.Y == nil) {
			errs = append(errs, fmt.Sprintf("%s: operator and right operand must be set together", x.pos))
		}
		if x.Op != nil && x.Postfix != nil {
			errs = append(errs, fmt.Sprintf("%s: expression has both %s and postfix %s", x.pos, x.Op.Lit, x.Postfix.Lit))
		}
		return true
	})

	return combineErrors("flat shape", errs)
}

// VerifyPrecedence checks the grouping produced by reordering: outside of
// assignments, a right operand always binds strictly tighter than its
// operator, and a grouped left operand binds at least as tightly.
func VerifyPrecedence(node Node) error {
	var errs []string

	Inspect(node, func(n Node) bool {
		x, ok := n.(*Expression)
		if !ok || !x.HasOp() || x.Op.Tok.IsAssign() {
			return true
		}
		prec := x.Op.Tok.Precedence()

		if y := x.Y; y.HasOp() && !y.Op.Tok.IsAssign() && y.Op.Tok.Precedence() <= prec {
			errs = append(errs, fmt.Sprintf("%s: %s has right operand %s of no tighter precedence",
				x.pos, x.Op.Lit, y.Op.Lit))
		}
		if l, ok := x.X.(*Expression); ok && l.HasOp() && !l.Op.Tok.IsAssign() && l.Op.Tok.Precedence() < prec {
			errs = append(errs, fmt.Sprintf("%s: %s has left operand %s of looser precedence",
				x.pos, x.Op.Lit, l.Op.Lit))
		}
		return true
	})

	return combineErrors("precedence", errs)
}

func combineErrors(what string, errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s verification failed:\n  %s", what, strings.Join(errs, "\n  "))
}
