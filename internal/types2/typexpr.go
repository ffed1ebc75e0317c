package types2

import (
	"github.com/you-not-fish/calvin/internal/syntax"
	"github.com/you-not-fish/calvin/internal/types"
)

// typExpr returns the Meta of a declared type. Array dimensions do not
// change the class.
func (c *Checker) typExpr(t *syntax.TypeExpr) types.Meta {
	return types.MetaOf(types.BasicClass(t.Name.Lit), t.Name)
}
