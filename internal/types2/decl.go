package types2

import (
	"github.com/you-not-fish/calvin/internal/syntax"
	"github.com/you-not-fish/calvin/internal/types"
)

// declaration checks a let declaration and binds its name in the current
// scope.
//
// The bound Meta is the declared type's if there is one, else the
// initializer's, else Unknown. A name already bound in the current scope
// is an error and keeps its first binding; a name bound in an enclosing
// scope is shadowed with a warning.
func (c *Checker) declaration(d *syntax.Declaration) {
	id := d.Name

	var declared, assigned *types.Meta
	if d.Type != nil {
		m := c.typExpr(d.Type)
		declared = &m
	}
	if d.Value != nil {
		m := c.expr(d.Value)
		assigned = &m
	}

	meta := types.MetaOf(types.Unknown, id)
	switch {
	case declared != nil:
		meta = *declared
	case assigned != nil:
		meta = *assigned
	}

	prev, where := c.lookup(id.Lit)
	redeclared := prev != nil && where == c.scope
	if redeclared {
		c.errorf(id.Pos, "variable %s originally defined on line %d, redefined on line %d",
			id.Lit, prev.Line(), id.Line())
	} else if prev != nil {
		c.warnf(id.Pos, "variable %s on line %d shadows variable defined on line %d",
			id.Lit, id.Line(), prev.Line())
	}

	switch {
	case declared != nil && assigned != nil:
		if !types.Identical(*declared, *assigned) {
			c.errorf(id.Pos, "type declaration on line %d does not match assignment on line %d",
				declared.Source.Line(), assigned.Source.Line())
		}
	case declared == nil && assigned == nil:
		c.warnf(id.Pos, "type inference failed for %s on line %d, assigned type = unknown",
			id.Lit, id.Line())
	}

	if !redeclared {
		c.declare(id, meta)
	}
	if c.info != nil {
		c.info.Defs[d] = meta
	}
}
