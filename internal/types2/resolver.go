package types2

import (
	"github.com/you-not-fish/calvin/internal/syntax"
	"github.com/you-not-fish/calvin/internal/types"
)

// lookup searches the current scope chain for name.
func (c *Checker) lookup(name string) (*types.Symbol, types.ScopeID) {
	return c.tree.LookupParent(c.scope, name)
}

// declare binds id in the current scope.
func (c *Checker) declare(id syntax.Lexeme, meta types.Meta) {
	c.tree.Insert(c.scope, &types.Symbol{Tok: id, Meta: meta})
}

// use resolves an identifier. An undeclared name is an error and yields
// a Never Meta.
func (c *Checker) use(v *syntax.NameValue) types.Meta {
	var meta types.Meta
	if sym, _ := c.lookup(v.Name.Lit); sym != nil {
		meta = sym.Meta
	} else {
		c.errorf(v.Name.Pos, "undeclared variable %s used on line %d", v.Name.Lit, v.Name.Line())
		meta = types.MetaOf(types.Never, v.Name)
	}
	if c.info != nil {
		c.info.Uses[v] = meta
	}
	return meta
}
