package types2

import (
	"github.com/you-not-fish/calvin/internal/syntax"
	"github.com/you-not-fish/calvin/internal/types"
)

// expr infers the Meta of an expression: the right operand's when there
// is one, else the left operand's. Operators are not checked against
// their operands.
func (c *Checker) expr(x *syntax.Expression) types.Meta {
	var meta types.Meta
	switch op := x.X.(type) {
	case *syntax.ChainValue:
		meta = c.chain(op)
	case *syntax.Expression:
		meta = c.expr(op)
	}
	if x.Y != nil {
		meta = c.expr(x.Y)
	}
	if c.info != nil {
		c.info.Types[x] = meta
	}
	return meta
}

// chain infers the Meta of a value with index or slice suffixes. The
// suffix expressions are checked but do not change the class.
func (c *Checker) chain(cv *syntax.ChainValue) types.Meta {
	meta := c.value(cv.X)
	for _, ix := range cv.Index {
		for _, e := range []*syntax.Expression{ix.Start, ix.End, ix.Step} {
			if e != nil {
				c.expr(e)
			}
		}
	}
	return meta
}

func (c *Checker) value(v syntax.Value) types.Meta {
	switch v := v.(type) {
	case *syntax.UnaryValue:
		return c.chain(v.X)
	case *syntax.ConstValue:
		return c.constant(v.Const)
	case *syntax.NameValue:
		return c.use(v)
	case *syntax.ParenValue:
		return c.expr(v.X)
	}
	panic("types2: unhandled value")
}

// constant maps a literal to its class. A list literal takes the class of
// its first element, or Unknown when empty.
func (c *Checker) constant(k syntax.Constant) types.Meta {
	switch k := k.(type) {
	case *syntax.BasicLit:
		return types.MetaOf(types.LitClass(k.Lit.Kind), k.Lit)
	case *syntax.ListLit:
		var metas []types.Meta
		for _, e := range k.Elems {
			metas = append(metas, c.expr(e))
		}
		if len(metas) == 0 {
			return types.MetaOf(types.Unknown, syntax.Lexeme{Lit: "[]", Pos: k.Pos()})
		}
		return metas[0]
	}
	panic("types2: unhandled constant")
}
