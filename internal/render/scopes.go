package render

import (
	"io"

	"github.com/you-not-fish/calvin/internal/types"
)

// Scopes writes every scope of t, parents first. Each scope is a header
// line followed by one line per symbol in declaration order and a blank
// line:
//
//	SCOPE: ROOT (parent: None, symbols: 1, children: 2)
//	a on line 1: integer (from 1 on line 1)
func Scopes(w io.Writer, t *types.ScopeTree, opts Options) error {
	p := newPrinter(w, opts)
	t.Walk(func(id types.ScopeID, depth int) {
		p.indent = depth * p.opts.Indent
		parent := "None"
		if pid := t.Parent(id); pid != types.NoScope {
			parent = t.Name(pid)
		}
		p.line("SCOPE: %s (parent: %s, symbols: %d, children: %d)",
			t.Name(id), parent, t.NumSymbols(id), t.NumChildren(id))
		for _, name := range t.Names(id) {
			sym := t.Lookup(id, name)
			p.line("%s on line %d: %s", sym.Name(), sym.Line(), sym.Meta)
		}
		p.indent = 0
		p.line("")
	})
	return p.err
}
