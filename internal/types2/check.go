package types2

import (
	"fmt"

	"github.com/you-not-fish/calvin/internal/diag"
	"github.com/you-not-fish/calvin/internal/syntax"
	"github.com/you-not-fish/calvin/internal/types"
)

// construct names the statement part that opened a scope.
type construct int

const (
	ifScope construct = iota
	elifScope
	elseScope
	doScope
	whileScope
	finallyScope
	anonScope
	numConstructs
)

var constructNames = [numConstructs]string{
	ifScope:      "if",
	elifScope:    "elif",
	elseScope:    "else",
	doScope:      "do",
	whileScope:   "while",
	finallyScope: "finally",
	anonScope:    "anon",
}

// Checker is the semantic analyzer.
//
// A Checker owns its scope tree. Successive calls to Check continue in the
// same root scope, so names declared by one file stay visible to the next;
// Reset starts over. A Checker must not be used concurrently.
type Checker struct {
	conf *Config
	info *Info
	log  diag.Logger

	// Scope state
	tree   *types.ScopeTree
	scope  types.ScopeID // current scope
	counts [numConstructs]int

	// Diagnostics
	diags    []*Diagnostic
	errors   int
	warnings int
}

// NewChecker returns a Checker recording results into info, which may be
// nil. Missing info maps are allocated.
func NewChecker(conf *Config, info *Info) *Checker {
	if conf == nil {
		conf = &Config{}
	}
	c := &Checker{
		conf: conf,
		log:  conf.Logger,
		tree: types.NewScopeTree(),
	}
	if c.log == nil {
		c.log = diag.Discard
	}
	c.scope = c.tree.Root()
	c.SetInfo(info)
	return c
}

// SetInfo directs the results of later Check calls into info, which may
// be nil. Missing info maps are allocated.
func (c *Checker) SetInfo(info *Info) {
	if info != nil {
		if info.Defs == nil {
			info.Defs = make(map[*syntax.Declaration]types.Meta)
		}
		if info.Uses == nil {
			info.Uses = make(map[*syntax.NameValue]types.Meta)
		}
		if info.Types == nil {
			info.Types = make(map[*syntax.Expression]types.Meta)
		}
		if info.Scopes == nil {
			info.Scopes = make(map[syntax.Node]types.ScopeID)
		}
	}
	c.info = info
}

// Check analyzes the statements of file in the root scope.
func (c *Checker) Check(file *syntax.File) {
	c.stmts(file.Stmts)
	if c.scope != c.tree.Root() {
		panic("types2: scope left open after check")
	}
}

// Reset clears the scope tree, the construct counters and all
// diagnostics.
func (c *Checker) Reset() {
	c.tree.Reset()
	c.scope = c.tree.Root()
	c.counts = [numConstructs]int{}
	c.diags = nil
	c.errors = 0
	c.warnings = 0
}

// Errors returns the number of errors found.
func (c *Checker) Errors() int { return c.errors }

// Warnings returns the number of warnings found.
func (c *Checker) Warnings() int { return c.warnings }

// Diagnostics returns the errors and warnings in the order found.
func (c *Checker) Diagnostics() []*Diagnostic { return c.diags }

// Scopes returns the scope tree built so far.
func (c *Checker) Scopes() *types.ScopeTree { return c.tree }

// pushScope opens a child of the current scope named after k and records
// it for n.
func (c *Checker) pushScope(k construct, n syntax.Node) {
	name := fmt.Sprintf("%s-%d", constructNames[k], c.counts[k])
	c.counts[k]++
	c.scope = c.tree.NewScope(c.scope, name)
	if c.info != nil {
		c.info.Scopes[n] = c.scope
	}
}

// popScope returns to the parent scope. Popping the root is a bug in the
// checker, not in the program being checked.
func (c *Checker) popScope() {
	parent := c.tree.Parent(c.scope)
	if parent == types.NoScope {
		panic("types2: scope push/pop mismatch")
	}
	c.scope = parent
}
