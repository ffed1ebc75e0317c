package types2

import (
	"github.com/you-not-fish/calvin/internal/diag"
	"github.com/you-not-fish/calvin/internal/syntax"
	"github.com/you-not-fish/calvin/internal/types"
)

// Config specifies the configuration for analysis.
type Config struct {
	// Error is called for each error and warning.
	// If nil, diagnostics are only counted and logged.
	Error ErrorHandler

	// Logger receives every diagnostic as it is found.
	// If nil, diag.Discard is used.
	Logger diag.Logger
}

// Info holds the results of analysis.
type Info struct {
	// Defs maps declarations to the Meta bound for their name.
	Defs map[*syntax.Declaration]types.Meta

	// Uses maps identifier uses to the Meta of the binding they
	// resolved to, or to a Never Meta for undeclared names.
	Uses map[*syntax.NameValue]types.Meta

	// Types maps expressions to their inferred Meta.
	Types map[*syntax.Expression]types.Meta

	// Scopes maps the nodes that open a scope (IfPredBody and Body)
	// to that scope.
	Scopes map[syntax.Node]types.ScopeID
}

// Analyze checks a parsed and reordered file with a fresh Checker and
// returns the number of errors and warnings found.
func Analyze(file *syntax.File, conf *Config, info *Info) (errors, warnings int) {
	c := NewChecker(conf, info)
	c.Check(file)
	return c.Errors(), c.Warnings()
}
