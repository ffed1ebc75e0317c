// Package driver runs the Calvin front end over source files: parse,
// reorder operator chains, then check scopes and type classes.
package driver

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/you-not-fish/calvin/internal/diag"
	"github.com/you-not-fish/calvin/internal/passes"
	"github.com/you-not-fish/calvin/internal/syntax"
	"github.com/you-not-fish/calvin/internal/types"
	"github.com/you-not-fish/calvin/internal/types2"
)

// Options controls a compilation.
type Options struct {
	NoReorder  bool // stop after parsing
	NoCheck    bool // stop after reordering
	MaxErrors  int  // syntax error limit, syntax.MaxErrors if zero
	Verify     bool // verify tree shape around each pass
	DumpTrees  bool // dump the tree before and after reordering
	DumpScopes bool // log the scope tree after checking

	// DumpOut receives tree dumps. If nil, os.Stderr is used.
	DumpOut io.Writer

	// Logger receives progress and diagnostics. If nil, diag.Discard
	// is used.
	Logger diag.Logger

	// Checker, if set, is used instead of a fresh one, so names
	// declared by earlier compilations stay in scope.
	Checker *types2.Checker
}

// Result is the outcome of compiling one file.
type Result struct {
	Filename     string
	File         *syntax.File
	SyntaxErrors []*syntax.SyntaxError
	Rotations    int

	// Diagnostics found by this compilation only.
	Diagnostics []*types2.Diagnostic
	Errors      int
	Warnings    int

	Info   *types2.Info
	Scopes *types.ScopeTree // nil if the file was not checked
}

// Failed reports whether the file has syntax or semantic errors.
func (r *Result) Failed() bool {
	return len(r.SyntaxErrors) > 0 || r.Errors > 0
}

// Err returns the first syntax error or error diagnostic, or nil.
func (r *Result) Err() error {
	if len(r.SyntaxErrors) > 0 {
		return r.SyntaxErrors[0]
	}
	for _, d := range r.Diagnostics {
		if d.Severity == types2.Error {
			return d
		}
	}
	return nil
}

func (o *Options) logger() diag.Logger {
	if o.Logger == nil {
		return diag.Discard
	}
	return o.Logger
}

// Parse parses src and returns the flat tree with all syntax errors.
func Parse(filename string, src []byte, opts Options) (*syntax.File, []*syntax.SyntaxError) {
	log := opts.logger()
	p := syntax.NewParser(filename, bytes.NewReader(src), func(pos syntax.Pos, msg string) {
		log.Errorf("%s: %s", pos, msg)
	})
	if opts.MaxErrors != 0 {
		p.SetMaxErrors(opts.MaxErrors)
	}
	f := p.Parse()
	return f, p.Errors()
}

// Compile runs the front end over src. Syntax and semantic problems are
// reported in the Result; the error return is for failures of the
// compiler itself, such as a tree that fails verification.
//
// A file with syntax errors is neither reordered nor checked.
func Compile(filename string, src []byte, opts Options) (*Result, error) {
	log := opts.logger()
	res := &Result{Filename: filename}

	log.Debugf("parsing %s", filename)
	res.File, res.SyntaxErrors = Parse(filename, src, opts)
	if len(res.SyntaxErrors) > 0 {
		log.Debugf("%s: %d syntax errors, stopping", filename, len(res.SyntaxErrors))
		return res, nil
	}
	if opts.NoReorder {
		return res, nil
	}

	cfg := passes.Config{Verify: opts.Verify, Out: opts.DumpOut}
	if opts.DumpTrees {
		cfg.DumpBefore = "*"
		cfg.DumpAfter = "*"
	}
	pipeline := []passes.Pass{passes.ReorderPass(&res.Rotations)}
	if err := passes.Run(res.File, pipeline, cfg); err != nil {
		return res, errors.Wrap(err, filename)
	}
	log.Debugf("%s: %d rotations", filename, res.Rotations)
	if opts.NoCheck {
		return res, nil
	}

	c := opts.Checker
	if c == nil {
		c = types2.NewChecker(&types2.Config{Logger: log}, nil)
	}
	res.Info = &types2.Info{}
	c.SetInfo(res.Info)

	start := len(c.Diagnostics())
	c.Check(res.File)
	res.Diagnostics = c.Diagnostics()[start:]
	for _, d := range res.Diagnostics {
		if d.Severity == types2.Error {
			res.Errors++
		} else {
			res.Warnings++
		}
	}
	res.Scopes = c.Scopes()

	if opts.DumpScopes {
		log.Debugf("scopes after %s:\n%s", filename, res.Scopes)
	}
	return res, nil
}

// CompileFile reads and compiles the named file.
func CompileFile(path string, opts Options) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return Compile(path, src, opts)
}

// Summary returns a one-line count of the problems in r.
func (r *Result) Summary() string {
	if len(r.SyntaxErrors) > 0 {
		return fmt.Sprintf("%s: %d syntax errors", r.Filename, len(r.SyntaxErrors))
	}
	return fmt.Sprintf("%s: %d errors, %d warnings", r.Filename, r.Errors, r.Warnings)
}
