// Package passes runs rewriting passes over a parsed compilation unit.
package passes

import (
	"fmt"
	"io"
	"os"

	"github.com/you-not-fish/calvin/internal/syntax"
)

// Pass describes a single CST rewriting pass.
type Pass struct {
	Name string
	Fn   func(f *syntax.File)

	// Shape checks used when Config.Verify is set. Either may be nil.
	Before func(n syntax.Node) error // required on entry
	After  func(n syntax.Node) error // guaranteed on exit
}

// Config controls pass execution behavior.
type Config struct {
	DumpBefore string    // dump the tree before this pass ("*" for all)
	DumpAfter  string    // dump the tree after this pass ("*" for all)
	Verify     bool      // verify tree shape before/after each pass
	DumpFile   string    // restrict dumps to this file name
	Out        io.Writer // dump destination, os.Stderr if nil
}

// Run executes the given passes on f in order.
func Run(f *syntax.File, passes []Pass, cfg Config) error {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	name := f.Pos().Filename()

	for _, p := range passes {
		if shouldDump(cfg.DumpBefore, p.Name) && matchFile(cfg.DumpFile, name) {
			fmt.Fprintf(out, "--- before %s (%s) ---\n", p.Name, name)
			fmt.Fprintln(out, syntax.Sexpr(f))
		}

		if cfg.Verify && p.Before != nil {
			if err := p.Before(f); err != nil {
				return fmt.Errorf("verify before %s: %w", p.Name, err)
			}
		}

		p.Fn(f)

		if cfg.Verify && p.After != nil {
			if err := p.After(f); err != nil {
				return fmt.Errorf("verify after %s: %w", p.Name, err)
			}
		}

		if shouldDump(cfg.DumpAfter, p.Name) && matchFile(cfg.DumpFile, name) {
			fmt.Fprintf(out, "--- after %s (%s) ---\n", p.Name, name)
			fmt.Fprintln(out, syntax.Sexpr(f))
		}
	}
	return nil
}

// ReorderPass returns the precedence pass. The number of rotations it
// performs is added to *rotations when rotations is not nil.
func ReorderPass(rotations *int) Pass {
	return Pass{
		Name: "reorder",
		Fn: func(f *syntax.File) {
			n := Reorder(f)
			if rotations != nil {
				*rotations += n
			}
		},
		Before: syntax.VerifyFlat,
		After:  syntax.VerifyPrecedence,
	}
}

func shouldDump(pattern, name string) bool {
	return pattern == "*" || pattern == name
}

func matchFile(filter, name string) bool {
	return filter == "" || filter == name
}
