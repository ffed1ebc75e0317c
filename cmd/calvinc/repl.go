package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/calvin/internal/driver"
	"github.com/you-not-fish/calvin/internal/render"
	"github.com/you-not-fish/calvin/internal/syntax"
	"github.com/you-not-fish/calvin/internal/types2"
)

const (
	promptMain  = "calvin> "
	promptCont  = "   ...> "
	historyFile = ".calvin_history"
)

const replHelp = `Statements are checked as they are entered; names declared on
earlier lines stay in scope.

  :scopes   print the scope tree
  :tree     print the tree of the last input
  :reset    forget every declaration
  :help     show this text
  :quit     leave
`

// prompter reads one line of input. *liner.State implements it.
type prompter interface {
	Prompt(prompt string) (string, error)
}

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Check statements interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)

			home, _ := os.UserHomeDir()
			histPath := filepath.Join(home, historyFile)
			if f, err := os.Open(histPath); err == nil {
				_, _ = ln.ReadHistory(f)
				_ = f.Close()
			}

			a.runREPL(ln, ln.AppendHistory)

			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
			return nil
		},
	}
}

// repl is an interactive session. Every input is compiled with the same
// Checker.
type repl struct {
	*app
	checker *types2.Checker
	last    *syntax.File
	n       int
}

// runREPL reads and checks inputs from in until EOF or :quit. history,
// if not nil, is given each accepted input.
func (a *app) runREPL(in prompter, history func(string)) {
	r := &repl{app: a, checker: types2.NewChecker(&types2.Config{Logger: a.log}, nil)}
	fmt.Fprintf(a.stdout, "calvinc %s, :help for help\n", Version)

	for {
		src, ok := readInput(in)
		if !ok {
			fmt.Fprintln(a.stdout)
			return
		}
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		if strings.HasPrefix(src, ":") {
			if r.command(src) {
				return
			}
			continue
		}

		r.eval(src)
		if history != nil {
			history(strings.ReplaceAll(src, "\n", " "))
		}
	}
}

// command runs a :command and reports whether the session should end.
func (r *repl) command(line string) (exit bool) {
	switch strings.Fields(line)[0] {
	case ":quit", ":exit", ":q":
		return true
	case ":help":
		fmt.Fprint(r.stdout, replHelp)
	case ":scopes":
		if err := render.Scopes(r.stdout, r.checker.Scopes(), render.Options{Color: r.cfg.Color}); err != nil {
			r.log.Errorf("%v", err)
		}
	case ":tree":
		if r.last == nil {
			fmt.Fprintln(r.stdout, "no input yet")
			break
		}
		if err := render.Tree(r.stdout, r.last, render.Options{Color: r.cfg.Color}); err != nil {
			r.log.Errorf("%v", err)
		}
	case ":reset":
		r.checker.Reset()
		r.last = nil
		fmt.Fprintln(r.stdout, "scopes reset")
	default:
		fmt.Fprintf(r.stdout, "unknown command %s, :help for help\n", line)
	}
	return false
}

// eval compiles one input in the session scope and prints its reordered
// form.
func (r *repl) eval(src string) {
	r.n++
	opts := r.options()
	opts.Checker = r.checker

	res, err := driver.Compile(fmt.Sprintf("<input %d>", r.n), []byte(src), opts)
	if err != nil {
		r.log.Errorf("%v", err)
		return
	}
	if len(res.SyntaxErrors) > 0 {
		return
	}
	r.last = res.File
	fmt.Fprintln(r.stdout, syntax.Sexpr(res.File))
	if r.cfg.Debug.Scopes {
		if err := render.Scopes(r.stdout, r.checker.Scopes(), render.Options{Color: r.cfg.Color}); err != nil {
			r.log.Errorf("%v", err)
		}
	}
}

// readInput reads lines until they parse, or until the parser reports
// an error that more input cannot fix. It returns false at EOF.
func readInput(in prompter) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := in.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending input.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !incomplete(src) {
			return src, true
		}
	}
}

// incomplete reports whether src fails to parse only because it ends
// too early.
func incomplete(src string) bool {
	_, errs := syntax.ParseTokens(syntax.Tokenize("", src))
	if len(errs) == 0 {
		return false
	}
	for _, e := range errs {
		if !strings.HasSuffix(e.Msg, "found EOF") {
			return false
		}
	}
	return true
}
