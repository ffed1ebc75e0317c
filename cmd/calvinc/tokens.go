package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/calvin/internal/syntax"
)

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokens(args[0])
		},
	}
}

// runTokens scans the input file and prints all tokens with positions.
// Characters matching no token are listed as LEFTOVER and make the
// command fail.
func (a *app) runTokens(filename string) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "read %s", filename)
	}

	w := a.stdout
	fmt.Fprintf(w, "%-20s %-12s %-16s %s\n", "POSITION", "TOKEN", "CATEGORIES", "LITERAL")
	fmt.Fprintf(w, "%-20s %-12s %-16s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 16), strings.Repeat("-", 20))

	leftover := 0
	for _, l := range syntax.Tokenize(filename, string(src)) {
		cats := ""
		if c := l.Tok.Categories(); c != 0 {
			cats = c.String()
		}
		fmt.Fprintf(w, "%-20s %-12s %-16s %s\n", l.Pos, l.Tok, cats, formatLiteral(l.Lit))
		if l.Tok == syntax.Leftover {
			a.log.Errorf("%s: unexpected character %q", l.Pos, l.Lit)
			leftover++
		}
	}

	if leftover > 0 {
		return errFailed
	}
	return nil
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
