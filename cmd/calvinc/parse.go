package main

import (
	"github.com/spf13/cobra"

	"github.com/you-not-fish/calvin/internal/driver"
	"github.com/you-not-fish/calvin/internal/render"
	"github.com/you-not-fish/calvin/internal/syntax"
)

func (a *app) parseCmd() *cobra.Command {
	var format string
	var noReorder bool

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a file and print its tree",
		Long: `parse prints the tree of a file after operator chains have been
regrouped by precedence. With --no-reorder the flat tree produced by
the grammar is printed instead.

Formats: text (indented node list), json, paren (one construct per line).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.format(format, "text", "json", "paren")
			if err != nil {
				return err
			}
			return a.runParse(args[0], f, noReorder)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "output format: text, json or paren")
	cmd.Flags().BoolVar(&noReorder, "no-reorder", false, "print the tree before precedence reordering")
	return cmd
}

// runParse parses the input file and prints its tree. The tree is
// printed even when there are syntax errors.
func (a *app) runParse(filename, format string, noReorder bool) error {
	opts := a.options()
	opts.NoReorder = noReorder
	opts.NoCheck = true

	res, err := driver.CompileFile(filename, opts)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		if err := syntax.FprintJSON(a.stdout, res.File); err != nil {
			return err
		}
	case "paren":
		if err := render.Tree(a.stdout, res.File, render.Options{Color: a.cfg.Color}); err != nil {
			return err
		}
	default:
		syntax.Fprint(a.stdout, res.File)
	}

	if res.Failed() {
		return errFailed
	}
	return nil
}
