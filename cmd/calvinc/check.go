package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/calvin/internal/driver"
	"github.com/you-not-fish/calvin/internal/render"
	"github.com/you-not-fish/calvin/internal/types2"
)

func (a *app) checkCmd() *cobra.Command {
	var format string
	var jobs int

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Check scopes and type classes",
		Long: `check runs the full front end over each file. Files are checked
independently and in parallel; diagnostics are printed in argument order.

Formats: text (diagnostics on stderr), yaml (a report per file on stdout).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.format(format, "text", "yaml")
			if err != nil {
				return err
			}
			return a.runCheck(cmd.Context(), args, f, jobs)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "output format: text or yaml")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of files checked at once (0: GOMAXPROCS)")
	return cmd
}

func (a *app) runCheck(ctx context.Context, files []string, format string, jobs int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Diagnostics are reported below in file order rather than as found.
	opts := a.options()
	opts.Logger = nil

	results, err := driver.CheckFiles(ctx, files, opts, jobs)
	if err != nil {
		return err
	}

	if format == "yaml" {
		reports := make([]*render.Report, len(results))
		for i, r := range results {
			reports[i] = render.NewReport(r.Filename, r.Diagnostics, r.Scopes)
			for _, e := range r.SyntaxErrors {
				reports[i].Errors++
				reports[i].Diagnostics = append(reports[i].Diagnostics, render.Diagnostic{
					Pos:      e.Pos.String(),
					Severity: types2.Error.String(),
					Msg:      e.Msg,
				})
			}
		}
		if err := render.ReportYAML(a.stdout, reports); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			a.report(r)
			if a.cfg.Debug.Scopes && r.Scopes != nil {
				if err := render.Scopes(a.stdout, r.Scopes, render.Options{Color: a.cfg.Color}); err != nil {
					return err
				}
			}
		}
	}

	if driver.Failed(results) {
		return errFailed
	}
	return nil
}

// report logs the problems found in r followed by a summary.
func (a *app) report(r *driver.Result) {
	for _, e := range r.SyntaxErrors {
		a.log.Errorf("%s: %s", e.Pos, e.Msg)
	}
	for _, d := range r.Diagnostics {
		if d.Severity == types2.Error {
			a.log.Errorf("%s: %s", d.Pos, d.Msg)
		} else {
			a.log.Warnf("%s: %s", d.Pos, d.Msg)
		}
	}
	a.log.Debugf("%s", r.Summary())
}
