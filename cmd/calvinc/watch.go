package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/calvin/internal/driver"
)

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE...",
		Short: "Check files again whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
			defer stop()
			return a.runWatch(ctx, args)
		},
	}
}

func (a *app) runWatch(ctx context.Context, files []string) error {
	opts := driver.WatchOptions{Options: a.options()}
	opts.Logger = nil

	return driver.Watch(ctx, files, opts, func(r *driver.Result, err error) {
		if err != nil {
			a.log.Errorf("%v", err)
			return
		}
		a.report(r)
		a.log.Infof("%s", r.Summary())
	})
}
