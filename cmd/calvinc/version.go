package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/calvin/internal/config"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "calvinc version %s\n", Version)
			fmt.Fprintf(a.stdout, "language version %s\n", config.LanguageVersion)
			fmt.Fprintf(a.stdout, "go version %s\n", runtime.Version())
		},
	}
}
