// Package main implements the calvinc command, the Calvin front end.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/calvin/internal/config"
	"github.com/you-not-fish/calvin/internal/diag"
	"github.com/you-not-fish/calvin/internal/driver"
)

// Version information
const Version = "0.1.0-dev"

// errFailed is returned by commands whose input had errors that were
// already reported.
var errFailed = errors.New("failed")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes calvinc with args and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}

// app holds the state shared by all subcommands.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	// Persistent flags
	cfgFile     string
	debug       bool
	debugTrees  bool
	debugScopes bool
	noColor     bool
	maxErrors   int

	cfg *config.Config
	log diag.Logger
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "calvinc",
		Short: "Calvin language front end",
		Long: `calvinc scans, parses and checks Calvin source files.

Parsing builds a flat tree in which every operator chain nests to the
right; a second pass regroups the chains by operator precedence before
scopes and type classes are checked.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: calvin.toml or calvin.yaml in the current directory or a parent)")
	flags.BoolVar(&a.debug, "debug", false, "enable all debug output")
	flags.BoolVar(&a.debugTrees, "debug-trees", false, "dump the tree before and after reordering")
	flags.BoolVar(&a.debugScopes, "debug-scopes", false, "dump scopes after checking")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.IntVar(&a.maxErrors, "max-errors", 0, "stop parsing after this many syntax errors (0: from config)")

	root.AddCommand(
		a.tokensCmd(),
		a.parseCmd(),
		a.checkCmd(),
		a.watchCmd(),
		a.replCmd(),
		a.versionCmd(),
	)
	return root
}

// setup loads the configuration, applies flag overrides and creates the
// logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadDefault(a.cfgFile)
	if err != nil {
		return err
	}

	if a.debug {
		cfg.Debug.All = true
		cfg.Debug.Trees = true
		cfg.Debug.Scopes = true
	}
	if a.debugTrees {
		cfg.Debug.Trees = true
	}
	if a.debugScopes {
		cfg.Debug.Scopes = true
	}
	if a.noColor {
		cfg.Color = false
	}
	if a.maxErrors != 0 {
		cfg.MaxErrors = a.maxErrors
	}

	a.cfg = cfg
	a.log = diag.New(a.stderr, diag.Options{Debug: cfg.Debug.All, Color: cfg.Color})
	return nil
}

// options returns driver options from the configuration.
func (a *app) options() driver.Options {
	return driver.Options{
		MaxErrors: a.cfg.MaxErrors,
		Verify:    a.cfg.Debug.All,
		DumpTrees: a.cfg.Debug.Trees,
		DumpOut:   a.stderr,
		Logger:    a.log,
	}
}

// format picks the output format: the flag if set, else the configured
// format if the command supports it, else text.
func (a *app) format(flag string, supported ...string) (string, error) {
	if flag != "" {
		for _, f := range supported {
			if f == flag {
				return flag, nil
			}
		}
		return "", errors.Errorf("unsupported format %q", flag)
	}
	for _, f := range supported {
		if f == a.cfg.Format {
			return f, nil
		}
	}
	return "text", nil
}
