// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// displcfg inspects display backend configuration files.
//
// Usage:
//
//	displcfg validate [--strict] [FILE...]
//	displcfg dump [-f FILE] [--format yaml|toml|json]
//	displcfg resolve [-f FILE] --dom NAME --dev N [--kind connector|keyboard|pointer|touch] [--idx N]
//	displcfg init [-o FILE] [--format yaml|toml] [--force]
//
// Exit codes:
//   - 0: success
//   - 1: invalid configuration or nothing resolved
//   - 2: usage error
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	xglog "github.com/ManuGH/displbe/internal/log"
	"github.com/ManuGH/displbe/internal/validate"
	"github.com/ManuGH/displbe/internal/version"
	"github.com/spf13/cobra"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// exitError carries a process exit code through cobra's RunE.
// A nil err means the command already reported to stderr.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func failed(err error) error { return &exitError{code: exitFail, err: err} }

func usage(err error) error { return &exitError{code: exitUsage, err: err} }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", ee.err)
		}
		return ee.code
	}
	// Flag and argument errors come straight from cobra.
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitUsage
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "displcfg",
		Short:         "Inspect display backend configuration",
		Long:          "Validate, dump and query the display and input device configuration of the guest display backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := validate.ParseLogLevel(logLevel)
			if err != nil {
				return usage(err)
			}
			xglog.Reconfigure(xglog.Config{
				Level:   level.String(),
				Output:  stderr,
				Service: "displcfg",
			})
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")

	root.AddCommand(
		newValidateCmd(),
		newDumpCmd(),
		newResolveCmd(),
		newInitCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}
}
