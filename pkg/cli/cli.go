// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cockroachdb/colconst/pkg/build"
	"github.com/cockroachdb/colconst/pkg/cli/exit"
	"github.com/cockroachdb/colconst/pkg/util/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// Main is the entry point for the colconst binary.
func Main() {
	exit.WithCode(runMain(os.Stderr, os.Args[1:]))
}

// runMain runs the command line and returns the process exit code. Errors
// are reported to stderr. A panic is logged and reported as
// exit.UnspecifiedGoPanic.
func runMain(stderr io.Writer, args []string) (code exit.Code) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf(context.Background(), "panic: %v", r)
			code = exit.UnspecifiedGoPanic()
		}
	}()
	if err := Run(args); err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		if h := errors.FlattenHints(err); h != "" {
			fmt.Fprintf(stderr, "HINT: %s\n", h)
		}
		return errorCode(err)
	}
	return exit.Success()
}

// restoreLogging undoes the logging setup of the last command.
var restoreLogging = func() {}

// Run executes the command line given by args.
func Run(args []string) error {
	initCLIDefaults()
	if err := applyEnvFlags(); err != nil {
		return err
	}
	defer func() {
		restoreLogging()
		restoreLogging = func() {}
	}()
	colconstCmd.Version = build.GetInfo().Short()
	colconstCmd.SetArgs(args)
	return colconstCmd.Execute()
}

// flagError marks errors caused by invalid command-line parameters.
type flagError struct {
	cause error
}

func (e *flagError) Error() string { return e.cause.Error() }
func (e *flagError) Unwrap() error { return e.cause }

func errorCode(err error) exit.Code {
	var fe *flagError
	if errors.As(err, &fe) {
		return exit.CommandLineFlagError()
	}
	return exit.UnspecifiedError()
}

var colconstCmd = &cobra.Command{
	Use:   "colconst [command] (flags)",
	Short: "constant scalar functions of the vectorized engine",
	Long: `
Lists, resolves and evaluates the zero-argument constant functions of the
vectorized engine, showing which ones the optimizer folds into literals for
a given plan distribution.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		restoreOutput := log.SetOutput(cmd.ErrOrStderr())
		restoreVerbosity := log.SetVerbosity(int32(cliCtx.verbosity))
		restoreLogging = func() {
			restoreVerbosity()
			restoreOutput()
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "output version information",
	Long: `
Output build version information.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := build.GetInfo()
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 1, 2, ' ', 0)
		fmt.Fprintf(tw, "Build Tag:        %s\n", info.Tag)
		fmt.Fprintf(tw, "Version Prefix:   %s\n", build.VersionPrefix())
		fmt.Fprintf(tw, "Build Time:       %s\n", info.Time)
		fmt.Fprintf(tw, "Build Revision:   %s\n", info.Revision)
		fmt.Fprintf(tw, "Build Type:       %s\n", buildType())
		fmt.Fprintf(tw, "Platform:         %s\n", info.Platform)
		fmt.Fprintf(tw, "Go Version:       %s\n", info.GoVersion)
		return tw.Flush()
	},
}

func init() {
	cobra.EnableCommandSorting = false
	colconstCmd.SetVersionTemplate("{{.Version}}\n")
	colconstCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &flagError{cause: err}
	})

	colconstCmd.AddCommand(
		listCmd,
		evalCmd,
		versionCmd,
	)
}

func buildType() string {
	if build.IsRelease() {
		return "release"
	}
	return "development"
}

// cmdContext returns the context commands run with.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
