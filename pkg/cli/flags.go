// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"os"

	"github.com/cockroachdb/colconst/pkg/cli/cliflags"
	"github.com/cockroachdb/colconst/pkg/sql/sem/eval"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envFlag is a flag that can also be set through an environment variable.
type envFlag struct {
	f    *pflag.FlagSet
	info cliflags.FlagInfo
}

// envFlags lists the registered flags with an environment variable. The
// variables are applied at the start of every command, after the defaults
// are reset and before the command line is parsed, so explicit flags win.
var envFlags []envFlag

func setFlagFromEnv(f *pflag.FlagSet, flagInfo cliflags.FlagInfo) {
	if flagInfo.EnvVar != "" {
		envFlags = append(envFlags, envFlag{f: f, info: flagInfo})
	}
}

// applyEnvFlags sets every registered flag whose environment variable is
// set.
func applyEnvFlags() error {
	for _, ef := range envFlags {
		value, set := os.LookupEnv(ef.info.EnvVar)
		if !set {
			continue
		}
		if err := ef.f.Set(ef.info.Name, value); err != nil {
			return &flagError{cause: errors.Wrapf(err, "%s", ef.info.EnvVar)}
		}
	}
	return nil
}

// StringFlag creates a string flag and registers it with the FlagSet.
func StringFlag(f *pflag.FlagSet, valPtr *string, flagInfo cliflags.FlagInfo, defaultVal string) {
	f.StringVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// IntFlag creates an int flag and registers it with the FlagSet.
func IntFlag(f *pflag.FlagSet, valPtr *int, flagInfo cliflags.FlagInfo, defaultVal int) {
	f.IntVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// VarFlag creates a custom-variable flag and registers it with the FlagSet.
func VarFlag(f *pflag.FlagSet, value pflag.Value, flagInfo cliflags.FlagInfo) {
	f.VarP(value, flagInfo.Name, flagInfo.Shorthand, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// distributionValue is a pflag.Value for eval.PlanDistribution.
type distributionValue struct {
	dist *eval.PlanDistribution
}

var _ pflag.Value = distributionValue{}

func (d distributionValue) String() string { return d.dist.String() }

func (d distributionValue) Set(s string) error {
	dist, err := eval.ParsePlanDistribution(s)
	if err != nil {
		return err
	}
	*d.dist = dist
	return nil
}

func (distributionValue) Type() string { return "distribution" }

func init() {
	initCLIDefaults()

	pf := colconstCmd.PersistentFlags()
	IntFlag(pf, &cliCtx.verbosity, cliflags.Verbosity, 0)

	for _, cmd := range []*cobra.Command{evalCmd, listCmd} {
		f := cmd.Flags()
		StringFlag(f, &cliCtx.configPath, cliflags.ConfigFile, "")
		VarFlag(f, distributionValue{dist: &cliCtx.distribution}, cliflags.Distribution)
		IntFlag(f, &cliCtx.nodeID, cliflags.NodeID, 1)
	}

	f := evalCmd.Flags()
	IntFlag(f, &cliCtx.rows, cliflags.Rows, 1)
	StringFlag(f, &cliCtx.sessionTimezone, cliflags.SessionTimezone, "")
}
