// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"context"
	"time"

	"github.com/cockroachdb/colconst/pkg/base"
	"github.com/cockroachdb/colconst/pkg/cli/cliflags"
	"github.com/cockroachdb/colconst/pkg/sql/sem/eval"
	"github.com/cockroachdb/colconst/pkg/util/log"
	"github.com/cockroachdb/colconst/pkg/util/timeutil"
	"github.com/cockroachdb/errors"
)

// cliContext holds the parameters of the commands, populated by flags.
type cliContext struct {
	configPath      string
	rows            int
	distribution    eval.PlanDistribution
	sessionTimezone string
	nodeID          int
	verbosity       int
}

var cliCtx cliContext

// initCLIDefaults resets cliCtx to its defaults. Tests call it between
// commands since the flag variables are global.
func initCLIDefaults() {
	cliCtx = cliContext{
		rows:         1,
		distribution: eval.LocalPlan,
		nodeID:       1,
	}
}

// makeEvalContext builds the evaluation context described by cliCtx.
func makeEvalContext(ctx context.Context) (*eval.Context, error) {
	cfg, err := loadServerConfig(ctx)
	if err != nil {
		return nil, err
	}
	evalCtx := &eval.Context{
		NodeID:       int32(cliCtx.nodeID),
		Distribution: cliCtx.distribution,
		Server:       cfg,
	}
	if cliCtx.sessionTimezone != "" {
		loc, err := timeutil.LoadLocation(cliCtx.sessionTimezone)
		if err != nil {
			return nil, errors.Wrapf(err, "--%s", cliflags.SessionTimezone.Name)
		}
		evalCtx.SessionTimezone = loc
	}
	return evalCtx, nil
}

func loadServerConfig(ctx context.Context) (*base.ServerConfig, error) {
	if cliCtx.configPath == "" {
		cfg := base.MakeServerConfig()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	cfg, err := base.LoadServerConfig(cliCtx.configPath)
	if err != nil {
		return nil, err
	}
	log.Infof(ctx, "loaded server config from %s (started %s)",
		cliCtx.configPath, cfg.StartTime.Format(time.RFC3339))
	return cfg, nil
}
