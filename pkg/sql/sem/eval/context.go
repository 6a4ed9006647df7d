// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package eval

import (
	"context"
	"time"

	"github.com/cockroachdb/colconst/pkg/base"
	"github.com/cockroachdb/colconst/pkg/util/timeutil"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
)

// PlanDistribution describes how the current query is executed.
type PlanDistribution int

const (
	// LocalPlan indicates that the whole plan runs on the gateway node.
	LocalPlan PlanDistribution = iota
	// PartiallyDistributedPlan indicates that some parts of the plan run on
	// remote nodes.
	PartiallyDistributedPlan
	// FullyDistributedPlan indicates that the plan is distributed across
	// all nodes holding the relevant data.
	FullyDistributedPlan
)

// WillDistribute returns true if any part of the plan runs on a node other
// than the gateway.
func (a PlanDistribution) WillDistribute() bool {
	return a != LocalPlan
}

func (a PlanDistribution) String() string {
	switch a {
	case LocalPlan:
		return "local"
	case PartiallyDistributedPlan:
		return "partial"
	case FullyDistributedPlan:
		return "full"
	default:
		return "unknown"
	}
}

// ParsePlanDistribution parses the String form of a PlanDistribution.
func ParsePlanDistribution(s string) (PlanDistribution, error) {
	for _, d := range []PlanDistribution{LocalPlan, PartiallyDistributedPlan, FullyDistributedPlan} {
		if d.String() == s {
			return d, nil
		}
	}
	return LocalPlan, errors.WithHint(
		errors.Newf("invalid plan distribution %q", s),
		"valid values are local, partial and full",
	)
}

// Context holds the state a query is evaluated with. Functions may read it
// when they are resolved; none of them retain it.
type Context struct {
	// NodeID is the ID of the node evaluating the query.
	NodeID int32
	// Distribution is the physical planning decision for the query.
	Distribution PlanDistribution
	// Server describes the server the query runs on. It must be validated.
	Server *base.ServerConfig
	// SessionTimezone overrides the server time zone for timezone().
	SessionTimezone *time.Location

	TestingKnobs TestingKnobs
}

// TestingKnobs contains test-only overrides.
type TestingKnobs struct {
	// Now, if set, replaces timeutil.Now.
	Now func() time.Time
}

// IsDistributed returns true if the query runs across multiple nodes.
func (ec *Context) IsDistributed() bool {
	return ec.Distribution.WillDistribute()
}

// Now returns the current time.
func (ec *Context) Now() time.Time {
	if ec.TestingKnobs.Now != nil {
		return ec.TestingKnobs.Now()
	}
	return timeutil.Now()
}

// Timezone returns the session time zone, falling back to the server's.
func (ec *Context) Timezone() *time.Location {
	if ec.SessionTimezone != nil {
		return ec.SessionTimezone
	}
	if ec.Server != nil {
		return ec.Server.Location()
	}
	return time.UTC
}

// AnnotateCtx adds the node and distribution tags to ctx.
func (ec *Context) AnnotateCtx(ctx context.Context) context.Context {
	if ec.NodeID != 0 {
		ctx = logtags.AddTag(ctx, "n", ec.NodeID)
	}
	if ec.IsDistributed() {
		ctx = logtags.AddTag(ctx, "distsql", ec.Distribution.String())
	}
	return ctx
}

// MakeTestingEvalContext returns a local Context over a validated server
// config with fixed properties.
func MakeTestingEvalContext() Context {
	cfg := base.ServerConfig{
		DisplayName: "test-node",
		Hostname:    "test-host",
		TCPPort:     base.DefaultPort,
		Timezone:    base.DefaultTimezone,
		ServerUUID:  "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		StartTime:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	now := cfg.StartTime.Add(90 * time.Minute)
	return Context{
		NodeID:       1,
		Distribution: LocalPlan,
		Server:       &cfg,
		TestingKnobs: TestingKnobs{Now: func() time.Time { return now }},
	}
}
