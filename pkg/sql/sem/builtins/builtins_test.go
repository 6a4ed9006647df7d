// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package builtins

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/colconst/pkg/build"
	"github.com/cockroachdb/colconst/pkg/sql/sem/eval"
	"github.com/cockroachdb/colconst/pkg/sql/sem/tree"
	"github.com/cockroachdb/colconst/pkg/sql/sem/volatility"
	"github.com/cockroachdb/colconst/pkg/util/log"
	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestCategory(t *testing.T) {
	getCategory := func(name string) string {
		props, _ := GetBuiltinProperties(name)
		return props.Category
	}
	if expected, actual := categoryMath, getCategory("pi"); expected != actual {
		t.Fatalf("bad category: expected %q got %q", expected, actual)
	}
	if expected, actual := categorySystemInfo, getCategory("version"); expected != actual {
		t.Fatalf("bad category: expected %q got %q", expected, actual)
	}
	if expected, actual := categoryDateTime, getCategory("timeZone"); expected != actual {
		t.Fatalf("bad category: expected %q got %q", expected, actual)
	}
	_, ok := GetBuiltinProperties("no_such_function")
	require.False(t, ok)
}

func TestAllBuiltinNames(t *testing.T) {
	require.Equal(t, []string{
		"build_id", "display_name", "e", "hostname", "pi", "pi_decimal",
		"server_timezone", "server_uuid", "tcp_port", "timezone", "uptime", "version",
	}, AllBuiltinNames)
}

// TestBuiltinsAreZeroArgConstants checks the flags every builtin registered
// here must report, for every plan distribution.
func TestBuiltinsAreZeroArgConstants(t *testing.T) {
	ctx := context.Background()
	for _, name := range AllBuiltinNames {
		props, ok := GetBuiltinProperties(name)
		require.True(t, ok)
		for _, dist := range []eval.PlanDistribution{
			eval.LocalPlan, eval.PartiallyDistributedPlan, eval.FullyDistributedPlan,
		} {
			t.Run(fmt.Sprintf("%s/%s", name, dist), func(t *testing.T) {
				evalCtx := eval.MakeTestingEvalContext()
				evalCtx.Distribution = dist
				fn, err := Resolve(ctx, &evalCtx, name, 0)
				require.NoError(t, err)
				require.Equal(t, name, fn.Name())
				require.Equal(t, 0, fn.NumArgs())
				require.Equal(t, props.ReturnType, fn.ReturnType())
				require.Equal(t, volatility.Stable, tree.VolatilityOf(fn))
				require.False(t, fn.IsSuitableForShortCircuitArgumentsExecution())

				// Server-level constants only fold in local plans.
				expectFold := !props.ServerLevel || !dist.WillDistribute()
				require.Equal(t, expectFold, fn.IsSuitableForConstantFolding())

				vec := fn.Execute(3)
				require.True(t, vec.IsConst())
				require.Equal(t, 3, vec.Len())
				require.Equal(t, fn.ReturnType(), vec.Type())
			})
		}
	}
}

func TestResolveWithoutServer(t *testing.T) {
	evalCtx := eval.Context{}
	_, err := Resolve(context.Background(), &evalCtx, "hostname", 0)
	require.True(t, errors.IsAssertionFailure(err))

	fn, err := Resolve(context.Background(), &evalCtx, "PI", 0)
	require.NoError(t, err)
	require.Equal(t, "pi", fn.Name())
}

func TestResolveLogsDistributedConstants(t *testing.T) {
	sc := log.Scope(t)
	defer sc.Close(t)
	defer log.SetVerbosity(2)()

	evalCtx := eval.MakeTestingEvalContext()
	evalCtx.Distribution = eval.FullyDistributedPlan
	_, err := Resolve(context.Background(), &evalCtx, "serverUUID", 0)
	require.NoError(t, err)

	out := sc.String()
	require.Contains(t, out, "[n1,distsql=full] resolved serverUUID as server_uuid() (foldable: false)")
	require.Contains(t, out, "server_uuid() is evaluated on every node of the full plan")
}

func TestConstantBuiltins(t *testing.T) {
	defer log.Scope(t).Close(t)
	defer build.TestingOverrideTag("v24.1.0")()
	defer build.TestingOverrideRevision("abc123")()
	ctx := context.Background()

	datadriven.RunTest(t, "testdata/constants", func(t *testing.T, d *datadriven.TestData) string {
		evalCtx := eval.MakeTestingEvalContext()
		if d.HasArg("distribution") {
			var s string
			d.ScanArgs(t, "distribution", &s)
			dist, err := eval.ParsePlanDistribution(s)
			if err != nil {
				d.Fatalf(t, "%v", err)
			}
			evalCtx.Distribution = dist
		}
		if d.HasArg("session_tz") {
			var s string
			d.ScanArgs(t, "session_tz", &s)
			loc, err := time.LoadLocation(s)
			if err != nil {
				d.Fatalf(t, "%v", err)
			}
			evalCtx.SessionTimezone = loc
		}
		var name string
		d.ScanArgs(t, "name", &name)
		numArgs := 0
		if d.HasArg("args") {
			d.ScanArgs(t, "args", &numArgs)
		}

		fn, err := Resolve(ctx, &evalCtx, name, numArgs)
		if err != nil {
			var sb strings.Builder
			fmt.Fprintf(&sb, "error: %v\n", err)
			if hint := errors.FlattenHints(err); hint != "" {
				fmt.Fprintf(&sb, "hint: %s\n", hint)
			}
			return sb.String()
		}

		switch d.Cmd {
		case "resolve":
			return fmt.Sprintf("%s -> %s volatility=%s foldable=%t\n",
				fn.Name(), fn.ReturnType().SQLString(), tree.VolatilityOf(fn),
				fn.IsSuitableForConstantFolding())

		case "eval":
			rows := 1
			if d.HasArg("rows") {
				d.ScanArgs(t, "rows", &rows)
			}
			return fn.Execute(rows).String() + "\n"

		default:
			d.Fatalf(t, "unknown command: %s", d.Cmd)
			return ""
		}
	})
}

func TestPiDecimalInstancesDoNotShareValue(t *testing.T) {
	const digits = "3.1415926535897932384626433832795028841971693993751"
	evalCtx := eval.MakeTestingEvalContext()
	ctx := context.Background()
	fn1, err := Resolve(ctx, &evalCtx, "pi_decimal", 0)
	require.NoError(t, err)
	fn2, err := Resolve(ctx, &evalCtx, "pi_decimal", 0)
	require.NoError(t, err)

	d := fn2.(*PiDecimal).Value()
	_, err = apd.BaseContext.WithPrecision(60).Add(&d, &d, apd.New(1, 0))
	require.NoError(t, err)
	require.Equal(t, "4.1415926535897932384626433832795028841971693993751", d.String())

	v1, v2 := fn1.(*PiDecimal).Value(), fn2.(*PiDecimal).Value()
	require.Equal(t, digits, v1.String())
	require.Equal(t, digits, v2.String())
	require.Equal(t, digits, decimalPi.String())
	require.Equal(t, digits, fn2.Execute(1).PrettyValueAt(0))
}
