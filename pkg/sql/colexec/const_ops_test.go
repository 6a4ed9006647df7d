// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package colexec_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/colconst/pkg/col/coldata"
	"github.com/cockroachdb/colconst/pkg/sql/colexec"
	"github.com/cockroachdb/colconst/pkg/sql/colexecop"
	"github.com/cockroachdb/colconst/pkg/sql/opt/norm"
	"github.com/cockroachdb/colconst/pkg/sql/sem/builtins"
	"github.com/cockroachdb/colconst/pkg/sql/sem/builtins/constfn"
	"github.com/cockroachdb/colconst/pkg/sql/sem/eval"
	"github.com/cockroachdb/colconst/pkg/sql/sem/tree"
	"github.com/cockroachdb/colconst/pkg/sql/types"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type releaseName struct{}

func (releaseName) FuncName() string { return "release" }

type release = constfn.Func[releaseName, string, coldata.StringKind]

func newRelease(evalCtx *eval.Context) *release {
	return constfn.FromContext[releaseName, string, coldata.StringKind](evalCtx, "2025-01-01")
}

// collect runs op and returns the vectors of column idx of every batch.
func collect(t *testing.T, op colexecop.Operator, idx int) []coldata.Vec {
	t.Helper()
	var vecs []coldata.Vec
	require.NoError(t, colexec.Run(context.Background(), op, func(b coldata.Batch) error {
		require.Equal(t, b.Length(), b.ColVec(idx).Len())
		vecs = append(vecs, b.ColVec(idx))
		return nil
	}))
	return vecs
}

func TestConstFuncOp(t *testing.T) {
	evalCtx := eval.MakeTestingEvalContext()
	evalCtx.Distribution = eval.FullyDistributedPlan
	source := colexec.NewFixedBatchSource(
		coldata.NewMemBatch(coldata.BatchSize), coldata.NewMemBatch(3),
	)
	op, err := colexec.NewConstFuncOp(source, newRelease(&evalCtx), 0)
	require.NoError(t, err)

	vecs := collect(t, op, 0)
	require.Len(t, vecs, 2)
	for _, vec := range vecs {
		require.True(t, vec.IsConst())
		require.Equal(t, types.String, vec.Type())
		require.Equal(t, "2025-01-01", vec.PrettyValueAt(vec.Len()-1))
	}
	require.Equal(t, []int{coldata.BatchSize, 3}, []int{vecs[0].Len(), vecs[1].Len()})
	// The footprint does not depend on the batch length.
	require.Equal(t, vecs[1].Size(), vecs[0].Size())
}

func TestConstFuncOpReplacesColumn(t *testing.T) {
	existing := coldata.NewFlatVec[int64](coldata.Int64Kind{}, []int64{1, 2, 3})
	other := coldata.NewFlatVec[int64](coldata.Int64Kind{}, []int64{4, 5, 6})
	batch := coldata.NewMemBatch(3, existing, other)

	fn := constfn.FromValue[releaseName, string, coldata.StringKind]("x")
	op, err := colexec.NewConstFuncOp(colexec.NewFixedBatchSource(batch), fn, 0)
	require.NoError(t, err)

	vecs := collect(t, op, 0)
	require.Len(t, vecs, 1)
	require.Equal(t, 2, batch.Width())
	require.True(t, batch.ColVec(0).IsConst())
	require.Same(t, other, batch.ColVec(1))
}

func TestConstFuncOpOutputIndexBeyondWidth(t *testing.T) {
	op, err := colexec.NewConstFuncOp(
		colexec.NewFixedBatchSource(coldata.NewMemBatch(4)),
		constfn.FromValue[releaseName, string, coldata.StringKind]("x"),
		2,
	)
	require.NoError(t, err)
	err = colexec.Run(context.Background(), op, func(coldata.Batch) error { return nil })
	require.Error(t, err)
	require.True(t, errors.HasAssertionFailure(err))
	require.Contains(t, err.Error(), "output index 2 is beyond batch width 0")
}

// oneArgFunction is a function that takes an argument.
type oneArgFunction struct{ tree.Function }

func (oneArgFunction) Name() string { return "abs" }
func (oneArgFunction) NumArgs() int { return 1 }

func TestNewConstFuncOpValidation(t *testing.T) {
	source := colexec.NewFixedBatchSource()

	_, err := colexec.NewConstFuncOp(source, oneArgFunction{}, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "abs() takes 1 arguments")

	_, err = colexec.NewConstFuncOp(source, constfn.FromValue[releaseName, string, coldata.StringKind]("x"), -1)
	require.Error(t, err)

	_, err = colexec.NewConstOp(source, coldata.NewConstVec[int64](coldata.Int64Kind{}, 1, 1), -1)
	require.Error(t, err)
}

func TestConstOp(t *testing.T) {
	lit := coldata.NewConstVec[int64](coldata.Int64Kind{}, 26257, 1)
	op, err := colexec.NewConstOp(colexec.NewRowCountSource(2*coldata.BatchSize+10), lit, 0)
	require.NoError(t, err)

	vecs := collect(t, op, 0)
	require.Len(t, vecs, 3)
	total := 0
	for _, vec := range vecs {
		total += vec.Len()
		require.True(t, coldata.Equal(
			coldata.Flatten(vec),
			coldata.NewConstVec[int64](coldata.Int64Kind{}, 26257, vec.Len()).Flatten(),
		))
	}
	require.Equal(t, 2*coldata.BatchSize+10, total)
	// The literal itself is never resized.
	require.Equal(t, 1, lit.Len())
}

func TestProjection(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		dist   eval.PlanDistribution
		folded int
	}{
		{dist: eval.LocalPlan, folded: 4},
		{dist: eval.FullyDistributedPlan, folded: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.dist.String(), func(t *testing.T) {
			evalCtx := eval.MakeTestingEvalContext()
			evalCtx.Distribution = tc.dist
			var fns []tree.Function
			for _, name := range []string{"pi", "hostname", "tcpPort", "uptime"} {
				fn, err := builtins.Resolve(ctx, &evalCtx, name, 0)
				require.NoError(t, err)
				fns = append(fns, fn)
			}
			exprs, folded := norm.Normalize(ctx, &evalCtx, fns)
			require.Equal(t, tc.folded, folded)

			op, err := colexec.NewProjection(colexec.NewRowCountSource(1500), 0, exprs)
			require.NoError(t, err)
			rows := 0
			require.NoError(t, colexec.Run(ctx, op, func(b coldata.Batch) error {
				require.Equal(t, len(fns), b.Width())
				for i, expected := range []string{"3.141592653589793", "test-host", "26257", "5400"} {
					vec := b.ColVec(i)
					require.True(t, vec.IsConst())
					require.Equal(t, b.Length(), vec.Len())
					require.Equal(t, expected, vec.PrettyValueAt(0))
				}
				rows += b.Length()
				return nil
			}))
			require.Equal(t, 1500, rows)
		})
	}
}

func TestProjectionUnhandledExpr(t *testing.T) {
	_, err := colexec.NewProjection(colexec.NewFixedBatchSource(), 0, []norm.ScalarExpr{nil})
	require.Error(t, err)
	require.Contains(t, err.Error(), "planning projection 0")
}

func TestRunStopsOnError(t *testing.T) {
	op := colexec.NewRowCountSource(3 * coldata.BatchSize)
	errStop := errors.New("stop")
	calls := 0
	err := colexec.Run(context.Background(), op, func(coldata.Batch) error {
		calls++
		return errStop
	})
	require.True(t, errors.Is(err, errStop))
	require.Equal(t, 1, calls)
}

// TestConcurrentExecutionSites runs the same unfolded instance from several
// operator chains at once, as the execution sites of a distributed plan do.
func TestConcurrentExecutionSites(t *testing.T) {
	evalCtx := eval.MakeTestingEvalContext()
	evalCtx.Distribution = eval.PartiallyDistributedPlan
	fn := newRelease(&evalCtx)
	require.False(t, fn.IsSuitableForConstantFolding())

	const numSites = 8
	var g errgroup.Group
	for i := 0; i < numSites; i++ {
		numRows := (i + 1) * 300
		g.Go(func() error {
			op, err := colexec.NewConstFuncOp(colexec.NewRowCountSource(numRows), fn, 0)
			if err != nil {
				return err
			}
			rows := 0
			if err := colexec.Run(context.Background(), op, func(b coldata.Batch) error {
				if v := b.ColVec(0).PrettyValueAt(0); v != "2025-01-01" {
					return errors.Newf("unexpected value %q", v)
				}
				rows += b.Length()
				return nil
			}); err != nil {
				return err
			}
			if rows != numRows {
				return errors.Newf("expected %d rows, got %d", numRows, rows)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
