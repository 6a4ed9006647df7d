// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package norm

import (
	"context"

	"github.com/cockroachdb/colconst/pkg/sql/sem/eval"
	"github.com/cockroachdb/colconst/pkg/sql/sem/tree"
)

// Factory constructs normalized scalar expressions. Construct methods apply
// the normalization rules (currently function folding) as they build.
type Factory struct {
	ctx     context.Context
	evalCtx *eval.Context
	funcs   CustomFuncs

	// foldCount is the number of function calls replaced by literals.
	foldCount int
}

// Init initializes a Factory. evalCtx is only used to annotate log entries.
func (f *Factory) Init(ctx context.Context, evalCtx *eval.Context) {
	*f = Factory{ctx: evalCtx.AnnotateCtx(ctx), evalCtx: evalCtx}
	f.funcs.Init(f)
}

// ConstructFunction returns a literal for fn if it can be folded, or a
// FuncExpr otherwise.
func (f *Factory) ConstructFunction(fn tree.Function) ScalarExpr {
	if c, ok := f.funcs.FoldFunction(fn); ok {
		f.foldCount++
		return c
	}
	return &FuncExpr{Fn: fn}
}

// ConstructProjections normalizes each function of a projection list.
func (f *Factory) ConstructProjections(fns []tree.Function) []ScalarExpr {
	res := make([]ScalarExpr, len(fns))
	for i, fn := range fns {
		res[i] = f.ConstructFunction(fn)
	}
	return res
}

// FoldCount returns the number of function calls folded so far.
func (f *Factory) FoldCount() int { return f.foldCount }

// FoldConstantFunction is a convenience wrapper around a throwaway Factory
// for callers outside of a planning session.
func FoldConstantFunction(ctx context.Context, fn tree.Function) (ScalarExpr, bool) {
	var f Factory
	f.ctx = ctx
	f.funcs.Init(&f)
	if c, ok := f.funcs.FoldFunction(fn); ok {
		return c, true
	}
	return &FuncExpr{Fn: fn}, false
}

// Normalize folds a projection list and returns the normalized expressions
// along with the number of folded calls.
func Normalize(
	ctx context.Context, evalCtx *eval.Context, fns []tree.Function,
) (_ []ScalarExpr, folded int) {
	var f Factory
	f.Init(ctx, evalCtx)
	exprs := f.ConstructProjections(fns)
	return exprs, f.FoldCount()
}
