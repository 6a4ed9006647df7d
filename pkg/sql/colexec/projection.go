// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package colexec

import (
	"github.com/cockroachdb/colconst/pkg/sql/colexecop"
	"github.com/cockroachdb/colconst/pkg/sql/opt/norm"
	"github.com/cockroachdb/errors"
)

// NewProjection plans a chain of operators that appends one column per
// expression to the batches of input, in order. inputWidth is the number of
// columns the input batches have.
func NewProjection(
	input colexecop.Operator, inputWidth int, exprs []norm.ScalarExpr,
) (colexecop.Operator, error) {
	op := input
	for i, expr := range exprs {
		var err error
		outputIdx := inputWidth + i
		switch e := expr.(type) {
		case *norm.ConstExpr:
			op, err = NewConstOp(op, e.Value, outputIdx)
		case *norm.FuncExpr:
			op, err = NewConstFuncOp(op, e.Fn, outputIdx)
		default:
			err = errors.AssertionFailedf("unhandled expression %T", expr)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "planning projection %d", i)
		}
	}
	return op, nil
}
