// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package colexec

import (
	"github.com/cockroachdb/colconst/pkg/col/coldata"
	"github.com/cockroachdb/colconst/pkg/sql/colexecerror"
	"github.com/cockroachdb/colconst/pkg/sql/colexecop"
	"github.com/cockroachdb/colconst/pkg/sql/sem/tree"
	"github.com/cockroachdb/colconst/pkg/sql/types"
	"github.com/cockroachdb/errors"
)

// constFuncOp is an operator that evaluates a zero-argument function once
// per input batch and writes the result into outputIdx. The function is
// expected to produce a constant vector, so the cost of each batch does not
// depend on its length.
type constFuncOp struct {
	colexecop.OneInputHelper

	fn        tree.Function
	outputIdx int
}

var _ colexecop.ResettableOperator = &constFuncOp{}

// NewConstFuncOp returns an operator that projects the result of fn into
// column outputIdx of every batch coming from input. fn must take no
// arguments.
func NewConstFuncOp(
	input colexecop.Operator, fn tree.Function, outputIdx int,
) (colexecop.Operator, error) {
	if fn.NumArgs() != 0 {
		return nil, errors.AssertionFailedf(
			"%s() takes %d arguments and cannot be projected as a constant", fn.Name(), fn.NumArgs())
	}
	if outputIdx < 0 {
		return nil, errors.AssertionFailedf("invalid output index %d", outputIdx)
	}
	return &constFuncOp{
		OneInputHelper: colexecop.MakeOneInputHelper(input),
		fn:             fn,
		outputIdx:      outputIdx,
	}, nil
}

func (c *constFuncOp) Next() coldata.Batch {
	batch := c.Input.Next()
	n := batch.Length()
	if n == 0 {
		return coldata.ZeroBatch
	}
	setOutput(batch, c.outputIdx, c.fn.ReturnType(), c.fn.Execute(n))
	return batch
}

// constOp projects a folded literal. The literal is resized to the length of
// each batch, which never copies its value.
type constOp struct {
	colexecop.OneInputHelper

	lit       coldata.Const
	outputIdx int
}

var _ colexecop.ResettableOperator = &constOp{}

// NewConstOp returns an operator that projects lit into column outputIdx of
// every batch coming from input.
func NewConstOp(
	input colexecop.Operator, lit coldata.Const, outputIdx int,
) (colexecop.Operator, error) {
	if outputIdx < 0 {
		return nil, errors.AssertionFailedf("invalid output index %d", outputIdx)
	}
	return &constOp{
		OneInputHelper: colexecop.MakeOneInputHelper(input),
		lit:            lit,
		outputIdx:      outputIdx,
	}, nil
}

func (c *constOp) Next() coldata.Batch {
	batch := c.Input.Next()
	n := batch.Length()
	if n == 0 {
		return coldata.ZeroBatch
	}
	setOutput(batch, c.outputIdx, c.lit.Type(), c.lit.WithLength(n))
	return batch
}

// setOutput places vec into column idx of batch, appending it if idx is the
// current width.
func setOutput(batch coldata.Batch, idx int, typ *types.T, vec coldata.Vec) {
	if vec.Len() != batch.Length() {
		colexecerror.InternalError(errors.AssertionFailedf(
			"vector of length %d produced for batch of length %d", vec.Len(), batch.Length()))
	}
	if !vec.Type().Equivalent(typ) {
		colexecerror.InternalError(errors.AssertionFailedf(
			"vector of type %s produced for column of type %s", vec.Type(), typ))
	}
	switch w := batch.Width(); {
	case idx == w:
		batch.AppendCol(vec)
	case idx < w:
		batch.ReplaceCol(vec, idx)
	default:
		colexecerror.InternalError(errors.AssertionFailedf(
			"output index %d is beyond batch width %d", idx, w))
	}
}
