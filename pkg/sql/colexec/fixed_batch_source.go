// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package colexec

import (
	"context"

	"github.com/cockroachdb/colconst/pkg/col/coldata"
	"github.com/cockroachdb/colconst/pkg/sql/colexecop"
)

// fixedBatchSource emits the given batches once each and then a zero-length
// batch.
type fixedBatchSource struct {
	colexecop.ZeroInputHelper

	batches []coldata.Batch
	idx     int
}

var _ colexecop.ResettableOperator = &fixedBatchSource{}

// NewFixedBatchSource returns an operator that emits batches in order.
func NewFixedBatchSource(batches ...coldata.Batch) colexecop.Operator {
	return &fixedBatchSource{batches: batches}
}

// NewRowCountSource returns an operator that emits column-less batches with
// a total of numRows rows, at most coldata.BatchSize at a time.
func NewRowCountSource(numRows int) colexecop.Operator {
	var batches []coldata.Batch
	for numRows > 0 {
		n := numRows
		if n > coldata.BatchSize {
			n = coldata.BatchSize
		}
		batches = append(batches, coldata.NewMemBatch(n))
		numRows -= n
	}
	return NewFixedBatchSource(batches...)
}

func (s *fixedBatchSource) Init(ctx context.Context) {
	s.ZeroInputHelper.Init(ctx)
}

func (s *fixedBatchSource) Next() coldata.Batch {
	if s.idx >= len(s.batches) {
		return coldata.ZeroBatch
	}
	b := s.batches[s.idx]
	s.idx++
	return b
}

func (s *fixedBatchSource) Reset(context.Context) {
	s.idx = 0
}
