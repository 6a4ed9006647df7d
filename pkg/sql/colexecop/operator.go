// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package colexecop

import (
	"context"

	"github.com/cockroachdb/colconst/pkg/col/coldata"
)

// Operator is a column vector operator that produces a Batch as output.
type Operator interface {
	// Init initializes this operator. It will be called once at operator
	// setup time. If an operator has an input operator, it's responsible for
	// calling Init on that input operator as well.
	//
	// Canceling the provided context results in forceful termination of the
	// execution.
	Init(ctx context.Context)

	// Next returns the next Batch from this operator. Once the operator is
	// finished, it will return a Batch with length 0. Subsequent calls to
	// Next at that point will always return a Batch with length 0.
	//
	// Calling Next may invalidate the contents of the last Batch returned by
	// Next.
	Next() coldata.Batch
}

// Resetter is an interface that operators can implement if they can be reset
// either for reusing (to keep the already allocated memory) or during tests.
type Resetter interface {
	// Reset resets the operator for reuse.
	Reset(ctx context.Context)
}

// ResettableOperator is an Operator that can be reset.
type ResettableOperator interface {
	Operator
	Resetter
}

// ZeroInputHelper is a simple helper struct that can be embedded by
// operators with no inputs.
type ZeroInputHelper struct {
	Ctx context.Context
}

// Init stores the context.
func (h *ZeroInputHelper) Init(ctx context.Context) bool {
	if h.Ctx != nil {
		return false
	}
	h.Ctx = ctx
	return true
}

// OneInputHelper is an utility struct that implements the Init method of the
// Operator interface for operators with a single input.
type OneInputHelper struct {
	Input Operator
	Ctx   context.Context
}

// MakeOneInputHelper returns a new OneInputHelper.
func MakeOneInputHelper(input Operator) OneInputHelper {
	return OneInputHelper{Input: input}
}

// Init implements the Operator interface.
func (h *OneInputHelper) Init(ctx context.Context) {
	if h.Ctx != nil {
		// Init has already been called.
		return
	}
	h.Ctx = ctx
	h.Input.Init(h.Ctx)
}

// Reset resets the input if it is resettable.
func (h *OneInputHelper) Reset(ctx context.Context) {
	if r, ok := h.Input.(Resetter); ok {
		r.Reset(ctx)
	}
}
