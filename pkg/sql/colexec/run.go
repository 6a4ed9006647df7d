// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package colexec

import (
	"context"

	"github.com/cockroachdb/colconst/pkg/col/coldata"
	"github.com/cockroachdb/colconst/pkg/sql/colexecerror"
	"github.com/cockroachdb/colconst/pkg/sql/colexecop"
)

// Run initializes op and passes every batch it emits to fn until op is
// exhausted or fn returns an error. Errors raised by operators through
// colexecerror are returned.
func Run(ctx context.Context, op colexecop.Operator, fn func(coldata.Batch) error) error {
	var fnErr error
	if err := colexecerror.CatchVectorizedRuntimeError(func() {
		op.Init(ctx)
		for {
			b := op.Next()
			if b.Length() == 0 {
				return
			}
			if fnErr = fn(b); fnErr != nil {
				return
			}
		}
	}); err != nil {
		return err
	}
	return fnErr
}
