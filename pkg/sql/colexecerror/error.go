// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package colexecerror propagates errors out of vectorized operators. Since
// Operator.Next has no error return, operators panic with one of the
// functions of this package and the caller of the operator tree recovers
// with CatchVectorizedRuntimeError.
package colexecerror

import (
	"runtime/debug"

	"github.com/cockroachdb/errors"
)

// internalError is an error that occurred because of a bug in the engine.
type internalError struct {
	cause error
}

func (e *internalError) Error() string { return e.cause.Error() }
func (e *internalError) Cause() error  { return e.cause }
func (e *internalError) Unwrap() error { return e.cause }

// expectedError is an error that was emitted intentionally, for example
// because of a failed config lookup.
type expectedError struct {
	cause error
}

func (e *expectedError) Error() string { return e.cause.Error() }
func (e *expectedError) Cause() error  { return e.cause }
func (e *expectedError) Unwrap() error { return e.cause }

// InternalError panics with err, which is an assertion failure if it
// isn't one already.
func InternalError(err error) {
	if !errors.HasAssertionFailure(err) {
		err = errors.NewAssertionErrorWithWrappedErrf(err, "unexpected error from the vectorized engine")
	}
	panic(&internalError{cause: err})
}

// ExpectedError panics with err, which is returned as is by
// CatchVectorizedRuntimeError.
func ExpectedError(err error) {
	panic(&expectedError{cause: err})
}

// CatchVectorizedRuntimeError executes operation, catches a runtime error if
// it is coming from the vectorized engine, and returns it. Panics that were
// not raised through this package are converted into assertion failures
// annotated with the stack.
func CatchVectorizedRuntimeError(operation func()) (retErr error) {
	defer func() {
		panicObj := recover()
		if panicObj == nil {
			return
		}
		switch e := panicObj.(type) {
		case *internalError:
			retErr = e.cause
		case *expectedError:
			retErr = e.cause
		case error:
			// Panics from the standard library (index out of range and the
			// like) and from errors.AssertionFailedf land here.
			if errors.HasAssertionFailure(e) {
				retErr = e
			} else {
				retErr = errors.NewAssertionErrorWithWrappedErrf(e, "caught panic")
			}
			retErr = errors.WithDetail(retErr, string(debug.Stack()))
		default:
			retErr = errors.AssertionFailedf("caught panic: %v", e)
		}
	}()
	operation()
	return retErr
}
