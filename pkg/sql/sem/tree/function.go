// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tree

import (
	"github.com/cockroachdb/colconst/pkg/col/coldata"
	"github.com/cockroachdb/colconst/pkg/sql/sem/volatility"
	"github.com/cockroachdb/colconst/pkg/sql/types"
)

// Function is a resolved scalar function, ready to be planned and executed.
// Every occurrence of a function in a query gets its own instance.
type Function interface {
	// Name returns the canonical name of the function.
	Name() string
	// NumArgs returns the number of arguments the function takes.
	NumArgs() int
	// ReturnType returns the type of the values the function produces.
	ReturnType() *types.T

	// IsDeterministic returns true if the function returns the same result
	// for the same arguments in any query, on any node.
	IsDeterministic() bool
	// IsDeterministicInScopeOfQuery returns true if the function returns the
	// same result for the same arguments within one query execution.
	IsDeterministicInScopeOfQuery() bool
	// IsSuitableForConstantFolding returns true if the optimizer may replace
	// the call with the literal it evaluates to.
	IsSuitableForConstantFolding() bool
	// IsSuitableForShortCircuitArgumentsExecution returns true if the
	// function can be executed lazily over its arguments.
	IsSuitableForShortCircuitArgumentsExecution() bool

	// Execute produces numRows logical rows of output.
	Execute(numRows int) coldata.Vec
}

// VolatilityOf classifies fn using its determinism flags.
func VolatilityOf(fn Function) volatility.V {
	switch {
	case fn.IsDeterministic():
		return volatility.Immutable
	case fn.IsDeterministicInScopeOfQuery():
		return volatility.Stable
	default:
		return volatility.Volatile
	}
}
