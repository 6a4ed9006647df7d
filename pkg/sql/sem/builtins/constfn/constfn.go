// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package constfn implements zero-argument functions that return the same
// value for every row of a query, such as pi() or uptime().
//
// A constant function is specialized by three type parameters: a zero-sized
// Name type carrying the function name, the Go type of the value, and the
// coldata.Kind the value is stored as. For example:
//
//	type piName struct{}
//
//	func (piName) FuncName() string { return "pi" }
//
//	type Pi = constfn.Func[piName, float64, coldata.Float64Kind]
//
//	fn := constfn.FromValue[piName, float64, coldata.Float64Kind](math.Pi)
//
// Constants are never deterministic in the global sense, but they are
// deterministic in the scope of a query. Whether the optimizer may fold one
// into a literal depends on the query distribution, which is captured once at
// construction.
package constfn

import (
	"github.com/cockroachdb/colconst/pkg/col/coldata"
	"github.com/cockroachdb/colconst/pkg/sql/types"
)

// Name is implemented by the zero-sized types that identify a constant
// function. FuncName must not depend on the receiver.
type Name interface {
	FuncName() string
}

// DistributionClassifier reports whether the current query runs on more
// than one node. *eval.Context implements it.
type DistributionClassifier interface {
	IsDistributed() bool
}

// Func is a constant function. It is immutable once constructed and safe for
// concurrent use. The value is copied on construction and whenever it leaves
// the instance, so no two instances or callers share its memory.
type Func[N Name, T any, C coldata.Kind[T]] struct {
	// isDistributed is the query classification at construction time. It is
	// not re-evaluated, so an instance must not outlive its query.
	isDistributed bool
	value         T
}

// FromContext returns a constant function whose value may differ between
// the nodes of a distributed query (the server version, its uptime, ...). ctx
// is consulted once and not retained.
func FromContext[N Name, T any, C coldata.Kind[T]](
	ctx DistributionClassifier, value T,
) *Func[N, T, C] {
	var c C
	return &Func[N, T, C]{isDistributed: ctx.IsDistributed(), value: c.Copy(value)}
}

// FromValue returns a constant function whose value does not depend on
// where it is evaluated (pi, e). It is always eligible for folding.
func FromValue[N Name, T any, C coldata.Kind[T]](value T) *Func[N, T, C] {
	var c C
	return &Func[N, T, C]{value: c.Copy(value)}
}

// Name returns the name of the function.
func (*Func[N, T, C]) Name() string {
	var n N
	return n.FuncName()
}

// NumArgs always returns 0.
func (*Func[N, T, C]) NumArgs() int { return 0 }

// ReturnType returns the type bound to the column kind C.
func (*Func[N, T, C]) ReturnType() *types.T {
	var c C
	return c.Type()
}

// IsDeterministic always returns false: the value is only guaranteed to be
// the same within a query.
func (*Func[N, T, C]) IsDeterministic() bool { return false }

// IsDeterministicInScopeOfQuery always returns true.
func (*Func[N, T, C]) IsDeterministicInScopeOfQuery() bool { return true }

// IsSuitableForConstantFolding returns true unless the query was distributed
// when the function was resolved. Remote nodes may compute a different value,
// so a distributed constant is evaluated on each node instead.
func (f *Func[N, T, C]) IsSuitableForConstantFolding() bool { return !f.isDistributed }

// IsSuitableForShortCircuitArgumentsExecution always returns false; there
// are no arguments.
func (*Func[N, T, C]) IsSuitableForShortCircuitArgumentsExecution() bool { return false }

// Execute returns a constant vector of numRows rows holding the value.
func (f *Func[N, T, C]) Execute(numRows int) coldata.Vec {
	return f.ExecuteConst(numRows)
}

// ExecuteConst is like Execute but returns the concrete vector type.
func (f *Func[N, T, C]) ExecuteConst(numRows int) *coldata.ConstVec[T] {
	var c C
	return coldata.NewConstVec[T](c, c.Copy(f.value), numRows)
}

// Value returns a copy of the value of the function. The held value is owned
// by the instance and never changes.
func (f *Func[N, T, C]) Value() T {
	var c C
	return c.Copy(f.value)
}

func (f *Func[N, T, C]) String() string { return f.Name() + "()" }
