// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package volatility

// V indicates whether the result of a function depends *only* on the values
// of its explicit arguments, or can change due to outside factors (such as
// the node it runs on or the current time).
//
// The values are ordered: a higher value is strictly more volatile.
type V int8

const (
	// Immutable means that the function always returns the same result for
	// the same arguments, in any query. It can be folded at plan time.
	Immutable V = 1 + iota
	// Stable means that the result is the same within a single query
	// execution, but may change across queries or execution sites.
	Stable
	// Volatile means that the result can change from one row to the next.
	Volatile
)

// String returns the byte representation of Volatility as a string.
func (v V) String() string {
	switch v {
	case Immutable:
		return "immutable"
	case Stable:
		return "stable"
	case Volatile:
		return "volatile"
	default:
		return "invalid"
	}
}
