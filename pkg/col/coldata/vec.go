// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package coldata

import (
	"github.com/cockroachdb/colconst/pkg/sql/types"
	"github.com/cockroachdb/errors"
)

// Vec is a column vector of logical rows. A Vec may be physically
// materialized (one entry per row) or constant (one value and a length), and
// consumers can check IsConst to take shortcuts on the latter.
type Vec interface {
	// Type returns the type of every entry in the vector.
	Type() *types.T
	// Len returns the number of logical rows.
	Len() int
	// IsConst returns true if every logical row is the same stored value.
	IsConst() bool
	// Get returns the entry at row i as an interface{}. It is not suitable
	// for hot paths.
	Get(i int) interface{}
	// PrettyValueAt returns a human readable rendering of the entry at row i.
	PrettyValueAt(i int) string
	// Size returns the memory footprint of the vector in bytes.
	Size() int64
	// String returns a short description of the contents.
	String() string

	equalAt(i int, other Vec, j int) bool
}

// Const is implemented by vectors that store a single value for all of
// their logical rows.
type Const interface {
	Vec
	// WithLength returns a constant vector with the same value and the given
	// logical length. The receiver is not modified.
	WithLength(length int) Const
	// Flatten returns a vector holding one physical entry per logical row.
	Flatten() Vec
}

// typed is the accessor shared by vectors of a concrete Go type.
type typed[T any] interface {
	Vec
	At(i int) T
}

// Flatten returns a materialized version of vec. Non-constant vectors are
// returned as is.
func Flatten(vec Vec) Vec {
	if c, ok := vec.(Const); ok {
		return c.Flatten()
	}
	return vec
}

// Equal returns whether two vectors have the same type, the same logical
// length and element-wise equal entries. The physical representation is not
// compared.
func Equal(a, b Vec) bool {
	if a.Type() != b.Type() || a.Len() != b.Len() {
		return false
	}
	if a.IsConst() && b.IsConst() {
		return a.Len() == 0 || a.equalAt(0, b, 0)
	}
	for i := 0; i < a.Len(); i++ {
		if !a.equalAt(i, b, i) {
			return false
		}
	}
	return true
}

func checkIdx(i, length int) {
	if i < 0 || i >= length {
		panic(errors.AssertionFailedf("index %d out of range [0, %d)", i, length))
	}
}
