// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package coldata

import (
	"fmt"
	"unsafe"

	"github.com/cockroachdb/colconst/pkg/sql/types"
)

// ConstVec is a vector of length logical rows that all hold the same value.
// Only the value and the length are stored, so the footprint of a ConstVec
// does not depend on its length. A ConstVec is immutable.
type ConstVec[T any] struct {
	kind   Kind[T]
	val    T
	length int
}

var _ Const = &ConstVec[int64]{}

// NewConstVec returns a constant vector of the given kind and length.
func NewConstVec[T any](kind Kind[T], val T, length int) *ConstVec[T] {
	if length < 0 {
		length = 0
	}
	return &ConstVec[T]{kind: kind, val: val, length: length}
}

// Type implements the Vec interface.
func (c *ConstVec[T]) Type() *types.T { return c.kind.Type() }

// Len implements the Vec interface.
func (c *ConstVec[T]) Len() int { return c.length }

// IsConst implements the Vec interface.
func (c *ConstVec[T]) IsConst() bool { return true }

// Value returns the value shared by every row.
func (c *ConstVec[T]) Value() T { return c.val }

// At returns the value at row i.
func (c *ConstVec[T]) At(i int) T {
	checkIdx(i, c.length)
	return c.val
}

// Get implements the Vec interface.
func (c *ConstVec[T]) Get(i int) interface{} { return c.At(i) }

// PrettyValueAt implements the Vec interface.
func (c *ConstVec[T]) PrettyValueAt(i int) string { return c.kind.Format(c.At(i)) }

// Size implements the Vec interface.
func (c *ConstVec[T]) Size() int64 {
	return int64(unsafe.Sizeof(*c)) + c.kind.Size(c.val)
}

// WithLength implements the Const interface.
func (c *ConstVec[T]) WithLength(length int) Const {
	return NewConstVec(c.kind, c.val, length)
}

// Flatten implements the Const interface.
func (c *ConstVec[T]) Flatten() Vec {
	vals := make([]T, c.length)
	for i := range vals {
		vals[i] = c.val
	}
	return NewFlatVec(c.kind, vals)
}

func (c *ConstVec[T]) String() string {
	return fmt.Sprintf("const(%s) x %d", c.kind.Format(c.val), c.length)
}

func (c *ConstVec[T]) equalAt(i int, other Vec, j int) bool {
	o, ok := other.(typed[T])
	if !ok {
		return false
	}
	return c.kind.Equal(c.At(i), o.At(j))
}
