// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package coldata

import (
	"strings"
	"unsafe"

	"github.com/cockroachdb/colconst/pkg/sql/types"
)

// FlatVec is a vector with one physical entry per logical row.
type FlatVec[T any] struct {
	kind Kind[T]
	vals []T
}

var _ Vec = &FlatVec[int64]{}

// NewFlatVec returns a vector backed by vals. The slice is not copied.
func NewFlatVec[T any](kind Kind[T], vals []T) *FlatVec[T] {
	return &FlatVec[T]{kind: kind, vals: vals}
}

// Type implements the Vec interface.
func (f *FlatVec[T]) Type() *types.T { return f.kind.Type() }

// Len implements the Vec interface.
func (f *FlatVec[T]) Len() int { return len(f.vals) }

// IsConst implements the Vec interface.
func (f *FlatVec[T]) IsConst() bool { return false }

// At returns the value at row i.
func (f *FlatVec[T]) At(i int) T {
	checkIdx(i, len(f.vals))
	return f.vals[i]
}

// Get implements the Vec interface.
func (f *FlatVec[T]) Get(i int) interface{} { return f.At(i) }

// PrettyValueAt implements the Vec interface.
func (f *FlatVec[T]) PrettyValueAt(i int) string { return f.kind.Format(f.At(i)) }

// Size implements the Vec interface.
func (f *FlatVec[T]) Size() int64 {
	size := int64(unsafe.Sizeof(*f))
	for i := range f.vals {
		size += f.kind.Size(f.vals[i])
	}
	return size
}

func (f *FlatVec[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range f.vals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f.kind.Format(f.vals[i]))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (f *FlatVec[T]) equalAt(i int, other Vec, j int) bool {
	o, ok := other.(typed[T])
	if !ok {
		return false
	}
	return f.kind.Equal(f.At(i), o.At(j))
}
