// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package coldata

import "github.com/cockroachdb/errors"

// BatchSize is the default number of rows in a batch.
const BatchSize = 1024

// Batch is the type that column operators operate on and return.
type Batch interface {
	// Length returns the number of logical rows in the batch.
	Length() int
	// SetLength sets the number of logical rows in the batch.
	SetLength(int)
	// Width returns the number of columns in the batch.
	Width() int
	// ColVec returns the ith Vec in this batch.
	ColVec(i int) Vec
	// ColVecs returns all of the underlying Vecs in this batch.
	ColVecs() []Vec
	// AppendCol appends the given Vec to this batch.
	AppendCol(Vec)
	// ReplaceCol replaces the current Vec at the provided index with the
	// provided Vec.
	ReplaceCol(Vec, int)
}

// ZeroBatch is a schema-less Batch of length 0.
var ZeroBatch Batch = &MemBatch{}

// MemBatch is an in-memory implementation of Batch.
type MemBatch struct {
	length int
	b      []Vec
}

var _ Batch = &MemBatch{}

// NewMemBatch returns a batch of the given length holding cols.
func NewMemBatch(length int, cols ...Vec) *MemBatch {
	return &MemBatch{length: length, b: cols}
}

// Length implements the Batch interface.
func (m *MemBatch) Length() int { return m.length }

// SetLength implements the Batch interface.
func (m *MemBatch) SetLength(length int) { m.length = length }

// Width implements the Batch interface.
func (m *MemBatch) Width() int { return len(m.b) }

// ColVec implements the Batch interface.
func (m *MemBatch) ColVec(i int) Vec { return m.b[i] }

// ColVecs implements the Batch interface.
func (m *MemBatch) ColVecs() []Vec { return m.b }

// AppendCol implements the Batch interface.
func (m *MemBatch) AppendCol(col Vec) {
	if m == ZeroBatch {
		panic(errors.AssertionFailedf("invalid attempt to modify ZeroBatch"))
	}
	m.b = append(m.b, col)
}

// ReplaceCol implements the Batch interface.
func (m *MemBatch) ReplaceCol(col Vec, colIdx int) {
	if col.Len() != m.length {
		panic(errors.AssertionFailedf(
			"column of length %d does not fit batch of length %d", col.Len(), m.length))
	}
	m.b[colIdx] = col
}
