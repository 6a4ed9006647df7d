// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package norm

import (
	"github.com/cockroachdb/colconst/pkg/col/coldata"
	"github.com/cockroachdb/colconst/pkg/sql/sem/tree"
	"github.com/cockroachdb/colconst/pkg/sql/types"
)

// ScalarExpr is a normalized scalar expression of a projection.
type ScalarExpr interface {
	// DataType returns the type of the expression.
	DataType() *types.T
	String() string
}

// ConstExpr is a literal. Its value is a single-row constant vector so
// that the executor can resize it to any batch without copying.
type ConstExpr struct {
	Value coldata.Const
}

// FuncExpr is a call to a function that could not be folded.
type FuncExpr struct {
	Fn tree.Function
}

var _ ScalarExpr = &ConstExpr{}
var _ ScalarExpr = &FuncExpr{}

// DataType implements the ScalarExpr interface.
func (c *ConstExpr) DataType() *types.T { return c.Value.Type() }

func (c *ConstExpr) String() string { return c.Value.PrettyValueAt(0) }

// DataType implements the ScalarExpr interface.
func (f *FuncExpr) DataType() *types.T { return f.Fn.ReturnType() }

func (f *FuncExpr) String() string { return f.Fn.Name() + "()" }
