// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package norm

import (
	"github.com/cockroachdb/colconst/pkg/col/coldata"
	"github.com/cockroachdb/colconst/pkg/sql/sem/tree"
	"github.com/cockroachdb/colconst/pkg/util/log"
	"github.com/cockroachdb/redact"
)

// CustomFuncs contains the functions used by the normalization rules.
type CustomFuncs struct {
	f *Factory
}

// Init initializes a new CustomFuncs with the given factory.
func (c *CustomFuncs) Init(f *Factory) {
	c.f = f
}

// CanFoldFunction returns true if fn can be replaced by the literal it
// evaluates to. Only argument-less functions are considered, since arguments
// would first need to be folded themselves.
func (c *CustomFuncs) CanFoldFunction(fn tree.Function) bool {
	return fn.NumArgs() == 0 && fn.IsSuitableForConstantFolding()
}

// FoldFunction evaluates fn once and returns the resulting literal. It
// returns ok=false if fn cannot be folded, or if it did not produce a
// constant vector.
func (c *CustomFuncs) FoldFunction(fn tree.Function) (_ *ConstExpr, ok bool) {
	name := redact.Safe(fn.Name())
	if !c.CanFoldFunction(fn) {
		log.VEventf(c.f.ctx, 2, "not folding %s(): evaluated at each execution site", name)
		return nil, false
	}
	vec, ok := fn.Execute(1).(coldata.Const)
	if !ok {
		log.Warningf(c.f.ctx, "function %s() did not produce a constant", name)
		return nil, false
	}
	log.VEventf(c.f.ctx, 2, "folded %s() to %s", name, vec.PrettyValueAt(0))
	return &ConstExpr{Value: vec}, true
}
