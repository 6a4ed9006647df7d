// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package builtins

import (
	"context"

	"github.com/cockroachdb/colconst/pkg/sql/sem/eval"
	"github.com/cockroachdb/colconst/pkg/sql/sem/tree"
	"github.com/cockroachdb/colconst/pkg/util/log"
	"github.com/cockroachdb/errors"
)

const (
	categoryMath       = "Math and numeric"
	categorySystemInfo = "System info"
	categoryDateTime   = "Date and time"
)

// builtinDefinition pairs the properties of a builtin with the function that
// creates an instance of it for a query.
type builtinDefinition struct {
	props tree.FunctionProperties
	fn    func(*eval.Context) tree.Function
}

func makeBuiltin(
	props tree.FunctionProperties, fn func(*eval.Context) tree.Function,
) builtinDefinition {
	return builtinDefinition{props: props, fn: fn}
}

// builtins contains the built-in functions indexed by canonical name.
var builtins = map[string]builtinDefinition{}

func registerBuiltins(defs map[string]builtinDefinition) {
	for k, v := range defs {
		if _, exists := builtins[k]; exists {
			panic("duplicate builtin: " + k)
		}
		builtins[k] = v
	}
}

// GetBuiltinProperties provides low-level access to a built-in function's
// properties. It accepts aliases and is case insensitive.
func GetBuiltinProperties(name string) (*tree.FunctionProperties, bool) {
	def, err := tree.ResolveFunction(name)
	if err != nil {
		return nil, false
	}
	return &def.FunctionProperties, true
}

// Resolve returns a new instance of the named function for a query evaluated
// with evalCtx, called with numArgs arguments.
func Resolve(
	ctx context.Context, evalCtx *eval.Context, name string, numArgs int,
) (tree.Function, error) {
	def, err := tree.ResolveFunction(name)
	if err != nil {
		return nil, err
	}
	if def.ServerLevel && evalCtx.Server == nil {
		return nil, errors.AssertionFailedf("%s requires server properties", def)
	}
	fn := builtins[def.Name].fn(evalCtx)
	if numArgs != fn.NumArgs() {
		return nil, errors.WithHintf(
			errors.Newf("%s: expected %d arguments, got %d", def, fn.NumArgs(), numArgs),
			"%s", def.Info,
		)
	}
	ctx = evalCtx.AnnotateCtx(ctx)
	log.VEventf(ctx, 2, "resolved %s as %s (foldable: %t)",
		name, def, fn.IsSuitableForConstantFolding())
	if def.ServerLevel && evalCtx.IsDistributed() {
		log.VEventf(ctx, 1, "%s is evaluated on every node of the %s plan",
			def, evalCtx.Distribution)
	}
	return fn, nil
}
