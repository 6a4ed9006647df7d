// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tree

import (
	"sort"
	"strings"

	"github.com/cockroachdb/colconst/pkg/sql/types"
	"github.com/cockroachdb/errors"
)

// ErrUnknownFunction is returned when a name does not resolve to a builtin.
var ErrUnknownFunction = errors.New("unknown function")

// FunctionProperties defines the properties of the built-in
// functions that are common across all overloads.
type FunctionProperties struct {
	// Category is used to generate documentation strings.
	Category string
	// Info is a description of the function.
	Info string
	// ReturnType is the type of the values the function produces.
	ReturnType *types.T
	// Aliases are additional names resolving to the function.
	Aliases []string
	// ServerLevel is set for functions whose value depends on the node they
	// are evaluated on. Such functions read the distribution of the query
	// when they are resolved and are not folded in distributed plans.
	ServerLevel bool
}

// FunctionDefinition implements a reference to a built-in function.
type FunctionDefinition struct {
	// Name is the canonical name of the function.
	Name string
	FunctionProperties
}

// NewFunctionDefinition allocates a function definition corresponding
// to the given built-in definition.
func NewFunctionDefinition(name string, props *FunctionProperties) *FunctionDefinition {
	return &FunctionDefinition{Name: name, FunctionProperties: *props}
}

func (fd *FunctionDefinition) String() string { return fd.Name + "()" }

// FunDefs holds pre-allocated FunctionDefinition instances for every builtin
// function, keyed by lowercase canonical name and alias. Initialized by
// builtins.init().
var FunDefs map[string]*FunctionDefinition

// ResolveFunction looks up a builtin by name. Lookups are case insensitive
// and accept aliases.
func ResolveFunction(name string) (*FunctionDefinition, error) {
	if d, ok := FunDefs[name]; ok {
		// Fast path: return early.
		return d, nil
	}
	if d, ok := FunDefs[strings.ToLower(name)]; ok {
		return d, nil
	}
	err := errors.Wrapf(ErrUnknownFunction, "%s()", name)
	if sugg := suggestFunctions(strings.ToLower(name)); len(sugg) > 0 {
		err = errors.WithHintf(err, "did you mean: %s", strings.Join(sugg, ", "))
	}
	return nil, err
}

// suggestFunctions returns the canonical names sharing a prefix with name.
func suggestFunctions(name string) []string {
	if len(name) < 2 {
		return nil
	}
	seen := make(map[string]struct{})
	var res []string
	for key, d := range FunDefs {
		if !strings.HasPrefix(key, name[:2]) {
			continue
		}
		if _, ok := seen[d.Name]; ok {
			continue
		}
		seen[d.Name] = struct{}{}
		res = append(res, d.Name)
	}
	sort.Strings(res)
	return res
}
