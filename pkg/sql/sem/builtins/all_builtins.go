// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package builtins

import (
	"sort"
	"strings"

	"github.com/cockroachdb/colconst/pkg/sql/sem/tree"
)

// AllBuiltinNames is an array containing all the built-in function
// names, sorted in alphabetical order. This can be used for a
// deterministic walk through the Builtins map.
var AllBuiltinNames []string

func init() {
	registerBuiltins(mathBuiltins)
	registerBuiltins(serverBuiltins)

	AllBuiltinNames = make([]string, 0, len(builtins))
	tree.FunDefs = make(map[string]*tree.FunctionDefinition)
	for name, def := range builtins {
		fDef := tree.NewFunctionDefinition(name, &def.props)
		for _, key := range append([]string{name}, def.props.Aliases...) {
			key = strings.ToLower(key)
			if _, exists := tree.FunDefs[key]; exists {
				panic("duplicate builtin name: " + key)
			}
			tree.FunDefs[key] = fDef
		}
		AllBuiltinNames = append(AllBuiltinNames, name)
	}

	sort.Strings(AllBuiltinNames)
}
