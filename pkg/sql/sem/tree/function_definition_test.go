// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tree

import (
	"testing"

	"github.com/cockroachdb/colconst/pkg/sql/types"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestResolveFunction(t *testing.T) {
	defer func(prev map[string]*FunctionDefinition) { FunDefs = prev }(FunDefs)

	hostname := NewFunctionDefinition("hostname", &FunctionProperties{ReturnType: types.String})
	uptime := NewFunctionDefinition("uptime", &FunctionProperties{ReturnType: types.Int})
	FunDefs = map[string]*FunctionDefinition{
		"hostname": hostname,
		"hostnm":   hostname,
		"uptime":   uptime,
	}

	testCases := []struct {
		name     string
		expected *FunctionDefinition
		hint     string
	}{
		{name: "hostname", expected: hostname},
		{name: "HostName", expected: hostname},
		{name: "hostnm", expected: hostname},
		{name: "UPTIME", expected: uptime},
		{name: "hostess", hint: "did you mean: hostname"},
		{name: "x"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := ResolveFunction(tc.name)
			if tc.expected != nil {
				require.NoError(t, err)
				require.Same(t, tc.expected, def)
				return
			}
			require.True(t, errors.Is(err, ErrUnknownFunction))
			require.Equal(t, tc.name+"(): unknown function", err.Error())
			require.Equal(t, tc.hint, errors.FlattenHints(err))
		})
	}
	require.Equal(t, "uptime()", uptime.String())
}
