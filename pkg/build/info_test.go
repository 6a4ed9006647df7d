// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package build

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestVersionPrefix(t *testing.T) {
	testCases := []struct {
		name     string
		tag      string
		expected string
	}{
		{name: "unknown tag", tag: "unknown", expected: "dev"},
		{name: "release", tag: "v21.2.0", expected: "v21.2"},
		{name: "pre-release", tag: "v21.2.0-alpha.2", expected: "v21.2"},
		{name: "no leading v", tag: "23.1.4", expected: "v23.1"},
		{name: "garbage", tag: "vInvalid.23", expected: "dev"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			defer TestingOverrideTag(tc.tag)()
			require.Equal(t, tc.expected, VersionPrefix())
			require.Equal(t, tc.tag, GetInfo().Tag)
		})
	}
}

func TestGoTime(t *testing.T) {
	info := Info{Time: "2025/01/01 12:30:00"}
	require.Equal(t, time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC), info.GoTime())
	require.True(t, Info{Time: "yesterday"}.GoTime().IsZero())
}

func TestOverrideRevision(t *testing.T) {
	defer TestingOverrideRevision("abc123")()
	require.Equal(t, "abc123", GetInfo().Revision)
	require.Contains(t, GetInfo().Short(), "colconst unknown")
}
