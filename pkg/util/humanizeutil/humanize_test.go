// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package humanizeutil_test

import (
	"testing"

	"github.com/cockroachdb/colconst/pkg/util/humanizeutil"
	"github.com/stretchr/testify/require"
)

func TestIBytes(t *testing.T) {
	testCases := []struct {
		value    int64
		expected string
	}{
		{0, "0 B"},
		{56, "56 B"},
		{1024, "1.0 KiB"},
		{8 * 1024 * 1024, "8.0 MiB"},
		{-2048, "-2.0 KiB"},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, humanizeutil.IBytes(tc.value))
	}
}

func TestCount(t *testing.T) {
	require.Equal(t, "1,000,000", humanizeutil.Count(1000000))
	require.Equal(t, "12", humanizeutil.Count(12))
}
