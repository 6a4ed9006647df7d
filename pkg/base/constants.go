// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package base

const (
	// DefaultPort is the default port the SQL server listens on, reported by
	// tcp_port() when no port is configured.
	DefaultPort = 26257

	// DefaultTimezone is the server time zone used when none is configured.
	DefaultTimezone = "UTC"
)
