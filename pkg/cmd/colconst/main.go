// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// This is the entry point for the colconst binary.
package main

import "github.com/cockroachdb/colconst/pkg/cli"

func main() {
	cli.Main()
}
