// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cliflags

import (
	"fmt"
	"strings"
)

// FlagInfo contains the static information for a CLI flag and helper
// to format the description.
type FlagInfo struct {
	// Name of the flag as used on the command line.
	Name string

	// Shorthand is the short form of the flag (optional).
	Shorthand string

	// EnvVar is the name of the environment variable through which the flag
	// can also be set (optional).
	EnvVar string

	// Description of the flag.
	Description string
}

// Usage returns a formatted usage string for the flag, including the
// environment variable, if any.
func (f FlagInfo) Usage() string {
	s := strings.TrimSpace(f.Description)
	if f.EnvVar != "" {
		s += fmt.Sprintf("\nEnvironment variable: %s", f.EnvVar)
	}
	return s
}

// Flags of the eval and list commands.
var (
	ConfigFile = FlagInfo{
		Name:   "config",
		EnvVar: "COLCONST_CONFIG",
		Description: `
Path to a YAML file describing the server properties reported by the
server-level functions (display_name, hostname, tcp_port, timezone,
server_uuid, start_time). Properties that are not set default to the
local environment.`,
	}

	Rows = FlagInfo{
		Name:      "rows",
		Shorthand: "n",
		Description: `
Number of rows to evaluate the functions over. Rows are split into batches
of at most 1024.`,
	}

	Distribution = FlagInfo{
		Name:   "distribution",
		EnvVar: "COLCONST_DISTRIBUTION",
		Description: `
Plan distribution the functions are resolved for: local, partial or full.
Server-level functions are only folded into literals in local plans.`,
	}

	SessionTimezone = FlagInfo{
		Name:        "session-timezone",
		Description: `Session time zone reported by timezone(). Defaults to the server time zone.`,
	}

	NodeID = FlagInfo{
		Name:        "node-id",
		Description: `ID of the node the functions are evaluated on, used in log tags.`,
	}

	Verbosity = FlagInfo{
		Name:        "verbosity",
		Shorthand:   "v",
		EnvVar:      "COLCONST_VERBOSITY",
		Description: `Log verbosity. Level 2 logs resolution and folding decisions.`,
	}
)
