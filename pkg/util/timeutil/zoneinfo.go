// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package timeutil

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

var errTZDataNotFound = errors.New("timezone data cannot be found")

// LoadLocation returns the time.Location with the given name, taken from
// the IANA Time Zone database (e.g. "America/New_York").
//
// Unlike time.LoadLocation, "Local" and "default" map to UTC, and a missing
// database is reported as such instead of as a zoneinfo.zip error.
func LoadLocation(name string) (*time.Location, error) {
	switch strings.ToLower(name) {
	case "local", "default":
		name = "UTC"
	}
	l, err := time.LoadLocation(name)
	if err != nil {
		if strings.Contains(err.Error(), "zoneinfo.zip") {
			return nil, errTZDataNotFound
		}
		return nil, errors.Wrapf(err, "invalid time zone %q", name)
	}
	return l, nil
}
