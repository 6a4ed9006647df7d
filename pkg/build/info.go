// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package build

import (
	"fmt"
	"runtime"
	"time"

	"github.com/Masterminds/semver/v3"
)

// TimeFormat is the reference format for build.Time. Make sure it stays in sync
// with the string passed to the linker.
const TimeFormat = "2006/01/02 15:04:05"

var (
	// These variables are initialized via the linker -X flag when compiling
	// release binaries.
	tag      = "unknown" // Tag of this build (git describe --tags w/ optional '-dirty' suffix)
	utcTime  string      // Build time in UTC (year/month/day hour:min:sec)
	rev      string      // SHA-1 of this build (git rev-parse)
	platform = fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH)
	typ      string // Type of this build: <empty>, "development", or "release"
	channel  = "unknown"
)

// Info describes the binary.
type Info struct {
	GoVersion string
	Tag       string
	Time      string
	Revision  string
	Platform  string
	Type      string
	Channel   string
}

// IsRelease returns true if the binary was produced by a "release" build.
func IsRelease() bool {
	return typ == "release"
}

// VersionPrefix returns the "vMAJOR.MINOR" prefix of the current build, or
// "dev" when the tag is not a semantic version.
func VersionPrefix() string {
	v, err := semver.NewVersion(tag)
	if err != nil {
		return "dev"
	}
	return fmt.Sprintf("v%d.%d", v.Major(), v.Minor())
}

// Short returns a pretty printed build and version summary.
func (b Info) Short() string {
	return fmt.Sprintf("colconst %s (%s, built %s, %s)",
		b.Tag, b.Platform, b.Time, b.GoVersion)
}

// GoTime parses the utcTime string and returns a time.Time.
func (b Info) GoTime() time.Time {
	val, err := time.Parse(TimeFormat, b.Time)
	if err != nil {
		return time.Time{}
	}
	return val
}

// GetInfo returns an Info struct populated with the build information.
func GetInfo() Info {
	return Info{
		GoVersion: runtime.Version(),
		Tag:       tag,
		Time:      utcTime,
		Revision:  rev,
		Platform:  platform,
		Type:      typ,
		Channel:   channel,
	}
}

// TestingOverrideTag allows tests to override the build tag.
func TestingOverrideTag(t string) func() {
	prev := tag
	tag = t
	return func() { tag = prev }
}

// TestingOverrideRevision allows tests to override the build revision.
func TestingOverrideRevision(r string) func() {
	prev := rev
	rev = r
	return func() { rev = prev }
}
