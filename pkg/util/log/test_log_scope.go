// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"strings"
	"sync"
)

// tShim is the subset of testing.TB used by TestLogScope.
type tShim interface {
	Helper()
	Logf(format string, args ...interface{})
}

// TestLogScope captures log output for the duration of a test. Entries are
// replayed into the test log on Close, so they only show up for failing or
// verbose tests.
type TestLogScope struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	restore func()
}

// Scope starts capturing log output. Use as:
//
//	defer log.Scope(t).Close(t)
func Scope(t tShim) *TestLogScope {
	t.Helper()
	s := &TestLogScope{}
	s.restore = SetOutput(s)
	return s
}

// Write implements io.Writer.
func (s *TestLogScope) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

// String returns everything captured so far.
func (s *TestLogScope) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// Close restores the previous output and replays the captured entries.
func (s *TestLogScope) Close(t tShim) {
	t.Helper()
	s.restore()
	for _, line := range strings.Split(strings.TrimSpace(s.String()), "\n") {
		if line != "" {
			t.Logf("%s", line)
		}
	}
}
