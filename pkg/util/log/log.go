// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log implements context-aware logging. Context tags added with
// logtags.AddTag are rendered as a bracketed prefix, and messages are
// formatted with redaction markers around unsafe arguments.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/colconst/pkg/util/timeutil"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

// Severity is the severity of a log entry.
type Severity int32

const (
	// INFO is the default severity.
	INFO Severity = iota
	// WARNING is for conditions worth an operator's attention.
	WARNING
	// ERROR is for failures.
	ERROR
)

func (s Severity) char() byte {
	switch s {
	case WARNING:
		return 'W'
	case ERROR:
		return 'E'
	}
	return 'I'
}

// entryTimeFormat matches the yymmdd hh:mm:ss.uuuuuu header of the server
// logs.
const entryTimeFormat = "060102 15:04:05.000000"

var logging struct {
	mu struct {
		sync.Mutex
		out io.Writer
	}
	verbosity  atomic.Int32
	redactable atomic.Bool
}

func init() {
	logging.mu.out = os.Stderr
}

// SetOutput redirects log entries to w. It returns a function restoring the
// previous writer.
func SetOutput(w io.Writer) (restore func()) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prev := logging.mu.out
	logging.mu.out = w
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.mu.out = prev
	}
}

// SetVerbosity sets the global verbosity level used by V and VEventf.
func SetVerbosity(level int32) (restore func()) {
	prev := logging.verbosity.Swap(level)
	return func() { logging.verbosity.Store(prev) }
}

// SetRedactable controls whether redaction markers are kept in the output.
func SetRedactable(redactable bool) {
	logging.redactable.Store(redactable)
}

// V returns true if the verbosity is at least level.
func V(level int32) bool {
	return logging.verbosity.Load() >= level
}

// Infof logs to the INFO severity.
func Infof(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, INFO, format, args)
}

// Warningf logs to the WARNING severity.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, WARNING, format, args)
}

// Errorf logs to the ERROR severity.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, ERROR, format, args)
}

// VEventf logs an INFO entry if the verbosity is at least level.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	if V(level) {
		logDepth(ctx, 1, INFO, format, args)
	}
}

func logDepth(
	ctx context.Context, depth int, sev Severity, format string, args []interface{},
) {
	entry := makeEntry(ctx, depth+1, sev, format, args)
	logging.mu.Lock()
	defer logging.mu.Unlock()
	_, _ = io.WriteString(logging.mu.out, entry)
}

func makeEntry(
	ctx context.Context, depth int, sev Severity, format string, args []interface{},
) string {
	var sb strings.Builder
	sb.WriteByte(sev.char())
	sb.WriteString(timeutil.Now().UTC().Format(entryTimeFormat))
	if _, file, line, ok := runtime.Caller(depth + 1); ok {
		fmt.Fprintf(&sb, " %s:%d", filepath.Base(file), line)
	}
	sb.WriteByte(' ')
	formatTags(ctx, &sb)
	msg := redact.Sprintf(format, args...)
	if logging.redactable.Load() {
		sb.WriteString(string(msg))
	} else {
		sb.WriteString(msg.StripMarkers())
	}
	if !strings.HasSuffix(sb.String(), "\n") {
		sb.WriteByte('\n')
	}
	return sb.String()
}

// formatTags renders the context tags as "[n1,fn=pi] ". Single-letter keys
// are concatenated with their value.
func formatTags(ctx context.Context, sb *strings.Builder) {
	tags := logtags.FromContext(ctx)
	if tags == nil {
		return
	}
	sb.WriteByte('[')
	for i, t := range tags.Get() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(t.Key())
		if t.Value() == nil {
			continue
		}
		if len(t.Key()) > 1 {
			sb.WriteByte('=')
		}
		sb.WriteString(t.ValueStr())
	}
	sb.WriteString("] ")
}

// FormatWithContextTags formats the string and prepends the context tags.
// Redaction markers are not inserted.
func FormatWithContextTags(ctx context.Context, format string, args ...interface{}) string {
	var sb strings.Builder
	formatTags(ctx, &sb)
	fmt.Fprintf(&sb, format, args...)
	return sb.String()
}
