// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package builtins

import (
	"time"

	"github.com/cockroachdb/colconst/pkg/build"
	"github.com/cockroachdb/colconst/pkg/col/coldata"
	"github.com/cockroachdb/colconst/pkg/sql/sem/builtins/constfn"
	"github.com/cockroachdb/colconst/pkg/sql/sem/eval"
	"github.com/cockroachdb/colconst/pkg/sql/sem/tree"
	"github.com/cockroachdb/colconst/pkg/sql/types"
	"github.com/google/uuid"
)

// Server-level constants. Each node of a distributed query may report a
// different value, so all of them are built with constfn.FromContext.

type versionName struct{}
type buildIDName struct{}
type uptimeName struct{}
type timezoneName struct{}
type serverTimezoneName struct{}
type hostnameName struct{}
type displayNameName struct{}
type tcpPortName struct{}
type serverUUIDName struct{}

func (versionName) FuncName() string        { return "version" }
func (buildIDName) FuncName() string        { return "build_id" }
func (uptimeName) FuncName() string         { return "uptime" }
func (timezoneName) FuncName() string       { return "timezone" }
func (serverTimezoneName) FuncName() string { return "server_timezone" }
func (hostnameName) FuncName() string       { return "hostname" }
func (displayNameName) FuncName() string    { return "display_name" }
func (tcpPortName) FuncName() string        { return "tcp_port" }
func (serverUUIDName) FuncName() string     { return "server_uuid" }

// Version is the version() builtin.
type Version = constfn.Func[versionName, string, coldata.StringKind]

// Uptime is the uptime() builtin.
type Uptime = constfn.Func[uptimeName, int64, coldata.Int64Kind]

// ServerUUID is the server_uuid() builtin.
type ServerUUID = constfn.Func[serverUUIDName, uuid.UUID, coldata.UUIDKind]

var serverBuiltins = map[string]builtinDefinition{
	"version": makeBuiltin(
		serverProps(types.String, "Returns the version of the server."),
		func(evalCtx *eval.Context) tree.Function {
			return constfn.FromContext[versionName, string, coldata.StringKind](
				evalCtx, build.GetInfo().Tag)
		},
	),
	"build_id": makeBuiltin(
		serverProps(types.String, "Returns the revision the server binary was built from.", "buildId"),
		func(evalCtx *eval.Context) tree.Function {
			return constfn.FromContext[buildIDName, string, coldata.StringKind](
				evalCtx, build.GetInfo().Revision)
		},
	),
	"uptime": makeBuiltin(
		serverProps(types.Int, "Returns the number of seconds since the server started."),
		func(evalCtx *eval.Context) tree.Function {
			uptime := evalCtx.Now().Sub(evalCtx.Server.StartTime)
			return constfn.FromContext[uptimeName, int64, coldata.Int64Kind](
				evalCtx, int64(uptime/time.Second))
		},
	),
	"timezone": makeBuiltin(
		tree.FunctionProperties{
			Category:    categoryDateTime,
			Info:        "Returns the time zone of the current session, or the server time zone.",
			ReturnType:  types.String,
			ServerLevel: true,
		},
		func(evalCtx *eval.Context) tree.Function {
			return constfn.FromContext[timezoneName, string, coldata.StringKind](
				evalCtx, evalCtx.Timezone().String())
		},
	),
	"server_timezone": makeBuiltin(
		tree.FunctionProperties{
			Category:    categoryDateTime,
			Info:        "Returns the time zone the server is configured with.",
			ReturnType:  types.String,
			Aliases:     []string{"serverTimeZone"},
			ServerLevel: true,
		},
		func(evalCtx *eval.Context) tree.Function {
			return constfn.FromContext[serverTimezoneName, string, coldata.StringKind](
				evalCtx, evalCtx.Server.Location().String())
		},
	),
	"hostname": makeBuiltin(
		serverProps(types.String, "Returns the hostname of the server."),
		func(evalCtx *eval.Context) tree.Function {
			return constfn.FromContext[hostnameName, string, coldata.StringKind](
				evalCtx, evalCtx.Server.Hostname)
		},
	),
	"display_name": makeBuiltin(
		serverProps(types.String, "Returns the display name of the server.", "displayName"),
		func(evalCtx *eval.Context) tree.Function {
			return constfn.FromContext[displayNameName, string, coldata.StringKind](
				evalCtx, evalCtx.Server.DisplayName)
		},
	),
	"tcp_port": makeBuiltin(
		serverProps(types.Int, "Returns the SQL port the server listens on.", "tcpPort"),
		func(evalCtx *eval.Context) tree.Function {
			return constfn.FromContext[tcpPortName, int64, coldata.Int64Kind](
				evalCtx, int64(evalCtx.Server.TCPPort))
		},
	),
	"server_uuid": makeBuiltin(
		serverProps(types.Uuid, "Returns the UUID of the server.", "serverUUID"),
		func(evalCtx *eval.Context) tree.Function {
			return constfn.FromContext[serverUUIDName, uuid.UUID, coldata.UUIDKind](
				evalCtx, evalCtx.Server.UUID())
		},
	),
}

func serverProps(typ *types.T, info string, aliases ...string) tree.FunctionProperties {
	return tree.FunctionProperties{
		Category:    categorySystemInfo,
		Info:        info,
		ReturnType:  typ,
		Aliases:     aliases,
		ServerLevel: true,
	}
}
