// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package base

import (
	"os"
	"time"

	"github.com/cockroachdb/colconst/pkg/util/timeutil"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	yaml "gopkg.in/yaml.v2"
)

// ServerConfig holds the server properties reported by the server-level
// constant functions (hostname(), tcp_port(), server_uuid(), ...).
//
// A ServerConfig must be validated before use; Validate resolves the time
// zone and the UUID.
type ServerConfig struct {
	// DisplayName is the name shown to clients. Defaults to Hostname.
	DisplayName string `yaml:"display_name"`
	// Hostname overrides the OS hostname.
	Hostname string `yaml:"hostname"`
	// TCPPort is the SQL listen port.
	TCPPort int `yaml:"tcp_port"`
	// Timezone is the IANA name of the server time zone.
	Timezone string `yaml:"timezone"`
	// ServerUUID identifies this server. A random one is generated if
	// empty.
	ServerUUID string `yaml:"server_uuid"`
	// StartTime is when the server started; uptime() is measured from it.
	StartTime time.Time `yaml:"start_time"`

	location *time.Location
	uuid     uuid.UUID
}

// MakeServerConfig returns a ServerConfig with defaults filled in from the
// environment. The result is not yet validated.
func MakeServerConfig() ServerConfig {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	return ServerConfig{
		Hostname:  hostname,
		TCPPort:   DefaultPort,
		Timezone:  DefaultTimezone,
		StartTime: timeutil.Now(),
	}
}

// ParseServerConfig decodes a YAML document on top of the defaults and
// validates the result. Unknown fields are rejected.
func ParseServerConfig(data []byte) (*ServerConfig, error) {
	cfg := MakeServerConfig()
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parsing server config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadServerConfig reads and parses the YAML file at path.
func LoadServerConfig(path string) (*ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading server config %s", path)
	}
	cfg, err := ParseServerConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return cfg, nil
}

// Validate checks the config and resolves derived fields.
func (cfg *ServerConfig) Validate() error {
	if cfg.Hostname == "" {
		return errors.New("hostname must not be empty")
	}
	if cfg.DisplayName == "" {
		cfg.DisplayName = cfg.Hostname
	}
	if cfg.TCPPort <= 0 || cfg.TCPPort > 65535 {
		return errors.Newf("invalid tcp_port %d", cfg.TCPPort)
	}
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	loc, err := timeutil.LoadLocation(cfg.Timezone)
	if err != nil {
		return errors.WithHint(err, "timezone must be an IANA name such as America/New_York")
	}
	cfg.location = loc
	if cfg.ServerUUID == "" {
		cfg.uuid = uuid.New()
		cfg.ServerUUID = cfg.uuid.String()
	} else if cfg.uuid, err = uuid.Parse(cfg.ServerUUID); err != nil {
		return errors.Wrapf(err, "invalid server_uuid %q", cfg.ServerUUID)
	}
	if cfg.StartTime.IsZero() {
		cfg.StartTime = timeutil.Now()
	}
	return nil
}

// Location returns the resolved server time zone.
func (cfg *ServerConfig) Location() *time.Location {
	if cfg.location == nil {
		return time.UTC
	}
	return cfg.location
}

// UUID returns the resolved server UUID.
func (cfg *ServerConfig) UUID() uuid.UUID {
	return cfg.uuid
}
