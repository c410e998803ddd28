// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	AuthSpec

	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"false"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	JWKSCacheTTL time.Duration `envconfig:"jwks_cache_ttl" default:"0s"`
	RedisURL     string        `envconfig:"redis_url"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
}

// AuthSpec holds the trust configuration, it is all the verify command needs
type AuthSpec struct {
	AuthDomain       string        `envconfig:"AUTH0_DOMAIN" required:"true"`
	APIAudience      string        `envconfig:"API_AUDIENCE" required:"true"`
	Algorithms       []string      `envconfig:"ALGORITHMS" default:"RS256"`
	JWKSURL          string        `envconfig:"jwks_url"`
	JWKSDiscovery    bool          `envconfig:"jwks_discovery" default:"false"`
	JWKSFetchTimeout time.Duration `envconfig:"jwks_fetch_timeout" default:"5s"`
}
