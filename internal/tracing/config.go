// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/canonical/coffee-shop-service/internal/logging"
)

// Config selects the span exporter: gRPC endpoint first, then HTTP, then stdout.
type Config struct {
	Enabled bool

	OtelGRPCEndpoint string
	OtelHTTPEndpoint string

	Logger logging.LoggerInterface
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, logger logging.LoggerInterface) *Config {
	return &Config{
		Enabled:          enabled,
		OtelGRPCEndpoint: otelGRPCEndpoint,
		OtelHTTPEndpoint: otelHTTPEndpoint,
		Logger:           logger,
	}
}

func NewNoopConfig() *Config {
	return &Config{Logger: logging.NewNoopLogger()}
}
