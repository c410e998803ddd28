// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
	"slices"
	"time"
)

const (
	DefaultAlgorithm     = "RS256"
	DefaultKeySetTimeout = 5 * time.Second
)

// Config is the trust configuration of an Authorizer, it is copied at construction
// and never changes afterwards.
type Config struct {
	// Domain is the trust-domain hostname, e.g. coffee.eu.auth0.com
	Domain string
	// Audience is the expected aud claim
	Audience string
	// Algorithms is the signature algorithm allow-list
	Algorithms []string
	// KeySetTimeout bounds the JWKS download
	KeySetTimeout time.Duration
}

// Issuer is the expected iss claim for the trust domain.
func (c Config) Issuer() string {
	return fmt.Sprintf("https://%s/", c.Domain)
}

func (c Config) validate() (Config, error) {
	if c.Domain == "" {
		return c, fmt.Errorf("trust domain is required for JWT authorization")
	}

	if c.Audience == "" {
		return c, fmt.Errorf("audience is required for JWT authorization")
	}

	if len(c.Algorithms) == 0 {
		c.Algorithms = []string{DefaultAlgorithm}
	} else {
		c.Algorithms = slices.Clone(c.Algorithms)
	}

	if c.KeySetTimeout <= 0 {
		c.KeySetTimeout = DefaultKeySetTimeout
	}

	return c, nil
}
