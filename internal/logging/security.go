// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"

	"go.uber.org/zap"
)

const appID = "coffee-shop-service"

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthnFailure(reason string) {
	s.l.Warn(
		"authentication failed",
		zap.String("type", "security"),
		zap.String("appid", appID),
		zap.String("event", fmt.Sprintf("authn_token_invalid:%s", reason)),
	)
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.l.Warn(
		fmt.Sprintf("user %s attempted to access %s without entitlement", userID, resource),
		zap.String("type", "security"),
		zap.String("appid", appID),
		zap.String("event", fmt.Sprintf("authz_fail:%s,%s", userID, resource)),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info(
		"service started",
		zap.String("type", "security"),
		zap.String("appid", appID),
		zap.String("event", "sys_startup"),
	)
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info(
		"service stopped",
		zap.String("type", "security"),
		zap.String("appid", appID),
		zap.String("event", "sys_shutdown"),
	)
}
