// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"

	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger writes events following the OWASP application logging vocabulary,
// see https://cheatsheetseries.owasp.org/cheatsheets/Logging_Vocabulary_Cheat_Sheet.html
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(event, level, description string) {
	s.l.Info(
		description,
		zap.String("type", "security"),
		zap.String("event", event),
		zap.String("level", level),
	)
}

func (s *SecurityLogger) AuthnLoginSuccess(user string) {
	s.event(fmt.Sprintf("authn_login_success:%s", user), "INFO", fmt.Sprintf("User %s login successfully", user))
}

func (s *SecurityLogger) AuthnLoginFail(user string) {
	s.event(fmt.Sprintf("authn_login_fail:%s", user), "WARN", fmt.Sprintf("User %s login failed", user))
}

func (s *SecurityLogger) AuthnLoginLock(user string) {
	s.event(fmt.Sprintf("authn_login_lock:%s,maxretries", user), "WARN", fmt.Sprintf("User %s login locked because maxretries exceeded", user))
}

func (s *SecurityLogger) AuthnTokenInvalid(user string) {
	s.event(fmt.Sprintf("authn_token_invalid:%s", user), "WARN", fmt.Sprintf("A provided token was invalid for user %s", user))
}

func (s *SecurityLogger) AuthzFailure(user, resource string) {
	s.event(fmt.Sprintf("authz_fail:%s,%s", user, resource), "CRITICAL", fmt.Sprintf("User %s attempted to access a resource without entitlement", user))
}

func (s *SecurityLogger) AuthzAdmin(user, action string) {
	s.event(fmt.Sprintf("authz_admin:%s,%s", user, action), "WARN", fmt.Sprintf("Administrator %s has performed %s", user, action))
}

func (s *SecurityLogger) UserCreated(user, by string) {
	s.event(fmt.Sprintf("user_created:%s,%s", by, user), "WARN", fmt.Sprintf("%s has created %s", by, user))
}

func (s *SecurityLogger) SystemStartup() {
	s.event("sys_startup", "WARN", "Service started")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("sys_shutdown", "WARN", "Service shut down")
}
