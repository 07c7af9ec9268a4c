// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits security events using the OWASP logging vocabulary
type SecurityLoggerInterface interface {
	AuthnLoginSuccess(string)
	AuthnLoginFail(string)
	AuthnLoginLock(string)
	AuthnTokenInvalid(string)
	AuthzFailure(string, string)
	AuthzAdmin(string, string)
	UserCreated(string, string)
	SystemStartup()
	SystemShutdown()
}
