// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/canonical/notes-service/internal/logging"
)

func TestMonitor_SetResponseTimeMetric(t *testing.T) {
	m := NewMonitor("notes-service-test", logging.NewNoopLogger())

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET/notes", "status": "200"}, 0.1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := m.SetResponseTimeMetric(map[string]string{"unknown": "label"}, 0.1); err == nil {
		t.Error("expected error on label mismatch")
	}
}

func TestMonitor_IncAuthorizationDecision(t *testing.T) {
	m := NewMonitor("notes-service-test", logging.NewNoopLogger())

	if err := m.IncAuthorizationDecision(map[string]string{"action": "create_note", "effect": "deny"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if m.GetService() != "notes-service-test" {
		t.Errorf("unexpected service name %s", m.GetService())
	}
}
