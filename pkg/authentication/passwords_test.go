// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"strings"
	"testing"
)

var fastArgon2Params = &Argon2Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestArgon2Hasher(t *testing.T) {
	h := NewArgon2Hasher(fastArgon2Params)
	ctx := context.Background()

	encoded, err := h.Hash(ctx, "password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=1024,t=1,p=1$") {
		t.Errorf("unexpected encoding %q", encoded)
	}

	other, _ := h.Hash(ctx, "password")
	if other == encoded {
		t.Error("expected a fresh salt for every hash")
	}

	ok, err := h.Verify(ctx, "password", encoded)
	if err != nil || !ok {
		t.Errorf("expected password to verify, got %v %v", ok, err)
	}

	ok, err = h.Verify(ctx, "wrong", encoded)
	if err != nil || ok {
		t.Errorf("expected wrong password to fail, got %v %v", ok, err)
	}
}

func TestArgon2Hasher_VerifyUsesStoredParams(t *testing.T) {
	ctx := context.Background()

	encoded, err := NewArgon2Hasher(fastArgon2Params).Hash(ctx, "password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stronger := NewArgon2Hasher(&Argon2Params{Memory: 2048, Iterations: 2, Parallelism: 1, SaltLength: 16, KeyLength: 32})

	if ok, err := stronger.Verify(ctx, "password", encoded); err != nil || !ok {
		t.Errorf("expected verification with the stored parameters, got %v %v", ok, err)
	}
}

func TestArgon2Hasher_MalformedHash(t *testing.T) {
	h := NewArgon2Hasher(fastArgon2Params)

	for _, encoded := range []string{"", "plain", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA", "$argon2id$v=1$m=1,t=1,p=1$c2FsdA$aGFzaA"} {
		if _, err := h.Verify(context.Background(), "password", encoded); err == nil {
			t.Errorf("expected error for %q", encoded)
		}
	}
}
