// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

// Effect is the outcome of a policy check.
type Effect int

const (
	Allow Effect = iota
	Deny
	NotFound
	Invalid
)

func (e Effect) String() string {
	switch e {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	case NotFound:
		return "not_found"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Decision is what the Authorizer answers for a single operation.
// NoteLimit is only meaningful for note creation: 0 means uncapped,
// otherwise the write path must re-check the count atomically against it.
type Decision struct {
	Effect    Effect
	Reason    string
	Kind      error
	NoteLimit int64
}

func (d Decision) Allowed() bool {
	return d.Effect == Allow
}

// Err converts a non allowing decision into an error wrapping the matching sentinel.
func (d Decision) Err() error {
	kind := d.Kind

	switch d.Effect {
	case Allow:
		return nil
	case NotFound:
		kind = ErrNotFound
	case Invalid:
		kind = ErrInvalid
	default:
		if kind == nil {
			kind = ErrForbidden
		}
	}

	return NewError(kind, d.Reason)
}

func allow() Decision {
	return Decision{Effect: Allow}
}

func deny(kind error, reason string) Decision {
	return Decision{Effect: Deny, Kind: kind, Reason: reason}
}

func notFound(reason string) Decision {
	return Decision{Effect: NotFound, Kind: ErrNotFound, Reason: reason}
}

func invalid(reason string) Decision {
	return Decision{Effect: Invalid, Kind: ErrInvalid, Reason: reason}
}
