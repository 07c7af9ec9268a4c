// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

// FreePlanNoteLimit is the number of notes a free tenant may hold.
const FreePlanNoteLimit int64 = 3

const (
	ActionListNotes        = "list_notes"
	ActionReadNote         = "read_note"
	ActionCreateNote       = "create_note"
	ActionUpdateNote       = "update_note"
	ActionDeleteNote       = "delete_note"
	ActionUpgradePlan      = "upgrade_plan"
	ActionManageUsers      = "manage_users"
	ActionChangeMemberPlan = "change_member_plan"
)

// ReasonQuotaReached is also reported when the insert loses the quota race.
const ReasonQuotaReached = "free plan limit reached"

const (
	reasonMissingPrincipal = "authentication required"
	reasonNoteNotFound     = "note not found"
	reasonUserNotFound     = "user not found"
	reasonAdminOnly        = "admin role required"
	reasonNotMember        = "only members can have their plan changed"
	reasonUnknownPlan      = "unknown plan"
)

func reasonNotOwner(action string) string {
	switch action {
	case ActionDeleteNote:
		return "not allowed to delete this note"
	default:
		return "not allowed to edit this note"
	}
}
