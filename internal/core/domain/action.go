package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActionType represents the kind of action taken on a recovery case.
type ActionType string

const (
	ActionNudgePush            ActionType = "nudge_push"
	ActionNudgeDM              ActionType = "nudge_dm"
	ActionIncentiveApplied     ActionType = "incentive_applied"
	ActionCaseCancelled        ActionType = "case_cancelled"
	ActionMembershipTerminated ActionType = "membership_terminated"
)

// IsNudge reports whether the action is a reminder dispatch.
func (t ActionType) IsNudge() bool {
	return t == ActionNudgePush || t == ActionNudgeDM
}

// ActorType identifies who performed an action.
type ActorType string

const (
	ActorSystem ActorType = "system"
	ActorUser   ActorType = "user"
)

// ActionMetadata is the structured, PII-free context stored with an action.
type ActionMetadata struct {
	OffsetDay     *int   `json:"offset_day,omitempty"` // Reminder offset satisfied by a nudge
	Channel       string `json:"channel,omitempty"`
	IncentiveDays int    `json:"incentive_days,omitempty"`
	ErrorReason   string `json:"error_reason,omitempty"` // Last dependency error, sanitized
}

// RecoveryAction is an immutable audit record of something done about a case.
// Every state-changing operation on a case produces exactly one action row,
// written atomically with the case mutation.
type RecoveryAction struct {
	ID        uuid.UUID      `json:"id"`
	CaseID    uuid.UUID      `json:"case_id"`
	Type      ActionType     `json:"type"`
	ActorType ActorType      `json:"actor_type"`
	ActorID   string         `json:"actor_id,omitempty"` // Empty for system actions
	Metadata  ActionMetadata `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
}
