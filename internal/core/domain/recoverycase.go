package domain

import (
	"time"

	"github.com/google/uuid"
)

// CaseStatus represents the lifecycle state of a recovery case.
type CaseStatus string

const (
	CaseStatusOpen             CaseStatus = "open"
	CaseStatusRecovered        CaseStatus = "recovered"
	CaseStatusClosedNoRecovery CaseStatus = "closed_no_recovery"
)

// RecoveryCase is the unit of recovery work for one membership's
// failing-payment episode. At most one case with status=open may exist
// per (company_id, membership_id) pair at any time.
type RecoveryCase struct {
	ID                   uuid.UUID  `json:"id"`
	CompanyID            uuid.UUID  `json:"company_id"`
	MembershipID         string     `json:"membership_id"`
	UserID               string     `json:"user_id"`
	Status               CaseStatus `json:"status"`
	Attempts             int        `json:"attempts"`
	IncentiveDays        int        `json:"incentive_days"`
	RecoveredAmountCents int64      `json:"recovered_amount_cents"`
	FailureReason        *string    `json:"failure_reason,omitempty"`
	FirstFailureAt       time.Time  `json:"first_failure_at"`
	LastNudgeAt          *time.Time `json:"last_nudge_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// IsTerminal returns true if the case is in a final state.
// No transition ever moves a case backward out of a terminal state.
func (c *RecoveryCase) IsTerminal() bool {
	return c.Status == CaseStatusRecovered ||
		c.Status == CaseStatusClosedNoRecovery
}

// WithinAttributionWindow reports whether occurredAt falls inside the
// attribution window measured from the first failure. The boundary is a
// closed interval: a failure landing exactly on the window edge still
// merges into the existing case.
func (c *RecoveryCase) WithinAttributionWindow(occurredAt time.Time, windowDays int) bool {
	edge := c.FirstFailureAt.Add(time.Duration(windowDays) * 24 * time.Hour)
	return !occurredAt.After(edge)
}

// OffsetDueAt returns the due time for a reminder offset in days.
func (c *RecoveryCase) OffsetDueAt(offsetDays int) time.Time {
	return c.FirstFailureAt.Add(time.Duration(offsetDays) * 24 * time.Hour)
}

// AllOffsetsElapsed reports whether the last configured reminder offset
// has passed. Offsets are ordered ascending, so only the final entry matters.
func (c *RecoveryCase) AllOffsetsElapsed(now time.Time, offsets []int) bool {
	if len(offsets) == 0 {
		return false
	}
	last := offsets[len(offsets)-1]
	return !now.Before(c.OffsetDueAt(last))
}
