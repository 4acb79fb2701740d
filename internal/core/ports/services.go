package ports

import (
	"context"
	"time"

	"revenue-recovery/internal/core/domain"

	"github.com/google/uuid"
)

// WebhookVerifier validates an inbound event's authenticity and freshness.
// Pure validation: no side effects, classified errors.
type WebhookVerifier interface {
	Verify(rawBody []byte, signatureHeader, timestampHeader string) error
}

// IngestResult reports what happened to one webhook delivery.
type IngestResult struct {
	Event      *domain.Event
	Duplicate  bool   // Same upstream event id was already stored
	Transition string // Case transition applied, empty if none
}

// IngestService persists verified events (deduplicated) and feeds new
// ones to the case engine.
type IngestService interface {
	Ingest(ctx context.Context, rawBody []byte, receivedAt time.Time) (*IngestResult, error)
}

// Actor identifies who requested a case mutation.
type Actor struct {
	Type domain.ActorType
	ID   string // Operator id for user actions, empty for system
}

// SystemActor is the actor recorded for scheduler-driven mutations.
var SystemActor = Actor{Type: domain.ActorSystem}

// ApplyResult describes the case transition an event produced.
type ApplyResult struct {
	Case       *domain.RecoveryCase
	Transition string // "case_opened", "case_merged", "case_reopened", "case_recovered", "none"
}

// CaseEngine owns every mutation of recovery cases and their audit
// actions. The scheduler and the dashboard both go through it; nothing
// writes to the case tables behind its back.
type CaseEngine interface {
	ApplyEvent(ctx context.Context, ev *domain.Event) (*ApplyResult, error)
	RecordNudge(ctx context.Context, caseID uuid.UUID, offsetDay int, actionType domain.ActionType, actor Actor, now time.Time) error
	RecordIncentive(ctx context.Context, caseID uuid.UUID, days int, actor Actor) error
	CloseExpired(ctx context.Context, caseID uuid.UUID, now time.Time) error
	NudgeNow(ctx context.Context, caseID uuid.UUID, actor Actor) error
	CancelCase(ctx context.Context, caseID uuid.UUID, actor Actor) error
	CancelAtPeriodEnd(ctx context.Context, caseID uuid.UUID, actor Actor) error
	TerminateMembership(ctx context.Context, caseID uuid.UUID, actor Actor) error
}

// CycleError records one per-company or per-case failure inside a cycle.
type CycleError struct {
	CompanyID uuid.UUID `json:"company_id"`
	CaseID    uuid.UUID `json:"case_id,omitempty"`
	Message   string    `json:"message"`
}

// CycleReport aggregates the outcome of one scheduler cycle. A single
// company's failure never fails the whole cycle; it lands here instead.
type CycleReport struct {
	StartedAt          time.Time    `json:"started_at"`
	FinishedAt         time.Time    `json:"finished_at"`
	CompaniesProcessed int          `json:"companies_processed"`
	CompaniesSkipped   int          `json:"companies_skipped"` // Lock already held
	RemindersSent      int          `json:"reminders_sent"`
	CasesClosed        int          `json:"cases_closed"`
	Errors             []CycleError `json:"errors,omitempty"`
}

// SchedulerStats is the processing summary for the stats query.
type SchedulerStats struct {
	LastCycleAt   *time.Time `json:"last_cycle_at,omitempty"`
	OpenCases     int64      `json:"open_cases"`
	Recovered     int64      `json:"recovered"`
	RemindersSent int        `json:"reminders_sent_last_cycle"`
}

// SchedulerService runs reminder cycles on demand. It owns no timer; an
// external cron service invokes it.
type SchedulerService interface {
	RunCycle(ctx context.Context, now time.Time) (*CycleReport, error)
	Stats(ctx context.Context) (*SchedulerStats, error)
	LastReport() *CycleReport
}

// Notification is one reminder to deliver to a member.
type Notification struct {
	CompanyID    uuid.UUID
	MembershipID string
	UserID       string
	CaseID       uuid.UUID
	OffsetDay    int
	Message      string
}

// NotificationGateway fans a reminder out to the channels enabled in the
// company's settings. Returns the action types recorded per delivered
// channel; partial delivery returns what succeeded plus the error.
type NotificationGateway interface {
	SendReminder(ctx context.Context, n Notification, settings *domain.CreatorSettings) ([]domain.ActionType, error)
}

// Membership is the billing platform's view of a subscription.
type Membership struct {
	ID        string
	UserID    string
	CompanyID uuid.UUID
	Status    string
	ExpiresAt *time.Time
}

// BillingClient calls the upstream billing platform. Implementations are
// always wrapped by the resilience layer.
type BillingClient interface {
	GetMembership(ctx context.Context, membershipID string) (*Membership, error)
	CancelMembership(ctx context.Context, membershipID string, atPeriodEnd bool) error
	TerminateMembership(ctx context.Context, membershipID string) error
	AddIncentiveDays(ctx context.Context, membershipID string, days int) error
}

// CompanyLock is the per-company advisory lock between concurrent
// scheduler invocations. Acquire never blocks: a held lock means skip.
type CompanyLock interface {
	Acquire(ctx context.Context, companyID uuid.UUID, ttl time.Duration) (token string, acquired bool, err error)
	Release(ctx context.Context, companyID uuid.UUID, token string) error
}

// TokenService handles JWT token operations for operator endpoints.
type TokenService interface {
	Generate(operatorID uuid.UUID, companyID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	OperatorID uuid.UUID
	CompanyID  uuid.UUID
}
