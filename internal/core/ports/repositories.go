package ports

import (
	"context"

	"revenue-recovery/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EventRepository defines persistence for upstream webhook events.
// Insert is the dedupe gate: a second delivery of the same upstream
// event id reports created=false and stores nothing.
type EventRepository interface {
	Insert(ctx context.Context, event *domain.Event) (created bool, err error)
	GetByUpstreamID(ctx context.Context, upstreamEventID string) (*domain.Event, error)
}

// CaseRepository defines persistence operations for recovery cases.
// Methods accepting pgx.Tx are used inside transaction blocks; the open
// case for a membership is read with a row lock so concurrent events
// for the same membership serialize.
type CaseRepository interface {
	Create(ctx context.Context, tx pgx.Tx, c *domain.RecoveryCase) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RecoveryCase, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.RecoveryCase, error)
	GetOpenForUpdate(ctx context.Context, tx pgx.Tx, companyID uuid.UUID, membershipID string) (*domain.RecoveryCase, error)
	Update(ctx context.Context, tx pgx.Tx, c *domain.RecoveryCase) error
	ListOpenByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.RecoveryCase, error)
	ListCompaniesWithOpenCases(ctx context.Context) ([]uuid.UUID, error)
	// Reporting queries
	List(ctx context.Context, params CaseListParams) ([]domain.RecoveryCase, int64, error)
	GetStats(ctx context.Context, companyID uuid.UUID) (*CaseStats, error)
	GetGlobalStats(ctx context.Context) (*CaseStats, error)
}

// CaseListParams holds filter + pagination for listing recovery cases.
type CaseListParams struct {
	CompanyID    uuid.UUID
	Status       *domain.CaseStatus
	MembershipID string // Exact match, empty = no filter
	From         *int64 // Unix timestamp, filters created_at
	To           *int64
	Page         int
	PageSize     int
}

// CaseStats holds aggregated recovery statistics for the dashboard.
type CaseStats struct {
	TotalCases       int64
	Open             int64
	Recovered        int64
	ClosedNoRecovery int64
	RecoveredCents   int64 // Sum of recovered_amount_cents
}

// ActionRepository defines persistence for recovery action audit records.
type ActionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, a *domain.RecoveryAction) error
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.RecoveryAction, error)
	// NudgedOffsets returns the set of reminder offsets already satisfied
	// for a case. The scheduler's exactly-once-per-offset guarantee keys
	// off this, never off elapsed time alone.
	NudgedOffsets(ctx context.Context, caseID uuid.UUID) (map[int]bool, error)
}

// SettingsRepository reads per-company recovery campaign settings.
type SettingsRepository interface {
	GetByCompany(ctx context.Context, companyID uuid.UUID) (*domain.CreatorSettings, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
