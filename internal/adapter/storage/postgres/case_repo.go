package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"revenue-recovery/internal/core/domain"
	"revenue-recovery/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const caseColumns = `id, company_id, membership_id, user_id, status, attempts, incentive_days,
	recovered_amount_cents, failure_reason, first_failure_at, last_nudge_at, created_at, updated_at`

// CaseRepo implements ports.CaseRepository.
type CaseRepo struct {
	pool Pool
}

// NewCaseRepo creates a new CaseRepo.
func NewCaseRepo(pool Pool) *CaseRepo {
	return &CaseRepo{pool: pool}
}

// Create inserts a new recovery case within a database transaction.
// A partial unique index on (company_id, membership_id) WHERE status='open'
// backs the at-most-one-open-case invariant at the storage level.
func (r *CaseRepo) Create(ctx context.Context, tx pgx.Tx, c *domain.RecoveryCase) error {
	query := `INSERT INTO recovery_cases (` + caseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := tx.Exec(ctx, query,
		c.ID, c.CompanyID, c.MembershipID, c.UserID, c.Status, c.Attempts, c.IncentiveDays,
		c.RecoveredAmountCents, c.FailureReason, c.FirstFailureAt, c.LastNudgeAt,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert recovery case: %w", err)
	}
	return nil
}

// GetByID fetches a case by UUID.
func (r *CaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecoveryCase, error) {
	query := `SELECT ` + caseColumns + ` FROM recovery_cases WHERE id = $1`
	return scanCase(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a case by UUID with a row lock.
func (r *CaseRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.RecoveryCase, error) {
	query := `SELECT ` + caseColumns + ` FROM recovery_cases WHERE id = $1 FOR UPDATE`
	return scanCase(tx.QueryRow(ctx, query, id))
}

// GetOpenForUpdate fetches the open case for a membership with a row lock,
// serializing concurrent events for the same membership.
func (r *CaseRepo) GetOpenForUpdate(ctx context.Context, tx pgx.Tx, companyID uuid.UUID, membershipID string) (*domain.RecoveryCase, error) {
	query := `SELECT ` + caseColumns + ` FROM recovery_cases
		WHERE company_id = $1 AND membership_id = $2 AND status = 'open' FOR UPDATE`
	return scanCase(tx.QueryRow(ctx, query, companyID, membershipID))
}

// Update persists a case's mutable fields within a database transaction.
func (r *CaseRepo) Update(ctx context.Context, tx pgx.Tx, c *domain.RecoveryCase) error {
	query := `UPDATE recovery_cases SET status = $1, attempts = $2, incentive_days = $3,
		recovered_amount_cents = $4, failure_reason = $5, last_nudge_at = $6, updated_at = $7
		WHERE id = $8`

	tag, err := tx.Exec(ctx, query,
		c.Status, c.Attempts, c.IncentiveDays, c.RecoveredAmountCents,
		c.FailureReason, c.LastNudgeAt, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update recovery case: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recovery case not found: %s", c.ID)
	}
	return nil
}

// ListOpenByCompany fetches all open cases for one company, oldest first.
func (r *CaseRepo) ListOpenByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.RecoveryCase, error) {
	query := `SELECT ` + caseColumns + ` FROM recovery_cases
		WHERE company_id = $1 AND status = 'open' ORDER BY first_failure_at ASC`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list open cases: %w", err)
	}
	defer rows.Close()

	return collectCases(rows)
}

// ListCompaniesWithOpenCases returns the companies the scheduler must visit.
func (r *CaseRepo) ListCompaniesWithOpenCases(ctx context.Context) ([]uuid.UUID, error) {
	query := `SELECT DISTINCT company_id FROM recovery_cases WHERE status = 'open' ORDER BY company_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list companies with open cases: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan company id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate company rows: %w", err)
	}
	return ids, nil
}

// List fetches cases with filtering and pagination for the dashboard.
func (r *CaseRepo) List(ctx context.Context, params ports.CaseListParams) ([]domain.RecoveryCase, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("company_id = $%d", argIdx))
	args = append(args, params.CompanyID)
	argIdx++

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.MembershipID != "" {
		conditions = append(conditions, fmt.Sprintf("membership_id = $%d", argIdx))
		args = append(args, params.MembershipID)
		argIdx++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= to_timestamp($%d)", argIdx))
		args = append(args, *params.From)
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= to_timestamp($%d)", argIdx))
		args = append(args, *params.To)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM recovery_cases %s", where)
	var total int64
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count cases: %w", err)
	}

	// Fetch page
	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT `+caseColumns+` FROM recovery_cases %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()

	cases, err := collectCases(rows)
	if err != nil {
		return nil, 0, err
	}
	return cases, total, nil
}

// GetStats retrieves aggregated recovery statistics for a company.
func (r *CaseRepo) GetStats(ctx context.Context, companyID uuid.UUID) (*ports.CaseStats, error) {
	query := `SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'open') AS open,
		COUNT(*) FILTER (WHERE status = 'recovered') AS recovered,
		COUNT(*) FILTER (WHERE status = 'closed_no_recovery') AS closed,
		COALESCE(SUM(recovered_amount_cents) FILTER (WHERE status = 'recovered'), 0) AS recovered_cents
		FROM recovery_cases WHERE company_id = $1`

	stats := &ports.CaseStats{}
	err := r.pool.QueryRow(ctx, query, companyID).Scan(
		&stats.TotalCases, &stats.Open, &stats.Recovered, &stats.ClosedNoRecovery,
		&stats.RecoveredCents,
	)
	if err != nil {
		return nil, fmt.Errorf("get case stats: %w", err)
	}
	return stats, nil
}

// GetGlobalStats aggregates recovery statistics across all companies.
func (r *CaseRepo) GetGlobalStats(ctx context.Context) (*ports.CaseStats, error) {
	query := `SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'open') AS open,
		COUNT(*) FILTER (WHERE status = 'recovered') AS recovered,
		COUNT(*) FILTER (WHERE status = 'closed_no_recovery') AS closed,
		COALESCE(SUM(recovered_amount_cents) FILTER (WHERE status = 'recovered'), 0) AS recovered_cents
		FROM recovery_cases`

	stats := &ports.CaseStats{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalCases, &stats.Open, &stats.Recovered, &stats.ClosedNoRecovery,
		&stats.RecoveredCents,
	)
	if err != nil {
		return nil, fmt.Errorf("get global case stats: %w", err)
	}
	return stats, nil
}

// scanCase is a helper to scan a single row into a RecoveryCase.
func scanCase(row pgx.Row) (*domain.RecoveryCase, error) {
	c := &domain.RecoveryCase{}
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.MembershipID, &c.UserID, &c.Status, &c.Attempts,
		&c.IncentiveDays, &c.RecoveredAmountCents, &c.FailureReason,
		&c.FirstFailureAt, &c.LastNudgeAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan recovery case: %w", err)
	}
	return c, nil
}

func collectCases(rows pgx.Rows) ([]domain.RecoveryCase, error) {
	var cases []domain.RecoveryCase
	for rows.Next() {
		c := domain.RecoveryCase{}
		err := rows.Scan(
			&c.ID, &c.CompanyID, &c.MembershipID, &c.UserID, &c.Status, &c.Attempts,
			&c.IncentiveDays, &c.RecoveredAmountCents, &c.FailureReason,
			&c.FirstFailureAt, &c.LastNudgeAt, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan case row: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate case rows: %w", err)
	}
	return cases, nil
}
