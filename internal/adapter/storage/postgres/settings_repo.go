package postgres

import (
	"context"
	"errors"
	"fmt"

	"revenue-recovery/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SettingsRepo implements ports.SettingsRepository.
type SettingsRepo struct {
	pool Pool
}

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(pool Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

// GetByCompany fetches the recovery campaign settings for one company.
// Returns (nil, nil) when the company has no settings row.
func (r *SettingsRepo) GetByCompany(ctx context.Context, companyID uuid.UUID) (*domain.CreatorSettings, error) {
	query := `SELECT company_id, enable_push, enable_dm, incentive_days,
		reminder_offsets_days, kpi_attribution_window_days, updated_at
		FROM creator_settings WHERE company_id = $1`

	s := &domain.CreatorSettings{}
	err := r.pool.QueryRow(ctx, query, companyID).Scan(
		&s.CompanyID, &s.EnablePush, &s.EnableDM, &s.IncentiveDays,
		&s.ReminderOffsetsDays, &s.KPIAttributionWindowDays, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get creator settings: %w", err)
	}
	return s, nil
}
