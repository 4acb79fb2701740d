package postgres

import (
	"context"
	"errors"
	"fmt"

	"revenue-recovery/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// EventRepo implements ports.EventRepository.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Insert stores an event, deduplicating on upstream_event_id.
// Returns created=false when the id was already seen; the row is never
// updated in that case.
func (r *EventRepo) Insert(ctx context.Context, e *domain.Event) (bool, error) {
	query := `INSERT INTO events (id, upstream_event_id, type, company_id, membership_id,
		occurred_at, received_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (upstream_event_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		e.ID, e.UpstreamEventID, e.Type, e.CompanyID, e.MembershipID,
		e.OccurredAt, e.ReceivedAt, e.Payload,
	)
	if err != nil {
		return false, fmt.Errorf("insert event: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByUpstreamID fetches an event by the billing platform's event id.
func (r *EventRepo) GetByUpstreamID(ctx context.Context, upstreamEventID string) (*domain.Event, error) {
	query := `SELECT id, upstream_event_id, type, company_id, membership_id,
		occurred_at, received_at, payload
		FROM events WHERE upstream_event_id = $1`

	e := &domain.Event{}
	err := r.pool.QueryRow(ctx, query, upstreamEventID).Scan(
		&e.ID, &e.UpstreamEventID, &e.Type, &e.CompanyID, &e.MembershipID,
		&e.OccurredAt, &e.ReceivedAt, &e.Payload,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}
