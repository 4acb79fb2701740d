package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"revenue-recovery/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ActionRepo implements ports.ActionRepository.
type ActionRepo struct {
	pool Pool
}

// NewActionRepo creates a new ActionRepo.
func NewActionRepo(pool Pool) *ActionRepo {
	return &ActionRepo{pool: pool}
}

// Create inserts an action record within a database transaction so it
// commits or rolls back together with the case mutation it describes.
func (r *ActionRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.RecoveryAction) error {
	metadata, err := json.Marshal(a.Metadata)
	if err != nil {
		return fmt.Errorf("marshal action metadata: %w", err)
	}

	query := `INSERT INTO recovery_actions (id, case_id, type, actor_type, actor_id, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = tx.Exec(ctx, query,
		a.ID, a.CaseID, a.Type, a.ActorType, a.ActorID, metadata, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert recovery action: %w", err)
	}
	return nil
}

// ListByCase fetches the action timeline for a case, oldest first.
func (r *ActionRepo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.RecoveryAction, error) {
	query := `SELECT id, case_id, type, actor_type, actor_id, metadata, created_at
		FROM recovery_actions WHERE case_id = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	defer rows.Close()

	var actions []domain.RecoveryAction
	for rows.Next() {
		a := domain.RecoveryAction{}
		var metadata []byte
		err := rows.Scan(&a.ID, &a.CaseID, &a.Type, &a.ActorType, &a.ActorID, &metadata, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan action row: %w", err)
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &a.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal action metadata: %w", err)
			}
		}
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate action rows: %w", err)
	}
	return actions, nil
}

// NudgedOffsets returns the reminder offsets already satisfied for a case.
func (r *ActionRepo) NudgedOffsets(ctx context.Context, caseID uuid.UUID) (map[int]bool, error) {
	query := `SELECT DISTINCT (metadata->>'offset_day')::int
		FROM recovery_actions
		WHERE case_id = $1 AND type IN ('nudge_push', 'nudge_dm') AND metadata ? 'offset_day'`

	rows, err := r.pool.Query(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("query nudged offsets: %w", err)
	}
	defer rows.Close()

	offsets := make(map[int]bool)
	for rows.Next() {
		var day int
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("scan offset day: %w", err)
		}
		offsets[day] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offset rows: %w", err)
	}
	return offsets, nil
}
