package postgres

import (
	"context"
	"testing"
	"time"

	"revenue-recovery/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewActionRepo(mock)
	offset := 2
	a := &domain.RecoveryAction{
		ID:        uuid.New(),
		CaseID:    uuid.New(),
		Type:      domain.ActionNudgePush,
		ActorType: domain.ActorSystem,
		Metadata:  domain.ActionMetadata{OffsetDay: &offset, Channel: "push"},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO recovery_actions").
		WithArgs(a.ID, a.CaseID, a.Type, a.ActorType, a.ActorID,
			[]byte(`{"offset_day":2,"channel":"push"}`), a.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActionRepo_ListByCase(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewActionRepo(mock)
	caseID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM recovery_actions WHERE case_id").
		WithArgs(caseID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "case_id", "type", "actor_type",
			"actor_id", "metadata", "created_at"}).
			AddRow(uuid.New(), caseID, domain.ActionNudgePush, domain.ActorSystem,
				"", []byte(`{"offset_day":0,"channel":"push"}`), now).
			AddRow(uuid.New(), caseID, domain.ActionCaseCancelled, domain.ActorUser,
				"op_42", []byte(nil), now.Add(time.Hour)))

	actions, err := repo.ListByCase(context.Background(), caseID)
	require.NoError(t, err)
	require.Len(t, actions, 2)

	assert.Equal(t, domain.ActionNudgePush, actions[0].Type)
	require.NotNil(t, actions[0].Metadata.OffsetDay)
	assert.Equal(t, 0, *actions[0].Metadata.OffsetDay)

	assert.Equal(t, domain.ActionCaseCancelled, actions[1].Type)
	assert.Equal(t, "op_42", actions[1].ActorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActionRepo_NudgedOffsets(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewActionRepo(mock)
	caseID := uuid.New()

	mock.ExpectQuery("SELECT DISTINCT .+ FROM recovery_actions").
		WithArgs(caseID).
		WillReturnRows(pgxmock.NewRows([]string{"offset_day"}).AddRow(0).AddRow(2))

	offsets, err := repo.NudgedOffsets(context.Background(), caseID)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{0: true, 2: true}, offsets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActionRepo_NudgedOffsets_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewActionRepo(mock)
	caseID := uuid.New()

	mock.ExpectQuery("SELECT DISTINCT .+ FROM recovery_actions").
		WithArgs(caseID).
		WillReturnRows(pgxmock.NewRows([]string{"offset_day"}))

	offsets, err := repo.NudgedOffsets(context.Background(), caseID)
	require.NoError(t, err)
	assert.Empty(t, offsets)
	assert.NoError(t, mock.ExpectationsWereMet())
}
