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

func testEvent() *domain.Event {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Event{
		ID:              uuid.New(),
		UpstreamEventID: "evt_001",
		Type:            domain.EventPaymentFailed,
		CompanyID:       uuid.New(),
		MembershipID:    "mem_123",
		OccurredAt:      now.Add(-time.Minute),
		ReceivedAt:      now,
		Payload:         []byte(`{"id":"evt_001"}`),
	}
}

func TestEventRepo_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	e := testEvent()

	mock.ExpectExec("INSERT INTO events").
		WithArgs(e.ID, e.UpstreamEventID, e.Type, e.CompanyID, e.MembershipID,
			e.OccurredAt, e.ReceivedAt, e.Payload).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	created, err := repo.Insert(context.Background(), e)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_Insert_Duplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	e := testEvent()

	// ON CONFLICT DO NOTHING reports zero rows affected for a replay.
	mock.ExpectExec("INSERT INTO events").
		WithArgs(e.ID, e.UpstreamEventID, e.Type, e.CompanyID, e.MembershipID,
			e.OccurredAt, e.ReceivedAt, e.Payload).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	created, err := repo.Insert(context.Background(), e)
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_GetByUpstreamID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	e := testEvent()

	mock.ExpectQuery("SELECT .+ FROM events WHERE upstream_event_id").
		WithArgs("evt_001").
		WillReturnRows(pgxmock.NewRows([]string{"id", "upstream_event_id", "type", "company_id",
			"membership_id", "occurred_at", "received_at", "payload"}).
			AddRow(e.ID, e.UpstreamEventID, e.Type, e.CompanyID, e.MembershipID,
				e.OccurredAt, e.ReceivedAt, e.Payload))

	result, err := repo.GetByUpstreamID(context.Background(), "evt_001")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, e.ID, result.ID)
	assert.Equal(t, domain.EventPaymentFailed, result.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_GetByUpstreamID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM events WHERE upstream_event_id").
		WithArgs("evt_missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "upstream_event_id", "type", "company_id",
			"membership_id", "occurred_at", "received_at", "payload"}))

	result, err := repo.GetByUpstreamID(context.Background(), "evt_missing")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
