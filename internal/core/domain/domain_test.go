package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelope_PaymentFailed(t *testing.T) {
	companyID := uuid.New()
	raw := []byte(`{
		"id": "evt_001",
		"type": "payment_failed",
		"created_at": 1708092000,
		"data": {
			"company_id": "` + companyID.String() + `",
			"membership_id": "mem_1",
			"user_id": "usr_1",
			"failure_reason": "card_declined",
			"amount_cents": 4900
		}
	}`)

	received := time.Now().UTC()
	ev, err := ParseEnvelope(raw, received)
	require.NoError(t, err)

	assert.Equal(t, "evt_001", ev.UpstreamEventID)
	assert.Equal(t, EventPaymentFailed, ev.Type)
	assert.Equal(t, companyID, ev.CompanyID)
	assert.Equal(t, "mem_1", ev.MembershipID)
	assert.Equal(t, time.Unix(1708092000, 0).UTC(), ev.OccurredAt)
	assert.NotEqual(t, uuid.Nil, ev.ID)

	data, err := ev.PaymentFailed()
	require.NoError(t, err)
	assert.Equal(t, "card_declined", data.FailureReason)
	assert.Equal(t, int64(4900), data.AmountCents)
}

func TestParseEnvelope_PaymentSucceeded(t *testing.T) {
	companyID := uuid.New()
	raw := []byte(`{
		"id": "evt_002",
		"type": "payment_succeeded",
		"created_at": 1708092060,
		"data": {
			"company_id": "` + companyID.String() + `",
			"membership_id": "mem_1",
			"user_id": "usr_1",
			"amount_cents": 4900
		}
	}`)

	ev, err := ParseEnvelope(raw, time.Now())
	require.NoError(t, err)
	assert.Equal(t, EventPaymentSucceeded, ev.Type)

	data, err := ev.PaymentSucceeded()
	require.NoError(t, err)
	assert.Equal(t, int64(4900), data.AmountCents)
}

func TestParseEnvelope_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{{{`},
		{"missing id", `{"type":"payment_failed","created_at":1708092000,"data":{}}`},
		{"missing type", `{"id":"evt_1","created_at":1708092000,"data":{}}`},
		{"missing created_at", `{"id":"evt_1","type":"payment_failed","data":{}}`},
		{"failed without membership", `{"id":"evt_1","type":"payment_failed","created_at":1708092000,"data":{"company_id":"` + uuid.New().String() + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEnvelope([]byte(tt.raw), time.Now())
			assert.Error(t, err)
		})
	}
}

func TestParseEnvelope_UnknownTypeStored(t *testing.T) {
	raw := []byte(`{"id":"evt_9","type":"invoice_finalized","created_at":1708092000,"data":{"foo":"bar"}}`)

	ev, err := ParseEnvelope(raw, time.Now())
	require.NoError(t, err)
	assert.False(t, ev.Type.Known())
	assert.JSONEq(t, `{"foo":"bar"}`, string(ev.Payload))
}

func TestRecoveryCase_IsTerminal(t *testing.T) {
	c := &RecoveryCase{Status: CaseStatusOpen}
	assert.False(t, c.IsTerminal())

	c.Status = CaseStatusRecovered
	assert.True(t, c.IsTerminal())

	c.Status = CaseStatusClosedNoRecovery
	assert.True(t, c.IsTerminal())
}

func TestRecoveryCase_WithinAttributionWindow(t *testing.T) {
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &RecoveryCase{FirstFailureAt: first}

	t.Run("inside window", func(t *testing.T) {
		assert.True(t, c.WithinAttributionWindow(first.Add(time.Hour), 14))
	})

	t.Run("exactly at edge merges (closed interval)", func(t *testing.T) {
		edge := first.Add(14 * 24 * time.Hour)
		assert.True(t, c.WithinAttributionWindow(edge, 14))
	})

	t.Run("past edge is a fresh episode", func(t *testing.T) {
		past := first.Add(14*24*time.Hour + time.Second)
		assert.False(t, c.WithinAttributionWindow(past, 14))
	})
}

func TestRecoveryCase_Offsets(t *testing.T) {
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &RecoveryCase{FirstFailureAt: first}

	assert.Equal(t, first, c.OffsetDueAt(0))
	assert.Equal(t, first.Add(48*time.Hour), c.OffsetDueAt(2))

	offsets := []int{0, 2, 4}
	assert.False(t, c.AllOffsetsElapsed(first.Add(3*24*time.Hour), offsets))
	assert.True(t, c.AllOffsetsElapsed(first.Add(4*24*time.Hour), offsets))
	assert.False(t, c.AllOffsetsElapsed(first.Add(100*24*time.Hour), nil))
}

func TestActionType_IsNudge(t *testing.T) {
	assert.True(t, ActionNudgePush.IsNudge())
	assert.True(t, ActionNudgeDM.IsNudge())
	assert.False(t, ActionIncentiveApplied.IsNudge())
	assert.False(t, ActionCaseCancelled.IsNudge())
}

func TestActionMetadata_JSONRoundTrip(t *testing.T) {
	offset := 2
	meta := ActionMetadata{OffsetDay: &offset, Channel: "push"}

	raw, err := json.Marshal(meta)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "incentive_days", "zero fields should be omitted")

	var decoded ActionMetadata
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.NotNil(t, decoded.OffsetDay)
	assert.Equal(t, 2, *decoded.OffsetDay)
}

func TestCreatorSettings_Helpers(t *testing.T) {
	s := &CreatorSettings{ReminderOffsetsDays: []int{0, 2, 4}, EnablePush: true}
	assert.Equal(t, 4, s.LastOffsetDay())
	assert.True(t, s.AnyChannelEnabled())

	empty := &CreatorSettings{}
	assert.Equal(t, -1, empty.LastOffsetDay())
	assert.False(t, empty.AnyChannelEnabled())
}
