package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType discriminates upstream billing events.
type EventType string

const (
	EventPaymentFailed       EventType = "payment_failed"
	EventPaymentSucceeded    EventType = "payment_succeeded"
	EventMembershipCancelled EventType = "membership_cancelled"
)

// Known reports whether the event type drives a case transition.
// Unknown types are stored for audit but never reach the case engine.
func (t EventType) Known() bool {
	switch t {
	case EventPaymentFailed, EventPaymentSucceeded, EventMembershipCancelled:
		return true
	}
	return false
}

// Event is an immutable record of one upstream webhook delivery.
// UpstreamEventID is globally unique — a second delivery of the same id
// is a no-op, never a second mutation.
type Event struct {
	ID              uuid.UUID  `json:"id"`
	UpstreamEventID string     `json:"upstream_event_id"`
	Type            EventType  `json:"type"`
	CompanyID       uuid.UUID  `json:"company_id"`
	MembershipID    string     `json:"membership_id"`
	OccurredAt      time.Time  `json:"occurred_at"`
	ReceivedAt      time.Time  `json:"received_at"`
	Payload         []byte     `json:"-"` // Minimized JSON, no raw PII
}

// Envelope is the raw JSON shape the billing platform posts.
type Envelope struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	Data      json.RawMessage `json:"data"`
	CreatedAt int64           `json:"created_at"` // Unix seconds
}

// PaymentFailedData is the typed payload for payment_failed events.
type PaymentFailedData struct {
	CompanyID     uuid.UUID `json:"company_id"`
	MembershipID  string    `json:"membership_id"`
	UserID        string    `json:"user_id"`
	FailureReason string    `json:"failure_reason"`
	AmountCents   int64     `json:"amount_cents"`
}

// PaymentSucceededData is the typed payload for payment_succeeded events.
type PaymentSucceededData struct {
	CompanyID    uuid.UUID `json:"company_id"`
	MembershipID string    `json:"membership_id"`
	UserID       string    `json:"user_id"`
	AmountCents  int64     `json:"amount_cents"`
}

// MembershipCancelledData is the typed payload for membership_cancelled events.
type MembershipCancelledData struct {
	CompanyID    uuid.UUID `json:"company_id"`
	MembershipID string    `json:"membership_id"`
	Reason       string    `json:"reason"`
}

// ParseEnvelope decodes and validates a raw webhook body into an Event.
// The payload is decoded per event type (tagged union) so malformed or
// incomplete data is rejected before the case engine ever sees it.
func ParseEnvelope(raw []byte, receivedAt time.Time) (*Event, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decoding envelope: %w", err)
	}
	if env.ID == "" {
		return nil, fmt.Errorf("envelope missing id")
	}
	if env.Type == "" {
		return nil, fmt.Errorf("envelope missing type")
	}
	if env.CreatedAt <= 0 {
		return nil, fmt.Errorf("envelope missing created_at")
	}

	ev := &Event{
		ID:              uuid.New(),
		UpstreamEventID: env.ID,
		Type:            env.Type,
		OccurredAt:      time.Unix(env.CreatedAt, 0).UTC(),
		ReceivedAt:      receivedAt.UTC(),
		Payload:         env.Data,
	}

	switch env.Type {
	case EventPaymentFailed:
		var d PaymentFailedData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, fmt.Errorf("decoding payment_failed data: %w", err)
		}
		if d.CompanyID == uuid.Nil || d.MembershipID == "" {
			return nil, fmt.Errorf("payment_failed data missing company_id or membership_id")
		}
		ev.CompanyID = d.CompanyID
		ev.MembershipID = d.MembershipID
	case EventPaymentSucceeded:
		var d PaymentSucceededData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, fmt.Errorf("decoding payment_succeeded data: %w", err)
		}
		if d.CompanyID == uuid.Nil || d.MembershipID == "" {
			return nil, fmt.Errorf("payment_succeeded data missing company_id or membership_id")
		}
		ev.CompanyID = d.CompanyID
		ev.MembershipID = d.MembershipID
	case EventMembershipCancelled:
		var d MembershipCancelledData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, fmt.Errorf("decoding membership_cancelled data: %w", err)
		}
		if d.CompanyID == uuid.Nil || d.MembershipID == "" {
			return nil, fmt.Errorf("membership_cancelled data missing company_id or membership_id")
		}
		ev.CompanyID = d.CompanyID
		ev.MembershipID = d.MembershipID
	default:
		// Unknown types are stored as-is with whatever routing info exists.
		var d struct {
			CompanyID    uuid.UUID `json:"company_id"`
			MembershipID string    `json:"membership_id"`
		}
		_ = json.Unmarshal(env.Data, &d)
		ev.CompanyID = d.CompanyID
		ev.MembershipID = d.MembershipID
	}

	return ev, nil
}

// PaymentFailed decodes the payload of a payment_failed event.
func (e *Event) PaymentFailed() (*PaymentFailedData, error) {
	if e.Type != EventPaymentFailed {
		return nil, fmt.Errorf("event %s is not payment_failed", e.UpstreamEventID)
	}
	var d PaymentFailedData
	if err := json.Unmarshal(e.Payload, &d); err != nil {
		return nil, fmt.Errorf("decoding payment_failed payload: %w", err)
	}
	return &d, nil
}

// PaymentSucceeded decodes the payload of a payment_succeeded event.
func (e *Event) PaymentSucceeded() (*PaymentSucceededData, error) {
	if e.Type != EventPaymentSucceeded {
		return nil, fmt.Errorf("event %s is not payment_succeeded", e.UpstreamEventID)
	}
	var d PaymentSucceededData
	if err := json.Unmarshal(e.Payload, &d); err != nil {
		return nil, fmt.Errorf("decoding payment_succeeded payload: %w", err)
	}
	return &d, nil
}
