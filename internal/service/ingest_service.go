package service

import (
	"context"
	"time"

	"revenue-recovery/internal/core/domain"
	"revenue-recovery/internal/core/ports"
	"revenue-recovery/pkg/apperror"

	"github.com/rs/zerolog"
)

// ingestService implements ports.IngestService. The event insert is the
// dedupe gate: only a delivery that actually created a row reaches the
// case engine, so a replayed upstream event can never transition twice.
type ingestService struct {
	eventRepo ports.EventRepository
	engine    ports.CaseEngine
	log       zerolog.Logger
}

// NewIngestService creates the webhook ingestion service.
func NewIngestService(eventRepo ports.EventRepository, engine ports.CaseEngine, log zerolog.Logger) ports.IngestService {
	return &ingestService{
		eventRepo: eventRepo,
		engine:    engine,
		log:       log,
	}
}

// Ingest parses, stores and applies one verified webhook delivery.
func (s *ingestService) Ingest(ctx context.Context, rawBody []byte, receivedAt time.Time) (*ports.IngestResult, error) {
	ev, err := domain.ParseEnvelope(rawBody, receivedAt)
	if err != nil {
		return nil, apperror.ErrInvalidEnvelope(err.Error())
	}

	created, err := s.eventRepo.Insert(ctx, ev)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if !created {
		s.log.Debug().
			Str("upstream_event_id", ev.UpstreamEventID).
			Str("type", string(ev.Type)).
			Msg("duplicate event delivery, no transition")
		return &ports.IngestResult{Event: ev, Duplicate: true}, nil
	}

	if !ev.Type.Known() {
		s.log.Info().
			Str("upstream_event_id", ev.UpstreamEventID).
			Str("type", string(ev.Type)).
			Msg("unknown event type stored for audit")
		return &ports.IngestResult{Event: ev, Transition: TransitionNone}, nil
	}

	result, err := s.engine.ApplyEvent(ctx, ev)
	if err != nil {
		return nil, err
	}

	return &ports.IngestResult{Event: ev, Transition: result.Transition}, nil
}
