package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"revenue-recovery/config"
	"revenue-recovery/internal/core/domain"
	"revenue-recovery/internal/core/ports"
	"revenue-recovery/internal/resilience"
	"revenue-recovery/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Case transition labels reported back to callers.
const (
	TransitionNone      = "none"
	TransitionOpened    = "case_opened"
	TransitionMerged    = "case_merged"
	TransitionReopened  = "case_reopened"
	TransitionRecovered = "case_recovered"
	TransitionClosed    = "case_closed"
)

// caseService implements ports.CaseEngine. Every transition runs inside
// one transaction: the case mutation and its RecoveryAction row commit or
// roll back together. The open case is always read FOR UPDATE first, so
// concurrent events for the same membership serialize on the row lock.
type caseService struct {
	caseRepo     ports.CaseRepository
	actionRepo   ports.ActionRepository
	settingsRepo ports.SettingsRepository
	billing      ports.BillingClient
	billingExec  *resilience.Client
	notifier     ports.NotificationGateway
	transactor   ports.DBTransactor
	cfg          config.RecoveryConfig
	log          zerolog.Logger
}

// NewCaseService creates the case engine.
func NewCaseService(
	caseRepo ports.CaseRepository,
	actionRepo ports.ActionRepository,
	settingsRepo ports.SettingsRepository,
	billing ports.BillingClient,
	billingExec *resilience.Client,
	notifier ports.NotificationGateway,
	transactor ports.DBTransactor,
	cfg config.RecoveryConfig,
	log zerolog.Logger,
) ports.CaseEngine {
	return &caseService{
		caseRepo:     caseRepo,
		actionRepo:   actionRepo,
		settingsRepo: settingsRepo,
		billing:      billing,
		billingExec:  billingExec,
		notifier:     notifier,
		transactor:   transactor,
		cfg:          cfg,
		log:          log,
	}
}

// ApplyEvent routes a stored event into the state machine. Unknown event
// types produce no transition; the event row itself is the audit trail.
func (s *caseService) ApplyEvent(ctx context.Context, ev *domain.Event) (*ports.ApplyResult, error) {
	switch ev.Type {
	case domain.EventPaymentFailed:
		return s.applyPaymentFailed(ctx, ev)
	case domain.EventPaymentSucceeded:
		return s.applyPaymentSucceeded(ctx, ev)
	case domain.EventMembershipCancelled:
		return s.applyMembershipCancelled(ctx, ev)
	default:
		return &ports.ApplyResult{Transition: TransitionNone}, nil
	}
}

func (s *caseService) applyPaymentFailed(ctx context.Context, ev *domain.Event) (*ports.ApplyResult, error) {
	data, err := ev.PaymentFailed()
	if err != nil {
		return nil, apperror.ErrInvalidEnvelope(err.Error())
	}
	windowDays := s.attributionWindowDays(ctx, ev.CompanyID)

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	open, err := s.caseRepo.GetOpenForUpdate(ctx, dbTx, ev.CompanyID, ev.MembershipID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	now := ev.ReceivedAt
	var result *ports.ApplyResult

	switch {
	case open == nil:
		c := newCase(ev, data, now)
		if err := s.caseRepo.Create(ctx, dbTx, c); err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
		result = &ports.ApplyResult{Case: c, Transition: TransitionOpened}

	case open.WithinAttributionWindow(ev.OccurredAt, windowDays):
		open.Attempts++
		if data.FailureReason != "" {
			open.FailureReason = &data.FailureReason
		}
		open.UpdatedAt = now
		if err := s.caseRepo.Update(ctx, dbTx, open); err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
		result = &ports.ApplyResult{Case: open, Transition: TransitionMerged}

	default:
		// Past the window this is a fresh episode: close the stale case
		// and open a new one in the same transaction.
		open.Status = domain.CaseStatusClosedNoRecovery
		open.UpdatedAt = now
		if err := s.caseRepo.Update(ctx, dbTx, open); err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
		c := newCase(ev, data, now)
		if err := s.caseRepo.Create(ctx, dbTx, c); err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
		result = &ports.ApplyResult{Case: c, Transition: TransitionReopened}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	s.log.Info().
		Str("company_id", ev.CompanyID.String()).
		Str("membership_id", ev.MembershipID).
		Str("case_id", result.Case.ID.String()).
		Str("transition", result.Transition).
		Int("attempts", result.Case.Attempts).
		Msg("payment_failed applied")
	return result, nil
}

func (s *caseService) applyPaymentSucceeded(ctx context.Context, ev *domain.Event) (*ports.ApplyResult, error) {
	data, err := ev.PaymentSucceeded()
	if err != nil {
		return nil, apperror.ErrInvalidEnvelope(err.Error())
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	open, err := s.caseRepo.GetOpenForUpdate(ctx, dbTx, ev.CompanyID, ev.MembershipID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if open == nil {
		// A success with no open case is normal billing traffic.
		return &ports.ApplyResult{Transition: TransitionNone}, nil
	}

	open.Status = domain.CaseStatusRecovered
	open.RecoveredAmountCents = data.AmountCents
	open.UpdatedAt = ev.ReceivedAt
	if err := s.caseRepo.Update(ctx, dbTx, open); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	s.log.Info().
		Str("case_id", open.ID.String()).
		Int64("recovered_amount_cents", data.AmountCents).
		Msg("case recovered")
	return &ports.ApplyResult{Case: open, Transition: TransitionRecovered}, nil
}

func (s *caseService) applyMembershipCancelled(ctx context.Context, ev *domain.Event) (*ports.ApplyResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	open, err := s.caseRepo.GetOpenForUpdate(ctx, dbTx, ev.CompanyID, ev.MembershipID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if open == nil {
		return &ports.ApplyResult{Transition: TransitionNone}, nil
	}

	now := ev.ReceivedAt
	open.Status = domain.CaseStatusClosedNoRecovery
	open.UpdatedAt = now
	if err := s.caseRepo.Update(ctx, dbTx, open); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	action := &domain.RecoveryAction{
		ID:        uuid.New(),
		CaseID:    open.ID,
		Type:      domain.ActionCaseCancelled,
		ActorType: domain.ActorSystem,
		Metadata:  domain.ActionMetadata{ErrorReason: "membership_cancelled"},
		CreatedAt: now,
	}
	if err := s.actionRepo.Create(ctx, dbTx, action); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	s.log.Info().Str("case_id", open.ID.String()).Msg("case closed on membership cancellation")
	return &ports.ApplyResult{Case: open, Transition: TransitionClosed}, nil
}

// RecordNudge persists a dispatched reminder: one action row with the
// satisfied offset plus the case's last_nudge_at, atomically.
func (s *caseService) RecordNudge(ctx context.Context, caseID uuid.UUID, offsetDay int, actionType domain.ActionType, actor ports.Actor, now time.Time) error {
	if !actionType.IsNudge() {
		return apperror.ErrInvariantViolation(fmt.Sprintf("action %s is not a nudge", actionType))
	}
	return s.withOpenCase(ctx, caseID, func(dbTx pgx.Tx, c *domain.RecoveryCase) error {
		c.LastNudgeAt = &now
		c.UpdatedAt = now
		if err := s.caseRepo.Update(ctx, dbTx, c); err != nil {
			return err
		}
		offset := offsetDay
		return s.actionRepo.Create(ctx, dbTx, &domain.RecoveryAction{
			ID:        uuid.New(),
			CaseID:    caseID,
			Type:      actionType,
			ActorType: actor.Type,
			ActorID:   actor.ID,
			Metadata: domain.ActionMetadata{
				OffsetDay: &offset,
				Channel:   channelOf(actionType),
			},
			CreatedAt: now,
		})
	})
}

// RecordIncentive persists an applied win-back incentive. The billing
// call happens before this, through the resilience layer.
func (s *caseService) RecordIncentive(ctx context.Context, caseID uuid.UUID, days int, actor ports.Actor) error {
	now := time.Now().UTC()
	return s.withOpenCase(ctx, caseID, func(dbTx pgx.Tx, c *domain.RecoveryCase) error {
		c.IncentiveDays += days
		c.UpdatedAt = now
		if err := s.caseRepo.Update(ctx, dbTx, c); err != nil {
			return err
		}
		return s.actionRepo.Create(ctx, dbTx, &domain.RecoveryAction{
			ID:        uuid.New(),
			CaseID:    caseID,
			Type:      domain.ActionIncentiveApplied,
			ActorType: actor.Type,
			ActorID:   actor.ID,
			Metadata:  domain.ActionMetadata{IncentiveDays: days},
			CreatedAt: now,
		})
	})
}

// CloseExpired moves a case whose reminder schedule is exhausted to
// closed_no_recovery. Already-terminal cases are left alone.
func (s *caseService) CloseExpired(ctx context.Context, caseID uuid.UUID, now time.Time) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	c, err := s.caseRepo.GetByIDForUpdate(ctx, dbTx, caseID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if c == nil {
		return apperror.ErrCaseNotFound()
	}
	if c.IsTerminal() {
		return nil
	}

	c.Status = domain.CaseStatusClosedNoRecovery
	c.UpdatedAt = now
	if err := s.caseRepo.Update(ctx, dbTx, c); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	action := &domain.RecoveryAction{
		ID:        uuid.New(),
		CaseID:    caseID,
		Type:      domain.ActionCaseCancelled,
		ActorType: domain.ActorSystem,
		Metadata:  domain.ActionMetadata{ErrorReason: "reminder_schedule_exhausted"},
		CreatedAt: now,
	}
	if err := s.actionRepo.Create(ctx, dbTx, action); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	s.log.Info().Str("case_id", caseID.String()).Msg("case closed, reminder schedule exhausted")
	return nil
}

// NudgeNow dispatches an out-of-schedule reminder for one case. The
// delivery happens first; only channels that actually delivered get an
// action row. A manual nudge never consumes a scheduled offset, so its
// metadata carries no offset_day.
func (s *caseService) NudgeNow(ctx context.Context, caseID uuid.UUID, actor ports.Actor) error {
	c, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if c == nil {
		return apperror.ErrCaseNotFound()
	}
	if c.Status != domain.CaseStatusOpen {
		return apperror.ErrCaseNotOpen()
	}

	settings, err := s.settingsOrDefault(ctx, c.CompanyID)
	if err != nil {
		return err
	}

	delivered, sendErr := s.notifier.SendReminder(ctx, ports.Notification{
		CompanyID:    c.CompanyID,
		MembershipID: c.MembershipID,
		UserID:       c.UserID,
		CaseID:       c.ID,
		OffsetDay:    -1,
		Message:      reminderMessage(c),
	}, settings)

	if len(delivered) > 0 {
		now := time.Now().UTC()
		err := s.withOpenCase(ctx, caseID, func(dbTx pgx.Tx, c *domain.RecoveryCase) error {
			c.LastNudgeAt = &now
			c.UpdatedAt = now
			if err := s.caseRepo.Update(ctx, dbTx, c); err != nil {
				return err
			}
			for _, actionType := range delivered {
				action := &domain.RecoveryAction{
					ID:        uuid.New(),
					CaseID:    caseID,
					Type:      actionType,
					ActorType: actor.Type,
					ActorID:   actor.ID,
					Metadata:  domain.ActionMetadata{Channel: channelOf(actionType)},
					CreatedAt: now,
				}
				if err := s.actionRepo.Create(ctx, dbTx, action); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	if sendErr != nil && len(delivered) == 0 {
		return mapDependencyError("notify", sendErr)
	}
	return nil
}

// CancelCase closes an open case on operator request.
func (s *caseService) CancelCase(ctx context.Context, caseID uuid.UUID, actor ports.Actor) error {
	now := time.Now().UTC()
	return s.withOpenCase(ctx, caseID, func(dbTx pgx.Tx, c *domain.RecoveryCase) error {
		c.Status = domain.CaseStatusClosedNoRecovery
		c.UpdatedAt = now
		if err := s.caseRepo.Update(ctx, dbTx, c); err != nil {
			return err
		}
		return s.actionRepo.Create(ctx, dbTx, &domain.RecoveryAction{
			ID:        uuid.New(),
			CaseID:    caseID,
			Type:      domain.ActionCaseCancelled,
			ActorType: actor.Type,
			ActorID:   actor.ID,
			CreatedAt: now,
		})
	})
}

// CancelAtPeriodEnd asks the billing platform to let the membership run
// out, then closes the case. The billing call goes first: if it fails
// the case stays open and the operator can retry.
func (s *caseService) CancelAtPeriodEnd(ctx context.Context, caseID uuid.UUID, actor ports.Actor) error {
	c, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if c == nil {
		return apperror.ErrCaseNotFound()
	}
	if c.Status != domain.CaseStatusOpen {
		return apperror.ErrCaseNotOpen()
	}

	err = s.billingExec.Do(ctx, "cancel-membership", func(ctx context.Context) error {
		return s.billing.CancelMembership(ctx, c.MembershipID, true)
	})
	if err != nil {
		return mapDependencyError("billing", err)
	}

	now := time.Now().UTC()
	return s.withOpenCase(ctx, caseID, func(dbTx pgx.Tx, c *domain.RecoveryCase) error {
		c.Status = domain.CaseStatusClosedNoRecovery
		c.UpdatedAt = now
		if err := s.caseRepo.Update(ctx, dbTx, c); err != nil {
			return err
		}
		return s.actionRepo.Create(ctx, dbTx, &domain.RecoveryAction{
			ID:        uuid.New(),
			CaseID:    caseID,
			Type:      domain.ActionCaseCancelled,
			ActorType: actor.Type,
			ActorID:   actor.ID,
			Metadata:  domain.ActionMetadata{ErrorReason: "cancel_at_period_end"},
			CreatedAt: now,
		})
	})
}

// TerminateMembership ends the membership immediately via the billing
// platform and records the action. A terminal case stays terminal; only
// an open case is also closed.
func (s *caseService) TerminateMembership(ctx context.Context, caseID uuid.UUID, actor ports.Actor) error {
	c, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if c == nil {
		return apperror.ErrCaseNotFound()
	}

	err = s.billingExec.Do(ctx, "terminate-membership", func(ctx context.Context) error {
		return s.billing.TerminateMembership(ctx, c.MembershipID)
	})
	if err != nil {
		return mapDependencyError("billing", err)
	}

	now := time.Now().UTC()
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	locked, err := s.caseRepo.GetByIDForUpdate(ctx, dbTx, caseID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if locked == nil {
		return apperror.ErrCaseNotFound()
	}
	if locked.Status == domain.CaseStatusOpen {
		locked.Status = domain.CaseStatusClosedNoRecovery
		locked.UpdatedAt = now
		if err := s.caseRepo.Update(ctx, dbTx, locked); err != nil {
			return apperror.ErrDatabaseError(err)
		}
	}
	action := &domain.RecoveryAction{
		ID:        uuid.New(),
		CaseID:    caseID,
		Type:      domain.ActionMembershipTerminated,
		ActorType: actor.Type,
		ActorID:   actor.ID,
		CreatedAt: now,
	}
	if err := s.actionRepo.Create(ctx, dbTx, action); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

// withOpenCase runs fn inside a transaction holding the row lock on an
// open case. Not-found and not-open are reported as classified errors.
func (s *caseService) withOpenCase(ctx context.Context, caseID uuid.UUID, fn func(dbTx pgx.Tx, c *domain.RecoveryCase) error) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	c, err := s.caseRepo.GetByIDForUpdate(ctx, dbTx, caseID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if c == nil {
		return apperror.ErrCaseNotFound()
	}
	if c.Status != domain.CaseStatusOpen {
		return apperror.ErrCaseNotOpen()
	}

	if err := fn(dbTx, c); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

func (s *caseService) settingsOrDefault(ctx context.Context, companyID uuid.UUID) (*domain.CreatorSettings, error) {
	return loadSettings(ctx, s.settingsRepo, s.cfg, companyID)
}

// loadSettings fetches a company's settings, falling back to the
// configured defaults when the company has none.
func loadSettings(ctx context.Context, repo ports.SettingsRepository, cfg config.RecoveryConfig, companyID uuid.UUID) (*domain.CreatorSettings, error) {
	settings, err := repo.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if settings != nil {
		return settings, nil
	}
	return &domain.CreatorSettings{
		CompanyID:                companyID,
		EnablePush:               cfg.EnablePush,
		EnableDM:                 cfg.EnableDM,
		IncentiveDays:            cfg.IncentiveDays,
		ReminderOffsetsDays:      cfg.ReminderOffsetsDays,
		KPIAttributionWindowDays: cfg.AttributionWindowDays,
	}, nil
}

func (s *caseService) attributionWindowDays(ctx context.Context, companyID uuid.UUID) int {
	settings, err := s.settingsRepo.GetByCompany(ctx, companyID)
	if err != nil {
		s.log.Warn().Err(err).Str("company_id", companyID.String()).Msg("settings lookup failed, using default window")
		return s.cfg.AttributionWindowDays
	}
	if settings == nil || settings.KPIAttributionWindowDays <= 0 {
		return s.cfg.AttributionWindowDays
	}
	return settings.KPIAttributionWindowDays
}

func newCase(ev *domain.Event, data *domain.PaymentFailedData, now time.Time) *domain.RecoveryCase {
	c := &domain.RecoveryCase{
		ID:             uuid.New(),
		CompanyID:      ev.CompanyID,
		MembershipID:   ev.MembershipID,
		UserID:         data.UserID,
		Status:         domain.CaseStatusOpen,
		Attempts:       1,
		FirstFailureAt: ev.OccurredAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if data.FailureReason != "" {
		c.FailureReason = &data.FailureReason
	}
	return c
}

func channelOf(actionType domain.ActionType) string {
	switch actionType {
	case domain.ActionNudgePush:
		return "push"
	case domain.ActionNudgeDM:
		return "dm"
	}
	return ""
}

func reminderMessage(c *domain.RecoveryCase) string {
	if c.Attempts > 1 {
		return fmt.Sprintf("Your membership payment has failed %d times. Please update your payment method to keep your access.", c.Attempts)
	}
	return "Your last membership payment did not go through. Please update your payment method to keep your access."
}

// mapDependencyError turns resilience-layer errors into API errors.
func mapDependencyError(dependency string, err error) error {
	if errors.Is(err, resilience.ErrOpen) {
		return apperror.ErrBreakerOpen(dependency)
	}
	return apperror.ErrDependencyFailure(dependency, err)
}
