package service

import (
	"context"
	"sync"
	"time"

	"revenue-recovery/config"
	"revenue-recovery/internal/core/domain"
	"revenue-recovery/internal/core/ports"
	"revenue-recovery/internal/resilience"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// schedulerService implements ports.SchedulerService. One invocation is
// a bounded batch job: companies are visited sequentially, each behind
// its advisory lock, and a single company's failure lands in the report
// instead of failing the cycle.
type schedulerService struct {
	caseRepo     ports.CaseRepository
	actionRepo   ports.ActionRepository
	settingsRepo ports.SettingsRepository
	engine       ports.CaseEngine
	notifier     ports.NotificationGateway
	billing      ports.BillingClient
	billingExec  *resilience.Client
	lock         ports.CompanyLock
	recoveryCfg  config.RecoveryConfig
	schedCfg     config.SchedulerConfig
	log          zerolog.Logger

	mu         sync.Mutex
	lastReport *ports.CycleReport
}

// NewSchedulerService creates the reminder scheduler.
func NewSchedulerService(
	caseRepo ports.CaseRepository,
	actionRepo ports.ActionRepository,
	settingsRepo ports.SettingsRepository,
	engine ports.CaseEngine,
	notifier ports.NotificationGateway,
	billing ports.BillingClient,
	billingExec *resilience.Client,
	lock ports.CompanyLock,
	recoveryCfg config.RecoveryConfig,
	schedCfg config.SchedulerConfig,
	log zerolog.Logger,
) ports.SchedulerService {
	return &schedulerService{
		caseRepo:     caseRepo,
		actionRepo:   actionRepo,
		settingsRepo: settingsRepo,
		engine:       engine,
		notifier:     notifier,
		billing:      billing,
		billingExec:  billingExec,
		lock:         lock,
		recoveryCfg:  recoveryCfg,
		schedCfg:     schedCfg,
		log:          log,
	}
}

// RunCycle visits every company with open cases and sends whatever
// reminders are due at now. Due-ness is decided by the recorded actions,
// never by elapsed time alone, so re-running a cycle cannot double-send.
func (s *schedulerService) RunCycle(ctx context.Context, now time.Time) (*ports.CycleReport, error) {
	report := &ports.CycleReport{StartedAt: now}

	cycleCtx := ctx
	if s.schedCfg.CycleBudget > 0 {
		var cancel context.CancelFunc
		cycleCtx, cancel = context.WithTimeout(ctx, s.schedCfg.CycleBudget)
		defer cancel()
	}

	companies, err := s.caseRepo.ListCompaniesWithOpenCases(cycleCtx)
	if err != nil {
		return nil, err
	}

	for _, companyID := range companies {
		if cycleCtx.Err() != nil {
			s.log.Warn().Msg("cycle budget exhausted, remaining companies deferred to next cycle")
			break
		}

		token, acquired, err := s.lock.Acquire(cycleCtx, companyID, s.schedCfg.LockTTL)
		if err != nil {
			report.Errors = append(report.Errors, ports.CycleError{CompanyID: companyID, Message: err.Error()})
			continue
		}
		if !acquired {
			report.CompaniesSkipped++
			continue
		}

		companyCtx := cycleCtx
		var cancel context.CancelFunc
		if s.schedCfg.PerCompanyTimeout > 0 {
			companyCtx, cancel = context.WithTimeout(cycleCtx, s.schedCfg.PerCompanyTimeout)
		}
		s.processCompany(companyCtx, companyID, now, report)
		if cancel != nil {
			cancel()
		}

		if err := s.lock.Release(ctx, companyID, token); err != nil {
			s.log.Warn().Err(err).Str("company_id", companyID.String()).Msg("company lock release failed")
		}
		report.CompaniesProcessed++
	}

	report.FinishedAt = time.Now().UTC()
	s.mu.Lock()
	s.lastReport = report
	s.mu.Unlock()

	s.log.Info().
		Int("companies_processed", report.CompaniesProcessed).
		Int("companies_skipped", report.CompaniesSkipped).
		Int("reminders_sent", report.RemindersSent).
		Int("cases_closed", report.CasesClosed).
		Int("errors", len(report.Errors)).
		Msg("reminder cycle finished")
	return report, nil
}

func (s *schedulerService) processCompany(ctx context.Context, companyID uuid.UUID, now time.Time, report *ports.CycleReport) {
	settings, err := loadSettings(ctx, s.settingsRepo, s.recoveryCfg, companyID)
	if err != nil {
		report.Errors = append(report.Errors, ports.CycleError{CompanyID: companyID, Message: err.Error()})
		return
	}

	cases, err := s.caseRepo.ListOpenByCompany(ctx, companyID)
	if err != nil {
		report.Errors = append(report.Errors, ports.CycleError{CompanyID: companyID, Message: err.Error()})
		return
	}

	for i := range cases {
		if ctx.Err() != nil {
			report.Errors = append(report.Errors, ports.CycleError{
				CompanyID: companyID,
				Message:   "per-company timeout exceeded, remaining cases deferred",
			})
			return
		}
		s.processCase(ctx, &cases[i], settings, now, report)
	}
}

func (s *schedulerService) processCase(ctx context.Context, c *domain.RecoveryCase, settings *domain.CreatorSettings, now time.Time, report *ports.CycleReport) {
	nudged, err := s.actionRepo.NudgedOffsets(ctx, c.ID)
	if err != nil {
		report.Errors = append(report.Errors, ports.CycleError{CompanyID: c.CompanyID, CaseID: c.ID, Message: err.Error()})
		return
	}

	for _, offset := range settings.ReminderOffsetsDays {
		if nudged[offset] {
			continue
		}
		if now.Before(c.OffsetDueAt(offset)) {
			continue
		}

		delivered, sendErr := s.notifier.SendReminder(ctx, ports.Notification{
			CompanyID:    c.CompanyID,
			MembershipID: c.MembershipID,
			UserID:       c.UserID,
			CaseID:       c.ID,
			OffsetDay:    offset,
			Message:      reminderMessage(c),
		}, settings)
		if sendErr != nil {
			report.Errors = append(report.Errors, ports.CycleError{CompanyID: c.CompanyID, CaseID: c.ID, Message: sendErr.Error()})
		}
		if len(delivered) == 0 {
			continue
		}

		for _, actionType := range delivered {
			if err := s.engine.RecordNudge(ctx, c.ID, offset, actionType, ports.SystemActor, now); err != nil {
				report.Errors = append(report.Errors, ports.CycleError{CompanyID: c.CompanyID, CaseID: c.ID, Message: err.Error()})
			}
		}
		report.RemindersSent++

		// The grant is keyed on the case itself, not on which reminders
		// went out, so a failed nudge record cannot cause a second grant.
		if settings.IncentiveDays > 0 && c.IncentiveDays == 0 {
			s.applyIncentive(ctx, c, settings.IncentiveDays, report)
		}
	}

	if c.AllOffsetsElapsed(now, settings.ReminderOffsetsDays) {
		if err := s.engine.CloseExpired(ctx, c.ID, now); err != nil {
			report.Errors = append(report.Errors, ports.CycleError{CompanyID: c.CompanyID, CaseID: c.ID, Message: err.Error()})
			return
		}
		report.CasesClosed++
	}
}

// applyIncentive grants the win-back extension, once per case. The
// billing call goes through the resilience layer; the action is
// recorded only after the platform accepted the extension.
func (s *schedulerService) applyIncentive(ctx context.Context, c *domain.RecoveryCase, days int, report *ports.CycleReport) {
	err := s.billingExec.Do(ctx, "add-incentive-days", func(ctx context.Context) error {
		return s.billing.AddIncentiveDays(ctx, c.MembershipID, days)
	})
	if err != nil {
		report.Errors = append(report.Errors, ports.CycleError{CompanyID: c.CompanyID, CaseID: c.ID, Message: err.Error()})
		return
	}
	if err := s.engine.RecordIncentive(ctx, c.ID, days, ports.SystemActor); err != nil {
		report.Errors = append(report.Errors, ports.CycleError{CompanyID: c.CompanyID, CaseID: c.ID, Message: err.Error()})
	}
	c.IncentiveDays += days
}

// Stats returns the processing summary for the trigger endpoint.
func (s *schedulerService) Stats(ctx context.Context) (*ports.SchedulerStats, error) {
	global, err := s.caseRepo.GetGlobalStats(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.SchedulerStats{
		OpenCases: global.Open,
		Recovered: global.Recovered,
	}
	if last := s.LastReport(); last != nil {
		stats.LastCycleAt = &last.FinishedAt
		stats.RemindersSent = last.RemindersSent
	}
	return stats, nil
}

// LastReport returns the most recent cycle report, nil before any cycle.
func (s *schedulerService) LastReport() *ports.CycleReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReport
}
