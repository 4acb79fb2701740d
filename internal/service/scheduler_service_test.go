package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"revenue-recovery/config"
	"revenue-recovery/internal/core/domain"
	"revenue-recovery/internal/core/ports"
	"revenue-recovery/internal/core/ports/mocks"
	"revenue-recovery/internal/resilience"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type schedulerTestDeps struct {
	svc          ports.SchedulerService
	caseRepo     *mocks.MockCaseRepository
	actionRepo   *mocks.MockActionRepository
	settingsRepo *mocks.MockSettingsRepository
	engine       *mocks.MockCaseEngine
	notifier     *mocks.MockNotificationGateway
	billing      *mocks.MockBillingClient
	lock         *mocks.MockCompanyLock
}

func setupScheduler(t *testing.T) *schedulerTestDeps {
	ctrl := gomock.NewController(t)
	d := &schedulerTestDeps{
		caseRepo:     mocks.NewMockCaseRepository(ctrl),
		actionRepo:   mocks.NewMockActionRepository(ctrl),
		settingsRepo: mocks.NewMockSettingsRepository(ctrl),
		engine:       mocks.NewMockCaseEngine(ctrl),
		notifier:     mocks.NewMockNotificationGateway(ctrl),
		billing:      mocks.NewMockBillingClient(ctrl),
		lock:         mocks.NewMockCompanyLock(ctrl),
	}
	billingExec := resilience.NewClient("billing",
		resilience.RetryPolicy{MaxRetries: 1},
		resilience.NewCircuitBreaker("billing", resilience.BreakerConfig{FailureThreshold: 100}),
		zerolog.Nop(),
	)
	d.svc = NewSchedulerService(
		d.caseRepo, d.actionRepo, d.settingsRepo,
		d.engine, d.notifier, d.billing, billingExec, d.lock,
		config.RecoveryConfig{
			AttributionWindowDays: 14,
			ReminderOffsetsDays:   []int{0, 2, 4},
			IncentiveDays:         7,
			EnablePush:            true,
			EnableDM:              true,
		},
		config.SchedulerConfig{LockTTL: 2 * time.Minute},
		zerolog.Nop(),
	)
	return d
}

func testSettings(companyID uuid.UUID) *domain.CreatorSettings {
	return &domain.CreatorSettings{
		CompanyID:                companyID,
		EnablePush:               true,
		EnableDM:                 true,
		IncentiveDays:            7,
		ReminderOffsetsDays:      []int{0, 2, 4},
		KPIAttributionWindowDays: 14,
	}
}

func expectLock(d *schedulerTestDeps, companyID uuid.UUID) {
	d.lock.EXPECT().Acquire(gomock.Any(), companyID, 2*time.Minute).Return("tok", true, nil)
	d.lock.EXPECT().Release(gomock.Any(), companyID, "tok").Return(nil)
}

func TestScheduler_SendsDueNudgesWithIncentive(t *testing.T) {
	d := setupScheduler(t)
	ctx := context.Background()
	companyID := uuid.New()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now := t0.Add(5 * time.Minute) // Only the day-0 offset is due.
	c := openCase(companyID, "mem_1", t0)

	d.caseRepo.EXPECT().ListCompaniesWithOpenCases(gomock.Any()).Return([]uuid.UUID{companyID}, nil)
	expectLock(d, companyID)
	d.settingsRepo.EXPECT().GetByCompany(gomock.Any(), companyID).Return(testSettings(companyID), nil)
	d.caseRepo.EXPECT().ListOpenByCompany(gomock.Any(), companyID).Return([]domain.RecoveryCase{*c}, nil)
	d.actionRepo.EXPECT().NudgedOffsets(gomock.Any(), c.ID).Return(map[int]bool{}, nil)

	d.notifier.EXPECT().SendReminder(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n ports.Notification, _ *domain.CreatorSettings) ([]domain.ActionType, error) {
			assert.Equal(t, 0, n.OffsetDay)
			assert.Equal(t, c.ID, n.CaseID)
			return []domain.ActionType{domain.ActionNudgePush, domain.ActionNudgeDM}, nil
		})
	d.engine.EXPECT().RecordNudge(gomock.Any(), c.ID, 0, domain.ActionNudgePush, ports.SystemActor, now).Return(nil)
	d.engine.EXPECT().RecordNudge(gomock.Any(), c.ID, 0, domain.ActionNudgeDM, ports.SystemActor, now).Return(nil)
	// First nudge on the case grants the win-back incentive.
	d.billing.EXPECT().AddIncentiveDays(gomock.Any(), "mem_1", 7).Return(nil)
	d.engine.EXPECT().RecordIncentive(gomock.Any(), c.ID, 7, ports.SystemActor).Return(nil)

	report, err := d.svc.RunCycle(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, report.CompaniesProcessed)
	assert.Equal(t, 1, report.RemindersSent)
	assert.Equal(t, 0, report.CasesClosed)
	assert.Empty(t, report.Errors)
	assert.Same(t, report, d.svc.LastReport())
}

func TestScheduler_AlreadyNudgedOffsetNotResent(t *testing.T) {
	d := setupScheduler(t)
	companyID := uuid.New()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now := t0.Add(2*24*time.Hour + time.Hour) // Offsets 0 and 2 both due.
	c := openCase(companyID, "mem_1", t0)
	c.IncentiveDays = 7 // granted with the day-0 nudge

	d.caseRepo.EXPECT().ListCompaniesWithOpenCases(gomock.Any()).Return([]uuid.UUID{companyID}, nil)
	expectLock(d, companyID)
	d.settingsRepo.EXPECT().GetByCompany(gomock.Any(), companyID).Return(testSettings(companyID), nil)
	d.caseRepo.EXPECT().ListOpenByCompany(gomock.Any(), companyID).Return([]domain.RecoveryCase{*c}, nil)
	// Day 0 already satisfied by an earlier cycle.
	d.actionRepo.EXPECT().NudgedOffsets(gomock.Any(), c.ID).Return(map[int]bool{0: true}, nil)

	d.notifier.EXPECT().SendReminder(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n ports.Notification, _ *domain.CreatorSettings) ([]domain.ActionType, error) {
			assert.Equal(t, 2, n.OffsetDay, "only the unsatisfied offset fires")
			return []domain.ActionType{domain.ActionNudgePush}, nil
		})
	d.engine.EXPECT().RecordNudge(gomock.Any(), c.ID, 2, domain.ActionNudgePush, ports.SystemActor, now).Return(nil)
	// Incentive already on the case: no billing expectations.

	report, err := d.svc.RunCycle(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, report.RemindersSent)
	assert.Empty(t, report.Errors)
}

func TestScheduler_RerunSendsNothing(t *testing.T) {
	d := setupScheduler(t)
	companyID := uuid.New()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now := t0.Add(2*24*time.Hour + time.Hour)
	c := openCase(companyID, "mem_1", t0)
	c.IncentiveDays = 7

	d.caseRepo.EXPECT().ListCompaniesWithOpenCases(gomock.Any()).Return([]uuid.UUID{companyID}, nil)
	expectLock(d, companyID)
	d.settingsRepo.EXPECT().GetByCompany(gomock.Any(), companyID).Return(testSettings(companyID), nil)
	d.caseRepo.EXPECT().ListOpenByCompany(gomock.Any(), companyID).Return([]domain.RecoveryCase{*c}, nil)
	d.actionRepo.EXPECT().NudgedOffsets(gomock.Any(), c.ID).Return(map[int]bool{0: true, 2: true}, nil)
	// Every due offset satisfied: the cycle is a pure no-op for this case.

	report, err := d.svc.RunCycle(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 0, report.RemindersSent)
	assert.Equal(t, 0, report.CasesClosed)
}

func TestScheduler_LockHeldSkipsCompany(t *testing.T) {
	d := setupScheduler(t)
	companyID := uuid.New()

	d.caseRepo.EXPECT().ListCompaniesWithOpenCases(gomock.Any()).Return([]uuid.UUID{companyID}, nil)
	d.lock.EXPECT().Acquire(gomock.Any(), companyID, 2*time.Minute).Return("", false, nil)
	// No ListOpenByCompany: a held lock means another invocation owns it.

	report, err := d.svc.RunCycle(context.Background(), time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 0, report.CompaniesProcessed)
	assert.Equal(t, 1, report.CompaniesSkipped)
}

func TestScheduler_ClosesCaseAfterFinalOffset(t *testing.T) {
	d := setupScheduler(t)
	companyID := uuid.New()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now := t0.Add(4*24*time.Hour + time.Hour) // Past the day-4 offset.
	c := openCase(companyID, "mem_1", t0)
	c.IncentiveDays = 7

	d.caseRepo.EXPECT().ListCompaniesWithOpenCases(gomock.Any()).Return([]uuid.UUID{companyID}, nil)
	expectLock(d, companyID)
	d.settingsRepo.EXPECT().GetByCompany(gomock.Any(), companyID).Return(testSettings(companyID), nil)
	d.caseRepo.EXPECT().ListOpenByCompany(gomock.Any(), companyID).Return([]domain.RecoveryCase{*c}, nil)
	d.actionRepo.EXPECT().NudgedOffsets(gomock.Any(), c.ID).Return(map[int]bool{0: true, 2: true}, nil)

	d.notifier.EXPECT().SendReminder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.ActionType{domain.ActionNudgePush}, nil)
	d.engine.EXPECT().RecordNudge(gomock.Any(), c.ID, 4, domain.ActionNudgePush, ports.SystemActor, now).Return(nil)
	// The schedule is exhausted in this same cycle.
	d.engine.EXPECT().CloseExpired(gomock.Any(), c.ID, now).Return(nil)

	report, err := d.svc.RunCycle(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, report.RemindersSent)
	assert.Equal(t, 1, report.CasesClosed)
}

func TestScheduler_NotifierFailureRecordedNotFatal(t *testing.T) {
	d := setupScheduler(t)
	companyA := uuid.New()
	companyB := uuid.New()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now := t0.Add(time.Hour)
	caseA := openCase(companyA, "mem_a", t0)
	caseB := openCase(companyB, "mem_b", t0)

	d.caseRepo.EXPECT().ListCompaniesWithOpenCases(gomock.Any()).Return([]uuid.UUID{companyA, companyB}, nil)
	expectLock(d, companyA)
	expectLock(d, companyB)

	// Company A's notifier is down.
	d.settingsRepo.EXPECT().GetByCompany(gomock.Any(), companyA).Return(testSettings(companyA), nil)
	d.caseRepo.EXPECT().ListOpenByCompany(gomock.Any(), companyA).Return([]domain.RecoveryCase{*caseA}, nil)
	d.actionRepo.EXPECT().NudgedOffsets(gomock.Any(), caseA.ID).Return(map[int]bool{}, nil)
	d.notifier.EXPECT().SendReminder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("push provider unreachable"))

	// Company B still gets its reminder.
	d.settingsRepo.EXPECT().GetByCompany(gomock.Any(), companyB).Return(testSettings(companyB), nil)
	d.caseRepo.EXPECT().ListOpenByCompany(gomock.Any(), companyB).Return([]domain.RecoveryCase{*caseB}, nil)
	d.actionRepo.EXPECT().NudgedOffsets(gomock.Any(), caseB.ID).Return(map[int]bool{}, nil)
	d.notifier.EXPECT().SendReminder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.ActionType{domain.ActionNudgePush}, nil)
	d.engine.EXPECT().RecordNudge(gomock.Any(), caseB.ID, 0, domain.ActionNudgePush, ports.SystemActor, now).Return(nil)
	d.billing.EXPECT().AddIncentiveDays(gomock.Any(), "mem_b", 7).Return(nil)
	d.engine.EXPECT().RecordIncentive(gomock.Any(), caseB.ID, 7, ports.SystemActor).Return(nil)

	report, err := d.svc.RunCycle(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, report.CompaniesProcessed)
	assert.Equal(t, 1, report.RemindersSent)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, companyA, report.Errors[0].CompanyID)
	assert.Equal(t, caseA.ID, report.Errors[0].CaseID)
}

func TestScheduler_IncentiveFailureDoesNotBlockNudge(t *testing.T) {
	d := setupScheduler(t)
	companyID := uuid.New()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now := t0.Add(time.Hour)
	c := openCase(companyID, "mem_1", t0)

	d.caseRepo.EXPECT().ListCompaniesWithOpenCases(gomock.Any()).Return([]uuid.UUID{companyID}, nil)
	expectLock(d, companyID)
	d.settingsRepo.EXPECT().GetByCompany(gomock.Any(), companyID).Return(testSettings(companyID), nil)
	d.caseRepo.EXPECT().ListOpenByCompany(gomock.Any(), companyID).Return([]domain.RecoveryCase{*c}, nil)
	d.actionRepo.EXPECT().NudgedOffsets(gomock.Any(), c.ID).Return(map[int]bool{}, nil)

	d.notifier.EXPECT().SendReminder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.ActionType{domain.ActionNudgePush}, nil)
	d.engine.EXPECT().RecordNudge(gomock.Any(), c.ID, 0, domain.ActionNudgePush, ports.SystemActor, now).Return(nil)
	d.billing.EXPECT().AddIncentiveDays(gomock.Any(), "mem_1", 7).
		Return(resilience.FatalError("billing", 422, fmt.Errorf("plan not eligible")))
	// No RecordIncentive: nothing was granted.

	report, err := d.svc.RunCycle(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, report.RemindersSent, "the nudge itself still counts")
	require.Len(t, report.Errors, 1)
}

func TestScheduler_IncentiveNotRegrantedWhenNudgeRecordFailed(t *testing.T) {
	d := setupScheduler(t)
	companyID := uuid.New()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now := t0.Add(time.Hour)

	// A previous cycle granted the incentive but crashed before the
	// nudge action was recorded, so the offset looks unsatisfied. The
	// retry re-sends the reminder but must not extend the membership a
	// second time.
	c := openCase(companyID, "mem_1", t0)
	c.IncentiveDays = 7

	d.caseRepo.EXPECT().ListCompaniesWithOpenCases(gomock.Any()).Return([]uuid.UUID{companyID}, nil)
	expectLock(d, companyID)
	d.settingsRepo.EXPECT().GetByCompany(gomock.Any(), companyID).Return(testSettings(companyID), nil)
	d.caseRepo.EXPECT().ListOpenByCompany(gomock.Any(), companyID).Return([]domain.RecoveryCase{*c}, nil)
	d.actionRepo.EXPECT().NudgedOffsets(gomock.Any(), c.ID).Return(map[int]bool{}, nil)

	d.notifier.EXPECT().SendReminder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.ActionType{domain.ActionNudgePush}, nil)
	d.engine.EXPECT().RecordNudge(gomock.Any(), c.ID, 0, domain.ActionNudgePush, ports.SystemActor, now).Return(nil)
	// No AddIncentiveDays, no RecordIncentive.

	report, err := d.svc.RunCycle(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, report.RemindersSent)
	assert.Empty(t, report.Errors)
}

func TestScheduler_Stats(t *testing.T) {
	d := setupScheduler(t)
	ctx := context.Background()

	d.caseRepo.EXPECT().GetGlobalStats(ctx).Return(&ports.CaseStats{Open: 12, Recovered: 30}, nil).Times(2)

	// Before any cycle: no last-cycle fields.
	stats, err := d.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.OpenCases)
	assert.Equal(t, int64(30), stats.Recovered)
	assert.Nil(t, stats.LastCycleAt)

	d.caseRepo.EXPECT().ListCompaniesWithOpenCases(gomock.Any()).Return(nil, nil)
	_, err = d.svc.RunCycle(ctx, time.Now().UTC())
	require.NoError(t, err)

	stats, err = d.svc.Stats(ctx)
	require.NoError(t, err)
	require.NotNil(t, stats.LastCycleAt)
}
