package integration

import (
	"context"
	"fmt"
	"sync"

	"revenue-recovery/internal/core/domain"
	"revenue-recovery/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Event Repo ---

type inMemoryEventRepo struct {
	mu     sync.RWMutex
	events map[string]*domain.Event // keyed by upstream event id
}

func newInMemoryEventRepo() *inMemoryEventRepo {
	return &inMemoryEventRepo{events: make(map[string]*domain.Event)}
}

func (r *inMemoryEventRepo) Insert(ctx context.Context, event *domain.Event) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.events[event.UpstreamEventID]; exists {
		return false, nil
	}
	stored := *event
	r.events[event.UpstreamEventID] = &stored
	return true, nil
}

func (r *inMemoryEventRepo) GetByUpstreamID(ctx context.Context, upstreamEventID string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ev, ok := r.events[upstreamEventID]
	if !ok {
		return nil, nil
	}
	return ev, nil
}

func (r *inMemoryEventRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}

// --- In-Memory Case Repo ---

type inMemoryCaseRepo struct {
	mu    sync.RWMutex
	cases map[uuid.UUID]*domain.RecoveryCase
}

func newInMemoryCaseRepo() *inMemoryCaseRepo {
	return &inMemoryCaseRepo{cases: make(map[uuid.UUID]*domain.RecoveryCase)}
}

func (r *inMemoryCaseRepo) Create(ctx context.Context, tx pgx.Tx, c *domain.RecoveryCase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *c
	r.cases[c.ID] = &stored
	return nil
}

func (r *inMemoryCaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecoveryCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cases[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *inMemoryCaseRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.RecoveryCase, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryCaseRepo) GetOpenForUpdate(ctx context.Context, tx pgx.Tx, companyID uuid.UUID, membershipID string) (*domain.RecoveryCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.cases {
		if c.CompanyID == companyID && c.MembershipID == membershipID && c.Status == domain.CaseStatusOpen {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *inMemoryCaseRepo) Update(ctx context.Context, tx pgx.Tx, c *domain.RecoveryCase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cases[c.ID]; !ok {
		return fmt.Errorf("case not found")
	}
	stored := *c
	r.cases[c.ID] = &stored
	return nil
}

func (r *inMemoryCaseRepo) ListOpenByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.RecoveryCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.RecoveryCase
	for _, c := range r.cases {
		if c.CompanyID == companyID && c.Status == domain.CaseStatusOpen {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (r *inMemoryCaseRepo) ListCompaniesWithOpenCases(ctx context.Context) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[uuid.UUID]bool)
	var result []uuid.UUID
	for _, c := range r.cases {
		if c.Status == domain.CaseStatusOpen && !seen[c.CompanyID] {
			seen[c.CompanyID] = true
			result = append(result, c.CompanyID)
		}
	}
	return result, nil
}

func (r *inMemoryCaseRepo) List(ctx context.Context, params ports.CaseListParams) ([]domain.RecoveryCase, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.RecoveryCase
	for _, c := range r.cases {
		if c.CompanyID != params.CompanyID {
			continue
		}
		if params.Status != nil && c.Status != *params.Status {
			continue
		}
		if params.MembershipID != "" && c.MembershipID != params.MembershipID {
			continue
		}
		if params.From != nil && c.CreatedAt.Unix() < *params.From {
			continue
		}
		if params.To != nil && c.CreatedAt.Unix() > *params.To {
			continue
		}
		result = append(result, *c)
	}
	total := int64(len(result))

	// Simple pagination
	start := (params.Page - 1) * params.PageSize
	if start >= len(result) {
		return []domain.RecoveryCase{}, total, nil
	}
	end := start + params.PageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

func (r *inMemoryCaseRepo) GetStats(ctx context.Context, companyID uuid.UUID) (*ports.CaseStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &ports.CaseStats{}
	for _, c := range r.cases {
		if c.CompanyID != companyID {
			continue
		}
		r.tally(stats, c)
	}
	return stats, nil
}

func (r *inMemoryCaseRepo) GetGlobalStats(ctx context.Context) (*ports.CaseStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &ports.CaseStats{}
	for _, c := range r.cases {
		r.tally(stats, c)
	}
	return stats, nil
}

func (r *inMemoryCaseRepo) tally(stats *ports.CaseStats, c *domain.RecoveryCase) {
	stats.TotalCases++
	switch c.Status {
	case domain.CaseStatusOpen:
		stats.Open++
	case domain.CaseStatusRecovered:
		stats.Recovered++
		stats.RecoveredCents += c.RecoveredAmountCents
	case domain.CaseStatusClosedNoRecovery:
		stats.ClosedNoRecovery++
	}
}

// --- In-Memory Action Repo ---

type inMemoryActionRepo struct {
	mu      sync.RWMutex
	actions []domain.RecoveryAction
}

func newInMemoryActionRepo() *inMemoryActionRepo {
	return &inMemoryActionRepo{}
}

func (r *inMemoryActionRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.RecoveryAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, *a)
	return nil
}

func (r *inMemoryActionRepo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.RecoveryAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.RecoveryAction
	for _, a := range r.actions {
		if a.CaseID == caseID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *inMemoryActionRepo) NudgedOffsets(ctx context.Context, caseID uuid.UUID) (map[int]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	offsets := make(map[int]bool)
	for _, a := range r.actions {
		if a.CaseID == caseID && a.Type.IsNudge() && a.Metadata.OffsetDay != nil {
			offsets[*a.Metadata.OffsetDay] = true
		}
	}
	return offsets, nil
}

// --- In-Memory Settings Repo ---

type inMemorySettingsRepo struct {
	mu       sync.RWMutex
	settings map[uuid.UUID]*domain.CreatorSettings
}

func newInMemorySettingsRepo() *inMemorySettingsRepo {
	return &inMemorySettingsRepo{settings: make(map[uuid.UUID]*domain.CreatorSettings)}
}

func (r *inMemorySettingsRepo) put(s *domain.CreatorSettings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[s.CompanyID] = s
}

func (r *inMemorySettingsRepo) GetByCompany(ctx context.Context, companyID uuid.UUID) (*domain.CreatorSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.settings[companyID]
	if !ok {
		return nil, nil
	}
	return s, nil
}

// --- Fake Billing Client ---

type fakeBillingClient struct {
	mu             sync.Mutex
	incentiveCalls map[string]int // membership id -> total days granted
	terminated     []string
	cancelled      []string
}

func newFakeBillingClient() *fakeBillingClient {
	return &fakeBillingClient{incentiveCalls: make(map[string]int)}
}

func (b *fakeBillingClient) GetMembership(ctx context.Context, membershipID string) (*ports.Membership, error) {
	return &ports.Membership{ID: membershipID, Status: "past_due"}, nil
}

func (b *fakeBillingClient) CancelMembership(ctx context.Context, membershipID string, atPeriodEnd bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cancelled = append(b.cancelled, membershipID)
	return nil
}

func (b *fakeBillingClient) TerminateMembership(ctx context.Context, membershipID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.terminated = append(b.terminated, membershipID)
	return nil
}

func (b *fakeBillingClient) AddIncentiveDays(ctx context.Context, membershipID string, days int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.incentiveCalls[membershipID] += days
	return nil
}

// --- Recording Notification Gateway ---

type recordingNotifier struct {
	mu   sync.Mutex
	sent []ports.Notification
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{}
}

func (n *recordingNotifier) SendReminder(ctx context.Context, notification ports.Notification, settings *domain.CreatorSettings) ([]domain.ActionType, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)

	var delivered []domain.ActionType
	if settings.EnablePush {
		delivered = append(delivered, domain.ActionNudgePush)
	}
	if settings.EnableDM {
		delivered = append(delivered, domain.ActionNudgeDM)
	}
	return delivered, nil
}

func (n *recordingNotifier) sentCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
