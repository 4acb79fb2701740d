package dto

// WebhookAckResponse acknowledges one webhook delivery.
type WebhookAckResponse struct {
	EventID         string `json:"event_id"`
	UpstreamEventID string `json:"upstream_event_id"`
	Duplicate       bool   `json:"duplicate"`
	Transition      string `json:"transition,omitempty"`
}

// CaseListQuery binds the filter/pagination query for GET /cases.
type CaseListQuery struct {
	Status       string `form:"status" binding:"omitempty,oneof=open recovered closed_no_recovery"`
	MembershipID string `form:"membership_id" binding:"omitempty,safe_id,max=100"`
	From         *int64 `form:"from" binding:"omitempty,gte=0"`
	To           *int64 `form:"to" binding:"omitempty,gte=0"`
	Page         int    `form:"page,default=1" binding:"omitempty,gte=1"`
	PageSize     int    `form:"page_size,default=20" binding:"omitempty,gte=1,lte=100"`
}

// CaseResponse is the API view of one recovery case.
type CaseResponse struct {
	ID                   string  `json:"id"`
	CompanyID            string  `json:"company_id"`
	MembershipID         string  `json:"membership_id"`
	UserID               string  `json:"user_id"`
	Status               string  `json:"status"`
	Attempts             int     `json:"attempts"`
	IncentiveDays        int     `json:"incentive_days"`
	RecoveredAmountCents int64   `json:"recovered_amount_cents"`
	FailureReason        *string `json:"failure_reason,omitempty"`
	FirstFailureAt       string  `json:"first_failure_at"`
	LastNudgeAt          *string `json:"last_nudge_at,omitempty"`
	CreatedAt            string  `json:"created_at"`
}

// CaseListResponse wraps a paginated case list.
type CaseListResponse struct {
	Items      []CaseResponse `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// ActionResponse is the API view of one recovery action audit record.
type ActionResponse struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	ActorType     string `json:"actor_type"`
	ActorID       string `json:"actor_id,omitempty"`
	OffsetDay     *int   `json:"offset_day,omitempty"`
	Channel       string `json:"channel,omitempty"`
	IncentiveDays int    `json:"incentive_days,omitempty"`
	ErrorReason   string `json:"error_reason,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// DashboardStatsResponse is the recovery KPI summary for one company.
type DashboardStatsResponse struct {
	TotalCases       int64 `json:"total_cases"`
	Open             int64 `json:"open"`
	Recovered        int64 `json:"recovered"`
	ClosedNoRecovery int64 `json:"closed_no_recovery"`
	RecoveredCents   int64 `json:"recovered_cents"`
}

// SchedulerTriggerRequest is the body for POST /scheduler. An empty body
// runs a cycle; {"action":"stats"} reads the summary without running one.
type SchedulerTriggerRequest struct {
	Action string `json:"action" binding:"omitempty,oneof=run stats"`
}

// SchedulerStatusResponse reports the last cycle for GET /scheduler.
type SchedulerStatusResponse struct {
	LastCycleAt        *string `json:"last_cycle_at,omitempty"`
	CompaniesProcessed int     `json:"companies_processed"`
	CompaniesSkipped   int     `json:"companies_skipped"`
	RemindersSent      int     `json:"reminders_sent"`
	CasesClosed        int     `json:"cases_closed"`
	Errors             int     `json:"errors"`
}
