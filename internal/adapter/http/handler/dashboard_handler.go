package handler

import (
	"math"
	"time"

	"revenue-recovery/internal/adapter/http/dto"
	"revenue-recovery/internal/adapter/http/middleware"
	"revenue-recovery/internal/core/domain"
	"revenue-recovery/internal/core/ports"
	"revenue-recovery/pkg/apperror"
	"revenue-recovery/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DashboardHandler serves the read side: case lists, action history and
// recovery KPIs, always scoped to the JWT's company.
type DashboardHandler struct {
	caseRepo   ports.CaseRepository
	actionRepo ports.ActionRepository
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(caseRepo ports.CaseRepository, actionRepo ports.ActionRepository) *DashboardHandler {
	return &DashboardHandler{caseRepo: caseRepo, actionRepo: actionRepo}
}

// ListCases handles GET /api/v1/cases.
func (h *DashboardHandler) ListCases(c *gin.Context) {
	companyID, ok := claimCompanyID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var q dto.CaseListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	params := ports.CaseListParams{
		CompanyID:    companyID,
		MembershipID: q.MembershipID,
		From:         q.From,
		To:           q.To,
		Page:         q.Page,
		PageSize:     q.PageSize,
	}
	if q.Status != "" {
		status := domain.CaseStatus(q.Status)
		params.Status = &status
	}

	cases, total, err := h.caseRepo.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	items := make([]dto.CaseResponse, 0, len(cases))
	for i := range cases {
		items = append(items, toCaseResponse(&cases[i]))
	}

	response.OK(c, dto.CaseListResponse{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(q.PageSize))),
	})
}

// GetCase handles GET /api/v1/cases/:id.
func (h *DashboardHandler) GetCase(c *gin.Context) {
	companyID, ok := claimCompanyID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	rc, ok := h.companyCase(c, companyID)
	if !ok {
		return
	}
	response.OK(c, toCaseResponse(rc))
}

// ListActions handles GET /api/v1/cases/:id/actions.
func (h *DashboardHandler) ListActions(c *gin.Context) {
	companyID, ok := claimCompanyID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	rc, ok := h.companyCase(c, companyID)
	if !ok {
		return
	}

	actions, err := h.actionRepo.ListByCase(c.Request.Context(), rc.ID)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	items := make([]dto.ActionResponse, 0, len(actions))
	for i := range actions {
		items = append(items, toActionResponse(&actions[i]))
	}
	response.OK(c, items)
}

// GetStats handles GET /api/v1/dashboard/stats.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	companyID, ok := claimCompanyID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	stats, err := h.caseRepo.GetStats(c.Request.Context(), companyID)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	response.OK(c, dto.DashboardStatsResponse{
		TotalCases:       stats.TotalCases,
		Open:             stats.Open,
		Recovered:        stats.Recovered,
		ClosedNoRecovery: stats.ClosedNoRecovery,
		RecoveredCents:   stats.RecoveredCents,
	})
}

// companyCase loads the :id case and enforces company ownership. A case
// belonging to another company reads as not found, never as forbidden.
func (h *DashboardHandler) companyCase(c *gin.Context, companyID uuid.UUID) (*domain.RecoveryCase, bool) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid case id"))
		return nil, false
	}

	rc, err := h.caseRepo.GetByID(c.Request.Context(), caseID)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return nil, false
	}
	if rc == nil || rc.CompanyID != companyID {
		response.Error(c, apperror.ErrCaseNotFound())
		return nil, false
	}
	return rc, true
}

func claimCompanyID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxCompanyID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func toCaseResponse(rc *domain.RecoveryCase) dto.CaseResponse {
	resp := dto.CaseResponse{
		ID:                   rc.ID.String(),
		CompanyID:            rc.CompanyID.String(),
		MembershipID:         rc.MembershipID,
		UserID:               rc.UserID,
		Status:               string(rc.Status),
		Attempts:             rc.Attempts,
		IncentiveDays:        rc.IncentiveDays,
		RecoveredAmountCents: rc.RecoveredAmountCents,
		FailureReason:        rc.FailureReason,
		FirstFailureAt:       rc.FirstFailureAt.UTC().Format(time.RFC3339),
		CreatedAt:            rc.CreatedAt.UTC().Format(time.RFC3339),
	}
	if rc.LastNudgeAt != nil {
		s := rc.LastNudgeAt.UTC().Format(time.RFC3339)
		resp.LastNudgeAt = &s
	}
	return resp
}

func toActionResponse(a *domain.RecoveryAction) dto.ActionResponse {
	return dto.ActionResponse{
		ID:            a.ID.String(),
		Type:          string(a.Type),
		ActorType:     string(a.ActorType),
		ActorID:       a.ActorID,
		OffsetDay:     a.Metadata.OffsetDay,
		Channel:       a.Metadata.Channel,
		IncentiveDays: a.Metadata.IncentiveDays,
		ErrorReason:   a.Metadata.ErrorReason,
		CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
