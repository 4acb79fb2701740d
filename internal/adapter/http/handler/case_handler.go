package handler

import (
	"context"

	"revenue-recovery/internal/adapter/http/middleware"
	"revenue-recovery/internal/core/domain"
	"revenue-recovery/internal/core/ports"
	"revenue-recovery/pkg/apperror"
	"revenue-recovery/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CaseHandler handles operator mutations on recovery cases. Every
// endpoint goes through the case engine; the handler never touches the
// case tables directly.
type CaseHandler struct {
	engine   ports.CaseEngine
	caseRepo ports.CaseRepository
}

// NewCaseHandler creates a new CaseHandler.
func NewCaseHandler(engine ports.CaseEngine, caseRepo ports.CaseRepository) *CaseHandler {
	return &CaseHandler{engine: engine, caseRepo: caseRepo}
}

// Nudge handles POST /api/v1/cases/:id/nudge — out-of-schedule reminder.
func (h *CaseHandler) Nudge(c *gin.Context) {
	h.mutate(c, h.engine.NudgeNow)
}

// Cancel handles POST /api/v1/cases/:id/cancel — close without recovery.
func (h *CaseHandler) Cancel(c *gin.Context) {
	h.mutate(c, h.engine.CancelCase)
}

// CancelAtPeriodEnd handles POST /api/v1/cases/:id/cancel-at-period-end.
func (h *CaseHandler) CancelAtPeriodEnd(c *gin.Context) {
	h.mutate(c, h.engine.CancelAtPeriodEnd)
}

// Terminate handles POST /api/v1/cases/:id/terminate — end the
// membership immediately via the billing platform.
func (h *CaseHandler) Terminate(c *gin.Context) {
	h.mutate(c, h.engine.TerminateMembership)
}

func (h *CaseHandler) mutate(c *gin.Context, op func(ctx context.Context, caseID uuid.UUID, actor ports.Actor) error) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid case id"))
		return
	}

	actor, ok := operatorActor(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	companyID, ok := claimCompanyID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	// Same ownership convention as the read side: another company's
	// case reads as not found, never as forbidden.
	rc, err := h.caseRepo.GetByID(c.Request.Context(), caseID)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if rc == nil || rc.CompanyID != companyID {
		response.Error(c, apperror.ErrCaseNotFound())
		return
	}

	if err := op(c.Request.Context(), caseID, actor); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"case_id": caseID.String()})
}

// operatorActor builds the audit actor from the JWT context.
func operatorActor(c *gin.Context) (ports.Actor, bool) {
	v, ok := c.Get(middleware.CtxOperatorID)
	if !ok {
		return ports.Actor{}, false
	}
	operatorID, ok := v.(uuid.UUID)
	if !ok {
		return ports.Actor{}, false
	}
	return ports.Actor{Type: domain.ActorUser, ID: operatorID.String()}, true
}
