package handler

import (
	"time"

	"revenue-recovery/internal/adapter/http/dto"
	"revenue-recovery/internal/core/ports"
	"revenue-recovery/pkg/apperror"
	"revenue-recovery/pkg/response"

	"github.com/gin-gonic/gin"
)

// SchedulerHandler exposes the reminder cycle to the external cron service.
type SchedulerHandler struct {
	schedulerSvc ports.SchedulerService
}

// NewSchedulerHandler creates a new SchedulerHandler.
func NewSchedulerHandler(schedulerSvc ports.SchedulerService) *SchedulerHandler {
	return &SchedulerHandler{schedulerSvc: schedulerSvc}
}

// Trigger handles POST /api/v1/scheduler. An empty body (or
// {"action":"run"}) runs one reminder cycle synchronously;
// {"action":"stats"} returns the processing summary without running.
func (h *SchedulerHandler) Trigger(c *gin.Context) {
	var req dto.SchedulerTriggerRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}

	if req.Action == "stats" {
		stats, err := h.schedulerSvc.Stats(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, stats)
		return
	}

	report, err := h.schedulerSvc.RunCycle(c.Request.Context(), time.Now().UTC())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// Status handles GET /api/v1/scheduler, reporting the last cycle.
func (h *SchedulerHandler) Status(c *gin.Context) {
	status := dto.SchedulerStatusResponse{}
	if last := h.schedulerSvc.LastReport(); last != nil {
		finished := last.FinishedAt.UTC().Format(time.RFC3339)
		status.LastCycleAt = &finished
		status.CompaniesProcessed = last.CompaniesProcessed
		status.CompaniesSkipped = last.CompaniesSkipped
		status.RemindersSent = last.RemindersSent
		status.CasesClosed = last.CasesClosed
		status.Errors = len(last.Errors)
	}
	response.OK(c, status)
}
