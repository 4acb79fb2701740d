package handler

import (
	"io"
	"time"

	"revenue-recovery/internal/adapter/http/dto"
	"revenue-recovery/internal/core/ports"
	"revenue-recovery/pkg/apperror"
	"revenue-recovery/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// HeaderSignature carries the billing platform's HMAC over the raw body.
	HeaderSignature = "X-Billing-Signature"
	// HeaderTimestamp carries the send time used for replay protection.
	HeaderTimestamp = "X-Billing-Timestamp"
)

// WebhookHandler handles inbound billing platform webhooks.
type WebhookHandler struct {
	verifier  ports.WebhookVerifier
	ingestSvc ports.IngestService
	log       zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(verifier ports.WebhookVerifier, ingestSvc ports.IngestService, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, ingestSvc: ingestSvc, log: log}
}

// Receive handles POST /api/v1/webhooks/billing.
// Verification runs against the raw body before any parsing; a replayed
// delivery is acknowledged with 200 and duplicate=true so the platform
// stops retrying.
func (h *WebhookHandler) Receive(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	if err := h.verifier.Verify(rawBody, c.GetHeader(HeaderSignature), c.GetHeader(HeaderTimestamp)); err != nil {
		h.log.Warn().Err(err).Str("client_ip", c.ClientIP()).Msg("webhook verification failed")
		response.Error(c, err)
		return
	}

	result, err := h.ingestSvc.Ingest(c.Request.Context(), rawBody, time.Now().UTC())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WebhookAckResponse{
		EventID:         result.Event.ID.String(),
		UpstreamEventID: result.Event.UpstreamEventID,
		Duplicate:       result.Duplicate,
		Transition:      result.Transition,
	})
}
