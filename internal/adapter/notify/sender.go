// Package notify delivers payment reminders over the push and DM channels.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"revenue-recovery/internal/core/ports"
	"revenue-recovery/internal/resilience"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Sender delivers one reminder over a single channel.
type Sender interface {
	Send(ctx context.Context, n ports.Notification) error
}

// reminderPayload is the JSON body sent to both notification providers.
// It carries ids only, never member contact details.
type reminderPayload struct {
	UserID       string `json:"user_id"`
	MembershipID string `json:"membership_id"`
	CompanyID    string `json:"company_id"`
	Message      string `json:"message"`
}

// httpSender posts reminders to one provider endpoint.
type httpSender struct {
	dependency string
	url        string
	apiKey     string
	httpClient HTTPClient
	log        zerolog.Logger
}

func (s *httpSender) Send(ctx context.Context, n ports.Notification) error {
	payload := reminderPayload{
		UserID:       n.UserID,
		MembershipID: n.MembershipID,
		CompanyID:    n.CompanyID.String(),
		Message:      n.Message,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return resilience.FatalError(s.dependency, 0, fmt.Errorf("encode reminder: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(data))
	if err != nil {
		return resilience.FatalError(s.dependency, 0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return resilience.RetryableError(s.dependency, 0, err)
	}
	defer resp.Body.Close() //nolint:errcheck
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		s.log.Warn().Int("status", resp.StatusCode).Str("provider", s.dependency).Msg("reminder delivery transient failure")
		return resilience.RetryableError(s.dependency, resp.StatusCode, fmt.Errorf("%s provider status %d", s.dependency, resp.StatusCode))
	default:
		return resilience.FatalError(s.dependency, resp.StatusCode, fmt.Errorf("%s provider status %d", s.dependency, resp.StatusCode))
	}
}

// NewPushSender creates the in-app push channel sender.
func NewPushSender(url, apiKey string, httpClient HTTPClient, log zerolog.Logger) Sender {
	return &httpSender{dependency: "push", url: url, apiKey: apiKey, httpClient: httpClient, log: log}
}

// NewDMSender creates the direct-message channel sender.
func NewDMSender(url, apiKey string, httpClient HTTPClient, log zerolog.Logger) Sender {
	return &httpSender{dependency: "dm", url: url, apiKey: apiKey, httpClient: httpClient, log: log}
}
