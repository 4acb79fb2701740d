// Package billing is the HTTP adapter for the upstream billing platform.
package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"revenue-recovery/config"
	"revenue-recovery/internal/core/ports"
	"revenue-recovery/internal/resilience"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.BillingClient against the platform's REST API.
// It classifies failures for the resilience layer: 5xx and 429 are
// retryable, other 4xx are fatal.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a billing platform client.
func NewClient(cfg config.BillingConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		log:        log,
	}
}

type membershipResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	CompanyID string  `json:"company_id"`
	Status    string  `json:"status"`
	ExpiresAt *string `json:"expires_at,omitempty"`
}

// GetMembership fetches the current state of a membership.
func (c *Client) GetMembership(ctx context.Context, membershipID string) (*ports.Membership, error) {
	body, err := c.do(ctx, http.MethodGet, "/v1/memberships/"+membershipID, nil)
	if err != nil {
		return nil, err
	}

	var resp membershipResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, resilience.FatalError("billing", 0, fmt.Errorf("decode membership: %w", err))
	}
	m, err := resp.toMembership()
	if err != nil {
		return nil, resilience.FatalError("billing", 0, err)
	}
	return m, nil
}

// CancelMembership cancels a membership, optionally letting it run to the
// end of the paid period.
func (c *Client) CancelMembership(ctx context.Context, membershipID string, atPeriodEnd bool) error {
	payload := map[string]any{"at_period_end": atPeriodEnd}
	_, err := c.do(ctx, http.MethodPost, "/v1/memberships/"+membershipID+"/cancel", payload)
	return err
}

// TerminateMembership ends a membership immediately.
func (c *Client) TerminateMembership(ctx context.Context, membershipID string) error {
	_, err := c.do(ctx, http.MethodPost, "/v1/memberships/"+membershipID+"/terminate", nil)
	return err
}

// AddIncentiveDays extends a membership's paid period as a win-back offer.
func (c *Client) AddIncentiveDays(ctx context.Context, membershipID string, days int) error {
	payload := map[string]any{"days": days}
	_, err := c.do(ctx, http.MethodPost, "/v1/memberships/"+membershipID+"/incentive", payload)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, resilience.FatalError("billing", 0, fmt.Errorf("encode request: %w", err))
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, resilience.FatalError("billing", 0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network errors are transient until proven otherwise.
		return nil, resilience.RetryableError("billing", 0, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, resilience.RetryableError("billing", resp.StatusCode, fmt.Errorf("read response: %w", err))
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("billing API transient failure")
		return nil, resilience.RetryableError("billing", resp.StatusCode, fmt.Errorf("billing API status %d", resp.StatusCode))
	default:
		return nil, resilience.FatalError("billing", resp.StatusCode, fmt.Errorf("billing API status %d", resp.StatusCode))
	}
}

func (r membershipResponse) toMembership() (*ports.Membership, error) {
	m := &ports.Membership{
		ID:     r.ID,
		UserID: r.UserID,
		Status: r.Status,
	}
	if r.CompanyID != "" {
		id, err := uuid.Parse(r.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("invalid company_id in membership: %w", err)
		}
		m.CompanyID = id
	}
	if r.ExpiresAt != nil {
		t, err := time.Parse(time.RFC3339, *r.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("invalid expires_at in membership: %w", err)
		}
		m.ExpiresAt = &t
	}
	return m, nil
}
