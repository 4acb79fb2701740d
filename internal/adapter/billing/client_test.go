package billing

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"revenue-recovery/config"
	"revenue-recovery/internal/resilience"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHTTPClient struct {
	status   int
	body     string
	err      error
	lastReq  *http.Request
	lastBody string
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	f.lastReq = req
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		f.lastBody = string(data)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

func newTestClient(fake *fakeHTTPClient) *Client {
	return NewClient(config.BillingConfig{
		BaseURL: "https://billing.example.com",
		APIKey:  "test-key",
	}, fake, zerolog.Nop())
}

func TestClient_GetMembership(t *testing.T) {
	fake := &fakeHTTPClient{
		status: http.StatusOK,
		body: `{"id":"mem_123","user_id":"user_456",
			"company_id":"b37a7d26-32f5-4a53-b3e9-0b7e61b5a1cf",
			"status":"active","expires_at":"2026-09-15T00:00:00Z"}`,
	}
	c := newTestClient(fake)

	m, err := c.GetMembership(context.Background(), "mem_123")
	require.NoError(t, err)
	assert.Equal(t, "mem_123", m.ID)
	assert.Equal(t, "user_456", m.UserID)
	assert.Equal(t, "active", m.Status)
	require.NotNil(t, m.ExpiresAt)

	assert.Equal(t, "https://billing.example.com/v1/memberships/mem_123", fake.lastReq.URL.String())
	assert.Equal(t, "Bearer test-key", fake.lastReq.Header.Get("Authorization"))
}

func TestClient_CancelMembership_AtPeriodEnd(t *testing.T) {
	fake := &fakeHTTPClient{status: http.StatusOK, body: `{}`}
	c := newTestClient(fake)

	err := c.CancelMembership(context.Background(), "mem_123", true)
	require.NoError(t, err)
	assert.Contains(t, fake.lastReq.URL.Path, "/v1/memberships/mem_123/cancel")
	assert.JSONEq(t, `{"at_period_end":true}`, fake.lastBody)
}

func TestClient_AddIncentiveDays(t *testing.T) {
	fake := &fakeHTTPClient{status: http.StatusOK, body: `{}`}
	c := newTestClient(fake)

	err := c.AddIncentiveDays(context.Background(), "mem_123", 3)
	require.NoError(t, err)
	assert.Contains(t, fake.lastReq.URL.Path, "/v1/memberships/mem_123/incentive")
	assert.JSONEq(t, `{"days":3}`, fake.lastBody)
}

func TestClient_ServerErrorIsRetryable(t *testing.T) {
	fake := &fakeHTTPClient{status: http.StatusBadGateway, body: `{}`}
	c := newTestClient(fake)

	err := c.TerminateMembership(context.Background(), "mem_123")
	require.Error(t, err)
	assert.True(t, resilience.IsRetryable(err))
}

func TestClient_RateLimitIsRetryable(t *testing.T) {
	fake := &fakeHTTPClient{status: http.StatusTooManyRequests, body: `{}`}
	c := newTestClient(fake)

	_, err := c.GetMembership(context.Background(), "mem_123")
	require.Error(t, err)
	assert.True(t, resilience.IsRetryable(err))
}

func TestClient_ClientErrorIsFatal(t *testing.T) {
	fake := &fakeHTTPClient{status: http.StatusNotFound, body: `{}`}
	c := newTestClient(fake)

	_, err := c.GetMembership(context.Background(), "mem_missing")
	require.Error(t, err)
	assert.False(t, resilience.IsRetryable(err))
}

func TestClient_NetworkErrorIsRetryable(t *testing.T) {
	fake := &fakeHTTPClient{err: io.ErrUnexpectedEOF}
	c := newTestClient(fake)

	_, err := c.GetMembership(context.Background(), "mem_123")
	require.Error(t, err)
	assert.True(t, resilience.IsRetryable(err))
}
