// Package functions is a minimal client for the project's Supabase edge
// functions.
package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const generatePayrollPath = "/certified-payroll-generate"

// Client invokes edge functions.
type Client interface {
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) (*GeneratePayrollResponse, error)
}

// GeneratePayrollRequest is the body for POST /certified-payroll-generate.
type GeneratePayrollRequest struct {
	ProjectID      string `json:"project_id"`
	WeekEndingDate string `json:"week_ending_date"`
}

// GeneratePayrollResponse is the function's reply. On failure Success is
// false and Error carries the reason.
type GeneratePayrollResponse struct {
	Success       bool   `json:"success"`
	PayrollNumber string `json:"payroll_number,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Option configures the client.
type Option func(*httpClient)

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit sets the client-side request rate.
func WithRateLimit(perSec float64) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(perSec), 1)
	}
}

// WithAnonKey sets the Supabase anon key sent as the bearer token.
func WithAnonKey(key string) Option {
	return func(c *httpClient) {
		c.anonKey = key
	}
}

type httpClient struct {
	baseURL string
	anonKey string
	http    *http.Client
	limiter *rate.Limiter
}

// New creates a Client for the given functions base URL.
func New(baseURL string, opts ...Option) Client {
	c := &httpClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(5), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GeneratePayroll invokes the certified-payroll-generate function.
func (c *httpClient) GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) (*GeneratePayrollResponse, error) {
	if req.ProjectID == "" {
		return nil, eris.New("functions: project_id is required")
	}
	if req.WeekEndingDate == "" {
		return nil, eris.New("functions: week_ending_date is required")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "functions: rate limit wait")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, eris.Wrap(err, "functions: marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+generatePayrollPath, bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "functions: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.anonKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.anonKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "functions: generate payroll")
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, eris.Wrap(err, "functions: read response")
	}

	var out GeneratePayrollResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, eris.Wrapf(err, "functions: decode response (status %d)", resp.StatusCode)
	}
	return &out, nil
}
