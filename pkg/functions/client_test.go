package functions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePayroll_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/certified-payroll-generate", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req GeneratePayrollRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "prj-hwy12", req.ProjectID)
		assert.Equal(t, "2026-08-22", req.WeekEndingDate)

		json.NewEncoder(w).Encode(GeneratePayrollResponse{Success: true, PayrollNumber: "CP-2026-032"})
	}))
	defer srv.Close()

	c := New(srv.URL, WithAnonKey("test-key"), WithRateLimit(100))
	resp, err := c.GeneratePayroll(context.Background(), GeneratePayrollRequest{
		ProjectID:      "prj-hwy12",
		WeekEndingDate: "2026-08-22",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "CP-2026-032", resp.PayrollNumber)
}

func TestGeneratePayroll_FunctionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(GeneratePayrollResponse{Success: false, Error: "no hours recorded for week"})
	}))
	defer srv.Close()

	c := New(srv.URL, WithRateLimit(100))
	resp, err := c.GeneratePayroll(context.Background(), GeneratePayrollRequest{
		ProjectID:      "prj-hwy12",
		WeekEndingDate: "2026-08-22",
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "no hours recorded for week", resp.Error)
}

func TestGeneratePayroll_MissingFields(t *testing.T) {
	c := New("http://unused")

	_, err := c.GeneratePayroll(context.Background(), GeneratePayrollRequest{WeekEndingDate: "2026-08-22"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project_id is required")

	_, err = c.GeneratePayroll(context.Background(), GeneratePayrollRequest{ProjectID: "prj-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "week_ending_date is required")
}

func TestGeneratePayroll_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, WithRateLimit(100))
	_, err := c.GeneratePayroll(context.Background(), GeneratePayrollRequest{
		ProjectID:      "prj-1",
		WeekEndingDate: "2026-08-22",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}
