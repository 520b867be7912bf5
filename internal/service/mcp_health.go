package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"workspace-backend/internal/database/models"
)

// ProbeResult is the outcome of a single MCP server connection test
type ProbeResult struct {
	Status    models.MCPConnectionStatus `json:"status"`
	Message   string                     `json:"message"`
	LatencyMs int64                      `json:"latencyMs"`
}

// Success reports whether the server answered with a 2xx status
func (r ProbeResult) Success() bool {
	return r.Status == models.MCPStatusConnected
}

// MCPHealthChecker probes the health endpoint of MCP servers
type MCPHealthChecker struct {
	httpClient *http.Client
}

// NewMCPHealthChecker creates a checker whose probes give up after timeout
func NewMCPHealthChecker(timeout time.Duration) *MCPHealthChecker {
	return &MCPHealthChecker{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// HealthURL returns the URL probed for a server: the URL itself when it already
// ends in /health, otherwise the URL with /health appended
func HealthURL(rawURL string) string {
	if strings.HasSuffix(rawURL, "/health") {
		return rawURL
	}
	return strings.TrimRight(rawURL, "/") + "/health"
}

// Check issues one GET against the server's health endpoint. Failures are
// reported in the result, never as an error.
func (h *MCPHealthChecker) Check(ctx context.Context, rawURL string) ProbeResult {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, HealthURL(rawURL), nil)
	if err != nil {
		return ProbeResult{
			Status:  models.MCPStatusDisconnected,
			Message: err.Error(),
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.httpClient.Do(req)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return ProbeResult{
			Status:    models.MCPStatusDisconnected,
			Message:   err.Error(),
			LatencyMs: latency,
		}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return ProbeResult{
			Status:    models.MCPStatusConnected,
			Message:   fmt.Sprintf("Connected successfully (%dms)", latency),
			LatencyMs: latency,
		}
	}

	return ProbeResult{
		Status:    models.MCPStatusError,
		Message:   fmt.Sprintf("Server responded with status %d", resp.StatusCode),
		LatencyMs: latency,
	}
}
