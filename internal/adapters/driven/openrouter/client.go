// Package openrouter provides embedding and completion adapters backed by
// the OpenRouter API.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// requestRate is the proactive throttle applied to all outgoing calls.
	// OpenRouter enforces per-key limits; staying under them avoids 429s
	// during batch ingestion.
	requestRate  = 4
	requestBurst = 2
)

// apiError is the OpenRouter error payload.
type apiError struct {
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
}

// client is the shared HTTP layer for the embedding and completion services.
type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	service    string
	limiter    *rate.Limiter
}

func newClient(apiKey, baseURL, service string) *client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		apiKey:     apiKey,
		service:    service,
		limiter:    rate.NewLimiter(rate.Limit(requestRate), requestBurst),
	}
}

// postJSON sends a JSON request and decodes the response into out.
// The credential is checked before any network traffic, and non-success
// responses are classified into domain errors.
func (c *client) postJSON(ctx context.Context, path string, timeout time.Duration, reqBody, out any) error {
	if c.apiKey == "" {
		return domain.ErrAuthRequired
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("openrouter %s (status %d): %w", c.service, resp.StatusCode, domain.ErrAuthRejected)
	}

	if resp.StatusCode != http.StatusOK {
		return &domain.RemoteError{
			Service:    c.service,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// errorMessage extracts the upstream message from an error payload,
// falling back to the raw body.
func errorMessage(body []byte) string {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != nil {
		return apiErr.Error.Message
	}
	return string(body)
}
