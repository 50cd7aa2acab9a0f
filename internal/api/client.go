// Package api is the client for the waste-collection REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"wastedesk/internal/credstore"
)

var (
	// ErrUnauthorized is returned when an authenticated call comes back
	// 401 or 403. The session layer treats it as cause to invalidate the
	// local session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAuthRejected is returned by ExchangeToken when the server declines
	// the credentials and issues no token.
	ErrAuthRejected = errors.New("credentials rejected")
)

// Client talks to the remote API. Every authenticated request carries the
// token currently held by the credential store as a bearer header, read at
// request time so a re-login takes effect immediately.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      *credstore.Store
	logger     *zap.Logger
}

// NewClient creates a new API client.
func NewClient(baseURL string, timeout time.Duration, creds *credstore.Store, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		creds:  creds,
		logger: logger,
	}
}

// do performs an authenticated JSON request. body is marshaled when non-nil;
// the response body is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok, ok := c.creds.Read(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to reach API", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to reach API: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: API returned status %d", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode >= 400:
		c.logger.Error("API returned non-OK status", zap.String("path", path), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode API response: %w", err)
		}
	}
	return nil
}
