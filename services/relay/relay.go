// Package relay posts completed form payloads to the third-party relay
// service (Formspree-style). One attempt per submission, no retries.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Sender delivers a flat key-value payload to a relay endpoint.
type Sender interface {
	Send(ctx context.Context, endpoint string, payload url.Values) error
}

// Client is the default HTTP Sender.
type Client struct {
	HTTPClient *http.Client
}

// NewClient creates a relay client with a sane request timeout.
func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// relayErrorBody is the JSON error shape some relay services return.
type relayErrorBody struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Send POSTs the payload form-encoded. Any 2xx status is success. On
// failure the returned error carries the most specific message available:
// the relay's JSON error message, then the raw body, then a generic
// "Form submit failed (status)".
func (c *Client) Send(ctx context.Context, endpoint string, payload url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(payload.Encode()))
	if err != nil {
		return fmt.Errorf("relay: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%s", errorMessage(raw, resp.StatusCode))
}

func errorMessage(raw []byte, status int) string {
	var body relayErrorBody
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Errors) > 0 && body.Errors[0].Message != "" {
		return body.Errors[0].Message
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return fmt.Sprintf("Form submit failed (%d)", status)
}
