package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of a failed response body is kept on StatusError.
const maxErrorBody = 512

// StatusError is returned by PostJSON when the downstream answers with a
// status of 400 or above.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("downstream returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("downstream returned status %d: %s", e.StatusCode, e.Body)
}

// PostJSON encodes payload as JSON and POSTs it to BaseURL+path. The response
// body is drained and closed.
func (c *Client) PostJSON(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	url := strings.TrimRight(c.baseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Do(ctx, req)
	if resp != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	if err != nil {
		return fmt.Errorf("posting to %s: %w", path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
