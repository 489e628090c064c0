package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/storefront-core/internal/platform/logging"
)

// jitterFraction is the randomization applied to each backoff delay (±25%).
const jitterFraction = 0.25

// maxRetryAfter caps how long a gateway Retry-After header can hold a
// publish before the next attempt.
const maxRetryAfter = 30 * time.Second

// doWithRetry sends req with exponential backoff between attempts. Request
// bodies are buffered so every attempt replays the same event batch. The
// final attempt's response is written to resp with its body intact even
// when its status is retryable; the caller closes it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.MaxAttempts <= 0 {
		return fmt.Errorf("httpclient: retry.max_attempts must be >= 1, got %d", c.retry.MaxAttempts)
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	attempt := 0
	send := func() (*http.Response, error) {
		attempt++
		resetRequestBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if !isRetryableStatus(r.StatusCode) {
			return r, nil
		}

		statusErr := fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == c.retry.MaxAttempts {
			return r, statusErr
		}
		wait, hinted := retryAfter(r)
		drainResponseBody(r)
		if hinted {
			return nil, errors.Join(statusErr, &backoff.RetryAfterError{Duration: wait})
		}
		return nil, statusErr
	}

	r, err := backoff.Retry(ctx, send,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(uint(c.retry.MaxAttempts)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, delay time.Duration) {
			logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
				slog.String("operation", "httpclient.Do"),
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
				slog.String("peer_service", c.serviceName),
				slog.Int("attempt", attempt+1),
				slog.Int("max_attempts", c.retry.MaxAttempts),
				slog.Duration("backoff", delay),
				slog.Any("error", err),
			)
		}),
	)
	*resp = r
	return err
}

// newBackOff builds the per-request backoff policy from config.
func (c *Client) newBackOff() *backoff.ExponentialBackOff {
	return &backoff.ExponentialBackOff{
		InitialInterval:     c.retry.InitialInterval,
		RandomizationFactor: jitterFraction,
		Multiplier:          c.retry.Multiplier,
		MaxInterval:         c.retry.MaxInterval,
	}
}

// retryAfter reads a Retry-After header given in seconds, capped at
// maxRetryAfter. HTTP-date values are ignored in favor of normal backoff.
func retryAfter(r *http.Response) (time.Duration, bool) {
	v := r.Header.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0, false
	}
	return min(time.Duration(secs)*time.Second, maxRetryAfter), true
}

// bufferRequestBody reads and closes the request body so it can be replayed.
// It returns nil for a request without a body.
func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()
	return b, nil
}

func resetRequestBody(req *http.Request, b []byte) {
	if b == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(b))
	req.ContentLength = int64(len(b))
}

// drainResponseBody discards the body so the connection can be reused.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final; anything else, including network
// errors, is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether the gateway asked to try again: 429 or
// any 5xx.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
