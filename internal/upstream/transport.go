// Bills BFF - Accounts and Receipt-Parser Aggregation API
// Copyright 2026 Manjula Rathnayaka (manjulaRathnayaka)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/manjulaRathnayaka/choreo-tutorial-hevayo

package upstream

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/config"
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/logging"
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/metrics"
)

// callResult carries an upstream response through the circuit breaker.
type callResult struct {
	status int
	body   []byte
}

// upstreamStatusError marks a 5xx upstream response inside the breaker so it
// counts toward the failure rate. 4xx responses do not trip the breaker:
// a client asking for a missing bill is not an upstream outage.
type upstreamStatusError struct {
	status int
	body   []byte
}

func (e *upstreamStatusError) Error() string {
	return "upstream returned status " + http.StatusText(e.status)
}

// caller is the shared HTTP transport for one upstream: a bounded-timeout
// http.Client behind a circuit breaker, with per-call Prometheus
// instrumentation. Both clients in this package delegate to it.
type caller struct {
	name    string
	baseURL string
	http    *http.Client
	cb      *gobreaker.CircuitBreaker[*callResult]
}

// newCaller builds a caller for the given upstream. The base URL is
// normalized to carry no trailing slash so path joining stays predictable.
func newCaller(name string, cfg config.UpstreamConfig) *caller {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[*callResult](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,           // Allow 3 concurrent requests in half-open state
		Interval:    time.Minute, // Reset counts after 1 minute in closed state
		Timeout:     30 * time.Second,

		// Opens when failure rate >= 60% with minimum 10 requests
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().
					Str("upstream", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().
				Str("upstream", name).
				Str("from", fromStr).
				Str("to", toStr).
				Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &caller{
		name:    name,
		baseURL: strings.TrimRight(cfg.URL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		cb:      cb,
	}
}

// do issues one request against the upstream and classifies the outcome:
// success bodies return as raw JSON, everything else as a *ServiceError.
// No retries; a failed call surfaces immediately.
func (c *caller) do(ctx context.Context, operation, method, path string, body []byte, contentType string) (json.RawMessage, *ServiceError) {
	start := time.Now()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		metrics.RecordUpstreamRequest(c.name, operation, "dispatch_error", time.Since(start))
		logging.Ctx(ctx).Error().Err(err).
			Str("upstream", c.name).
			Str("operation", operation).
			Msg("failed to build upstream request")
		return nil, NormalizeDispatchError(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	result, err := c.cb.Execute(func() (*callResult, error) {
		resp, doErr := c.http.Do(req)
		if doErr != nil {
			return nil, doErr
		}
		defer resp.Body.Close() //nolint:errcheck // read side already consumed

		data, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, readErr
		}

		if resp.StatusCode >= 500 {
			return nil, &upstreamStatusError{status: resp.StatusCode, body: data}
		}

		return &callResult{status: resp.StatusCode, body: data}, nil
	})

	duration := time.Since(start)

	if err != nil {
		var statusErr *upstreamStatusError
		switch {
		case errors.As(err, &statusErr):
			metrics.RecordUpstreamRequest(c.name, operation, "http_error", duration)
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "failure").Inc()
			logging.Ctx(ctx).Warn().
				Str("upstream", c.name).
				Str("operation", operation).
				Int("status", statusErr.status).
				Msg("upstream returned error status")
			return nil, NormalizeHTTPError(statusErr.status, statusErr.body)

		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			// The breaker opened because the upstream stopped responding, so
			// a rejected call classifies the same way as no response.
			metrics.RecordUpstreamRequest(c.name, operation, "unavailable", duration)
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "rejected").Inc()
			logging.Ctx(ctx).Warn().Err(err).
				Str("upstream", c.name).
				Str("operation", operation).
				Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, NormalizeUnavailable()

		default:
			// Sent but no usable response: timeout, reset, DNS failure
			metrics.RecordUpstreamRequest(c.name, operation, "unavailable", duration)
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "failure").Inc()
			logging.Ctx(ctx).Warn().Err(err).
				Str("upstream", c.name).
				Str("operation", operation).
				Msg("no response from upstream")
			return nil, NormalizeUnavailable()
		}
	}

	metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()

	if result.status < 200 || result.status > 299 {
		metrics.RecordUpstreamRequest(c.name, operation, "http_error", duration)
		logging.Ctx(ctx).Debug().
			Str("upstream", c.name).
			Str("operation", operation).
			Int("status", result.status).
			Msg("upstream returned error status")
		return nil, NormalizeHTTPError(result.status, result.body)
	}

	metrics.RecordUpstreamRequest(c.name, operation, "success", duration)
	return json.RawMessage(result.body), nil
}

// available reports whether the breaker currently admits requests.
func (c *caller) available() bool {
	return c.cb.State() != gobreaker.StateOpen
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
