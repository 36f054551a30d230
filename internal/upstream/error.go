// Bills BFF - Accounts and Receipt-Parser Aggregation API
// Copyright 2026 Manjula Rathnayaka (manjulaRathnayaka)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/manjulaRathnayaka/choreo-tutorial-hevayo

// Package upstream contains the clients for the two backend services the BFF
// aggregates (the accounts/bills store and the image bill parser) and the
// error normalizer that maps their heterogeneous failures into one shape.
//
// Every remote operation returns (json.RawMessage, *ServiceError). Success
// bodies pass through byte-for-byte; failures are always a *ServiceError, so
// the three-way classification below is enforced at the signature level
// rather than by convention.
package upstream

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// ServiceError is the normalized form of every upstream failure. Its
// StatusCode is what the end client ultimately sees, subject to handler-level
// 404 remapping.
type ServiceError struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("upstream error %d: %s", e.StatusCode, e.Message)
}

// NormalizeHTTPError classifies a non-2xx upstream response: the status is
// forwarded as-is, the message is the body's "error" field when present
// (else "Service error"), and the full body rides along as details.
func NormalizeHTTPError(status int, body []byte) *ServiceError {
	message := "Service error"
	var details interface{}

	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err == nil {
		if msg, ok := decoded["error"].(string); ok && msg != "" {
			message = msg
		}
		details = decoded
	} else {
		// Non-JSON body rides along as a raw string
		details = string(body)
	}

	return &ServiceError{
		StatusCode: status,
		Message:    message,
		Details:    details,
	}
}

// NormalizeUnavailable covers the sent-but-no-response case: timeout,
// connection reset, DNS failure, or an open circuit breaker.
func NormalizeUnavailable() *ServiceError {
	return &ServiceError{
		StatusCode: 503,
		Message:    "Service unavailable",
		Details:    "No response received from service",
	}
}

// NormalizeDispatchError covers local failures before transmission, such as
// a request that could not be constructed or a payload that failed to encode.
func NormalizeDispatchError(err error) *ServiceError {
	return &ServiceError{
		StatusCode: 500,
		Message:    "Error connecting to service",
		Details:    err.Error(),
	}
}
