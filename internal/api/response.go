// Bills BFF - Accounts and Receipt-Parser Aggregation API
// Copyright 2026 Manjula Rathnayaka (manjulaRathnayaka)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/manjulaRathnayaka/choreo-tutorial-hevayo

package api

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/logging"
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/upstream"
)

// ErrorResponse is the uniform error body for every failure the BFF emits.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondRaw forwards an upstream body byte-for-byte. Upstream success
// payloads are never re-encoded or validated on the way through.
func respondRaw(w http.ResponseWriter, status int, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Error().Err(err).Msg("failed to write response")
	}
}

// respondJSON marshals and sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		//nolint:errcheck // HTTP response write errors are not recoverable
		w.Write([]byte(`{"error":"Internal Server Error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("failed to write JSON response")
	}
}

// respondError sends the uniform `{"error": message}` body.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError surfaces a normalized upstream failure with its own
// status code and message. Handlers that remap a status (the 404 bill
// override) must check before calling this.
func respondServiceError(w http.ResponseWriter, serr *upstream.ServiceError) {
	respondError(w, serr.StatusCode, serr.Message)
}
