// Bills BFF - Accounts and Receipt-Parser Aggregation API
// Copyright 2026 Manjula Rathnayaka (manjulaRathnayaka)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/manjulaRathnayaka/choreo-tutorial-hevayo

package api

import (
	"net/http"
	"time"

	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/models"
)

// Health handles health check requests
//
// @Summary Get service health status
// @Description Returns the BFF status, uptime, and whether each upstream's circuit breaker currently admits requests
// @Tags Core
// @Produce json
// @Success 200 {object} models.HealthStatus "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	// Upstream booleans reflect circuit breaker state, not an active probe:
	// the BFF holds no connections to ping.
	upstreams := map[string]bool{
		"accounts": h.bills != nil && h.bills.Available(),
		"parser":   h.parser != nil && h.parser.Available(),
	}

	respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:    "UP",
		Message:   "Bills BFF is running",
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Upstreams: upstreams,
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Liveness probe
// @Description Returns 200 OK if the process is alive, regardless of upstream state
// @Tags Core
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}
