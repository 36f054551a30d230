// Bills BFF - Accounts and Receipt-Parser Aggregation API
// Copyright 2026 Manjula Rathnayaka (manjulaRathnayaka)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/manjulaRathnayaka/choreo-tutorial-hevayo

package models

// HealthStatus is the /health response.
type HealthStatus struct {
	Status    string          `json:"status"`
	Message   string          `json:"message"`
	Uptime    string          `json:"uptime,omitempty"`
	Upstreams map[string]bool `json:"upstreams,omitempty"`
}
