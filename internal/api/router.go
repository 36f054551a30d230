// Bills BFF - Accounts and Receipt-Parser Aggregation API
// Copyright 2026 Manjula Rathnayaka (manjulaRathnayaka)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/manjulaRathnayaka/choreo-tutorial-hevayo

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/config"
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/middleware"
)

// NewRouter wires the full HTTP surface onto a Chi router.
func NewRouter(h *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware stack, applied to all routes in order
	r.Use(middleware.RequestID) // X-Request-ID header plus logging context
	r.Use(chimiddleware.RealIP) // Extract real IP from X-Forwarded-For
	r.Use(middleware.Recover)   // Panics become JSON 500s
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow))
	r.Use(middleware.PrometheusMetrics)

	// Unmatched routes answer in the same error vocabulary as everything else
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Bills (accounts upstream)
	r.Route("/bills", func(r chi.Router) {
		r.Get("/", h.ListBills)
		r.Post("/", h.CreateBill)
		r.Get("/{id}", h.GetBill)
		r.Put("/{id}", h.UpdateBill)
		r.Delete("/{id}", h.DeleteBill)
	})

	// Parser (bill-parser upstream)
	r.Route("/parser", func(r chi.Router) {
		r.Post("/parse-bill", h.ParseBill)
		r.Post("/create-bill-from-image", h.CreateBillFromImage)
	})

	// Health
	r.Get("/health", h.Health)
	r.Get("/health/live", h.HealthLive)

	// Observability
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
	))

	return r
}
