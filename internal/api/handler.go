// Bills BFF - Accounts and Receipt-Parser Aggregation API
// Copyright 2026 Manjula Rathnayaka (manjulaRathnayaka)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/manjulaRathnayaka/choreo-tutorial-hevayo

// Package api provides the HTTP handlers and Chi routing for the BFF.
package api

import (
	"context"
	"time"

	json "github.com/goccy/go-json"

	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/config"
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/models"
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/upstream"
)

// BillsService is the accounts upstream surface the handlers depend on.
// Satisfied by *upstream.AccountsClient; tests substitute their own.
type BillsService interface {
	ListBills(ctx context.Context) (json.RawMessage, *upstream.ServiceError)
	GetBill(ctx context.Context, id int64) (json.RawMessage, *upstream.ServiceError)
	CreateBill(ctx context.Context, input models.BillInput) (json.RawMessage, *upstream.ServiceError)
	UpdateBill(ctx context.Context, id int64, input models.BillInput) (json.RawMessage, *upstream.ServiceError)
	DeleteBill(ctx context.Context, id int64) (json.RawMessage, *upstream.ServiceError)
	Available() bool
}

// ReceiptParser is the bill-parser upstream surface the handlers depend on.
type ReceiptParser interface {
	ParseBillImage(ctx context.Context, image []byte, filename string) (json.RawMessage, *upstream.ServiceError)
	Available() bool
}

// Handler holds the injected upstream clients and serves all routes.
// Clients are constructed once at startup and passed in, so tests can swap
// them without touching global state.
type Handler struct {
	bills     BillsService
	parser    ReceiptParser
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a Handler with the given upstream clients.
func NewHandler(bills BillsService, parser ReceiptParser, cfg *config.Config) *Handler {
	return &Handler{
		bills:     bills,
		parser:    parser,
		config:    cfg,
		startTime: time.Now(),
	}
}
