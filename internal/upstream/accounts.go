// Bills BFF - Accounts and Receipt-Parser Aggregation API
// Copyright 2026 Manjula Rathnayaka (manjulaRathnayaka)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/manjulaRathnayaka/choreo-tutorial-hevayo

package upstream

import (
	"context"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/config"
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/models"
)

// AccountsClient is the accounts/bills upstream. Success bodies pass through
// unchanged; every failure is a *ServiceError. An upstream 404 propagates as
// ServiceError{StatusCode: 404} for the handlers to remap.
type AccountsClient struct {
	caller *caller
}

// NewAccountsClient constructs a client against the accounts upstream base URL.
func NewAccountsClient(cfg config.UpstreamConfig) *AccountsClient {
	return &AccountsClient{
		caller: newCaller("accounts", cfg),
	}
}

// Available reports whether the upstream's circuit breaker admits requests.
func (a *AccountsClient) Available() bool {
	return a.caller.available()
}

// ListBills fetches all bills.
func (a *AccountsClient) ListBills(ctx context.Context) (json.RawMessage, *ServiceError) {
	return a.caller.do(ctx, "list_bills", http.MethodGet, "/bills", nil, "")
}

// GetBill fetches one bill by id.
func (a *AccountsClient) GetBill(ctx context.Context, id int64) (json.RawMessage, *ServiceError) {
	return a.caller.do(ctx, "get_bill", http.MethodGet, fmt.Sprintf("/bills/%d", id), nil, "")
}

// CreateBill creates a bill and returns the upstream's `{id}` body.
func (a *AccountsClient) CreateBill(ctx context.Context, input models.BillInput) (json.RawMessage, *ServiceError) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, NormalizeDispatchError(err)
	}
	return a.caller.do(ctx, "create_bill", http.MethodPost, "/bills", body, "application/json")
}

// UpdateBill replaces a bill and returns the upstream's `{message}` body.
func (a *AccountsClient) UpdateBill(ctx context.Context, id int64, input models.BillInput) (json.RawMessage, *ServiceError) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, NormalizeDispatchError(err)
	}
	return a.caller.do(ctx, "update_bill", http.MethodPut, fmt.Sprintf("/bills/%d", id), body, "application/json")
}

// DeleteBill removes a bill and returns the upstream's `{message}` body.
func (a *AccountsClient) DeleteBill(ctx context.Context, id int64) (json.RawMessage, *ServiceError) {
	return a.caller.do(ctx, "delete_bill", http.MethodDelete, fmt.Sprintf("/bills/%d", id), nil, "")
}
