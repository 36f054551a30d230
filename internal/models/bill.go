// Bills BFF - Accounts and Receipt-Parser Aggregation API
// Copyright 2026 Manjula Rathnayaka (manjulaRathnayaka)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/manjulaRathnayaka/choreo-tutorial-hevayo

// Package models defines the transient request/response shapes moved between
// the web client and the two upstreams. Nothing here is persisted; the
// authoritative copy of every bill lives in the accounts upstream.
package models

// Bill is a bill as returned by the accounts upstream.
type Bill struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Total       float64    `json:"total"`
	DueDate     string     `json:"due_date"`
	Paid        bool       `json:"paid"`
	Items       []BillItem `json:"items,omitempty"`
	ItemCount   int        `json:"item_count,omitempty"`
	CreatedAt   string     `json:"created_at,omitempty"`
	UpdatedAt   string     `json:"updated_at,omitempty"`
}

// BillItem is a single line item on a bill.
type BillItem struct {
	ID          int64   `json:"id,omitempty"`
	BillID      int64   `json:"bill_id,omitempty"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Quantity    int     `json:"quantity,omitempty" validate:"omitempty,gte=1"`
}

// BillInput is the client-supplied creation/update payload. It is the Bill
// shape minus the server-assigned fields (id, total, item_count, timestamps).
type BillInput struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty"`
	DueDate     string     `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Paid        bool       `json:"paid"`
	Items       []BillItem `json:"items,omitempty" validate:"omitempty,dive"`
}

// Normalize applies payload defaults after validation: item quantity
// defaults to 1 when omitted. Paid already zero-values to false.
func (b *BillInput) Normalize() {
	for i := range b.Items {
		if b.Items[i].Quantity == 0 {
			b.Items[i].Quantity = 1
		}
	}
}

// CreatedBill is the accounts upstream's response to a create call. Only the
// id is read by this system (the create-from-image flow needs it); everything
// else passes through untouched.
type CreatedBill struct {
	ID int64 `json:"id"`
}
