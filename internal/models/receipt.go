// Bills BFF - Accounts and Receipt-Parser Aggregation API
// Copyright 2026 Manjula Rathnayaka (manjulaRathnayaka)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/manjulaRathnayaka/choreo-tutorial-hevayo

package models

import "time"

// ParsedReceipt is the bill-parser upstream's result for one image.
type ParsedReceipt struct {
	Items    []ParsedReceiptItem `json:"items"`
	Total    float64             `json:"total"`
	Currency string              `json:"currency,omitempty"`
	Date     string              `json:"date,omitempty"`
	Merchant string              `json:"merchant,omitempty"`
}

// ParsedReceiptItem is one recognized line on a receipt.
type ParsedReceiptItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Default values used when the parser result or the client omits a field.
const (
	DefaultReceiptTitle   = "Bill from receipt image"
	unknownMerchant       = "Unknown merchant"
	receiptDescriptionTag = "Created from receipt: "
)

// BillInputFromReceipt maps a parsed receipt to a bill-creation payload.
// The mapping is fixed: missing title falls back to DefaultReceiptTitle,
// missing merchant to "Unknown merchant", missing date to today, and every
// receipt item becomes a bill item with its price as the amount.
func BillInputFromReceipt(parsed ParsedReceipt, title string) BillInput {
	if title == "" {
		title = DefaultReceiptTitle
	}

	merchant := parsed.Merchant
	if merchant == "" {
		merchant = unknownMerchant
	}

	dueDate := parsed.Date
	if dueDate == "" {
		dueDate = time.Now().Format("2006-01-02")
	}

	items := make([]BillItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		items = append(items, BillItem{
			Name:        it.Name,
			Description: "",
			Amount:      it.Price,
			Quantity:    it.Quantity,
		})
	}

	return BillInput{
		Title:       title,
		Description: receiptDescriptionTag + merchant,
		DueDate:     dueDate,
		Paid:        false,
		Items:       items,
	}
}
