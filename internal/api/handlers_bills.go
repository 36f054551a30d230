// Bills BFF - Accounts and Receipt-Parser Aggregation API
// Copyright 2026 Manjula Rathnayaka (manjulaRathnayaka)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/manjulaRathnayaka/choreo-tutorial-hevayo

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/models"
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/validation"
)

// billIDParam parses the {id} route parameter, responding 400 on failure.
// Returns ok=false once the error response has been written.
func billIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := validation.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}

// decodeBillInput decodes and validates the request body, applying payload
// defaults after validation. Returns ok=false once the error response has
// been written; validation failures never reach an upstream.
func decodeBillInput(w http.ResponseWriter, r *http.Request) (models.BillInput, bool) {
	var input models.BillInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return input, false
	}

	if verr := validation.ValidateStruct(&input); verr != nil {
		respondError(w, http.StatusBadRequest, verr.Error())
		return input, false
	}

	input.Normalize()
	return input, true
}

// ListBills returns all bills from the accounts upstream
//
// @Summary List all bills
// @Description Fetches every bill from the accounts service and forwards the array unchanged
// @Tags Bills
// @Produce json
// @Success 200 {array} models.Bill "Bills retrieved successfully"
// @Failure 503 {object} ErrorResponse "Accounts service unavailable"
// @Router /bills [get]
func (h *Handler) ListBills(w http.ResponseWriter, r *http.Request) {
	body, serr := h.bills.ListBills(r.Context())
	if serr != nil {
		respondServiceError(w, serr)
		return
	}
	respondRaw(w, http.StatusOK, body)
}

// GetBill returns a single bill by id
//
// @Summary Get a bill
// @Description Fetches one bill from the accounts service by its numeric id
// @Tags Bills
// @Produce json
// @Param id path int true "Bill ID"
// @Success 200 {object} models.Bill "Bill retrieved successfully"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Router /bills/{id} [get]
func (h *Handler) GetBill(w http.ResponseWriter, r *http.Request) {
	id, ok := billIDParam(w, r)
	if !ok {
		return
	}

	body, serr := h.bills.GetBill(r.Context(), id)
	if serr != nil {
		if serr.StatusCode == http.StatusNotFound {
			respondError(w, http.StatusNotFound, "Bill not found")
			return
		}
		respondServiceError(w, serr)
		return
	}
	respondRaw(w, http.StatusOK, body)
}

// CreateBill creates a new bill
//
// @Summary Create a bill
// @Description Validates the payload and forwards it to the accounts service
// @Tags Bills
// @Accept json
// @Produce json
// @Param bill body models.BillInput true "Bill to create"
// @Success 201 {object} models.CreatedBill "Bill created"
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Router /bills [post]
func (h *Handler) CreateBill(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeBillInput(w, r)
	if !ok {
		return
	}

	body, serr := h.bills.CreateBill(r.Context(), input)
	if serr != nil {
		respondServiceError(w, serr)
		return
	}
	respondRaw(w, http.StatusCreated, body)
}

// UpdateBill replaces an existing bill
//
// @Summary Update a bill
// @Description Validates the payload and forwards the update to the accounts service
// @Tags Bills
// @Accept json
// @Produce json
// @Param id path int true "Bill ID"
// @Param bill body models.BillInput true "New bill contents"
// @Success 200 {object} map[string]string "Update confirmation"
// @Failure 400 {object} ErrorResponse "Invalid id or validation failure"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Router /bills/{id} [put]
func (h *Handler) UpdateBill(w http.ResponseWriter, r *http.Request) {
	id, ok := billIDParam(w, r)
	if !ok {
		return
	}

	input, ok := decodeBillInput(w, r)
	if !ok {
		return
	}

	body, serr := h.bills.UpdateBill(r.Context(), id, input)
	if serr != nil {
		if serr.StatusCode == http.StatusNotFound {
			respondError(w, http.StatusNotFound, "Bill not found")
			return
		}
		respondServiceError(w, serr)
		return
	}
	respondRaw(w, http.StatusOK, body)
}

// DeleteBill removes a bill
//
// @Summary Delete a bill
// @Description Forwards the delete to the accounts service
// @Tags Bills
// @Produce json
// @Param id path int true "Bill ID"
// @Success 200 {object} map[string]string "Delete confirmation"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Router /bills/{id} [delete]
func (h *Handler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	id, ok := billIDParam(w, r)
	if !ok {
		return
	}

	body, serr := h.bills.DeleteBill(r.Context(), id)
	if serr != nil {
		if serr.StatusCode == http.StatusNotFound {
			respondError(w, http.StatusNotFound, "Bill not found")
			return
		}
		respondServiceError(w, serr)
		return
	}
	respondRaw(w, http.StatusOK, body)
}
