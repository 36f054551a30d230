// Bills BFF - Accounts and Receipt-Parser Aggregation API
// Copyright 2026 Manjula Rathnayaka (manjulaRathnayaka)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/manjulaRathnayaka/choreo-tutorial-hevayo

package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/logging"
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/metrics"
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/models"
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/upstream"
)

// allowedImageExtensions mirrors the parser service's own allowlist.
var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// CreateFromImageResponse is the create-bill-from-image success body.
type CreateFromImageResponse struct {
	Message    string          `json:"message"`
	BillID     int64           `json:"billId"`
	ParsedData json.RawMessage `json:"parsedData"`
}

// readImageUpload extracts and bounds-checks the uploaded image. The size cap
// and media-type allowlist are enforced here, before any upstream call.
// Returns ok=false once the error response has been written.
func (h *Handler) readImageUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	maxBytes := h.config.Upload.MaxBytes
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			metrics.RecordUploadRejection("too_large")
			respondError(w, http.StatusBadRequest, "Image file too large")
			return nil, "", false
		}
		// Not a multipart request at all
		metrics.RecordUploadRejection("missing")
		respondError(w, http.StatusBadRequest, "No image file provided")
		return nil, "", false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		metrics.RecordUploadRejection("missing")
		respondError(w, http.StatusBadRequest, "No image file provided")
		return nil, "", false
	}
	defer file.Close() //nolint:errcheck // read-only temp file

	if !isImageUpload(header) {
		metrics.RecordUploadRejection("not_image")
		respondError(w, http.StatusBadRequest, "File must be an image (jpg, jpeg, png)")
		return nil, "", false
	}

	image, err := io.ReadAll(file)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to read uploaded image")
		respondError(w, http.StatusBadRequest, "Failed to read image file")
		return nil, "", false
	}

	return image, header.Filename, true
}

// isImageUpload accepts an image/* part content type or an allowlisted
// file extension.
func isImageUpload(header *multipart.FileHeader) bool {
	if strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return true
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	return allowedImageExtensions[ext]
}

// ParseBill runs an uploaded receipt image through the parser upstream
//
// @Summary Parse a receipt image
// @Description Uploads the image to the bill-parser service and forwards the parsed receipt unchanged
// @Tags Parser
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Receipt image (jpg, jpeg, png, max 5 MiB)"
// @Success 200 {object} models.ParsedReceipt "Parsed receipt"
// @Failure 400 {object} ErrorResponse "Missing or invalid image"
// @Failure 503 {object} ErrorResponse "Parser service unavailable"
// @Router /parser/parse-bill [post]
func (h *Handler) ParseBill(w http.ResponseWriter, r *http.Request) {
	image, filename, ok := h.readImageUpload(w, r)
	if !ok {
		return
	}

	body, serr := h.parser.ParseBillImage(r.Context(), image, filename)
	if serr != nil {
		respondServiceError(w, serr)
		return
	}
	respondRaw(w, http.StatusOK, body)
}

// CreateBillFromImage parses a receipt image and creates a bill from it
//
// @Summary Create a bill from a receipt image
// @Description Parses the image via the bill-parser service, maps the receipt to a bill payload, and creates the bill in the accounts service
// @Tags Parser
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Receipt image (jpg, jpeg, png, max 5 MiB)"
// @Param title formData string false "Bill title (defaults to \"Bill from receipt image\")"
// @Success 201 {object} CreateFromImageResponse "Bill created from receipt"
// @Failure 400 {object} ErrorResponse "Missing or invalid image"
// @Failure 503 {object} ErrorResponse "Upstream service unavailable"
// @Router /parser/create-bill-from-image [post]
func (h *Handler) CreateBillFromImage(w http.ResponseWriter, r *http.Request) {
	image, filename, ok := h.readImageUpload(w, r)
	if !ok {
		return
	}

	parsedRaw, serr := h.parser.ParseBillImage(r.Context(), image, filename)
	if serr != nil {
		respondServiceError(w, serr)
		return
	}

	// This flow must read the receipt to build the bill, so a malformed
	// parser body cannot pass through.
	var parsed models.ParsedReceipt
	if err := json.Unmarshal(parsedRaw, &parsed); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("parser returned malformed receipt body")
		respondServiceError(w, upstream.NormalizeDispatchError(err))
		return
	}

	input := models.BillInputFromReceipt(parsed, r.FormValue("title"))
	input.Normalize()

	createdRaw, serr := h.bills.CreateBill(r.Context(), input)
	if serr != nil {
		respondServiceError(w, serr)
		return
	}

	var created models.CreatedBill
	if err := json.Unmarshal(createdRaw, &created); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("accounts returned malformed create body")
		respondServiceError(w, upstream.NormalizeDispatchError(err))
		return
	}

	respondJSON(w, http.StatusCreated, CreateFromImageResponse{
		Message:    "Bill created successfully from receipt",
		BillID:     created.ID,
		ParsedData: parsedRaw,
	})
}
