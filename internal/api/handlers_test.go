// Bills BFF - Accounts and Receipt-Parser Aggregation API
// Copyright 2026 Manjula Rathnayaka (manjulaRathnayaka)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/manjulaRathnayaka/choreo-tutorial-hevayo

package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/config"
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/models"
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/upstream"
)

// ===================================================================================================
// Mocks
// ===================================================================================================

type mockBills struct {
	listFn   func(ctx context.Context) (json.RawMessage, *upstream.ServiceError)
	getFn    func(ctx context.Context, id int64) (json.RawMessage, *upstream.ServiceError)
	createFn func(ctx context.Context, input models.BillInput) (json.RawMessage, *upstream.ServiceError)
	updateFn func(ctx context.Context, id int64, input models.BillInput) (json.RawMessage, *upstream.ServiceError)
	deleteFn func(ctx context.Context, id int64) (json.RawMessage, *upstream.ServiceError)

	calls int
}

func (m *mockBills) ListBills(ctx context.Context) (json.RawMessage, *upstream.ServiceError) {
	m.calls++
	return m.listFn(ctx)
}

func (m *mockBills) GetBill(ctx context.Context, id int64) (json.RawMessage, *upstream.ServiceError) {
	m.calls++
	return m.getFn(ctx, id)
}

func (m *mockBills) CreateBill(ctx context.Context, input models.BillInput) (json.RawMessage, *upstream.ServiceError) {
	m.calls++
	return m.createFn(ctx, input)
}

func (m *mockBills) UpdateBill(ctx context.Context, id int64, input models.BillInput) (json.RawMessage, *upstream.ServiceError) {
	m.calls++
	return m.updateFn(ctx, id, input)
}

func (m *mockBills) DeleteBill(ctx context.Context, id int64) (json.RawMessage, *upstream.ServiceError) {
	m.calls++
	return m.deleteFn(ctx, id)
}

func (m *mockBills) Available() bool { return true }

type mockParser struct {
	parseFn func(ctx context.Context, image []byte, filename string) (json.RawMessage, *upstream.ServiceError)

	calls int
}

func (m *mockParser) ParseBillImage(ctx context.Context, image []byte, filename string) (json.RawMessage, *upstream.ServiceError) {
	m.calls++
	return m.parseFn(ctx, image, filename)
}

func (m *mockParser) Available() bool { return true }

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 3001, Environment: "development"},
		Upload: config.UploadConfig{MaxBytes: 5 << 20},
		Security: config.SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
		},
	}
}

func newTestRouter(bills BillsService, parser ReceiptParser, cfg *config.Config) http.Handler {
	if cfg == nil {
		cfg = testConfig()
	}
	return NewRouter(NewHandler(bills, parser, cfg), cfg)
}

func doRequest(t *testing.T, router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response %q is not an error body: %v", rec.Body.String(), err)
	}
	return body.Error
}

// multipartImage builds a multipart body with an "image" part and optional
// extra form fields.
func multipartImage(t *testing.T, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if filename != "" {
		part, err := writer.CreateFormFile("image", filename)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%s): %v", k, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

// ===================================================================================================
// Bills Handler Tests
// ===================================================================================================

func TestListBills_PassThrough(t *testing.T) {
	upstreamBody := `[{"id":1,"title":"Rent"}]`
	bills := &mockBills{
		listFn: func(ctx context.Context) (json.RawMessage, *upstream.ServiceError) {
			return json.RawMessage(upstreamBody), nil
		},
	}
	router := newTestRouter(bills, &mockParser{}, nil)

	rec := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/bills", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != upstreamBody {
		t.Errorf("body = %s, want byte-for-byte pass-through", rec.Body.String())
	}
}

func TestGetBill_InvalidID_NoUpstreamCall(t *testing.T) {
	bills := &mockBills{
		getFn: func(ctx context.Context, id int64) (json.RawMessage, *upstream.ServiceError) {
			return json.RawMessage(`{}`), nil
		},
	}
	router := newTestRouter(bills, &mockParser{}, nil)

	for _, id := range []string{"abc", "1.5", "12x"} {
		rec := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/bills/"+id, nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("id %q: status = %d, want 400", id, rec.Code)
		}
	}
	if bills.calls != 0 {
		t.Errorf("upstream called %d times, want 0 for invalid ids", bills.calls)
	}
}

func TestGetBill_404Override(t *testing.T) {
	bills := &mockBills{
		getFn: func(ctx context.Context, id int64) (json.RawMessage, *upstream.ServiceError) {
			return nil, &upstream.ServiceError{StatusCode: 404, Message: "no such record in store"}
		},
	}
	router := newTestRouter(bills, &mockParser{}, nil)

	rec := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/bills/99", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	// Fixed message regardless of the upstream's own text
	if got := errorBody(t, rec); got != "Bill not found" {
		t.Errorf("error = %q, want %q", got, "Bill not found")
	}
}

func TestGetBill_ForwardsOtherServiceErrors(t *testing.T) {
	bills := &mockBills{
		getFn: func(ctx context.Context, id int64) (json.RawMessage, *upstream.ServiceError) {
			return nil, &upstream.ServiceError{StatusCode: 503, Message: "Service unavailable"}
		},
	}
	router := newTestRouter(bills, &mockParser{}, nil)

	rec := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/bills/1", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if got := errorBody(t, rec); got != "Service unavailable" {
		t.Errorf("error = %q, want normalized message verbatim", got)
	}
}

func TestCreateBill_MissingTitle_NoUpstreamCall(t *testing.T) {
	bills := &mockBills{
		createFn: func(ctx context.Context, input models.BillInput) (json.RawMessage, *upstream.ServiceError) {
			return json.RawMessage(`{"id":1}`), nil
		},
	}
	router := newTestRouter(bills, &mockParser{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/bills", strings.NewReader(`{"due_date":"2025-03-15"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(t, router, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); !strings.Contains(got, "title is required") {
		t.Errorf("error = %q, want title violation", got)
	}
	if bills.calls != 0 {
		t.Errorf("upstream called %d times, want 0 on validation failure", bills.calls)
	}
}

func TestCreateBill_Success(t *testing.T) {
	var received models.BillInput
	bills := &mockBills{
		createFn: func(ctx context.Context, input models.BillInput) (json.RawMessage, *upstream.ServiceError) {
			received = input
			return json.RawMessage(`{"id":2}`), nil
		},
	}
	router := newTestRouter(bills, &mockParser{}, nil)

	payload := `{"title":"New Bill","items":[{"name":"Item 1","amount":10.99,"quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/bills", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(t, router, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if rec.Body.String() != `{"id":2}` {
		t.Errorf("body = %s, want {\"id\":2}", rec.Body.String())
	}
	if received.Title != "New Bill" || len(received.Items) != 1 || received.Items[0].Quantity != 2 {
		t.Errorf("upstream received %+v, want validated input", received)
	}
}

func TestCreateBill_InvalidJSON(t *testing.T) {
	bills := &mockBills{
		createFn: func(ctx context.Context, input models.BillInput) (json.RawMessage, *upstream.ServiceError) {
			return nil, nil
		},
	}
	router := newTestRouter(bills, &mockParser{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/bills", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(t, router, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if bills.calls != 0 {
		t.Error("upstream called for malformed JSON payload")
	}
}

func TestUpdateBill_404Override(t *testing.T) {
	bills := &mockBills{
		updateFn: func(ctx context.Context, id int64, input models.BillInput) (json.RawMessage, *upstream.ServiceError) {
			return nil, &upstream.ServiceError{StatusCode: 404, Message: "gone"}
		},
	}
	router := newTestRouter(bills, &mockParser{}, nil)

	req := httptest.NewRequest(http.MethodPut, "/bills/5", strings.NewReader(`{"title":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(t, router, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := errorBody(t, rec); got != "Bill not found" {
		t.Errorf("error = %q, want %q", got, "Bill not found")
	}
}

func TestDeleteBill_404Override(t *testing.T) {
	bills := &mockBills{
		deleteFn: func(ctx context.Context, id int64) (json.RawMessage, *upstream.ServiceError) {
			return nil, &upstream.ServiceError{StatusCode: 404, Message: "gone"}
		},
	}
	router := newTestRouter(bills, &mockParser{}, nil)

	rec := doRequest(t, router, httptest.NewRequest(http.MethodDelete, "/bills/5", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := errorBody(t, rec); got != "Bill not found" {
		t.Errorf("error = %q, want %q", got, "Bill not found")
	}
}

func TestDeleteBill_Success(t *testing.T) {
	bills := &mockBills{
		deleteFn: func(ctx context.Context, id int64) (json.RawMessage, *upstream.ServiceError) {
			if id != 3 {
				t.Errorf("id = %d, want 3", id)
			}
			return json.RawMessage(`{"message":"Bill deleted"}`), nil
		},
	}
	router := newTestRouter(bills, &mockParser{}, nil)

	rec := doRequest(t, router, httptest.NewRequest(http.MethodDelete, "/bills/3", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != `{"message":"Bill deleted"}` {
		t.Errorf("body = %s, want upstream message pass-through", rec.Body.String())
	}
}

// ===================================================================================================
// Parser Handler Tests
// ===================================================================================================

func TestParseBill_MissingImage(t *testing.T) {
	parser := &mockParser{
		parseFn: func(ctx context.Context, image []byte, filename string) (json.RawMessage, *upstream.ServiceError) {
			return json.RawMessage(`{}`), nil
		},
	}
	router := newTestRouter(&mockBills{}, parser, nil)

	// Multipart form without an image part
	body, contentType := multipartImage(t, "", nil, map[string]string{"title": "x"})
	req := httptest.NewRequest(http.MethodPost, "/parser/parse-bill", body)
	req.Header.Set("Content-Type", contentType)
	rec := doRequest(t, router, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); got != "No image file provided" {
		t.Errorf("error = %q, want %q", got, "No image file provided")
	}
	if parser.calls != 0 {
		t.Error("parser client invoked despite missing image")
	}
}

func TestParseBill_NonMultipartBody(t *testing.T) {
	parser := &mockParser{
		parseFn: func(ctx context.Context, image []byte, filename string) (json.RawMessage, *upstream.ServiceError) {
			return json.RawMessage(`{}`), nil
		},
	}
	router := newTestRouter(&mockBills{}, parser, nil)

	req := httptest.NewRequest(http.MethodPost, "/parser/parse-bill", strings.NewReader(`{"image":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(t, router, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); got != "No image file provided" {
		t.Errorf("error = %q, want %q", got, "No image file provided")
	}
	if parser.calls != 0 {
		t.Error("parser client invoked for non-multipart request")
	}
}

func TestParseBill_RejectsNonImage(t *testing.T) {
	parser := &mockParser{
		parseFn: func(ctx context.Context, image []byte, filename string) (json.RawMessage, *upstream.ServiceError) {
			return json.RawMessage(`{}`), nil
		},
	}
	router := newTestRouter(&mockBills{}, parser, nil)

	body, contentType := multipartImage(t, "notes.txt", []byte("hello"), nil)
	req := httptest.NewRequest(http.MethodPost, "/parser/parse-bill", body)
	req.Header.Set("Content-Type", contentType)
	rec := doRequest(t, router, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if parser.calls != 0 {
		t.Error("parser client invoked for non-image upload")
	}
}

func TestParseBill_RejectsOversizedUpload(t *testing.T) {
	cfg := testConfig()
	cfg.Upload.MaxBytes = 64

	parser := &mockParser{
		parseFn: func(ctx context.Context, image []byte, filename string) (json.RawMessage, *upstream.ServiceError) {
			return json.RawMessage(`{}`), nil
		},
	}
	router := newTestRouter(&mockBills{}, parser, cfg)

	body, contentType := multipartImage(t, "big.jpg", bytes.Repeat([]byte{0xAB}, 4096), nil)
	req := httptest.NewRequest(http.MethodPost, "/parser/parse-bill", body)
	req.Header.Set("Content-Type", contentType)
	rec := doRequest(t, router, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); got != "Image file too large" {
		t.Errorf("error = %q, want %q", got, "Image file too large")
	}
	if parser.calls != 0 {
		t.Error("parser client invoked for oversized upload")
	}
}

func TestParseBill_Success(t *testing.T) {
	receipt := `{"items":[{"name":"Milk","quantity":1,"price":3.99}],"total":3.99}`
	parser := &mockParser{
		parseFn: func(ctx context.Context, image []byte, filename string) (json.RawMessage, *upstream.ServiceError) {
			if filename != "receipt.jpg" {
				t.Errorf("filename = %q, want receipt.jpg", filename)
			}
			return json.RawMessage(receipt), nil
		},
	}
	router := newTestRouter(&mockBills{}, parser, nil)

	body, contentType := multipartImage(t, "receipt.jpg", []byte{0xFF, 0xD8}, nil)
	req := httptest.NewRequest(http.MethodPost, "/parser/parse-bill", body)
	req.Header.Set("Content-Type", contentType)
	rec := doRequest(t, router, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != receipt {
		t.Errorf("body = %s, want pass-through receipt", rec.Body.String())
	}
}

func TestCreateBillFromImage_DefaultTitle(t *testing.T) {
	receipt := `{"items":[{"name":"Milk","quantity":1,"price":3.99}],"total":3.99,"date":"2025-03-15","merchant":"Grocery Store"}`

	parser := &mockParser{
		parseFn: func(ctx context.Context, image []byte, filename string) (json.RawMessage, *upstream.ServiceError) {
			return json.RawMessage(receipt), nil
		},
	}

	var created models.BillInput
	bills := &mockBills{
		createFn: func(ctx context.Context, input models.BillInput) (json.RawMessage, *upstream.ServiceError) {
			created = input
			return json.RawMessage(`{"id":7}`), nil
		},
	}
	router := newTestRouter(bills, parser, nil)

	body, contentType := multipartImage(t, "receipt.jpg", []byte{0xFF, 0xD8}, nil)
	req := httptest.NewRequest(http.MethodPost, "/parser/create-bill-from-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := doRequest(t, router, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	if created.Title != "Bill from receipt image" {
		t.Errorf("created title = %q, want default", created.Title)
	}
	if created.Description != "Created from receipt: Grocery Store" {
		t.Errorf("created description = %q", created.Description)
	}
	if created.DueDate != "2025-03-15" {
		t.Errorf("created due_date = %q, want parsed date", created.DueDate)
	}

	var resp CreateFromImageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.BillID != 7 {
		t.Errorf("billId = %d, want mocked created id 7", resp.BillID)
	}
	if resp.Message == "" {
		t.Error("message should not be empty")
	}
	if string(resp.ParsedData) != receipt {
		t.Errorf("parsedData = %s, want original receipt body", resp.ParsedData)
	}
}

func TestCreateBillFromImage_SuppliedTitle(t *testing.T) {
	parser := &mockParser{
		parseFn: func(ctx context.Context, image []byte, filename string) (json.RawMessage, *upstream.ServiceError) {
			return json.RawMessage(`{"items":[],"total":0}`), nil
		},
	}

	var created models.BillInput
	bills := &mockBills{
		createFn: func(ctx context.Context, input models.BillInput) (json.RawMessage, *upstream.ServiceError) {
			created = input
			return json.RawMessage(`{"id":1}`), nil
		},
	}
	router := newTestRouter(bills, parser, nil)

	body, contentType := multipartImage(t, "receipt.jpg", []byte{0xFF, 0xD8}, map[string]string{"title": "Office Supplies"})
	req := httptest.NewRequest(http.MethodPost, "/parser/create-bill-from-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := doRequest(t, router, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if created.Title != "Office Supplies" {
		t.Errorf("created title = %q, want supplied title", created.Title)
	}
}

func TestCreateBillFromImage_ParserFailureStopsFlow(t *testing.T) {
	parser := &mockParser{
		parseFn: func(ctx context.Context, image []byte, filename string) (json.RawMessage, *upstream.ServiceError) {
			return nil, &upstream.ServiceError{StatusCode: 503, Message: "Service unavailable"}
		},
	}
	bills := &mockBills{
		createFn: func(ctx context.Context, input models.BillInput) (json.RawMessage, *upstream.ServiceError) {
			return json.RawMessage(`{"id":1}`), nil
		},
	}
	router := newTestRouter(bills, parser, nil)

	body, contentType := multipartImage(t, "receipt.jpg", []byte{0xFF, 0xD8}, nil)
	req := httptest.NewRequest(http.MethodPost, "/parser/create-bill-from-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := doRequest(t, router, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if bills.calls != 0 {
		t.Error("create called despite parser failure")
	}
}

func TestCreateBillFromImage_MalformedReceiptBody(t *testing.T) {
	parser := &mockParser{
		parseFn: func(ctx context.Context, image []byte, filename string) (json.RawMessage, *upstream.ServiceError) {
			return json.RawMessage(`not json at all`), nil
		},
	}
	router := newTestRouter(&mockBills{}, parser, nil)

	body, contentType := multipartImage(t, "receipt.jpg", []byte{0xFF, 0xD8}, nil)
	req := httptest.NewRequest(http.MethodPost, "/parser/create-bill-from-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := doRequest(t, router, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 for undecodable receipt", rec.Code)
	}
}

// ===================================================================================================
// Health and Routing Tests
// ===================================================================================================

func TestHealth(t *testing.T) {
	router := newTestRouter(&mockBills{}, &mockParser{}, nil)

	rec := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var health models.HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health.Status != "UP" {
		t.Errorf("status = %q, want UP", health.Status)
	}
	if health.Message == "" {
		t.Error("message should not be empty")
	}
	if !health.Upstreams["accounts"] || !health.Upstreams["parser"] {
		t.Errorf("upstreams = %v, want both true", health.Upstreams)
	}
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(&mockBills{}, &mockParser{}, nil)

	rec := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestNotFound_JSONBody(t *testing.T) {
	router := newTestRouter(&mockBills{}, &mockParser{}, nil)

	rec := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := errorBody(t, rec); got != "Not found" {
		t.Errorf("error = %q, want %q", got, "Not found")
	}
}

func TestRequestIDHeader(t *testing.T) {
	bills := &mockBills{
		listFn: func(ctx context.Context) (json.RawMessage, *upstream.ServiceError) {
			return json.RawMessage(`[]`), nil
		},
	}
	router := newTestRouter(bills, &mockParser{}, nil)

	rec := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/bills", nil))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing from response")
	}

	req := httptest.NewRequest(http.MethodGet, "/bills", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	rec = doRequest(t, router, req)
	if got := rec.Header().Get("X-Request-ID"); got != "client-supplied" {
		t.Errorf("X-Request-ID = %q, want client-supplied value honored", got)
	}
}

func TestPanicRecovery(t *testing.T) {
	bills := &mockBills{
		listFn: func(ctx context.Context) (json.RawMessage, *upstream.ServiceError) {
			panic("boom")
		},
	}
	router := newTestRouter(bills, &mockParser{}, nil)

	rec := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/bills", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := errorBody(t, rec); got != "Internal Server Error" {
		t.Errorf("error = %q, want %q", got, "Internal Server Error")
	}
}
