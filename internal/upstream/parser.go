// Bills BFF - Accounts and Receipt-Parser Aggregation API
// Copyright 2026 Manjula Rathnayaka (manjulaRathnayaka)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/manjulaRathnayaka/choreo-tutorial-hevayo

package upstream

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	json "github.com/goccy/go-json"

	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/config"
)

// ParserClient is the image bill-parser upstream.
type ParserClient struct {
	caller *caller
}

// NewParserClient constructs a client against the parser upstream base URL.
func NewParserClient(cfg config.UpstreamConfig) *ParserClient {
	return &ParserClient{
		caller: newCaller("parser", cfg),
	}
}

// Available reports whether the upstream's circuit breaker admits requests.
func (p *ParserClient) Available() bool {
	return p.caller.available()
}

// ParseBillImage posts the image as a multipart upload with field name
// "image" to the parser's /parse-bill endpoint and returns the ParsedReceipt
// body. The part content type is always image/jpeg, matching what the parser
// accepts regardless of the actual source format.
func (p *ParserClient) ParseBillImage(ctx context.Context, image []byte, filename string) (json.RawMessage, *ServiceError) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	header.Set("Content-Type", "image/jpeg")

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, NormalizeDispatchError(err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, NormalizeDispatchError(err)
	}
	if err := writer.Close(); err != nil {
		return nil, NormalizeDispatchError(err)
	}

	return p.caller.do(ctx, "parse_bill", http.MethodPost, "/parse-bill", buf.Bytes(), writer.FormDataContentType())
}
