// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package acquire downloads paper PDFs.
package acquire

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-assistant/internal/httputil"
	"github.com/pdiddy/paper-assistant/pkg/types"
)

// Fetcher downloads a document with a single GET. It never retries.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a Fetcher that sends requests through hc with the
// headers from cfg. A nil hc builds a client from cfg.
func NewFetcher(hc *http.Client, cfg types.HTTPConfig) *Fetcher {
	return &Fetcher{client: httputil.NewRestyClient(hc, cfg)}
}

// Fetch resolves rawURL (see Resolve) and returns the response body.
// Malformed URLs fail with types.ErrInvalidInput before any request is
// made; transport failures and non-2xx responses return a *types.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	pdfURL, err := Resolve(rawURL)
	if err != nil {
		return nil, err
	}

	log := zerolog.Ctx(ctx)
	log.Debug().Str("url", pdfURL).Msg("downloading PDF")

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", httputil.AcceptPDF).
		Get(pdfURL)
	if err != nil {
		return nil, &types.FetchError{URL: pdfURL, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &types.FetchError{URL: pdfURL, StatusCode: resp.StatusCode()}
	}

	body := resp.Body()
	log.Debug().Str("url", pdfURL).Int("bytes", len(body)).Msg("downloaded PDF")
	return body, nil
}
