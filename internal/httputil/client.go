// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/pdiddy/paper-assistant/pkg/types"
)

// AcceptPDF is the Accept header sent when downloading documents.
const AcceptPDF = "application/pdf"

// NewClient returns an *http.Client configured from cfg. It is used for
// document downloads; model calls rely on context cancellation instead.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// NewRestyClient wraps hc in a resty client that sends cfg.UserAgent on
// every request. A nil hc uses NewClient(cfg). Resty's own retry support
// stays disabled: downloads are attempted once.
func NewRestyClient(hc *http.Client, cfg types.HTTPConfig) *resty.Client {
	if hc == nil {
		hc = NewClient(cfg)
	}
	c := resty.NewWithClient(hc).SetRetryCount(0)
	if cfg.UserAgent != "" {
		c.SetHeader("User-Agent", cfg.UserAgent)
	}
	return c
}
