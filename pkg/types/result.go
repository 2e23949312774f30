// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-assistant pipeline:
// configuration, the run result, and the error taxonomy every stage reports in.
package types

import "time"

// Result holds the outputs of one pipeline run.
type Result struct {
	// SourceURL is the URL as supplied by the caller.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// PDFURL is the URL the PDF was downloaded from after normalization
	// (e.g. an arXiv /abs/ page rewritten to its /pdf/ endpoint).
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`

	// Analysis is the structured analysis produced by the first model call.
	Analysis string `json:"analysis" yaml:"analysis"`

	// Post is the LinkedIn post produced from the analysis.
	Post string `json:"post" yaml:"post"`

	// Provider and Model identify the backend that generated the text.
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`
	Model    string `json:"model,omitempty" yaml:"model,omitempty"`

	// GeneratedAt is when the post was produced.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}
