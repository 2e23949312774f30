// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline turns a paper URL into an analysis and a LinkedIn post:
// fetch the PDF, extract its text, then make two model calls, the second
// seeded with the output of the first.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-assistant/internal/acquire"
	"github.com/pdiddy/paper-assistant/internal/prompt"
	"github.com/pdiddy/paper-assistant/pkg/types"
)

// Sampling temperatures for the two model calls. The analysis stays close
// to the source; the post is allowed more variety.
const (
	AnalysisTemperature = 0.3
	PostTemperature     = 0.7
)

// Stage names a step of Run, reported through Pipeline.OnStage.
type Stage string

const (
	StageFetch    Stage = "Downloading and processing PDF..."
	StageAnalysis Stage = "Analyzing paper..."
	StagePost     Stage = "Creating LinkedIn post..."
)

// Fetcher downloads the PDF at a resolved URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Extractor converts PDF bytes to plain text.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

// Completer sends a prompt to a model.
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

// Pipeline wires the stages together. Provider and Model only label the
// Result; the Completer already knows which model it talks to.
type Pipeline struct {
	Fetcher   Fetcher
	Extractor Extractor
	Completer Completer

	Provider types.Provider
	Model    string

	// OnStage, when set, is called as each stage starts.
	OnStage func(Stage)

	// Now stamps Result.GeneratedAt. Nil uses time.Now.
	Now func() time.Time
}

// Run processes one URL. Any stage failure aborts the run and is returned
// as-is, so callers classify it with errors.Is against the types
// sentinels. No partial Result is returned.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (*types.Result, error) {
	log := zerolog.Ctx(ctx)

	pdfURL, err := acquire.Resolve(rawURL)
	if err != nil {
		return nil, err
	}

	p.stage(StageFetch)
	log.Debug().Str("url", pdfURL).Msg("fetching document")
	data, err := p.Fetcher.Fetch(ctx, pdfURL)
	if err != nil {
		return nil, err
	}

	log.Debug().Int("bytes", len(data)).Msg("extracting text")
	text, err := p.Extractor.Extract(ctx, data)
	if err != nil {
		return nil, err
	}

	analysisPrompt, err := prompt.Analysis(text)
	if err != nil {
		return nil, fmt.Errorf("building analysis prompt: %w", err)
	}
	p.stage(StageAnalysis)
	log.Debug().Int("text_chars", len(text)).Msg("requesting analysis")
	analysis, err := p.Completer.Complete(ctx, analysisPrompt, AnalysisTemperature)
	if err != nil {
		return nil, err
	}

	postPrompt, err := prompt.Post(analysis)
	if err != nil {
		return nil, fmt.Errorf("building post prompt: %w", err)
	}
	p.stage(StagePost)
	log.Debug().Int("analysis_chars", len(analysis)).Msg("requesting post")
	post, err := p.Completer.Complete(ctx, postPrompt, PostTemperature)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return &types.Result{
		SourceURL:   rawURL,
		PDFURL:      pdfURL,
		Analysis:    analysis,
		Post:        post,
		Provider:    string(p.Provider),
		Model:       p.Model,
		GeneratedAt: now().UTC(),
	}, nil
}

func (p *Pipeline) stage(s Stage) {
	if p.OnStage != nil {
		p.OnStage(s)
	}
}
