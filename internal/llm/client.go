// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm sends prompts to a text-generation model. Client owns the
// retry policy; a Backend speaks one provider's API.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-assistant/pkg/types"
)

const (
	// MaxTokens is the output budget of every request.
	MaxTokens = 1024

	// MaxAttempts bounds calls per Complete, including the first.
	MaxAttempts = 3

	// BaseDelay is the unit of the linear backoff between attempts.
	BaseDelay = 5 * time.Second
)

// ErrRateLimited is returned (wrapped) by a Backend when the API refused
// the request for rate-limit reasons. Only these failures are retried.
var ErrRateLimited = errors.New("rate limited")

// Request is one chat-style call with a single user message.
type Request struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Backend calls a model API once and returns the generated text.
type Backend interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Client completes prompts through a Backend, retrying rate-limited calls.
type Client struct {
	Backend Backend

	// Sleep waits between attempts. Nil uses a timer that honors ctx.
	Sleep SleepFunc
}

// NewClient creates a Client for backend.
func NewClient(backend Backend) *Client {
	return &Client{Backend: backend}
}

// BackoffDelay returns the wait after the given failed attempt (1-based):
// BaseDelay, 2*BaseDelay, and so on.
func BackoffDelay(attempt int) time.Duration {
	return BaseDelay * time.Duration(attempt)
}

// Complete sends prompt at the given temperature. Rate-limited calls are
// retried up to MaxAttempts in total, waiting BackoffDelay(n) after
// attempt n; exhaustion returns types.ErrRateLimitExceeded. Any other
// failure returns types.ErrModelCall without retrying.
func (c *Client) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	log := zerolog.Ctx(ctx)
	sleep := c.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	req := Request{Prompt: prompt, Temperature: temperature, MaxTokens: MaxTokens}
	for attempt := 1; ; attempt++ {
		log.Debug().Int("attempt", attempt).Float64("temperature", temperature).Msg("calling model")

		text, err := c.Backend.Generate(ctx, req)
		if err == nil {
			return text, nil
		}
		if !errors.Is(err, ErrRateLimited) {
			log.Debug().Err(err).Msg("model call failed")
			return "", fmt.Errorf("%w: %w", types.ErrModelCall, err)
		}
		if attempt >= MaxAttempts {
			log.Warn().Int("attempts", attempt).Msg("rate limit persists after all retries")
			return "", fmt.Errorf("%w after %d attempts: %w", types.ErrRateLimitExceeded, attempt, err)
		}

		wait := BackoffDelay(attempt)
		log.Info().Dur("wait", wait).Int("attempt", attempt).Msg("rate limited, waiting before retry")
		if err := sleep(ctx, wait); err != nil {
			return "", err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
