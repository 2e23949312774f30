// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

func TestAnthropicBackend_Generate(t *testing.T) {
	var body map[string]any
	var path, key string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		key = r.Header.Get("X-Api-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"content": [{"type": "text", "text": "first "}, {"type": "text", "text": "second"}],
			"stop_reason": "end_turn",
			"stop_sequence": null,
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`))
	}))
	defer ts.Close()

	b := NewAnthropicBackend("test-key", ts.URL, "claude-test", ts.Client())
	got, err := b.Generate(context.Background(), Request{Prompt: "hello", Temperature: 0.3, MaxTokens: 1024})
	require.NoError(t, err)

	assert.Equal(t, "first second", got)
	assert.Equal(t, "/v1/messages", path)
	assert.Equal(t, "test-key", key)
	assert.Equal(t, "claude-test", body["model"])
	assert.InDelta(t, 0.3, body["temperature"], 0.0001)
	assert.EqualValues(t, 1024, body["max_tokens"])
}

func TestAnthropicBackend_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		rateLimited bool
	}{
		{
			name:        "429 is rate limited",
			status:      http.StatusTooManyRequests,
			body:        `{"type": "error", "error": {"type": "rate_limit_error", "message": "slow down"}}`,
			rateLimited: true,
		},
		{
			name:   "400 is not rate limited",
			status: http.StatusBadRequest,
			body:   `{"type": "error", "error": {"type": "invalid_request_error", "message": "bad"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			b := NewAnthropicBackend("k", ts.URL, "m", ts.Client())
			_, err := b.Generate(context.Background(), Request{Prompt: "p", Temperature: 0.3, MaxTokens: 10})
			require.Error(t, err)
			assert.Equal(t, tt.rateLimited, isRateLimited(err))
			assert.Equal(t, 1, calls, "SDK retries must be disabled")
		})
	}
}
