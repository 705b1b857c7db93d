package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatDecodesContent(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Biryani; Paella; Moussaka"}}]}`))
	}))
	defer srv.Close()

	svc := &LLMService{endpoint: srv.URL, model: "test-model", apiKey: "test-key", client: srv.Client()}
	out, err := svc.Chat(context.Background(), "system prompt", "user prompt", 0.9)
	require.NoError(t, err)
	assert.Equal(t, "Biryani; Paella; Moussaka", out)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, "test-model", got.Model)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "system prompt", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, 0.9, got.Temperature)
}

func TestChatNon200IsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := &LLMService{endpoint: srv.URL, model: "m", client: srv.Client()}
	_, err := svc.Chat(context.Background(), "s", "u", 0)
	require.ErrorIs(t, err, ErrUpstreamService)
}

func TestChatEmptyChoicesIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	svc := &LLMService{endpoint: srv.URL, model: "m", client: srv.Client()}
	_, err := svc.Chat(context.Background(), "s", "u", 0)
	require.ErrorIs(t, err, ErrUpstreamService)
}

func TestChatMissingEndpointIsUpstreamError(t *testing.T) {
	svc := &LLMService{model: "m", client: http.DefaultClient}
	_, err := svc.Chat(context.Background(), "s", "u", 0)
	require.ErrorIs(t, err, ErrUpstreamService)
}
