package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ChatClient is the one-shot chat-completion call both bots are built on.
type ChatClient interface {
	Chat(ctx context.Context, system, user string, temperature float64) (string, error)
}

// LLMService talks to an OpenAI-compatible chat completions endpoint.
type LLMService struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

// NewLLMService initializes the LLMService with credentials and HTTP client
func NewLLMService() *LLMService {
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &LLMService{
		endpoint: os.Getenv("LLM_ENDPOINT"),
		model:    model,
		apiKey:   os.Getenv("LLM_API_KEY"),
		client:   &http.Client{Timeout: 20 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Chat sends one system+user exchange and returns the assistant's text.
func (s *LLMService) Chat(ctx context.Context, system, user string, temperature float64) (string, error) {
	if s.endpoint == "" {
		return "", fmt.Errorf("%w: LLM_ENDPOINT is not set", ErrUpstreamService)
	}

	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to call chat endpoint: %v", ErrUpstreamService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read chat response: %v", ErrUpstreamService, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: chat endpoint returned %d: %s", ErrUpstreamService, resp.StatusCode, string(body))
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("%w: failed to parse chat JSON: %v", ErrUpstreamService, err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("%w: chat response contained no choices", ErrUpstreamService)
	}
	return cr.Choices[0].Message.Content, nil
}
