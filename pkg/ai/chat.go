package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/debateclub/arena/pkg/jobcontext"
)

// ChatClient calls an OpenAI-compatible chat completion endpoint.
// OpenAI, Mistral, xAI and DeepSeek all speak this shape.
type ChatClient struct {
	name    string
	baseURL string
	client  *http.Client
}

// NewChatClient creates a client for one OpenAI-compatible provider
func NewChatClient(name, baseURL string) *ChatClient {
	return &ChatClient{
		name:    name,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ChatMessage is one turn in a chat completion request
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends a chat completion request and returns the assistant text.
// Transient transport failures are retried with exponential backoff.
func (c *ChatClient) Generate(ctx context.Context, params GenerateParams) (string, error) {
	reqBody := ChatRequest{
		Model: params.Model,
		Messages: []ChatMessage{
			{Role: "system", Content: params.System},
			{Role: "user", Content: params.Prompt},
		},
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	var text string
	operation := func() error {
		text, err = c.doRequest(ctx, params.APIKey, b)
		if err != nil && !jobcontext.IsRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", fmt.Errorf("%s generation failed: %w", c.name, err)
	}
	return text, nil
}

func (c *ChatClient) doRequest(ctx context.Context, apiKey string, body []byte) (string, error) {
	endpoint := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%s returned status %d", c.name, resp.StatusCode)
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from %s", c.name)
	}
	return cr.Choices[0].Message.Content, nil
}
