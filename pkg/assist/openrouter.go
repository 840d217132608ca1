package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// chatRequest represents the request body for OpenRouter-compatible
// chat-completion endpoints.
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []chatMsg `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Stream      bool      `json:"stream"`
}

type chatMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse represents the response body.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
}

// complete makes a non-streaming chat-completion request and returns the
// response text.
func (s *Service) complete(ctx context.Context, userPrompt, systemPrompt string) (string, error) {
	messages := make([]chatMsg, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, chatMsg{
			Role:    "system",
			Content: systemPrompt,
		})
	}
	messages = append(messages, chatMsg{
		Role:    "user",
		Content: userPrompt,
	})

	req := chatRequest{
		Model:       s.config.Model,
		Messages:    messages,
		Temperature: 0.3,
		MaxTokens:   1024,
		Stream:      false,
	}
	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("assist: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.config.BaseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("assist: failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	httpReq.Header.Set("X-Title", "rhymekit")

	httpResp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("assist: API request failed: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("assist: failed to read response: %w", err)
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return "", fmt.Errorf("assist: HTTP %d: %s", httpResp.StatusCode, strings.TrimSpace(string(body)))
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("assist: failed to parse response: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("assist: API error %d: %s", resp.Error.Code, resp.Error.Message)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("assist: empty response")
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("assist: empty content in response")
	}
	return text, nil
}
