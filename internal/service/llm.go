package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/pageza/mixoholic/config"
)

// maxErrorBody bounds how much of a failed upstream response is kept for logs
const maxErrorBody = 4 << 10

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a request to the chat completions API
type Request struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
}

// Response is the subset of a chat completions response we read
type Response struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// LLMService handles interactions with an OpenAI-compatible chat completions API
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
	log    logrus.FieldLogger
}

// NewLLMService creates a new LLMService instance
func NewLLMService(cfg *config.Config, log logrus.FieldLogger) (*LLMService, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
	}

	return &LLMService{
		apiKey: cfg.OpenAIAPIKey,
		apiURL: cfg.OpenAIAPIURL,
		model:  cfg.OpenAIModel,
		client: &http.Client{Timeout: cfg.UpstreamTimeout},
		log:    log,
	}, nil
}

// Model returns the model identifier sent with every request
func (s *LLMService) Model() string {
	return s.model
}

// Complete sends prompt as a single user message in JSON-output mode and
// returns the content of the first choice.
func (s *LLMService) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	reqBody := Request{
		Model: s.model,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
		ResponseFormat: map[string]string{
			"type": "json_object",
		},
		Temperature: temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &UpstreamStatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", ErrNoChoices
	}

	content := result.Choices[0].Message.Content
	s.log.WithFields(logrus.Fields{
		"model":       s.model,
		"temperature": temperature,
		"bytes":       len(content),
	}).Debug("Completion received")

	return content, nil
}
