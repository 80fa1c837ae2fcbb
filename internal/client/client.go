package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pageza/mixoholic/internal/types"
)

// maxErrorBody bounds how much of a failed response body is kept
const maxErrorBody = 4 << 10

// ErrServiceFailure is wrapped by every error the Recipe Service itself
// reports: non-2xx statuses and bodies that are not a recipe.
var ErrServiceFailure = errors.New("recipe service request failed")

// StatusError describes a failed call to the Recipe Service
type StatusError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Operation, e.Message)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Operation, e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	return ErrServiceFailure
}

// Client talks to the Recipe Service over HTTP
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a new Client for the service at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 2 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service address the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Generate requests a new recipe for ingredients
func (c *Client) Generate(ctx context.Context, ingredients []string) (*types.Recipe, error) {
	return c.postRecipe(ctx, "generate", types.GenerateRequest{Ingredients: ingredients})
}

// Refine requests an updated version of recipe that honours feedback.
// The recipe is resent exactly as it was received.
func (c *Client) Refine(ctx context.Context, recipe *types.Recipe, feedback string) (*types.Recipe, error) {
	source, err := recipe.Source()
	if err != nil {
		return nil, fmt.Errorf("failed to encode recipe: %w", err)
	}
	return c.postRecipe(ctx, "refine", types.RefineRequest{Recipe: source, Feedback: feedback})
}

// Health returns the message reported by the service health endpoint
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError("health", resp)
	}

	var health types.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return "", &StatusError{Operation: "health", Message: err.Error()}
	}
	return health.Message, nil
}

func (c *Client) postRecipe(ctx context.Context, operation string, body interface{}) (*types.Recipe, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+operation, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(operation, resp)
	}

	var recipe types.Recipe
	if err := json.NewDecoder(resp.Body).Decode(&recipe); err != nil {
		return nil, &StatusError{Operation: operation, StatusCode: resp.StatusCode, Message: err.Error()}
	}
	return &recipe, nil
}

// statusError reads the service's {"error": ...} body when there is one
func statusError(operation string, resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	message := strings.TrimSpace(string(data))
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		message = body.Error
	}
	return &StatusError{Operation: operation, StatusCode: resp.StatusCode, Message: message}
}
