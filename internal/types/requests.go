package types

import "encoding/json"

// GenerateRequest represents the request body for POST /generate
type GenerateRequest struct {
	Ingredients []string `json:"ingredients"`
}

// RefineRequest represents the request body for POST /refine.
// Recipe stays raw so it can be embedded in the prompt exactly as sent.
type RefineRequest struct {
	Recipe   json.RawMessage `json:"recipe"`
	Feedback string          `json:"feedback"`
}

// HealthResponse is returned by GET /
type HealthResponse struct {
	Message string `json:"message"`
}
