package service

import (
	"context"
	"encoding/json"
)

// Completer sends a prompt to a completion API in JSON-output mode
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

// ICocktailService defines the interface for recipe generation operations.
// Both operations return the completion verbatim once it parses as a JSON object.
type ICocktailService interface {
	GenerateRecipe(ctx context.Context, ingredients []string) (json.RawMessage, error)
	RefineRecipe(ctx context.Context, recipe json.RawMessage, feedback string) (json.RawMessage, error)
}
