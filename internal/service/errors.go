package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks errors caused by the caller's request
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoIngredients is returned by GenerateRecipe for an empty ingredient list
	ErrNoIngredients = fmt.Errorf("%w: at least one ingredient is required", ErrInvalidInput)

	// ErrMissingRefineInput is returned by RefineRecipe without a recipe or feedback
	ErrMissingRefineInput = fmt.Errorf("%w: recipe and feedback are required", ErrInvalidInput)

	// ErrNoChoices is returned when the completion API answers without choices
	ErrNoChoices = errors.New("no response from completion API")

	// ErrMalformedRecipe is returned when the completion is not a JSON object
	ErrMalformedRecipe = errors.New("completion is not a JSON object")
)

// UpstreamStatusError is returned when the completion API answers with a
// non-200 status.
type UpstreamStatusError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("completion API request failed with status %d: %s", e.StatusCode, e.Body)
}
