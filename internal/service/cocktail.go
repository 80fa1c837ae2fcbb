package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pageza/mixoholic/internal/metrics"
)

// Operation names used in logs and metrics
const (
	OperationGenerate = "generate"
	OperationRefine   = "refine"
)

// CocktailService turns ingredients and feedback into recipes through a Completer
type CocktailService struct {
	llm     Completer
	metrics *metrics.Metrics
	log     logrus.FieldLogger
}

// NewCocktailService creates a new CocktailService. m may be nil.
func NewCocktailService(llm Completer, m *metrics.Metrics, log logrus.FieldLogger) *CocktailService {
	return &CocktailService{
		llm:     llm,
		metrics: m,
		log:     log,
	}
}

// GenerateRecipe asks the completion API for a new recipe built from ingredients
func (s *CocktailService) GenerateRecipe(ctx context.Context, ingredients []string) (json.RawMessage, error) {
	if len(ingredients) == 0 {
		return nil, ErrNoIngredients
	}

	prompt := BuildGeneratePrompt(ingredients)
	recipe, err := s.complete(ctx, OperationGenerate, prompt, GenerateTemperature)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recipe: %w", err)
	}
	return recipe, nil
}

// RefineRecipe asks the completion API to update recipe according to feedback
func (s *CocktailService) RefineRecipe(ctx context.Context, recipe json.RawMessage, feedback string) (json.RawMessage, error) {
	if isAbsent(recipe) || strings.TrimSpace(feedback) == "" {
		return nil, ErrMissingRefineInput
	}

	prompt, err := BuildRefinePrompt(recipe, feedback)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	refined, err := s.complete(ctx, OperationRefine, prompt, RefineTemperature)
	if err != nil {
		return nil, fmt.Errorf("failed to refine recipe: %w", err)
	}
	return refined, nil
}

func (s *CocktailService) complete(ctx context.Context, operation, prompt string, temperature float64) (json.RawMessage, error) {
	start := time.Now()
	content, err := s.llm.Complete(ctx, prompt, temperature)

	var recipe json.RawMessage
	if err == nil {
		recipe, err = parseRecipe(content)
	}
	elapsed := time.Since(start)
	s.metrics.ObserveCompletion(operation, elapsed, err)

	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"operation": operation,
		"latency":   elapsed.String(),
	}).Info("Recipe completed")
	return recipe, nil
}

// parseRecipe checks that content is a JSON object and returns it untouched
func parseRecipe(content string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(content)

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecipe, err)
	}
	if obj == nil {
		return nil, ErrMalformedRecipe
	}
	return json.RawMessage(trimmed), nil
}

// isAbsent reports whether raw is missing or a falsy scalar: null, "",
// false or 0.
func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return true
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return false
	}

	var v interface{}
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return false
	}
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	}
	return false
}
