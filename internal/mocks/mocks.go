package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/mixoholic/internal/types"
)

// MockCompleter is a mock implementation of a completion API client
type MockCompleter struct {
	mock.Mock
}

// Complete mocks the Complete method
func (m *MockCompleter) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	args := m.Called(ctx, prompt, temperature)
	return args.String(0), args.Error(1)
}

// MockCocktailService is a mock implementation of the cocktail service
type MockCocktailService struct {
	mock.Mock
}

// GenerateRecipe mocks the GenerateRecipe method
func (m *MockCocktailService) GenerateRecipe(ctx context.Context, ingredients []string) (json.RawMessage, error) {
	args := m.Called(ctx, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// RefineRecipe mocks the RefineRecipe method
func (m *MockCocktailService) RefineRecipe(ctx context.Context, recipe json.RawMessage, feedback string) (json.RawMessage, error) {
	args := m.Called(ctx, recipe, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// MockRecipeClient is a mock implementation of the Recipe Service client
type MockRecipeClient struct {
	mock.Mock
}

// Generate mocks the Generate method
func (m *MockRecipeClient) Generate(ctx context.Context, ingredients []string) (*types.Recipe, error) {
	args := m.Called(ctx, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Recipe), args.Error(1)
}

// Refine mocks the Refine method
func (m *MockRecipeClient) Refine(ctx context.Context, recipe *types.Recipe, feedback string) (*types.Recipe, error) {
	args := m.Called(ctx, recipe, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Recipe), args.Error(1)
}

// Health mocks the Health method
func (m *MockRecipeClient) Health(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
