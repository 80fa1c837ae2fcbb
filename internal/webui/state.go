package webui

import (
	"strings"

	"github.com/pageza/mixoholic/internal/types"
)

// State is everything one page of the client UI renders from
type State struct {
	IngredientsText string
	CurrentRecipe   *types.Recipe
	RefineFeedback  string
	IsLoading       bool
	ErrorMessage    string
}

// CanRefine reports whether the refine control is enabled
func (s *State) CanRefine() bool {
	return s.CurrentRecipe != nil && strings.TrimSpace(s.RefineFeedback) != ""
}

// SplitIngredients splits comma-separated input into trimmed, non-empty
// entries, keeping their order.
func SplitIngredients(text string) []string {
	parts := strings.Split(text, ",")
	ingredients := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			ingredients = append(ingredients, part)
		}
	}
	return ingredients
}
