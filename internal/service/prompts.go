package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// GenerateTemperature favours creativity for a first draft
	GenerateTemperature = 0.8
	// RefineTemperature stays closer to the recipe being refined
	RefineTemperature = 0.7
)

const recipeFormat = "Format the response as JSON with keys: name, ingredients, instructions, garnish, glassType."

// BuildGeneratePrompt builds the first-draft prompt for a list of ingredients
func BuildGeneratePrompt(ingredients []string) string {
	return fmt.Sprintf(`You are a professional mixologist. Create a unique cocktail recipe using the following ingredients: %s.

Please provide:
1. A creative cocktail name
2. Complete list of ingredients with measurements
3. Step-by-step instructions
4. Garnish suggestions
5. Glass type recommendation

%s`, strings.Join(ingredients, ", "), recipeFormat)
}

// BuildRefinePrompt embeds the current recipe, indented with two spaces and
// with its key order untouched, and the user's feedback.
func BuildRefinePrompt(recipe json.RawMessage, feedback string) (string, error) {
	var indented bytes.Buffer
	if err := json.Indent(&indented, recipe, "", "  "); err != nil {
		return "", fmt.Errorf("failed to format recipe: %w", err)
	}

	return fmt.Sprintf(`You are a professional mixologist. Here is a cocktail recipe:
%s

The user wants to refine it with the following feedback: "%s"

Please provide an updated recipe incorporating this feedback.

%s`, indented.String(), feedback, recipeFormat), nil
}
