package webui

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/pageza/mixoholic/internal/client"
	"github.com/pageza/mixoholic/internal/types"
)

// User-facing messages
const (
	MsgNoIngredients  = "Please enter at least one ingredient"
	MsgGenerateFailed = "Failed to generate cocktail"
	MsgRefineFailed   = "Failed to refine cocktail"
)

// RecipeClient is the subset of the Recipe Service client the UI needs
type RecipeClient interface {
	Generate(ctx context.Context, ingredients []string) (*types.Recipe, error)
	Refine(ctx context.Context, recipe *types.Recipe, feedback string) (*types.Recipe, error)
	Health(ctx context.Context) (string, error)
}

// Controller applies the generate and refine operations to a State
type Controller struct {
	client RecipeClient
	log    logrus.FieldLogger
}

// NewController creates a new Controller
func NewController(c RecipeClient, log logrus.FieldLogger) *Controller {
	return &Controller{client: c, log: log}
}

// Generate requests a recipe for the ingredients in st.IngredientsText.
// On failure the previous recipe, if any, stays in place.
func (c *Controller) Generate(ctx context.Context, st *State) {
	if st.IsLoading {
		return
	}

	ingredients := SplitIngredients(st.IngredientsText)
	if len(ingredients) == 0 {
		st.ErrorMessage = MsgNoIngredients
		return
	}

	st.IsLoading = true
	defer func() { st.IsLoading = false }()
	st.ErrorMessage = ""

	recipe, err := c.client.Generate(ctx, ingredients)
	if err != nil {
		c.log.WithError(err).WithField("ingredients", ingredients).Warn("Generate failed")
		st.ErrorMessage = userMessage(err, MsgGenerateFailed)
		return
	}
	st.CurrentRecipe = recipe
}

// Refine requests an updated recipe. It does nothing unless st.CanRefine().
func (c *Controller) Refine(ctx context.Context, st *State) {
	if st.IsLoading || !st.CanRefine() {
		return
	}

	st.IsLoading = true
	defer func() { st.IsLoading = false }()
	st.ErrorMessage = ""

	recipe, err := c.client.Refine(ctx, st.CurrentRecipe, st.RefineFeedback)
	if err != nil {
		c.log.WithError(err).Warn("Refine failed")
		st.ErrorMessage = userMessage(err, MsgRefineFailed)
		return
	}
	st.CurrentRecipe = recipe
	st.RefineFeedback = ""
}

// userMessage collapses service failures into fallback; transport errors
// keep their own message.
func userMessage(err error, fallback string) string {
	if errors.Is(err, client.ErrServiceFailure) || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
