package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/mixoholic/internal/middleware"
	"github.com/pageza/mixoholic/internal/service"
	"github.com/pageza/mixoholic/internal/types"
)

const (
	msgMissingIngredients = "Please provide at least one ingredient"
	msgMissingRefineInput = "Please provide both recipe and feedback"
	msgGenerateFailed     = "Failed to generate cocktail recipe"
	msgRefineFailed       = "Failed to refine cocktail recipe"
)

// RecipeHandler handles recipe generation requests
type RecipeHandler struct {
	cocktails service.ICocktailService
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(cocktails service.ICocktailService) *RecipeHandler {
	return &RecipeHandler{cocktails: cocktails}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/generate", h.Generate)
	router.POST("/refine", h.Refine)
}

// Generate handles POST /generate
func (h *RecipeHandler) Generate(c *gin.Context) {
	var req types.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, msgMissingIngredients)
		return
	}

	recipe, err := h.cocktails.GenerateRecipe(c.Request.Context(), req.Ingredients)
	if err != nil {
		h.fail(c, err, msgMissingIngredients, msgGenerateFailed)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", recipe)
}

// Refine handles POST /refine
func (h *RecipeHandler) Refine(c *gin.Context) {
	var req types.RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, msgMissingRefineInput)
		return
	}

	recipe, err := h.cocktails.RefineRecipe(c.Request.Context(), req.Recipe, req.Feedback)
	if err != nil {
		h.fail(c, err, msgMissingRefineInput, msgRefineFailed)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", recipe)
}

// fail maps input errors to 400 and everything else to a generic 500,
// keeping upstream detail in the logs only.
func (h *RecipeHandler) fail(c *gin.Context, err error, inputMsg, upstreamMsg string) {
	if errors.Is(err, service.ErrInvalidInput) {
		middleware.AbortWithError(c, http.StatusBadRequest, inputMsg)
		return
	}

	middleware.Logger(c).WithError(err).Error(upstreamMsg)
	middleware.AbortWithError(c, http.StatusInternalServerError, upstreamMsg)
}
