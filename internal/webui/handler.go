package webui

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mixoholic/internal/middleware"
	"github.com/pageza/mixoholic/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTemplate = "index.html"

// page is the data the index template renders
type page struct {
	*State
	APIURL     string
	RecipeJSON string
}

// Handler serves the client UI
type Handler struct {
	controller *Controller
	client     RecipeClient
	tmpl       *template.Template
	apiURL     string
}

// NewHandler creates a new Handler. apiURL is only displayed.
func NewHandler(c RecipeClient, apiURL string, log logrus.FieldLogger) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{
		controller: NewController(c, log),
		client:     c,
		tmpl:       tmpl,
		apiURL:     apiURL,
	}, nil
}

// RegisterRoutes registers the UI routes
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Index)
	r.POST("/generate", h.Generate)
	r.POST("/refine", h.Refine)
	r.GET("/healthz", h.Healthz)
}

// Index renders the empty form
func (h *Handler) Index(c *gin.Context) {
	h.render(c, &State{})
}

// Generate handles the ingredients form
func (h *Handler) Generate(c *gin.Context) {
	st := h.stateFromForm(c)
	h.controller.Generate(c.Request.Context(), st)
	h.render(c, st)
}

// Refine handles the feedback form
func (h *Handler) Refine(c *gin.Context) {
	st := h.stateFromForm(c)
	h.controller.Refine(c.Request.Context(), st)
	h.render(c, st)
}

// Healthz reports whether the Recipe Service answers
func (h *Handler) Healthz(c *gin.Context) {
	msg, err := h.client.Health(c.Request.Context())
	if err != nil {
		middleware.Logger(c).WithError(err).Warn("Recipe Service health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "api": msg})
}

// stateFromForm rebuilds the page state posted back by the browser
func (h *Handler) stateFromForm(c *gin.Context) *State {
	st := &State{
		IngredientsText: c.PostForm("ingredients"),
		RefineFeedback:  c.PostForm("feedback"),
	}

	if raw := c.PostForm("recipe"); raw != "" {
		var recipe types.Recipe
		if err := json.Unmarshal([]byte(raw), &recipe); err != nil {
			middleware.Logger(c).WithError(err).Warn("Discarding unreadable recipe field")
		} else {
			st.CurrentRecipe = &recipe
		}
	}
	return st
}

func (h *Handler) render(c *gin.Context, st *State) {
	p := page{State: st, APIURL: h.apiURL}
	if st.CurrentRecipe != nil {
		if raw, err := st.CurrentRecipe.Source(); err == nil {
			p.RecipeJSON = string(raw)
		} else {
			middleware.Logger(c).WithError(err).Error("Failed to encode recipe")
		}
	}

	c.Render(http.StatusOK, render.HTML{Template: h.tmpl, Name: pageTemplate, Data: p})
}
