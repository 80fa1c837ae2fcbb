package webui

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/mixoholic/internal/client"
	"github.com/pageza/mixoholic/internal/logger"
	"github.com/pageza/mixoholic/internal/middleware"
	"github.com/pageza/mixoholic/internal/mocks"
	"github.com/pageza/mixoholic/internal/types"
)

const storedRecipe = `{"name":"Daiquiri","ingredients":"rum, lime, sugar","instructions":["Shake hard","Double strain"],"garnish":"Lime wheel","glassType":"Coupe","origin":"Cuba"}`

func init() {
	gin.SetMode(gin.TestMode)
}

func setupUI(t *testing.T, api RecipeClient) *gin.Engine {
	t.Helper()
	h, err := NewHandler(api, "http://localhost:3001", logger.Discard())
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.RequestLogger(logger.Discard()))
	h.RegisterRoutes(router)
	return router
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	router := setupUI(t, new(mocks.MockRecipeClient))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Mixoholic")
	assert.Contains(t, body, "Generate Cocktail")
	assert.NotContains(t, body, `id="recipe"`)
	assert.NotContains(t, body, `role="alert"`)
	assert.Contains(t, body, "http://localhost:3001")
}

func TestGeneratePageRendersListsAndParagraphs(t *testing.T) {
	api := new(mocks.MockRecipeClient)
	api.On("Generate", mock.Anything, []string{"rum", "lime"}).Return(&types.Recipe{
		Name:         "Daiquiri",
		Ingredients:  types.NewTextList("2 oz rum", "1 oz lime juice"),
		Instructions: types.NewText("Shake with ice & strain."),
		Garnish:      "Lime wheel",
		GlassType:    "Coupe",
	}, nil)
	router := setupUI(t, api)

	w := postForm(router, "/generate", url.Values{"ingredients": {"rum, lime"}})

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<h2>Daiquiri</h2>")
	assert.Contains(t, body, `<ul class="ingredients"><li>2 oz rum</li><li>1 oz lime juice</li></ul>`)
	assert.Contains(t, body, `<p class="instructions">Shake with ice &amp; strain.</p>`)
	assert.Contains(t, body, `<p class="glass-type">Serve in: Coupe</p>`)
	assert.Contains(t, body, `id="refine-button" disabled`)
	assert.Contains(t, body, `name="recipe"`)
}

func TestGeneratePageShowsLocalError(t *testing.T) {
	api := new(mocks.MockRecipeClient)
	router := setupUI(t, api)

	w := postForm(router, "/generate", url.Values{"ingredients": {" , "}})

	assert.Contains(t, w.Body.String(), MsgNoIngredients)
	api.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerateFailureKeepsPostedRecipe(t *testing.T) {
	api := new(mocks.MockRecipeClient)
	api.On("Generate", mock.Anything, []string{"gin"}).
		Return(nil, &client.StatusError{Operation: "generate", StatusCode: 500})
	router := setupUI(t, api)

	w := postForm(router, "/generate", url.Values{"ingredients": {"gin"}, "recipe": {storedRecipe}})

	body := w.Body.String()
	assert.Contains(t, body, MsgGenerateFailed)
	assert.Contains(t, body, "<h2>Daiquiri</h2>")
	assert.Contains(t, body, `<p class="ingredients">rum, lime, sugar</p>`)
	assert.Contains(t, body, `<ol class="instructions"><li>Shake hard</li><li>Double strain</li></ol>`)
}

func TestRefinePage(t *testing.T) {
	api := new(mocks.MockRecipeClient)
	api.On("Refine", mock.Anything, mock.MatchedBy(func(r *types.Recipe) bool {
		src, err := r.Source()
		return err == nil && string(src) == storedRecipe
	}), "less sour").Return(&types.Recipe{Name: "Soft Daiquiri"}, nil)
	router := setupUI(t, api)

	w := postForm(router, "/refine", url.Values{"recipe": {storedRecipe}, "feedback": {"less sour"}})

	body := w.Body.String()
	assert.Contains(t, body, "<h2>Soft Daiquiri</h2>")
	assert.NotContains(t, body, `value="less sour"`)
	api.AssertExpectations(t)
}

func TestRefinePageTransportError(t *testing.T) {
	api := new(mocks.MockRecipeClient)
	api.On("Refine", mock.Anything, mock.Anything, "stronger").
		Return(nil, errors.New("connection refused"))
	router := setupUI(t, api)

	w := postForm(router, "/refine", url.Values{"recipe": {storedRecipe}, "feedback": {"stronger"}})

	body := w.Body.String()
	assert.Contains(t, body, "connection refused")
	assert.Contains(t, body, "<h2>Daiquiri</h2>")
	assert.Contains(t, body, `value="stronger"`)
	assert.Contains(t, body, `id="refine-button">`)
	assert.NotContains(t, body, `id="refine-button" disabled`)
}

func TestGeneratePageRendersArrayGarnish(t *testing.T) {
	loose := `{"name":"Garden Smash","ingredients":{"rum":"2 oz","mint":"8 leaves"},"instructions":"Muddle and shake.","garnish":["mint sprig","lime wheel"],"glassType":"Rocks"}`
	api := new(mocks.MockRecipeClient)
	router := setupUI(t, api)

	var recipe types.Recipe
	require.NoError(t, json.Unmarshal([]byte(loose), &recipe))
	api.On("Generate", mock.Anything, []string{"rum", "mint"}).Return(&recipe, nil)

	w := postForm(router, "/generate", url.Values{"ingredients": {"rum, mint"}})

	body := w.Body.String()
	assert.NotContains(t, body, `role="alert"`)
	assert.Contains(t, body, `<p class="garnish">mint sprig, lime wheel</p>`)
	assert.Contains(t, body, `<ul class="ingredients"><li>rum: 2 oz</li><li>mint: 8 leaves</li></ul>`)
}

func TestUnreadableRecipeFieldIsDropped(t *testing.T) {
	api := new(mocks.MockRecipeClient)
	router := setupUI(t, api)

	w := postForm(router, "/refine", url.Values{"recipe": {`{"name":`}, "feedback": {"sweeter"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `id="recipe"`)
	api.AssertNotCalled(t, "Refine", mock.Anything, mock.Anything, mock.Anything)
}

func TestHealthz(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		api := new(mocks.MockRecipeClient)
		api.On("Health", mock.Anything).Return("Mixoholic API is running", nil)

		w := httptest.NewRecorder()
		setupUI(t, api).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","api":"Mixoholic API is running"}`, w.Body.String())
	})

	t.Run("down", func(t *testing.T) {
		api := new(mocks.MockRecipeClient)
		api.On("Health", mock.Anything).Return("", errors.New("connection refused"))

		w := httptest.NewRecorder()
		setupUI(t, api).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
