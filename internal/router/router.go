package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mixoholic/internal/api"
	"github.com/pageza/mixoholic/internal/metrics"
	"github.com/pageza/mixoholic/internal/middleware"
	"github.com/pageza/mixoholic/internal/webui"
)

// SetupRouter configures the recipe service routes
func SetupRouter(log logrus.FieldLogger, m *metrics.Metrics, recipeHandler *api.RecipeHandler) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestLogger(log),
		middleware.Metrics(m),
		middleware.Recovery(),
		middleware.CORS(),
	)

	router.GET("/", api.HealthCheck)
	recipeHandler.RegisterRoutes(router)

	router.GET("/metrics", gin.WrapH(m.Handler()))

	return router
}

// SetupWebRouter configures the client UI routes
func SetupWebRouter(log logrus.FieldLogger, m *metrics.Metrics, uiHandler *webui.Handler) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestLogger(log),
		middleware.Metrics(m),
		middleware.Recovery(),
	)

	uiHandler.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	return router
}
