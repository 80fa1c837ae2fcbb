package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/mixoholic/internal/types"
)

// HealthMessage is returned by the health check endpoint
const HealthMessage = "Mixoholic API is running"

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{Message: HealthMessage})
}
