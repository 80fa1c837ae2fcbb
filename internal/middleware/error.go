package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// AbortWithError writes an ErrorResponse and stops the handler chain
func AbortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

// Recovery is a middleware that logs panics and returns a JSON error
// response without leaking the panic value to the caller.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger(c).WithField("panic", err).
					WithField("stack", string(debug.Stack())).
					Error("Recovered from panic")
				AbortWithError(c, http.StatusInternalServerError, "Internal Server Error")
			}
		}()

		c.Next()
	}
}
