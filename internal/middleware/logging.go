package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = "X-Request-ID"

	loggerKey = "logger"
)

// RequestLogger tags every request with an id, stores a request-scoped
// logger in the context and logs information about the request after it
// completes.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeader, requestID)

		entry := log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		})
		c.Set(loggerKey, entry)

		c.Next()

		entry.WithFields(logrus.Fields{
			"status_code": c.Writer.Status(),
			"latency":     time.Since(start).String(),
		}).Info("Handled request")
	}
}

// Logger returns the request-scoped logger, falling back to the standard
// logrus logger when RequestLogger is not installed.
func Logger(c *gin.Context) logrus.FieldLogger {
	if v, ok := c.Get(loggerKey); ok {
		if entry, ok := v.(logrus.FieldLogger); ok {
			return entry
		}
	}
	return logrus.StandardLogger()
}
