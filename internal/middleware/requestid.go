package middleware

import (
	"codeberg.org/digitalrecipes/parser/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// adds a request ID to each request, reusing one supplied by the client or load balancer
//
// requests to skipPaths get no ID and no response header.
func RequestID(skipPaths ...string) gin.HandlerFunc {
	skip := newPathSet(skipPaths)

	return func(c *gin.Context) {
		if skip.has(c.Request.URL.Path) {
			c.Next()
			return
		}

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Header(RequestIDHeader, requestID)
		c.Set(requestIDKey, requestID)

		// request-scoped logger so downstream code logs with the ID attached
		ctx := logger.WithContext(c.Request.Context(), logger.With(requestIDKey, requestID))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// returns the request ID set by RequestID, falling back to the inbound header
func GetRequestID(c *gin.Context) string {
	if id := c.GetString(requestIDKey); id != "" {
		return id
	}

	return c.GetHeader(RequestIDHeader)
}
