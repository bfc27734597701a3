package middleware

import (
	"time"

	"codeberg.org/digitalrecipes/parser/internal/logger"
	"github.com/gin-gonic/gin"
)

// emits one structured log line per completed request
//
// requests to skipPaths are not logged at all.
func RequestLogger(skipPaths ...string) gin.HandlerFunc {
	skip := newPathSet(skipPaths)

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skip.has(path) {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start),
			"ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
			"request_id", GetRequestID(c),
		}

		if query := c.Request.URL.RawQuery; query != "" {
			fields = append(fields, "query", query)
		}

		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			fields = append(fields, "error", errs.String())
			logger.Error("request completed with error", fields...)
			return
		}

		switch {
		case status >= 500:
			logger.Error("request completed", fields...)
		case status >= 400:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}
