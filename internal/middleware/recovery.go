package middleware

import (
	"fmt"
	"io"

	"codeberg.org/digitalrecipes/parser/internal/errors"
	"github.com/gin-gonic/gin"
)

// recovers handler panics and answers with a 500 error response
func Recovery() gin.HandlerFunc {
	// panic details go through the structured logger, not gin's writer
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		errors.InternalError(c, "internal server error", fmt.Errorf("panic: %v", recovered))
	})
}
