package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows browser calls from the given origins
//
// With no origins configured the middleware is a pass-through. "*" allows any origin.
// Requests to exemptPaths never see CORS checks, whatever their Origin header.
func CORS(origins []string, exemptPaths ...string) gin.HandlerFunc {
	if len(origins) == 0 {
		return func(c *gin.Context) { c.Next() }
	}

	cfg := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	handler := cors.New(cfg)
	exempt := newPathSet(exemptPaths)

	return func(c *gin.Context) {
		if exempt.has(c.Request.URL.Path) {
			c.Next()
			return
		}

		handler(c)
	}
}
