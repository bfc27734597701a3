package main

import (
	"codeberg.org/digitalrecipes/parser/api/rest/health"
	"codeberg.org/digitalrecipes/parser/internal/errors"
	"codeberg.org/digitalrecipes/parser/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paths answered identically for every caller; no ID, no log line, no CORS check
var probePaths = []string{"/health"}

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestID(probePaths...))
	router.Use(middleware.RequestLogger(probePaths...)) // probes would drown everything else
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(server.config.AllowedOrigins, probePaths...))

	router.NoRoute(func(c *gin.Context) { errors.NotFound(c, "") })
	router.NoMethod(errors.MethodNotAllowed)

	health.RegisterRoutes(router)

	v1 := router.Group("/api/v1")

	{
		health.RegisterPingRoutes(v1)
	}
}
