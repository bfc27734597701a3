package health

import (
	"net/http"

	"codeberg.org/digitalrecipes/parser/internal/config"
	"github.com/gin-gonic/gin"
)

// returns the server health status
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  StatusHealthy,
		Service: config.ServiceName,
	})
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}
