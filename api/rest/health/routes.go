package health

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRoutes) {
	router.GET("/health", Handler)
}

func RegisterPingRoutes(router *gin.RouterGroup) {
	router.GET("/ping", PingHandler)
}
